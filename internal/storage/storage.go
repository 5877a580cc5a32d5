package storage

import "errors"

var (
	ErrImageNotFound = errors.New("image not found")
	ErrImageExists   = errors.New("image already exists")
	ErrInvalidName   = errors.New("invalid image name")
)
