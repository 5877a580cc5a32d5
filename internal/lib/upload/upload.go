// Package upload holds the server-side rules an incoming image must pass
// before it is written to the storage directory.
package upload

import (
	"errors"
	"fmt"
	"mime"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldName is the multipart form field carrying the image.
const FieldName = "image"

const (
	DefaultMaxSize = 5 << 20

	// multipartOverhead is the room left in a request body for boundaries
	// and part headers on top of the file itself.
	multipartOverhead = 1 << 20
)

var DefaultAllowedTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"}

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooLarge        = errors.New("file too large")
)

// Candidate is what the client declared about the uploaded file.
type Candidate struct {
	ContentType string `validate:"image_type"`
	Size        int64  `validate:"size_limit"`
}

type Validator struct {
	maxSize      int64
	allowedTypes []string
	validate     *validator.Validate
}

func New(maxSize int64, allowedTypes []string) *Validator {
	v := &Validator{
		maxSize:      maxSize,
		allowedTypes: make([]string, 0, len(allowedTypes)),
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}

	for _, t := range allowedTypes {
		v.allowedTypes = append(v.allowedTypes, mediaType(t))
	}

	// Registration only fails on an empty tag or a nil func.
	_ = v.validate.RegisterValidation("image_type", v.isAllowedType)
	_ = v.validate.RegisterValidation("size_limit", v.isWithinLimit)

	return v
}

// Validate returns ErrUnsupportedType or ErrTooLarge. The type is checked
// first, so a file failing both is reported as the wrong type.
func (v *Validator) Validate(c Candidate) error {
	err := v.validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("upload.Validate: %w", err)
	}

	tooLarge := false
	for _, fe := range verrs {
		switch fe.Tag() {
		case "image_type":
			return ErrUnsupportedType
		case "size_limit":
			tooLarge = true
		}
	}

	if tooLarge {
		return ErrTooLarge
	}

	return fmt.Errorf("upload.Validate: %w", err)
}

func (v *Validator) MaxSize() int64 {
	return v.maxSize
}

// MaxBodySize bounds the whole multipart request body.
func (v *Validator) MaxBodySize() int64 {
	return v.maxSize + multipartOverhead
}

func (v *Validator) SizeLimitMessage() string {
	if v.maxSize%(1<<20) == 0 {
		return fmt.Sprintf("File size too large. Maximum size is %dMB.", v.maxSize>>20)
	}

	return fmt.Sprintf("File size too large. Maximum size is %d bytes.", v.maxSize)
}

func (v *Validator) isAllowedType(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}

	return slices.Contains(v.allowedTypes, mediaType(fl.Field().String()))
}

func (v *Validator) isWithinLimit(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		size := fl.Field().Int()
		return size >= 0 && size <= v.maxSize
	default:
		return false
	}
}

func mediaType(s string) string {
	mt, _, err := mime.ParseMediaType(s)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}

	return mt
}
