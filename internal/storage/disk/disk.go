package disk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"imageGallery/internal/models"
	"imageGallery/internal/storage"
)

const (
	// Placeholder keeps the directory in version control and is never listed.
	Placeholder = ".gitkeep"

	PublicPrefix = "/uploads/"

	statConcurrency = 32
)

// Storage keeps uploaded images as plain files in one flat directory. The
// directory is the only index.
type Storage struct {
	dir string
}

// New creates dir if it does not exist yet.
func New(dir string) (*Storage, error) {
	const op = "storage.disk.New"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{dir: dir}, nil
}

func (s *Storage) Dir() string {
	return s.dir
}

// PublicPath is the URL under which filename is served.
func PublicPath(filename string) string {
	return PublicPrefix + filename
}

// SaveImage writes src to a new file named filename. An existing file is
// never overwritten, and a failed write leaves nothing behind.
func (s *Storage) SaveImage(ctx context.Context, filename string, src io.Reader) (int64, error) {
	const op = "storage.disk.SaveImage"

	if err := checkName(filename); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	dstPath := filepath.Join(s.dir, filename)

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrImageExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	written, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(dstPath)
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return written, nil
}

// ListImages returns every stored image, newest first. Entries are stat'ed
// concurrently; a single failure fails the whole listing.
func (s *Storage) ListImages(ctx context.Context) ([]models.Image, error) {
	const op = "storage.disk.ListImages"

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Name() == Placeholder {
			continue
		}
		names = append(names, entry.Name())
	}

	images := make([]models.Image, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(statConcurrency)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			info, err := os.Stat(filepath.Join(s.dir, name))
			if err != nil {
				return err
			}

			images[i] = toImage(name, info)
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	slices.SortStableFunc(images, func(a, b models.Image) int {
		return b.UploadedAt.Compare(a.UploadedAt)
	})

	return images, nil
}

// GetImage returns the metadata of a single stored image.
func (s *Storage) GetImage(ctx context.Context, filename string) (*models.Image, error) {
	const op = "storage.disk.GetImage"

	if err := checkName(filename); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	info, err := os.Stat(filepath.Join(s.dir, filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrImageNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrImageNotFound)
	}

	image := toImage(filename, info)

	return &image, nil
}

func toImage(name string, info fs.FileInfo) models.Image {
	return models.Image{
		Filename:   name,
		Path:       PublicPath(name),
		Size:       info.Size(),
		UploadedAt: info.ModTime(),
	}
}

// checkName accepts only a single plain path element.
func checkName(name string) error {
	switch {
	case name == "", name == ".", name == "..", name == Placeholder:
		return storage.ErrInvalidName
	case strings.ContainsAny(name, `/\`), strings.ContainsRune(name, 0):
		return storage.ErrInvalidName
	case path.Base(name) != name:
		return storage.ErrInvalidName
	}

	return nil
}
