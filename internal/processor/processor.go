package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"imageGallery/internal/lib/logger/sl"
	"imageGallery/internal/models"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	thumbnailWidth  = 150
	thumbnailHeight = 150

	ThumbnailPrefix = "/thumbnails/"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatusUpdater
type StatusUpdater interface {
	UpdateUploadStatus(ctx context.Context, filename string, status string, thumbnailPath string) error
}

// ImageProcessor builds thumbnails for uploaded images.
type ImageProcessor struct {
	log          *slog.Logger
	uploadDir    string
	thumbnailDir string
	updater      StatusUpdater
}

func NewImageProcessor(log *slog.Logger, uploadDir, thumbnailDir string, updater StatusUpdater) (*ImageProcessor, error) {
	if err := os.MkdirAll(thumbnailDir, 0o755); err != nil {
		return nil, fmt.Errorf("processor.NewImageProcessor: %w", err)
	}

	return &ImageProcessor{
		log:          log,
		uploadDir:    uploadDir,
		thumbnailDir: thumbnailDir,
		updater:      updater,
	}, nil
}

// ThumbnailName maps a stored image name to its thumbnail file name.
func ThumbnailName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + "_thumb.jpg"
}

func (p *ImageProcessor) ProcessMessage(ctx context.Context, message []byte) error {
	const op = "processor.ProcessMessage"

	log := p.log.With(slog.String("op", op))

	var event models.UploadEvent
	if err := json.Unmarshal(message, &event); err != nil {
		log.Error("failed to unmarshal upload event", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if event.Filename == "" || path.Base(event.Filename) != event.Filename || strings.ContainsAny(event.Filename, `/\`) {
		log.Error("upload event carries an invalid filename", slog.String("filename", event.Filename))
		return fmt.Errorf("%s: invalid filename %q", op, event.Filename)
	}

	log = log.With(slog.String("filename", event.Filename), slog.String("event_id", event.ID.String()))
	log.Info("processing image")

	src, err := imaging.Open(filepath.Join(p.uploadDir, event.Filename))
	if err != nil {
		log.Warn("failed to decode image, skipping thumbnail", sl.Err(err))
		p.updateStatus(ctx, log, event.Filename, models.StatusFailed, "")
		return fmt.Errorf("%s: %w", op, err)
	}

	thumbName := ThumbnailName(event.Filename)
	thumbnail := imaging.Thumbnail(src, thumbnailWidth, thumbnailHeight, imaging.CatmullRom)

	if err = imaging.Save(thumbnail, filepath.Join(p.thumbnailDir, thumbName)); err != nil {
		log.Error("failed to save thumbnail", sl.Err(err))
		p.updateStatus(ctx, log, event.Filename, models.StatusFailed, "")
		return fmt.Errorf("%s: %w", op, err)
	}

	p.updateStatus(ctx, log, event.Filename, models.StatusProcessed, ThumbnailPrefix+thumbName)

	log.Info("thumbnail created", slog.String("thumbnail", thumbName))

	return nil
}

func (p *ImageProcessor) updateStatus(ctx context.Context, log *slog.Logger, filename, status, thumbnailPath string) {
	if err := p.updater.UpdateUploadStatus(ctx, filename, status, thumbnailPath); err != nil {
		log.Error("failed to update upload status", slog.String("status", status), sl.Err(err))
	}
}
