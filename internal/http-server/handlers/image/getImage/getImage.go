package getImage

import (
	"context"
	"errors"
	"imageGallery/internal/lib/api/response"
	"imageGallery/internal/lib/logger/sl"
	"imageGallery/internal/models"
	"imageGallery/internal/storage"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Response struct {
	Image models.Image `json:"image"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ImageGetter
type ImageGetter interface {
	GetImage(ctx context.Context, filename string) (*models.Image, error)
}

// New returns the metadata of one stored image.
// @Summary      Gets one image
// @Tags         images
// @Produce      json
// @Param        filename  path  string  true  "Stored filename"
// @Success      200  {object}  getImage.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/images/{filename} [get]
func New(log *slog.Logger, imageGetter ImageGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.image.getImage.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		name := chi.URLParam(r, "filename")

		image, err := imageGetter.GetImage(r.Context(), name)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrInvalidName):
				log.Warn("invalid image filename", slog.String("filename", name))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Invalid filename"))
			case errors.Is(err, storage.ErrImageNotFound):
				log.Warn("image not found", slog.String("filename", name))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Image not found"))
			default:
				log.Error("failed to get image from storage", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("Failed to get image"))
			}
			return
		}

		log.Debug("image retrieved", slog.String("filename", name))

		render.JSON(w, r, Response{
			Image: *image,
		})
	}
}
