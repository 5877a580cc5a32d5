package listImages

import (
	"context"
	"imageGallery/internal/lib/api/response"
	"imageGallery/internal/lib/logger/sl"
	"imageGallery/internal/models"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Response struct {
	Images []models.Image `json:"images"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ImageLister
type ImageLister interface {
	ListImages(ctx context.Context) ([]models.Image, error)
}

// New lists the gallery.
// @Summary      Lists uploaded images
// @Description  Returns every stored image, newest first
// @Tags         images
// @Produce      json
// @Success      200  {object}  listImages.Response
// @Failure      500  {object}  response.Response
// @Router       /api/images [get]
func New(log *slog.Logger, imageLister ImageLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.image.listImages.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		images, err := imageLister.ListImages(r.Context())
		if err != nil {
			log.Error("failed to list images", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to read uploads directory"))
			return
		}

		if images == nil {
			images = []models.Image{}
		}

		log.Debug("images listed", slog.Int("count", len(images)))

		render.JSON(w, r, Response{
			Images: images,
		})
	}
}
