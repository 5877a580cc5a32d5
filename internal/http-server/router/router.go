package router

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "imageGallery/docs"
	"imageGallery/internal/http-server/handlers/image/getImage"
	"imageGallery/internal/http-server/handlers/image/listImages"
	"imageGallery/internal/http-server/handlers/image/saveImage"
	"imageGallery/internal/http-server/middleware/mwlogger"
	"imageGallery/internal/http-server/middleware/mwratelimit"
	"imageGallery/internal/http-server/middleware/mwrecover"
	"imageGallery/internal/kafka/producer"
	"imageGallery/internal/lib/upload"
	"imageGallery/internal/storage/disk"
)

type Options struct {
	Log          *slog.Logger
	Images       *disk.Storage
	Validator    *upload.Validator
	Limiter      mwratelimit.Recorder
	Journal      saveImage.UploadRecorder
	Producer     producer.ProducerIface
	PublicDir    string
	ThumbnailDir string
}

func New(opts Options) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(opts.Log))
	router.Use(mwrecover.New(opts.Log))

	router.Route("/api", func(r chi.Router) {
		r.With(mwratelimit.New(opts.Log, opts.Limiter)).
			Post("/upload", saveImage.New(opts.Log, opts.Validator, opts.Images, opts.Journal, opts.Producer))
		r.Get("/images", listImages.New(opts.Log, opts.Images))
		r.Get("/images/{filename}", getImage.New(opts.Log, opts.Images))
	})

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Handle("/uploads/*", http.StripPrefix("/uploads/", noListing(http.FileServer(http.Dir(opts.Images.Dir())))))

	if opts.ThumbnailDir != "" {
		router.Handle("/thumbnails/*", http.StripPrefix("/thumbnails/", noListing(http.FileServer(http.Dir(opts.ThumbnailDir)))))
	}

	router.Handle("/*", http.FileServer(http.Dir(opts.PublicDir)))

	return router
}

// noListing hides directory indexes and the storage placeholder.
func noListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") || strings.HasSuffix(r.URL.Path, disk.Placeholder) {
			http.NotFound(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
