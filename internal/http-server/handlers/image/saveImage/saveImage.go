package saveImage

import (
	"context"
	"encoding/json"
	"errors"
	"imageGallery/internal/kafka/producer"
	"imageGallery/internal/lib/api/response"
	"imageGallery/internal/lib/filename"
	"imageGallery/internal/lib/logger/sl"
	"imageGallery/internal/lib/upload"
	"imageGallery/internal/models"
	"imageGallery/internal/storage/disk"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

const (
	// multipartMemory is how much of the form is kept in memory before
	// spilling to temporary files.
	multipartMemory = 8 << 20

	publishTimeout = 3 * time.Second

	msgSuccess         = "File uploaded successfully"
	msgNoFile          = "No file uploaded"
	msgUnexpectedField = "Unexpected field"
	msgInvalidForm     = "Invalid multipart form"
	msgInvalidType     = "Invalid file type. Only JPEG, PNG, GIF, and WebP images are allowed."
	msgSaveFailed      = "Failed to save file"
)

type Response struct {
	Message      string `json:"message"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	Path         string `json:"path"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ImageSaver
type ImageSaver interface {
	SaveImage(ctx context.Context, filename string, src io.Reader) (int64, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UploadRecorder
type UploadRecorder interface {
	RecordUpload(ctx context.Context, upload models.Upload) error
}

// New handles a single image upload.
// @Summary      Uploads an image
// @Description  Accepts one JPEG, PNG, GIF or WebP file of at most 5MB in the "image" field
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Image file to upload"
// @Success      200  {object}  saveImage.Response
// @Failure      400  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/upload [post]
func New(
	log *slog.Logger,
	validator *upload.Validator,
	imageSaver ImageSaver,
	recorder UploadRecorder,
	kafkaProducer producer.ProducerIface,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.image.saveImage.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		r.Body = http.MaxBytesReader(w, r.Body, validator.MaxBodySize())

		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var maxBytesErr *http.MaxBytesError

			switch {
			case errors.As(err, &maxBytesErr):
				log.Warn("request body too large", slog.Int64("limit", maxBytesErr.Limit))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(validator.SizeLimitMessage()))
			case errors.Is(err, http.ErrNotMultipart), errors.Is(err, http.ErrMissingBoundary), errors.Is(err, io.EOF):
				log.Warn("request is not a multipart form", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(msgNoFile))
			default:
				log.Warn("failed to parse multipart form", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(msgInvalidForm))
			}
			return
		}
		defer func() {
			if err := r.MultipartForm.RemoveAll(); err != nil {
				log.Warn("failed to remove multipart temp files", sl.Err(err))
			}
		}()

		for field, headers := range r.MultipartForm.File {
			if field != upload.FieldName || len(headers) > 1 {
				log.Warn("unexpected file field", slog.String("field", field), slog.Int("files", len(headers)))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(msgUnexpectedField))
				return
			}
		}

		headers := r.MultipartForm.File[upload.FieldName]
		if len(headers) == 0 {
			log.Warn("no file in request")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(msgNoFile))
			return
		}

		header := headers[0]
		originalName := originalFilename(header)
		contentType := header.Header.Get("Content-Type")

		err := validator.Validate(upload.Candidate{
			ContentType: contentType,
			Size:        header.Size,
		})
		if err != nil {
			log.Warn("upload rejected",
				sl.Err(err),
				slog.String("content_type", contentType),
				slog.Int64("size", header.Size),
			)

			render.Status(r, http.StatusBadRequest)
			switch {
			case errors.Is(err, upload.ErrUnsupportedType):
				render.JSON(w, r, response.Error(msgInvalidType))
			case errors.Is(err, upload.ErrTooLarge):
				render.JSON(w, r, response.Error(validator.SizeLimitMessage()))
			default:
				render.JSON(w, r, response.Error(err.Error()))
			}
			return
		}

		file, err := header.Open()
		if err != nil {
			log.Error("failed to open uploaded file", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(msgSaveFailed))
			return
		}
		defer func(file multipart.File) {
			_ = file.Close()
		}(file)

		storedName := filename.New(originalName)

		size, err := imageSaver.SaveImage(r.Context(), storedName, file)
		if err != nil {
			log.Error("failed to save file", sl.Err(err), slog.String("filename", storedName))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(msgSaveFailed))
			return
		}

		log = log.With(slog.String("filename", storedName))

		err = recorder.RecordUpload(r.Context(), models.Upload{
			Filename:     storedName,
			OriginalName: originalName,
			ContentType:  contentType,
			Size:         size,
			ClientAddr:   clientAddr(r),
			Status:       models.StatusUploaded,
		})
		if err != nil {
			log.Warn("failed to record upload", sl.Err(err))
		}

		publishUploaded(r.Context(), log, kafkaProducer, models.UploadEvent{
			ID:           uuid.New(),
			Filename:     storedName,
			OriginalName: originalName,
			ContentType:  contentType,
			Size:         size,
			UploadedAt:   time.Now(),
		})

		log.Info("image uploaded", slog.String("original_name", originalName), slog.Int64("size", size))

		render.JSON(w, r, Response{
			Message:      msgSuccess,
			Filename:     storedName,
			OriginalName: originalName,
			Size:         size,
			Path:         disk.PublicPath(storedName),
		})
	}
}

func publishUploaded(ctx context.Context, log *slog.Logger, kafkaProducer producer.ProducerIface, event models.UploadEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		log.Error("failed to marshal upload event", sl.Err(err))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err = kafkaProducer.SendMessage(ctx, message); err != nil {
		log.Warn("failed to publish upload event", sl.Err(err))
	}
}

// originalFilename returns the name exactly as the client sent it. The
// multipart reader strips directory components from FileHeader.Filename.
func originalFilename(header *multipart.FileHeader) string {
	_, params, err := mime.ParseMediaType(header.Header.Get("Content-Disposition"))
	if err == nil && params["filename"] != "" {
		return params["filename"]
	}

	return header.Filename
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
