package getImage_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"imageGallery/internal/http-server/handlers/image/getImage"
	"imageGallery/internal/http-server/handlers/image/getImage/mocks"
	"imageGallery/internal/models"
	"imageGallery/internal/storage"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetImage(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	testImage := &models.Image{
		Filename:   "1700000000000-42-cat.png",
		Path:       "/uploads/1700000000000-42-cat.png",
		Size:       10,
		UploadedAt: time.Now(),
	}

	tests := []struct {
		name           string
		filename       string
		mockImage      *models.Image
		mockErr        error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			filename:       testImage.Filename,
			mockImage:      testImage,
			expectedStatus: http.StatusOK,
			expectedBody:   fmt.Sprintf(`{"image":{"filename":"%s","path":"%s","size":10,"uploadedAt":"%s"}}`, testImage.Filename, testImage.Path, testImage.UploadedAt.Format(time.RFC3339Nano)),
		},
		{
			name:           "Invalid Name",
			filename:       "..",
			mockErr:        fmt.Errorf("storage.disk.GetImage: %w", storage.ErrInvalidName),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid filename"}`,
		},
		{
			name:           "Not Found",
			filename:       "missing.png",
			mockErr:        fmt.Errorf("storage.disk.GetImage: %w", storage.ErrImageNotFound),
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Image not found"}`,
		},
		{
			name:           "Internal Error",
			filename:       "broken.png",
			mockErr:        errors.New("i/o error"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to get image"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imageGetterMock := mocks.NewImageGetter(t)
			imageGetterMock.On("GetImage", mock.Anything, tt.filename).Return(tt.mockImage, tt.mockErr).Once()

			req := httptest.NewRequest(http.MethodGet, "/api/images/"+tt.filename, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("filename", tt.filename)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()

			handler := getImage.New(log, imageGetterMock)
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			var actualMap, expectedMap map[string]interface{}
			err := json.Unmarshal(rr.Body.Bytes(), &actualMap)
			require.NoError(t, err)
			err = json.Unmarshal([]byte(tt.expectedBody), &expectedMap)
			require.NoError(t, err)
			require.Equal(t, expectedMap, actualMap)
		})
	}
}
