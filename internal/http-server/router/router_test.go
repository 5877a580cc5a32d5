package router_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/stretchr/testify/require"

	"imageGallery/internal/http-server/router"
	"imageGallery/internal/kafka/producer"
	"imageGallery/internal/lib/logger/handlers/slogdiscard"
	"imageGallery/internal/lib/ratelimit"
	"imageGallery/internal/lib/upload"
	"imageGallery/internal/storage/disk"
	"imageGallery/internal/storage/nop"
)

type testApp struct {
	e         *httpexpect.Expect
	uploadDir string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	root := t.TempDir()
	uploadDir := filepath.Join(root, "uploads")
	publicDir := filepath.Join(root, "static")

	require.NoError(t, os.MkdirAll(publicDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(publicDir, "index.html"), []byte("<h1>gallery</h1>"), 0o644))

	images, err := disk.New(uploadDir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(uploadDir, disk.Placeholder), nil, 0o644))

	log := slogdiscard.NewDiscardLogger()

	handler := router.New(router.Options{
		Log:       log,
		Images:    images,
		Validator: upload.New(upload.DefaultMaxSize, upload.DefaultAllowedTypes),
		Limiter:   ratelimit.New(20, 15*time.Minute),
		Journal:   nop.Journal{},
		Producer:  producer.Nop{},
		PublicDir: publicDir,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testApp{
		e:         httpexpect.Default(t, srv.URL),
		uploadDir: uploadDir,
	}
}

func imageBody(t *testing.T, fileName, contentType string, content []byte) ([]byte, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, fileName))
	h.Set("Content-Type", contentType)

	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body.Bytes(), writer.FormDataContentType()
}

func (a *testApp) upload(t *testing.T, fileName, contentType string, content []byte) *httpexpect.Response {
	t.Helper()

	body, formType := imageBody(t, fileName, contentType, content)

	return a.e.POST("/api/upload").
		WithHeader("Content-Type", formType).
		WithBytes(body).
		Expect()
}

func (a *testApp) storedFiles(t *testing.T) []string {
	t.Helper()

	entries, err := os.ReadDir(a.uploadDir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Name() != disk.Placeholder {
			names = append(names, entry.Name())
		}
	}

	return names
}

func TestUploadAndList(t *testing.T) {
	app := newTestApp(t)

	resp := app.upload(t, "cat pic!.png", "image/png", []byte("0123456789")).
		Status(http.StatusOK).
		JSON().Object()

	resp.Value("message").String().IsEqual("File uploaded successfully")
	resp.Value("originalName").String().IsEqual("cat pic!.png")
	resp.Value("size").Number().IsEqual(10)

	path := resp.Value("path").String().Raw()
	filename := resp.Value("filename").String().Raw()

	require.Regexp(t, `^/uploads/\d+-\d+-cat_pic_\.png$`, path)
	require.Equal(t, "/uploads/"+filename, path)

	app.e.GET(path).
		Expect().
		Status(http.StatusOK).
		Body().IsEqual("0123456789")

	images := app.e.GET("/api/images").
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("images").Array()

	images.Length().IsEqual(1)

	image := images.Value(0).Object()
	image.Value("filename").String().IsEqual(filename)
	image.Value("path").String().IsEqual(path)
	image.Value("size").Number().IsEqual(10)
	image.Value("uploadedAt").String().NotEmpty()

	app.e.GET("/api/images/"+filename).
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("image").Object().
		Value("path").String().IsEqual(path)
}

func TestUploadRejected(t *testing.T) {
	app := newTestApp(t)

	app.upload(t, "doc.pdf", "application/pdf", []byte("%PDF-1.4")).
		Status(http.StatusBadRequest).
		JSON().Object().
		Value("error").String().Contains("Invalid file type")

	app.upload(t, "big.png", "image/png", bytes.Repeat([]byte{7}, upload.DefaultMaxSize+1)).
		Status(http.StatusBadRequest).
		JSON().Object().
		Value("error").String().IsEqual("File size too large. Maximum size is 5MB.")

	app.e.POST("/api/upload").
		Expect().
		Status(http.StatusBadRequest).
		JSON().Object().
		Value("error").String().IsEqual("No file uploaded")

	require.Empty(t, app.storedFiles(t))

	app.e.GET("/api/images").
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("images").Array().IsEmpty()
}

func TestListingNewestFirst(t *testing.T) {
	app := newTestApp(t)

	base := time.Now().Add(-time.Hour)

	var names []string
	for i, name := range []string{"one.png", "two.jpg", "three.gif"} {
		ct := map[string]string{".png": "image/png", ".jpg": "image/jpeg", ".gif": "image/gif"}[filepath.Ext(name)]

		filename := app.upload(t, name, ct, []byte(name)).
			Status(http.StatusOK).
			JSON().Object().
			Value("filename").String().Raw()

		mtime := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(filepath.Join(app.uploadDir, filename), mtime, mtime))

		names = append(names, filename)
	}

	images := app.e.GET("/api/images").
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("images").Array()

	images.Length().IsEqual(3)
	images.Value(0).Object().Value("filename").String().IsEqual(names[2])
	images.Value(1).Object().Value("filename").String().IsEqual(names[1])
	images.Value(2).Object().Value("filename").String().IsEqual(names[0])
}

func TestUploadRateLimit(t *testing.T) {
	app := newTestApp(t)

	for i := 1; i <= 20; i++ {
		app.upload(t, fmt.Sprintf("img%d.png", i), "image/png", []byte("png")).
			Status(http.StatusOK).
			Header("RateLimit-Remaining").IsEqual(fmt.Sprint(20 - i))
	}

	app.upload(t, "img21.png", "image/png", []byte("png")).
		Status(http.StatusTooManyRequests).
		JSON().Object().
		Value("error").String().IsEqual("Too many upload requests, please try again later.")

	require.Len(t, app.storedFiles(t), 20)

	app.e.GET("/api/images").
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("images").Array().Length().IsEqual(20)
}

func TestStaticRoutes(t *testing.T) {
	app := newTestApp(t)

	app.e.GET("/").
		Expect().
		Status(http.StatusOK).
		Body().Contains("gallery")

	app.e.GET("/uploads/").
		Expect().
		Status(http.StatusNotFound)

	app.e.GET("/uploads/" + disk.Placeholder).
		Expect().
		Status(http.StatusNotFound)

	app.e.GET("/uploads/missing.png").
		Expect().
		Status(http.StatusNotFound)

	app.e.GET("/api/images/missing.png").
		Expect().
		Status(http.StatusNotFound).
		JSON().Object().
		Value("error").String().IsEqual("Image not found")

	app.e.GET("/swagger/doc.json").
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("swagger").String().IsEqual("2.0")
}

func TestListingDirectoryGone(t *testing.T) {
	app := newTestApp(t)

	require.NoError(t, os.RemoveAll(app.uploadDir))

	app.e.GET("/api/images").
		Expect().
		Status(http.StatusInternalServerError).
		JSON().Object().
		Value("error").String().IsEqual("Failed to read uploads directory")
}
