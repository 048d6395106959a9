package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-optimizer/internal/logging"
	"alfredoptarigan/resume-optimizer/internal/services"
)

func newConverterTestApp(t *testing.T, maxFileSize int64) (*fiber.App, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")
	storage := services.NewStorageService(dir)
	require.NoError(t, storage.EnsureUploadDir())
	return NewConverterApp(storage, services.NewDocumentParserService(), maxFileSize, logging.Discard()), dir
}

func uploadRequest(t *testing.T, filename string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestConvert_PlainText(t *testing.T) {
	app, dir := newConverterTestApp(t, 1<<20)

	status, body := doRequest(t, app, uploadRequest(t, "resume.txt", []byte("John Doe\nEngineer")))
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]any)
	assert.Equal(t, "John Doe\nEngineer", data["text"])
	assert.Equal(t, "resume.txt", data["filename"])

	// Uploads are removed once converted.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConvert_Errors(t *testing.T) {
	app, _ := newConverterTestApp(t, 8)

	status, _ := doRequest(t, app, uploadRequest(t, "resume.exe", []byte("x")))
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := doRequest(t, app, uploadRequest(t, "resume.txt", []byte("way more than eight bytes")))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "File too large")

	status, _ = doRequest(t, app, uploadRequest(t, "bad.pdf", []byte("nopdf")))
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", nil)
	status, _ = doRequest(t, app, req)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestConverterHealth(t *testing.T) {
	app, _ := newConverterTestApp(t, 1<<20)

	status, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
}
