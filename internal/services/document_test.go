package services

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentParser_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("John Doe\nSoftware Engineer\n"), 0644))

	content, err := NewDocumentParserService().ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "John Doe\nSoftware Engineer\n", content.Text)
	assert.Equal(t, 1, content.PageCount)
}

func TestDocumentParser_Errors(t *testing.T) {
	dir := t.TempDir()
	parser := NewDocumentParserService()

	_, err := parser.ExtractText(filepath.Join(dir, "missing.pdf"))
	assert.Error(t, err)

	docx := filepath.Join(dir, "resume.docx")
	require.NoError(t, os.WriteFile(docx, []byte("x"), 0644))
	_, err = parser.ExtractText(docx)
	assert.Equal(t, KindValidation, KindOf(err))

	empty := filepath.Join(dir, "empty.md")
	require.NoError(t, os.WriteFile(empty, []byte("  \n"), 0644))
	_, err = parser.ExtractText(empty)
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(broken, []byte("not a pdf"), 0644))
	_, err = parser.ExtractText(broken)
	assert.Error(t, err)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a\nb", CleanText("  a  \n\n\n  b \n"))
	assert.Equal(t, "", CleanText("\n \n"))
}

// fileHeader builds a multipart.FileHeader the way fiber hands one to handlers.
func fileHeader(t *testing.T, name string, data []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestStorageService_SaveAndDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	storage := NewStorageService(dir)
	require.NoError(t, storage.EnsureUploadDir())

	name, path, err := storage.SaveFile(fileHeader(t, "Resume.TXT", []byte("hello")))
	require.NoError(t, err)
	assert.Equal(t, storage.GetFilePath(name), path)
	assert.Equal(t, ".txt", filepath.Ext(name))
	assert.True(t, strings.HasPrefix(name, "document_"), name)
	assert.NotContains(t, name, "Resume")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, storage.DeleteFile(name))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestStorageService_RejectsUnsupportedExtension(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	_, _, err := storage.SaveFile(fileHeader(t, "resume.exe", []byte("x")))
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestStorageService_SaveFailsWithoutUploadDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	storage := NewStorageService(dir)

	_, _, err := storage.SaveFile(fileHeader(t, "resume.md", []byte("# cv")))
	require.Error(t, err)
	assert.NotEqual(t, KindValidation, KindOf(err))

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}
