package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadedFile builds a real multipart.FileHeader the way gin would hand it
// to a handler.
func uploadedFile(t *testing.T, fieldName, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File[fieldName][0]
}

func TestLocalStorageSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)

	header := uploadedFile(t, "postImage", "pic.jpg", "jpeg bytes")

	url, err := storage.SaveFileWithPath(header, "posts")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/posts/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	// The file lands under the subdirectory with a generated name
	entries, err := os.ReadDir(filepath.Join(dir, "posts"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	stored, err := os.ReadFile(filepath.Join(dir, "posts", entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(stored))

	require.NoError(t, storage.DeleteFile(url))
	entries, err = os.ReadDir(filepath.Join(dir, "posts"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStorageSaveNilFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	url, err := storage.SaveFileWithPath(nil, "profiles")
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestLocalStorageDeleteMissingFileIsNoop(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	assert.NoError(t, storage.DeleteFile("/uploads/profiles/gone.png"))
	assert.NoError(t, storage.DeleteFile(""))
}

func TestLocalStorageDeleteRejectsTraversal(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	assert.Error(t, storage.DeleteFile("/uploads/../../etc/passwd"))
}
