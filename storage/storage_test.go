package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeUpload(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func TestDiskStoreSave(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root)
	require.NoError(t, err)

	url, err := store.Save(fakeUpload(t, "photo.png", "fake image bytes"), "products")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/products/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	rel := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestDiskStoreRemove(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root)
	require.NoError(t, err)

	url, err := store.Save(fakeUpload(t, "avatar.jpg", "bytes"), "avatars")
	require.NoError(t, err)

	require.NoError(t, store.Remove(url))
	rel := strings.TrimPrefix(url, "/uploads/")
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	assert.True(t, os.IsNotExist(err))

	// removing twice or removing a foreign URL is fine
	assert.NoError(t, store.Remove(url))
	assert.NoError(t, store.Remove("https://elsewhere.example/pic.png"))
}
