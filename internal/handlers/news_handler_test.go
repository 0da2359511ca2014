package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postMultipart builds a multipart form request with the given fields and,
// when fileField is non-empty, one attached file.
func postMultipart(t *testing.T, router http.Handler, path string, fields map[string]string, fileField, fileName string, file []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestNewsCreate_MissingImage(t *testing.T) {
	env := newTestEnv()

	w := postMultipart(t, env.router, "/news",
		map[string]string{"name": "Launch", "description": "We are live"},
		"", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "Image is required", body["message"])
	assert.Empty(t, env.newsRepo.items, "nothing persisted without an image")
}

func TestNewsCreate_MissingNameOrDescription(t *testing.T) {
	env := newTestEnv()

	w := postMultipart(t, env.router, "/news",
		map[string]string{"name": "Launch"},
		"image", "pic.png", []byte("png-bytes"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name and description are required", decodeBody(t, w)["message"])
}

func TestNewsCreate_Success(t *testing.T) {
	env := newTestEnv()

	w := postMultipart(t, env.router, "/news",
		map[string]string{"name": "Launch", "description": "We are live"},
		"image", "pic.png", []byte("png-bytes"))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, "News created successfully", body["message"])

	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["id"])
	assert.Contains(t, data["imageUrl"], "https://cdn.example/news/")
	assert.Len(t, env.newsRepo.items, 1)
}

func TestNewsEdit_UnknownID(t *testing.T) {
	env := newTestEnv()

	req := httptest.NewRequest("PUT", "/news/does-not-exist", bytes.NewBufferString(`{"name":"n"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "News not found", decodeBody(t, rec)["message"])
}
