package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushClient_Send(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_ = json.NewEncoder(w).Encode(map[string]string{"name": "projects/p/messages/m-1"})
	}))
	defer srv.Close()

	c := NewPushClient("p", "secret-token", false)
	c.BaseURL = srv.URL

	id, err := c.Send("device-token", "Title", "Body")
	require.NoError(t, err)
	assert.Equal(t, "projects/p/messages/m-1", id)
	assert.Equal(t, "/v1/projects/p/messages:send", gotPath)
	assert.Equal(t, "Bearer secret-token", gotAuth)

	msg := gotBody["message"].(map[string]interface{})
	assert.Equal(t, "device-token", msg["token"])
	data := msg["data"].(map[string]interface{})
	assert.Equal(t, "Title", data["title"])
	assert.Equal(t, "Body", data["body"])
	android := msg["android"].(map[string]interface{})
	assert.Equal(t, "high", android["priority"])
}

func TestPushClient_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"invalid token"}}`))
	}))
	defer srv.Close()

	c := NewPushClient("p", "secret-token", false)
	c.BaseURL = srv.URL

	_, err := c.Send("bad-token", "t", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestPushClient_DryRun(t *testing.T) {
	c := NewPushClient("p", "dry-run", true)
	id, err := c.Send("device-token", "t", "b")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestCDNClient_Upload(t *testing.T) {
	var gotPath string
	var gotFields map[string]string
	var gotFileLen int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFields = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			gotFields[k] = v[0]
		}
		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		data, _ := io.ReadAll(f)
		gotFileLen = len(data)
		_ = json.NewEncoder(w).Encode(map[string]string{"secure_url": "https://res.cloudinary.test/x.png"})
	}))
	defer srv.Close()

	c := NewCDNClient("democloud", "key", "secret", false)
	c.BaseURL = srv.URL

	url, err := c.Upload([]byte("png-bytes"), "news", "pub-1", "image")
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.test/x.png", url)
	assert.Equal(t, "/v1_1/democloud/image/upload", gotPath)
	assert.Equal(t, 9, gotFileLen)
	assert.Equal(t, "key", gotFields["api_key"])
	assert.Equal(t, "news", gotFields["folder"])
	assert.Equal(t, "pub-1", gotFields["public_id"])
	assert.NotEmpty(t, gotFields["timestamp"])
	assert.Equal(t, c.sign("news", "pub-1", gotFields["timestamp"]), gotFields["signature"])
}

func TestCDNClient_UploadError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid signature"}}`))
	}))
	defer srv.Close()

	c := NewCDNClient("democloud", "key", "secret", false)
	c.BaseURL = srv.URL

	_, err := c.Upload([]byte("x"), "news", "pub-1", "image")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid signature")
}

func TestGeminiClient_GenerateText(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"a reply"}]}}]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient("api-key", "gemini-2.5-flash")
	c.BaseURL = srv.URL

	text, err := c.GenerateText("a prompt")
	require.NoError(t, err)
	assert.Equal(t, "a reply", text)
	assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "api-key", gotKey)

	contents := gotBody["contents"].([]interface{})
	parts := contents[0].(map[string]interface{})["parts"].([]interface{})
	assert.Equal(t, "a prompt", parts[0].(map[string]interface{})["text"])
}

func TestGeminiClient_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient("api-key", "gemini-2.5-flash")
	c.BaseURL = srv.URL

	_, err := c.GenerateText("a prompt")
	require.Error(t, err)
}
