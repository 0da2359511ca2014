package utils

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// CDNClient uploads binary assets to a Cloudinary-compatible upload API and
// returns the served HTTPS URL. Uploads are signed with the account secret.
type CDNClient struct {
	CloudName string
	APIKey    string
	APISecret string
	DryRun    bool

	// BaseURL is overridable in tests; empty means the real endpoint.
	BaseURL string

	client *http.Client
}

func NewCDNClient(cloudName, apiKey, apiSecret string, dryRun bool) *CDNClient {
	return &CDNClient{
		CloudName: cloudName,
		APIKey:    apiKey,
		APISecret: apiSecret,
		DryRun:    dryRun,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

type cdnUploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the file bytes under folder/publicID. resourceType is
// "image" or "video" (QR codes go up as images).
func (c *CDNClient) Upload(data []byte, folder, publicID, resourceType string) (string, error) {
	if c.DryRun || c.APISecret == "" {
		fmt.Printf("[cdn][dry-run] folder=%s public_id=%s bytes=%d\n", folder, publicID, len(data))
		return fmt.Sprintf("https://res.cloudinary.example/%s/%s/%s", resourceType, folder, publicID), nil
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	signature := c.sign(folder, publicID, timestamp)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", publicID)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	fields := map[string]string{
		"api_key":   c.APIKey,
		"timestamp": timestamp,
		"signature": signature,
		"folder":    folder,
		"public_id": publicID,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	base := c.BaseURL
	if base == "" {
		base = "https://api.cloudinary.com"
	}
	url := fmt.Sprintf("%s/v1_1/%s/%s/upload", base, c.CloudName, resourceType)

	req, err := http.NewRequest("POST", url, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("cdn upload request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	var result cdnUploadResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("parse cdn response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || result.Error != nil {
		if result.Error != nil {
			return "", fmt.Errorf("cdn upload failed: status=%d %s", resp.StatusCode, result.Error.Message)
		}
		return "", fmt.Errorf("cdn upload failed: status=%d body=%s", resp.StatusCode, string(respBody))
	}
	return result.SecureURL, nil
}

// sign builds the request signature: SHA-1 over the alphabetically ordered
// upload params concatenated with the API secret.
func (c *CDNClient) sign(folder, publicID, timestamp string) string {
	toSign := fmt.Sprintf("folder=%s&public_id=%s&timestamp=%s%s", folder, publicID, timestamp, c.APISecret)
	sum := sha1.Sum([]byte(toSign))
	return hex.EncodeToString(sum[:])
}
