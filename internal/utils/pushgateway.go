package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// PushClient talks to the FCM v1 send endpoint. In dry-run mode (or with no
// token configured) it logs instead of calling out, same as the SMS client
// this service used before.
type PushClient struct {
	ProjectID   string
	AccessToken string
	DryRun      bool

	// BaseURL is overridable in tests; empty means the real endpoint.
	BaseURL string

	client *http.Client
}

func NewPushClient(projectID, accessToken string, dryRun bool) *PushClient {
	return &PushClient{
		ProjectID:   projectID,
		AccessToken: accessToken,
		DryRun:      dryRun,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type pushMessage struct {
	Token   string            `json:"token"`
	Data    map[string]string `json:"data"`
	Android struct {
		Priority string `json:"priority"`
		TTL      string `json:"ttl"`
	} `json:"android"`
	APNS struct {
		Headers map[string]string `json:"headers"`
		Payload struct {
			APS map[string]interface{} `json:"aps"`
		} `json:"payload"`
	} `json:"apns"`
}

type sendPushResponse struct {
	Name  string `json:"name"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Send delivers one data notification to a device token and returns the
// gateway's message identifier.
func (c *PushClient) Send(token, title, body string) (string, error) {
	if c.DryRun || c.AccessToken == "" || c.AccessToken == "dry-run" {
		fmt.Printf("[push][dry-run] token=%s title=%q\n", token, title)
		return fmt.Sprintf("projects/%s/messages/dry-run", c.ProjectID), nil
	}

	msg := pushMessage{
		Token: token,
		Data:  map[string]string{"title": title, "body": body},
	}
	msg.Android.Priority = "high"
	msg.Android.TTL = "3600s"
	msg.APNS.Headers = map[string]string{"apns-priority": "10"}
	msg.APNS.Payload.APS = map[string]interface{}{"content-available": 1}

	payload, err := json.Marshal(map[string]interface{}{"message": msg})
	if err != nil {
		return "", fmt.Errorf("marshal push message: %w", err)
	}

	base := c.BaseURL
	if base == "" {
		base = "https://fcm.googleapis.com"
	}
	url := fmt.Sprintf("%s/v1/projects/%s/messages:send", base, c.ProjectID)

	req, err := http.NewRequest("POST", url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send push request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	var result sendPushResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("parse push response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || result.Error != nil {
		if result.Error != nil {
			return "", fmt.Errorf("push gateway error: status=%d code=%d %s", resp.StatusCode, result.Error.Code, result.Error.Message)
		}
		return "", fmt.Errorf("push gateway error: status=%d body=%s", resp.StatusCode, string(respBody))
	}
	return result.Name, nil
}
