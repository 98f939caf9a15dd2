package whiteboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client is a Store backed by the REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: http.DefaultClient,
	}
}

type envelope struct {
	Success bool `json:"success"`
	Data    struct {
		Elements json.RawMessage `json:"elements"`
	} `json:"data"`
}

func (c *Client) Load(ctx context.Context, roomID string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.whiteboardURL(roomID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("whiteboard load failed with status %d", resp.StatusCode)
	}

	var body envelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Data.Elements, nil
}

func (c *Client) Save(ctx context.Context, roomID string, elements json.RawMessage) error {
	payload, err := json.Marshal(map[string]json.RawMessage{"elements": elements})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.whiteboardURL(roomID), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("whiteboard save failed with status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) whiteboardURL(roomID string) string {
	return fmt.Sprintf("%s/api/rooms/%s/whiteboard", c.baseURL, roomID)
}
