// Package notify delivers push messages through the LINE Messaging
// API.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ncobase/todosheet/config"
)

const defaultEndpoint = "https://api.line.me/v2/bot/message/push"

// ErrNotConfigured is returned by Push when the channel token or
// recipient id is missing.
var ErrNotConfigured = errors.New("line messaging is not configured")

// Client pushes text messages to one LINE user.
type Client struct {
	endpoint string
	token    string
	to       string
	httpc    *http.Client
}

// New builds a LINE client from config. A client is returned even when
// credentials are missing; Push then fails with ErrNotConfigured so
// the caller can decide how loudly to complain.
func New(c *config.Line) *Client {
	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		token:    c.AccessToken,
		to:       c.UserID,
		httpc:    &http.Client{Timeout: timeout},
	}
}

type pushRequest struct {
	To       string        `json:"to"`
	Messages []pushMessage `json:"messages"`
}

type pushMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Push sends one text message to the configured recipient.
func (c *Client) Push(ctx context.Context, text string) error {
	if c.token == "" || c.to == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(pushRequest{
		To:       c.to,
		Messages: []pushMessage{{Type: "text", Text: text}},
	})
	if err != nil {
		return fmt.Errorf("failed to encode push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	res, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("push rejected with status %d: %s", res.StatusCode, detail)
	}
	return nil
}
