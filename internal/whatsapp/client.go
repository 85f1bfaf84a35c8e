package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://graph.facebook.com/v17.0"

// Client sends text messages through the WhatsApp Cloud API.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	token         string
	phoneNumberID string
	logger        *zap.Logger
}

func NewClient(token, phoneNumberID string, logger *zap.Logger) *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		baseURL:       defaultBaseURL,
		token:         token,
		phoneNumberID: phoneNumberID,
		logger:        logger,
	}
}

// Configured reports whether the client has credentials to actually send.
func (c *Client) Configured() bool {
	return c.token != "" && c.phoneNumberID != ""
}

type textMessage struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type textBody struct {
	Body string `json:"body"`
}

// SendText delivers one message to a phone number. Without credentials the
// message is logged instead of sent, which keeps local setups usable.
func (c *Client) SendText(ctx context.Context, to, body string) error {
	if !c.Configured() {
		c.logger.Info("whatsapp token not configured, dropping outbound message",
			zap.String("to", to), zap.String("body", body))
		return nil
	}

	payload, err := json.Marshal(textMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             textBody{Body: body},
	})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("whatsapp api status %d: %s", resp.StatusCode, detail)
	}
	return nil
}
