package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tannerhall/hearth/internal/models"
)

// WebhookNotifier posts reminders to an external delivery service that owns
// the actual push/email fan-out.
type WebhookNotifier struct {
	endpoint string
	client   *http.Client
}

func NewWebhookNotifier(endpoint string) *WebhookNotifier {
	return &WebhookNotifier{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 8 * time.Second,
		},
	}
}

type webhookPayload struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

func (notifier *WebhookNotifier) Notify(ctx context.Context, user models.User, title string, body string) error {
	payload, err := json.Marshal(webhookPayload{
		UserID: user.ID,
		Email:  user.Email,
		Title:  title,
		Body:   body,
	})
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, notifier.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := notifier.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("webhook status %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}
