// Package notifier delivers analysis results to Slack. Formatting and
// delivery only; no decision logic lives here.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

// SlackNotifier posts messages to an incoming-webhook URL.
type SlackNotifier struct {
	WebhookURL string
	Client     *http.Client
}

// NewSlackNotifier creates a notifier. An empty webhook URL disables
// sending (Send becomes a no-op) so callers need no nil checks.
func NewSlackNotifier(webhookURL, proxyURL string) *SlackNotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &SlackNotifier{
		WebhookURL: webhookURL,
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

// Send posts one message.
func (n *SlackNotifier) Send(ctx context.Context, text string) error {
	if n.WebhookURL == "" {
		return nil
	}

	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.Client.Do(req)
	if err != nil {
		return fmt.Errorf("slack send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("slack: status %d, body: %s", resp.StatusCode, string(body))
	}
	return nil
}

// SendWithRetry retries failed sends with a short fixed backoff.
func (n *SlackNotifier) SendWithRetry(ctx context.Context, text string, attempts int) error {
	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := n.Send(ctx, text); err != nil {
			lastErr = err
			log.Warn().Err(err).Int("attempt", i+1).Msg("slack send failed")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(2 * time.Second):
			}
			continue
		}
		return nil
	}
	return fmt.Errorf("slack send after %d attempts: %w", attempts, lastErr)
}
