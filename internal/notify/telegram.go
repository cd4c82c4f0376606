package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"library-service/config"
)

// MessageSender is the narrow capability the notifier needs from the
// messaging channel. Tests substitute a fake; retry policy can be added
// here without touching the scan logic.
type MessageSender interface {
	Send(ctx context.Context, text string) error
}

// TelegramSender pushes messages to a fixed chat via the Bot API.
type TelegramSender struct {
	cfg    config.NotifierConfig
	client *http.Client
}

func NewTelegramSender(cfg config.NotifierConfig) *TelegramSender {
	return &TelegramSender{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *TelegramSender) Send(ctx context.Context, text string) error {
	form := url.Values{}
	form.Set("chat_id", s.cfg.ChatID)
	form.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
