package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

const defaultApiUrl = "https://api.telegram.org"

// ConfigError means a required secret is absent; no network call was made.
type ConfigError struct {
	message string
}

func (e *ConfigError) Error() string {
	return e.message
}

func NewConfigError(msg string) *ConfigError {
	return &ConfigError{message: msg}
}

// Result is the normalized provider outcome. Ok reflects the HTTP 2xx range;
// a non-2xx response is reported here, not returned as an error.
type Result struct {
	Ok     bool
	Status int
	Body   string
}

type Notifier interface {
	Send(ctx context.Context, text string) (Result, error)
}

type notifier struct {
	token      string
	chatId     string
	apiUrl     string
	httpClient *http.Client
}

func NewNotifier(token, chatId string) Notifier {
	return &notifier{
		token:      token,
		chatId:     chatId,
		apiUrl:     defaultApiUrl,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type sendMessageRequest struct {
	ChatId    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Send posts one message to the configured chat. The response body is always
// read as text regardless of status. Network-level failures come back as
// errors and are the caller's to handle.
func (n *notifier) Send(ctx context.Context, text string) (Result, error) {
	if n.token == "" || n.chatId == "" {
		return Result{}, NewConfigError("Missing TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID")
	}

	payload, err := json.Marshal(sendMessageRequest{ChatId: n.chatId, Text: text, ParseMode: "HTML"})
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.apiUrl+"/bot"+n.token+"/sendMessage", bytes.NewBuffer(payload))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Ok:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status: resp.StatusCode,
		Body:   string(body),
	}, nil
}
