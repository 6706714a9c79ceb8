package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	TOKEN   = "123:abc"
	CHAT_ID = "-1000001"
	TEXT    = "Hello there"
)

// RoundTripFunc .
type RoundTripFunc func(req *http.Request) (*http.Response, error)

// RoundTrip .
func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

//NewTestClient returns *http.Client with Transport replaced to avoid making real calls
func NewTestClient(fn RoundTripFunc) *http.Client {
	return &http.Client{
		Transport: fn,
	}
}

func newTestNotifier(fn RoundTripFunc) *notifier {
	return &notifier{
		token:      TOKEN,
		chatId:     CHAT_ID,
		apiUrl:     defaultApiUrl,
		httpClient: NewTestClient(fn),
	}
}

func TestSendMissingConfig(t *testing.T) {
	n := &notifier{token: "", chatId: CHAT_ID}

	_, err := n.Send(context.Background(), TEXT)

	require.Error(t, err)
	var confErr *ConfigError
	require.True(t, errors.As(err, &confErr))

	n = &notifier{token: TOKEN, chatId: ""}

	_, err = n.Send(context.Background(), TEXT)

	require.Error(t, err)
	require.True(t, errors.As(err, &confErr))
}

func TestSendOk(t *testing.T) {
	var gotUrl string
	var gotPayload sendMessageRequest

	n := newTestNotifier(func(req *http.Request) (*http.Response, error) {
		gotUrl = req.URL.String()
		body, _ := io.ReadAll(req.Body)
		_ = json.Unmarshal(body, &gotPayload)
		return &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(`{"ok":true}`)),
			Header:     make(http.Header),
		}, nil
	})

	res, err := n.Send(context.Background(), TEXT)

	require.NoError(t, err)
	require.True(t, res.Ok)
	require.Equal(t, 200, res.Status)
	require.Equal(t, `{"ok":true}`, res.Body)

	require.Equal(t, defaultApiUrl+"/bot"+TOKEN+"/sendMessage", gotUrl)
	require.Equal(t, CHAT_ID, gotPayload.ChatId)
	require.Equal(t, TEXT, gotPayload.Text)
	require.Equal(t, "HTML", gotPayload.ParseMode)
}

func TestSendNon2xx(t *testing.T) {
	n := newTestNotifier(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: 400,
			Body:       io.NopCloser(strings.NewReader(`{"ok":false,"description":"Bad Request"}`)),
			Header:     make(http.Header),
		}, nil
	})

	res, err := n.Send(context.Background(), TEXT)

	//a non-2xx answer is reported, not returned as an error
	require.NoError(t, err)
	require.False(t, res.Ok)
	require.Equal(t, 400, res.Status)
	require.Contains(t, res.Body, "Bad Request")
}

func TestSendTransportError(t *testing.T) {
	n := newTestNotifier(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp: no route to host")
	})

	_, err := n.Send(context.Background(), TEXT)

	require.Error(t, err)
	var confErr *ConfigError
	require.False(t, errors.As(err, &confErr))
}
