package mail

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/config"
)

type recordingSender struct {
	mu       sync.Mutex
	messages []Message
	failures int
}

func (s *recordingSender) Send(_ context.Context, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failures > 0 {
		s.failures--
		return errors.New("transient")
	}
	s.messages = append(s.messages, msg)
	return nil
}

func newTestMailer(t *testing.T, sender Sender) *Mailer {
	t.Helper()
	m, err := NewMailer(sender, &config.MailConfig{From: "noreply@waste.test", RetryAttempts: 3}, nil, zap.NewNop())
	require.NoError(t, err)
	m.retry.InitialInterval = time.Millisecond
	m.retry.MaxInterval = time.Millisecond
	return m
}

func TestMailer_SendPasswordReset(t *testing.T) {
	sender := &recordingSender{}
	m := newTestMailer(t, sender)

	url := "http://localhost:5173/reset-password/abc123"
	require.NoError(t, m.SendPasswordReset(context.Background(), "a@b.com", url, time.Hour))

	require.Len(t, sender.messages, 1)
	msg := sender.messages[0]
	assert.Equal(t, "a@b.com", msg.To)
	assert.Equal(t, "noreply@waste.test", msg.From)
	assert.Equal(t, "Reset your password", msg.Subject)
	assert.Contains(t, msg.HTML, `href="`+url+`"`)
	assert.Contains(t, msg.HTML, Brand)
	assert.Contains(t, msg.HTML, "1 hour")
	assert.Contains(t, msg.Text, url)
}

func TestMailer_SendResetSuccessful(t *testing.T) {
	sender := &recordingSender{}
	m := newTestMailer(t, sender)

	require.NoError(t, m.SendResetSuccessful(context.Background(), "a@b.com"))
	require.Len(t, sender.messages, 1)
	assert.Equal(t, "Password Reset Successful", sender.messages[0].Subject)
	assert.Contains(t, sender.messages[0].HTML, "has been reset")
}

func TestMailer_EscapesURL(t *testing.T) {
	sender := &recordingSender{}
	m := newTestMailer(t, sender)

	require.NoError(t, m.SendPasswordReset(context.Background(), "a@b.com", `javascript:alert("x")`, time.Hour))
	assert.NotContains(t, sender.messages[0].HTML, `javascript:alert`)
}

func TestMailer_Retries(t *testing.T) {
	sender := &recordingSender{failures: 2}
	m := newTestMailer(t, sender)

	require.NoError(t, m.SendResetSuccessful(context.Background(), "a@b.com"))
	assert.Len(t, sender.messages, 1)

	sender.failures = 5
	err := m.SendResetSuccessful(context.Background(), "a@b.com")
	assert.Error(t, err)
	assert.Len(t, sender.messages, 1)
}

func TestHumanDuration(t *testing.T) {
	tests := map[time.Duration]string{
		time.Hour:        "1 hour",
		2 * time.Hour:    "2 hours",
		30 * time.Minute: "30 minutes",
		90 * time.Second: "1m30s",
	}
	for d, want := range tests {
		if got := humanDuration(d); got != want {
			t.Errorf("humanDuration(%v) = %q, want %q", d, got, want)
		}
	}
}

func TestNewSender(t *testing.T) {
	s, err := NewSender(&config.MailConfig{Provider: "log"}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &LogSender{}, s)
	assert.NoError(t, s.Send(context.Background(), Message{To: "a@b.com"}))

	s, err = NewSender(&config.MailConfig{Provider: "postmark", Postmark: config.PostmarkConfig{ServerToken: "tok"}}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &PostmarkSender{}, s)

	_, err = NewSender(&config.MailConfig{Provider: "carrier-pigeon"}, zap.NewNop())
	assert.Error(t, err)
}

func TestPostmarkSender_Send(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/email", r.URL.Path)
		assert.Equal(t, "tok", r.Header.Get("X-Postmark-Server-Token"))
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"To":"a@b.com","MessageID":"m-1","ErrorCode":0,"Message":"OK"}`))
	}))
	defer server.Close()

	sender := NewPostmarkSender(&config.PostmarkConfig{ServerToken: "tok"})
	sender.client.BaseURL = server.URL

	err := sender.Send(context.Background(), Message{From: "f@waste.test", To: "a@b.com", Subject: "hi", HTML: "<p>hi</p>", Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", got["To"])
	assert.Equal(t, "<p>hi</p>", got["HtmlBody"])
}

func TestPostmarkSender_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sender := NewPostmarkSender(&config.PostmarkConfig{ServerToken: "tok"})
	assert.ErrorIs(t, sender.Send(ctx, Message{}), context.Canceled)
}
