// Package mail renders and delivers account notification emails.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/keighl/postmark"
	"github.com/knadh/smtppool"
	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/config"
)

// Message is a single outgoing email
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers a message through some transport
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender builds the sender selected by mail.provider.
func NewSender(cfg *config.MailConfig, logger *zap.Logger) (Sender, error) {
	switch config.MailProvider(cfg.Provider) {
	case config.MailProviderSMTP:
		return NewSMTPSender(&cfg.SMTP)
	case config.MailProviderPostmark:
		return NewPostmarkSender(&cfg.Postmark), nil
	case config.MailProviderLog, "":
		return NewLogSender(logger), nil
	default:
		return nil, fmt.Errorf("unsupported mail provider: %q", cfg.Provider)
	}
}

// LogSender writes messages to the log instead of delivering them.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender creates a LogSender
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger.Named("mail")}
}

// Send logs msg
func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("Mail not delivered (log provider)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("text", msg.Text),
	)
	return nil
}

// SMTPSender delivers messages over a pooled SMTP connection.
type SMTPSender struct {
	pool *smtppool.Pool
}

// NewSMTPSender opens an SMTP connection pool
func NewSMTPSender(cfg *config.SMTPConfig) (*SMTPSender, error) {
	var auth smtp.Auth
	if cfg.Username != "" || cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	var tlsConfig *tls.Config
	if cfg.TLS {
		tlsConfig = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}
	}

	pool, err := smtppool.New(smtppool.Opt{
		Host:            cfg.Host,
		Port:            cfg.Port,
		MaxConns:        cfg.MaxConns,
		IdleTimeout:     cfg.IdleTimeout,
		PoolWaitTimeout: cfg.WaitTimeout,
		TLSConfig:       tlsConfig,
		Auth:            auth,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp pool: %w", err)
	}
	return &SMTPSender{pool: pool}, nil
}

// Send delivers msg through the pool
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.pool.Send(smtppool.Email{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    []byte(msg.HTML),
		Text:    []byte(msg.Text),
	})
}

// Close closes every pooled connection
func (s *SMTPSender) Close() {
	s.pool.Close()
}

// PostmarkSender delivers messages through the Postmark API.
type PostmarkSender struct {
	client *postmark.Client
}

// NewPostmarkSender creates a PostmarkSender
func NewPostmarkSender(cfg *config.PostmarkConfig) *PostmarkSender {
	return &PostmarkSender{client: postmark.NewClient(cfg.ServerToken, "")}
}

// Send delivers msg through the API
func (s *PostmarkSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res, err := s.client.SendEmail(postmark.Email{
		From:     msg.From,
		To:       msg.To,
		Subject:  msg.Subject,
		HtmlBody: msg.HTML,
		TextBody: msg.Text,
	})
	if err != nil {
		return fmt.Errorf("postmark: %w", err)
	}
	if res.ErrorCode != 0 {
		return fmt.Errorf("postmark: error %d: %s", res.ErrorCode, res.Message)
	}
	return nil
}
