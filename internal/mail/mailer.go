package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/config"
	"github.com/jrjohn/smart-waste-go/internal/observability"
	"github.com/jrjohn/smart-waste-go/internal/resilience"
)

// Brand is the product name shown in every email
const Brand = "Smart Waste Management System"

// Template names, also used as the metrics label
const (
	TemplatePasswordReset   = "password_reset_request"
	TemplateResetSuccessful = "password_reset_success"
)

//go:embed templates/*.html
var templateFS embed.FS

type templateData struct {
	Brand     string
	ResetURL  string
	ExpiresIn string
}

// Mailer renders the account emails and hands them to a Sender.
type Mailer struct {
	sender    Sender
	from      string
	templates *template.Template
	retry     *resilience.RetryConfig
	metrics   *observability.MetricsProvider
	logger    *zap.Logger
}

// NewMailer parses the embedded templates and creates a Mailer
func NewMailer(sender Sender, cfg *config.MailConfig, metrics *observability.MetricsProvider, logger *zap.Logger) (*Mailer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse mail templates: %w", err)
	}

	retry := resilience.DefaultRetryConfig()
	if cfg.RetryAttempts > 0 {
		retry.MaxAttempts = cfg.RetryAttempts
	}

	return &Mailer{
		sender:    sender,
		from:      cfg.From,
		templates: tmpl,
		retry:     retry,
		metrics:   metrics,
		logger:    logger.Named("mailer"),
	}, nil
}

// SendPasswordReset mails the reset link to the account owner
func (m *Mailer) SendPasswordReset(ctx context.Context, to, resetURL string, ttl time.Duration) error {
	text := fmt.Sprintf("We received a request to reset your %s password.\n\nOpen %s to choose a new one. The link expires in %s.\n",
		Brand, resetURL, humanDuration(ttl))

	return m.send(ctx, TemplatePasswordReset, to, "Reset your password", text, templateData{
		Brand:     Brand,
		ResetURL:  resetURL,
		ExpiresIn: humanDuration(ttl),
	})
}

// SendResetSuccessful confirms a completed password reset
func (m *Mailer) SendResetSuccessful(ctx context.Context, to string) error {
	text := fmt.Sprintf("The password of your %s account has been reset.\nIf you did not do this, contact support immediately.\n", Brand)

	return m.send(ctx, TemplateResetSuccessful, to, "Password Reset Successful", text, templateData{Brand: Brand})
}

func (m *Mailer) send(ctx context.Context, name, to, subject, text string, data templateData) error {
	var body bytes.Buffer
	if err := m.templates.ExecuteTemplate(&body, name+".html", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	msg := Message{
		From:    m.from,
		To:      to,
		Subject: subject,
		HTML:    body.String(),
		Text:    text,
	}

	err := resilience.Retry(ctx, m.retry, func(ctx context.Context) error {
		return m.sender.Send(ctx, msg)
	})
	if err != nil {
		m.metrics.RecordMail(ctx, name, observability.OutcomeError)
		m.logger.Error("Failed to send mail", zap.String("template", name), zap.String("to", to), zap.Error(err))
		return fmt.Errorf("send %s: %w", name, err)
	}

	m.metrics.RecordMail(ctx, name, observability.OutcomeSuccess)
	m.logger.Info("Mail sent", zap.String("template", name), zap.String("to", to))
	return nil
}

func humanDuration(d time.Duration) string {
	switch {
	case d == time.Hour:
		return "1 hour"
	case d%time.Hour == 0:
		return fmt.Sprintf("%d hours", d/time.Hour)
	case d%time.Minute == 0:
		return fmt.Sprintf("%d minutes", d/time.Minute)
	default:
		return d.String()
	}
}
