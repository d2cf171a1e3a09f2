package di

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/config"
	"github.com/jrjohn/smart-waste-go/internal/domain/service"
	"github.com/jrjohn/smart-waste-go/internal/geocoding"
	"github.com/jrjohn/smart-waste-go/internal/mail"
	"github.com/jrjohn/smart-waste-go/internal/observability"
	"github.com/jrjohn/smart-waste-go/internal/resilience"
)

// GeocodingModule provides the address geocoder
var GeocodingModule = fx.Module("geocoding",
	fx.Provide(
		resilience.NewCircuitBreakerRegistry,
		provideGeocoder,
	),
)

// MailModule provides the outbound mail notifier
var MailModule = fx.Module("mail",
	fx.Provide(
		provideMailSender,
		mail.NewMailer,
		provideNotifier,
	),
)

func provideGeocoder(
	cfg *config.GeocoderConfig,
	breakers *resilience.CircuitBreakerRegistry,
	metrics *observability.MetricsProvider,
	logger *zap.Logger,
) geocoding.Geocoder {
	return geocoding.NewNominatimClient(cfg, breakers, metrics, logger)
}

func provideMailSender(lc fx.Lifecycle, cfg *config.MailConfig, logger *zap.Logger) (mail.Sender, error) {
	sender, err := mail.NewSender(cfg, logger)
	if err != nil {
		return nil, err
	}
	if pooled, ok := sender.(*mail.SMTPSender); ok {
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				pooled.Close()
				return nil
			},
		})
	}
	return sender, nil
}

func provideNotifier(mailer *mail.Mailer) service.Notifier {
	return mailer
}
