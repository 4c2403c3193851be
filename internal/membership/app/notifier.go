package app

import (
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/cashbook/internal/membership/notify"
)

// NewNotifier routes email through SendGrid and SMS through Twilio when they
// are configured. Outside prod a channel without a provider falls back to the
// log, and invites on it report Delivered=false. In prod both providers are
// required.
func NewNotifier(cfg Config, logger *slog.Logger) (notify.Notifier, error) {
	d := &notify.Dispatcher{
		Email: notify.Log{},
		SMS:   notify.Log{},
	}

	emailReady := cfg.SendGridAPIKey != "" && cfg.SendGridFrom != ""
	smsReady := cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioFrom != ""

	if cfg.Env == "prod" && !(emailReady && smsReady) {
		return nil, errors.New("SENDGRID_* and TWILIO_* are required in prod")
	}

	if emailReady {
		d.Email = notify.NewSendGrid(cfg.SendGridAPIKey, cfg.SendGridFrom, cfg.SendGridFromName)
		logger.Info("email invites via sendgrid", "from", cfg.SendGridFrom)
	} else {
		logger.Warn("sendgrid not configured, email invites will not be delivered")
	}

	if smsReady {
		d.SMS = notify.NewTwilio(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom)
		logger.Info("sms invites via twilio", "from", cfg.TwilioFrom)
	} else {
		logger.Warn("twilio not configured, sms invites will not be delivered")
	}

	return d, nil
}
