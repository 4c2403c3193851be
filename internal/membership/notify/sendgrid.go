package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/cashbook/pkg/slogx"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type mailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGrid delivers email invitations through the SendGrid v3 API.
type SendGrid struct {
	client mailSender
	from   *mail.Email
}

func NewSendGrid(apiKey, fromAddress, fromName string) *SendGrid {
	return &SendGrid{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(fromName, fromAddress),
	}
}

func (s *SendGrid) NotifyInvite(ctx context.Context, inv Invitation) error {
	if inv.To == "" {
		return ErrEmptyRecipient
	}

	text, err := renderText(inv)
	if err != nil {
		return err
	}
	html, err := renderHTML(inv)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf(emailSubjectFormat, withDefaults(inv).BusinessName)
	message := mail.NewSingleEmail(s.from, subject, mail.NewEmail("", inv.To), text, html)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status=%d body=%s", resp.StatusCode, resp.Body)
	}

	slogx.FromContext(ctx).Debug("invite email sent",
		slog.Int("status", resp.StatusCode),
	)
	return nil
}
