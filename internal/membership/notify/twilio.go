package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/cashbook/pkg/slogx"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type smsSender interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// Twilio delivers SMS invitations through the Twilio Messages API.
type Twilio struct {
	api  smsSender
	from string
}

func NewTwilio(accountSID, authToken, from string) *Twilio {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &Twilio{api: client.Api, from: from}
}

// NotifyInvite sends the message synchronously. The Twilio client has no
// context support; ctx only carries the logger.
func (t *Twilio) NotifyInvite(ctx context.Context, inv Invitation) error {
	if inv.To == "" {
		return ErrEmptyRecipient
	}

	body, err := renderSMS(inv)
	if err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(inv.To)
	params.SetFrom(t.from)
	params.SetBody(body)

	msg, err := t.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send: %w", err)
	}

	sid := ""
	if msg != nil && msg.Sid != nil {
		sid = *msg.Sid
	}
	slogx.FromContext(ctx).Debug("invite sms sent", slog.String("message_sid", sid))
	return nil
}
