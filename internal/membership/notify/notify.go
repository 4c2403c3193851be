// Package notify delivers invitation links over email and SMS.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/cashbook/internal/membership/domain"
)

var (
	ErrNoChannel      = errors.New("notify: no notifier for channel")
	ErrEmptyRecipient = errors.New("notify: empty recipient")
	ErrNotDelivered   = errors.New("notify: no provider configured, invitation not sent")
)

// Invitation is everything a notifier needs to render one invite message.
type Invitation struct {
	Channel      domain.Channel
	To           string
	BusinessName string
	InviterName  string
	Role         domain.Role
	Link         string
	ExpiresAt    time.Time
}

// Notifier delivers an invitation to its recipient.
type Notifier interface {
	NotifyInvite(ctx context.Context, inv Invitation) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, inv Invitation) error

func (f NotifierFunc) NotifyInvite(ctx context.Context, inv Invitation) error {
	return f(ctx, inv)
}

// Dispatcher routes an invitation to the notifier for its channel.
type Dispatcher struct {
	Email Notifier
	SMS   Notifier
}

func (d *Dispatcher) NotifyInvite(ctx context.Context, inv Invitation) error {
	if inv.To == "" {
		return ErrEmptyRecipient
	}

	var n Notifier
	switch inv.Channel {
	case domain.ChannelEmail:
		n = d.Email
	case domain.ChannelSMS:
		n = d.SMS
	}
	if n == nil {
		return fmt.Errorf("%w: %q", ErrNoChannel, inv.Channel)
	}

	return n.NotifyInvite(ctx, inv)
}
