package notify

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/aussiebroadwan/cashbook/pkg/slogx"
)

// Log records that an invitation was not sent. It stands in for a provider
// that is not configured and always returns ErrNotDelivered. The link is
// logged with its token removed.
type Log struct{}

func (Log) NotifyInvite(ctx context.Context, inv Invitation) error {
	slogx.FromContext(ctx).Info("invite notification (not delivered)",
		slog.String("channel", string(inv.Channel)),
		slog.String("to", inv.To),
		slog.String("business", inv.BusinessName),
		slog.String("role", inv.Role.String()),
		slog.String("link", redactToken(inv.Link)),
	)
	return ErrNotDelivered
}

func redactToken(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	q := u.Query()
	if q.Has("token") {
		q.Set("token", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
