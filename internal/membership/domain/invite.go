package domain

import "time"

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusExpired  InviteStatus = "expired"
	InviteStatusRevoked  InviteStatus = "revoked"
)

// Terminal statuses never transition again.
func (s InviteStatus) Terminal() bool {
	return s == InviteStatusAccepted || s == InviteStatusExpired || s == InviteStatusRevoked
}

// Valid reports whether s is a known status.
func (s InviteStatus) Valid() bool {
	return s == InviteStatusPending || s.Terminal()
}

// Channel is how an invite reaches its target.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// Invite is an offer for a person identified by exactly one of Email or Phone
// to join a business. Staff invites carry the cashbook they grant.
type Invite struct {
	ID          string
	BusinessID  string
	Email       string
	Phone       string
	Role        Role
	CashbookID  string // Staff only
	Status      InviteStatus
	TokenHash   string // SHA-256 fingerprint, unique
	SealedToken []byte // encrypted raw token, read only by resend
	InvitedBy   string
	CreatedAt   time.Time
	ExpiresAt   time.Time
	AcceptedAt  *time.Time
	AcceptedBy  string
	UpdatedAt   time.Time
}

// Target returns the email or phone the invite was sent to.
func (i Invite) Target() string {
	if i.Email != "" {
		return i.Email
	}
	return i.Phone
}

// Channel returns the delivery channel implied by the target.
func (i Invite) Channel() Channel {
	if i.Email != "" {
		return ChannelEmail
	}
	return ChannelSMS
}

// ExpiredAt reports whether a pending invite has passed its expiry at now.
// Expiry is evaluated lazily; the stored status may still say pending.
func (i Invite) ExpiredAt(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

// EffectiveStatus is the status a caller should see at now.
func (i Invite) EffectiveStatus(now time.Time) InviteStatus {
	if i.Status == InviteStatusPending && i.ExpiredAt(now) {
		return InviteStatusExpired
	}
	return i.Status
}
