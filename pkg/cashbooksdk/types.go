package cashbooksdk

// ============================================================================
// Error and Health Types
// ============================================================================

// ErrorResponse is the error envelope every endpoint returns.
type ErrorResponse struct {
	// Error is a machine-readable code (e.g., "already_member", "not_pending")
	Error string `json:"error"`

	// ErrorDescription is a human-readable, actionable message
	ErrorDescription string `json:"error_description,omitempty"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the dependencies /readyz probes.
type HealthChecks struct {
	Database string `json:"database"`
	Keys     string `json:"keys"`
}

// ============================================================================
// Reference Data
// ============================================================================

// User is a member as shown on a roster.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// Business is a group of cashbooks with a single owner.
type Business struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OwnerID   string `json:"owner_id"`
	CreatedAt int64  `json:"created_at"`
}

// Cashbook is a ledger inside a business.
type Cashbook struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	OwnerID    string `json:"owner_id"`
	BusinessID string `json:"business_id"`
	CreatedAt  int64  `json:"created_at"`
}

// CreateBusinessRequest creates a business owned by the caller.
type CreateBusinessRequest struct {
	Name string `json:"name"`
}

// CreateCashbookRequest creates a cashbook in a business. OwnerID defaults to
// the caller.
type CreateCashbookRequest struct {
	Name    string `json:"name"`
	OwnerID string `json:"owner_id,omitempty"`
}

// ============================================================================
// Roster Types
// ============================================================================

// CashbookAccess is one cashbook a roster member can reach.
type CashbookAccess struct {
	CashbookID   string `json:"cashbook_id"`
	CashbookName string `json:"cashbook_name"`

	// Relation is "owner" or "member"
	Relation string `json:"relation"`
}

// RosterEntry is one classified member of a business.
type RosterEntry struct {
	User User `json:"user"`

	// Role is "owner", "partner" or "staff"
	Role      string           `json:"role"`
	Cashbooks []CashbookAccess `json:"cashbooks"`
}

// RosterResponse lists a business's members, the caller first.
type RosterResponse struct {
	Business Business      `json:"business"`
	Members  []RosterEntry `json:"members"`
}

// AvailableResponse lists users that can be added to a cashbook or business.
type AvailableResponse struct {
	Users []User `json:"users"`
}

// ============================================================================
// Membership Types
// ============================================================================

// AddMemberRequest adds an existing user. Role is required at business scope
// ("partner" or "staff") and ignored at cashbook scope.
type AddMemberRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role,omitempty"`
}

// MembershipResponse describes a stored membership.
type MembershipResponse struct {
	UserID     string `json:"user_id"`
	BusinessID string `json:"business_id,omitempty"`
	CashbookID string `json:"cashbook_id,omitempty"`
	Role       string `json:"role"`
	AddedAt    int64  `json:"added_at"`
}

// ============================================================================
// Invite Types
// ============================================================================

// CreateInviteRequest invites a person by exactly one of Email or Phone.
// Staff invites need CashbookID; Partner invites ignore it.
type CreateInviteRequest struct {
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Role       string `json:"role"`
	CashbookID string `json:"cashbook_id,omitempty"`
}

// Invite is an invite record. The raw token is never included.
type Invite struct {
	ID         string `json:"id"`
	BusinessID string `json:"business_id"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Role       string `json:"role"`
	CashbookID string `json:"cashbook_id,omitempty"`

	// Status is "pending", "accepted", "expired" or "revoked"
	Status     string `json:"status"`
	InvitedBy  string `json:"invited_by"`
	CreatedAt  int64  `json:"created_at"`
	ExpiresAt  int64  `json:"expires_at"`
	AcceptedAt int64  `json:"accepted_at,omitempty"`
	AcceptedBy string `json:"accepted_by,omitempty"`
}

// InviteResponse is returned by create and resend.
type InviteResponse struct {
	Invite Invite `json:"invite"`

	// Link is the invitation URL that was (or should be) delivered.
	Link string `json:"link"`

	// Delivered is false when the notification failed; the invite is still
	// pending and can be resent.
	Delivered bool `json:"delivered"`

	// ExistingUserID is set when the target already has an account.
	ExistingUserID string `json:"existing_user_id,omitempty"`
}

// ListInvitesResponse lists a business's invites, newest first.
type ListInvitesResponse struct {
	Invites []Invite `json:"invites"`
}

// InvitePreviewResponse is what the invitation landing page shows.
type InvitePreviewResponse struct {
	BusinessID   string `json:"business_id"`
	BusinessName string `json:"business_name"`
	CashbookID   string `json:"cashbook_id,omitempty"`
	CashbookName string `json:"cashbook_name,omitempty"`
	Role         string `json:"role"`
	Status       string `json:"status"`
	ExpiresAt    int64  `json:"expires_at"`
}

// AcceptInviteRequest redeems an invitation token for the caller.
type AcceptInviteRequest struct {
	Token string `json:"token"`
}

// AcceptInviteResponse reports the accepted invite and the membership it
// produced.
type AcceptInviteResponse struct {
	Invite     Invite             `json:"invite"`
	Membership MembershipResponse `json:"membership"`
}
