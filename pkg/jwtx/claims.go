package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultLeeway absorbs clock skew between the issuer and this service.
const DefaultLeeway = 30 * time.Second

// Claims are the access-token claims this service reads. The auth service
// issues them; the profile fields let us keep a local user directory in sync
// without calling back.
type Claims struct {
	jwt.RegisteredClaims

	// Session ID
	SID string `json:"sid,omitempty"`

	// Permission Scopes "cashbook:read", "cashbook:write"
	Scopes []string `json:"scopes,omitempty"`

	Email         string `json:"email,omitempty"`
	PhoneNumber   string `json:"phone_number,omitempty"`
	Name          string `json:"name,omitempty"`
	PreferredName string `json:"preferred_name,omitempty"`
}

// Profile is the subset of identity claims copied into the user directory.
type Profile struct {
	Email         string
	PhoneNumber   string
	Name          string
	PreferredName string
}

// NewAccessClaims builds minimally-correct claims. Used by tests and local
// tooling that need to mint tokens the verifier accepts.
func NewAccessClaims(
	subject string,
	scopes []string,
	profile Profile,
	ttl time.Duration,
	issuer string,
	audience []string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings(audience),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Scopes:        scopes,
		Email:         profile.Email,
		PhoneNumber:   profile.PhoneNumber,
		Name:          profile.Name,
		PreferredName: profile.PreferredName,
	}
}

// Profile returns the identity fields carried by the token.
func (c *Claims) Profile() Profile {
	return Profile{
		Email:         c.Email,
		PhoneNumber:   c.PhoneNumber,
		Name:          c.Name,
		PreferredName: c.PreferredName,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateAudience checks if at least one expected audience is present.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil
	}

	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}

	return ErrAudience
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	return c.ValidateExpiryWithLeeway(0)
}

// ValidateExpiryWithLeeway adds a small grace period for clock skew.
func (c *Claims) ValidateExpiryWithLeeway(leeway time.Duration) error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}

	return nil
}

// ValidateSubject rejects tokens that do not name a user.
func (c *Claims) ValidateSubject() error {
	if c.Subject == "" {
		return ErrInvalidClaim
	}
	return nil
}
