package cashbooksdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateInvite invites a person to the business.
// Requires: cashbook:write scope
func (s *Session) CreateInvite(ctx context.Context, businessID string, req CreateInviteRequest) (*InviteResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost,
		"/v1/businesses/"+url.PathEscape(businessID)+"/invites", req, ScopeWrite)
	if err != nil {
		return nil, err
	}

	var out InviteResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvites lists the business's invites. status filters by effective
// status; empty returns all.
// Requires: cashbook:read scope
func (s *Session) ListInvites(ctx context.Context, businessID, status string) ([]Invite, error) {
	path := "/v1/businesses/" + url.PathEscape(businessID) + "/invites"
	if status != "" {
		path += "?" + url.Values{"status": {status}}.Encode()
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, ScopeRead)
	if err != nil {
		return nil, err
	}

	var out ListInvitesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Invites, nil
}

// ResendInvite re-delivers a pending invite with its original link.
// Requires: cashbook:write scope
func (s *Session) ResendInvite(ctx context.Context, inviteID string) (*InviteResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost,
		"/v1/invites/"+url.PathEscape(inviteID)+"/resend", nil, ScopeWrite)
	if err != nil {
		return nil, err
	}

	var out InviteResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// RevokeInvite revokes a pending invite.
// Requires: cashbook:write scope
func (s *Session) RevokeInvite(ctx context.Context, inviteID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete,
		"/v1/invites/"+url.PathEscape(inviteID), nil, ScopeWrite)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// LookupInvite previews an invitation token.
func (s *Session) LookupInvite(ctx context.Context, token string) (*InvitePreviewResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet,
		"/v1/invites/lookup?"+url.Values{"token": {token}}.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var out InvitePreviewResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptInvite redeems an invitation token as the session's user.
func (s *Session) AcceptInvite(ctx context.Context, token string) (*AcceptInviteResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/invites/accept",
		AcceptInviteRequest{Token: token})
	if err != nil {
		return nil, err
	}

	var out AcceptInviteResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
