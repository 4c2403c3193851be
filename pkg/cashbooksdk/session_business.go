package cashbooksdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateBusiness creates a business owned by the caller.
// Requires: cashbook:write scope
func (s *Session) CreateBusiness(ctx context.Context, name string) (*Business, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/businesses",
		CreateBusinessRequest{Name: name}, ScopeWrite)
	if err != nil {
		return nil, err
	}

	var b Business
	if err := decodeJSON(resp, &b, http.StatusCreated); err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateCashbook creates a cashbook in a business the caller manages.
// Requires: cashbook:write scope
func (s *Session) CreateCashbook(ctx context.Context, businessID string, req CreateCashbookRequest) (*Cashbook, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost,
		"/v1/businesses/"+url.PathEscape(businessID)+"/cashbooks", req, ScopeWrite)
	if err != nil {
		return nil, err
	}

	var cb Cashbook
	if err := decodeJSON(resp, &cb, http.StatusCreated); err != nil {
		return nil, err
	}
	return &cb, nil
}

// GetRoster returns the business's members, the caller first.
// Requires: cashbook:read scope
func (s *Session) GetRoster(ctx context.Context, businessID string) (*RosterResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet,
		"/v1/businesses/"+url.PathEscape(businessID)+"/roster", nil, ScopeRead)
	if err != nil {
		return nil, err
	}

	var roster RosterResponse
	if err := decodeJSON(resp, &roster, http.StatusOK); err != nil {
		return nil, err
	}
	return &roster, nil
}

// AvailableForBusiness lists Staff from the owner's other businesses who can
// be added to this one.
// Requires: cashbook:read scope
func (s *Session) AvailableForBusiness(ctx context.Context, businessID string) ([]User, error) {
	return s.available(ctx, "/v1/businesses/"+url.PathEscape(businessID)+"/available")
}

// AvailableForCashbook lists the business's Staff who are not yet on the
// cashbook.
// Requires: cashbook:read scope
func (s *Session) AvailableForCashbook(ctx context.Context, businessID, cashbookID string) ([]User, error) {
	return s.available(ctx, "/v1/businesses/"+url.PathEscape(businessID)+
		"/cashbooks/"+url.PathEscape(cashbookID)+"/available")
}

func (s *Session) available(ctx context.Context, path string) ([]User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, ScopeRead)
	if err != nil {
		return nil, err
	}

	var out AvailableResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Users, nil
}
