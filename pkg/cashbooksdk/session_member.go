package cashbooksdk

import (
	"context"
	"net/http"
	"net/url"
)

// AddBusinessMember adds an existing user to the business as "partner" or
// "staff".
// Requires: cashbook:write scope
func (s *Session) AddBusinessMember(ctx context.Context, businessID, userID, role string) (*MembershipResponse, error) {
	return s.addMember(ctx, "/v1/businesses/"+url.PathEscape(businessID)+"/members",
		AddMemberRequest{UserID: userID, Role: role})
}

// AddCashbookMember adds an existing user to a cashbook.
// Requires: cashbook:write scope
func (s *Session) AddCashbookMember(ctx context.Context, businessID, cashbookID, userID string) (*MembershipResponse, error) {
	return s.addMember(ctx, "/v1/businesses/"+url.PathEscape(businessID)+
		"/cashbooks/"+url.PathEscape(cashbookID)+"/members",
		AddMemberRequest{UserID: userID})
}

func (s *Session) addMember(ctx context.Context, path string, req AddMemberRequest) (*MembershipResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, req, ScopeWrite)
	if err != nil {
		return nil, err
	}

	var m MembershipResponse
	if err := decodeJSON(resp, &m, http.StatusCreated); err != nil {
		return nil, err
	}
	return &m, nil
}

// RemoveBusinessMember removes a user from the business and every cashbook
// in it.
// Requires: cashbook:write scope
func (s *Session) RemoveBusinessMember(ctx context.Context, businessID, userID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete,
		"/v1/businesses/"+url.PathEscape(businessID)+"/members/"+url.PathEscape(userID), nil, ScopeWrite)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// RemoveCashbookMember removes a user from one cashbook.
// Requires: cashbook:write scope
func (s *Session) RemoveCashbookMember(ctx context.Context, businessID, cashbookID, userID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete,
		"/v1/businesses/"+url.PathEscape(businessID)+"/cashbooks/"+url.PathEscape(cashbookID)+
			"/members/"+url.PathEscape(userID), nil, ScopeWrite)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
