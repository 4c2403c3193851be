package cashbooksdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error codes returned by the membership service.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeInvalidTarget     = "invalid_target"
	ErrorCodeInvalidRole       = "invalid_role"
	ErrorCodeCashbookRequired  = "cashbook_required"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeNotPending        = "not_pending"
	ErrorCodeExpired           = "invite_expired"
	ErrorCodeInvalidToken      = "invalid_invite_token"
	ErrorCodeAlreadyResolved   = "already_resolved"
	ErrorCodeAlreadyMember     = "already_member"
	ErrorCodeNotMember         = "not_member"
	ErrorCodeIsOwner           = "is_owner"
	ErrorCodeForbidden         = "forbidden"
	ErrorCodeNotificationFail  = "notification_failed"
	ErrorCodeUnauthorized      = "invalid_token"
	ErrorCodeInsufficientScope = "insufficient_scope"
	ErrorCodeRateLimited       = "rate_limit_exceeded"
	ErrorCodeServerError       = "server_error"
)

// APIError is a non-2xx response from the membership service.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Is matches another *APIError by code, so callers can write
// errors.Is(err, &cashbooksdk.APIError{Code: cashbooksdk.ErrorCodeAlreadyMember}).
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// HasCode reports whether err is an *APIError with the given code.
func HasCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
