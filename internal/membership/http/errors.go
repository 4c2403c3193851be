package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/cashbook/internal/membership/service"
	"github.com/aussiebroadwan/cashbook/pkg/cashbooksdk"
	"github.com/aussiebroadwan/cashbook/pkg/httpx"
	"github.com/aussiebroadwan/cashbook/pkg/slogx"
)

type apiError struct {
	err    error
	status int
	code   string
	desc   string
}

// Order matters: the wrapped not-found errors come before ErrNotFound.
var apiErrors = []apiError{
	{service.ErrInvalidRequest, http.StatusBadRequest, cashbooksdk.ErrorCodeInvalidRequest,
		"The request is missing a required field or has an invalid value."},
	{service.ErrInvalidTarget, http.StatusBadRequest, cashbooksdk.ErrorCodeInvalidTarget,
		"Provide exactly one of a valid email address or an international phone number (+61...)."},
	{service.ErrInvalidRole, http.StatusBadRequest, cashbooksdk.ErrorCodeInvalidRole,
		"Role must be partner or staff."},
	{service.ErrCashbookRequired, http.StatusBadRequest, cashbooksdk.ErrorCodeCashbookRequired,
		"Staff invites need a cashbook that belongs to this business."},

	{service.ErrInvalidToken, http.StatusNotFound, cashbooksdk.ErrorCodeInvalidToken,
		"This invitation link is not valid. Ask for a new invite."},
	{service.ErrExpired, http.StatusGone, cashbooksdk.ErrorCodeExpired,
		"This invitation has expired. Ask for a new invite."},
	{service.ErrNotPending, http.StatusConflict, cashbooksdk.ErrorCodeNotPending,
		"This invite is no longer pending. Refresh the invite list."},
	{service.ErrAlreadyResolved, http.StatusConflict, cashbooksdk.ErrorCodeAlreadyResolved,
		"This invitation has already been used or revoked."},
	{service.ErrAlreadyMember, http.StatusConflict, cashbooksdk.ErrorCodeAlreadyMember,
		"The user is already a member."},
	{service.ErrNotMember, http.StatusConflict, cashbooksdk.ErrorCodeNotMember,
		"The user is not a member. Refresh the roster."},
	{service.ErrIsOwner, http.StatusConflict, cashbooksdk.ErrorCodeIsOwner,
		"Owners cannot be added or removed. Transfer ownership first."},

	{service.ErrBusinessNotFound, http.StatusNotFound, cashbooksdk.ErrorCodeNotFound, "Business not found."},
	{service.ErrCashbookNotFound, http.StatusNotFound, cashbooksdk.ErrorCodeNotFound, "Cashbook not found."},
	{service.ErrUserNotFound, http.StatusNotFound, cashbooksdk.ErrorCodeNotFound,
		"User not found. They need to sign in once before they can be added."},
	{service.ErrInviteNotFound, http.StatusNotFound, cashbooksdk.ErrorCodeNotFound, "Invite not found."},
	{service.ErrNotFound, http.StatusNotFound, cashbooksdk.ErrorCodeNotFound, "Not found."},

	{service.ErrForbidden, http.StatusForbidden, cashbooksdk.ErrorCodeForbidden,
		"You do not have access to do this in this business."},
	{service.ErrNotificationFailed, http.StatusBadGateway, cashbooksdk.ErrorCodeNotificationFail,
		"The invite could not be delivered. Try again later."},
}

// writeServiceError maps a service error to its response. Unknown errors
// are logged and reported as server_error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, e := range apiErrors {
		if errors.Is(err, e.err) {
			httpx.WriteError(w, e.status, e.code, e.desc)
			return
		}
	}

	slogx.FromContext(r.Context()).Error("unhandled service error", slog.Any("error", err))
	httpx.WriteError(w, http.StatusInternalServerError, cashbooksdk.ErrorCodeServerError, "Internal server error.")
}

func writeBadJSON(w http.ResponseWriter, err error) {
	httpx.WriteError(w, http.StatusBadRequest, cashbooksdk.ErrorCodeInvalidRequest, err.Error())
}
