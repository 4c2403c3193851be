package http

import (
	"net/http"

	"github.com/aussiebroadwan/cashbook/internal/membership/service"
	"github.com/aussiebroadwan/cashbook/pkg/cashbooksdk"
	"github.com/aussiebroadwan/cashbook/pkg/httpx"
)

type InviteHandler struct {
	Invites *service.InviteService
	Access  *service.AccessService
}

func toInviteResponse(res service.InviteResult) cashbooksdk.InviteResponse {
	return cashbooksdk.InviteResponse{
		Invite:         toInvite(res.Invite),
		Link:           res.Link,
		Delivered:      res.Delivered,
		ExistingUserID: res.ExistingUserID,
	}
}

// HandleCreate godoc
//
//	@Summary		Invite someone to a business
//	@Description	Creates a pending invite for exactly one of email or phone and delivers the invitation link. Staff invites grant one cashbook; Partner invites ignore cashbook_id.
//	@Description	A failed delivery still returns 201 with delivered=false; the invite can be resent.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			businessID	path		string							true	"Business ID"
//	@Param			request		body		cashbooksdk.CreateInviteRequest	true	"Invite request"
//	@Success		201			{object}	cashbooksdk.InviteResponse		"invite, link, delivered"
//	@Failure		400			{object}	cashbooksdk.ErrorResponse		"invalid_target, invalid_role, cashbook_required"
//	@Failure		403			{object}	cashbooksdk.ErrorResponse		"error, error_description"
//	@Failure		404			{object}	cashbooksdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/businesses/{businessID}/invites [post].
func (h *InviteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	businessID := r.PathValue("businessID")
	callerID := httpx.UserIDFromContext(ctx)

	var req cashbooksdk.CreateInviteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w, err)
		return
	}

	if err := h.Access.RequireManager(ctx, businessID, callerID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	res, err := h.Invites.CreateInvite(ctx, service.CreateInviteParams{
		BusinessID: businessID,
		Email:      req.Email,
		Phone:      req.Phone,
		Role:       req.Role,
		CashbookID: req.CashbookID,
		InvitedBy:  callerID,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toInviteResponse(res))
}

// HandleList godoc
//
//	@Summary		List a business's invites
//	@Description	Newest first, with the effective status (a pending invite past its expiry is reported as expired).
//	@Tags			Invitations
//	@Produce		json
//	@Param			businessID	path		string							true	"Business ID"
//	@Param			status		query		string							false	"pending, accepted, expired or revoked"
//	@Success		200			{object}	cashbooksdk.ListInvitesResponse	"invites"
//	@Failure		400			{object}	cashbooksdk.ErrorResponse		"error, error_description"
//	@Failure		403			{object}	cashbooksdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/businesses/{businessID}/invites [get].
func (h *InviteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	businessID := r.PathValue("businessID")

	if err := h.Access.RequireManager(ctx, businessID, httpx.UserIDFromContext(ctx)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	invites, err := h.Invites.ListInvites(ctx, businessID, r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, cashbooksdk.ListInvitesResponse{Invites: toInvites(invites)})
}

// HandleResend godoc
//
//	@Summary		Resend an invite
//	@Description	Re-delivers the original link of a pending, unexpired invite. The token and expiry do not change.
//	@Tags			Invitations
//	@Produce		json
//	@Param			inviteID	path		string						true	"Invite ID"
//	@Success		200			{object}	cashbooksdk.InviteResponse	"invite, link, delivered"
//	@Failure		403			{object}	cashbooksdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	cashbooksdk.ErrorResponse	"error, error_description"
//	@Failure		409			{object}	cashbooksdk.ErrorResponse	"not_pending"
//	@Failure		410			{object}	cashbooksdk.ErrorResponse	"invite_expired"
//	@Failure		502			{object}	cashbooksdk.ErrorResponse	"notification_failed"
//	@Security		BearerAuth
//	@Router			/v1/invites/{inviteID}/resend [post].
func (h *InviteHandler) HandleResend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.authorizeInvite(w, r) {
		return
	}

	res, err := h.Invites.ResendInvite(ctx, r.PathValue("inviteID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toInviteResponse(res))
}

// HandleRevoke godoc
//
//	@Summary		Revoke an invite
//	@Description	Moves a pending invite to revoked. The record is kept and its link stops working.
//	@Tags			Invitations
//	@Param			inviteID	path	string	true	"Invite ID"
//	@Success		204
//	@Failure		403	{object}	cashbooksdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	cashbooksdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	cashbooksdk.ErrorResponse	"not_pending"
//	@Security		BearerAuth
//	@Router			/v1/invites/{inviteID} [delete].
func (h *InviteHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.authorizeInvite(w, r) {
		return
	}

	if _, err := h.Invites.RevokeInvite(ctx, r.PathValue("inviteID")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// authorizeInvite requires the caller to manage the invite's business.
func (h *InviteHandler) authorizeInvite(w http.ResponseWriter, r *http.Request) bool {
	ctx := r.Context()

	inv, err := h.Invites.GetInvite(ctx, r.PathValue("inviteID"))
	if err != nil {
		writeServiceError(w, r, err)
		return false
	}
	if err := h.Access.RequireManager(ctx, inv.BusinessID, httpx.UserIDFromContext(ctx)); err != nil {
		writeServiceError(w, r, err)
		return false
	}
	return true
}

// HandleLookup godoc
//
//	@Summary		Preview an invitation
//	@Description	What the invitation landing page shows before the user accepts.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	query		string								true	"Invitation token"
//	@Success		200		{object}	cashbooksdk.InvitePreviewResponse
//	@Failure		404		{object}	cashbooksdk.ErrorResponse	"invalid_invite_token"
//	@Security		BearerAuth
//	@Router			/v1/invites/lookup [get].
func (h *InviteHandler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	preview, err := h.Invites.GetInviteByToken(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, cashbooksdk.InvitePreviewResponse{
		BusinessID:   preview.Invite.BusinessID,
		BusinessName: preview.BusinessName,
		CashbookID:   preview.Invite.CashbookID,
		CashbookName: preview.CashbookName,
		Role:         preview.Invite.Role.String(),
		Status:       string(preview.Invite.Status),
		ExpiresAt:    preview.Invite.ExpiresAt.Unix(),
	})
}

// HandleAccept godoc
//
//	@Summary		Accept an invitation
//	@Description	Redeems the token for the caller. Staff invites add the caller to the cashbook; Partner invites make the caller a Partner of the business.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		cashbooksdk.AcceptInviteRequest		true	"token"
//	@Success		200		{object}	cashbooksdk.AcceptInviteResponse	"invite, membership"
//	@Failure		404		{object}	cashbooksdk.ErrorResponse			"invalid_invite_token"
//	@Failure		409		{object}	cashbooksdk.ErrorResponse			"already_resolved, is_owner"
//	@Failure		410		{object}	cashbooksdk.ErrorResponse			"invite_expired"
//	@Security		BearerAuth
//	@Router			/v1/invites/accept [post].
func (h *InviteHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req cashbooksdk.AcceptInviteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w, err)
		return
	}

	res, err := h.Invites.AcceptInvite(ctx, req.Token, httpx.UserIDFromContext(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := cashbooksdk.AcceptInviteResponse{Invite: toInvite(res.Invite)}
	switch {
	case res.CashbookMembership != nil:
		out.Membership = toCashbookMembership(*res.CashbookMembership)
	case res.BusinessMembership != nil:
		out.Membership = toBusinessMembership(*res.BusinessMembership)
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}
