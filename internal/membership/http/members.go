package http

import (
	"net/http"

	"github.com/aussiebroadwan/cashbook/internal/membership/service"
	"github.com/aussiebroadwan/cashbook/pkg/cashbooksdk"
	"github.com/aussiebroadwan/cashbook/pkg/httpx"
)

type MemberHandler struct {
	Members    *service.MembershipService
	Businesses *service.BusinessService
	Access     *service.AccessService
}

// HandleAddBusinessMember godoc
//
//	@Summary		Add a user to a business
//	@Description	Adds an existing user to the business as partner or staff.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			businessID	path		string							true	"Business ID"
//	@Param			request		body		cashbooksdk.AddMemberRequest	true	"user_id, role"
//	@Success		201			{object}	cashbooksdk.MembershipResponse
//	@Failure		400			{object}	cashbooksdk.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	cashbooksdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	cashbooksdk.ErrorResponse	"error, error_description"
//	@Failure		409			{object}	cashbooksdk.ErrorResponse	"already_member, is_owner"
//	@Security		BearerAuth
//	@Router			/v1/businesses/{businessID}/members [post].
func (h *MemberHandler) HandleAddBusinessMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	businessID := r.PathValue("businessID")

	var req cashbooksdk.AddMemberRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w, err)
		return
	}
	if req.UserID == "" {
		httpx.WriteError(w, http.StatusBadRequest, cashbooksdk.ErrorCodeInvalidRequest, "user_id is required")
		return
	}

	if err := h.Access.RequireManager(ctx, businessID, httpx.UserIDFromContext(ctx)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	m, err := h.Members.AddToBusiness(ctx, businessID, req.UserID, req.Role)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toBusinessMembership(m))
}

// HandleRemoveBusinessMember godoc
//
//	@Summary		Remove a user from a business
//	@Description	Removes the user's business-level membership and every cashbook membership they hold in the business.
//	@Tags			Members
//	@Param			businessID	path	string	true	"Business ID"
//	@Param			userID		path	string	true	"User ID"
//	@Success		204
//	@Failure		403	{object}	cashbooksdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	cashbooksdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	cashbooksdk.ErrorResponse	"not_member, is_owner"
//	@Security		BearerAuth
//	@Router			/v1/businesses/{businessID}/members/{userID} [delete].
func (h *MemberHandler) HandleRemoveBusinessMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	businessID := r.PathValue("businessID")

	if err := h.Access.RequireManager(ctx, businessID, httpx.UserIDFromContext(ctx)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.Members.RemoveFromBusiness(ctx, businessID, r.PathValue("userID")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleAddCashbookMember godoc
//
//	@Summary		Add a user to a cashbook
//	@Description	Adds an existing user to the cashbook as staff.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			businessID	path		string							true	"Business ID"
//	@Param			cashbookID	path		string							true	"Cashbook ID"
//	@Param			request		body		cashbooksdk.AddMemberRequest	true	"user_id"
//	@Success		201			{object}	cashbooksdk.MembershipResponse
//	@Failure		403			{object}	cashbooksdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	cashbooksdk.ErrorResponse	"error, error_description"
//	@Failure		409			{object}	cashbooksdk.ErrorResponse	"already_member, is_owner"
//	@Security		BearerAuth
//	@Router			/v1/businesses/{businessID}/cashbooks/{cashbookID}/members [post].
func (h *MemberHandler) HandleAddCashbookMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	businessID := r.PathValue("businessID")

	var req cashbooksdk.AddMemberRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w, err)
		return
	}
	if req.UserID == "" {
		httpx.WriteError(w, http.StatusBadRequest, cashbooksdk.ErrorCodeInvalidRequest, "user_id is required")
		return
	}

	if err := h.Access.RequireManager(ctx, businessID, httpx.UserIDFromContext(ctx)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	cb, err := h.Businesses.GetCashbook(ctx, businessID, r.PathValue("cashbookID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	m, err := h.Members.AddToCashbook(ctx, cb.ID, req.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toCashbookMembership(m))
}

// HandleRemoveCashbookMember godoc
//
//	@Summary		Remove a user from a cashbook
//	@Tags			Members
//	@Param			businessID	path	string	true	"Business ID"
//	@Param			cashbookID	path	string	true	"Cashbook ID"
//	@Param			userID		path	string	true	"User ID"
//	@Success		204
//	@Failure		403	{object}	cashbooksdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	cashbooksdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	cashbooksdk.ErrorResponse	"not_member, is_owner"
//	@Security		BearerAuth
//	@Router			/v1/businesses/{businessID}/cashbooks/{cashbookID}/members/{userID} [delete].
func (h *MemberHandler) HandleRemoveCashbookMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	businessID := r.PathValue("businessID")

	if err := h.Access.RequireManager(ctx, businessID, httpx.UserIDFromContext(ctx)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	cb, err := h.Businesses.GetCashbook(ctx, businessID, r.PathValue("cashbookID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.Members.RemoveFromCashbook(ctx, cb.ID, r.PathValue("userID")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
