package http

import (
	"net/http"

	"github.com/aussiebroadwan/cashbook/internal/membership/service"
	"github.com/aussiebroadwan/cashbook/pkg/cashbooksdk"
	"github.com/aussiebroadwan/cashbook/pkg/httpx"
)

type RosterHandler struct {
	Rosters *service.RosterService
	Access  *service.AccessService
}

// HandleGetRoster godoc
//
//	@Summary		Business roster
//	@Description	Lists every member of the business with their derived role (owner, partner, staff) and the cashbooks they can reach. The caller is listed first.
//	@Tags			Roster
//	@Produce		json
//	@Param			businessID	path		string						true	"Business ID"
//	@Success		200			{object}	cashbooksdk.RosterResponse	"business, members"
//	@Failure		401			{object}	cashbooksdk.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	cashbooksdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	cashbooksdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/businesses/{businessID}/roster [get].
func (h *RosterHandler) HandleGetRoster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	businessID := r.PathValue("businessID")
	callerID := httpx.UserIDFromContext(ctx)

	if err := h.Access.RequireMember(ctx, businessID, callerID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	roster, err := h.Rosters.GetRoster(ctx, businessID, callerID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, cashbooksdk.RosterResponse{
		Business: toBusiness(roster.Business),
		Members:  toRosterEntries(roster.Entries),
	})
}

// HandleAvailableForBusiness godoc
//
//	@Summary		Users available to add to a business
//	@Description	Staff from the owner's other businesses who are not yet part of this one. Empty when there are none.
//	@Tags			Roster
//	@Produce		json
//	@Param			businessID	path		string							true	"Business ID"
//	@Success		200			{object}	cashbooksdk.AvailableResponse	"users"
//	@Failure		403			{object}	cashbooksdk.ErrorResponse		"error, error_description"
//	@Failure		404			{object}	cashbooksdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/businesses/{businessID}/available [get].
func (h *RosterHandler) HandleAvailableForBusiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	businessID := r.PathValue("businessID")

	if err := h.Access.RequireManager(ctx, businessID, httpx.UserIDFromContext(ctx)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	users, err := h.Rosters.AvailableForBusiness(ctx, businessID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, cashbooksdk.AvailableResponse{Users: toUsers(users)})
}

// HandleAvailableForCashbook godoc
//
//	@Summary		Users available to add to a cashbook
//	@Description	The business's Staff who are neither the cashbook owner nor already members. Empty when there are none.
//	@Tags			Roster
//	@Produce		json
//	@Param			businessID	path		string							true	"Business ID"
//	@Param			cashbookID	path		string							true	"Cashbook ID"
//	@Success		200			{object}	cashbooksdk.AvailableResponse	"users"
//	@Failure		403			{object}	cashbooksdk.ErrorResponse		"error, error_description"
//	@Failure		404			{object}	cashbooksdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/businesses/{businessID}/cashbooks/{cashbookID}/available [get].
func (h *RosterHandler) HandleAvailableForCashbook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	businessID := r.PathValue("businessID")

	if err := h.Access.RequireManager(ctx, businessID, httpx.UserIDFromContext(ctx)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	users, err := h.Rosters.AvailableForCashbook(ctx, businessID, r.PathValue("cashbookID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, cashbooksdk.AvailableResponse{Users: toUsers(users)})
}
