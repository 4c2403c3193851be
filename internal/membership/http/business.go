package http

import (
	"net/http"

	"github.com/aussiebroadwan/cashbook/internal/membership/service"
	"github.com/aussiebroadwan/cashbook/pkg/cashbooksdk"
	"github.com/aussiebroadwan/cashbook/pkg/httpx"
)

type BusinessHandler struct {
	Businesses *service.BusinessService
	Access     *service.AccessService
}

// HandleCreateBusiness godoc
//
//	@Summary		Create a business
//	@Description	Creates a business owned by the caller.
//	@Tags			Businesses
//	@Accept			json
//	@Produce		json
//	@Param			request	body		cashbooksdk.CreateBusinessRequest	true	"Business"
//	@Success		201		{object}	cashbooksdk.Business
//	@Failure		400		{object}	cashbooksdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	cashbooksdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/businesses [post].
func (h *BusinessHandler) HandleCreateBusiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req cashbooksdk.CreateBusinessRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w, err)
		return
	}

	b, err := h.Businesses.CreateBusiness(ctx, httpx.UserIDFromContext(ctx), req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toBusiness(b))
}

// HandleCreateCashbook godoc
//
//	@Summary		Create a cashbook
//	@Description	Creates a cashbook in the business. The owner defaults to the caller. Only the business owner may name another owner, who becomes a Partner of the business.
//	@Tags			Businesses
//	@Accept			json
//	@Produce		json
//	@Param			businessID	path		string								true	"Business ID"
//	@Param			request		body		cashbooksdk.CreateCashbookRequest	true	"Cashbook"
//	@Success		201			{object}	cashbooksdk.Cashbook
//	@Failure		400			{object}	cashbooksdk.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	cashbooksdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	cashbooksdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/businesses/{businessID}/cashbooks [post].
func (h *BusinessHandler) HandleCreateCashbook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	businessID := r.PathValue("businessID")
	callerID := httpx.UserIDFromContext(ctx)

	var req cashbooksdk.CreateCashbookRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadJSON(w, err)
		return
	}

	if err := h.Access.RequireManager(ctx, businessID, callerID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	// Handing a cashbook to someone else makes them a Partner, which only
	// the business owner may do.
	ownerID := req.OwnerID
	if ownerID == "" {
		ownerID = callerID
	}
	if ownerID != callerID {
		if err := h.Access.RequireOwner(ctx, businessID, callerID); err != nil {
			writeServiceError(w, r, err)
			return
		}
	}

	cb, err := h.Businesses.CreateCashbook(ctx, businessID, ownerID, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toCashbook(cb))
}
