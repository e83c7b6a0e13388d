package redemptions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pointsward/loyalcore/internal/domain"
	"github.com/pointsward/loyalcore/internal/dto"
	"github.com/pointsward/loyalcore/internal/service/ledgerservice"
	"github.com/pointsward/loyalcore/internal/service/redemptionservice"
	"github.com/pointsward/loyalcore/pkg/auth"
	"github.com/pointsward/loyalcore/pkg/utils"
)

type Service interface {
	Issue(ctx context.Context, businessID, membershipID, rewardID int, idempotencyKey *string) (*domain.Redemption, error)
	Consume(ctx context.Context, businessID int, code string, operatorID, branchID int) (*redemptionservice.ConsumeResult, error)
	Cancel(ctx context.Context, businessID int, code string, operatorID, branchID int, reasonCode, reasonText string) (*domain.Redemption, error)
	Get(ctx context.Context, businessID int, code string) (*domain.Redemption, error)
}

type RedemptionHandler struct {
	redemptionService Service
}

func New(redemptionService Service) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionService: redemptionService,
	}
}

// Issue godoc
//
//	@Summary		Issue a redemption
//	@Description	Exchange points for a reward: creates a redemption code valid for 7 days and deducts the reward's cost.
//	@Tags			Redemptions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.IssueRedemptionRequestDTO	true	"Issue payload"
//	@Success		200		{object}	dto.RedemptionResponseDTO		"Issued redemption"
//	@Failure		402		{object}	utils.Response					"Insufficient points"
//	@Failure		404		{object}	utils.Response					"Reward or membership not found"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/loyalty/redemptions [post]
func (h *RedemptionHandler) Issue(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(auth.BusinessIDKey).(int)

	var req dto.IssueRedemptionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var idempotencyKey *string
	if req.IdempotencyKey != "" {
		idempotencyKey = &req.IdempotencyKey
	}

	redemption, err := h.redemptionService.Issue(r.Context(), businessID, req.MembershipID, req.RewardID, idempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, redemptionservice.ErrRewardNotFound),
			errors.Is(err, redemptionservice.ErrNotAMember):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientPoints):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, ledgerservice.ErrMembershipBlocked):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toRedemptionDTO(redemption))
}

// Get godoc
//
//	@Summary		Look up a redemption
//	@Description	Read a redemption's status and expiry by its code. No state change.
//	@Tags			Redemptions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			code	path		string						true	"Redeem code"
//	@Success		200		{object}	dto.RedemptionResponseDTO	"Redemption"
//	@Failure		404		{object}	utils.Response				"Redemption not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/loyalty/redemptions/{code} [get]
func (h *RedemptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(auth.BusinessIDKey).(int)
	code := chi.URLParam(r, "code")

	redemption, err := h.redemptionService.Get(r.Context(), businessID, code)
	if err != nil {
		if errors.Is(err, redemptionservice.ErrRedemptionNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toRedemptionDTO(redemption))
}

// Consume godoc
//
//	@Summary		Consume a redemption code
//	@Description	Mark an issued code as redeemed at the counter. An expired code is voided and refunded instead; the response says which happened.
//	@Tags			Redemptions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			code	path		string								true	"Redeem code"
//	@Param			request	body		dto.ConsumeRedemptionRequestDTO		true	"Consume payload"
//	@Success		200		{object}	dto.ConsumeRedemptionResponseDTO	"Consume outcome"
//	@Failure		404		{object}	utils.Response						"Redemption not found"
//	@Failure		409		{object}	utils.Response						"Already redeemed or cancelled"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/loyalty/redemptions/{code}/consume [post]
func (h *RedemptionHandler) Consume(w http.ResponseWriter, r *http.Request) {
	operatorID := r.Context().Value(auth.OperatorIDKey).(int)
	businessID := r.Context().Value(auth.BusinessIDKey).(int)
	code := chi.URLParam(r, "code")

	var req dto.ConsumeRedemptionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.redemptionService.Consume(r.Context(), businessID, code, operatorID, req.BranchID)
	if err != nil {
		h.respondStateError(w, err)
		return
	}

	resp := dto.ConsumeRedemptionResponseDTO{
		Consumed:      result.Consumed,
		AutoCancelled: result.AutoCancelled,
		Redemption:    toRedemptionDTO(result.Redemption),
	}
	if result.AutoCancelled {
		resp.Reason = domain.ExpiredReasonCode
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Cancel godoc
//
//	@Summary		Cancel a redemption
//	@Description	Void an issued code and refund its cost to the membership.
//	@Tags			Redemptions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			code	path		string							true	"Redeem code"
//	@Param			request	body		dto.CancelRedemptionRequestDTO	true	"Cancel payload"
//	@Success		200		{object}	dto.RedemptionResponseDTO		"Cancelled redemption"
//	@Failure		404		{object}	utils.Response					"Redemption not found"
//	@Failure		409		{object}	utils.Response					"Already redeemed or cancelled"
//	@Failure		422		{object}	utils.Response					"Invalid cancel reason"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/loyalty/redemptions/{code}/cancel [post]
func (h *RedemptionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	operatorID := r.Context().Value(auth.OperatorIDKey).(int)
	businessID := r.Context().Value(auth.BusinessIDKey).(int)
	code := chi.URLParam(r, "code")

	var req dto.CancelRedemptionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	redemption, err := h.redemptionService.Cancel(r.Context(), businessID, code, operatorID, req.BranchID, req.ReasonCode, req.ReasonText)
	if err != nil {
		switch {
		case errors.Is(err, redemptionservice.ErrInvalidReason),
			errors.Is(err, redemptionservice.ErrReasonTextRequired):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			h.respondStateError(w, err)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toRedemptionDTO(redemption))
}

func (h *RedemptionHandler) respondStateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, redemptionservice.ErrRedemptionNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, redemptionservice.ErrAlreadyRedeemed),
		errors.Is(err, redemptionservice.ErrAlreadyCancelled):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toRedemptionDTO(redemption *domain.Redemption) dto.RedemptionResponseDTO {
	return dto.RedemptionResponseDTO{
		Code:       redemption.RedeemCode,
		Status:     string(redemption.Status),
		RewardName: redemption.RewardName,
		PointsCost: redemption.PointsCost,
		IssuedAt:   redemption.IssuedAt,
		ExpiresAt:  redemption.ExpiresAt,
		RedeemedAt: redemption.RedeemedAt,
	}
}
