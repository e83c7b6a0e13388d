package memberships

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pointsward/loyalcore/internal/domain"
	"github.com/pointsward/loyalcore/internal/dto"
	"github.com/pointsward/loyalcore/internal/service/membershipservice"
	"github.com/pointsward/loyalcore/pkg/auth"
	"github.com/pointsward/loyalcore/pkg/utils"
)

type Service interface {
	Enroll(ctx context.Context, businessID, customerID int, cardNumber string) (*domain.Membership, error)
	GetMembership(ctx context.Context, membershipID, businessID int) (*domain.Membership, error)
	GetLedger(ctx context.Context, membershipID, businessID, limit, offset int) ([]domain.LedgerRecord, error)
}

type MembershipHandler struct {
	membershipService Service
}

func New(membershipService Service) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
	}
}

// Enroll godoc
//
//	@Summary		Enroll a customer
//	@Description	Create an active membership with zero balance for a customer of the authenticated business.
//	@Tags			Memberships
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.EnrollRequestDTO		true	"Enrollment payload"
//	@Success		200		{object}	dto.MembershipResponseDTO	"Created membership"
//	@Failure		409		{object}	utils.Response				"Customer already enrolled"
//	@Failure		422		{object}	utils.Response				"Invalid card number"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/loyalty/memberships [post]
func (h *MembershipHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(auth.BusinessIDKey).(int)

	var req dto.EnrollRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	membership, err := h.membershipService.Enroll(r.Context(), businessID, req.CustomerID, req.CardNumber)
	if err != nil {
		switch {
		case errors.Is(err, membershipservice.ErrInvalidCardNumber):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, membershipservice.ErrAlreadyEnrolled):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toMembershipDTO(membership))
}

// GetMembership godoc
//
//	@Summary		Get a membership
//	@Description	Read a membership's current points balance and status.
//	@Tags			Memberships
//	@Security		BearerAuth
//	@Produce		json
//	@Param			membershipID	path		int							true	"Membership ID"
//	@Success		200				{object}	dto.MembershipResponseDTO	"Membership"
//	@Failure		404				{object}	utils.Response				"Membership not found"
//	@Failure		500				{object}	utils.Response				"Internal server error"
//	@Router			/api/loyalty/memberships/{membershipID} [get]
func (h *MembershipHandler) GetMembership(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(auth.BusinessIDKey).(int)

	membershipID, err := strconv.Atoi(chi.URLParam(r, "membershipID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid membership id")
		return
	}

	membership, err := h.membershipService.GetMembership(r.Context(), membershipID, businessID)
	if err != nil {
		if errors.Is(err, membershipservice.ErrMembershipNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toMembershipDTO(membership))
}

// GetLedger godoc
//
//	@Summary		Get movement history
//	@Description	List a membership's ledger records, newest first.
//	@Tags			Memberships
//	@Security		BearerAuth
//	@Produce		json
//	@Param			membershipID	path		int								true	"Membership ID"
//	@Param			limit			query		int								false	"Page size"
//	@Param			offset			query		int								false	"Page offset"
//	@Success		200				{array}		dto.LedgerRecordResponseDTO		"Ledger records"
//	@Success		204				{object}	utils.Response					"No records"
//	@Failure		404				{object}	utils.Response					"Membership not found"
//	@Failure		500				{object}	utils.Response					"Internal server error"
//	@Router			/api/loyalty/memberships/{membershipID}/ledger [get]
func (h *MembershipHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(auth.BusinessIDKey).(int)

	membershipID, err := strconv.Atoi(chi.URLParam(r, "membershipID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid membership id")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	records, err := h.membershipService.GetLedger(r.Context(), membershipID, businessID, limit, offset)
	if err != nil {
		if errors.Is(err, membershipservice.ErrMembershipNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(records) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No ledger records")
		return
	}

	response := make([]dto.LedgerRecordResponseDTO, len(records))
	for i, rec := range records {
		response[i] = dto.LedgerRecordResponseDTO{
			ID:        rec.ID,
			Type:      string(rec.Type),
			Points:    rec.Points,
			Source:    string(rec.Source),
			Note:      rec.Note,
			CreatedAt: rec.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toMembershipDTO(membership *domain.Membership) dto.MembershipResponseDTO {
	return dto.MembershipResponseDTO{
		ID:         membership.ID,
		CustomerID: membership.CustomerID,
		CardNumber: membership.CardNumber,
		Balance:    membership.PointsBalance,
		Status:     membership.Status,
		CreatedAt:  membership.CreatedAt,
	}
}
