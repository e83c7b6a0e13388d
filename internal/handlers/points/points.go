package points

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pointsward/loyalcore/internal/domain"
	"github.com/pointsward/loyalcore/internal/dto"
	"github.com/pointsward/loyalcore/internal/service/ledgerservice"
	"github.com/pointsward/loyalcore/pkg/auth"
	"github.com/pointsward/loyalcore/pkg/utils"
)

type Service interface {
	ApplyMovement(ctx context.Context, movement ledgerservice.Movement) (*domain.LedgerRecord, int, error)
}

type PointsHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *PointsHandler {
	return &PointsHandler{
		ledgerService: ledgerService,
	}
}

// ApplyMovement godoc
//
//	@Summary		Apply a points movement
//	@Description	Append one signed movement to a membership's ledger and update its balance. Retries with the same idempotency key are applied at most once.
//	@Tags			Points
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ApplyMovementRequestDTO	true	"Movement payload"
//	@Success		200		{object}	dto.MovementResponseDTO		"Resulting ledger record and balance"
//	@Failure		401		{object}	utils.Response				"Operator not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient points"
//	@Failure		404		{object}	utils.Response				"Membership not found"
//	@Failure		422		{object}	utils.Response				"Invalid movement"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/loyalty/points/movements [post]
func (h *PointsHandler) ApplyMovement(w http.ResponseWriter, r *http.Request) {
	operatorID := r.Context().Value(auth.OperatorIDKey).(int)
	businessID := r.Context().Value(auth.BusinessIDKey).(int)

	var req dto.ApplyMovementRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	source := domain.MovementSource(req.Source)
	if source == domain.SystemSource {
		// system movements are written by the engine itself, never over HTTP
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid movement source")
		return
	}

	movement := ledgerservice.Movement{
		MembershipID: req.MembershipID,
		BusinessID:   businessID,
		Type:         domain.MovementType(req.Type),
		Points:       req.Points,
		Note:         req.Note,
		Source:       source,
		BranchID:     req.BranchID,
		OperatorID:   &operatorID,
	}
	if req.IdempotencyKey != "" {
		movement.IdempotencyKey = &req.IdempotencyKey
	}

	record, balance, err := h.ledgerService.ApplyMovement(r.Context(), movement)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidMovement),
			errors.Is(err, ledgerservice.ErrBranchRequired),
			errors.Is(err, ledgerservice.ErrMembershipBlocked):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, ledgerservice.ErrOperatorRequired):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientPoints):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, ledgerservice.ErrMembershipNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.MovementResponseDTO{
		RecordID:  record.ID,
		Type:      string(record.Type),
		Points:    record.Points,
		Balance:   balance,
		CreatedAt: record.CreatedAt,
	})
}
