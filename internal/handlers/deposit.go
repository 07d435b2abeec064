package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/seidlp/vault-gateway/internal/jwt"
	"github.com/seidlp/vault-gateway/internal/logger"
	"github.com/seidlp/vault-gateway/internal/models"
	"github.com/seidlp/vault-gateway/internal/services"
)

// DepositTokener defines only the methods needed by this handler.
type DepositTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// DepositSubmitter defines the interface that the orchestrator pool must implement.
type DepositSubmitter interface {
	Submit(ctx context.Context, walletAddress, vaultAddress, amount string, op models.Operation) (*models.DepositIntent, error)
	Status(walletAddress string) models.TransactionState
}

// DepositRequest represents the JSON body for depositing into a vault
// swagger:model DepositRequest
type DepositRequest struct {
	// Amount to deposit as a decimal string
	// required: true
	// example: 1000
	Amount string `json:"amount"`
}

// SubmitResponse represents an accepted submission
// swagger:model SubmitResponse
type SubmitResponse struct {
	// Intent identifier for status polling
	IntentID string `json:"intent_id"`

	// Current transaction state
	State models.TransactionState `json:"state"`
}

// SubmitErrorResponse represents a rejected submission
// swagger:model SubmitErrorResponse
type SubmitErrorResponse struct {
	// Error message
	// example: Insufficient balance
	Error string `json:"error"`
}

// NewDepositHandler returns an HTTP handler for submitting a vault deposit.
// The submission is accepted and tracked asynchronously; wallet approval and
// on-chain settlement surface through the transaction status route.
// @Summary Deposit into a vault
// @Description Validates the amount against the wallet balance and submits the deposit. Returns 202 with the pending state.
// @Tags transactions
// @Accept json
// @Produce json
// @Param address path string true "Vault address"
// @Param request body handlers.DepositRequest true "Deposit Request"
// @Success 202 {object} handlers.SubmitResponse "Submission accepted"
// @Failure 400 {object} handlers.SubmitErrorResponse "Validation failed"
// @Failure 401 {object} handlers.SubmitErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.SubmitErrorResponse "A transaction is already pending"
// @Router /vaults/{address}/deposit [post]
// @Security BearerAuth
func NewDepositHandler(
	svc DepositSubmitter,
	tokenGetter DepositTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SubmitErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SubmitErrorResponse{Error: "Unauthorized"})
			return
		}

		var req DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode deposit request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SubmitErrorResponse{Error: "Invalid request body"})
			return
		}

		vaultAddress := chi.URLParam(r, "address")

		intent, err := svc.Submit(ctx, claims.Address, vaultAddress, req.Amount, models.OperationDeposit)
		if err != nil {
			writeSubmitError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(SubmitResponse{
			IntentID: intent.ID.String(),
			State:    svc.Status(claims.Address),
		})
	}
}

// writeSubmitError maps orchestrator errors onto HTTP responses. The
// messages keep the failure modes distinguishable for the UI.
func writeSubmitError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case errors.Is(err, services.ErrSubmissionPending):
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(SubmitErrorResponse{Error: "A transaction is already pending"})
	case errors.Is(err, services.ErrInvalidAmount):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(SubmitErrorResponse{Error: "Amount must be a positive number"})
	case errors.Is(err, services.ErrInsufficientBalance):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(SubmitErrorResponse{Error: "Insufficient balance"})
	case errors.Is(err, services.ErrSharesLocked):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(SubmitErrorResponse{Error: "Shares are still in the lock period"})
	case errors.Is(err, services.ErrVaultNotSupported):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(SubmitErrorResponse{Error: "This vault isn't deployed on the active chain"})
	default:
		logger.Log.Errorw("submission failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(SubmitErrorResponse{Error: "Internal server error"})
	}
}
