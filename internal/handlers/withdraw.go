package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/seidlp/vault-gateway/internal/jwt"
	"github.com/seidlp/vault-gateway/internal/logger"
	"github.com/seidlp/vault-gateway/internal/models"
)

// WithdrawTokener defines only the methods needed by this handler.
type WithdrawTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WithdrawSubmitter defines the interface that the orchestrator pool must implement.
type WithdrawSubmitter interface {
	Submit(ctx context.Context, walletAddress, vaultAddress, amount string, op models.Operation) (*models.DepositIntent, error)
	Status(walletAddress string) models.TransactionState
}

// WithdrawRequest represents the JSON body for withdrawing from a vault
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Shares to redeem as a decimal string
	// required: true
	// example: 25.5
	Shares string `json:"shares"`
}

// NewWithdrawHandler returns an HTTP handler for submitting a vault
// withdrawal. Shares are validated against the customer's position and the
// vault's lock period before anything reaches the wallet.
// @Summary Withdraw from a vault
// @Description Validates the share amount against the position and submits the withdrawal. Returns 202 with the pending state.
// @Tags transactions
// @Accept json
// @Produce json
// @Param address path string true "Vault address"
// @Param request body handlers.WithdrawRequest true "Withdraw Request"
// @Success 202 {object} handlers.SubmitResponse "Submission accepted"
// @Failure 400 {object} handlers.SubmitErrorResponse "Validation failed"
// @Failure 401 {object} handlers.SubmitErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.SubmitErrorResponse "A transaction is already pending"
// @Router /vaults/{address}/withdraw [post]
// @Security BearerAuth
func NewWithdrawHandler(
	svc WithdrawSubmitter,
	tokenGetter WithdrawTokener,
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

		var req WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode withdraw request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SubmitErrorResponse{Error: "Invalid request body"})
			return
		}

		vaultAddress := chi.URLParam(r, "address")

		intent, err := svc.Submit(ctx, claims.Address, vaultAddress, req.Shares, models.OperationWithdraw)
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
