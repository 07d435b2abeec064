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

// TransactionTokener defines only the methods needed by these handlers.
type TransactionTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TransactionStatuser exposes the session's state machine.
type TransactionStatuser interface {
	Status(walletAddress string) models.TransactionState
	Reset(walletAddress string) error
}

// TransactionHistoryReader reads journal rows for history views.
type TransactionHistoryReader interface {
	GetByWallet(ctx context.Context, walletAddress string) ([]models.TransactionRecord, error)
	GetByIntentID(ctx context.Context, intentID string) (*models.TransactionRecord, error)
}

// TransactionStateResponse represents the session transaction state
// swagger:model TransactionStateResponse
type TransactionStateResponse struct {
	// Current state of the session's transaction
	State models.TransactionState `json:"state"`

	// Truncated hash for display, e.g. 0x1234…abcd
	TxHashDisplay string `json:"tx_hash_display,omitempty"`
}

// TransactionErrorResponse represents an error response for transaction routes
// swagger:model TransactionErrorResponse
type TransactionErrorResponse struct {
	// Error message
	// example: Transaction not found
	Error string `json:"error"`
}

// TransactionHistoryResponse represents the journal listing
// swagger:model TransactionHistoryResponse
type TransactionHistoryResponse struct {
	// Journal rows, newest first
	Transactions []models.TransactionRecord `json:"transactions"`
}

// authorize extracts the session claims shared by the transaction handlers.
func authorize(ctx context.Context, r *http.Request, tokenGetter TransactionTokener) (*jwt.Claims, bool) {
	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		return nil, false
	}
	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		return nil, false
	}
	return claims, true
}

// NewTransactionStatusHandler returns an HTTP handler exposing the session's
// current transaction state, with the hash truncated for display.
// @Summary Get transaction status
// @Description Returns the session's authoritative transaction state: idle, pending, success or error.
// @Tags transactions
// @Produce json
// @Success 200 {object} handlers.TransactionStateResponse "Current state"
// @Failure 401 {object} handlers.TransactionErrorResponse "Unauthorized"
// @Router /transactions/current [get]
// @Security BearerAuth
func NewTransactionStatusHandler(
	svc TransactionStatuser,
	tokenGetter TransactionTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, r, tokenGetter)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Unauthorized"})
			return
		}

		state := svc.Status(claims.Address)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransactionStateResponse{
			State:         state,
			TxHashDisplay: models.TruncateHash(state.TxHash),
		})
	}
}

// NewTransactionResetHandler returns an HTTP handler resetting the session's
// state machine to idle, as the UI does on modal close. Resetting while a
// transaction is pending is rejected.
// @Summary Reset transaction state
// @Description Returns a terminal state machine to idle, clearing hash and error.
// @Tags transactions
// @Produce json
// @Success 200 {object} handlers.TransactionStateResponse "State after reset"
// @Failure 401 {object} handlers.TransactionErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.TransactionErrorResponse "Transaction still pending"
// @Router /transactions/reset [post]
// @Security BearerAuth
func NewTransactionResetHandler(
	svc TransactionStatuser,
	tokenGetter TransactionTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, r, tokenGetter)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Unauthorized"})
			return
		}

		if err := svc.Reset(claims.Address); err != nil {
			if errors.Is(err, services.ErrResetWhilePending) {
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Cannot reset while a transaction is pending"})
				return
			}
			logger.Log.Errorw("failed to reset transaction state", "address", claims.Address, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransactionStateResponse{State: svc.Status(claims.Address)})
	}
}

// NewTransactionHistoryHandler returns an HTTP handler listing the session
// wallet's journal rows.
// @Summary List transactions
// @Description Returns the wallet's transaction journal, newest first.
// @Tags transactions
// @Produce json
// @Success 200 {object} handlers.TransactionHistoryResponse "Journal rows"
// @Failure 401 {object} handlers.TransactionErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.TransactionErrorResponse "Internal server error"
// @Router /transactions [get]
// @Security BearerAuth
func NewTransactionHistoryHandler(
	journal TransactionHistoryReader,
	tokenGetter TransactionTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, r, tokenGetter)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Unauthorized"})
			return
		}

		records, err := journal.GetByWallet(ctx, claims.Address)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "address", claims.Address, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransactionHistoryResponse{Transactions: records})
	}
}

// NewTransactionDetailHandler returns an HTTP handler fetching one journal
// row by intent ID.
// @Summary Get transaction detail
// @Description Returns one journal row by intent ID.
// @Tags transactions
// @Produce json
// @Param id path string true "Intent ID"
// @Success 200 {object} models.TransactionRecord "Journal row"
// @Failure 401 {object} handlers.TransactionErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.TransactionErrorResponse "Transaction not found"
// @Router /transactions/{id} [get]
// @Security BearerAuth
func NewTransactionDetailHandler(
	journal TransactionHistoryReader,
	tokenGetter TransactionTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, r, tokenGetter)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Unauthorized"})
			return
		}

		intentID := chi.URLParam(r, "id")

		record, err := journal.GetByIntentID(ctx, intentID)
		if err != nil {
			logger.Log.Warnw("transaction not found", "intent_id", intentID, "error", err)
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Transaction not found"})
			return
		}

		// Journal rows are scoped to the session wallet.
		if record.WalletAddress != models.NormalizeAddress(claims.Address) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Transaction not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(record)
	}
}
