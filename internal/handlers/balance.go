package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/seidlp/vault-gateway/internal/jwt"
	"github.com/seidlp/vault-gateway/internal/logger"
)

// BalanceTokener defines only the methods needed by this handler.
type BalanceTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// BalanceProvider defines the interface that the balance keeper must implement.
type BalanceProvider interface {
	Balance(ctx context.Context, address string) (decimal.Decimal, error)
}

// WalletBalanceResponse represents a successful response with the wallet balance
// swagger:model WalletBalanceResponse
type WalletBalanceResponse struct {
	// Wallet address
	Address string `json:"address"`

	// Native coin balance as a decimal string
	// example: 1250.5
	Balance string `json:"balance"`
}

// WalletBalanceErrorResponse represents an error response when fetching the balance
// swagger:model WalletBalanceErrorResponse
type WalletBalanceErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching the session
// wallet's balance. The keeper preserves the last known positive value while
// a transaction is pending, so the UI never flashes a zero balance mid-flight.
// @Summary Get wallet balance
// @Description Returns the native coin balance of the session wallet.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.WalletBalanceResponse "Wallet balance"
// @Failure 401 {object} handlers.WalletBalanceErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.WalletBalanceErrorResponse "Wallet gateway unavailable"
// @Router /balance [get]
// @Security BearerAuth
func NewGetBalanceHandler(
	balances BalanceProvider,
	tokenGetter BalanceTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized balance request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WalletBalanceErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WalletBalanceErrorResponse{Error: "Unauthorized"})
			return
		}

		balance, err := balances.Balance(ctx, claims.Address)
		if err != nil {
			logger.Log.Errorw("failed to get balance", "address", claims.Address, "error", err)
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(WalletBalanceErrorResponse{Error: "Wallet gateway unavailable"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WalletBalanceResponse{
			Address: claims.Address,
			Balance: balance.String(),
		})
	}
}
