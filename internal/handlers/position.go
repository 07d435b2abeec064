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

// PositionTokener defines only the methods needed by this handler.
type PositionTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// PositionReader reads getCustomerStats through the chain gateway.
type PositionReader interface {
	ReadCustomerStats(ctx context.Context, vaultAddress, customer string) (*models.CustomerPosition, error)
}

// PositionErrorResponse represents an error response when fetching a position
// swagger:model PositionErrorResponse
type PositionErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}

// NewGetPositionHandler returns an HTTP handler for the session wallet's
// position in one vault.
// @Summary Get customer position
// @Description Returns the wallet's shares, lifetime totals and lock time remaining for a vault.
// @Tags vaults
// @Produce json
// @Param address path string true "Vault address"
// @Success 200 {object} models.CustomerPosition "Customer position"
// @Failure 401 {object} handlers.PositionErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.PositionErrorResponse "Wallet gateway unavailable"
// @Router /vaults/{address}/position [get]
// @Security BearerAuth
func NewGetPositionHandler(
	positions PositionReader,
	tokenGetter PositionTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PositionErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PositionErrorResponse{Error: "Unauthorized"})
			return
		}

		vaultAddress := chi.URLParam(r, "address")

		position, err := positions.ReadCustomerStats(ctx, vaultAddress, claims.Address)
		if err != nil {
			logger.Log.Errorw("failed to read customer position",
				"vault", vaultAddress, "address", claims.Address, "error", err)
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(PositionErrorResponse{Error: "Wallet gateway unavailable"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(position)
	}
}
