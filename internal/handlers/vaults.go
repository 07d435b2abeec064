package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/seidlp/vault-gateway/internal/logger"
	"github.com/seidlp/vault-gateway/internal/models"
	"github.com/seidlp/vault-gateway/internal/services"
)

// VaultLister defines the interface that the vault service must implement.
type VaultLister interface {
	GetVaults(ctx context.Context) ([]models.VaultDescriptor, error)
	GetByAddress(ctx context.Context, address string) (*models.VaultDescriptor, error)
}

// VaultsResponse represents the vault listing response
// swagger:model VaultsResponse
type VaultsResponse struct {
	// Whether the listing succeeded
	Success bool `json:"success"`

	// Vault descriptors for the active chain
	Data []models.VaultDescriptor `json:"data"`
}

// VaultErrorResponse represents an error response for vault routes
// swagger:model VaultErrorResponse
type VaultErrorResponse struct {
	// Error message
	// example: Vault not found
	Error string `json:"error"`
}

// NewGetVaultsHandler returns an HTTP handler serving the vault listing.
// @Summary List vaults
// @Description Returns all vault descriptors for the active chain.
// @Tags vaults
// @Produce json
// @Success 200 {object} handlers.VaultsResponse "Vault listing"
// @Failure 502 {object} handlers.VaultErrorResponse "Registry unavailable"
// @Router /vaults [get]
func NewGetVaultsHandler(vaults VaultLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		list, err := vaults.GetVaults(ctx)
		if err != nil {
			logger.Log.Errorw("failed to list vaults", "error", err)
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(VaultErrorResponse{Error: "Vault registry unavailable"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(VaultsResponse{Success: true, Data: list})
	}
}

// NewGetVaultHandler returns an HTTP handler serving one vault's detail.
// @Summary Get vault detail
// @Description Returns the descriptor for a single vault address.
// @Tags vaults
// @Produce json
// @Param address path string true "Vault address"
// @Success 200 {object} models.VaultDescriptor "Vault descriptor"
// @Failure 404 {object} handlers.VaultErrorResponse "Vault not found"
// @Failure 502 {object} handlers.VaultErrorResponse "Registry unavailable"
// @Router /vaults/{address} [get]
func NewGetVaultHandler(vaults VaultLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		address := chi.URLParam(r, "address")

		vault, err := vaults.GetByAddress(ctx, address)
		if err != nil {
			if errors.Is(err, services.ErrVaultNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(VaultErrorResponse{Error: "Vault not found"})
				return
			}
			logger.Log.Errorw("failed to get vault", "address", address, "error", err)
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(VaultErrorResponse{Error: "Vault registry unavailable"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(vault)
	}
}
