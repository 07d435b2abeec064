package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/seidlp/vault-gateway/internal/logger"
	"github.com/seidlp/vault-gateway/internal/models"
)

// VaultRegistryFacade reads vault metadata from the upstream registry API.
// The registry is a read-only collaborator: descriptors are immutable
// snapshots and the facade never writes back.
type VaultRegistryFacade struct {
	baseURL string
	client  *http.Client
}

// NewVaultRegistryFacade creates a facade for the registry at baseURL.
func NewVaultRegistryFacade(baseURL string) *VaultRegistryFacade {
	return &VaultRegistryFacade{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// vaultsEnvelope is the registry's response wrapper for GET /api/vaults.
type vaultsEnvelope struct {
	Success bool                     `json:"success"`
	Data    []models.VaultDescriptor `json:"data"`
	Error   string                   `json:"error"`
}

// GetVaults fetches all vault descriptors from the registry.
func (f *VaultRegistryFacade) GetVaults(ctx context.Context) ([]models.VaultDescriptor, error) {
	url := f.baseURL + "/api/vaults"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch vaults from registry", "url", url, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("registry returned non-OK status", "url", url, "status", resp.StatusCode)
		return nil, fmt.Errorf("registry returned status %d", resp.StatusCode)
	}

	var envelope vaultsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		logger.Log.Errorw("failed to decode registry response", "url", url, "error", err)
		return nil, err
	}

	if !envelope.Success {
		logger.Log.Errorw("registry reported failure", "url", url, "error", envelope.Error)
		return nil, fmt.Errorf("registry reported failure: %s", envelope.Error)
	}

	return envelope.Data, nil
}
