package services

import (
	"context"
	"errors"

	"github.com/seidlp/vault-gateway/internal/logger"
	"github.com/seidlp/vault-gateway/internal/models"
)

// ErrVaultNotFound is returned when no descriptor exists for an address.
var ErrVaultNotFound = errors.New("vault not found")

// RegistryReader fetches descriptors from the upstream vault registry.
type RegistryReader interface {
	GetVaults(ctx context.Context) ([]models.VaultDescriptor, error)
}

// VaultCache caches descriptors between registry fetches.
type VaultCache interface {
	GetVaults(ctx context.Context) ([]models.VaultDescriptor, error)
	SetVaults(ctx context.Context, vaults []models.VaultDescriptor) error
	GetByAddress(ctx context.Context, address string) (*models.VaultDescriptor, error)
}

// VaultService serves vault listings and details: cache first, registry on
// miss. It also owns the per-chain supported-vault set consulted before any
// wallet call is made.
type VaultService struct {
	registry  RegistryReader
	cache     VaultCache
	chainID   string
	supported map[string]struct{}
}

// NewVaultService creates a VaultService. supported lists the vault
// addresses deployed on the active chain.
func NewVaultService(registry RegistryReader, cache VaultCache, chainID string, supported []string) *VaultService {
	set := make(map[string]struct{}, len(supported))
	for _, addr := range supported {
		set[models.NormalizeAddress(addr)] = struct{}{}
	}
	return &VaultService{
		registry:  registry,
		cache:     cache,
		chainID:   chainID,
		supported: set,
	}
}

// GetVaults returns all vaults on the active chain, serving from cache when
// possible and falling back to the registry.
func (s *VaultService) GetVaults(ctx context.Context) ([]models.VaultDescriptor, error) {
	if s.cache != nil {
		if vaults, err := s.cache.GetVaults(ctx); err == nil {
			return vaults, nil
		}
	}

	vaults, err := s.registry.GetVaults(ctx)
	if err != nil {
		logger.Log.Errorw("failed to fetch vaults from registry", "error", err)
		return nil, err
	}

	// Keep only vaults for the active chain; the registry serves all chains.
	filtered := make([]models.VaultDescriptor, 0, len(vaults))
	for _, v := range vaults {
		if v.ChainID == "" || v.ChainID == s.chainID {
			filtered = append(filtered, v)
		}
	}

	if s.cache != nil {
		if err := s.cache.SetVaults(ctx, filtered); err != nil {
			logger.Log.Errorw("failed to cache vaults", "error", err)
		}
	}

	return filtered, nil
}

// GetByAddress returns one vault descriptor, or ErrVaultNotFound.
func (s *VaultService) GetByAddress(ctx context.Context, address string) (*models.VaultDescriptor, error) {
	if s.cache != nil {
		if vault, err := s.cache.GetByAddress(ctx, address); err == nil {
			return vault, nil
		}
	}

	vaults, err := s.GetVaults(ctx)
	if err != nil {
		return nil, err
	}

	want := models.NormalizeAddress(address)
	for i := range vaults {
		if models.NormalizeAddress(vaults[i].Address) == want {
			return &vaults[i], nil
		}
	}

	logger.Log.Warnw("vault not found", "address", address, "chain_id", s.chainID)
	return nil, ErrVaultNotFound
}

// IsSupported reports whether the vault address is deployed on the active
// chain. An empty supported set means the check is disabled.
func (s *VaultService) IsSupported(address string) bool {
	if len(s.supported) == 0 {
		return true
	}
	_, ok := s.supported[models.NormalizeAddress(address)]
	return ok
}
