package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/seidlp/vault-gateway/internal/logger"
	"github.com/seidlp/vault-gateway/internal/models"
)

// VaultCacheRepository caches registry descriptors in Redis so the vault
// list and detail pages do not hammer the upstream registry.
type VaultCacheRepository struct {
	client  *redis.Client
	chainID string
	exp     time.Duration // expiration duration for cached descriptors
}

// NewVaultCacheRepository creates a repository instance scoped to one chain.
func NewVaultCacheRepository(client *redis.Client, chainID string, expiration time.Duration) *VaultCacheRepository {
	return &VaultCacheRepository{
		client:  client,
		chainID: chainID,
		exp:     expiration,
	}
}

func (r *VaultCacheRepository) listKey() string {
	return fmt.Sprintf("vaults:%s", r.chainID)
}

func (r *VaultCacheRepository) vaultKey(address string) string {
	return fmt.Sprintf("vault:%s:%s", r.chainID, models.NormalizeAddress(address))
}

// GetVaults returns the cached descriptor list, or an error on cache miss.
func (r *VaultCacheRepository) GetVaults(ctx context.Context) ([]models.VaultDescriptor, error) {
	key := r.listKey()

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("vault list not found in cache for chain %s", r.chainID)
		}
		logger.Log.Errorw("failed to read vault list from cache", "key", key, "error", err)
		return nil, err
	}

	var vaults []models.VaultDescriptor
	if err := json.Unmarshal([]byte(val), &vaults); err != nil {
		logger.Log.Errorw("failed to decode cached vault list", "key", key, "error", err)
		return nil, err
	}

	return vaults, nil
}

// SetVaults caches the full descriptor list plus a per-address entry for
// detail lookups, all with the repository's TTL.
func (r *VaultCacheRepository) SetVaults(ctx context.Context, vaults []models.VaultDescriptor) error {
	data, err := json.Marshal(vaults)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.listKey(), data, r.exp).Err(); err != nil {
		logger.Log.Errorw("failed to cache vault list", "key", r.listKey(), "error", err)
		return err
	}

	for _, v := range vaults {
		one, err := json.Marshal(v)
		if err != nil {
			return err
		}
		if err := r.client.Set(ctx, r.vaultKey(v.Address), one, r.exp).Err(); err != nil {
			logger.Log.Errorw("failed to cache vault descriptor", "vault", v.Address, "error", err)
			return err
		}
	}

	return nil
}

// GetByAddress returns a single cached descriptor, or an error on miss.
func (r *VaultCacheRepository) GetByAddress(ctx context.Context, address string) (*models.VaultDescriptor, error) {
	key := r.vaultKey(address)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("vault %s not found in cache", address)
		}
		logger.Log.Errorw("failed to read vault descriptor from cache", "key", key, "error", err)
		return nil, err
	}

	var vault models.VaultDescriptor
	if err := json.Unmarshal([]byte(val), &vault); err != nil {
		return nil, err
	}
	return &vault, nil
}
