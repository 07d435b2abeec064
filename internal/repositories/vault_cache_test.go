package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/seidlp/vault-gateway/internal/models"
)

func TestVaultCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewVaultCacheRepository(rdb, "713715", 2*time.Second)

	vaults := []models.VaultDescriptor{
		{
			Address:       txTestVault,
			Name:          "SEI Conservative",
			Strategy:      models.StrategyConservative,
			Token0Address: models.ZeroAddress,
			ChainID:       "713715",
			APY:           0.085,
		},
		{
			Address:       "0x5555555555555555555555555555555555555555",
			Name:          "SEI Aggressive",
			Strategy:      models.StrategyAggressive,
			Token0Address: "0x6666666666666666666666666666666666666666",
			ChainID:       "713715",
		},
	}

	t.Run("Set and Get vault list", func(t *testing.T) {
		err := repo.SetVaults(ctx, vaults)
		assert.NoError(t, err)

		got, err := repo.GetVaults(ctx)
		assert.NoError(t, err)
		assert.Equal(t, vaults, got)
	})

	t.Run("Get single vault by address", func(t *testing.T) {
		got, err := repo.GetByAddress(ctx, txTestVault)
		assert.NoError(t, err)
		assert.Equal(t, "SEI Conservative", got.Name)

		// Checksummed lookups hit the same key.
		got, err = repo.GetByAddress(ctx, "0X1111111111111111111111111111111111111111")
		assert.NoError(t, err)
		assert.Equal(t, "SEI Conservative", got.Name)
	})

	t.Run("Miss on unknown address", func(t *testing.T) {
		_, err := repo.GetByAddress(ctx, "0x7777777777777777777777777777777777777777")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found in cache")
	})

	t.Run("Cached descriptors expire", func(t *testing.T) {
		err := repo.SetVaults(ctx, vaults)
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		_, err = repo.GetVaults(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found in cache")
	})

	t.Run("Different chain uses different keys", func(t *testing.T) {
		other := NewVaultCacheRepository(rdb, "1329", time.Minute)

		err := repo.SetVaults(ctx, vaults)
		assert.NoError(t, err)

		_, err = other.GetVaults(ctx)
		assert.Error(t, err)
	})
}
