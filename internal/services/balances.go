package services

import (
	"context"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/shopspring/decimal"

	"github.com/seidlp/vault-gateway/internal/logger"
	"github.com/seidlp/vault-gateway/internal/models"
)

// BalanceReader reads the native-coin balance through the chain gateway.
type BalanceReader interface {
	ReadBalance(ctx context.Context, address string) (decimal.Decimal, error)
}

// BalanceKeeper is the single client-side view of wallet balances. It caches
// the last known value per address and guards it while a transaction is
// in flight: the wallet client re-fetches balances on its own schedule, and
// during a pending transaction that race used to flash a "0" balance.
// Settled transactions trigger one authoritative, debounced re-fetch.
type BalanceKeeper struct {
	gateway  BalanceReader
	cache    *ristretto.Cache
	ttl      time.Duration
	debounce time.Duration

	mu          sync.Mutex
	pending     map[string]int
	lastRefresh map[string]time.Time
}

// NewBalanceKeeper creates a keeper with the given cache TTL and settle
// debounce window.
func NewBalanceKeeper(gateway BalanceReader, ttl, debounce time.Duration) (*BalanceKeeper, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1 << 14,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	return &BalanceKeeper{
		gateway:     gateway,
		cache:       cache,
		ttl:         ttl,
		debounce:    debounce,
		pending:     make(map[string]int),
		lastRefresh: make(map[string]time.Time),
	}, nil
}

func (k *BalanceKeeper) cached(address string) (decimal.Decimal, bool) {
	val, ok := k.cache.Get(models.NormalizeAddress(address))
	if !ok {
		return decimal.Zero, false
	}
	balance, ok := val.(decimal.Decimal)
	return balance, ok
}

func (k *BalanceKeeper) store(address string, balance decimal.Decimal) {
	k.cache.SetWithTTL(models.NormalizeAddress(address), balance, 1, k.ttl)
	// Ristretto applies writes asynchronously; wait so the next read sees it.
	k.cache.Wait()
}

// Balance returns the wallet's balance. While a transaction is pending for
// the address, a zero or failed re-fetch never replaces a previously known
// positive value.
func (k *BalanceKeeper) Balance(ctx context.Context, address string) (decimal.Decimal, error) {
	known, haveKnown := k.cached(address)

	fresh, err := k.gateway.ReadBalance(ctx, address)
	if err != nil {
		if haveKnown {
			logger.Log.Warnw("balance fetch failed, serving last known value",
				"address", address, "error", err)
			return known, nil
		}
		return decimal.Zero, err
	}

	if k.pendingCount(address) > 0 && fresh.IsZero() && haveKnown && known.IsPositive() {
		logger.Log.Debugw("preserving last known balance during pending transaction",
			"address", address, "known", known.String())
		return known, nil
	}

	k.store(address, fresh)
	return fresh, nil
}

// MarkPending records that a transaction is in flight for the address.
func (k *BalanceKeeper) MarkPending(address string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pending[models.NormalizeAddress(address)]++
}

func (k *BalanceKeeper) pendingCount(address string) int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.pending[models.NormalizeAddress(address)]
}

// RefreshSettled clears the pending mark and performs exactly one
// authoritative re-fetch per settlement, collapsed by the debounce window.
// The fresh value overwrites the cache unconditionally.
func (k *BalanceKeeper) RefreshSettled(ctx context.Context, address string) {
	key := models.NormalizeAddress(address)

	k.mu.Lock()
	if k.pending[key] > 0 {
		k.pending[key]--
		if k.pending[key] == 0 {
			delete(k.pending, key)
		}
	}
	if last, ok := k.lastRefresh[key]; ok && time.Since(last) < k.debounce {
		k.mu.Unlock()
		return
	}
	k.lastRefresh[key] = time.Now()
	k.mu.Unlock()

	fresh, err := k.gateway.ReadBalance(ctx, address)
	if err != nil {
		logger.Log.Errorw("post-settlement balance refresh failed", "address", address, "error", err)
		return
	}
	k.store(address, fresh)
}
