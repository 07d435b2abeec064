package services

import (
	"context"
	"sync"

	"github.com/seidlp/vault-gateway/internal/models"
)

// poolSweepThreshold is the pool size above which For sweeps idle entries
// before admitting a new wallet.
const poolSweepThreshold = 1024

// OrchestratorPool hands out one orchestrator per wallet session, so the
// single-pending-intent guarantee holds per session rather than globally.
// Idle entries hold no session state and are evicted: on Reset, and in
// bulk once the pool outgrows poolSweepThreshold.
type OrchestratorPool struct {
	mu      sync.Mutex
	pool    map[string]*Orchestrator
	factory func() *Orchestrator
}

// NewOrchestratorPool creates a pool. factory builds a fresh orchestrator
// wired to the shared collaborators.
func NewOrchestratorPool(factory func() *Orchestrator) *OrchestratorPool {
	return &OrchestratorPool{
		pool:    make(map[string]*Orchestrator),
		factory: factory,
	}
}

// For returns the orchestrator owning the given wallet's session, creating
// it on first use.
func (p *OrchestratorPool) For(walletAddress string) *Orchestrator {
	key := models.NormalizeAddress(walletAddress)

	p.mu.Lock()
	defer p.mu.Unlock()

	if o, ok := p.pool[key]; ok {
		return o
	}
	if len(p.pool) >= poolSweepThreshold {
		p.sweepIdleLocked()
	}
	o := p.factory()
	p.pool[key] = o
	return o
}

// sweepIdleLocked drops entries whose state machine is idle. An idle
// orchestrator is indistinguishable from a fresh one, so the session
// guarantees survive eviction. Callers must hold p.mu.
func (p *OrchestratorPool) sweepIdleLocked() {
	for key, o := range p.pool {
		if o.Status().Status == models.StatusIdle {
			delete(p.pool, key)
		}
	}
}

// Submit dispatches a submission on the wallet's session orchestrator.
func (p *OrchestratorPool) Submit(ctx context.Context, walletAddress, vaultAddress, amount string, op models.Operation) (*models.DepositIntent, error) {
	return p.For(walletAddress).Submit(ctx, vaultAddress, amount, walletAddress, op)
}

// Status returns the wallet session's current transaction state.
func (p *OrchestratorPool) Status(walletAddress string) models.TransactionState {
	return p.For(walletAddress).Status()
}

// Reset resets the wallet session's state machine to idle and releases the
// session's pool entry.
func (p *OrchestratorPool) Reset(walletAddress string) error {
	key := models.NormalizeAddress(walletAddress)

	p.mu.Lock()
	o, ok := p.pool[key]
	p.mu.Unlock()
	if !ok {
		return nil
	}

	if err := o.Reset(); err != nil {
		return err
	}

	p.mu.Lock()
	if cur, ok := p.pool[key]; ok && cur == o {
		delete(p.pool, key)
	}
	p.mu.Unlock()
	return nil
}
