package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seidlp/vault-gateway/internal/logger"
	"github.com/seidlp/vault-gateway/internal/models"
)

// Wallet bridge errors. The orchestrator maps these onto its own taxonomy,
// so "you rejected it" and "it failed on-chain" stay distinguishable.
var (
	// ErrWalletRejected means the user declined the transaction in the wallet UI.
	ErrWalletRejected = errors.New("user rejected transaction")
	// ErrExecutionReverted means the transaction was mined but reverted, or the
	// call failed on-chain before broadcast.
	ErrExecutionReverted = errors.New("execution reverted")
)

// rpcCodeUserRejected is the EIP-1193 code wallets return on user rejection.
const rpcCodeUserRejected = 4001

// DepositCall describes one vault deposit in the shape the contract expects.
// Native vaults take the amount as transaction value through
// seiOptimizedDeposit(amount, recipient); ERC20 vaults go through
// deposit(amount0, amount1, recipient) with a prior allowance.
type DepositCall struct {
	VaultAddress string `json:"vault_address"`
	Recipient    string `json:"recipient"`
	Amount0      string `json:"amount0,omitempty"` // ERC20 path
	Amount1      string `json:"amount1,omitempty"` // ERC20 path, zero when single-sided
	Value        string `json:"value,omitempty"`   // Native path, rides as tx value
	Native       bool   `json:"native"`
}

// WithdrawCall describes one vault withdrawal.
type WithdrawCall struct {
	VaultAddress string `json:"vault_address"`
	Shares       string `json:"shares"`
	Owner        string `json:"owner"`
	Recipient    string `json:"recipient"`
	Native       bool   `json:"native"` // seiOptimizedWithdraw vs withdraw
}

// Receipt is the settled outcome of a broadcast transaction.
type Receipt struct {
	TxHash       string `json:"tx_hash"`
	Status       uint64 `json:"status"` // 1 mined ok, 0 reverted
	RevertReason string `json:"revert_reason,omitempty"`
}

// VaultInfo is the getVaultInfo() projection read straight from the contract.
type VaultInfo struct {
	Token0Address string `json:"token0_address"`
	Token1Address string `json:"token1_address"`
	TotalShares   string `json:"total_shares"`
	Paused        bool   `json:"paused"`
}

// ChainGatewayFacade talks to the wallet bridge over JSON-RPC. The bridge
// owns key material and signing; this facade only shapes calls and maps
// errors. Receipt delivery is handled by ReceiptWatcher.
type ChainGatewayFacade struct {
	rpcURL  string
	chainID string
	client  *http.Client
	reqID   atomic.Int64
}

// NewChainGatewayFacade creates a gateway facade bound to one chain.
func NewChainGatewayFacade(rpcURL, chainID string) *ChainGatewayFacade {
	return &ChainGatewayFacade{
		rpcURL:  rpcURL,
		chainID: chainID,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// ChainID returns the chain this gateway is bound to.
func (f *ChainGatewayFacade) ChainID() string {
	return f.chainID
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// call performs one JSON-RPC round trip and decodes the result into out.
func (f *ChainGatewayFacade) call(ctx context.Context, method string, params any, out any) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      f.reqID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.rpcURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("wallet bridge request failed", "method", method, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("wallet bridge returned non-OK status", "method", method, "status", resp.StatusCode)
		return fmt.Errorf("wallet bridge returned status %d", resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		logger.Log.Errorw("failed to decode wallet bridge response", "method", method, "error", err)
		return err
	}

	if rpcResp.Error != nil {
		return mapRPCError(rpcResp.Error)
	}

	if out != nil {
		return json.Unmarshal(rpcResp.Result, out)
	}
	return nil
}

// mapRPCError converts wallet bridge error codes into the facade's sentinels.
func mapRPCError(e *rpcError) error {
	msg := strings.ToLower(e.Message)
	switch {
	case e.Code == rpcCodeUserRejected || strings.Contains(msg, "rejected"):
		return fmt.Errorf("%w: %s", ErrWalletRejected, e.Message)
	case strings.Contains(msg, "revert"):
		return fmt.Errorf("%w: %s", ErrExecutionReverted, e.Message)
	default:
		return e
	}
}

// ReadBalance returns the wallet's balance of the chain's native coin.
func (f *ChainGatewayFacade) ReadBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	var raw string
	if err := f.call(ctx, "wallet_getBalance", []string{address}, &raw); err != nil {
		return decimal.Zero, err
	}

	balance, err := decimal.NewFromString(raw)
	if err != nil {
		logger.Log.Errorw("wallet bridge returned unparseable balance", "address", address, "value", raw)
		return decimal.Zero, fmt.Errorf("unparseable balance %q: %w", raw, err)
	}
	return balance, nil
}

// ReadCustomerStats calls getCustomerStats(customer) on the vault contract.
func (f *ChainGatewayFacade) ReadCustomerStats(ctx context.Context, vaultAddress, customer string) (*models.CustomerPosition, error) {
	var position models.CustomerPosition
	if err := f.call(ctx, "vault_getCustomerStats", []string{vaultAddress, customer}, &position); err != nil {
		return nil, err
	}
	return &position, nil
}

// ReadVaultInfo calls getVaultInfo() on the vault contract.
func (f *ChainGatewayFacade) ReadVaultInfo(ctx context.Context, vaultAddress string) (*VaultInfo, error) {
	var info VaultInfo
	if err := f.call(ctx, "vault_getVaultInfo", []string{vaultAddress}, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// WriteDeposit submits a deposit through the wallet bridge. The bridge
// prompts the wallet to sign; the returned hash identifies the broadcast
// transaction. A wallet decline surfaces as ErrWalletRejected.
func (f *ChainGatewayFacade) WriteDeposit(ctx context.Context, call DepositCall) (string, error) {
	method := "vault_deposit"
	if call.Native {
		method = "vault_seiOptimizedDeposit"
	}

	var txHash string
	if err := f.call(ctx, method, []DepositCall{call}, &txHash); err != nil {
		return "", err
	}

	logger.Log.Infow("deposit broadcast",
		"vault", call.VaultAddress,
		"recipient", call.Recipient,
		"native", call.Native,
		"tx_hash", txHash,
	)
	return txHash, nil
}

// WriteWithdraw submits a withdrawal through the wallet bridge.
func (f *ChainGatewayFacade) WriteWithdraw(ctx context.Context, call WithdrawCall) (string, error) {
	method := "vault_withdraw"
	if call.Native {
		method = "vault_seiOptimizedWithdraw"
	}

	var txHash string
	if err := f.call(ctx, method, []WithdrawCall{call}, &txHash); err != nil {
		return "", err
	}

	logger.Log.Infow("withdrawal broadcast",
		"vault", call.VaultAddress,
		"owner", call.Owner,
		"native", call.Native,
		"tx_hash", txHash,
	)
	return txHash, nil
}

// ReadReceipt polls the bridge for a transaction receipt. A nil receipt with
// nil error means the transaction is still in flight.
func (f *ChainGatewayFacade) ReadReceipt(ctx context.Context, txHash string) (*Receipt, error) {
	var raw json.RawMessage
	if err := f.call(ctx, "tx_getReceipt", []string{txHash}, &raw); err != nil {
		return nil, err
	}

	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var receipt Receipt
	if err := json.Unmarshal(raw, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}
