package models

import "github.com/shopspring/decimal"

// ZeroAddress is the EVM zero address. A vault whose primary token address
// equals ZeroAddress takes the chain's native coin as its deposit asset.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// Strategy tags reported by the vault registry.
const (
	StrategyConservative = "Conservative"
	StrategyBalanced     = "Balanced"
	StrategyAggressive   = "Aggressive"
	StrategyYieldFocused = "YieldFocused"
)

// AssetKind describes the call shape a vault deposit requires.
type AssetKind string

const (
	// AssetKindNative means the deposit amount rides as transaction value.
	AssetKindNative AssetKind = "native"
	// AssetKindERC20 means the deposit relies on allowance + transferFrom.
	AssetKindERC20 AssetKind = "erc20"
)

// Performance is the registry's performance snapshot for a vault.
type Performance struct {
	TotalReturn float64 `json:"total_return"` // Cumulative return, fraction (0.42 = 42%)
	SharpeRatio float64 `json:"sharpe_ratio"` // Risk-adjusted return
	MaxDrawdown float64 `json:"max_drawdown"` // Worst peak-to-trough, fraction
	WinRate     float64 `json:"win_rate"`     // Share of profitable rebalances
}

// VaultDescriptor is the read-only vault metadata served by the registry.
// It is an immutable snapshot; this service never mutates it.
// swagger:model VaultDescriptor
type VaultDescriptor struct {
	Address       string      `json:"address"`        // Vault contract address
	Name          string      `json:"name"`           // Display name
	Strategy      string      `json:"strategy"`       // One of the Strategy* tags
	Token0Symbol  string      `json:"token0_symbol"`  // Primary deposit token symbol
	Token1Symbol  string      `json:"token1_symbol"`  // Paired token symbol
	Token0Address string      `json:"token0_address"` // Primary token address, ZeroAddress for native vaults
	Token1Address string      `json:"token1_address"` // Paired token address
	ChainID       string      `json:"chain_id"`       // Chain the vault is deployed on
	FeeRate       float64     `json:"fee_rate"`       // Management fee, fraction
	TVL           float64     `json:"tvl"`            // Total value locked, USD
	APY           float64     `json:"apy"`            // Annualized yield, fraction
	Performance   Performance `json:"performance"`
}

// AssetKind classifies the vault by probing its primary token address.
// The zero address is the convention for "underlying asset is the native coin".
func (v *VaultDescriptor) AssetKind() AssetKind {
	if NormalizeAddress(v.Token0Address) == ZeroAddress {
		return AssetKindNative
	}
	return AssetKindERC20
}

// CustomerPosition is the on-chain projection returned by getCustomerStats.
// Read-only; refreshed after a settled transaction.
// swagger:model CustomerPosition
type CustomerPosition struct {
	Shares            decimal.Decimal `json:"shares"`              // Vault shares owned
	ShareValue        decimal.Decimal `json:"share_value"`         // Current USD value per share
	TotalDeposited    decimal.Decimal `json:"total_deposited"`     // Lifetime deposits
	TotalWithdrawn    decimal.Decimal `json:"total_withdrawn"`     // Lifetime withdrawals
	DepositTimestamp  int64           `json:"deposit_timestamp"`   // Unix seconds of last deposit
	LockTimeRemaining int64           `json:"lock_time_remaining"` // Seconds until withdrawal unlocks
}
