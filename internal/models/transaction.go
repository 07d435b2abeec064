package models

import "strings"

// TransactionStatus is the lifecycle stage of a submitted transaction.
type TransactionStatus string

const (
	StatusIdle    TransactionStatus = "idle"
	StatusPending TransactionStatus = "pending"
	StatusSuccess TransactionStatus = "success"
	StatusError   TransactionStatus = "error"
)

// ErrorCause distinguishes why a transaction ended in the error state.
// Each cause maps to its own user-facing message.
type ErrorCause string

const (
	CauseNone               ErrorCause = ""
	CauseInvalidInput       ErrorCause = "invalid_input"
	CauseInsufficientFunds  ErrorCause = "insufficient_balance"
	CauseWalletRejected     ErrorCause = "wallet_rejected"
	CauseContractRevert     ErrorCause = "network_or_contract_revert"
	CauseMisconfiguredVault ErrorCause = "misconfigured_vault"
)

// TransactionState is the single authoritative status the orchestrator
// exposes to clients. Success always carries a hash, error always a message.
// swagger:model TransactionState
type TransactionState struct {
	Status       TransactionStatus `json:"status"`
	TxHash       string            `json:"tx_hash,omitempty"`
	ErrorMessage string            `json:"error_message,omitempty"`
	ErrorCause   ErrorCause        `json:"error_cause,omitempty"`
}

// Terminal reports whether the state can only leave via an explicit reset.
func (s TransactionState) Terminal() bool {
	return s.Status == StatusSuccess || s.Status == StatusError
}

// TransactionRecord is one journal row tracking an intent through its
// lifecycle. The live state machine stays in memory; the journal is history.
type TransactionRecord struct {
	IntentID      string            `json:"intent_id" db:"intent_id"`
	WalletAddress string            `json:"wallet_address" db:"wallet_address"`
	VaultAddress  string            `json:"vault_address" db:"vault_address"`
	Operation     string            `json:"operation" db:"operation"`
	Amount        string            `json:"amount" db:"amount"`
	Status        TransactionStatus `json:"status" db:"status"`
	TxHash        string            `json:"tx_hash" db:"tx_hash"`
	ErrorMessage  string            `json:"error_message" db:"error_message"`
	CreatedAt     int64             `json:"created_at" db:"created_at"`
	UpdatedAt     int64             `json:"updated_at" db:"updated_at"`
}

// SettledEvent is published once per settled transaction. Consumers use it
// to trigger exactly one authoritative balance re-fetch instead of polling.
type SettledEvent struct {
	IntentID      string            `json:"intent_id"`
	WalletAddress string            `json:"wallet_address"`
	VaultAddress  string            `json:"vault_address"`
	Operation     string            `json:"operation"`
	Amount        string            `json:"amount"`
	Status        TransactionStatus `json:"status"`
	TxHash        string            `json:"tx_hash,omitempty"`
	Timestamp     int64             `json:"timestamp"`
}

// TruncateHash shortens a transaction hash for display: 0x1234…abcd.
func TruncateHash(hash string) string {
	if len(hash) <= 10 {
		return hash
	}
	return hash[:6] + "…" + hash[len(hash)-4:]
}

// NormalizeAddress lowercases an address for use as a map or cache key.
func NormalizeAddress(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}
