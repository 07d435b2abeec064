package models

import "github.com/google/uuid"

// Operation is the kind of vault call an intent will make.
type Operation string

const (
	OperationDeposit  Operation = "deposit"
	OperationWithdraw Operation = "withdraw"
)

// DepositIntent captures one user-initiated deposit or withdrawal flow.
// It is created when the flow opens and discarded on reset or completion.
type DepositIntent struct {
	ID            uuid.UUID `json:"intent_id"`      // Assigned at creation
	VaultAddress  string    `json:"vault_address"`  // Target vault contract
	Amount        string    `json:"amount"`         // User-entered decimal string; shares for withdrawals
	WalletAddress string    `json:"wallet_address"` // Depositor / share owner
	Operation     Operation `json:"operation"`
}
