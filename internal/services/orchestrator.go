package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/seidlp/vault-gateway/internal/facades"
	"github.com/seidlp/vault-gateway/internal/logger"
	"github.com/seidlp/vault-gateway/internal/models"
)

// Orchestrator errors. Validation errors leave the state machine in idle:
// they happen before a submission exists. ErrVaultNotSupported short-circuits
// to the error state without ever reaching the wallet.
var (
	// ErrInvalidAmount is returned for non-positive or unparseable amounts.
	ErrInvalidAmount = errors.New("amount must be a positive number")
	// ErrInsufficientBalance is returned when the amount exceeds the available balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrVaultNotSupported is returned when the vault is not deployed on the active chain.
	ErrVaultNotSupported = errors.New("vault is not deployed on the active chain")
	// ErrSubmissionPending rejects a second submission while one is in flight.
	ErrSubmissionPending = errors.New("a transaction is already pending")
	// ErrResetWhilePending forbids the pending -> idle shortcut.
	ErrResetWhilePending = errors.New("cannot reset while a transaction is pending")
	// ErrSharesLocked is returned when the vault's lock period has not elapsed.
	ErrSharesLocked = errors.New("shares are still in the lock period")
)

// ChainGateway is the wallet/contract capability surface the orchestrator
// submits through.
type ChainGateway interface {
	ChainID() string
	ReadCustomerStats(ctx context.Context, vaultAddress, customer string) (*models.CustomerPosition, error)
	WriteDeposit(ctx context.Context, call facades.DepositCall) (string, error)
	WriteWithdraw(ctx context.Context, call facades.WithdrawCall) (string, error)
}

// ReceiptObserver delivers the settled outcome of a broadcast transaction.
type ReceiptObserver interface {
	WatchReceipt(ctx context.Context, txHash string) (*facades.Receipt, error)
}

// VaultReader resolves and validates the target vault before submission.
type VaultReader interface {
	GetByAddress(ctx context.Context, address string) (*models.VaultDescriptor, error)
	IsSupported(address string) bool
}

// BalanceTracker is the balance view the orchestrator validates against and
// notifies about transaction lifecycles.
type BalanceTracker interface {
	Balance(ctx context.Context, address string) (decimal.Decimal, error)
	MarkPending(address string)
	RefreshSettled(ctx context.Context, address string)
}

// TransactionJournal persists intent lifecycles for history views.
type TransactionJournal interface {
	SaveSubmitted(ctx context.Context, rec models.TransactionRecord) error
	SaveSettled(ctx context.Context, intentID string, status models.TransactionStatus, txHash, errorMessage string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Orchestrator mediates between user input and the wallet gateway for one
// client session. It enforces preconditions, owns the transaction state
// machine and surfaces a single authoritative status:
//
//	idle -> pending -> {success, error} -> idle (explicit reset only)
//
// Only one intent may be pending at a time; a second submission is rejected
// until a terminal state is reached. Nothing is retried automatically.
type Orchestrator struct {
	gateway     ChainGateway
	receipts    ReceiptObserver
	vaults      VaultReader
	balances    BalanceTracker
	journal     TransactionJournal
	kafkaWriter KafkaWriter

	watchTimeout   time.Duration
	autoResetDelay time.Duration

	mu      sync.Mutex
	state   models.TransactionState
	intent  *models.DepositIntent
	settled bool
}

// NewOrchestrator creates an orchestrator for one session. journal and
// kafkaWriter may be nil; autoResetDelay of zero disables the timed reset
// after success.
func NewOrchestrator(
	gateway ChainGateway,
	receipts ReceiptObserver,
	vaults VaultReader,
	balances BalanceTracker,
	journal TransactionJournal,
	kafkaWriter KafkaWriter,
	watchTimeout time.Duration,
	autoResetDelay time.Duration,
) *Orchestrator {
	if watchTimeout <= 0 {
		watchTimeout = 5 * time.Minute
	}
	return &Orchestrator{
		gateway:        gateway,
		receipts:       receipts,
		vaults:         vaults,
		balances:       balances,
		journal:        journal,
		kafkaWriter:    kafkaWriter,
		watchTimeout:   watchTimeout,
		autoResetDelay: autoResetDelay,
		state:          models.TransactionState{Status: models.StatusIdle},
	}
}

// Status returns the current authoritative transaction state.
func (o *Orchestrator) Status() models.TransactionState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Intent returns the intent currently owned by the state machine, if any.
func (o *Orchestrator) Intent() *models.DepositIntent {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.intent == nil {
		return nil
	}
	copied := *o.intent
	return &copied
}

// ValidateAmount checks that amount parses as a positive decimal and does
// not exceed the available balance. It never touches the state machine.
func ValidateAmount(amount string, balance decimal.Decimal) error {
	parsed, err := decimal.NewFromString(amount)
	if err != nil || !parsed.IsPositive() {
		return ErrInvalidAmount
	}
	if parsed.GreaterThan(balance) {
		return ErrInsufficientBalance
	}
	return nil
}

// ClassifyVaultAssetKind determines the deposit call shape: native vaults
// take the amount as transaction value, ERC20 vaults rely on allowance and
// transferFrom. Classification probes the descriptor's primary token
// address against the zero address.
func ClassifyVaultAssetKind(desc *models.VaultDescriptor) models.AssetKind {
	return desc.AssetKind()
}

// Submit validates the request, transitions idle -> pending and dispatches
// the write call. It returns as soon as the submission is accepted; the
// wallet approval and on-chain settlement are observed asynchronously
// through the receipt observer. Re-submission while pending is rejected.
func (o *Orchestrator) Submit(ctx context.Context, vaultAddress, amount, walletAddress string, op models.Operation) (*models.DepositIntent, error) {
	o.mu.Lock()
	if o.state.Status == models.StatusPending {
		o.mu.Unlock()
		logger.Log.Warnw("duplicate submission rejected", "vault", vaultAddress, "wallet", walletAddress)
		return nil, ErrSubmissionPending
	}
	o.mu.Unlock()

	desc, err := o.vaults.GetByAddress(ctx, vaultAddress)
	if err != nil {
		if errors.Is(err, ErrVaultNotFound) {
			o.failBeforeWallet(models.CauseMisconfiguredVault, "This vault isn't deployed on the active chain")
			return nil, ErrVaultNotSupported
		}
		logger.Log.Errorw("failed to resolve vault descriptor", "vault", vaultAddress, "error", err)
		return nil, err
	}
	if !o.vaults.IsSupported(vaultAddress) {
		logger.Log.Warnw("vault not in supported set for active chain",
			"vault", vaultAddress, "chain_id", o.gateway.ChainID())
		o.failBeforeWallet(models.CauseMisconfiguredVault, "This vault isn't deployed on the active chain")
		return nil, ErrVaultNotSupported
	}

	if err := o.validateForOperation(ctx, amount, walletAddress, vaultAddress, op); err != nil {
		return nil, err
	}

	intent := &models.DepositIntent{
		ID:            uuid.New(),
		VaultAddress:  vaultAddress,
		Amount:        amount,
		WalletAddress: walletAddress,
		Operation:     op,
	}

	o.mu.Lock()
	if o.state.Status == models.StatusPending {
		// Lost the race to another submission on this session.
		o.mu.Unlock()
		return nil, ErrSubmissionPending
	}
	o.state = models.TransactionState{Status: models.StatusPending}
	o.intent = intent
	o.settled = false
	o.mu.Unlock()

	o.balances.MarkPending(walletAddress)
	o.journalSubmitted(ctx, intent)

	logger.Log.Infow("transaction submitted",
		"intent_id", intent.ID,
		"vault", vaultAddress,
		"operation", op,
		"amount", amount,
	)

	// The request context ends with the HTTP call; the broadcast outlives it.
	go o.dispatch(context.Background(), intent, desc)

	return intent, nil
}

// validateForOperation enforces the amount preconditions. Deposits validate
// against the wallet balance, withdrawals against the position's shares and
// lock period. Failures leave the state machine in idle: no submission has
// occurred yet.
func (o *Orchestrator) validateForOperation(ctx context.Context, amount, walletAddress, vaultAddress string, op models.Operation) error {
	switch op {
	case models.OperationDeposit:
		balance, err := o.balances.Balance(ctx, walletAddress)
		if err != nil {
			logger.Log.Errorw("failed to read balance for validation", "wallet", walletAddress, "error", err)
			return err
		}
		if err := ValidateAmount(amount, balance); err != nil {
			logger.Log.Warnw("deposit validation failed", "amount", amount, "balance", balance.String(), "error", err)
			return err
		}
	case models.OperationWithdraw:
		position, err := o.gateway.ReadCustomerStats(ctx, vaultAddress, walletAddress)
		if err != nil {
			logger.Log.Errorw("failed to read position for validation", "vault", vaultAddress, "error", err)
			return err
		}
		if err := ValidateAmount(amount, position.Shares); err != nil {
			logger.Log.Warnw("withdrawal validation failed", "amount", amount, "shares", position.Shares.String(), "error", err)
			return err
		}
		if position.LockTimeRemaining > 0 {
			logger.Log.Warnw("withdrawal rejected, shares locked",
				"vault", vaultAddress, "lock_time_remaining", position.LockTimeRemaining)
			return ErrSharesLocked
		}
	default:
		return ErrInvalidAmount
	}
	return nil
}

// dispatch performs the wallet write and watches the receipt. It runs off
// the request goroutine; every exit path settles the state machine exactly
// once.
func (o *Orchestrator) dispatch(ctx context.Context, intent *models.DepositIntent, desc *models.VaultDescriptor) {
	ctx, cancel := context.WithTimeout(ctx, o.watchTimeout)
	defer cancel()

	native := ClassifyVaultAssetKind(desc) == models.AssetKindNative

	var txHash string
	var err error
	switch intent.Operation {
	case models.OperationDeposit:
		call := facades.DepositCall{
			VaultAddress: intent.VaultAddress,
			Recipient:    intent.WalletAddress,
			Native:       native,
		}
		if native {
			call.Value = intent.Amount
		} else {
			call.Amount0 = intent.Amount
			call.Amount1 = "0"
		}
		txHash, err = o.gateway.WriteDeposit(ctx, call)
	case models.OperationWithdraw:
		txHash, err = o.gateway.WriteWithdraw(ctx, facades.WithdrawCall{
			VaultAddress: intent.VaultAddress,
			Shares:       intent.Amount,
			Owner:        intent.WalletAddress,
			Recipient:    intent.WalletAddress,
			Native:       native,
		})
	}
	if err != nil {
		o.settle(ctx, intent, models.TransactionState{
			Status:       models.StatusError,
			ErrorMessage: walletErrorMessage(err),
			ErrorCause:   walletErrorCause(err),
		})
		return
	}

	o.mu.Lock()
	if o.intent != nil && o.intent.ID == intent.ID && o.state.Status == models.StatusPending {
		o.state.TxHash = txHash
	}
	o.mu.Unlock()

	receipt, err := o.receipts.WatchReceipt(ctx, txHash)
	switch {
	case err != nil:
		o.settle(ctx, intent, models.TransactionState{
			Status:       models.StatusError,
			TxHash:       txHash,
			ErrorMessage: "Transaction was broadcast but its outcome could not be confirmed: " + err.Error(),
			ErrorCause:   models.CauseContractRevert,
		})
	case receipt.Status == 0:
		reason := receipt.RevertReason
		if reason == "" {
			reason = "execution reverted"
		}
		o.settle(ctx, intent, models.TransactionState{
			Status:       models.StatusError,
			TxHash:       txHash,
			ErrorMessage: "Transaction failed on-chain: " + reason,
			ErrorCause:   models.CauseContractRevert,
		})
	default:
		o.settle(ctx, intent, models.TransactionState{
			Status: models.StatusSuccess,
			TxHash: txHash,
		})
	}
}

// failBeforeWallet short-circuits to the error state without a wallet call.
func (o *Orchestrator) failBeforeWallet(cause models.ErrorCause, message string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state.Status == models.StatusPending {
		return
	}
	o.state = models.TransactionState{
		Status:       models.StatusError,
		ErrorMessage: message,
		ErrorCause:   cause,
	}
}

// settleTimeout bounds the settle side effects. They run on their own
// deadline: the watch context may already be expired by the time the
// outcome is known.
const settleTimeout = 10 * time.Second

// settle records the terminal outcome exactly once per submission, then
// journals it, publishes the settled event and triggers the authoritative
// balance re-fetch.
func (o *Orchestrator) settle(ctx context.Context, intent *models.DepositIntent, terminal models.TransactionState) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), settleTimeout)
	defer cancel()

	o.mu.Lock()
	if o.settled || o.intent == nil || o.intent.ID != intent.ID {
		o.mu.Unlock()
		return
	}
	o.settled = true
	o.state = terminal
	o.mu.Unlock()

	logger.Log.Infow("transaction settled",
		"intent_id", intent.ID,
		"status", terminal.Status,
		"tx_hash", terminal.TxHash,
		"error", terminal.ErrorMessage,
	)

	if o.journal != nil {
		if err := o.journal.SaveSettled(ctx, intent.ID.String(), terminal.Status, terminal.TxHash, terminal.ErrorMessage); err != nil {
			logger.Log.Errorw("failed to journal settled transaction", "intent_id", intent.ID, "error", err)
		}
	}

	o.publishSettled(ctx, intent, terminal)
	o.balances.RefreshSettled(ctx, intent.WalletAddress)

	if terminal.Status == models.StatusSuccess && o.autoResetDelay > 0 {
		id := intent.ID
		time.AfterFunc(o.autoResetDelay, func() {
			o.mu.Lock()
			defer o.mu.Unlock()
			if o.intent != nil && o.intent.ID == id && o.state.Terminal() {
				o.state = models.TransactionState{Status: models.StatusIdle}
				o.intent = nil
			}
		})
	}
}

// Reset returns a terminal state machine to idle and clears hash and error.
// Resetting while pending is forbidden: pending may only leave through
// success or error.
func (o *Orchestrator) Reset() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state.Status == models.StatusPending {
		return ErrResetWhilePending
	}

	o.state = models.TransactionState{Status: models.StatusIdle}
	o.intent = nil
	return nil
}

func (o *Orchestrator) journalSubmitted(ctx context.Context, intent *models.DepositIntent) {
	if o.journal == nil {
		return
	}
	err := o.journal.SaveSubmitted(ctx, models.TransactionRecord{
		IntentID:      intent.ID.String(),
		WalletAddress: intent.WalletAddress,
		VaultAddress:  intent.VaultAddress,
		Operation:     string(intent.Operation),
		Amount:        intent.Amount,
		Status:        models.StatusPending,
	})
	if err != nil {
		logger.Log.Errorw("failed to journal submitted transaction", "intent_id", intent.ID, "error", err)
	}
}

// publishSettled publishes a settled-transaction event to Kafka. Consumers
// use it as the explicit re-fetch trigger instead of polling mid-flight.
func (o *Orchestrator) publishSettled(ctx context.Context, intent *models.DepositIntent, terminal models.TransactionState) {
	if o.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "intent_id", intent.ID)
		return
	}

	event := models.SettledEvent{
		IntentID:      intent.ID.String(),
		WalletAddress: intent.WalletAddress,
		VaultAddress:  intent.VaultAddress,
		Operation:     string(intent.Operation),
		Amount:        intent.Amount,
		Status:        terminal.Status,
		TxHash:        terminal.TxHash,
		Timestamp:     time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal settled event", "intent_id", intent.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.IntentID),
		Value: data,
	}

	if err := o.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish settled event", "intent_id", intent.ID, "error", err)
	} else {
		logger.Log.Infow("settled event published", "intent_id", intent.ID, "status", terminal.Status)
	}
}

// walletErrorMessage maps gateway errors onto user-facing messages that keep
// "you rejected it" distinguishable from "it failed on-chain".
func walletErrorMessage(err error) string {
	switch {
	case errors.Is(err, facades.ErrWalletRejected):
		return "Transaction was rejected in the wallet"
	case errors.Is(err, facades.ErrExecutionReverted):
		return "Transaction failed on-chain: " + err.Error()
	default:
		return "Transaction could not be submitted: " + err.Error()
	}
}

func walletErrorCause(err error) models.ErrorCause {
	if errors.Is(err, facades.ErrWalletRejected) {
		return models.CauseWalletRejected
	}
	return models.CauseContractRevert
}
