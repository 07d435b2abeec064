package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/seidlp/vault-gateway/internal/logger"
	"github.com/seidlp/vault-gateway/internal/models"
)

// TransactionWriterRepository journals intent lifecycles: one row per
// submission, updated when the transaction settles. The live state machine
// stays in memory; this is the audit trail behind GET /api/transactions.
type TransactionWriterRepository struct {
	db *sqlx.DB
}

func NewTransactionWriterRepository(db *sqlx.DB) *TransactionWriterRepository {
	return &TransactionWriterRepository{db: db}
}

// SaveSubmitted inserts the journal row for a freshly submitted intent.
func (r *TransactionWriterRepository) SaveSubmitted(ctx context.Context, rec models.TransactionRecord) error {
	query := `
		INSERT INTO transactions (intent_id, wallet_address, vault_address, operation, amount, status, tx_hash, error_message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, '', $8, $8)
	`

	now := time.Now().Unix()
	_, err := r.db.ExecContext(ctx, query,
		rec.IntentID, models.NormalizeAddress(rec.WalletAddress), models.NormalizeAddress(rec.VaultAddress),
		rec.Operation, rec.Amount, rec.Status, rec.TxHash, now,
	)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{rec.IntentID, rec.WalletAddress, rec.VaultAddress, rec.Operation, rec.Amount, rec.Status},
		"error", err,
	)

	return err
}

// SaveSettled records the terminal outcome for an intent.
func (r *TransactionWriterRepository) SaveSettled(ctx context.Context, intentID string, status models.TransactionStatus, txHash, errorMessage string) error {
	query := `
		UPDATE transactions
		SET status = $2, tx_hash = $3, error_message = $4, updated_at = $5
		WHERE intent_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, intentID, status, txHash, errorMessage, time.Now().Unix())

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{intentID, status, txHash, errorMessage},
		"error", err,
	)

	return err
}

// TransactionReaderRepository reads journal rows back for history views.
type TransactionReaderRepository struct {
	db *sqlx.DB
}

func NewTransactionReaderRepository(db *sqlx.DB) *TransactionReaderRepository {
	return &TransactionReaderRepository{db: db}
}

// GetByWallet lists a wallet's journal rows, newest first.
func (r *TransactionReaderRepository) GetByWallet(ctx context.Context, walletAddress string) ([]models.TransactionRecord, error) {
	const query = `
		SELECT intent_id, wallet_address, vault_address, operation, amount, status, tx_hash, error_message, created_at, updated_at
		FROM transactions
		WHERE wallet_address = $1
		ORDER BY created_at DESC
	`

	var records []models.TransactionRecord
	err := r.db.SelectContext(ctx, &records, query, models.NormalizeAddress(walletAddress))

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletAddress},
		"rows", len(records),
		"error", err,
	)

	return records, err
}

// GetByIntentID fetches one journal row. Returns sql.ErrNoRows through sqlx
// when the intent is unknown.
func (r *TransactionReaderRepository) GetByIntentID(ctx context.Context, intentID string) (*models.TransactionRecord, error) {
	const query = `
		SELECT intent_id, wallet_address, vault_address, operation, amount, status, tx_hash, error_message, created_at, updated_at
		FROM transactions
		WHERE intent_id = $1
	`

	var rec models.TransactionRecord
	err := r.db.GetContext(ctx, &rec, query, intentID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{intentID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &rec, nil
}
