package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/finproc/transaction-ledger/internal/interfaces"
	"github.com/finproc/transaction-ledger/internal/models"
)

// PostgresTransactionStore persists transactions in a `transactions`
// table:
//
//	id uuid primary key, amount numeric, currency text,
//	created_at timestamptz, status text
type PostgresTransactionStore struct {
	db *sql.DB
}

func NewPostgresTransactionStore(db *sql.DB) *PostgresTransactionStore {
	return &PostgresTransactionStore{
		db: db,
	}
}

func (p *PostgresTransactionStore) SaveTransaction(ctx context.Context, tx models.Transaction) error {
	const query = `INSERT INTO transactions (id, amount, currency, created_at, status)
	VALUES ($1,$2,$3,$4,$5)`

	_, err := p.db.ExecContext(ctx, query, tx.ID, tx.Amount, tx.Currency, tx.CreatedAt, string(tx.Status))

	// unique_violation on the primary key means the id is already taken
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return models.ErrDuplicateID
	}
	return err
}

func (p *PostgresTransactionStore) GetTransaction(id uuid.UUID) (models.Transaction, error) {
	const query = `SELECT id, amount, currency, created_at, status FROM transactions
	WHERE id = $1`

	var tx models.Transaction
	err := p.db.QueryRow(query, id).Scan(
		&tx.ID,
		&tx.Amount,
		&tx.Currency,
		&tx.CreatedAt,
		&tx.Status,
	)
	if err == sql.ErrNoRows {
		return models.Transaction{}, models.ErrNotFound
	}
	if err != nil {
		return models.Transaction{}, err
	}
	return tx, nil
}

func (p *PostgresTransactionStore) UpdateStatus(ctx context.Context, id uuid.UUID, status models.TransactionStatus) error {
	const query = `UPDATE transactions SET status = $2 WHERE id = $1`

	result, err := p.db.ExecContext(ctx, query, id, string(status))
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (p *PostgresTransactionStore) CountTransactions() (int, error) {
	const query = `SELECT count(*) FROM transactions`

	var count int
	if err := p.db.QueryRow(query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Compile-time check: PostgresTransactionStore implements TransactionStore.
var _ interfaces.TransactionStore = (*PostgresTransactionStore)(nil)
