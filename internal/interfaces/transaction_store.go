package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/finproc/transaction-ledger/internal/models"
)

// TransactionStore is the storage boundary of the ledger. Implementations
// must reject duplicate ids with models.ErrDuplicateID and report absent
// ids with models.ErrNotFound.
type TransactionStore interface {
	SaveTransaction(ctx context.Context, tx models.Transaction) error
	GetTransaction(id uuid.UUID) (models.Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.TransactionStatus) error
	CountTransactions() (int, error)
}
