package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/finproc/transaction-ledger/internal/interfaces"
	"github.com/finproc/transaction-ledger/internal/models"
)

// MemoryTransactionStore is an in-memory implementation of
// interfaces.TransactionStore. Records live in a map keyed by
// transaction id behind a single mutex, so it is safe for concurrent
// use. Contents do not survive process termination.
type MemoryTransactionStore struct {
	mu           sync.Mutex
	transactions map[uuid.UUID]models.Transaction
}

// NewMemoryTransactionStore creates an empty in-memory store.
func NewMemoryTransactionStore() *MemoryTransactionStore {
	return &MemoryTransactionStore{
		transactions: make(map[uuid.UUID]models.Transaction),
	}
}

// SaveTransaction stores tx keyed by its id. A second save with the same
// id is rejected with models.ErrDuplicateID and leaves the store
// unchanged.
func (m *MemoryTransactionStore) SaveTransaction(ctx context.Context, tx models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.transactions[tx.ID]; exists {
		return models.ErrDuplicateID
	}
	m.transactions[tx.ID] = tx
	return nil
}

// GetTransaction returns a copy of the record, so callers cannot mutate
// stored state through the return value.
func (m *MemoryTransactionStore) GetTransaction(id uuid.UUID) (models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx, exists := m.transactions[id]
	if !exists {
		return models.Transaction{}, models.ErrNotFound
	}
	return tx, nil
}

// UpdateStatus rewrites only the status field of the stored record.
func (m *MemoryTransactionStore) UpdateStatus(ctx context.Context, id uuid.UUID, status models.TransactionStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx, exists := m.transactions[id]
	if !exists {
		return models.ErrNotFound
	}
	tx.Status = status
	m.transactions[id] = tx
	return nil
}

// CountTransactions returns the number of records currently held.
func (m *MemoryTransactionStore) CountTransactions() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.transactions), nil
}

// Compile-time check: MemoryTransactionStore implements TransactionStore.
var _ interfaces.TransactionStore = (*MemoryTransactionStore)(nil)
