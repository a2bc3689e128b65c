package ledger

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/finproc/transaction-ledger/internal/interfaces"
	"github.com/finproc/transaction-ledger/internal/models"
)

// Ledger is the in-memory authority over all transaction records. It
// layers validation and the status state machine on top of whatever
// TransactionStore it is given, and serializes status transitions per
// transaction so that concurrent callers cannot both move the same
// record out of Pending.
type Ledger struct {
	store interfaces.TransactionStore
	muMap map[uuid.UUID]*sync.Mutex // per-transaction lock for transitions
	mapMu sync.Mutex                // protects the muMap itself
}

// NewLedger creates a Ledger over the given storage implementation
// (memory, postgres, etc.).
func NewLedger(store interfaces.TransactionStore) *Ledger {
	return &Ledger{
		store: store,
		muMap: make(map[uuid.UUID]*sync.Mutex),
	}
}

func (l *Ledger) getTransactionLock(id uuid.UUID) *sync.Mutex {
	l.mapMu.Lock()
	defer l.mapMu.Unlock()

	if _, exists := l.muMap[id]; !exists {
		l.muMap[id] = &sync.Mutex{}
	}
	return l.muMap[id]
}

// Create validates amount and currency and returns a new Pending
// transaction. It does not insert the record; insertion is a separate,
// explicit step so callers can inspect the record before committing it.
func (l *Ledger) Create(amount float64, currency string) (models.Transaction, error) {
	return models.NewTransaction(amount, currency)
}

// Insert stores a transaction keyed by its id. Inserting an id that is
// already held fails with models.ErrDuplicateID; an existing record is
// never silently overwritten.
func (l *Ledger) Insert(ctx context.Context, tx models.Transaction) error {
	return l.store.SaveTransaction(ctx, tx)
}

// Get returns the transaction with the given id, or models.ErrNotFound.
func (l *Ledger) Get(id uuid.UUID) (models.Transaction, error) {
	return l.store.GetTransaction(id)
}

// Transition moves the transaction to next per the state machine:
// Pending may become Completed or Failed, and both of those are
// terminal. The read-check-write runs under the per-transaction lock,
// so of two racing transitions on one id only one can succeed.
func (l *Ledger) Transition(ctx context.Context, id uuid.UUID, next models.TransactionStatus) error {
	mu := l.getTransactionLock(id)
	mu.Lock()
	defer mu.Unlock()

	tx, err := l.store.GetTransaction(id)
	if err != nil {
		return err
	}

	if !next.Valid() || !tx.Status.CanTransitionTo(next) {
		return models.ErrInvalidTransition
	}

	return l.store.UpdateStatus(ctx, id, next)
}

// Count returns the number of records currently held.
func (l *Ledger) Count() (int, error) {
	return l.store.CountTransactions()
}
