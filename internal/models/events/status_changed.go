package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finproc/transaction-ledger/internal/models"
)

// TransactionStatusChanged is published after a transaction moves to a
// new lifecycle state.
type TransactionStatusChanged struct {
	TransactionID uuid.UUID                `json:"transaction_id"`
	Amount        decimal.Decimal          `json:"amount"`
	Currency      string                   `json:"currency"`
	OldStatus     models.TransactionStatus `json:"old_status"`
	NewStatus     models.TransactionStatus `json:"new_status"`
	OccurredAt    time.Time                `json:"occurred_at"`
}
