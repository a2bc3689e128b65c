package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "Pending"
	StatusCompleted TransactionStatus = "Completed"
	StatusFailed    TransactionStatus = "Failed"
)

// Valid reports whether s is one of the known lifecycle states.
func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transition.
func (s TransactionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransitionTo reports whether s -> next is a permitted transition.
// The only permitted transitions are Pending -> Completed and
// Pending -> Failed; once a transaction reaches a terminal state its
// outcome never changes.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	return s == StatusPending && next.Terminal()
}

// Transaction represents a single monetary movement tracked by the
// ledger. Every field except Status is immutable after creation.
type Transaction struct {
	ID        uuid.UUID         `json:"id"`
	Amount    decimal.Decimal   `json:"amount"`
	Currency  string            `json:"currency"`
	CreatedAt time.Time         `json:"created_at"`
	Status    TransactionStatus `json:"status"`
}

// NewTransaction validates amount and currency and builds a Pending
// transaction with a fresh id and a UTC creation timestamp. The record
// is not stored anywhere; callers hand it to the ledger's Insert.
func NewTransaction(amount float64, currency string) (Transaction, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Transaction{}, ErrInvalidAmount
	}
	if !ValidCurrency(currency) {
		return Transaction{}, ErrInvalidCurrency
	}

	return Transaction{
		ID:        uuid.New(),
		Amount:    decimal.NewFromFloat(amount),
		Currency:  currency,
		CreatedAt: time.Now().UTC(),
		Status:    StatusPending,
	}, nil
}

// ValidCurrency reports whether code has the shape of an ISO 4217
// currency code: exactly three ASCII uppercase letters. No currency
// table is consulted.
func ValidCurrency(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
