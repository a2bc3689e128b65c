package models

import "errors"

// Domain errors returned by the ledger and its stores. None of these are
// fatal; callers decide how to react.
var (
	ErrInvalidAmount     = errors.New("amount must be a finite number")
	ErrInvalidCurrency   = errors.New("currency must be a three-letter uppercase code")
	ErrDuplicateID       = errors.New("transaction id already exists")
	ErrNotFound          = errors.New("transaction not found")
	ErrInvalidTransition = errors.New("status transition not permitted")
)
