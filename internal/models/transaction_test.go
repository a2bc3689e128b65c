package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	tx, err := NewTransaction(50.0, "EUR")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.Equal(t, "50", tx.Amount.String())
	assert.Equal(t, "EUR", tx.Currency)
	assert.Equal(t, StatusPending, tx.Status)
	assert.False(t, tx.CreatedAt.IsZero())
}

func TestNewTransactionRejectsNonFiniteAmount(t *testing.T) {
	for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := NewTransaction(amount, "USD")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func TestNewTransactionAllowsNegativeAndZero(t *testing.T) {
	tx, err := NewTransaction(-25.75, "USD")
	require.NoError(t, err)
	assert.Equal(t, "-25.75", tx.Amount.String())

	tx, err = NewTransaction(0, "USD")
	require.NoError(t, err)
	assert.True(t, tx.Amount.IsZero())
}

func TestNewTransactionRejectsBadCurrency(t *testing.T) {
	for _, code := range []string{"", "US", "USDT", "usd", "U5D", "US "} {
		_, err := NewTransaction(10, code)
		assert.ErrorIs(t, err, ErrInvalidCurrency, "code %q", code)
	}
}

func TestStatusTransitionRules(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusCompleted))
	assert.True(t, StatusPending.CanTransitionTo(StatusFailed))

	assert.False(t, StatusPending.CanTransitionTo(StatusPending))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusFailed))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusPending))
	assert.False(t, StatusFailed.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusFailed.CanTransitionTo(StatusPending))
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.False(t, TransactionStatus("Refunded").Valid())
}

func TestTransactionJSONRoundTrip(t *testing.T) {
	tx, err := NewTransaction(75.25, "GBP")
	require.NoError(t, err)

	data, err := json.Marshal(tx)
	require.NoError(t, err)
	assert.Contains(t, string(data), "75.25")
	assert.Contains(t, string(data), "GBP")

	var decoded Transaction
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, tx.ID, decoded.ID)
	assert.True(t, tx.Amount.Equal(decoded.Amount))
	assert.Equal(t, tx.Currency, decoded.Currency)
	assert.True(t, tx.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, tx.Status, decoded.Status)
}
