package selling

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayout_RequiresPayoutID(t *testing.T) {
	_, err := NewPayout(0, time.Now(), "paid", "USD", decimal.NewFromInt(10), PayoutSummary{})
	assert.ErrorIs(t, err, ErrPayoutInvalidID)
}

func TestPayout_TransactionsByInvoice(t *testing.T) {
	payout, err := NewPayout(7000, time.Now(), "paid", "USD", decimal.NewFromInt(100), PayoutSummary{})
	require.NoError(t, err)

	payout.AppendTransaction(PayoutTransaction{TransactionID: 1, SalesInvoice: "SINV-1"})
	payout.AppendTransaction(PayoutTransaction{TransactionID: 2, SalesInvoice: "SINV-1"})
	payout.AppendTransaction(PayoutTransaction{TransactionID: 3, SalesInvoice: "SINV-2"})
	payout.AppendTransaction(PayoutTransaction{TransactionID: 4})

	grouped := payout.TransactionsByInvoice()

	require.Len(t, grouped, 2)
	assert.Len(t, grouped["SINV-1"], 2)
	assert.Len(t, grouped["SINV-2"], 1)
}
