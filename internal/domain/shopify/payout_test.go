package shopify

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_SignedAmount(t *testing.T) {
	disbursement := Transaction{Type: TransactionTypePayout, Amount: decimal.NewFromInt(100), Net: decimal.NewFromInt(100)}
	assert.True(t, disbursement.SignedAmount().Equal(decimal.NewFromInt(-100)))
	assert.True(t, disbursement.SignedNet().Equal(decimal.NewFromInt(-100)))

	charge := Transaction{Type: TransactionTypeCharge, Amount: decimal.NewFromInt(100), Net: decimal.NewFromFloat(98.50)}
	assert.True(t, charge.SignedAmount().Equal(decimal.NewFromInt(100)))
	assert.True(t, charge.SignedNet().Equal(decimal.NewFromFloat(98.50)))

	refund := Transaction{Type: TransactionTypeRefund, Amount: decimal.NewFromInt(-20), Net: decimal.NewFromInt(-20)}
	assert.True(t, refund.SignedAmount().Equal(decimal.NewFromInt(-20)))
}
