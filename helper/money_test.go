package helper

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSplitInclusiveTax(t *testing.T) {
	// 118.00 at 18% IGV decomposes into 100.00 net + 18.00 tax.
	subtotal, tax := SplitInclusiveTax(d("118.00"), d("18"))
	assert.True(t, subtotal.Equal(d("100.00")), "subtotal = %s", subtotal)
	assert.True(t, tax.Equal(d("18.00")), "tax = %s", tax)
}

func TestSplitInclusiveTaxRounding(t *testing.T) {
	subtotal, tax := SplitInclusiveTax(d("30.00"), d("18"))
	assert.True(t, subtotal.Equal(d("25.42")), "subtotal = %s", subtotal)
	assert.True(t, tax.Equal(d("4.58")), "tax = %s", tax)
	assert.True(t, subtotal.Add(tax).Equal(d("30.00")), "subtotal + tax must rebuild the total")
}

func TestSplitInclusiveTaxZeroTotal(t *testing.T) {
	subtotal, tax := SplitInclusiveTax(decimal.Zero, d("18"))
	assert.True(t, subtotal.IsZero())
	assert.True(t, tax.IsZero())
}

func TestSplitInclusiveTaxAlwaysAddsUp(t *testing.T) {
	totals := []string{"0.01", "1.00", "9.99", "59.00", "118.00", "999.99", "12345.67"}
	for _, raw := range totals {
		total := d(raw)
		subtotal, tax := SplitInclusiveTax(total, d("18"))
		assert.True(t, subtotal.Add(tax).Equal(total), "decomposition of %s must add up", raw)
	}
}

func TestMoneyRoundsBoundaryFloats(t *testing.T) {
	assert.True(t, Money(20.0).Equal(d("20.00")))
	assert.True(t, Money(19.995).Equal(d("20.00")))
	assert.True(t, Money(0.1).Add(Money(0.2)).Equal(d("0.30")))
}
