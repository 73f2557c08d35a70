package helper

import "github.com/shopspring/decimal"

// All money in the system is decimal with 2 fractional digits. Rounding is
// half-up via decimal.Round; float64 only exists at the request boundary.

func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Money converts a request-boundary float into a 2-place decimal.
func Money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// SplitInclusiveTax decomposes a tax-inclusive total into net subtotal and
// tax using the inverse calculation: captured prices are IGV-inclusive menu
// prices, so tax is carved out, never added on top.
//
//	subtotal = round(total / (1 + rate/100), 2)
//	tax      = total - subtotal
func SplitInclusiveTax(total decimal.Decimal, ratePct decimal.Decimal) (subtotal, tax decimal.Decimal) {
	if !total.GreaterThan(decimal.Zero) {
		return decimal.Zero, decimal.Zero
	}

	divisor := decimal.NewFromInt(1).Add(ratePct.Div(decimal.NewFromInt(100)))
	subtotal = total.Div(divisor).Round(2)
	tax = total.Sub(subtotal).Round(2)
	return subtotal, tax
}
