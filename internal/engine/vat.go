package engine

import "github.com/shopspring/decimal"

// DefaultTaxRate is the flat VAT rate.
var DefaultTaxRate = decimal.NewFromFloat(0.16)

// SplitVAT decomposes an amount into subtotal and tax at the engine's
// rate. When includesTax is true the amount is treated as tax-inclusive;
// otherwise the tax is charged on top of it. The built-in transactions
// always pass tax-inclusive amounts.
func (e *Engine) SplitVAT(amount decimal.Decimal, includesTax bool) (subtotal, tax decimal.Decimal) {
	if includesTax {
		subtotal = amount.Div(decimal.NewFromInt(1).Add(e.rate))
		tax = amount.Sub(subtotal)
		return subtotal, tax
	}
	return amount, amount.Mul(e.rate)
}

// Rate returns the engine's VAT rate.
func (e *Engine) Rate() decimal.Decimal {
	return e.rate
}
