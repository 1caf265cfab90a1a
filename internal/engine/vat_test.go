package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSplitVATInclusive(t *testing.T) {
	e := NewDefault()

	subtotal, tax := e.SplitVAT(dec("116"), true)
	assert.True(t, subtotal.Equal(dec("100")), "subtotal = %s", subtotal)
	assert.True(t, tax.Equal(dec("16")), "tax = %s", tax)
}

func TestSplitVATExclusive(t *testing.T) {
	e := NewDefault()

	subtotal, tax := e.SplitVAT(dec("100"), false)
	assert.True(t, subtotal.Equal(dec("100")))
	assert.True(t, tax.Equal(dec("16")))
}

func TestSplitVATInverse(t *testing.T) {
	e := NewDefault()
	tolerance := dec("0.0000000001")

	for _, amount := range []string{"1", "116", "339990", "500000", "0.29", "123456.78"} {
		// Exclusive split then re-including the tax must round-trip.
		subtotal, tax := e.SplitVAT(dec(amount), false)
		withTax := subtotal.Add(tax)
		sub2, tax2 := e.SplitVAT(withTax, true)

		assert.True(t, sub2.Sub(dec(amount)).Abs().LessThanOrEqual(tolerance),
			"amount %s: got subtotal %s", amount, sub2)
		assert.True(t, sub2.Add(tax2).Sub(withTax).Abs().LessThanOrEqual(tolerance),
			"amount %s: split does not sum back", amount)
	}
}

func TestSplitVATCustomRate(t *testing.T) {
	e := New(dec("0.08"))

	subtotal, tax := e.SplitVAT(dec("108"), true)
	assert.True(t, subtotal.Equal(dec("100")))
	assert.True(t, tax.Equal(dec("8")))
}
