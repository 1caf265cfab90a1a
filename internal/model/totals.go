package model

import "github.com/shopspring/decimal"

// BalanceEpsilon is the tolerance for the accounting identity check.
// VAT division at a flat rate is inexact at fixed precision, so equality
// is within a hundredth of a monetary unit.
var BalanceEpsilon = decimal.NewFromFloat(0.01)

// Totals is the derived balance-sheet summary. It is computed on demand
// and never stored.
type Totals struct {
	CurrentAssets          decimal.Decimal `json:"current_assets"`
	NoncurrentAssets       decimal.Decimal `json:"noncurrent_assets"`
	TotalAssets            decimal.Decimal `json:"total_assets"`
	LongTermLiabilities    decimal.Decimal `json:"longterm_liabilities"`
	ShortTermLiabilities   decimal.Decimal `json:"shortterm_liabilities"`
	Equity                 decimal.Decimal `json:"equity"`
	TotalLiabilitiesEquity decimal.Decimal `json:"total_liabilities_equity"`
	Difference             decimal.Decimal `json:"difference"`
	Balanced               bool            `json:"balanced"`
}

// ComputeTotals derives Totals from a state snapshot. Pure function; the
// snapshot is not modified.
func ComputeTotals(s *State) Totals {
	t := Totals{
		CurrentAssets:        s.CategoryTotal(CategoryCurrentAssets),
		NoncurrentAssets:     s.CategoryTotal(CategoryNoncurrentAssets),
		LongTermLiabilities:  s.CategoryTotal(CategoryLongTermLiabilities),
		ShortTermLiabilities: s.CategoryTotal(CategoryShortTermLiabilities),
		Equity:               s.CategoryTotal(CategoryEquity),
	}
	t.TotalAssets = t.CurrentAssets.Add(t.NoncurrentAssets)
	t.TotalLiabilitiesEquity = t.LongTermLiabilities.Add(t.ShortTermLiabilities).Add(t.Equity)
	t.Difference = t.TotalAssets.Sub(t.TotalLiabilitiesEquity).Abs()
	t.Balanced = t.Difference.LessThanOrEqual(BalanceEpsilon)
	return t
}
