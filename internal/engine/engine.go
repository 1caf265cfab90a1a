// Package engine implements the four transaction recipes over a live
// state snapshot. The engine holds no state of its own: every call
// receives the snapshot to mutate and returns a receipt by value.
//
// The engine never checks fund sufficiency and never rolls back. Its
// only precondition is that every referenced account exists, verified
// before any delta is applied so a bad reference cannot leave the
// snapshot half-mutated.
package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lavatech-dev/balance/internal/model"
)

// Engine computes VAT splits and posts transaction deltas.
type Engine struct {
	rate decimal.Decimal
}

// New creates an Engine with the given VAT rate.
func New(rate decimal.Decimal) *Engine {
	return &Engine{rate: rate}
}

// NewDefault creates an Engine at the default VAT rate.
func NewDefault() *Engine {
	return New(DefaultTaxRate)
}

type accountRef struct {
	cat  model.Category
	name string
}

// checkRefs fails fast if any referenced account is missing from the
// snapshot.
func checkRefs(st *model.State, refs []accountRef) error {
	for _, r := range refs {
		if !st.Has(r.cat, r.name) {
			return fmt.Errorf("%w: %s/%s", model.ErrAccountNotFound, r.cat, r.name)
		}
	}
	return nil
}

func newSummary(kind model.TransactionKind, total, subtotal, tax decimal.Decimal) model.Summary {
	return model.Summary{
		ID:       uuid.NewString(),
		Kind:     kind,
		Total:    total,
		Subtotal: subtotal,
		Tax:      tax,
	}
}

// CashPurchaseParams describes a fully paid purchase. Total is
// tax-inclusive.
type CashPurchaseParams struct {
	PayAccount   string
	DestCategory model.Category
	DestAccount  string
	Total        decimal.Decimal
}

// CashPurchase pays Total from a current-asset account, credits the
// destination with the tax-exclusive value, and accrues the tax as
// creditable VAT. The deltas are posted even without sufficient funds;
// HadFunds on the receipt reports what the balance allowed.
func (e *Engine) CashPurchase(st *model.State, p CashPurchaseParams) (model.CashPurchaseReceipt, error) {
	refs := []accountRef{
		{model.CategoryCurrentAssets, p.PayAccount},
		{p.DestCategory, p.DestAccount},
		{model.CategoryCurrentAssets, model.AccountVATCreditable},
	}
	if err := checkRefs(st, refs); err != nil {
		return model.CashPurchaseReceipt{}, err
	}

	subtotal, tax := e.SplitVAT(p.Total, true)
	hadFunds := st.Value(model.CategoryCurrentAssets, p.PayAccount).GreaterThanOrEqual(p.Total)

	_ = st.Add(model.CategoryCurrentAssets, p.PayAccount, p.Total.Neg())
	_ = st.Add(p.DestCategory, p.DestAccount, subtotal)
	_ = st.Add(model.CategoryCurrentAssets, model.AccountVATCreditable, tax)

	return model.CashPurchaseReceipt{
		Summary:      newSummary(model.KindCashPurchase, p.Total, subtotal, tax),
		PayAccount:   p.PayAccount,
		DestCategory: p.DestCategory,
		DestAccount:  p.DestAccount,
		HadFunds:     hadFunds,
	}, nil
}

// CreditLineItem is one concept of a credit purchase. Total is
// tax-inclusive.
type CreditLineItem struct {
	AssetCategory model.Category
	AssetAccount  string
	Total         decimal.Decimal
}

// CreditPurchaseParams describes a purchase financed by a liability
// account.
type CreditPurchaseParams struct {
	Lines             []CreditLineItem
	LiabilityCategory model.Category
	LiabilityAccount  string
}

// CreditPurchase credits each line's asset account with its tax-exclusive
// value, accrues the aggregate tax as pending VAT (not creditable until
// the debt is paid), and books the aggregate tax-inclusive total against
// the liability account.
func (e *Engine) CreditPurchase(st *model.State, p CreditPurchaseParams) (model.CreditPurchaseReceipt, error) {
	if len(p.Lines) == 0 {
		return model.CreditPurchaseReceipt{}, model.ErrEmptyLineItems
	}

	refs := []accountRef{
		{model.CategoryCurrentAssets, model.AccountVATPending},
		{p.LiabilityCategory, p.LiabilityAccount},
	}
	for _, line := range p.Lines {
		refs = append(refs, accountRef{line.AssetCategory, line.AssetAccount})
	}
	if err := checkRefs(st, refs); err != nil {
		return model.CreditPurchaseReceipt{}, err
	}

	totalCredit := decimal.Zero
	totalTax := decimal.Zero
	lines := make([]model.CreditLine, 0, len(p.Lines))
	for _, line := range p.Lines {
		subtotal, tax := e.SplitVAT(line.Total, true)
		_ = st.Add(line.AssetCategory, line.AssetAccount, subtotal)
		totalCredit = totalCredit.Add(line.Total)
		totalTax = totalTax.Add(tax)
		lines = append(lines, model.CreditLine{
			Category: line.AssetCategory,
			Account:  line.AssetAccount,
			Total:    line.Total,
			Subtotal: subtotal,
			Tax:      tax,
		})
	}

	_ = st.Add(model.CategoryCurrentAssets, model.AccountVATPending, totalTax)
	_ = st.Add(p.LiabilityCategory, p.LiabilityAccount, totalCredit)

	return model.CreditPurchaseReceipt{
		Summary:           newSummary(model.KindCreditPurchase, totalCredit, totalCredit.Sub(totalTax), totalTax),
		Lines:             lines,
		LiabilityCategory: p.LiabilityCategory,
		LiabilityAccount:  p.LiabilityAccount,
	}, nil
}

// CombinedPurchaseParams describes a purchase paid partly in cash and
// partly on credit. Total is tax-inclusive; AdvanceFraction is the cash
// share, used as given.
type CombinedPurchaseParams struct {
	PayAccount        string
	DestCategory      model.Category
	DestAccount       string
	LiabilityCategory model.Category
	LiabilityAccount  string
	Total             decimal.Decimal
	AdvanceFraction   decimal.Decimal
}

// CombinedPurchase splits Total into an advance and a debt, pays the
// advance in cash, books the debt against the liability, and credits the
// destination with the full item's tax-exclusive value. The advance and
// debt taxes accrue to creditable and pending VAT respectively. Because
// the VAT split is linear at a flat rate, the full subtotal equals the
// sum of the two partial subtotals.
func (e *Engine) CombinedPurchase(st *model.State, p CombinedPurchaseParams) (model.CombinedPurchaseReceipt, error) {
	refs := []accountRef{
		{model.CategoryCurrentAssets, p.PayAccount},
		{p.DestCategory, p.DestAccount},
		{model.CategoryCurrentAssets, model.AccountVATCreditable},
		{model.CategoryCurrentAssets, model.AccountVATPending},
		{p.LiabilityCategory, p.LiabilityAccount},
	}
	if err := checkRefs(st, refs); err != nil {
		return model.CombinedPurchaseReceipt{}, err
	}

	subtotal, tax := e.SplitVAT(p.Total, true)
	advance := p.Total.Mul(p.AdvanceFraction)
	debt := p.Total.Sub(advance)
	advSubtotal, advTax := e.SplitVAT(advance, true)
	debtSubtotal, debtTax := e.SplitVAT(debt, true)

	hadFunds := st.Value(model.CategoryCurrentAssets, p.PayAccount).GreaterThanOrEqual(advance)

	_ = st.Add(model.CategoryCurrentAssets, p.PayAccount, advance.Neg())
	_ = st.Add(p.DestCategory, p.DestAccount, subtotal)
	_ = st.Add(model.CategoryCurrentAssets, model.AccountVATCreditable, advTax)
	_ = st.Add(model.CategoryCurrentAssets, model.AccountVATPending, debtTax)
	_ = st.Add(p.LiabilityCategory, p.LiabilityAccount, debt)

	return model.CombinedPurchaseReceipt{
		Summary:           newSummary(model.KindCombinedPurchase, p.Total, subtotal, tax),
		PayAccount:        p.PayAccount,
		DestCategory:      p.DestCategory,
		DestAccount:       p.DestAccount,
		LiabilityCategory: p.LiabilityCategory,
		LiabilityAccount:  p.LiabilityAccount,
		AdvanceFraction:   p.AdvanceFraction,
		Advance:           advance,
		AdvanceSubtotal:   advSubtotal,
		AdvanceTax:        advTax,
		Debt:              debt,
		DebtSubtotal:      debtSubtotal,
		DebtTax:           debtTax,
		HadFunds:          hadFunds,
	}, nil
}

// CustomerAdvanceParams describes an advance received against a future
// sale. SaleTotal is tax-inclusive; AdvanceFraction is the share
// received now.
type CustomerAdvanceParams struct {
	ReceivingAccount string
	SaleTotal        decimal.Decimal
	AdvanceFraction  decimal.Decimal
}

// CustomerAdvance receives the advance into a current-asset account and
// books its tax-exclusive value and tax into the customer-advance and
// charged-VAT equity accounts. Those two accounts are the only
// create-on-first-use path in the engine: absent keys are created at
// zero and accumulated, never overwritten.
func (e *Engine) CustomerAdvance(st *model.State, p CustomerAdvanceParams) (model.CustomerAdvanceReceipt, error) {
	refs := []accountRef{
		{model.CategoryCurrentAssets, p.ReceivingAccount},
	}
	if err := checkRefs(st, refs); err != nil {
		return model.CustomerAdvanceReceipt{}, err
	}

	subtotal, tax := e.SplitVAT(p.SaleTotal, true)
	advance := p.SaleTotal.Mul(p.AdvanceFraction)
	advSubtotal, advTax := e.SplitVAT(advance, true)

	_ = st.Add(model.CategoryCurrentAssets, p.ReceivingAccount, advance)
	st.AddOrCreate(model.CategoryEquity, model.AccountCustomerAdvances, advSubtotal)
	st.AddOrCreate(model.CategoryEquity, model.AccountVATCharged, advTax)

	return model.CustomerAdvanceReceipt{
		Summary:          newSummary(model.KindCustomerAdvance, p.SaleTotal, subtotal, tax),
		ReceivingAccount: p.ReceivingAccount,
		AdvanceFraction:  p.AdvanceFraction,
		Advance:          advance,
		AdvanceSubtotal:  advSubtotal,
		AdvanceTax:       advTax,
	}, nil
}
