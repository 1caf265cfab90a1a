package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionKind tags the four transaction recipes.
type TransactionKind string

const (
	KindCashPurchase     TransactionKind = "CASH_PURCHASE"
	KindCreditPurchase   TransactionKind = "CREDIT_PURCHASE"
	KindCombinedPurchase TransactionKind = "COMBINED_PURCHASE"
	KindCustomerAdvance  TransactionKind = "CUSTOMER_ADVANCE"
)

// Summary is the common prefix every receipt carries: the transaction
// kind and the tax split of its headline amount.
type Summary struct {
	ID       string          `json:"id"`
	Kind     TransactionKind `json:"kind"`
	Total    decimal.Decimal `json:"total"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
}

// Common returns the shared receipt prefix.
func (s Summary) Common() Summary { return s }

// Receipt describes what a transaction did. Receipts are created fresh
// per call, returned by value, and never stored by the engine.
type Receipt interface {
	Common() Summary
	Description() string
}

// CashPurchaseReceipt records a fully paid purchase.
type CashPurchaseReceipt struct {
	Summary
	PayAccount   string   `json:"pay_account"`
	DestCategory Category `json:"dest_category"`
	DestAccount  string   `json:"dest_account"`
	// HadFunds is informational: the deltas are posted either way, and
	// the pay account may go negative when the caller forces through an
	// insufficient balance.
	HadFunds bool `json:"had_funds"`
}

func (r CashPurchaseReceipt) Description() string {
	return fmt.Sprintf("Se pagó $%s desde %s para aumentar %s",
		r.Total.StringFixed(2), r.PayAccount, r.DestAccount)
}

// CreditLine is one concept inside a credit purchase.
type CreditLine struct {
	Category Category        `json:"category"`
	Account  string          `json:"account"`
	Total    decimal.Decimal `json:"total"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
}

// CreditPurchaseReceipt records a purchase financed entirely by a
// liability account. The Summary totals aggregate all lines.
type CreditPurchaseReceipt struct {
	Summary
	Lines             []CreditLine `json:"lines"`
	LiabilityCategory Category     `json:"liability_category"`
	LiabilityAccount  string       `json:"liability_account"`
}

func (r CreditPurchaseReceipt) Description() string {
	return fmt.Sprintf("Pasivo registrado en: %s", r.LiabilityAccount)
}

// CombinedPurchaseReceipt records a purchase split between a cash
// advance and a liability for the remainder.
type CombinedPurchaseReceipt struct {
	Summary
	PayAccount        string          `json:"pay_account"`
	DestCategory      Category        `json:"dest_category"`
	DestAccount       string          `json:"dest_account"`
	LiabilityCategory Category        `json:"liability_category"`
	LiabilityAccount  string          `json:"liability_account"`
	AdvanceFraction   decimal.Decimal `json:"advance_fraction"`
	Advance           decimal.Decimal `json:"advance"`
	AdvanceSubtotal   decimal.Decimal `json:"advance_subtotal"`
	AdvanceTax        decimal.Decimal `json:"advance_tax"`
	Debt              decimal.Decimal `json:"debt"`
	DebtSubtotal      decimal.Decimal `json:"debt_subtotal"`
	DebtTax           decimal.Decimal `json:"debt_tax"`
	HadFunds          bool            `json:"had_funds"`
}

func (r CombinedPurchaseReceipt) Description() string {
	return fmt.Sprintf("Pago: %s → Destino: %s → Crédito: %s",
		r.PayAccount, r.DestAccount, r.LiabilityAccount)
}

// CustomerAdvanceReceipt records an advance received from a customer
// against a future sale. The Summary totals describe the full sale; the
// Advance fields describe the portion actually received.
type CustomerAdvanceReceipt struct {
	Summary
	ReceivingAccount string          `json:"receiving_account"`
	AdvanceFraction  decimal.Decimal `json:"advance_fraction"`
	Advance          decimal.Decimal `json:"advance"`
	AdvanceSubtotal  decimal.Decimal `json:"advance_subtotal"`
	AdvanceTax       decimal.Decimal `json:"advance_tax"`
}

func (r CustomerAdvanceReceipt) Description() string {
	return fmt.Sprintf("Anticipo recibido en: %s", r.ReceivingAccount)
}
