// Package session glues the catalog store and the transaction engine
// into the surface that front ends call. It owns the caller-side
// contract the engine deliberately skips: fund-sufficiency pre-checks
// with a force override, amount validation, and fraction bounds.
//
// A Session is explicitly constructed and explicitly passed; there is no
// process-wide instance. It is not safe for concurrent use. A caller
// exposing it to concurrent requests must serialize access around the
// whole Session, since no operation is atomic across its multi-account
// mutations.
package session

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lavatech-dev/balance/internal/catalog"
	"github.com/lavatech-dev/balance/internal/engine"
	"github.com/lavatech-dev/balance/internal/model"
)

// Session couples one catalog store with one transaction engine.
type Session struct {
	store  *catalog.Store
	engine *engine.Engine
}

// New creates a Session.
func New(store *catalog.Store, eng *engine.Engine) *Session {
	return &Session{store: store, engine: eng}
}

// NewDefault creates a Session over the default chart at the default VAT
// rate.
func NewDefault() *Session {
	return New(catalog.NewStore(catalog.DefaultChart()), engine.NewDefault())
}

// Store exposes the catalog store for catalog management and queries.
func (s *Session) Store() *catalog.Store {
	return s.store
}

// Engine exposes the transaction engine, mainly for VAT previews.
func (s *Session) Engine() *engine.Engine {
	return s.engine
}

// Totals derives the balance-sheet totals from the live state.
func (s *Session) Totals() model.Totals {
	return s.store.Totals()
}

// Reset restores the live state from the catalog template.
func (s *Session) Reset() {
	s.store.Reset()
}

// CheckFunds reports whether a current-asset account covers an amount,
// and the shortfall when it does not. Unknown accounts read as zero so a
// UI validation never fails hard.
func (s *Session) CheckFunds(account string, amount decimal.Decimal) (bool, decimal.Decimal) {
	funds := s.store.Value(model.CategoryCurrentAssets, account)
	if funds.GreaterThanOrEqual(amount) {
		return true, decimal.Zero
	}
	return false, amount.Sub(funds)
}

func requirePositive(amount decimal.Decimal, what string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: %s must be greater than zero", model.ErrInvalidAmount, what)
	}
	return nil
}

func requireFraction(f decimal.Decimal) error {
	if f.LessThan(decimal.Zero) || f.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: advance fraction %s outside [0, 1]", model.ErrInvalidAmount, f)
	}
	return nil
}

// CashPurchase validates funds and posts a cash purchase. With force the
// fund check is skipped and the pay account may go negative.
func (s *Session) CashPurchase(p engine.CashPurchaseParams, force bool) (model.CashPurchaseReceipt, error) {
	if err := requirePositive(p.Total, "total"); err != nil {
		return model.CashPurchaseReceipt{}, err
	}
	if !force {
		if ok, missing := s.CheckFunds(p.PayAccount, p.Total); !ok {
			return model.CashPurchaseReceipt{}, fmt.Errorf("%w: %s short by %s",
				model.ErrInsufficientFunds, p.PayAccount, missing.StringFixed(2))
		}
	}
	return s.engine.CashPurchase(s.store.Current(), p)
}

// CreditPurchase validates the line items and posts a credit purchase.
func (s *Session) CreditPurchase(p engine.CreditPurchaseParams) (model.CreditPurchaseReceipt, error) {
	if len(p.Lines) == 0 {
		return model.CreditPurchaseReceipt{}, model.ErrEmptyLineItems
	}
	for _, line := range p.Lines {
		if err := requirePositive(line.Total, "line total"); err != nil {
			return model.CreditPurchaseReceipt{}, err
		}
	}
	return s.engine.CreditPurchase(s.store.Current(), p)
}

// CombinedPurchase validates the fraction and the funds for the advance
// portion, then posts a combined purchase. With force the fund check is
// skipped.
func (s *Session) CombinedPurchase(p engine.CombinedPurchaseParams, force bool) (model.CombinedPurchaseReceipt, error) {
	if err := requirePositive(p.Total, "total"); err != nil {
		return model.CombinedPurchaseReceipt{}, err
	}
	if err := requireFraction(p.AdvanceFraction); err != nil {
		return model.CombinedPurchaseReceipt{}, err
	}
	if !force {
		advance := p.Total.Mul(p.AdvanceFraction)
		if ok, missing := s.CheckFunds(p.PayAccount, advance); !ok {
			return model.CombinedPurchaseReceipt{}, fmt.Errorf("%w: advance from %s short by %s",
				model.ErrInsufficientFunds, p.PayAccount, missing.StringFixed(2))
		}
	}
	return s.engine.CombinedPurchase(s.store.Current(), p)
}

// CustomerAdvance validates the fraction and posts a customer advance.
// Receiving money needs no fund check.
func (s *Session) CustomerAdvance(p engine.CustomerAdvanceParams) (model.CustomerAdvanceReceipt, error) {
	if err := requirePositive(p.SaleTotal, "sale total"); err != nil {
		return model.CustomerAdvanceReceipt{}, err
	}
	if err := requireFraction(p.AdvanceFraction); err != nil {
		return model.CustomerAdvanceReceipt{}, err
	}
	return s.engine.CustomerAdvance(s.store.Current(), p)
}
