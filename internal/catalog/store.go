package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lavatech-dev/balance/internal/model"
)

// Store owns the account catalog and the two snapshots derived from it:
// the live state mutated by transactions and the initial state that
// mirrors the catalog. The three are kept structurally aligned by the
// catalog operations and related only by deep copies.
type Store struct {
	catalog *model.State
	current *model.State
	initial *model.State
}

// NewStore builds a Store from a catalog template. The template is
// deep-copied into all three mappings, so the caller keeps ownership of
// its argument.
func NewStore(chart *model.State) *Store {
	return &Store{
		catalog: chart.Clone(),
		current: chart.Clone(),
		initial: chart.Clone(),
	}
}

// Normalize converts an account name to its stored form.
func Normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Add inserts a new account into the catalog and both snapshots.
// Uniqueness is per category, checked after normalization.
func (s *Store) Add(cat model.Category, name string, value decimal.Decimal) error {
	name = Normalize(name)
	if name == "" {
		return fmt.Errorf("%w: empty account name", model.ErrInvalidAmount)
	}
	if s.catalog.Has(cat, name) {
		return fmt.Errorf("%w: %s/%s", model.ErrDuplicateAccount, cat, name)
	}
	s.catalog.Set(cat, name, value)
	s.current.Set(cat, name, value)
	s.initial.Set(cat, name, value)
	return nil
}

// Modify overwrites an account's template value in the catalog and the
// initial snapshot. The live state is untouched: catalog edits are
// configuration, not transactions.
func (s *Store) Modify(cat model.Category, name string, value decimal.Decimal) error {
	name = Normalize(name)
	if !s.catalog.Has(cat, name) {
		return fmt.Errorf("%w: %s/%s", model.ErrAccountNotFound, cat, name)
	}
	s.catalog.Set(cat, name, value)
	s.initial.Set(cat, name, value)
	return nil
}

// Delete removes an account from the catalog and both snapshots.
// Protected accounts are never deletable, regardless of category.
// Deleting an absent account is a no-op.
func (s *Store) Delete(cat model.Category, name string) error {
	name = Normalize(name)
	if model.IsProtected(name) {
		return fmt.Errorf("%w: %s", model.ErrProtectedAccount, name)
	}
	s.catalog.Delete(cat, name)
	s.current.Delete(cat, name)
	s.initial.Delete(cat, name)
	return nil
}

// List returns the catalog's account names for a category in insertion
// order.
func (s *Store) List(cat model.Category) []string {
	return s.catalog.Names(cat)
}

// Value returns the live balance of an account, or zero if it does not
// exist. UI-side fund checks rely on the zero default instead of an
// error.
func (s *Store) Value(cat model.Category, name string) decimal.Decimal {
	return s.current.Value(cat, Normalize(name))
}

// CatalogValue returns the template value of an account, or zero if
// absent.
func (s *Store) CatalogValue(cat model.Category, name string) decimal.Decimal {
	return s.catalog.Value(cat, Normalize(name))
}

// Reset discards the live state and replaces it with a fresh copy of the
// catalog, the single source of truth for template values.
func (s *Store) Reset() {
	s.current = s.catalog.Clone()
}

// Totals derives the balance-sheet totals from the live state.
func (s *Store) Totals() model.Totals {
	return model.ComputeTotals(s.current)
}

// Current returns the live state. The transaction engine mutates it in
// place; any other caller must treat it as read-only.
func (s *Store) Current() *model.State {
	return s.current
}

// CatalogSnapshot returns a deep copy of the catalog template.
func (s *Store) CatalogSnapshot() *model.State {
	return s.catalog.Clone()
}
