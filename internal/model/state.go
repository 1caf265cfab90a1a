package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// State maps each category to its account balances. Account iteration
// order within a category is insertion order, which the catalog relies on
// to populate selection lists.
//
// State is a value store with no transaction semantics; snapshots are
// related only by explicit Clone calls, never by shared storage.
type State struct {
	values map[Category]map[string]decimal.Decimal
	order  map[Category][]string
}

// NewState returns an empty State with all five categories present.
func NewState() *State {
	s := &State{
		values: make(map[Category]map[string]decimal.Decimal, len(AllCategories)),
		order:  make(map[Category][]string, len(AllCategories)),
	}
	for _, c := range AllCategories {
		s.values[c] = make(map[string]decimal.Decimal)
	}
	return s
}

// Set inserts or overwrites an account value. First-time inserts append
// to the category's iteration order.
func (s *State) Set(cat Category, name string, value decimal.Decimal) {
	if _, ok := s.values[cat][name]; !ok {
		s.order[cat] = append(s.order[cat], name)
	}
	s.values[cat][name] = value
}

// Get returns an account value and whether the account exists.
func (s *State) Get(cat Category, name string) (decimal.Decimal, bool) {
	v, ok := s.values[cat][name]
	return v, ok
}

// Has reports whether an account exists in a category.
func (s *State) Has(cat Category, name string) bool {
	_, ok := s.values[cat][name]
	return ok
}

// Value returns an account value, or zero if the account is absent.
func (s *State) Value(cat Category, name string) decimal.Decimal {
	return s.values[cat][name]
}

// Add applies a delta to an existing account.
func (s *State) Add(cat Category, name string, delta decimal.Decimal) error {
	v, ok := s.values[cat][name]
	if !ok {
		return fmt.Errorf("%w: %s/%s", ErrAccountNotFound, cat, name)
	}
	s.values[cat][name] = v.Add(delta)
	return nil
}

// AddOrCreate applies a delta to an account, creating it with a zero
// balance first if absent.
func (s *State) AddOrCreate(cat Category, name string, delta decimal.Decimal) {
	if _, ok := s.values[cat][name]; !ok {
		s.Set(cat, name, decimal.Zero)
	}
	s.values[cat][name] = s.values[cat][name].Add(delta)
}

// Delete removes an account if present. Removing an absent account is a
// no-op.
func (s *State) Delete(cat Category, name string) {
	if _, ok := s.values[cat][name]; !ok {
		return
	}
	delete(s.values[cat], name)
	names := s.order[cat]
	for i, n := range names {
		if n == name {
			s.order[cat] = append(names[:i], names[i+1:]...)
			break
		}
	}
}

// Names returns the account names of a category in insertion order.
func (s *State) Names(cat Category) []string {
	names := make([]string, len(s.order[cat]))
	copy(names, s.order[cat])
	return names
}

// CategoryTotal sums all account values in a category.
func (s *State) CategoryTotal(cat Category) decimal.Decimal {
	total := decimal.Zero
	for _, v := range s.values[cat] {
		total = total.Add(v)
	}
	return total
}

// Clone returns a deep copy. Mutating the copy never affects the
// original.
func (s *State) Clone() *State {
	c := NewState()
	for _, cat := range AllCategories {
		for _, name := range s.order[cat] {
			c.Set(cat, name, s.values[cat][name])
		}
	}
	return c
}

// Equal reports per-account, per-category value equality. Iteration
// order is not part of equality.
func (s *State) Equal(o *State) bool {
	for _, cat := range AllCategories {
		if len(s.values[cat]) != len(o.values[cat]) {
			return false
		}
		for name, v := range s.values[cat] {
			ov, ok := o.values[cat][name]
			if !ok || !v.Equal(ov) {
				return false
			}
		}
	}
	return true
}
