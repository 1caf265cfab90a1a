package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestStateSetPreservesInsertionOrder(t *testing.T) {
	st := NewState()
	st.Set(CategoryCurrentAssets, "CAJA", dec("100"))
	st.Set(CategoryCurrentAssets, "BANCO", dec("200"))
	st.Set(CategoryCurrentAssets, "INVENTARIO", dec("300"))

	assert.Equal(t, []string{"CAJA", "BANCO", "INVENTARIO"}, st.Names(CategoryCurrentAssets))

	// Overwriting must not duplicate or reorder.
	st.Set(CategoryCurrentAssets, "BANCO", dec("250"))
	assert.Equal(t, []string{"CAJA", "BANCO", "INVENTARIO"}, st.Names(CategoryCurrentAssets))
	assert.True(t, st.Value(CategoryCurrentAssets, "BANCO").Equal(dec("250")))
}

func TestStateAddUnknownAccount(t *testing.T) {
	st := NewState()
	err := st.Add(CategoryEquity, "NADA", dec("1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestStateAddOrCreate(t *testing.T) {
	st := NewState()

	st.AddOrCreate(CategoryEquity, "ANTICIPO CLIENTES", dec("10"))
	assert.True(t, st.Value(CategoryEquity, "ANTICIPO CLIENTES").Equal(dec("10")))

	// Accumulates, never overwrites.
	st.AddOrCreate(CategoryEquity, "ANTICIPO CLIENTES", dec("5"))
	assert.True(t, st.Value(CategoryEquity, "ANTICIPO CLIENTES").Equal(dec("15")))
}

func TestStateDeleteRemovesFromOrder(t *testing.T) {
	st := NewState()
	st.Set(CategoryEquity, "A", dec("1"))
	st.Set(CategoryEquity, "B", dec("2"))
	st.Set(CategoryEquity, "C", dec("3"))

	st.Delete(CategoryEquity, "B")
	assert.Equal(t, []string{"A", "C"}, st.Names(CategoryEquity))

	// Deleting an absent account is a no-op.
	st.Delete(CategoryEquity, "B")
	assert.Equal(t, []string{"A", "C"}, st.Names(CategoryEquity))
}

func TestStateCloneIsIndependent(t *testing.T) {
	st := NewState()
	st.Set(CategoryCurrentAssets, "CAJA", dec("100"))

	clone := st.Clone()
	require.True(t, st.Equal(clone))

	require.NoError(t, clone.Add(CategoryCurrentAssets, "CAJA", dec("-40")))
	assert.True(t, st.Value(CategoryCurrentAssets, "CAJA").Equal(dec("100")))
	assert.True(t, clone.Value(CategoryCurrentAssets, "CAJA").Equal(dec("60")))
	assert.False(t, st.Equal(clone))
}

func TestComputeTotals(t *testing.T) {
	st := NewState()
	st.Set(CategoryCurrentAssets, "CAJA", dec("100"))
	st.Set(CategoryNoncurrentAssets, "TERRENOS", dec("900"))
	st.Set(CategoryLongTermLiabilities, "HIPOTECAS", dec("300"))
	st.Set(CategoryShortTermLiabilities, "PROVEEDORES", dec("200"))
	st.Set(CategoryEquity, "CAPITAL SOCIAL", dec("500"))

	totals := ComputeTotals(st)
	assert.True(t, totals.TotalAssets.Equal(dec("1000")))
	assert.True(t, totals.TotalLiabilitiesEquity.Equal(dec("1000")))
	assert.True(t, totals.Difference.IsZero())
	assert.True(t, totals.Balanced)
}

func TestComputeTotalsImbalance(t *testing.T) {
	st := NewState()
	st.Set(CategoryCurrentAssets, "CAJA", dec("100"))
	st.Set(CategoryEquity, "CAPITAL SOCIAL", dec("90"))

	totals := ComputeTotals(st)
	assert.True(t, totals.Difference.Equal(dec("10")))
	assert.False(t, totals.Balanced)
}

func TestParseCategory(t *testing.T) {
	cat, err := ParseCategory("CURRENT_ASSETS")
	require.NoError(t, err)
	assert.Equal(t, CategoryCurrentAssets, cat)

	_, err = ParseCategory("REVENUE")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestIsProtected(t *testing.T) {
	assert.True(t, IsProtected("CAJA"))
	assert.True(t, IsProtected("BANCO"))
	assert.True(t, IsProtected("CAPITAL SOCIAL"))
	assert.False(t, IsProtected("INVENTARIO"))
}
