package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/lavatech-dev/balance/internal/model"
)

// DefaultChart returns the company's default account catalog with its
// opening balances.
func DefaultChart() *model.State {
	chart := model.NewState()

	set := func(cat model.Category, name string, value int64) {
		chart.Set(cat, name, decimal.NewFromInt(value))
	}

	set(model.CategoryCurrentAssets, model.AccountCash, 50_000)
	set(model.CategoryCurrentAssets, model.AccountBank, 2_000_000)
	set(model.CategoryCurrentAssets, "INVENTARIO", 800_000)
	set(model.CategoryCurrentAssets, "PAPELERIA", 50_000)
	set(model.CategoryCurrentAssets, "RENTA", 130_000)
	set(model.CategoryCurrentAssets, model.AccountVATCreditable, 0)
	set(model.CategoryCurrentAssets, model.AccountVATPending, 0)

	set(model.CategoryNoncurrentAssets, "TERRENOS", 4_000_000)
	set(model.CategoryNoncurrentAssets, "EDIFICIOS", 12_000_000)
	set(model.CategoryNoncurrentAssets, "MOBILIARIA Y EQUIPO", 700_000)
	set(model.CategoryNoncurrentAssets, "EQ. COMPUTO", 600_000)
	set(model.CategoryNoncurrentAssets, "EQ. ENTREGA", 1_500_000)
	set(model.CategoryNoncurrentAssets, "GAST. CONSTITUCION", 120_000)
	set(model.CategoryNoncurrentAssets, "GAST. INST", 300_000)

	set(model.CategoryLongTermLiabilities, "HIPOTECAS", 0)
	set(model.CategoryLongTermLiabilities, "DOCUMENTOS POR PAGAR LP", 0)

	set(model.CategoryShortTermLiabilities, "ACREEDORES", 0)
	set(model.CategoryShortTermLiabilities, "PROVEEDORES", 0)
	set(model.CategoryShortTermLiabilities, "DOCUMENTOS POR PAGAR CP", 0)

	set(model.CategoryEquity, model.AccountShareCapital, 22_250_000)
	set(model.CategoryEquity, model.AccountCustomerAdvances, 0)
	set(model.CategoryEquity, model.AccountVATCharged, 0)
	set(model.CategoryEquity, "GANADO", 0)
	set(model.CategoryEquity, "UTILIDAD", 0)
	set(model.CategoryEquity, "PERDIDA", 0)

	return chart
}
