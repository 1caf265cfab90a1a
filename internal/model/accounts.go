package model

// Well-known account names. Account names are stored trimmed and
// upper-cased; these constants are already in normalized form.
const (
	AccountCash         = "CAJA"
	AccountBank         = "BANCO"
	AccountShareCapital = "CAPITAL SOCIAL"

	// VAT already creditable against tax owed (paid-in-cash purchases).
	AccountVATCreditable = "IVA ACREDITABLE"
	// VAT pending creditability until the credit is paid.
	AccountVATPending = "IVA POR ACREDITAR"
	// Customer advances not yet invoiced, carried in equity.
	AccountCustomerAdvances = "ANTICIPO CLIENTES"
	// VAT collected on an advance, owed once invoiced.
	AccountVATCharged = "IVA TRASLADO"
)

// ProtectedAccounts can never be deleted from the catalog, regardless of
// which category the delete names.
var ProtectedAccounts = []string{AccountCash, AccountBank, AccountShareCapital}

// IsProtected reports whether a normalized account name is protected.
func IsProtected(name string) bool {
	for _, p := range ProtectedAccounts {
		if name == p {
			return true
		}
	}
	return false
}
