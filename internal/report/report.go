// Package report renders the balance sheet for human and CSV output.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/lavatech-dev/balance/internal/model"
)

// WriteBalanceSheet writes a plain-text balance sheet: the asset
// categories, the liability and equity categories, the derived totals,
// and the identity check line.
func WriteBalanceSheet(w io.Writer, company string, st *model.State, totals model.Totals) error {
	if company != "" {
		fmt.Fprintf(w, "%s\n", company)
	}
	fmt.Fprintln(w, "BALANCE GENERAL")
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, cat := range model.AllCategories {
		fmt.Fprintf(tw, "%s\t\n", model.CategoryLabel(cat))
		for _, name := range st.Names(cat) {
			fmt.Fprintf(tw, "  %s\t%s\n", name, st.Value(cat, name).StringFixed(2))
		}
		fmt.Fprintf(tw, "\t\n")
	}

	fmt.Fprintf(tw, "TOTAL ACTIVO\t%s\n", totals.TotalAssets.StringFixed(2))
	fmt.Fprintf(tw, "TOTAL PASIVO + CAPITAL\t%s\n", totals.TotalLiabilitiesEquity.StringFixed(2))
	fmt.Fprintf(tw, "DIFERENCIA\t%s\n", totals.Difference.StringFixed(2))
	if err := tw.Flush(); err != nil {
		return err
	}

	if totals.Balanced {
		fmt.Fprintln(w, "\nEl balance cuadra.")
	} else {
		fmt.Fprintln(w, "\nEl balance NO cuadra.")
	}
	return nil
}
