package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/lavatech-dev/balance/internal/model"
)

const (
	numFields   = 3
	colCategory = 0
	colAccount  = 1
	colValue    = 2
)

// WriteBalanceCSV writes the balance sheet as category,account,value
// rows followed by the derived totals.
func WriteBalanceCSV(w io.Writer, st *model.State, totals model.Totals) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"category", "account", "value"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, cat := range model.AllCategories {
		for _, name := range st.Names(cat) {
			row := make([]string, numFields)
			row[colCategory] = string(cat)
			row[colAccount] = name
			row[colValue] = st.Value(cat, name).StringFixed(2)
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing row for %s/%s: %w", cat, name, err)
			}
		}
	}

	totalRows := [][]string{
		{"TOTALS", "TOTAL_ASSETS", totals.TotalAssets.StringFixed(2)},
		{"TOTALS", "TOTAL_LIABILITIES_EQUITY", totals.TotalLiabilitiesEquity.StringFixed(2)},
		{"TOTALS", "DIFFERENCE", totals.Difference.StringFixed(2)},
	}
	for _, row := range totalRows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing totals row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
