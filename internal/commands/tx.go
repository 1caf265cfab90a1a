package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lavatech-dev/balance/internal/engine"
	"github.com/lavatech-dev/balance/internal/model"
	"github.com/lavatech-dev/balance/internal/report"
	"github.com/lavatech-dev/balance/internal/session"
)

// The tx commands post a single transaction against the configured
// catalog and print the receipt and the resulting balance sheet.
func newTxCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Post a transaction and show the resulting balance",
	}

	cmd.AddCommand(newTxCashCommand(configPath))
	cmd.AddCommand(newTxCreditCommand(configPath))
	cmd.AddCommand(newTxCombinedCommand(configPath))
	cmd.AddCommand(newTxAdvanceCommand(configPath))

	return cmd
}

func printOutcome(w io.Writer, company string, sess *session.Session, receipt model.Receipt) error {
	sum := receipt.Common()
	fmt.Fprintf(w, "%s\n", receipt.Description())
	fmt.Fprintf(w, "Subtotal: %s  IVA: %s  Total: %s\n\n",
		sum.Subtotal.StringFixed(2), sum.Tax.StringFixed(2), sum.Total.StringFixed(2))
	return report.WriteBalanceSheet(w, company, sess.Store().Current(), sess.Totals())
}

func newTxCashCommand(configPath *string) *cobra.Command {
	var (
		pay     string
		destCat string
		dest    string
		total   string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "cash",
		Short: "Post a cash purchase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, cfg, err := loadSession(*configPath)
			if err != nil {
				return err
			}
			cat, err := model.ParseCategory(destCat)
			if err != nil {
				return err
			}
			amount, err := parseAmount(total)
			if err != nil {
				return err
			}

			receipt, err := sess.CashPurchase(engine.CashPurchaseParams{
				PayAccount:   pay,
				DestCategory: cat,
				DestAccount:  dest,
				Total:        amount,
			}, force)
			if err != nil {
				return err
			}
			return printOutcome(cmd.OutOrStdout(), cfg.Company.Name, sess, receipt)
		},
	}

	cmd.Flags().StringVar(&pay, "pay", model.AccountCash, "current-asset account to pay from")
	cmd.Flags().StringVar(&destCat, "dest-category", "", "destination category (required)")
	cmd.Flags().StringVar(&dest, "dest", "", "destination account (required)")
	cmd.Flags().StringVar(&total, "total", "", "tax-inclusive total (required)")
	cmd.Flags().BoolVar(&force, "force", false, "post even with insufficient funds")
	_ = cmd.MarkFlagRequired("dest-category")
	_ = cmd.MarkFlagRequired("dest")
	_ = cmd.MarkFlagRequired("total")

	return cmd
}

// parseCreditLine parses a CATEGORY:ACCOUNT:TOTAL line item.
func parseCreditLine(s string) (engine.CreditLineItem, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return engine.CreditLineItem{}, fmt.Errorf("invalid line %q, want CATEGORY:ACCOUNT:TOTAL", s)
	}
	cat, err := model.ParseCategory(parts[0])
	if err != nil {
		return engine.CreditLineItem{}, err
	}
	total, err := parseAmount(parts[2])
	if err != nil {
		return engine.CreditLineItem{}, err
	}
	return engine.CreditLineItem{AssetCategory: cat, AssetAccount: parts[1], Total: total}, nil
}

func newTxCreditCommand(configPath *string) *cobra.Command {
	var (
		lines   []string
		liabCat string
		liab    string
	)

	cmd := &cobra.Command{
		Use:   "credit",
		Short: "Post a credit purchase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, cfg, err := loadSession(*configPath)
			if err != nil {
				return err
			}
			cat, err := model.ParseCategory(liabCat)
			if err != nil {
				return err
			}

			items := make([]engine.CreditLineItem, 0, len(lines))
			for _, l := range lines {
				item, err := parseCreditLine(l)
				if err != nil {
					return err
				}
				items = append(items, item)
			}

			receipt, err := sess.CreditPurchase(engine.CreditPurchaseParams{
				Lines:             items,
				LiabilityCategory: cat,
				LiabilityAccount:  liab,
			})
			if err != nil {
				return err
			}
			return printOutcome(cmd.OutOrStdout(), cfg.Company.Name, sess, receipt)
		},
	}

	cmd.Flags().StringArrayVar(&lines, "line", nil, "line item CATEGORY:ACCOUNT:TOTAL (repeatable, required)")
	cmd.Flags().StringVar(&liabCat, "liability-category", string(model.CategoryShortTermLiabilities), "liability category")
	cmd.Flags().StringVar(&liab, "liability", "", "liability account (required)")
	_ = cmd.MarkFlagRequired("line")
	_ = cmd.MarkFlagRequired("liability")

	return cmd
}

func newTxCombinedCommand(configPath *string) *cobra.Command {
	var (
		pay      string
		destCat  string
		dest     string
		liabCat  string
		liab     string
		total    string
		fraction string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "combined",
		Short: "Post a combined purchase (cash advance + credit)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, cfg, err := loadSession(*configPath)
			if err != nil {
				return err
			}
			dCat, err := model.ParseCategory(destCat)
			if err != nil {
				return err
			}
			lCat, err := model.ParseCategory(liabCat)
			if err != nil {
				return err
			}
			amount, err := parseAmount(total)
			if err != nil {
				return err
			}
			frac, err := parseAmount(fraction)
			if err != nil {
				return err
			}

			receipt, err := sess.CombinedPurchase(engine.CombinedPurchaseParams{
				PayAccount:        pay,
				DestCategory:      dCat,
				DestAccount:       dest,
				LiabilityCategory: lCat,
				LiabilityAccount:  liab,
				Total:             amount,
				AdvanceFraction:   frac,
			}, force)
			if err != nil {
				return err
			}
			return printOutcome(cmd.OutOrStdout(), cfg.Company.Name, sess, receipt)
		},
	}

	cmd.Flags().StringVar(&pay, "pay", model.AccountBank, "current-asset account to pay the advance from")
	cmd.Flags().StringVar(&destCat, "dest-category", "", "destination category (required)")
	cmd.Flags().StringVar(&dest, "dest", "", "destination account (required)")
	cmd.Flags().StringVar(&liabCat, "liability-category", string(model.CategoryShortTermLiabilities), "liability category")
	cmd.Flags().StringVar(&liab, "liability", "", "liability account (required)")
	cmd.Flags().StringVar(&total, "total", "", "tax-inclusive total (required)")
	cmd.Flags().StringVar(&fraction, "advance-fraction", "", "cash share of the total, in [0,1] (required)")
	cmd.Flags().BoolVar(&force, "force", false, "post even with insufficient funds")
	_ = cmd.MarkFlagRequired("dest-category")
	_ = cmd.MarkFlagRequired("dest")
	_ = cmd.MarkFlagRequired("liability")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("advance-fraction")

	return cmd
}

func newTxAdvanceCommand(configPath *string) *cobra.Command {
	var (
		receiving string
		saleTotal string
		fraction  string
	)

	cmd := &cobra.Command{
		Use:   "advance",
		Short: "Post a customer advance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, cfg, err := loadSession(*configPath)
			if err != nil {
				return err
			}
			amount, err := parseAmount(saleTotal)
			if err != nil {
				return err
			}
			frac, err := parseAmount(fraction)
			if err != nil {
				return err
			}

			receipt, err := sess.CustomerAdvance(engine.CustomerAdvanceParams{
				ReceivingAccount: receiving,
				SaleTotal:        amount,
				AdvanceFraction:  frac,
			})
			if err != nil {
				return err
			}
			return printOutcome(cmd.OutOrStdout(), cfg.Company.Name, sess, receipt)
		},
	}

	cmd.Flags().StringVar(&receiving, "receive", model.AccountBank, "current-asset account receiving the advance")
	cmd.Flags().StringVar(&saleTotal, "sale-total", "", "tax-inclusive sale total (required)")
	cmd.Flags().StringVar(&fraction, "advance-fraction", "", "share received now, in [0,1] (required)")
	_ = cmd.MarkFlagRequired("sale-total")
	_ = cmd.MarkFlagRequired("advance-fraction")

	return cmd
}
