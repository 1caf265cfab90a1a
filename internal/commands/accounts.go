package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/lavatech-dev/balance/internal/catalog"
	"github.com/lavatech-dev/balance/internal/config"
	"github.com/lavatech-dev/balance/internal/model"
)

func newAccountsCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage the account catalog",
	}

	cmd.AddCommand(newAccountsListCommand(configPath))
	cmd.AddCommand(newAccountsAddCommand(configPath))
	cmd.AddCommand(newAccountsSetCommand(configPath))
	cmd.AddCommand(newAccountsRmCommand(configPath))

	return cmd
}

func newAccountsListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list [category]",
		Short: "List catalog accounts and their template values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := loadSession(*configPath)
			if err != nil {
				return err
			}

			categories := model.AllCategories
			if len(args) == 1 {
				cat, err := model.ParseCategory(args[0])
				if err != nil {
					return err
				}
				categories = []model.Category{cat}
			}

			out := cmd.OutOrStdout()
			store := sess.Store()
			for _, cat := range categories {
				fmt.Fprintf(out, "%s (%s)\n", model.CategoryLabel(cat), cat)
				for _, name := range store.List(cat) {
					fmt.Fprintf(out, "  %-30s %s\n", name, store.CatalogValue(cat, name).StringFixed(2))
				}
			}
			return nil
		},
	}
}

func parseAmount(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", model.ErrInvalidAmount, s)
	}
	return v, nil
}

// upsertAccount replaces any config entries for the account with a
// single fresh one.
func upsertAccount(cfg *config.Config, entry config.AccountConfig) {
	kept := cfg.Accounts[:0]
	for _, a := range cfg.Accounts {
		if a.Category == entry.Category && catalog.Normalize(a.Name) == catalog.Normalize(entry.Name) {
			continue
		}
		kept = append(kept, a)
	}
	cfg.Accounts = append(kept, entry)
}

func newAccountsAddCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <category> <name> <value>",
		Short: "Add an account to the catalog",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := model.ParseCategory(args[0])
			if err != nil {
				return err
			}
			value, err := parseAmount(args[2])
			if err != nil {
				return err
			}

			sess, cfg, err := loadSession(*configPath)
			if err != nil {
				return err
			}
			if err := sess.Store().Add(cat, args[1], value); err != nil {
				return err
			}

			upsertAccount(cfg, config.AccountConfig{
				Category: string(cat),
				Name:     catalog.Normalize(args[1]),
				Value:    value.InexactFloat64(),
			})
			if err := config.Save(*configPath, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s/%s\n", cat, catalog.Normalize(args[1]))
			return nil
		},
	}
}

func newAccountsSetCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <name> <value>",
		Short: "Set an account's template value",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := model.ParseCategory(args[0])
			if err != nil {
				return err
			}
			value, err := parseAmount(args[2])
			if err != nil {
				return err
			}

			sess, cfg, err := loadSession(*configPath)
			if err != nil {
				return err
			}
			if err := sess.Store().Modify(cat, args[1], value); err != nil {
				return err
			}

			upsertAccount(cfg, config.AccountConfig{
				Category: string(cat),
				Name:     catalog.Normalize(args[1]),
				Value:    value.InexactFloat64(),
			})
			if err := config.Save(*configPath, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s/%s = %s\n", cat, catalog.Normalize(args[1]), value.StringFixed(2))
			return nil
		},
	}
}

func newAccountsRmCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <category> <name>",
		Short: "Remove an account from the catalog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := model.ParseCategory(args[0])
			if err != nil {
				return err
			}

			sess, cfg, err := loadSession(*configPath)
			if err != nil {
				return err
			}
			if err := sess.Store().Delete(cat, args[1]); err != nil {
				return err
			}

			upsertAccount(cfg, config.AccountConfig{
				Category: string(cat),
				Name:     catalog.Normalize(args[1]),
				Remove:   true,
			})
			if err := config.Save(*configPath, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s/%s\n", cat, catalog.Normalize(args[1]))
			return nil
		},
	}
}
