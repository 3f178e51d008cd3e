package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nayem55/accounts-app/internal/balance"
)

func newSummaryCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals across all accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, store, err := openStore(*configPath)
			if err != nil {
				return err
			}

			t := balance.SumAll(store.Snapshot())
			fmt.Fprintf(cmd.OutOrStdout(), "Credit (+)  %s %s\n", cfg.Display.Currency, t.Credit.StringFixed(2))
			fmt.Fprintf(cmd.OutOrStdout(), "Debit  (-)  %s %s\n", cfg.Display.Currency, t.Debit.StringFixed(2))
			fmt.Fprintf(cmd.OutOrStdout(), "Balance     %s %s\n", cfg.Display.Currency, t.Balance.StringFixed(2))
			return nil
		},
	}
}
