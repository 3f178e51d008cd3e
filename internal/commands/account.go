package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Nayem55/accounts-app/internal/balance"
)

func newAccountCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}

	cmd.AddCommand(newAccountListCommand(configPath))
	cmd.AddCommand(newAccountAddCommand(configPath))
	cmd.AddCommand(newAccountRenameCommand(configPath))
	cmd.AddCommand(newAccountRemoveCommand(configPath))

	return cmd
}

func newAccountListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts with their balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, store, err := openStore(*configPath)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCREDIT\tDEBIT\tBALANCE")
			for _, acc := range store.Snapshot() {
				t := balance.Sum(acc.Transactions)
				fmt.Fprintf(w, "%s\t%s\t%s %s\t%s %s\t%s %s\n",
					acc.ID, acc.Name,
					cfg.Display.Currency, t.Credit.StringFixed(2),
					cfg.Display.Currency, t.Debit.StringFixed(2),
					cfg.Display.Currency, t.Balance.StringFixed(2))
			}
			return w.Flush()
		},
	}
}

func newAccountAddCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openStore(*configPath)
			if err != nil {
				return err
			}

			acc, err := store.AddAccount(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created account %s (%s)\n", acc.Name, acc.ID)
			return nil
		},
	}
}

func newAccountRenameCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <account-id> <name>",
		Short: "Rename an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openStore(*configPath)
			if err != nil {
				return err
			}
			return store.RenameAccount(context.Background(), args[0], args[1])
		},
	}
}

func newAccountRemoveCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <account-id>",
		Short: "Delete an account and all its transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openStore(*configPath)
			if err != nil {
				return err
			}
			return store.DeleteAccount(context.Background(), args[0])
		},
	}
}
