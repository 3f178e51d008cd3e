package commands

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Nayem55/accounts-app/internal/balance"
	"github.com/Nayem55/accounts-app/internal/ledger"
	"github.com/Nayem55/accounts-app/internal/model"
)

func newTxCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
	}

	cmd.AddCommand(newTxListCommand(configPath))
	cmd.AddCommand(newTxAddCommand(configPath))
	cmd.AddCommand(newTxEditCommand(configPath))
	cmd.AddCommand(newTxRemoveCommand(configPath))

	return cmd
}

func newTxListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list <account-id>",
		Short: "List an account's transactions and totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, store, err := openStore(*configPath)
			if err != nil {
				return err
			}

			acc, ok := store.Account(args[0])
			if !ok {
				return fmt.Errorf("account %s: %w", args[0], ledger.ErrAccountNotFound)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tDATE\tPARTICULAR\tCREDIT\tDEBIT")
			for i, tx := range acc.Transactions {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					i, tx.Date.Format("2006-01-02"), tx.Particular,
					tx.Credit.StringFixed(2), tx.Debit.StringFixed(2))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			t := balance.Sum(acc.Transactions)
			fmt.Fprintf(cmd.OutOrStdout(), "\nCredit %s %s  Debit %s %s  Balance %s %s\n",
				cfg.Display.Currency, t.Credit.StringFixed(2),
				cfg.Display.Currency, t.Debit.StringFixed(2),
				cfg.Display.Currency, t.Balance.StringFixed(2))
			return nil
		},
	}
}

func newTxAddCommand(configPath *string) *cobra.Command {
	var txType string

	cmd := &cobra.Command{
		Use:   "add <account-id> <particular> <amount>",
		Short: "Record a credit or debit",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openStore(*configPath)
			if err != nil {
				return err
			}

			tx, err := store.AddTransaction(context.Background(), args[0], args[1], args[2], model.TxType(txType))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s of %s for %q\n", txType, args[2], tx.Particular)
			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", string(model.TxCredit), "transaction type: credit or debit")

	return cmd
}

func newTxEditCommand(configPath *string) *cobra.Command {
	var txType string

	cmd := &cobra.Command{
		Use:   "edit <account-id> <index> <particular> <amount>",
		Short: "Edit a transaction in place, keeping its original date",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid transaction index %q", args[1])
			}

			_, store, err := openStore(*configPath)
			if err != nil {
				return err
			}
			return store.EditTransaction(context.Background(), args[0], index, args[2], args[3], model.TxType(txType))
		},
	}

	cmd.Flags().StringVar(&txType, "type", string(model.TxCredit), "transaction type: credit or debit")

	return cmd
}

func newTxRemoveCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <account-id> <index>",
		Short: "Delete a transaction by its position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid transaction index %q", args[1])
			}

			_, store, err := openStore(*configPath)
			if err != nil {
				return err
			}
			return store.DeleteTransaction(context.Background(), args[0], index)
		},
	}
}
