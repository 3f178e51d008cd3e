package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newBackupCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "backup <file>",
		Short: "Export the whole ledger to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openStore(*configPath)
			if err != nil {
				return err
			}

			blob, err := store.Export()
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], []byte(blob), 0o644); err != nil {
				return fmt.Errorf("writing backup: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Backed up ledger to %s\n", args[0])
			return nil
		},
	}
}

func newRestoreCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace the ledger with the contents of a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading backup: %w", err)
			}

			_, store, err := openStore(*configPath)
			if err != nil {
				return err
			}
			if err := store.Import(context.Background(), string(data)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Restored ledger from %s\n", args[0])
			return nil
		},
	}
}
