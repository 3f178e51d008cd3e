package commands

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/Nayem55/accounts-app/internal/buildinfo"
	"github.com/Nayem55/accounts-app/internal/config"
	"github.com/Nayem55/accounts-app/internal/kv"
	"github.com/Nayem55/accounts-app/internal/ledger"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "accounts",
		Short:   "Personal account and transaction ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.FileName, "path to accounts.yaml")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAccountCommand(&configPath))
	rootCmd.AddCommand(newTxCommand(&configPath))
	rootCmd.AddCommand(newSummaryCommand(&configPath))
	rootCmd.AddCommand(newBackupCommand(&configPath))
	rootCmd.AddCommand(newRestoreCommand(&configPath))
	rootCmd.AddCommand(newServeCommand(&configPath))

	return rootCmd
}

// openStore loads config and the persisted ledger. A corrupt blob is logged
// and the store starts empty, per the degrade-don't-crash policy; the stored
// data stays on disk untouched until the next successful write.
func openStore(configPath string) (*config.Config, *ledger.Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	fileStore, err := kv.NewFileStore(cfg.Storage.Dir)
	if err != nil {
		return nil, nil, err
	}

	store := ledger.New(fileStore, cfg.Storage.Key)
	if err := store.Load(context.Background()); err != nil {
		var corrupt *ledger.CorruptStateError
		if !errors.As(err, &corrupt) {
			return nil, nil, err
		}
		log.Printf("warning: %v; starting with an empty ledger", corrupt)
	}
	return cfg, store, nil
}
