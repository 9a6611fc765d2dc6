package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eduplay/console/internal/store"
)

func newSeedCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Reset the store and load sample data",
		Long:  "Wipe every collection and repopulate it with the demo dataset, including the default admin account.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("seeding destroys all existing data; re-run with --yes to confirm")
			}
			return runSeed()
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm destructive reset")

	return cmd
}

func runSeed() error {
	st, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	authSvc := newAuthService()
	hash, err := authSvc.HashPassword(store.SeedPassword)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	if err := st.ResetAndSeed(context.Background(), hash); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	fmt.Printf("Sample data initialized. Default admin: %s / %s\n", store.SeedUsername, store.SeedPassword)
	return nil
}
