package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/shushrut/shushrut_backend/config"
	"github.com/shushrut/shushrut_backend/internal/store"
	"github.com/shushrut/shushrut_backend/pkg/database"
)

func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the record store (indexes)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			fmt.Println("Connecting to record store...")
			client, err := database.Connect(cfg.Mongo)
			if err != nil {
				return fmt.Errorf("failed to connect: %w", err)
			}
			defer client.Disconnect(context.Background())

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			if timeout <= 0 {
				timeout = 30 * time.Second
			}
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			fmt.Println("Ensuring indexes...")
			if err := store.EnsureIndexes(ctx, database.Database(client, cfg.Mongo)); err != nil {
				return fmt.Errorf("failed to ensure indexes: %w", err)
			}
			fmt.Println("Record store initialized successfully.")
			return nil
		},
	}

	return cmd
}
