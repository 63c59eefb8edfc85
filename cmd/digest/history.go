package main

import (
	"fmt"
	"newsagent/db"
	"newsagent/internal/repository"

	"github.com/spf13/cobra"
)

func historyCMD() *cobra.Command {
	var limit, offset int

	var history = &cobra.Command{
		Use:   "history",
		Short: "Print archived digests, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is not set")
			}

			if err := db.Connect(cfg.DatabaseURL); err != nil {
				return fmt.Errorf("error connecting to DB: %w", err)
			}
			defer db.Close()

			repo := repository.NewDigestRepository(db.DB)
			if err := repo.EnsureSchema(cmd.Context()); err != nil {
				return err
			}

			digests, err := repo.GetDigests(cmd.Context(), limit, offset)
			if err != nil {
				return err
			}

			return printJSON(digests)
		},
	}
	history.Flags().IntVar(&limit, "limit", 10, "number of digests to print")
	history.Flags().IntVar(&offset, "offset", 0, "number of digests to skip")

	return history
}
