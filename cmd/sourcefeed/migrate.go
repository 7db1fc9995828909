package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sourcefeed/migrations"
	"github.com/dmitrymomot/sourcefeed/pkg/logger"
	"github.com/dmitrymomot/sourcefeed/pkg/pg"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending Postgres migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg)

		pgCfg, err := loadPostgresConfig()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			log.ErrorContext(ctx, "failed to connect to postgres", logger.Error(err))
			return err
		}
		defer pool.Close()

		if err := pg.Migrate(ctx, pool, migrations.FS, pgCfg, log); err != nil {
			log.ErrorContext(ctx, "migration failed", logger.Error(err))
			return err
		}
		log.InfoContext(ctx, "migrations applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
