package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sourcefeed/pkg/logger"
	"github.com/dmitrymomot/sourcefeed/pkg/randomname"
	"github.com/dmitrymomot/sourcefeed/svc/session"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert generated fixture items, and optionally a session",
	Long: `Generates items whose sources are drawn from the source catalog and
inserts them into the configured item store. With --session a session pinned
to a random subset of catalog sources is created as well.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		catalogFile, _ := cmd.Flags().GetString("catalog")
		withSession, _ := cmd.Flags().GetBool("session")
		sourceCount, _ := cmd.Flags().GetInt("sources")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if catalogFile == "" {
			catalogFile = cfg.CatalogFile
		}
		log := newLogger(cfg)

		cat, err := loadCatalog(catalogFile)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		st, err := openStores(ctx, cfg, log, storeOptions{})
		if err != nil {
			return err
		}
		defer st.close()

		if err := st.items.Insert(ctx, cat.Items(count)...); err != nil {
			log.ErrorContext(ctx, "failed to insert items", logger.Error(err))
			return err
		}
		log.InfoContext(ctx, "items inserted", logger.Count(count))

		if !withSession {
			return nil
		}
		sess := session.New(randomname.WithSuffix())
		sess.SetSources(cat.Sample(sourceCount))
		if err := st.sessions.Create(ctx, sess); err != nil {
			log.ErrorContext(ctx, "failed to create session", logger.Error(err))
			return err
		}
		log.InfoContext(ctx, "session created",
			logger.SessionID(sess.Identifier),
			slog.Any("sources", sess.Sources),
		)
		cmd.Printf("session: %s\n", sess.Identifier)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().Int("count", 50, "Number of items to generate")
	seedCmd.Flags().String("catalog", "", "YAML file with the source catalog (defaults to CATALOG_FILE or the built-in catalog)")
	seedCmd.Flags().Bool("session", false, "Also create a session pinned to sampled sources")
	seedCmd.Flags().Int("sources", 3, "Number of sources pinned to the seeded session")
}
