package cmd

import (
	"context"
	"log"

	"menulink/config"
	"menulink/storefront-svc/internal/storage"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database tables shared by all services",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		db := config.MustInitPostgres(cfg.DB)
		defer db.Close()

		if err := storage.NewPostgresRepository(db).EnsureSchema(context.Background()); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
		log.Println("[storefront-svc] schema is up to date")
	},
}
