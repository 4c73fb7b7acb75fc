package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"go_5_box_vocab/internal/config"
	"go_5_box_vocab/internal/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "テーブルを作成・更新します",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()
		db, err := repository.NewDB(config.Cfg.Database, logger)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		if err := repository.Migrate(db); err != nil {
			return err
		}
		logger.Info("Migration completed", slog.String("driver", config.Cfg.Database.Driver))
		return nil
	},
}
