// cmd/main.go
package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"go_5_box_vocab/internal/config"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "five-box-vocab",
	Short: "5ボックス方式の単語学習API",
	// 設定を読み込み、ロガーを組み立ててからサブコマンドを実行する
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadConfig(configDir); err != nil {
			return err
		}
		slog.SetDefault(newLogger(config.Cfg.Log.Level))
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "configs", "config.yaml を置いたディレクトリ")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	// 設定読み込み前の一時的なロガー
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// newLogger は APP_ENV=dev なら tint、それ以外は JSON のハンドラを使います
func newLogger(level string) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	return slog.New(handler).With(slog.String("app", config.AppName), slog.String("version", config.AppVersion))
}
