// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // postgres | sqlite
	URL    string `mapstructure:"url"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	StatsTTL time.Duration `mapstructure:"stats_ttl"`
}

// LeitnerConfig はボックスごとの復習間隔
type LeitnerConfig struct {
	Box1Interval   time.Duration `mapstructure:"box1_interval"`
	Box2Interval   time.Duration `mapstructure:"box2_interval"`
	Box3Interval   time.Duration `mapstructure:"box3_interval"`
	Box4Interval   time.Duration `mapstructure:"box4_interval"`
	Box5Interval   time.Duration `mapstructure:"box5_interval"`
	RetireMastered bool          `mapstructure:"retire_mastered"` // true ならボックス5は再出題しない
}

type AppConfig struct {
	Timezone string `mapstructure:"timezone"` // "今日の学習数" の日付境界
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Leitner  LeitnerConfig  `mapstructure:"leitner"`
	App      AppConfig      `mapstructure:"app"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

var Cfg Config

// LoadConfig は .env → config.yaml → 環境変数 (APP_ 接頭辞) の順に読み込み、Cfg に格納します
func LoadConfig(paths ...string) error {
	cfg, err := Load(paths...)
	if err != nil {
		return err
	}
	Cfg = *cfg
	return nil
}

// Load はグローバル変数を使わずに設定を読み込みます (テスト用途にも使う)
func Load(paths ...string) (*Config, error) {
	// .env は任意。無ければそのまま進む
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to load .env file", slog.Any("error", err))
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP") // 例: APP_DATABASE_URL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Warn("Config file not found. Using defaults and environment variables.")
		} else {
			return nil, fmt.Errorf("config.Load: read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: unmarshal: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	slog.Info("Config loaded",
		slog.String("port", cfg.Server.Port),
		slog.String("db_driver", cfg.Database.Driver),
		slog.Bool("cache_enabled", cfg.Cache.Enabled),
		slog.Bool("retire_mastered", cfg.Leitner.RetireMastered),
		slog.String("timezone", cfg.App.Timezone),
	)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("database.driver", DefaultDatabaseDriver)
	v.SetDefault("database.url", "")
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Content-Type", "X-Request-Id"})
	v.SetDefault("cors.max_age", 300)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.stats_ttl", DefaultStatsTTL)
	v.SetDefault("leitner.box1_interval", DefaultBox1Interval)
	v.SetDefault("leitner.box2_interval", DefaultBox2Interval)
	v.SetDefault("leitner.box3_interval", DefaultBox3Interval)
	v.SetDefault("leitner.box4_interval", DefaultBox4Interval)
	v.SetDefault("leitner.box5_interval", DefaultBox5Interval)
	v.SetDefault("leitner.retire_mastered", true)
	v.SetDefault("app.timezone", DefaultTimezone)
	v.SetDefault("metrics.enabled", true)
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("config: unsupported database driver %q", c.Database.Driver)
	}
	intervals := []time.Duration{
		c.Leitner.Box1Interval, c.Leitner.Box2Interval, c.Leitner.Box3Interval,
		c.Leitner.Box4Interval, c.Leitner.Box5Interval,
	}
	for i, d := range intervals {
		if d < 0 {
			return fmt.Errorf("config: leitner.box%d_interval must not be negative", i+1)
		}
		if i > 0 && d < intervals[i-1] {
			return fmt.Errorf("config: leitner.box%d_interval must not be shorter than box%d", i+1, i)
		}
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("config: app.timezone: %w", err)
	}
	return nil
}

// Location は app.timezone を解決します。"Local" はプロセスのローカル時刻
func (c *Config) Location() (*time.Location, error) {
	if c.App.Timezone == "" || c.App.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.App.Timezone)
}
