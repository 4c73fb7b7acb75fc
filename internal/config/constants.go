// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "five-box-vocab"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultDatabaseDriver = "postgres"
	DefaultLogLevel       = "info"
	DefaultTimezone       = "Local"
	DefaultStatsTTL       = time.Minute
)

// ボックスごとの既定の復習間隔。ボックス1は即時、ボックス5は卒業しない設定のときだけ使う
const (
	DefaultBox1Interval = time.Duration(0)
	DefaultBox2Interval = 24 * time.Hour
	DefaultBox3Interval = 3 * 24 * time.Hour
	DefaultBox4Interval = 7 * 24 * time.Hour
	DefaultBox5Interval = 14 * 24 * time.Hour
)
