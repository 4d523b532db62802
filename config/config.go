// Package config loads application configuration from an optional YAML
// file and the environment. Environment variables keep the bare names
// the original deployment used, so existing Cloud Run setups keep
// working; file values provide the same keys in sections.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// ErrInvalid marks configuration that cannot be used to start the
// application.
var ErrInvalid = errors.New("invalid configuration")

// Config represents the application configuration.
type Config struct {
	AppName  string
	RunMode  string
	Host     string
	Port     int
	Timezone string
	Sheets   *Sheets
	Line     *Line
	Reminder *Reminder
	Logger   *Logger
	Viper    *viper.Viper
}

// Load reads configuration from configPath, or from a config.yaml found
// on the default search path when configPath is empty. A missing file is
// fine; the environment alone can configure everything.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	bindEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/todosheet")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	return buildConfig(v), nil
}

// buildConfig assembles the typed sections from a loaded viper.
func buildConfig(v *viper.Viper) *Config {
	return &Config{
		AppName:  getStringOrDefault(v, "app_name", "todosheet"),
		RunMode:  v.GetString("run_mode"),
		Host:     v.GetString("server.host"),
		Port:     getIntOrDefault(v, "server.port", 8080),
		Timezone: getStringOrDefault(v, "app.timezone", "Asia/Tokyo"),
		Sheets:   getSheetsConfig(v),
		Line:     getLineConfig(v),
		Reminder: getReminderConfig(v),
		Logger:   getLoggerConfig(v),
		Viper:    v,
	}
}

// bindEnv maps config keys to the environment names of the original
// deployment.
func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("app.timezone", "APP_TIMEZONE")
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("run_mode", "RUN_MODE")
	_ = v.BindEnv("sheets.spreadsheet_id", "SPREADSHEET_ID")
	_ = v.BindEnv("sheets.worksheet", "SHEET_NAME")
	_ = v.BindEnv("sheets.credentials_file", "GOOGLE_SERVICE_ACCOUNT_JSON_PATH")
	_ = v.BindEnv("sheets.credentials_json", "GOOGLE_SERVICE_ACCOUNT_JSON")
	_ = v.BindEnv("line.access_token", "LINE_CHANNEL_ACCESS_TOKEN")
	_ = v.BindEnv("line.user_id", "LINE_USER_ID")
	_ = v.BindEnv("reminder.cron_token", "CRON_AUTH_TOKEN")
	_ = v.BindEnv("reminder.window_hours", "REMIND_WINDOW_HOURS")
}

// Location resolves the configured timezone. Unknown zone names fall
// back to UTC rather than failing, matching the tolerance of
// hand-edited deployments.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Watch reloads the configuration when the backing file changes and
// hands the fresh values to callback. It is a no-op when no config file
// was used.
func (c *Config) Watch(callback func(*Config)) {
	if c.Viper.ConfigFileUsed() == "" {
		return
	}
	c.Viper.OnConfigChange(func(e fsnotify.Event) {
		callback(buildConfig(c.Viper))
	})
	c.Viper.WatchConfig()
}
