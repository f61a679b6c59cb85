package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL        string
	DBLogLevel         string
	ServerPort         string
	LogLevel           string
	LogFormat          string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

const (
	keyDatabaseURL        = "database_url"
	keyDBLogLevel         = "db_log_level"
	keyServerPort         = "server_port"
	keyLogLevel           = "log_level"
	keyLogFormat          = "log_format"
	keyCORSAllowedOrigins = "cors_allowed_origins"
	keyShutdownTimeout    = "shutdown_timeout"
)

// Load reads configuration from defaults, the optional YAML file at path and
// the environment, later sources winning. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault(keyDatabaseURL, "app.db")
	v.SetDefault(keyDBLogLevel, "warn")
	v.SetDefault(keyServerPort, "5555")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "text")
	v.SetDefault(keyCORSAllowedOrigins, []string{"*"})
	v.SetDefault(keyShutdownTimeout, 10*time.Second)

	v.AutomaticEnv()
	// DB_URI is the variable the Flask deployment used.
	if err := v.BindEnv(keyDatabaseURL, "DATABASE_URL", "DB_URI"); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		DatabaseURL:        v.GetString(keyDatabaseURL),
		DBLogLevel:         v.GetString(keyDBLogLevel),
		ServerPort:         v.GetString(keyServerPort),
		LogLevel:           v.GetString(keyLogLevel),
		LogFormat:          v.GetString(keyLogFormat),
		CORSAllowedOrigins: splitList(v.GetStringSlice(keyCORSAllowedOrigins)),
		ShutdownTimeout:    v.GetDuration(keyShutdownTimeout),
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("database_url must not be empty")
	}
	return cfg, nil
}

// splitList flattens comma separated entries, as given by environment variables.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
