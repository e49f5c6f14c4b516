// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/fake-survey-generator/db"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	CORSOrigins  []string
	LogLevel     string
	LogFormat    string
}

// ParseFlags reads flags, then fills the gaps from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile, cors string

	flags := flag.NewFlagSet("fake-survey-generator", flag.ContinueOnError)

	flags.StringVar(&envFile, "env", ".env", "Dotenv file to load (missing file is ignored)")
	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	flags.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or pgx)")
	flags.StringVar(&cors, "cors", "", "Allowed CORS origins, comma separated")
	flags.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text or json)")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	// Real environment variables win over the dotenv file
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = envOr("DATABASE_TYPE", string(db.DriverSQLite))
	}
	driver, err := db.ParseDriver(cfg.DatabaseType)
	if err != nil {
		return Config{}, err
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if driver != db.DriverSQLite {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = db.DefaultSQLiteDSN
	}

	if cors == "" {
		cors = envOr("CORS_ORIGINS", "*")
	}
	for _, origin := range strings.Split(cors, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = envOr("LOG_LEVEL", "info")
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
		cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	default:
		return Config{}, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = envOr("LOG_FORMAT", "text")
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("invalid log format %q (want text or json)", cfg.LogFormat)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
