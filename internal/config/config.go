package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN   string `env:"DATABASE_URI"`
	PhotoMaxSizeMB int   `env:"PHOTO_MAX_MB"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL    string `env:"-"`
	IdentityFile string `env:"IDENTITY_FILE"`
	Version      bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags apply only when the env vars are not set
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN (postgres URL or sqlite file path)")
	flag.IntVar(&cfg.PhotoMaxSizeMB, "photo-max-mb", cfg.PhotoMaxSizeMB, "maximum accepted photo payload, MB")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the Héritage Partagé server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.IdentityFile, "identity-file", cfg.IdentityFile, "path to the stored identity file (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "heritage.db"
	}
	if cfg.PhotoMaxSizeMB <= 0 {
		cfg.PhotoMaxSizeMB = 10
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8080"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	if cfg.IdentityFile == "" {
		home, _ := os.UserHomeDir()
		cfg.IdentityFile = filepath.Join(home, ".hp_identity")
	}

	return cfg
}
