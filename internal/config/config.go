// Package config loads the gateway configuration from the environment.
//
// A .env file in the working directory is honored when present, so local
// runs do not need to export anything. Explicit env vars always win.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults mirror the vendor deployment the gateway was written against.
const (
	defaultListenAddr  = ":8080"
	defaultVendorURL   = "http://183.6.70.7:16389/yxapi"
	defaultRoutingID   = "octocm.md.YX.iML_00001_CM"
	defaultPageSize    = 20
	defaultJournalPath = "./data/journal.db"
)

// Config is everything the binary needs to run.
type Config struct {
	// ListenAddr is the inbound HTTP bind address.
	ListenAddr string

	// VendorBaseURL is the root of the vendor yxapi endpoints.
	VendorBaseURL string
	// VendorRoutingID is the static "md" backend-routing identifier sent
	// on every vendor call.
	VendorRoutingID string
	// PageSize is the fixed page size for list requests.
	PageSize int

	// UseFakeVendor swaps the real vendor client for the in-memory fake,
	// for local development without reach to the vendor host.
	UseFakeVendor bool

	// JournalPath is the SQLite file for the submission journal. Empty
	// disables journaling entirely.
	JournalPath string

	// LogLevel is the slog level for the process logger.
	LogLevel slog.Level
}

// Load reads the configuration. Precedence: explicit env var > .env file >
// default.
func Load() Config {
	// Missing .env is fine; env vars alone are a valid configuration.
	_ = godotenv.Load()

	return Config{
		ListenAddr:      getEnv("LISTEN_ADDR", defaultListenAddr),
		VendorBaseURL:   getEnv("VENDOR_BASE_URL", defaultVendorURL),
		VendorRoutingID: getEnv("VENDOR_ROUTING_ID", defaultRoutingID),
		PageSize:        getEnvInt("VENDOR_PAGE_SIZE", defaultPageSize),
		UseFakeVendor:   getEnvBool("USE_FAKE_VENDOR", false),
		JournalPath:     getEnv("JOURNAL_PATH", defaultJournalPath),
		LogLevel:        parseLevel(getEnv("LOG_LEVEL", "info")),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
