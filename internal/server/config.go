package server

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/matzehuels/floorsmith/pkg/errors"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreMongo  = "mongo"
)

// Config holds the server settings. Zero values are filled by LoadConfig.
type Config struct {
	Addr       string
	Store      string
	SQLitePath string
	MongoURI   string
	MongoDB    string
	RedisAddr  string
	CacheSize  int
}

// LoadConfig reads envFile when it exists (".env" when empty) and then the
// FLOORSMITH_* environment variables. Variables already set in the
// environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "load %s", envFile)
	}

	cfg := Config{
		Addr:       firstNonEmpty(env("FLOORSMITH_ADDR"), ":8080"),
		Store:      strings.ToLower(firstNonEmpty(env("FLOORSMITH_STORE"), StoreMemory)),
		SQLitePath: firstNonEmpty(env("FLOORSMITH_SQLITE_PATH"), "floorsmith.db"),
		MongoURI:   firstNonEmpty(env("FLOORSMITH_MONGO_URI"), "mongodb://localhost:27017"),
		MongoDB:    firstNonEmpty(env("FLOORSMITH_MONGO_DB"), "floorsmith"),
		RedisAddr:  env("FLOORSMITH_REDIS_ADDR"),
		CacheSize:  1024,
	}
	if raw := env("FLOORSMITH_CACHE_SIZE"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Config{}, errors.New(errors.ErrCodeInvalidInput, "FLOORSMITH_CACHE_SIZE must be a positive integer, got %q", raw)
		}
		cfg.CacheSize = n
	}
	return cfg, cfg.Validate()
}

// Validate checks the store backend and address.
func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreSQLite, StoreMongo:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "invalid store: %q (must be one of: memory, sqlite, mongo)", c.Store)
	}
	if c.Addr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "listen address is empty")
	}
	return nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
