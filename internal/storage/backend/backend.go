// Package backend picks a storage.Provider from the --config value.
package backend

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/enough/internal/constants"
	"github.com/julianstephens/enough/internal/keyring"
	"github.com/julianstephens/enough/internal/logger"
	"github.com/julianstephens/enough/internal/storage"
	"github.com/julianstephens/enough/internal/storage/diskv"
	"github.com/julianstephens/enough/internal/storage/postgres"
	"github.com/julianstephens/enough/internal/storage/sqlite"
	"github.com/julianstephens/enough/internal/utils"
)

type Kind string

const (
	SQLite   Kind = "sqlite"
	Postgres Kind = "postgres"
	Dir      Kind = "diskv"
	JSON     Kind = "json"
)

// PostgresKeyword selects PostgreSQL with the connection taken from the
// environment or keyring only.
const PostgresKeyword = "postgres"

// Detect classifies a config value without touching the filesystem.
func Detect(config string) Kind {
	switch {
	case config == PostgresKeyword || postgres.IsConnString(config):
		return Postgres
	case strings.HasSuffix(config, "/") || strings.HasSuffix(config, string(filepath.Separator)):
		return Dir
	case strings.EqualFold(filepath.Ext(config), ".json"):
		return JSON
	case filepath.Ext(config) == "":
		return Dir
	default:
		return SQLite
	}
}

// Open builds the provider for config. It does not call Init or Load.
func Open(config string) (storage.Provider, error) {
	kind := Detect(config)
	if kind == Postgres {
		connStr, err := ResolveConnString(config)
		if err != nil {
			return nil, err
		}
		return postgres.New(connStr), nil
	}

	path, err := utils.ExpandHome(config)
	if err != nil {
		return nil, err
	}
	switch kind {
	case Dir:
		return diskv.New(filepath.Clean(path)), nil
	case JSON:
		return storage.NewJSONStore(path), nil
	default:
		return sqlite.NewStore(path), nil
	}
}

// Ready loads the store and creates it when it does not exist yet, so the
// first command after install works without an explicit init.
func Ready(store storage.Provider) error {
	err := store.Load()
	if !errors.Is(err, storage.ErrNotInitialized) {
		return err
	}
	logger.Info("Creating storage on first use", "path", store.GetConfigPath())
	return store.Init()
}

// ResolveConnString decides which PostgreSQL connection string to use. A
// string given on the command line must not carry a password; the
// environment variable wins over the keyring, which wins over the flag.
func ResolveConnString(config string) (string, error) {
	if config != PostgresKeyword {
		if err := postgres.ValidateConnString(config); err != nil {
			return "", err
		}
	}

	if env := strings.TrimSpace(os.Getenv(constants.ConnectionEnvVar)); env != "" {
		logger.Debug("Using connection string from environment", "var", constants.ConnectionEnvVar)
		return env, nil
	}

	stored, err := keyring.GetConnectionString()
	switch {
	case err == nil:
		logger.Debug("Using connection string from keyring")
		return stored, nil
	case errors.Is(err, keyring.ErrNotFound):
	default:
		logger.Warn("Keyring lookup failed", "error", err)
	}

	if config == PostgresKeyword {
		return "", fmt.Errorf("no PostgreSQL connection configured: set %s or run 'enough keyring set'", constants.ConnectionEnvVar)
	}
	return config, nil
}

// ConfigDir is where logs and backups live for a given config value.
func ConfigDir(config string) string {
	if Detect(config) == Postgres {
		path, err := utils.ExpandHome(constants.DefaultConfigPath)
		if err != nil {
			return "."
		}
		return filepath.Dir(path)
	}
	path, err := utils.ExpandHome(config)
	if err != nil {
		return "."
	}
	if Detect(config) == Dir {
		return filepath.Clean(path)
	}
	return filepath.Dir(path)
}
