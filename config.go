package domsettle

import (
	"context"
	"database/sql"

	"github.com/hazyhaar/domsettle/internal/config"
)

// Config is the top-level domsettle configuration. Re-exported from internal.
type Config = config.Config

// BrowserConfig controls Chrome lifecycle.
type BrowserConfig = config.BrowserConfig

// WaitConfig carries default timing knobs for waits.
type WaitConfig = config.WaitConfig

// TargetConfig defines one element to wait on.
type TargetConfig = config.TargetConfig

// TargetsSchema is the SQLite schema for the settle_targets table.
const TargetsSchema = config.Schema

// LoadConfigFile reads a YAML configuration file.
func LoadConfigFile(path string) (*Config, error) {
	return config.LoadFile(path)
}

// LoadTargetsDB reads all active targets from a settle_targets table.
func LoadTargetsDB(ctx context.Context, db *sql.DB) ([]TargetConfig, error) {
	return config.LoadTargets(ctx, db)
}
