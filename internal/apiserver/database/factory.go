package database

import (
	"fmt"

	"github.com/chloroplast/expense-server/internal/common/config"
)

// NewDatabase opens the store named by cfg.Type. Every dialect
// implements the same Database contract, so callers never branch on the
// backing engine.
func NewDatabase(cfg *config.DatabaseConfig) (Database, error) {
	open, ok := dialects[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("unsupported database type: %q", cfg.Type)
	}
	return open(cfg)
}

var dialects = map[string]func(*config.DatabaseConfig) (Database, error){
	"postgres": NewPostgres,
	"mysql":    NewMySQL,
	"sqlite":   NewSQLite,
}
