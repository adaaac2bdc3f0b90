// Package database wraps sql connections with the bun dialect matching the
// host's driver so callers can hand a ready *bun.DB to the module.
package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// NewBunDB wraps an opened connection with the dialect named by driver.
// Supported drivers are sqlite3 and postgres.
func NewBunDB(sqlDB *sql.DB, driver string) (*bun.DB, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "sqlite", "sqlite3":
		return bun.NewDB(sqlDB, sqlitedialect.New()), nil
	case "pg", "postgres", "postgresql":
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	default:
		return nil, fmt.Errorf("database: unsupported driver %q", driver)
	}
}
