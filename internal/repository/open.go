// Package repository selects a store backend from a connection string.
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/msomdec/exercise-tracker/internal/domain"
	"github.com/msomdec/exercise-tracker/internal/repository/mongodb"
	"github.com/msomdec/exercise-tracker/internal/repository/sqlite"
)

// Backend names the store implementation a connection string selects.
type Backend string

const (
	BackendSQLite  Backend = "sqlite"
	BackendMongoDB Backend = "mongodb"
)

// BackendFor reports which backend serves dsn: mongodb:// and
// mongodb+srv:// URIs go to MongoDB, everything else is a SQLite path
// (an optional sqlite:// prefix is accepted).
func BackendFor(dsn string) Backend {
	if strings.HasPrefix(dsn, "mongodb://") || strings.HasPrefix(dsn, "mongodb+srv://") {
		return BackendMongoDB
	}
	return BackendSQLite
}

// Open connects to the store named by dsn. mongoDatabase is only used for
// MongoDB connections.
func Open(ctx context.Context, dsn, mongoDatabase string) (domain.Database, error) {
	switch BackendFor(dsn) {
	case BackendMongoDB:
		db, err := mongodb.New(ctx, dsn, mongoDatabase)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		path := strings.TrimPrefix(dsn, "sqlite://")
		if path == "" {
			return nil, fmt.Errorf("empty sqlite database path")
		}
		db, err := sqlite.New(path)
		if err != nil {
			return nil, err
		}
		return db, nil
	}
}
