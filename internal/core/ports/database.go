// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/cdbgen/internal/core/domain"
)

// CompilationDatabase defines the interface for the shared compilation database.
//
//go:generate mockgen -source=database.go -destination=mocks/mock_database.go -package=mocks
type CompilationDatabase interface {
	// Synchronize records the invocation in the database at path.
	// The whole read-merge-write sequence runs under an exclusive lock on the file,
	// and the file is only rewritten if its record set changes.
	Synchronize(ctx context.Context, path string, inv domain.Invocation) (domain.SyncResult, error)

	// Load reads the database at path under a shared lock.
	// A missing database yields an empty set.
	Load(ctx context.Context, path string) (domain.RecordSet, error)
}
