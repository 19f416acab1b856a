// Package compdb maintains the shared compilation database file.
//
// Every update runs as one transaction under an exclusive lock on the
// database file itself: read everything, merge in memory, and rewrite the
// file only if the merged set differs from what was read.
package compdb

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cdbgen/internal/core/domain"
	"go.trai.ch/cdbgen/internal/core/ports"
	"go.trai.ch/zerr"
)

// Database implements ports.CompilationDatabase on top of a locked JSON file.
type Database struct {
	logger ports.Logger
}

// NewDatabase creates a new Database.
func NewDatabase(logger ports.Logger) *Database {
	return &Database{logger: logger}
}

// Synchronize records inv in the database at path.
//
// The file is created if absent. Losing the creation race to another process
// is not an error. The exclusive lock is held from before the first read until
// after the last write, and is released on every return path.
func (d *Database) Synchronize(
	ctx context.Context,
	path string,
	inv domain.Invocation,
) (result domain.SyncResult, err error) {
	if err := ctx.Err(); err != nil {
		return domain.SyncResult{}, err
	}
	if err := inv.Validate(); err != nil {
		return domain.SyncResult{}, err
	}

	path = filepath.Clean(path)
	if err := ensureExists(path); err != nil {
		return domain.SyncResult{}, err
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return domain.SyncResult{}, zerr.With(errors.Join(domain.ErrDatabaseOpenFailed, err), "path", path)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = zerr.With(errors.Join(domain.ErrDatabaseWriteFailed, closeErr), "path", path)
		}
	}()

	if err := lockFile(f, exclusiveLock); err != nil {
		return domain.SyncResult{}, lockError(err, path, exclusiveLock)
	}
	defer func() {
		if unlockErr := unlockFile(f); unlockErr != nil && err == nil {
			err = zerr.With(errors.Join(domain.ErrUnlockFailed, unlockErr), "path", path)
		}
	}()

	loaded, err := readSet(f, path)
	if err != nil {
		return domain.SyncResult{}, err
	}

	next := loaded.Supersede(domain.Invocation{
		Directory: inv.Directory,
		Arguments: inv.Arguments,
		Files:     inv.UniqueFiles(),
	})

	encoded, err := Encode(next)
	if err != nil {
		return domain.SyncResult{}, zerr.With(err, "path", path)
	}

	result = domain.SyncResult{
		Records: next.Len(),
		Digest:  Digest(encoded),
	}

	if !next.Equal(loaded) {
		if err := rewrite(f, encoded); err != nil {
			return domain.SyncResult{}, zerr.With(err, "path", path)
		}
		result.Changed = true
	}

	d.logger.Debug("synchronized compilation database",
		"path", path,
		"directory", inv.Directory,
		"files", len(inv.Files),
		"changed", result.Changed,
		"records", result.Records,
		"digest", result.Digest,
	)

	return result, nil
}

// Load reads the database at path under a shared lock.
// A database that does not exist yet is the empty set; no file is created.
func (d *Database) Load(ctx context.Context, path string) (set domain.RecordSet, err error) {
	if err := ctx.Err(); err != nil {
		return domain.RecordSet{}, err
	}

	path = filepath.Clean(path)
	//nolint:gosec // Path is cleaned and provided by trusted caller
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			d.logger.Debug("compilation database does not exist", "path", path)
			return domain.RecordSet{}, nil
		}
		return domain.RecordSet{}, zerr.With(errors.Join(domain.ErrDatabaseOpenFailed, err), "path", path)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := lockFile(f, sharedLock); err != nil {
		return domain.RecordSet{}, lockError(err, path, sharedLock)
	}
	defer func() {
		if unlockErr := unlockFile(f); unlockErr != nil && err == nil {
			err = zerr.With(errors.Join(domain.ErrUnlockFailed, unlockErr), "path", path)
		}
	}()

	return readSet(f, path)
}

// Digest returns the hex xxhash64 of encoded database content.
func Digest(encoded []byte) string {
	return strconv.FormatUint(xxhash.Sum64(encoded), 16)
}

func ensureExists(path string) error {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, domain.FilePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return zerr.With(errors.Join(domain.ErrDatabaseCreateFailed, err), "path", path)
	}
	if err := f.Close(); err != nil {
		return zerr.With(errors.Join(domain.ErrDatabaseCreateFailed, err), "path", path)
	}
	return nil
}

func readSet(f *os.File, path string) (domain.RecordSet, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return domain.RecordSet{}, zerr.With(errors.Join(domain.ErrDatabaseReadFailed, err), "path", path)
	}
	set, err := Decode(data)
	if err != nil {
		return domain.RecordSet{}, zerr.With(err, "path", path)
	}
	return set, nil
}

// rewrite replaces the whole content of f. The caller must hold the exclusive lock.
func rewrite(f *os.File, encoded []byte) error {
	if err := f.Truncate(0); err != nil {
		return errors.Join(domain.ErrDatabaseWriteFailed, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return errors.Join(domain.ErrDatabaseWriteFailed, err)
	}
	if _, err := f.Write(encoded); err != nil {
		return errors.Join(domain.ErrDatabaseWriteFailed, err)
	}
	return nil
}

func lockError(err error, path string, mode lockMode) error {
	err = zerr.With(errors.Join(domain.ErrLockFailed, err), "path", path)
	return zerr.With(err, "mode", mode.String())
}
