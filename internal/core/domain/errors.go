package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingPrefix is returned when the shim is invoked under a name that lacks the shim prefix.
	ErrMissingPrefix = zerr.New("command misses the shim prefix")

	// ErrCompilerNotFound is returned when the target compiler cannot be found on the search path.
	ErrCompilerNotFound = zerr.New("compiler not found on PATH")

	// ErrInvalidInvocation is returned when an invocation lacks a working directory or a command line.
	ErrInvalidInvocation = zerr.New("invalid invocation, expected an absolute directory and a non-empty command line")

	// ErrDatabaseCreateFailed is returned when the compilation database file cannot be created.
	ErrDatabaseCreateFailed = zerr.New("failed to create compilation database")

	// ErrDatabaseOpenFailed is returned when the compilation database file cannot be opened.
	ErrDatabaseOpenFailed = zerr.New("failed to open compilation database")

	// ErrDatabaseReadFailed is returned when the compilation database cannot be read.
	ErrDatabaseReadFailed = zerr.New("failed to read compilation database")

	// ErrDatabaseWriteFailed is returned when the compilation database cannot be rewritten.
	ErrDatabaseWriteFailed = zerr.New("failed to write compilation database")

	// ErrDatabaseMalformed is returned when the stored content is not a valid compilation database.
	ErrDatabaseMalformed = zerr.New("malformed compilation database")

	// ErrDatabaseEncodeFailed is returned when the record set cannot be serialized.
	ErrDatabaseEncodeFailed = zerr.New("failed to encode compilation database")

	// ErrLockFailed is returned when the exclusive lock on the database cannot be acquired.
	ErrLockFailed = zerr.New("failed to lock compilation database")

	// ErrUnlockFailed is returned when the lock on the database cannot be released.
	ErrUnlockFailed = zerr.New("failed to unlock compilation database")

	// ErrLockUnsupported is returned on platforms without a file locking backend.
	ErrLockUnsupported = zerr.New("file locking is not supported on this platform")

	// ErrLaunchFailed is returned when the compiler process cannot be started.
	ErrLaunchFailed = zerr.New("failed to launch compiler")

	// ErrWorkingDirFailed is returned when the current working directory cannot be determined.
	ErrWorkingDirFailed = zerr.New("failed to determine working directory")

	// ErrConfigReadFailed is returned when a configuration source cannot be loaded.
	ErrConfigReadFailed = zerr.New("failed to read configuration")

	// ErrConfigInvalid is returned when the effective configuration fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrLinkFailed is returned when a shim link cannot be created.
	ErrLinkFailed = zerr.New("failed to create shim link")

	// ErrNoCommand is returned when the record command is given no compiler command line.
	ErrNoCommand = zerr.New("no compiler command given")
)
