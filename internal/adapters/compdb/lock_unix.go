//go:build unix

package compdb

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// lockFile blocks until the lock on f is held.
// flock locks belong to the open file description, so every os.OpenFile
// competes for the lock, in this process or any other.
func lockFile(f *os.File, mode lockMode) error {
	how := unix.LOCK_SH
	if mode == exclusiveLock {
		how = unix.LOCK_EX
	}
	return flock(f, how)
}

func unlockFile(f *os.File) error {
	return flock(f, unix.LOCK_UN)
}

func flock(f *os.File, how int) error {
	fd := int(f.Fd()) //nolint:gosec // file descriptors fit in an int
	for {
		err := unix.Flock(fd, how)
		if !errors.Is(err, unix.EINTR) {
			return err
		}
	}
}
