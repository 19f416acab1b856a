//go:build windows

package compdb

import (
	"math"
	"os"

	"golang.org/x/sys/windows"
)

// lockFile blocks until the lock on the whole of f is held.
func lockFile(f *os.File, mode lockMode) error {
	var flags uint32
	if mode == exclusiveLock {
		flags = windows.LOCKFILE_EXCLUSIVE_LOCK
	}
	ol := new(windows.Overlapped)
	return windows.LockFileEx(windows.Handle(f.Fd()), flags, 0, math.MaxUint32, math.MaxUint32, ol)
}

// unlockFile releases the lock. Closing the handle alone releases it lazily.
func unlockFile(f *os.File) error {
	ol := new(windows.Overlapped)
	return windows.UnlockFileEx(windows.Handle(f.Fd()), 0, math.MaxUint32, math.MaxUint32, ol)
}
