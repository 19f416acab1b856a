//go:build !unix && !windows

package compdb

import (
	"os"

	"go.trai.ch/cdbgen/internal/core/domain"
)

func lockFile(_ *os.File, _ lockMode) error {
	return domain.ErrLockUnsupported
}

func unlockFile(_ *os.File) error {
	return domain.ErrLockUnsupported
}
