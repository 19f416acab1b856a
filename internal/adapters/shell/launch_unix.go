//go:build unix

package shell

import (
	"errors"
	"syscall"

	"go.trai.ch/cdbgen/internal/core/domain"
	"go.trai.ch/zerr"
)

func launch(compiler string, args, env []string) (int, error) {
	argv := append([]string{compiler}, args...)
	err := syscall.Exec(compiler, argv, env) //nolint:gosec // the compiler is the command being wrapped
	return -1, zerr.With(errors.Join(domain.ErrLaunchFailed, err), "compiler", compiler)
}
