package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"go.trai.ch/cdbgen/internal/core/domain"
	"go.trai.ch/cdbgen/internal/core/ports"
	"go.trai.ch/zerr"
)

// Launcher implements ports.Launcher.
//
// Where the platform allows it the compiler replaces the current process and
// Launch does not return on success. Elsewhere the compiler runs as a child
// with the inherited standard streams and its exit code is returned.
type Launcher struct {
	logger ports.Logger
}

// NewLauncher creates a new Launcher.
func NewLauncher(logger ports.Logger) *Launcher {
	return &Launcher{logger: logger}
}

// Launch runs compiler with args and env. argv[0] of the compiler is compiler itself.
func (l *Launcher) Launch(_ context.Context, compiler string, args, env []string) (int, error) {
	l.logger.Debug("launching compiler", "compiler", compiler, "args", len(args))
	return launch(compiler, args, env)
}

// spawn runs the compiler as a child process and waits for it.
func spawn(compiler string, args, env []string) (int, error) {
	cmd := exec.Command(compiler, args...) //nolint:gosec // the compiler is the command being wrapped
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Terminated by a signal.
			code = 1
		}
		return code, nil
	}

	return -1, zerr.With(errors.Join(domain.ErrLaunchFailed, err), "compiler", compiler)
}
