package shell_test

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cdbgen/internal/adapters/shell"
)

const launchEnv = "CDBGEN_TEST_LAUNCH"

// TestMain lets the test binary act as a shim that hands over to /bin/sh,
// so that process replacement can be observed from the parent test.
func TestMain(m *testing.M) {
	if os.Getenv(launchEnv) == "1" {
		os.Exit(runLaunch())
	}
	os.Exit(m.Run())
}

type discardLogger struct{}

func (discardLogger) Debug(string, ...any) {}
func (discardLogger) Info(string)          {}
func (discardLogger) Warn(string)          {}
func (discardLogger) Error(error)          {}

func runLaunch() int {
	script := `test "$CDBGEN_TEST_MARK" = handed-over && test "$1" = first && exit 7; exit 3`
	code, err := shell.NewLauncher(discardLogger{}).Launch(
		context.Background(),
		"/bin/sh",
		[]string{"-c", script, "sh", "first"},
		append(os.Environ(), "CDBGEN_TEST_MARK=handed-over"),
	)
	if err != nil {
		return 99
	}
	return code
}

func TestLauncher_ForwardsExitStatus(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}

	exe, err := os.Executable()
	require.NoError(t, err)

	cmd := exec.Command(exe) //nolint:gosec // re-executes the test binary
	cmd.Env = append(os.Environ(), launchEnv+"=1")
	err = cmd.Run()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected an exit error, got %v", err)
	assert.Equal(t, 7, exitErr.ExitCode())
}
