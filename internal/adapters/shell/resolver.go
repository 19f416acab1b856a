// Package shell finds the real compiler behind a shim name and runs it.
package shell

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/cdbgen/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver implements ports.CompilerResolver.
// A shim named <prefix><compiler> resolves to <compiler> on PATH.
type Resolver struct {
	prefix  string
	environ func() []string
}

// NewResolver creates a Resolver for the given shim prefix that searches the
// PATH of the current process.
func NewResolver(prefix string) *Resolver {
	return &Resolver{
		prefix:  prefix,
		environ: os.Environ,
	}
}

// IsShim reports whether invokedAs names a shim.
func (r *Resolver) IsShim(invokedAs string) bool {
	_, ok := r.target(invokedAs)
	return ok
}

// Resolve returns the absolute path of the compiler the shim stands for.
func (r *Resolver) Resolve(invokedAs string) (string, error) {
	name, ok := r.target(invokedAs)
	if !ok {
		err := errors.Join(domain.ErrMissingPrefix, zerr.New(filepath.Base(invokedAs)))
		return "", zerr.With(err, "prefix", r.prefix)
	}

	path, err := r.lookup(name)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrCompilerNotFound, err), "compiler", name)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrCompilerNotFound, err), "compiler", name)
	}
	return abs, nil
}

// target strips the prefix from the base name of invokedAs.
func (r *Resolver) target(invokedAs string) (string, bool) {
	base := filepath.Base(invokedAs)
	name, ok := strings.CutPrefix(base, r.prefix)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

func (r *Resolver) lookup(name string) (string, error) {
	if runtime.GOOS == "windows" {
		return exec.LookPath(name)
	}
	return lookPath(name, r.environ())
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
