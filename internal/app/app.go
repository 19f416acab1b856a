// Package app implements the application layer for cdbgen.
package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/cdbgen/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/cdbgen/internal/core/domain"
	"go.trai.ch/cdbgen/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	cfg        *config.Config
	db         ports.CompilationDatabase
	resolver   ports.CompilerResolver
	detector   ports.SourceDetector
	launcher   ports.Launcher
	logger     ports.Logger
	getwd      func() (string, error)
	environ    func() []string
	executable func() (string, error)
}

// New creates a new App instance.
func New(
	cfg *config.Config,
	db ports.CompilationDatabase,
	resolver ports.CompilerResolver,
	detector ports.SourceDetector,
	launcher ports.Launcher,
	log ports.Logger,
) *App {
	return &App{
		cfg:        cfg,
		db:         db,
		resolver:   resolver,
		detector:   detector,
		launcher:   launcher,
		logger:     log,
		getwd:      os.Getwd,
		environ:    os.Environ,
		executable: os.Executable,
	}
}

// WithWorkingDir replaces the lookup of the current working directory.
// This is primarily used for testing.
func (a *App) WithWorkingDir(getwd func() (string, error)) *App {
	a.getwd = getwd
	return a
}

// WithEnviron replaces the environment handed to the compiler.
// This is primarily used for testing.
func (a *App) WithEnviron(environ func() []string) *App {
	a.environ = environ
	return a
}

// WithExecutable replaces the lookup of the running executable.
// This is primarily used for testing.
func (a *App) WithExecutable(executable func() (string, error)) *App {
	a.executable = executable
	return a
}

// IsShim reports whether the process was started under a shim name.
func (a *App) IsShim(invokedAs string) bool {
	return a.resolver.IsShim(invokedAs)
}

// Intercept runs the shim: it records the compilation described by argv,
// then hands over to the real compiler. argv[0] is the shim name.
//
// Nothing is launched if the compiler cannot be resolved or the database
// cannot be updated. On platforms where the compiler replaces the process,
// Intercept only returns on failure.
func (a *App) Intercept(ctx context.Context, argv []string) (int, error) {
	if len(argv) == 0 {
		return 1, domain.ErrNoCommand
	}

	compiler, err := a.resolver.Resolve(argv[0])
	if err != nil {
		return 1, err
	}
	args := argv[1:]

	files := a.detector.Sources(args)
	if len(files) == 0 {
		a.logger.Debug("no source files on the command line", "compiler", compiler)
	} else {
		dir, err := a.workingDir()
		if err != nil {
			return 1, err
		}
		inv := domain.Invocation{
			Directory: dir,
			Arguments: append([]string{compiler}, args...),
			Files:     files,
		}
		if _, err := a.db.Synchronize(ctx, a.cfg.Database, inv); err != nil {
			return 1, err
		}
	}

	return a.launcher.Launch(ctx, compiler, args, a.environ())
}

// RecordOptions configures a Record call.
type RecordOptions struct {
	// Database overrides the configured database path.
	Database string
	// Directory overrides the current working directory.
	Directory string
	// Command is the compiler command line, recorded verbatim.
	Command []string
}

// Record stores one compiler command line without running it.
// A command line without source files leaves the database alone.
func (a *App) Record(ctx context.Context, opts RecordOptions) (domain.SyncResult, error) {
	if len(opts.Command) == 0 {
		return domain.SyncResult{}, domain.ErrNoCommand
	}

	dir := opts.Directory
	if dir == "" {
		var err error
		if dir, err = a.workingDir(); err != nil {
			return domain.SyncResult{}, err
		}
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return domain.SyncResult{}, errors.Join(domain.ErrWorkingDirFailed, err)
	}

	files := a.detector.Sources(opts.Command[1:])
	if len(files) == 0 {
		a.logger.Info("no source files on the command line, nothing recorded")
		return domain.SyncResult{}, nil
	}

	inv := domain.Invocation{
		Directory: dir,
		Arguments: slices.Clone(opts.Command),
		Files:     files,
	}
	return a.db.Synchronize(ctx, a.databasePath(opts.Database), inv)
}

func (a *App) workingDir() (string, error) {
	dir, err := a.getwd()
	if err != nil {
		return "", errors.Join(domain.ErrWorkingDirFailed, err)
	}
	if !filepath.IsAbs(dir) {
		err := errors.Join(domain.ErrInvalidInvocation, zerr.New("working directory is not absolute"))
		return "", zerr.With(err, "directory", dir)
	}
	return dir, nil
}

func (a *App) databasePath(override string) string {
	if override == "" {
		return a.cfg.Database
	}
	abs, err := filepath.Abs(override)
	if err != nil {
		return override
	}
	return abs
}
