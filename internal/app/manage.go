package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/cdbgen/internal/adapters/compdb" //nolint:depguard // Wired in app layer
	"go.trai.ch/cdbgen/internal/core/domain"
	"go.trai.ch/zerr"
)

// ShowOptions configures a Show call.
type ShowOptions struct {
	// Database overrides the configured database path.
	Database string
	// JSON prints the normalized database instead of a table.
	JSON bool
}

// Show prints the database to w.
func (a *App) Show(ctx context.Context, w io.Writer, opts ShowOptions) error {
	path := a.databasePath(opts.Database)
	set, err := a.db.Load(ctx, path)
	if err != nil {
		return err
	}

	encoded, err := compdb.Encode(set)
	if err != nil {
		return err
	}

	if opts.JSON {
		_, err := w.Write(encoded)
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("DIRECTORY", "FILE", "COMPILER")
	for _, r := range set.All() {
		t.Row(r.Directory, r.File, r.Compiler())
	}

	if set.Len() > 0 {
		if _, err := fmt.Fprintln(w, t.Render()); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "%s: %d records, digest %s\n", path, set.Len(), compdb.Digest(encoded))
	return err
}

// LinkOptions configures a Link call.
type LinkOptions struct {
	// Dir is the directory receiving the links. Defaults to the directory of the executable.
	Dir string
	// Compilers are the compiler names to create shims for.
	Compilers []string
	// Force replaces existing files.
	Force bool
}

// Link creates <prefix><compiler> symlinks to the running executable and
// returns the paths of the links it created.
func (a *App) Link(_ context.Context, opts LinkOptions) ([]string, error) {
	if len(opts.Compilers) == 0 {
		return nil, domain.ErrNoCommand
	}

	exe, err := a.executable()
	if err != nil {
		return nil, errors.Join(domain.ErrLinkFailed, err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	dir := opts.Dir
	if dir == "" {
		dir = filepath.Dir(exe)
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrLinkFailed, err), "dir", dir)
	}

	var created []string
	for _, compiler := range opts.Compilers {
		if compiler == "" || filepath.Base(compiler) != compiler {
			err := errors.Join(domain.ErrLinkFailed, zerr.New("compiler must be a bare command name"))
			return created, zerr.With(err, "compiler", compiler)
		}

		name := a.cfg.Prefix + compiler
		if runtime.GOOS == "windows" && filepath.Ext(name) != ".exe" {
			name += ".exe"
		}
		link := filepath.Join(dir, name)

		if _, err := os.Lstat(link); err == nil {
			if !opts.Force {
				a.logger.Warn(fmt.Sprintf("%s already exists, skipping", link))
				continue
			}
			if err := os.Remove(link); err != nil {
				return created, zerr.With(errors.Join(domain.ErrLinkFailed, err), "path", link)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return created, zerr.With(errors.Join(domain.ErrLinkFailed, err), "path", link)
		}

		if err := os.Symlink(exe, link); err != nil {
			return created, zerr.With(errors.Join(domain.ErrLinkFailed, err), "path", link)
		}
		a.logger.Debug("created shim", "path", link, "target", exe)
		created = append(created, link)
	}

	return created, nil
}

// Config prints the effective configuration as YAML.
func (a *App) Config(w io.Writer) error {
	out, err := a.cfg.YAML()
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
