package app_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cdbgen/internal/adapters/config"
	"go.trai.ch/cdbgen/internal/app"
	"go.trai.ch/cdbgen/internal/core/domain"
	"go.trai.ch/cdbgen/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app      *app.App
	cfg      *config.Config
	db       *mocks.MockCompilationDatabase
	resolver *mocks.MockCompilerResolver
	detector *mocks.MockSourceDetector
	launcher *mocks.MockLauncher
	logger   *mocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	cfg := config.Default()
	cfg.Database = "/src/compile_commands.json"

	f := &fixture{
		cfg:      cfg,
		db:       mocks.NewMockCompilationDatabase(ctrl),
		resolver: mocks.NewMockCompilerResolver(ctrl),
		detector: mocks.NewMockSourceDetector(ctrl),
		launcher: mocks.NewMockLauncher(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	f.app = app.New(cfg, f.db, f.resolver, f.detector, f.launcher, f.logger).
		WithWorkingDir(func() (string, error) { return "/src", nil }).
		WithEnviron(func() []string { return []string{"PATH=/usr/bin"} })
	return f
}

func TestApp_Intercept(t *testing.T) {
	t.Run("records then launches", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		args := []string{"-c", "a.c", "-o", "a.o"}

		gomock.InOrder(
			f.resolver.EXPECT().Resolve("cdbgen-cc").Return("/usr/bin/cc", nil),
			f.detector.EXPECT().Sources(args).Return([]string{"a.c"}),
			f.db.EXPECT().Synchronize(ctx, "/src/compile_commands.json", domain.Invocation{
				Directory: "/src",
				Arguments: []string{"/usr/bin/cc", "-c", "a.c", "-o", "a.o"},
				Files:     []string{"a.c"},
			}).Return(domain.SyncResult{Changed: true, Records: 1}, nil),
			f.launcher.EXPECT().Launch(ctx, "/usr/bin/cc", args, []string{"PATH=/usr/bin"}).Return(0, nil),
		)

		code, err := f.app.Intercept(ctx, append([]string{"cdbgen-cc"}, args...))
		require.NoError(t, err)
		assert.Equal(t, 0, code)
	})

	t.Run("forwards the compiler exit code", func(t *testing.T) {
		f := newFixture(t)
		f.resolver.EXPECT().Resolve(gomock.Any()).Return("/usr/bin/cc", nil)
		f.detector.EXPECT().Sources(gomock.Any()).Return([]string{"a.c"})
		f.db.EXPECT().Synchronize(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.SyncResult{}, nil)
		f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(2, nil)

		code, err := f.app.Intercept(context.Background(), []string{"cdbgen-cc", "a.c"})
		require.NoError(t, err)
		assert.Equal(t, 2, code)
	})

	t.Run("skips the database without source files", func(t *testing.T) {
		f := newFixture(t)
		f.resolver.EXPECT().Resolve("cdbgen-cc").Return("/usr/bin/cc", nil)
		f.detector.EXPECT().Sources([]string{"a.o", "-o", "app"}).Return(nil)
		f.logger.EXPECT().Debug(gomock.Any(), gomock.Any())
		f.launcher.EXPECT().Launch(gomock.Any(), "/usr/bin/cc", []string{"a.o", "-o", "app"}, gomock.Any()).Return(0, nil)

		code, err := f.app.Intercept(context.Background(), []string{"cdbgen-cc", "a.o", "-o", "app"})
		require.NoError(t, err)
		assert.Equal(t, 0, code)
	})

	t.Run("does not launch when the compiler is missing", func(t *testing.T) {
		f := newFixture(t)
		f.resolver.EXPECT().Resolve("cdbgen-nope").Return("", domain.ErrCompilerNotFound)

		code, err := f.app.Intercept(context.Background(), []string{"cdbgen-nope", "a.c"})
		require.ErrorIs(t, err, domain.ErrCompilerNotFound)
		assert.Equal(t, 1, code)
	})

	t.Run("does not launch when recording fails", func(t *testing.T) {
		f := newFixture(t)
		f.resolver.EXPECT().Resolve(gomock.Any()).Return("/usr/bin/cc", nil)
		f.detector.EXPECT().Sources(gomock.Any()).Return([]string{"a.c"})
		f.db.EXPECT().Synchronize(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.SyncResult{}, domain.ErrDatabaseMalformed)

		code, err := f.app.Intercept(context.Background(), []string{"cdbgen-cc", "a.c"})
		require.ErrorIs(t, err, domain.ErrDatabaseMalformed)
		assert.Equal(t, 1, code)
	})

	t.Run("working directory failure", func(t *testing.T) {
		f := newFixture(t)
		f.app.WithWorkingDir(func() (string, error) { return "", errors.New("gone") })
		f.resolver.EXPECT().Resolve(gomock.Any()).Return("/usr/bin/cc", nil)
		f.detector.EXPECT().Sources(gomock.Any()).Return([]string{"a.c"})

		_, err := f.app.Intercept(context.Background(), []string{"cdbgen-cc", "a.c"})
		require.ErrorIs(t, err, domain.ErrWorkingDirFailed)
	})

	t.Run("empty argv", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.app.Intercept(context.Background(), nil)
		require.ErrorIs(t, err, domain.ErrNoCommand)
	})
}

func TestApp_IsShim(t *testing.T) {
	f := newFixture(t)
	f.resolver.EXPECT().IsShim("cdbgen-cc").Return(true)
	assert.True(t, f.app.IsShim("cdbgen-cc"))
}

func TestApp_Record(t *testing.T) {
	t.Run("records verbatim in the working directory", func(t *testing.T) {
		f := newFixture(t)
		cmd := []string{"clang", "-c", "b.cc"}
		f.detector.EXPECT().Sources([]string{"-c", "b.cc"}).Return([]string{"b.cc"})
		f.db.EXPECT().Synchronize(gomock.Any(), "/src/compile_commands.json", domain.Invocation{
			Directory: "/src",
			Arguments: cmd,
			Files:     []string{"b.cc"},
		}).Return(domain.SyncResult{Changed: true, Records: 4}, nil)

		res, err := f.app.Record(context.Background(), app.RecordOptions{Command: cmd})
		require.NoError(t, err)
		assert.Equal(t, 4, res.Records)
	})

	t.Run("honours overrides", func(t *testing.T) {
		f := newFixture(t)
		dir := t.TempDir()
		db := filepath.Join(dir, "db.json")
		f.detector.EXPECT().Sources(gomock.Any()).Return([]string{"a.c"})
		f.db.EXPECT().Synchronize(gomock.Any(), db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, inv domain.Invocation) (domain.SyncResult, error) {
				assert.Equal(t, dir, inv.Directory)
				return domain.SyncResult{}, nil
			})

		_, err := f.app.Record(context.Background(), app.RecordOptions{
			Database:  db,
			Directory: dir,
			Command:   []string{"cc", "a.c"},
		})
		require.NoError(t, err)
	})

	t.Run("nothing to record", func(t *testing.T) {
		f := newFixture(t)
		f.detector.EXPECT().Sources(gomock.Any()).Return(nil)
		f.logger.EXPECT().Info(gomock.Any())

		res, err := f.app.Record(context.Background(), app.RecordOptions{Command: []string{"cc", "--version"}})
		require.NoError(t, err)
		assert.False(t, res.Changed)
	})

	t.Run("empty command", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.app.Record(context.Background(), app.RecordOptions{})
		require.ErrorIs(t, err, domain.ErrNoCommand)
	})
}

func TestApp_Show(t *testing.T) {
	set := domain.NewRecordSet(
		domain.Record{Directory: "/src", File: "a.c", Arguments: []string{"/usr/bin/cc", "-c", "a.c"}},
		domain.Record{Directory: "/src", File: "b.cpp", Arguments: []string{"/usr/bin/c++", "-c", "b.cpp"}},
	)

	t.Run("table", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().Load(gomock.Any(), "/src/compile_commands.json").Return(set, nil)

		var buf bytes.Buffer
		require.NoError(t, f.app.Show(context.Background(), &buf, app.ShowOptions{}))

		out := buf.String()
		assert.Contains(t, out, "DIRECTORY")
		assert.Contains(t, out, "b.cpp")
		assert.Contains(t, out, "/usr/bin/c++")
		assert.Contains(t, out, "/src/compile_commands.json: 2 records, digest ")
	})

	t.Run("json", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().Load(gomock.Any(), gomock.Any()).Return(set, nil)

		var buf bytes.Buffer
		require.NoError(t, f.app.Show(context.Background(), &buf, app.ShowOptions{JSON: true}))

		assert.True(t, strings.HasPrefix(buf.String(), "[\n"))
		assert.Contains(t, buf.String(), `"file": "b.cpp"`)
	})

	t.Run("empty database", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().Load(gomock.Any(), gomock.Any()).Return(domain.RecordSet{}, nil)

		var buf bytes.Buffer
		require.NoError(t, f.app.Show(context.Background(), &buf, app.ShowOptions{}))
		assert.NotContains(t, buf.String(), "DIRECTORY")
		assert.Contains(t, buf.String(), ": 0 records")
	})

	t.Run("load failure", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().Load(gomock.Any(), gomock.Any()).Return(domain.RecordSet{}, domain.ErrDatabaseMalformed)

		err := f.app.Show(context.Background(), &bytes.Buffer{}, app.ShowOptions{})
		require.ErrorIs(t, err, domain.ErrDatabaseMalformed)
	})
}

func TestApp_Link(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	newLinkFixture := func(t *testing.T) (*fixture, string) {
		t.Helper()
		f := newFixture(t)
		exe := filepath.Join(t.TempDir(), "cdbgen")
		require.NoError(t, os.WriteFile(exe, []byte("binary"), 0o755))
		f.app.WithExecutable(func() (string, error) { return exe, nil })
		f.logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
		return f, exe
	}

	t.Run("creates links next to the executable", func(t *testing.T) {
		f, exe := newLinkFixture(t)
		exe, err := filepath.EvalSymlinks(exe)
		require.NoError(t, err)

		created, err := f.app.Link(context.Background(), app.LinkOptions{Compilers: []string{"cc", "c++"}})
		require.NoError(t, err)
		require.Len(t, created, 2)

		for _, name := range []string{"cdbgen-cc", "cdbgen-c++"} {
			target, err := os.Readlink(filepath.Join(filepath.Dir(exe), name))
			require.NoError(t, err)
			assert.Equal(t, exe, target)
		}
	})

	t.Run("keeps existing files unless forced", func(t *testing.T) {
		f, _ := newLinkFixture(t)
		dir := t.TempDir()
		existing := filepath.Join(dir, "cdbgen-cc")
		require.NoError(t, os.WriteFile(existing, []byte("mine"), 0o644))
		f.logger.EXPECT().Warn(gomock.Any())

		created, err := f.app.Link(context.Background(), app.LinkOptions{Dir: dir, Compilers: []string{"cc"}})
		require.NoError(t, err)
		assert.Empty(t, created)
		data, err := os.ReadFile(existing)
		require.NoError(t, err)
		assert.Equal(t, "mine", string(data))

		created, err = f.app.Link(context.Background(), app.LinkOptions{Dir: dir, Compilers: []string{"cc"}, Force: true})
		require.NoError(t, err)
		assert.Equal(t, []string{existing}, created)
		data, err = os.ReadFile(existing)
		require.NoError(t, err)
		assert.Equal(t, "binary", string(data))
	})

	t.Run("rejects paths", func(t *testing.T) {
		f, _ := newLinkFixture(t)
		_, err := f.app.Link(context.Background(), app.LinkOptions{Dir: t.TempDir(), Compilers: []string{"../cc"}})
		require.ErrorIs(t, err, domain.ErrLinkFailed)
	})

	t.Run("needs a compiler", func(t *testing.T) {
		f, _ := newLinkFixture(t)
		_, err := f.app.Link(context.Background(), app.LinkOptions{})
		require.ErrorIs(t, err, domain.ErrNoCommand)
	})
}

func TestApp_Config(t *testing.T) {
	f := newFixture(t)

	var buf bytes.Buffer
	require.NoError(t, f.app.Config(&buf))
	assert.Contains(t, buf.String(), "database: /src/compile_commands.json\n")
	assert.Contains(t, buf.String(), "prefix: cdbgen-\n")
}
