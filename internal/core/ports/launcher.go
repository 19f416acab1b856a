package ports

import "context"

// Launcher defines the interface for handing control to the real compiler.
//
//go:generate mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type Launcher interface {
	// Launch runs compiler with args and env.
	//
	// Where the platform supports it the current process image is replaced and
	// Launch only returns on failure. Otherwise the compiler runs as a child and
	// its exit code is returned for the caller to exit with.
	Launch(ctx context.Context, compiler string, args, env []string) (int, error)
}
