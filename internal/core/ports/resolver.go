package ports

// CompilerResolver defines the interface for mapping a shim name to a real compiler.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type CompilerResolver interface {
	// IsShim reports whether invokedAs names the compiler shim.
	IsShim(invokedAs string) bool

	// Resolve returns the path of the compiler the shim named invokedAs stands for.
	Resolve(invokedAs string) (string, error)
}
