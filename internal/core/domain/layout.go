package domain

const (
	// ShimPrefix is the name prefix that turns the binary into a compiler shim.
	ShimPrefix = "cdbgen-"

	// DatabaseFileName is the default name of the compilation database.
	DatabaseFileName = "compile_commands.json"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = ".cdbgen.yaml"

	// DatabaseEnvVar names the environment variable overriding the database path.
	DatabaseEnvVar = "CDBGEN"

	// ConfigEnvVar names the environment variable pointing at a configuration file.
	ConfigEnvVar = "CDBGEN_CONFIG"

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750
)

// DefaultSourceExtensions returns the file name suffixes recognized as source files.
func DefaultSourceExtensions() []string {
	return []string{".c", ".cc", ".cpp"}
}
