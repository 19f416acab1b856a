package domain

import (
	"path/filepath"
	"slices"
	"unicode/utf8"
)

// Invocation describes one compiler call to be recorded.
type Invocation struct {
	// Directory is the absolute working directory of the compiler call.
	Directory string
	// Arguments is the full command line, starting with the resolved compiler path.
	Arguments []string
	// Files are the source file arguments found in Arguments.
	Files []string
}

// Validate checks that the invocation can be recorded.
// Every string must be valid UTF-8, since JSON cannot carry anything else.
func (inv Invocation) Validate() error {
	if inv.Directory == "" || !filepath.IsAbs(inv.Directory) {
		return ErrInvalidInvocation
	}
	if len(inv.Arguments) == 0 {
		return ErrInvalidInvocation
	}
	if !utf8.ValidString(inv.Directory) || !allValid(inv.Arguments) || !allValid(inv.Files) {
		return ErrInvalidInvocation
	}
	return nil
}

func allValid(values []string) bool {
	return !slices.ContainsFunc(values, func(v string) bool {
		return !utf8.ValidString(v)
	})
}

// UniqueFiles returns the sorted, deduplicated file list.
func (inv Invocation) UniqueFiles() []string {
	files := slices.Clone(inv.Files)
	slices.Sort(files)
	return slices.Compact(files)
}

// SyncResult reports what a synchronization did to the database.
type SyncResult struct {
	// Changed is true if the database file was rewritten.
	Changed bool
	// Records is the number of records in the database after the call.
	Records int
	// Digest fingerprints the encoded database content after the call.
	Digest string
}
