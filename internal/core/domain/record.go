package domain

import (
	"cmp"
	"slices"
)

// Record is one entry of a compilation database: the source File was compiled
// in Directory with the command line Arguments.
type Record struct {
	Directory string
	File      string
	Arguments []string
}

// RecordKey identifies the entity a Record describes.
// Two records with the same key describe the same compilation unit.
type RecordKey struct {
	Directory string
	File      string
}

// Key returns the identity of the record.
func (r Record) Key() RecordKey {
	return RecordKey{Directory: r.Directory, File: r.File}
}

// Equal reports whether both records carry the same directory, file and arguments.
func (r Record) Equal(other Record) bool {
	return r.Directory == other.Directory &&
		r.File == other.File &&
		slices.Equal(r.Arguments, other.Arguments)
}

// Clone returns a copy of the record that shares no memory with r.
func (r Record) Clone() Record {
	return Record{
		Directory: r.Directory,
		File:      r.File,
		Arguments: slices.Clone(r.Arguments),
	}
}

// Compiler returns the first argument of the command line, or "" if there is none.
func (r Record) Compiler() string {
	if len(r.Arguments) == 0 {
		return ""
	}
	return r.Arguments[0]
}

// CompareRecords orders records lexicographically by directory, file and arguments.
func CompareRecords(a, b Record) int {
	if c := cmp.Compare(a.Directory, b.Directory); c != 0 {
		return c
	}
	if c := cmp.Compare(a.File, b.File); c != 0 {
		return c
	}
	return slices.Compare(a.Arguments, b.Arguments)
}
