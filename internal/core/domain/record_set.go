package domain

import (
	"iter"
	"slices"
)

// RecordSet is an ordered collection of unique records.
// The zero value is an empty set. Sets are never mutated in place.
type RecordSet struct {
	records []Record
}

// NewRecordSet builds a set from the given records.
// The records are copied, sorted with CompareRecords and deduplicated.
func NewRecordSet(records ...Record) RecordSet {
	if len(records) == 0 {
		return RecordSet{}
	}

	cloned := make([]Record, len(records))
	for i, r := range records {
		cloned[i] = r.Clone()
	}
	return normalize(cloned)
}

// normalize takes ownership of records.
func normalize(records []Record) RecordSet {
	slices.SortFunc(records, CompareRecords)
	records = slices.CompactFunc(records, Record.Equal)
	return RecordSet{records: records}
}

// Len returns the number of records in the set.
func (s RecordSet) Len() int {
	return len(s.records)
}

// Records returns a copy of the records in order.
func (s RecordSet) Records() []Record {
	out := make([]Record, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}
	return out
}

// All iterates over the records in order without copying them.
// Callers must not modify the yielded argument slices.
func (s RecordSet) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, r := range s.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Equal reports whether both sets contain exactly the same records.
func (s RecordSet) Equal(other RecordSet) bool {
	return slices.EqualFunc(s.records, other.records, Record.Equal)
}

// Lookup returns every record stored under key.
// A well-formed database holds at most one, but a hand-edited file may hold more.
func (s RecordSet) Lookup(key RecordKey) []Record {
	var out []Record
	for _, r := range s.records {
		if r.Key() == key {
			out = append(out, r.Clone())
		}
	}
	return out
}

// Supersede returns the set that results from recording inv.
// Every record of inv.Directory whose file is one of inv.Files is dropped, then
// one fresh record per file is added carrying inv.Arguments. Records of other
// directories and of files not named by inv are kept as they are.
func (s RecordSet) Supersede(inv Invocation) RecordSet {
	files := make(map[string]struct{}, len(inv.Files))
	for _, f := range inv.Files {
		files[f] = struct{}{}
	}

	next := make([]Record, 0, len(s.records)+len(files))
	for _, r := range s.records {
		if r.Directory == inv.Directory {
			if _, recompiled := files[r.File]; recompiled {
				continue
			}
		}
		next = append(next, r.Clone())
	}

	for f := range files {
		next = append(next, Record{
			Directory: inv.Directory,
			File:      f,
			Arguments: slices.Clone(inv.Arguments),
		})
	}

	return normalize(next)
}
