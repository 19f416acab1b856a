package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cdbgen/internal/core/domain"
)

func TestCompareRecords(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.Record
		want int
	}{
		{
			name: "equal records",
			a:    domain.Record{Directory: "/src", File: "a.c", Arguments: []string{"cc", "a.c"}},
			b:    domain.Record{Directory: "/src", File: "a.c", Arguments: []string{"cc", "a.c"}},
			want: 0,
		},
		{
			name: "directory decides first",
			a:    domain.Record{Directory: "/a", File: "z.c"},
			b:    domain.Record{Directory: "/b", File: "a.c"},
			want: -1,
		},
		{
			name: "file decides second",
			a:    domain.Record{Directory: "/src", File: "b.c", Arguments: []string{"a"}},
			b:    domain.Record{Directory: "/src", File: "a.c", Arguments: []string{"z"}},
			want: 1,
		},
		{
			name: "arguments compare element-wise",
			a:    domain.Record{Directory: "/src", File: "a.c", Arguments: []string{"cc", "-O2"}},
			b:    domain.Record{Directory: "/src", File: "a.c", Arguments: []string{"cc", "-O3"}},
			want: -1,
		},
		{
			name: "shorter argument prefix sorts first",
			a:    domain.Record{Directory: "/src", File: "a.c", Arguments: []string{"cc"}},
			b:    domain.Record{Directory: "/src", File: "a.c", Arguments: []string{"cc", "-c"}},
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CompareRecords(tt.a, tt.b))
			assert.Equal(t, -tt.want, domain.CompareRecords(tt.b, tt.a))
		})
	}
}

func TestRecord_KeyIgnoresArguments(t *testing.T) {
	a := domain.Record{Directory: "/src", File: "a.c", Arguments: []string{"cc", "-O2"}}
	b := domain.Record{Directory: "/src", File: "a.c", Arguments: []string{"cc", "-O3"}}

	assert.Equal(t, a.Key(), b.Key())
	assert.False(t, a.Equal(b))
}

func TestRecord_Clone(t *testing.T) {
	r := domain.Record{Directory: "/src", File: "a.c", Arguments: []string{"cc", "a.c"}}
	c := r.Clone()
	c.Arguments[0] = "gcc"

	assert.Equal(t, "cc", r.Arguments[0])
	assert.Equal(t, "cc", r.Compiler())
	assert.Empty(t, domain.Record{}.Compiler())
}

func TestRecord_SortIsDeterministic(t *testing.T) {
	records := []domain.Record{
		{Directory: "/b", File: "a.c", Arguments: []string{"cc"}},
		{Directory: "/a", File: "b.c", Arguments: []string{"cc"}},
		{Directory: "/a", File: "a.c", Arguments: []string{"cc", "-g"}},
		{Directory: "/a", File: "a.c", Arguments: []string{"cc"}},
	}
	reversed := slices.Clone(records)
	slices.Reverse(reversed)

	slices.SortFunc(records, domain.CompareRecords)
	slices.SortFunc(reversed, domain.CompareRecords)

	assert.Equal(t, records, reversed)
	assert.Equal(t, "/a", records[0].Directory)
	assert.Equal(t, []string{"cc"}, records[0].Arguments)
}
