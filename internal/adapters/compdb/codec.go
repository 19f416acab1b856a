package compdb

import (
	"bytes"
	"errors"

	"github.com/goccy/go-json"
	"go.trai.ch/cdbgen/internal/core/domain"
	"go.trai.ch/zerr"
)

// entry is the on-disk shape of a record.
// Fields are pointers on decode so that missing keys can be told apart from empty values.
type entry struct {
	Directory *string   `json:"directory"`
	File      *string   `json:"file"`
	Arguments *[]string `json:"arguments"`
}

// UnmarshalJSON rejects objects that repeat a key before decoding them.
func (e *entry) UnmarshalJSON(data []byte) error {
	if err := rejectDuplicateKeys(data); err != nil {
		return err
	}
	type plain entry
	return json.Unmarshal(data, (*plain)(e))
}

func rejectDuplicateKeys(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return nil
	}

	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		if _, dup := seen[key]; dup {
			return zerr.With(zerr.New("duplicate key in entry"), "key", key)
		}
		seen[key] = struct{}{}

		if err := skipValue(dec); err != nil {
			return err
		}
	}
	return nil
}

// skipValue consumes the next value, however deeply nested.
func skipValue(dec *json.Decoder) error {
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch tok {
		case json.Delim('{'), json.Delim('['):
			depth++
		case json.Delim('}'), json.Delim(']'):
			depth--
		}
		if depth == 0 {
			return nil
		}
	}
}

// Encode serializes the set as a pretty-printed JSON array with a trailing newline.
// Records appear in the order of the set, so equal sets encode to equal bytes.
func Encode(set domain.RecordSet) ([]byte, error) {
	entries := make([]entry, 0, set.Len())
	for _, r := range set.All() {
		args := r.Arguments
		if args == nil {
			args = []string{}
		}
		entries = append(entries, entry{
			Directory: &r.Directory,
			File:      &r.File,
			Arguments: &args,
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return nil, errors.Join(domain.ErrDatabaseEncodeFailed, err)
	}
	return buf.Bytes(), nil
}

// Decode parses database content into a record set.
// Empty or whitespace-only content is the empty set.
func Decode(data []byte) (domain.RecordSet, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return domain.RecordSet{}, nil
	}
	if trimmed[0] != '[' {
		return domain.RecordSet{}, errors.Join(domain.ErrDatabaseMalformed, zerr.New("top level is not an array"))
	}

	var entries []*entry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return domain.RecordSet{}, errors.Join(domain.ErrDatabaseMalformed, err)
	}

	records := make([]domain.Record, 0, len(entries))
	for i, e := range entries {
		if e == nil || e.Directory == nil || e.File == nil || e.Arguments == nil {
			err := errors.Join(domain.ErrDatabaseMalformed, zerr.New("entry misses directory, file or arguments"))
			return domain.RecordSet{}, zerr.With(err, "index", i)
		}
		records = append(records, domain.Record{
			Directory: *e.Directory,
			File:      *e.File,
			Arguments: *e.Arguments,
		})
	}

	return domain.NewRecordSet(records...), nil
}
