// Package schema validates response bodies against JSON Schema documents that are looked
// up by name in a file-based store.
package schema

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const fileExtension = ".json"

// ErrUnknownSchema is returned when the store has no document with the requested name.
var ErrUnknownSchema = errors.New("unknown schema")

// Store provides schema documents by logical name. The document for a name is the file
// "<name>.json" at the root of the file system. Documents are read each time they are
// used, and never modified.
type Store struct {
	fsys fs.FS
}

// NewStore creates a Store that reads from the specified file system, such as the result
// of os.DirFS.
func NewStore(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// Names returns the names of all schema documents in the store, in sorted order.
func (s *Store) Names() ([]string, error) {
	matches, err := fs.Glob(s.fsys, "*"+fileExtension)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(m, fileExtension))
	}
	sort.Strings(names)
	return names, nil
}

// Load reads and compiles the named schema document.
func (s *Store) Load(name string) (*gojsonschema.Schema, error) {
	fileName := name + fileExtension
	if name == "" || strings.Contains(name, "/") || !fs.ValidPath(fileName) {
		return nil, fmt.Errorf("invalid schema name %q", name)
	}
	data, err := fs.ReadFile(s.fsys, fileName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w %q", ErrUnknownSchema, name)
		}
		return nil, fmt.Errorf("reading schema %q: %w", name, err)
	}
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("schema %q is not a valid JSON Schema: %w", name, err)
	}
	return compiled, nil
}

// Validate checks a JSON document against the named schema.
//
// It returns nil if the document conforms, or a *Violation listing every failed
// constraint. Any other error means that validation could not be done at all: the schema
// is missing or malformed, or the document is not JSON.
func (s *Store) Validate(name string, document []byte) error {
	compiled, err := s.Load(name)
	if err != nil {
		return err
	}
	result, err := compiled.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return fmt.Errorf("could not validate document against schema %q: %w", name, err)
	}
	if result.Valid() {
		return nil
	}
	v := &Violation{Schema: name}
	for _, e := range result.Errors() {
		v.Constraints = append(v.Constraints, Constraint{
			Field:       e.Field(),
			Keyword:     e.Type(),
			Description: e.Description(),
		})
	}
	return v
}
