package forms

import (
	"bytes"
	"embed"
	"io"
	"io/fs"
	"path"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Table is the modifier table of one species, as supplied in YAML.
type Table struct {
	Species string     `yaml:"species"`
	Forms   []FormSpec `yaml:"forms"`
}

// FormSpec lists one form and its per-attribute modifiers. Attributes
// without an entry are unchanged in that form.
type FormSpec struct {
	Name      string                 `yaml:"name"`
	Modifiers map[Attribute]Modifier `yaml:"modifiers,omitempty"`
}

//go:embed tables/*.yaml
var embeddedTables embed.FS

// DecodeTable reads one YAML table.
func DecodeTable(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var t Table
	if err := dec.Decode(&t); err != nil {
		return nil, errors.Wrap(err, "failed to decode form table")
	}
	return &t, nil
}

// LoadTables reads every *.yaml table in dir of fsys, sorted by file name.
func LoadTables(fsys fs.FS, dir string) ([]*Table, error) {
	paths, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list form tables in %s", dir)
	}
	sort.Strings(paths)

	tables := make([]*Table, 0, len(paths))
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, errors.FileNotOpened(p, err)
		}
		t, err := DecodeTable(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrapf(err, "form table %s", p)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// DefaultTables returns the tables shipped with the binary.
func DefaultTables() ([]*Table, error) {
	return LoadTables(embeddedTables, "tables")
}
