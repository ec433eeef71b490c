// Package table provides an in-memory eglconfig.Provider.
//
// A Table is an ordered list of attribute sets, usually loaded from a YAML
// dump of a device's configurations:
//
//	configs:
//	  - id: 1
//	    attribs:
//	      RENDERABLE_TYPE: ES2|ES3
//	      SURFACE_TYPE: WINDOW|PBUFFER
//	      RED_SIZE: 8
//	      DEPTH_SIZE: 24
//
// Tables let the selector run against recorded hardware without an EGL
// display, for tooling and tests.
package table

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/eglconfig"
)

// Table errors.
var (
	// ErrBadConfig is returned by Attrib for a handle the table did not issue.
	ErrBadConfig = errors.New("table: bad config handle")

	// ErrDuplicateID is returned when two entries share an EGL_CONFIG_ID.
	ErrDuplicateID = errors.New("table: duplicate config id")

	// ErrDuplicateAttrib is returned when one entry sets an attribute twice,
	// e.g. as RED_SIZE and EGL_RED_SIZE.
	ErrDuplicateAttrib = errors.New("table: attribute set twice")
)

// Entry holds the attributes of one configuration. Attributes not present
// read as zero.
type Entry map[eglconfig.Attrib]int32

// Table is an eglconfig.Provider over a fixed list of entries. Entry i is
// exposed as eglconfig.Config(i+1); enumeration follows list order.
type Table struct {
	entries []Entry
}

// New creates a table from entries. An entry without EGL_CONFIG_ID gets its
// one-based position as id.
func New(entries ...Entry) (*Table, error) {
	t := &Table{entries: make([]Entry, len(entries))}
	seen := make(map[int32]bool, len(entries))
	for i, e := range entries {
		cp := make(Entry, len(e)+1)
		for a, v := range e {
			cp[a] = v
		}
		if _, ok := cp[eglconfig.ConfigID]; !ok {
			cp[eglconfig.ConfigID] = int32(i + 1)
		}
		id := cp[eglconfig.ConfigID]
		if seen[id] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, id)
		}
		seen[id] = true
		t.entries[i] = cp
	}
	return t, nil
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Configs implements eglconfig.Provider.
func (t *Table) Configs() ([]eglconfig.Config, error) {
	out := make([]eglconfig.Config, len(t.entries))
	for i := range t.entries {
		out[i] = eglconfig.Config(i + 1)
	}
	return out, nil
}

// Attrib implements eglconfig.Provider.
func (t *Table) Attrib(c eglconfig.Config, a eglconfig.Attrib) (int32, error) {
	i := int(c) - 1
	if i < 0 || i >= len(t.entries) {
		return 0, fmt.Errorf("%w: %#x", ErrBadConfig, uintptr(c))
	}
	return t.entries[i][a], nil
}

// Lookup returns the handle of the entry whose EGL_CONFIG_ID is id.
func (t *Table) Lookup(id int32) (eglconfig.Config, bool) {
	for i, e := range t.entries {
		if e[eglconfig.ConfigID] == id {
			return eglconfig.Config(i + 1), true
		}
	}
	return eglconfig.NoConfig, false
}

// file is the on-disk layout.
type file struct {
	Configs []fileEntry `yaml:"configs"`
}

type fileEntry struct {
	ID      *int32         `yaml:"id,omitempty"`
	Attribs map[string]any `yaml:"attribs"`
}

// Parse decodes a YAML table.
func Parse(data []byte) (*Table, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("table: parse: %w", err)
	}

	entries := make([]Entry, 0, len(f.Configs))
	for i, fe := range f.Configs {
		e := make(Entry, len(fe.Attribs)+1)
		for name, raw := range fe.Attribs {
			a, err := eglconfig.ParseAttrib(name)
			if err != nil {
				return nil, fmt.Errorf("table: config #%d: %w", i+1, err)
			}
			if _, dup := e[a]; dup {
				return nil, fmt.Errorf("%w: config #%d: %s", ErrDuplicateAttrib, i+1, a)
			}
			v, err := eglconfig.DecodeValue(a, raw)
			if err != nil {
				return nil, fmt.Errorf("table: config #%d: %w", i+1, err)
			}
			e[a] = v
		}
		if fe.ID != nil {
			if _, dup := e[eglconfig.ConfigID]; dup {
				return nil, fmt.Errorf("%w: config #%d: id and %s", ErrDuplicateAttrib, i+1, eglconfig.ConfigID)
			}
			e[eglconfig.ConfigID] = *fe.ID
		}
		entries = append(entries, e)
	}
	return New(entries...)
}

// Load reads and parses the YAML table at path.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, err
	}
	eglconfig.Logger().Debug("table: loaded", "path", path, "configs", t.Len())
	return t, nil
}
