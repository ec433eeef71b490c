package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/eglconfig"
)

// ErrMalformed is returned for profile entries that are not
// [attribute, value] pairs.
var ErrMalformed = errors.New("profile: malformed entry")

// file is the on-disk layout of a profile file.
type file struct {
	Profiles []fileProfile `toml:"profile"`
}

type fileProfile struct {
	Name           string  `toml:"name"`
	RenderableType any     `toml:"renderable_type"`
	SurfaceType    any     `toml:"surface_type"`
	Attribs        [][]any `toml:"attribs"`
}

// DefaultPath returns the default profile file location.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "eglselect", "profiles.toml")
}

// Parse decodes TOML profile definitions.
func Parse(data []byte) ([]eglconfig.Requirements, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("profile: parse: %w", err)
	}

	out := make([]eglconfig.Requirements, 0, len(f.Profiles))
	for i, fp := range f.Profiles {
		req, err := fp.requirements()
		if err != nil {
			name := fp.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i+1)
			}
			return nil, fmt.Errorf("profile %s: %w", name, err)
		}
		out = append(out, req)
	}
	return out, nil
}

func (fp fileProfile) requirements() (eglconfig.Requirements, error) {
	req := eglconfig.Requirements{Name: fp.Name}
	if req.Name == "" {
		return req, ErrUnnamed
	}

	var err error
	if req.RenderableType, err = mask(eglconfig.RenderableType, fp.RenderableType); err != nil {
		return req, err
	}
	if req.SurfaceType, err = mask(eglconfig.SurfaceType, fp.SurfaceType); err != nil {
		return req, err
	}

	for i, entry := range fp.Attribs {
		if len(entry) != 2 {
			return req, fmt.Errorf("%w: attribs[%d] has %d elements", ErrMalformed, i, len(entry))
		}
		name, ok := entry[0].(string)
		if !ok {
			return req, fmt.Errorf("%w: attribs[%d] name is %T", ErrMalformed, i, entry[0])
		}
		a, err := eglconfig.ParseAttrib(name)
		if err != nil {
			return req, err
		}
		v, err := eglconfig.DecodeValue(a, entry[1])
		if err != nil {
			return req, err
		}
		req.Attribs = append(req.Attribs, eglconfig.Pair{Attrib: a, Value: v})
	}
	return req, req.Validate()
}

func mask(a eglconfig.Attrib, raw any) (int32, error) {
	if raw == nil {
		return 0, nil
	}
	return eglconfig.DecodeValue(a, raw)
}

// LoadFile reads the profiles in path and registers them in r. Profiles
// with a built-in name replace the built-in.
func (r *Registry) LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	reqs, err := Parse(data)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(reqs))
	for _, req := range reqs {
		if err := r.Register(req); err != nil {
			return names, err
		}
		names = append(names, req.Name)
	}
	eglconfig.Logger().Debug("profile: loaded", "path", path, "profiles", names)
	return names, nil
}

// LoadFile loads profiles from path into the global registry.
func LoadFile(path string) ([]string, error) {
	return globalRegistry.LoadFile(path)
}

// LoadDefault loads DefaultPath into the global registry. A missing file is
// not an error.
func LoadDefault() ([]string, error) {
	path := DefaultPath()
	if path == "" {
		return nil, nil
	}
	names, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return names, err
}
