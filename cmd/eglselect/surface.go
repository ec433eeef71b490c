package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/eglconfig"
	"github.com/gogpu/eglconfig/profile"
)

// surfaceFormats maps --surface-format values to texture formats.
var surfaceFormats = map[string]gputypes.TextureFormat{
	"rgba8": gputypes.TextureFormatRGBA8Unorm,
	"bgra8": gputypes.TextureFormatBGRA8Unorm,
	"r8":    gputypes.TextureFormatR8Unorm,
}

// hostSurface stands in for the host's device when only its presentation
// format is known, as on the command line.
type hostSurface struct {
	format gputypes.TextureFormat
}

func (hostSurface) Device() gpucontext.Device               { return nil }
func (hostSurface) Queue() gpucontext.Queue                 { return nil }
func (hostSurface) Adapter() gpucontext.Adapter             { return nil }
func (h hostSurface) SurfaceFormat() gputypes.TextureFormat { return h.format }

var _ gpucontext.DeviceProvider = hostSurface{}

// selectorFor builds a selector for the named profile. A non-empty
// surfaceFormat replaces the profile's channel sizes with the format's.
func selectorFor(profileName, surfaceFormat string) (*eglconfig.Selector, error) {
	if surfaceFormat == "" {
		return profile.Selector(profileName)
	}

	req, ok := profile.Get(profileName)
	if !ok {
		return nil, &profile.NotFoundError{Name: profileName}
	}
	format, ok := surfaceFormats[strings.ToLower(surfaceFormat)]
	if !ok {
		return nil, fmt.Errorf("unknown surface format %q (want one of %s)", surfaceFormat, strings.Join(surfaceFormatNames(), ", "))
	}
	req, err := eglconfig.ForSurface(req, hostSurface{format: format})
	if err != nil {
		return nil, err
	}
	return eglconfig.New(req), nil
}

func surfaceFormatNames() []string {
	names := make([]string, 0, len(surfaceFormats))
	for name := range surfaceFormats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
