// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package eglconfig

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// describeAttribs are the attributes Describe queries, in query order.
var describeAttribs = []Attrib{
	ConfigID, RedSize, GreenSize, BlueSize, AlphaSize,
	DepthSize, StencilSize, Samples, RenderableType, SurfaceType,
}

// Description summarizes a configuration in terms a GPU pipeline consumes.
type Description struct {
	Config Config

	// ID is the driver's EGL_CONFIG_ID.
	ID int32

	Red, Green, Blue, Alpha int32
	Depth, Stencil          int32
	Samples                 int32

	RenderableType int32
	SurfaceType    int32

	// ColorFormat is the texture format equivalent to the color buffer, or
	// TextureFormatUndefined when there is none.
	ColorFormat gputypes.TextureFormat

	// DepthStencilFormat is the texture format equivalent to the depth and
	// stencil buffers, or TextureFormatUndefined when there is none.
	DepthStencilFormat gputypes.TextureFormat
}

// Describe queries the attributes of c needed to fill a Description.
// It is meant for the configuration Select returned, not for filtering.
func Describe(p Provider, c Config) (Description, error) {
	vals := make(map[Attrib]int32, len(describeAttribs))
	for _, a := range describeAttribs {
		v, err := query(p, c, a)
		if err != nil {
			return Description{}, err
		}
		vals[a] = v
	}

	d := Description{
		Config:         c,
		ID:             vals[ConfigID],
		Red:            vals[RedSize],
		Green:          vals[GreenSize],
		Blue:           vals[BlueSize],
		Alpha:          vals[AlphaSize],
		Depth:          vals[DepthSize],
		Stencil:        vals[StencilSize],
		Samples:        vals[Samples],
		RenderableType: vals[RenderableType],
		SurfaceType:    vals[SurfaceType],
	}
	d.ColorFormat = colorFormat(d.Red, d.Green, d.Blue, d.Alpha)
	d.DepthStencilFormat = depthStencilFormat(d.Depth, d.Stencil)
	return d, nil
}

// colorFormat maps channel sizes to a texture format. EGL reports channels,
// not memory order, so 8-bit RGBA maps to RGBA8Unorm.
func colorFormat(r, g, b, a int32) gputypes.TextureFormat {
	switch {
	case r == 8 && g == 8 && b == 8 && a == 8:
		return gputypes.TextureFormatRGBA8Unorm
	case r == 8 && g == 0 && b == 0 && a == 0:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

func depthStencilFormat(depth, stencil int32) gputypes.TextureFormat {
	if depth == 24 && stencil == 8 {
		return gputypes.TextureFormatDepth24PlusStencil8
	}
	return gputypes.TextureFormatUndefined
}

// colorAttribs are the exact channel sizes a surface format implies.
var colorAttribs = map[gputypes.TextureFormat][4]int32{
	gputypes.TextureFormatRGBA8Unorm: {8, 8, 8, 8},
	gputypes.TextureFormatBGRA8Unorm: {8, 8, 8, 8},
	gputypes.TextureFormatR8Unorm:    {8, 0, 0, 0},
}

// ColorAttribs returns the exact-match channel sizes for format, in
// red, green, blue, alpha order.
func ColorAttribs(format gputypes.TextureFormat) ([]Pair, error) {
	sizes, ok := colorAttribs[format]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	return []Pair{
		{RedSize, sizes[0]},
		{GreenSize, sizes[1]},
		{BlueSize, sizes[2]},
		{AlphaSize, sizes[3]},
	}, nil
}

// ForSurface returns req with its channel sizes replaced by those of the
// surface format the host device presents in. The channel checks move to
// the front of the exact list; the other attributes keep their order.
func ForSurface(req Requirements, host gpucontext.DeviceProvider) (Requirements, error) {
	color, err := ColorAttribs(host.SurfaceFormat())
	if err != nil {
		return Requirements{}, err
	}

	attribs := make([]Pair, 0, len(req.Attribs)+len(color))
	attribs = append(attribs, color...)
	for _, p := range req.Attribs {
		switch p.Attrib {
		case RedSize, GreenSize, BlueSize, AlphaSize:
			continue
		}
		attribs = append(attribs, p)
	}
	req.Attribs = attribs
	return req, req.Validate()
}
