package eglconfig

import (
	"fmt"
	"strings"
)

// Requirements is the set of checks a configuration must pass.
//
// The two masks are containment checks: every required bit must be present,
// extra bits are fine. Attribs are equality checks, evaluated in order. A zero
// mask requires nothing and its attribute is never queried.
type Requirements struct {
	// Name identifies the requirement set in diagnostics.
	Name string

	// RenderableType holds the bits that must be set in EGL_RENDERABLE_TYPE.
	RenderableType int32

	// SurfaceType holds the bits that must be set in EGL_SURFACE_TYPE.
	SurfaceType int32

	// Attribs lists attributes that must equal the given values exactly.
	Attribs []Pair
}

// NewRequirements builds Requirements from an EGL_NONE-terminated exact-match
// list such as the one passed to eglChooseConfig.
func NewRequirements(name string, renderable, surface int32, list []int32) (Requirements, error) {
	pairs, err := ParseAttribList(list)
	if err != nil {
		return Requirements{}, err
	}
	r := Requirements{
		Name:           name,
		RenderableType: renderable,
		SurfaceType:    surface,
		Attribs:        pairs,
	}
	if err := r.Validate(); err != nil {
		return Requirements{}, err
	}
	return r, nil
}

// Validate rejects requirement sets the selector cannot evaluate.
func (r Requirements) Validate() error {
	seen := make(map[Attrib]bool, len(r.Attribs))
	for i, p := range r.Attribs {
		if p.Attrib == None {
			return fmt.Errorf("%w: EGL_NONE at position %d", ErrInvalidRequirements, i)
		}
		if seen[p.Attrib] {
			return fmt.Errorf("%w: %s listed twice", ErrInvalidRequirements, p.Attrib)
		}
		seen[p.Attrib] = true
	}
	return nil
}

// AttribList returns the exact-match list in EGL_NONE-terminated form.
func (r Requirements) AttribList() []int32 {
	return AttribList(r.Attribs)
}

func (r Requirements) String() string {
	var b strings.Builder
	b.WriteString(r.Name)
	if r.RenderableType != 0 {
		fmt.Fprintf(&b, " %s&%s", RenderableType, FormatValue(RenderableType, r.RenderableType))
	}
	if r.SurfaceType != 0 {
		fmt.Fprintf(&b, " %s&%s", SurfaceType, FormatValue(SurfaceType, r.SurfaceType))
	}
	for _, p := range r.Attribs {
		b.WriteByte(' ')
		b.WriteString(p.String())
	}
	return strings.TrimSpace(b.String())
}

// WarpCompositor returns the requirements of an XR timewarp compositor
// target: ES3, usable both as a window and a pbuffer (so textures can be
// shared with the window context), RGBA8 with alpha for the multi-pass
// compositor, and no depth, stencil or multisampling.
func WarpCompositor() Requirements {
	return Requirements{
		Name:           "warp-compositor",
		RenderableType: OpenGLES3Bit,
		SurfaceType:    WindowBit | PbufferBit,
		Attribs: []Pair{
			{RedSize, 8},
			{GreenSize, 8},
			{BlueSize, 8},
			{AlphaSize, 8},
			{DepthSize, 0},
			{StencilSize, 0},
			{Samples, 0},
		},
	}
}
