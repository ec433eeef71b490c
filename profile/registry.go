// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package profile

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/eglconfig"
)

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

// Registry manages named requirement sets.
//
// Example registration:
//
//	func init() {
//	    profile.Register(eglconfig.Requirements{Name: "mine", ...})
//	}
//
// Example usage:
//
//	sel, err := profile.Selector("warp-compositor")
type Registry struct {
	mu      sync.RWMutex
	entries map[string]eglconfig.Requirements
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and Get.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]eglconfig.Requirements),
	}
}

// Register adds req to the global registry.
func Register(req eglconfig.Requirements) error {
	return globalRegistry.Register(req)
}

// Unregister removes a profile from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all profile names in the global registry, sorted.
func List() []string {
	return globalRegistry.List()
}

// Get returns a profile from the global registry.
func Get(name string) (eglconfig.Requirements, bool) {
	return globalRegistry.Get(name)
}

// Selector returns a selector for a profile of the global registry.
func Selector(name string, opts ...eglconfig.Option) (*eglconfig.Selector, error) {
	return globalRegistry.Selector(name, opts...)
}

// Register adds req under req.Name. Registering a name that already exists
// replaces the previous entry.
func (r *Registry) Register(req eglconfig.Requirements) error {
	if req.Name == "" {
		return ErrUnnamed
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("profile %q: %w", req.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]eglconfig.Requirements)
	}
	r.entries[req.Name] = clone(req)
	return nil
}

// Unregister removes a profile from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all profile names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns a profile by name.
func (r *Registry) Get(name string) (eglconfig.Requirements, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.entries[name]
	if !ok {
		return eglconfig.Requirements{}, false
	}

	// Return a copy to prevent modification
	return clone(req), true
}

// Selector returns a selector for the named profile.
func (r *Registry) Selector(name string, opts ...eglconfig.Option) (*eglconfig.Selector, error) {
	req, ok := r.Get(name)
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return eglconfig.New(req, opts...), nil
}

func clone(req eglconfig.Requirements) eglconfig.Requirements {
	req.Attribs = append([]eglconfig.Pair(nil), req.Attribs...)
	return req
}

// Errors.
var (
	// ErrUnnamed is returned when registering a profile without a name.
	ErrUnnamed = errors.New("profile: missing name")
)

// NotFoundError indicates a named profile is not registered.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "profile: not found: " + e.Name
}

// init registers the built-in profiles.
func init() {
	for _, req := range builtins() {
		if err := Register(req); err != nil {
			panic(err)
		}
	}
}

func builtins() []eglconfig.Requirements {
	rgba8 := []eglconfig.Pair{
		{Attrib: eglconfig.RedSize, Value: 8},
		{Attrib: eglconfig.GreenSize, Value: 8},
		{Attrib: eglconfig.BlueSize, Value: 8},
		{Attrib: eglconfig.AlphaSize, Value: 8},
	}
	with := func(extra ...eglconfig.Pair) []eglconfig.Pair {
		return append(append([]eglconfig.Pair(nil), rgba8...), extra...)
	}

	return []eglconfig.Requirements{
		eglconfig.WarpCompositor(),
		{
			Name:           "es2-window-rgba8",
			RenderableType: eglconfig.OpenGLES2Bit,
			SurfaceType:    eglconfig.WindowBit,
			Attribs:        with(eglconfig.Pair{Attrib: eglconfig.DepthSize, Value: 16}),
		},
		{
			Name:           "es3-window-d24s8",
			RenderableType: eglconfig.OpenGLES3Bit,
			SurfaceType:    eglconfig.WindowBit,
			Attribs: with(
				eglconfig.Pair{Attrib: eglconfig.DepthSize, Value: 24},
				eglconfig.Pair{Attrib: eglconfig.StencilSize, Value: 8},
			),
		},
		{
			Name:           "es3-pbuffer-rgba8",
			RenderableType: eglconfig.OpenGLES3Bit,
			SurfaceType:    eglconfig.PbufferBit,
			Attribs:        with(),
		},
	}
}
