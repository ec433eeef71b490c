// Package eglconfig selects an EGL framebuffer configuration without
// eglChooseConfig.
//
// # Overview
//
// eglChooseConfig is free to add or reorder attributes: some Android builds
// inject multisample requirements when the user forces MSAA in developer
// settings, which is wasted work for compositor targets that never sample.
// eglconfig instead walks every configuration the display reports and keeps
// the first one that passes a fixed set of checks.
//
// # Quick Start
//
//	import "github.com/gogpu/eglconfig"
//
//	// p wraps eglGetConfigs / eglGetConfigAttrib for one display.
//	cfg, err := eglconfig.Select(p, eglconfig.WarpCompositor())
//	switch {
//	case errors.Is(err, eglconfig.ErrNoMatch):
//	    // Every config was examined; none qualified.
//	case err != nil:
//	    // The provider failed or reported no configs at all.
//	}
//
// # Checks
//
// Requirements hold two kinds of checks:
//
//   - Bitmask checks on EGL_RENDERABLE_TYPE and EGL_SURFACE_TYPE. A config
//     passes when it has every required bit; extra bits are accepted.
//   - An ordered exact-match list, e.g. EGL_RED_SIZE=8, EGL_DEPTH_SIZE=0.
//     A config passes only when each value is equal, so a 10-bit channel
//     never satisfies an 8-bit requirement.
//
// Checks run in that order and stop at the first failure, so a config that
// lacks ES3 support costs a single attribute query.
//
// # Outcomes
//
// Select distinguishes three failures, each matched with errors.Is:
// ErrProvider (a provider call failed), ErrNoConfigs (the display has none)
// and ErrNoMatch (configs exist, none passed). Nothing is cached or retried.
//
// # Sub-packages
//
//   - table: an in-memory Provider loaded from YAML config dumps
//   - profile: named requirement sets, built-in and from TOML files
//   - cmd/eglselect: command-line front end
package eglconfig

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
