// Package profile keeps named eglconfig requirement sets.
//
// Built-in profiles are registered on import. More can be loaded from a TOML
// file, by default $XDG_CONFIG_HOME/eglselect/profiles.toml:
//
//	[[profile]]
//	name = "es3-window-msaa4"
//	renderable_type = "ES3"
//	surface_type = "WINDOW"
//	attribs = [
//	    ["RED_SIZE", 8], ["GREEN_SIZE", 8], ["BLUE_SIZE", 8],
//	    ["SAMPLE_BUFFERS", 1], ["SAMPLES", 4],
//	]
//
// Attribute order in the file is the order the selector checks them in.
//
// # Built-in Profiles
//
//   - "warp-compositor": ES3, window+pbuffer, RGBA8, no depth/stencil/MSAA
//   - "es2-window-rgba8": ES2 window, RGBA8 with a 16-bit depth buffer
//   - "es3-window-d24s8": ES3 window, RGBA8 with D24S8
//   - "es3-pbuffer-rgba8": ES3 offscreen pbuffer, RGBA8
package profile
