package eglconfig

// Config is an opaque handle to one configuration offered by a Provider.
// It carries identity only; the Provider owns whatever it refers to.
type Config uintptr

// NoConfig is the zero handle, returned alongside errors.
const NoConfig Config = 0

// Provider exposes the configurations of a display, typically a thin wrapper
// over eglGetConfigs and eglGetConfigAttrib.
//
// Each Attrib call may cross a process or driver boundary, so the selector
// calls it only for attributes its requirements name. Providers need not be
// safe for concurrent use; callers sharing one must serialize access.
type Provider interface {
	// Configs returns every configuration in provider-defined order.
	Configs() ([]Config, error)

	// Attrib returns the value of attribute a for configuration c.
	Attrib(c Config, a Attrib) (int32, error)
}
