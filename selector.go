package eglconfig

// Selector picks the first configuration satisfying a fixed set of
// Requirements. It keeps no state between calls, so every Select
// re-enumerates the provider. A Selector is safe for concurrent use as long
// as the providers it is handed are.
type Selector struct {
	req  Requirements
	opts selectorOptions

	// invalid holds the result of req.Validate; Select and Match refuse to
	// run with it set.
	invalid error
}

// New creates a Selector for req. If req does not validate, every Select
// and Match returns the validation error without querying the provider.
func New(req Requirements, opts ...Option) *Selector {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Selector{req: req, opts: o, invalid: req.Validate()}
}

// Select returns the first configuration in p's enumeration order that passes
// every check. Checks run in a fixed order and stop at the first failure:
//
//  1. EGL_RENDERABLE_TYPE contains all RenderableType bits,
//  2. EGL_SURFACE_TYPE contains all SurfaceType bits,
//  3. each Attribs entry equals its value, in list order.
//
// Errors match, via errors.Is, exactly one of ErrProvider (enumeration or an
// attribute query failed), ErrNoConfigs (p has no configurations) or
// ErrNoMatch (no configuration passed; the error is a *NoMatchError).
// Requirements that fail Validate yield ErrInvalidRequirements before the
// provider is consulted.
func Select(p Provider, req Requirements) (Config, error) {
	return New(req).Select(p)
}

// Requirements returns the requirement set the selector evaluates.
func (s *Selector) Requirements() Requirements {
	return s.req
}

// Select runs the selection against p. See the package-level Select.
func (s *Selector) Select(p Provider) (Config, error) {
	if s.invalid != nil {
		return NoConfig, s.invalid
	}
	log := Logger()

	configs, err := p.Configs()
	if err != nil {
		return NoConfig, &ProviderError{Op: "configs", Err: err}
	}
	if len(configs) == 0 {
		return NoConfig, ErrNoConfigs
	}

	var rejections []Rejection
	for _, c := range configs {
		rej, ok, err := s.check(p, c)
		if err != nil {
			log.Debug("eglconfig: attribute query failed", "config", uintptr(c), "error", err)
			return NoConfig, err
		}
		if ok {
			log.Info("eglconfig: config selected", "requirements", s.req.Name, "config", uintptr(c))
			return c, nil
		}

		log.Debug("eglconfig: config rejected", "reason", rej)
		if s.opts.onReject != nil {
			s.opts.onReject(rej)
		}
		if s.opts.keepRejects {
			rejections = append(rejections, rej)
		}
	}

	return NoConfig, &NoMatchError{
		Profile:    s.req.Name,
		Examined:   len(configs),
		Rejections: rejections,
	}
}

// Match reports whether c passes every check. When it does not, the returned
// Rejection names the first failing check.
func (s *Selector) Match(p Provider, c Config) (bool, Rejection, error) {
	if s.invalid != nil {
		return false, Rejection{}, s.invalid
	}
	rej, ok, err := s.check(p, c)
	return ok, rej, err
}

// check evaluates c, querying only what the requirements need and stopping
// at the first failed check.
func (s *Selector) check(p Provider, c Config) (Rejection, bool, error) {
	if rej, ok, err := hasBits(p, c, RenderableType, s.req.RenderableType); !ok || err != nil {
		return rej, false, err
	}
	if rej, ok, err := hasBits(p, c, SurfaceType, s.req.SurfaceType); !ok || err != nil {
		return rej, false, err
	}
	for _, want := range s.req.Attribs {
		got, err := query(p, c, want.Attrib)
		if err != nil {
			return Rejection{}, false, err
		}
		if got != want.Value {
			return Rejection{Config: c, Attrib: want.Attrib, Got: got, Want: want.Value}, false, nil
		}
	}
	return Rejection{}, true, nil
}

// hasBits checks that attribute a of c contains every bit of mask.
func hasBits(p Provider, c Config, a Attrib, mask int32) (Rejection, bool, error) {
	if mask == 0 {
		return Rejection{}, true, nil
	}
	got, err := query(p, c, a)
	if err != nil {
		return Rejection{}, false, err
	}
	if got&mask != mask {
		return Rejection{Config: c, Attrib: a, Got: got, Want: mask, Mask: true}, false, nil
	}
	return Rejection{}, true, nil
}

func query(p Provider, c Config, a Attrib) (int32, error) {
	v, err := p.Attrib(c, a)
	if err != nil {
		return 0, &ProviderError{Op: "attrib", Config: c, Attrib: a, Err: err}
	}
	return v, nil
}
