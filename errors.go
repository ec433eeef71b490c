package eglconfig

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Selection and parsing errors.
var (
	// ErrProvider is matched by every error raised at the provider boundary,
	// whether enumeration or an attribute query failed.
	ErrProvider = errors.New("eglconfig: provider failure")

	// ErrNoConfigs is returned when the provider enumerates zero configurations.
	ErrNoConfigs = errors.New("eglconfig: no configurations available")

	// ErrNoMatch is returned when configurations exist but none satisfies
	// the requirements.
	ErrNoMatch = errors.New("eglconfig: no matching configuration")

	// ErrMalformedAttribList is returned for attribute lists without an
	// EGL_NONE terminator or with a dangling key.
	ErrMalformedAttribList = errors.New("eglconfig: malformed attribute list")

	// ErrUnknownAttrib is returned when an attribute name cannot be resolved.
	ErrUnknownAttrib = errors.New("eglconfig: unknown attribute")

	// ErrInvalidValue is returned when an attribute value cannot be parsed.
	ErrInvalidValue = errors.New("eglconfig: invalid attribute value")

	// ErrUnsupportedFormat is returned when a surface format has no EGL
	// channel-size equivalent.
	ErrUnsupportedFormat = errors.New("eglconfig: unsupported surface format")

	// ErrInvalidRequirements is returned by Requirements.Validate.
	ErrInvalidRequirements = errors.New("eglconfig: invalid requirements")
)

// ProviderError describes a failed provider call.
type ProviderError struct {
	// Op is "configs" for enumeration or "attrib" for an attribute query.
	Op string

	// Config and Attrib are set for attribute queries.
	Config Config
	Attrib Attrib

	Err error
}

func (e *ProviderError) Error() string {
	if e.Op == "attrib" {
		return fmt.Sprintf("eglconfig: query %s of config %#x: %v", e.Attrib, uintptr(e.Config), e.Err)
	}
	return fmt.Sprintf("eglconfig: enumerate configs: %v", e.Err)
}

// Unwrap returns the provider's error.
func (e *ProviderError) Unwrap() error { return e.Err }

// Is reports ErrProvider as a match.
func (e *ProviderError) Is(target error) bool { return target == ErrProvider }

// NoMatchError reports an exhausted candidate list.
type NoMatchError struct {
	// Profile is the Name of the requirement set that failed to match.
	Profile string

	// Examined is the number of configurations evaluated.
	Examined int

	// Rejections holds the first failing check of every examined config,
	// in enumeration order.
	Rejections []Rejection
}

func (e *NoMatchError) Error() string {
	name := e.Profile
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("eglconfig: no configuration matches requirements %q (%d examined)", name, e.Examined)
}

// Is reports ErrNoMatch as a match.
func (e *NoMatchError) Is(target error) bool { return target == ErrNoMatch }

// Summary counts rejections by failing attribute, most frequent first.
func (e *NoMatchError) Summary() string {
	counts := make(map[Attrib]int)
	var order []Attrib
	for _, r := range e.Rejections {
		if counts[r.Attrib] == 0 {
			order = append(order, r.Attrib)
		}
		counts[r.Attrib]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	parts := make([]string, 0, len(order))
	for _, a := range order {
		parts = append(parts, fmt.Sprintf("%s: %d", a, counts[a]))
	}
	return strings.Join(parts, ", ")
}

// Rejection records why a configuration was rejected: the first check that
// failed and the values involved.
type Rejection struct {
	Config Config
	Attrib Attrib

	// Got is the provider's value, Want the required value or mask.
	Got  int32
	Want int32

	// Mask is true for bit-containment checks, false for exact matches.
	Mask bool
}

func (r Rejection) String() string {
	if r.Mask {
		return fmt.Sprintf("config %#x: %s = %s, missing %s", uintptr(r.Config), r.Attrib,
			FormatValue(r.Attrib, r.Got), FormatValue(r.Attrib, r.Want&^r.Got))
	}
	return fmt.Sprintf("config %#x: %s = %s, want %s", uintptr(r.Config), r.Attrib,
		FormatValue(r.Attrib, r.Got), FormatValue(r.Attrib, r.Want))
}
