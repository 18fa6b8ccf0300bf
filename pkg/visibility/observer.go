// Package visibility reports whether a UI node currently intersects a
// tracked region, and turns that signal into enter/exit transition state.
//
// A Tracker binds to one Element through an Observer capability. Viewport is
// the in-process Observer; a nil or unsupported Observer makes trackers fail
// open and report visible immediately and forever.
package visibility

import "errors"

// ErrUnsupported is returned by Observers without the capability.
var ErrUnsupported = errors.New("visibility: intersection observation unsupported")

const (
	DefaultThreshold  = 0.1
	DefaultRootMargin = "0px"
)

// Options configure when a target counts as visible.
type Options struct {
	// Threshold is the fraction of the target's area that must be inside
	// the region. Zero selects DefaultThreshold; values above 1 are clamped.
	Threshold float64
	// RootMargin expands or shrinks the region, CSS margin style.
	RootMargin string
}

// WithDefaults fills zero values.
func (o Options) WithDefaults() Options {
	if o.Threshold <= 0 {
		o.Threshold = DefaultThreshold
	}
	if o.Threshold > 1 {
		o.Threshold = 1
	}
	if o.RootMargin == "" {
		o.RootMargin = DefaultRootMargin
	}
	return o
}

// Element is anything with layout bounds. The tracker only reads it.
type Element interface {
	Bounds() Rect
}

// Entry is one intersection observation.
type Entry struct {
	Target         Element
	IsIntersecting bool
	Ratio          float64
}

// Observation is a live registration. Unobserve is idempotent.
type Observation interface {
	Unobserve()
}

// Observer is the platform capability trackers depend on.
type Observer interface {
	// Supported reports whether intersection observation is available.
	Supported() bool
	// Observe registers fn for el. fn receives the current state once and
	// then every time el crosses the threshold, in either direction.
	Observe(el Element, opts Options, fn func(Entry)) (Observation, error)
}

// Unsupported is an Observer without the capability.
type Unsupported struct{}

func (Unsupported) Supported() bool { return false }

func (Unsupported) Observe(Element, Options, func(Entry)) (Observation, error) {
	return nil, ErrUnsupported
}
