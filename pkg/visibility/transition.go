package visibility

import (
	"strconv"
	"time"

	"github.com/tanema/gween/ease"
)

// Transition is a pair of class sets for the entered and exited states.
type Transition struct {
	Entered string
	Exited  string
	// Base holds classes present in both states.
	Base string
}

var (
	FadeUp = Transition{
		Base:    "transition-all duration-700 ease-out",
		Entered: "opacity-100 transform-none",
		Exited:  "opacity-0 translate-y-10",
	}
	FadeDown = Transition{
		Base:    "transition-all duration-700 ease-out",
		Entered: "opacity-100 transform-none",
		Exited:  "opacity-0 -translate-y-10",
	}
	Fade = Transition{
		Base:    "transition-opacity duration-1000",
		Entered: "opacity-100",
		Exited:  "opacity-0",
	}
)

// Class returns the full class attribute for the given state.
func (t Transition) Class(visible bool) string {
	state := t.Exited
	if visible {
		state = t.Entered
	}
	switch {
	case t.Base == "":
		return state
	case state == "":
		return t.Base
	}
	return t.Base + " " + state
}

// Stagger spaces out the start of sibling transitions. With the default
// linear easing item i of n starts at Base + i*Step.
type Stagger struct {
	Base time.Duration
	Step time.Duration
	Ease ease.TweenFunc
}

// DefaultStagger starts the first item at 100ms and each next one 50ms later.
var DefaultStagger = Stagger{Base: 100 * time.Millisecond, Step: 50 * time.Millisecond}

// Delay returns the start offset of item i out of n. Indexes outside
// [0, n) are clamped.
func (s Stagger) Delay(i, n int) time.Duration {
	if n <= 1 || i <= 0 {
		return s.Base
	}
	if i >= n {
		i = n - 1
	}
	fn := s.Ease
	if fn == nil {
		fn = ease.Linear
	}

	span := float32(s.Step.Milliseconds()) * float32(n-1)
	ms := fn(float32(i), float32(s.Base.Milliseconds()), span, float32(n-1))
	return time.Duration(float64(ms) * float64(time.Millisecond)).Round(time.Millisecond)
}

// Seconds renders a delay the way CSS transition-delay expects it.
func Seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}
