package visibility

import (
	"sync"
)

// Viewport is an in-process Observer over a scrollable window of a
// document. The window starts at the top of the document; ScrollTo and
// Resize move it and re-evaluate every observation.
//
// Callbacks run on the goroutine that triggered them (Observe, ScrollTo or
// Resize), never while the viewport lock is held, so a callback may call
// Unobserve or Observe again.
type Viewport struct {
	mu      sync.Mutex
	width   float64
	height  float64
	scrollY float64
	obs     []*observation
}

type observation struct {
	vp      *Viewport
	el      Element
	margin  Margin
	opts    Options
	fn      func(Entry)
	last    bool
	started bool
	removed bool
}

func NewViewport(width, height float64) *Viewport {
	return &Viewport{width: width, height: height}
}

func (v *Viewport) Supported() bool { return true }

// Root returns the visible window in document coordinates.
func (v *Viewport) Root() Rect {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.root()
}

func (v *Viewport) root() Rect {
	return Rect{X: 0, Y: v.scrollY, Width: v.width, Height: v.height}
}

// Observe registers fn and delivers the initial entry before returning.
func (v *Viewport) Observe(el Element, opts Options, fn func(Entry)) (Observation, error) {
	opts = opts.WithDefaults()
	margin, err := ParseMargin(opts.RootMargin)
	if err != nil {
		return nil, err
	}

	o := &observation{vp: v, el: el, margin: margin, opts: opts, fn: fn}

	v.mu.Lock()
	v.obs = append(v.obs, o)
	pending := v.evaluate([]*observation{o})
	v.mu.Unlock()

	dispatch(pending)
	return o, nil
}

// ScrollTo moves the top of the window to y. Negative values clamp to 0.
func (v *Viewport) ScrollTo(y float64) {
	if y < 0 {
		y = 0
	}
	v.mu.Lock()
	v.scrollY = y
	pending := v.evaluate(v.obs)
	v.mu.Unlock()

	dispatch(pending)
}

// Resize changes the window size.
func (v *Viewport) Resize(width, height float64) {
	v.mu.Lock()
	v.width, v.height = width, height
	pending := v.evaluate(v.obs)
	v.mu.Unlock()

	dispatch(pending)
}

type delivery struct {
	fn    func(Entry)
	entry Entry
}

// evaluate must be called with v.mu held. It returns the callbacks whose
// state changed, for dispatch after the lock is released.
func (v *Viewport) evaluate(list []*observation) []delivery {
	root := v.root()
	var out []delivery
	for _, o := range list {
		if o.removed {
			continue
		}
		region := o.margin.Apply(root)
		ratio := Ratio(o.el.Bounds(), region)
		visible := ratio > 0 && ratio >= o.opts.Threshold
		if o.started && visible == o.last {
			continue
		}
		o.started = true
		o.last = visible
		out = append(out, delivery{
			fn:    o.fn,
			entry: Entry{Target: o.el, IsIntersecting: visible, Ratio: ratio},
		})
	}
	return out
}

func dispatch(pending []delivery) {
	for _, d := range pending {
		d.fn(d.entry)
	}
}

func (o *observation) Unobserve() {
	v := o.vp
	v.mu.Lock()
	defer v.mu.Unlock()

	if o.removed {
		return
	}
	o.removed = true
	for i, cur := range v.obs {
		if cur == o {
			v.obs = append(v.obs[:i], v.obs[i+1:]...)
			break
		}
	}
}

// Observed reports how many registrations are live.
func (v *Viewport) Observed() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.obs)
}
