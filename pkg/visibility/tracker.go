package visibility

import (
	"context"
	"sync"
)

// Tracker reports whether one bound Element is currently visible.
//
// The zero value is not usable; construct with New or Track.
type Tracker struct {
	platform Observer
	opts     Options

	mu       sync.Mutex
	el       Element
	obs      Observation
	gen      uint64
	visible  bool
	failOpen bool
	closed   bool
	subs     map[uint64]func(bool)
	nextSub  uint64
	done     chan struct{}
}

// New returns a detached tracker. A nil or unsupported platform makes the
// tracker fail open: Visible reports true from the start and never changes.
func New(platform Observer, opts Options) *Tracker {
	t := &Tracker{
		platform: platform,
		opts:     opts.WithDefaults(),
		subs:     make(map[uint64]func(bool)),
		done:     make(chan struct{}),
	}
	if platform == nil || !platform.Supported() {
		t.failOpen = true
		t.visible = true
	}
	return t
}

// Track binds a new tracker to el and releases the observation when ctx is
// done or Close is called, whichever happens first.
func Track(ctx context.Context, platform Observer, opts Options, el Element) *Tracker {
	t := New(platform, opts)
	t.Attach(el)
	go func() {
		select {
		case <-ctx.Done():
			t.Close()
		case <-t.done:
		}
	}()
	return t
}

// Options returns the effective options, defaults applied.
func (t *Tracker) Options() Options { return t.opts }

// Attach binds the tracker to el, releasing any previous observation.
func (t *Tracker) Attach(el Element) {
	if el == nil {
		t.Detach()
		return
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	was := t.visible
	prev := t.release()
	t.el = el
	gen := t.gen
	failOpen := t.failOpen
	fns := t.pending(was)
	t.mu.Unlock()

	if prev != nil {
		prev.Unobserve()
	}
	notify(fns, false)
	if failOpen {
		return
	}

	// Observe may deliver the first entry synchronously, so the lock must not
	// be held here.
	obs, err := t.platform.Observe(el, t.opts, func(e Entry) { t.deliver(gen, e) })

	t.mu.Lock()
	if err != nil {
		was := t.visible
		t.failOpen = true
		t.visible = true
		fns := t.pending(was)
		t.mu.Unlock()
		notify(fns, true)
		return
	}
	if t.gen != gen {
		t.mu.Unlock()
		obs.Unobserve()
		return
	}
	t.obs = obs
	t.mu.Unlock()
}

// Detach releases the observation. Visible reports false until the next
// Attach delivers an entry; subscribers are told if that is a change.
func (t *Tracker) Detach() {
	t.mu.Lock()
	was := t.visible
	prev := t.release()
	t.el = nil
	fns := t.pending(was)
	t.mu.Unlock()

	if prev != nil {
		prev.Unobserve()
	}
	notify(fns, false)
}

// release must be called with t.mu held. It bumps the generation so late
// callbacks from the old observation are dropped.
func (t *Tracker) release() Observation {
	prev := t.obs
	t.obs = nil
	t.gen++
	if !t.failOpen {
		t.visible = false
	}
	return prev
}

func (t *Tracker) deliver(gen uint64, e Entry) {
	t.mu.Lock()
	if gen != t.gen || t.closed || t.failOpen {
		t.mu.Unlock()
		return
	}
	was := t.visible
	t.visible = e.IsIntersecting
	fns := t.pending(was)
	v := t.visible
	t.mu.Unlock()

	notify(fns, v)
}

// pending must be called with t.mu held. It returns the subscribers to
// notify when visible no longer equals was.
func (t *Tracker) pending(was bool) []func(bool) {
	if t.visible == was || t.closed {
		return nil
	}
	fns := make([]func(bool), 0, len(t.subs))
	for _, fn := range t.subs {
		fns = append(fns, fn)
	}
	return fns
}

// notify runs outside the lock so subscribers may call back into the
// tracker.
func notify(fns []func(bool), v bool) {
	for _, fn := range fns {
		fn(v)
	}
}

// Visible reports the state from the most recent entry.
func (t *Tracker) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

// Subscribe registers fn for every change of Visible. The returned func
// removes it and may be called more than once.
func (t *Tracker) Subscribe(fn func(bool)) (unsubscribe func()) {
	t.mu.Lock()
	id := t.nextSub
	t.nextSub++
	t.subs[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.subs, id)
		t.mu.Unlock()
	}
}

// Close detaches and drops all subscribers. Further Attach calls are ignored.
func (t *Tracker) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	prev := t.release()
	t.el = nil
	clear(t.subs)
	close(t.done)
	t.mu.Unlock()

	if prev != nil {
		prev.Unobserve()
	}
}
