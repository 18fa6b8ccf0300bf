package catalog

// Lightbox is a full-screen viewer over the displayed subset of a catalog.
// Navigation wraps around in both directions and never depends on items
// outside the subset. Every operation is a no-op on an empty subset.
type Lightbox struct {
	items []Asset
	index int
	open  bool
}

func NewLightbox(visible []Asset) *Lightbox {
	return &Lightbox{items: visible}
}

// Select opens the viewer on the item with id. It reports false, leaving
// the viewer unchanged, if id is not in the subset.
func (l *Lightbox) Select(id string) bool {
	for i, a := range l.items {
		if a.ID == id {
			l.index = i
			l.open = true
			return true
		}
	}
	return false
}

func (l *Lightbox) Next() {
	if !l.open || len(l.items) == 0 {
		return
	}
	l.index = (l.index + 1) % len(l.items)
}

func (l *Lightbox) Previous() {
	if !l.open || len(l.items) == 0 {
		return
	}
	l.index = (l.index - 1 + len(l.items)) % len(l.items)
}

func (l *Lightbox) Close() { l.open = false }

func (l *Lightbox) IsOpen() bool { return l.open }

// Current returns the selected item while the viewer is open.
func (l *Lightbox) Current() (Asset, bool) {
	if !l.open || len(l.items) == 0 {
		return Asset{}, false
	}
	return l.items[l.index], true
}

// Neighbours returns the ids Previous and Next would select.
func (l *Lightbox) Neighbours() (prev, next string) {
	if !l.open || len(l.items) == 0 {
		return "", ""
	}
	n := len(l.items)
	return l.items[(l.index-1+n)%n].ID, l.items[(l.index+1)%n].ID
}

// HandleKey applies a keyboard key name. It reports whether the key was
// consumed.
func (l *Lightbox) HandleKey(key string) bool {
	if !l.open {
		return false
	}
	switch key {
	case "ArrowLeft":
		l.Previous()
	case "ArrowRight":
		l.Next()
	case "Escape":
		l.Close()
	default:
		return false
	}
	return true
}
