package catalog

const (
	PageSize = 9
	PageStep = 9
	// allViewedMin is how many items must be shown before the
	// "viewed all" note appears.
	allViewedMin = 6
)

// Pager tracks how many catalog items are displayed. The count starts at
// one page, grows by PageStep, never shrinks and never exceeds the total.
type Pager struct {
	shown int
	total int
}

func NewPager(total int) Pager {
	total = max(total, 0)
	return Pager{shown: min(PageSize, total), total: total}
}

// PagerAt restores a pager that has displayed shown items, e.g. from a
// "load more" link. Out of range values are clamped.
func PagerAt(total, shown int) Pager {
	p := NewPager(total)
	if shown > p.shown {
		p.shown = min(shown, p.total)
	}
	return p
}

// Increase shows another PageStep items.
func (p *Pager) Increase() {
	p.shown = min(p.shown+PageStep, p.total)
}

func (p Pager) Shown() int { return p.shown }
func (p Pager) Total() int { return p.total }

// Remaining is the number of items not yet shown.
func (p Pager) Remaining() int { return p.total - p.shown }

// Exhausted reports whether every item is shown.
func (p Pager) Exhausted() bool { return p.shown >= p.total }

// AllViewed reports whether to show the "viewed all projects" note.
func (p Pager) AllViewed() bool {
	return p.Exhausted() && p.shown > allViewedMin
}

// NextShown is the count after one more Increase.
func (p Pager) NextShown() int {
	p.Increase()
	return p.shown
}

// Visible returns the displayed prefix of items.
func (p Pager) Visible(items []Asset) []Asset {
	return items[:min(p.shown, len(items))]
}
