package pages

import (
	"context"

	"github.com/NeilHuang625/zcmetal/internal/components"
	"github.com/NeilHuang625/zcmetal/pkg/visibility"
)

// foldWidth is the viewport width assumed for the first render.
const foldWidth = 1280

// sectionHeights approximates the rendered height, in px, of each home
// section at foldWidth. The hero always fills the fold.
var sectionHeights = map[string]float64{
	components.SectionServices:   1100,
	components.SectionAbout:      900,
	components.SectionWork:       800,
	components.SectionRecentWork: 1500,
	components.SectionVideos:     1000,
	components.SectionQuote:      1000,
	components.SectionContact:    900,
}

// Plan decides which home sections render in their entered state. It lays
// the sections out top to bottom, scrolls an assumed viewport of height
// fold to the intent's section and tracks each one with the section's own
// threshold and root margin. The rest render exited
// and reveal.js brings them in as they scroll into view.
func Plan(ctx context.Context, fold int, intent NavigationIntent) map[string]bool {
	return plan(ctx, visibility.NewViewport(foldWidth, float64(fold)), fold, intent)
}

func plan(ctx context.Context, vp *visibility.Viewport, fold int, intent NavigationIntent) map[string]bool {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var y float64
	tops := make(map[string]float64, len(homeSections))
	boxes := make(map[string]visibility.Box, len(homeSections))
	for _, s := range homeSections {
		h, ok := sectionHeights[s]
		if !ok {
			h = float64(fold)
		}
		tops[s] = y
		boxes[s] = visibility.Box{X: 0, Y: y, Width: foldWidth, Height: h}
		y += h
	}

	if !intent.Empty() {
		vp.ScrollTo(tops[intent.Section])
	}

	visible := make(map[string]bool, len(homeSections))
	for _, s := range homeSections {
		t := visibility.Track(ctx, vp, components.SectionOptions(s), boxes[s])
		visible[s] = t.Visible()
		t.Close()
	}
	return visible
}
