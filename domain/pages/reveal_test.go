package pages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NeilHuang625/zcmetal/internal/components"
	"github.com/NeilHuang625/zcmetal/pkg/visibility"
)

func visibleSections(m map[string]bool) []string {
	var out []string
	for _, s := range homeSections {
		if m[s] {
			out = append(out, s)
		}
	}
	return out
}

func TestPlan_Top(t *testing.T) {
	got := Plan(context.Background(), 800, NavigationIntent{})
	assert.Len(t, got, len(homeSections))
	assert.Equal(t, []string{components.SectionHero}, visibleSections(got))
}

func TestPlan_Intent(t *testing.T) {
	tests := []struct {
		section string
		want    []string
	}{
		{components.SectionContact, []string{components.SectionContact}},
		{components.SectionQuote, []string{components.SectionQuote}},
		{components.SectionServices, []string{components.SectionServices}},
	}
	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			got := Plan(context.Background(), 800, NavigationIntent{Section: tt.section})
			assert.Equal(t, tt.want, visibleSections(got))
		})
	}
}

func TestPlan_TallFold(t *testing.T) {
	got := Plan(context.Background(), 800, NavigationIntent{Section: components.SectionWork})
	assert.True(t, got[components.SectionWork])
	assert.False(t, got[components.SectionAbout])

	// A window taller than the work section reaches into recent work.
	got = Plan(context.Background(), 1000, NavigationIntent{Section: components.SectionWork})
	assert.True(t, got[components.SectionWork])
	assert.True(t, got[components.SectionRecentWork])
}

func TestPlan_ReleasesObservations(t *testing.T) {
	vp := visibility.NewViewport(foldWidth, 800)
	plan(context.Background(), vp, 800, NavigationIntent{Section: components.SectionVideos})
	assert.Zero(t, vp.Observed())
}

func TestPlan_SectionOptions(t *testing.T) {
	// 90px of services' 1100px is in view: above its 0.07 threshold, below
	// the 0.1 default.
	vp := visibility.NewViewport(foldWidth, 800)
	vp.ScrollTo(90)
	got := plan(context.Background(), vp, 800, NavigationIntent{})
	assert.True(t, got[components.SectionServices])

	// 140px of videos is in view, but its -50px root margin leaves 90px.
	vp = visibility.NewViewport(foldWidth, 800)
	vp.ScrollTo(4440)
	got = plan(context.Background(), vp, 800, NavigationIntent{})
	assert.False(t, got[components.SectionVideos])
	assert.True(t, got[components.SectionRecentWork])
}
