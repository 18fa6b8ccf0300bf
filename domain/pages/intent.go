package pages

import (
	"net/url"
	"slices"

	"github.com/NeilHuang625/zcmetal/internal/components"
)

// homeSections is the top-to-bottom order of the home page.
var homeSections = []string{
	components.SectionHero,
	components.SectionServices,
	components.SectionAbout,
	components.SectionWork,
	components.SectionRecentWork,
	components.SectionVideos,
	components.SectionQuote,
	components.SectionContact,
}

// NavigationIntent asks the home page to bring a section into view once it
// has rendered. It travels in the URL of the navigation that carries it, so
// each request has its own and nothing is left behind for the next one.
type NavigationIntent struct {
	Section string
}

// ParseIntent reads ?section=. Unknown sections yield the zero intent.
func ParseIntent(q url.Values) NavigationIntent {
	s := q.Get("section")
	if !slices.Contains(homeSections, s) {
		return NavigationIntent{}
	}
	return NavigationIntent{Section: s}
}

func (i NavigationIntent) Empty() bool { return i.Section == "" }
