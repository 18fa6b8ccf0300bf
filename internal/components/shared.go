package components

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/NeilHuang625/zcmetal/internal/content"
	"github.com/NeilHuang625/zcmetal/pkg/visibility"
)

// Section anchors on the home page.
const (
	SectionHero       = "hero"
	SectionServices   = "services"
	SectionAbout      = "about"
	SectionWork       = "work"
	SectionRecentWork = "recent-work"
	SectionVideos     = "videos"
	SectionQuote      = "get-quote"
	SectionContact    = "contact"
)

// SectionURL links to a home page section from any page. The query carries
// the navigation intent, the fragment covers browsers without scripts.
func SectionURL(id string) string {
	return "/?section=" + id + "#" + id
}

// sectionOptions are the observer settings of home sections that differ
// from the defaults.
var sectionOptions = map[string]visibility.Options{
	SectionServices: {Threshold: 0.07},
	SectionVideos:   {RootMargin: "-50px"},
}

// SectionOptions returns the observer settings of a home section, defaults
// applied.
func SectionOptions(id string) visibility.Options {
	return sectionOptions[id].WithDefaults()
}

// RevealRoot marks a section as the single observed target for the
// [data-reveal] elements inside it. reveal.js reads the threshold and
// root margin from it.
func RevealRoot(id string) g.Node {
	opts := SectionOptions(id)
	return g.Group([]g.Node{
		g.Attr("data-reveal-root", ""),
		g.Attr("data-threshold", strconv.FormatFloat(opts.Threshold, 'f', -1, 64)),
		g.Attr("data-root-margin", opts.RootMargin),
	})
}

// PlaceholderImage replaces media that fails to load.
const PlaceholderImage = "/static/img/placeholder.svg"

// AssetURL maps a media-relative path to a URL the browser can load.
type AssetURL func(path string) string

// Photo renders an image that falls back to the placeholder on error.
func Photo(src, alt, class string, children ...g.Node) g.Node {
	return Img(
		Src(src),
		Alt(alt),
		Class(class),
		g.Attr("loading", "lazy"),
		g.Attr("onerror", fmt.Sprintf("this.onerror=null;this.src='%s'", PlaceholderImage)),
		g.Group(children),
	)
}

// Reveal renders the class of an element with an entry transition, plus any
// static classes. Elements rendered hidden are flipped client-side by
// /static/js/reveal.js once they scroll into view.
func Reveal(t visibility.Transition, visible bool, class string) g.Node {
	cls := t.Class(visible)
	if class != "" {
		cls = class + " " + cls
	}
	return g.Group([]g.Node{
		Class(cls),
		g.Attr("data-reveal", ""),
		g.Attr("data-entered", t.Entered),
		g.Attr("data-exited", t.Exited),
		g.If(visible, g.Attr("data-visible", "true")),
	})
}

// StaggerDelay offsets the transition of item i among n siblings.
func StaggerDelay(s visibility.Stagger, i, n int) g.Node {
	return Delay(s.Delay(i, n))
}

// Delay sets a fixed transition delay.
func Delay(d time.Duration) g.Node {
	return Style("transition-delay: " + visibility.Seconds(d))
}

func Logo(company content.Company, asset AssetURL, invert bool) g.Node {
	class := "h-10"
	if invert {
		class = "h-10 brightness-0 invert"
	}
	return Photo(asset(company.Logo), company.Name+" Logo", class)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	iconName := parts[0]
	return strings.Replace(iconName, "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	sizeClasses := extractSizeClasses(iconClass)
	classes := "iconify inline-block"
	if sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

// Heading is the centred title block every home section opens with.
func Heading(title, lead string, visible bool) g.Node {
	return Div(
		Reveal(visibility.FadeDown, visible, "text-center mb-16"),
		H2(Class("text-3xl md:text-4xl font-bold mb-4"), g.Text(title)),
		g.If(lead != "", P(Class("max-w-2xl mx-auto opacity-80"), g.Text(lead))),
	)
}
