package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/NeilHuang625/zcmetal/domain/catalog"
	"github.com/NeilHuang625/zcmetal/pkg/visibility"
)

// VideoShowcase renders the numbered project videos. When the section is
// in view on first render the first clip autoplays muted.
func VideoShowcase(v *catalog.View, visible bool) g.Node {
	if v.Empty() {
		return Section(
			ID(SectionVideos),
			RevealRoot(SectionVideos),
			Class("bg-gray-900 text-white py-20"),
			Div(
				Class("container mx-auto px-4 text-center"),
				H2(Class("text-3xl font-bold mb-4"), g.Text("Our Work in Action")),
				P(Class("text-gray-400"), g.Text("No videos available at the moment. Please check back later.")),
			),
		)
	}

	n := len(v.Visible)
	return Section(
		ID(SectionVideos),
		RevealRoot(SectionVideos),
		Class("bg-gray-900 text-white py-20 overflow-hidden"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Reveal(visibility.FadeDown, visible, "text-center mb-16"),
				H2(Class("text-3xl md:text-4xl font-bold mb-4"), g.Text("Our Work in Action")),
				P(Class("text-gray-400 max-w-2xl mx-auto"), g.Text("Watch our gates and fences being built and installed across Auckland.")),
			),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Group(mapIndex(v.Visible, func(i int, a catalog.Asset) g.Node {
					autoplay := i == 0 && visible
					return Div(
						Reveal(visibility.FadeUp, visible, "rounded-lg overflow-hidden bg-gray-800 shadow-lg"),
						StaggerDelay(visibility.DefaultStagger, i, n),
						g.El("video",
							Class("w-full aspect-video object-cover bg-black"),
							Src(a.URL),
							g.Attr("poster", a.ThumbnailURL),
							g.Attr("preload", "metadata"),
							g.Attr("controls"),
							g.Attr("playsinline"),
							g.If(autoplay, g.Group([]g.Node{g.Attr("autoplay"), g.Attr("muted"), g.Attr("loop")})),
							g.Attr("data-video-key", a.Category),
						),
						Div(
							Class("p-5"),
							H3(Class("text-lg font-bold text-white mb-1"), g.Text(a.Title)),
							P(Class("text-gray-400 text-sm"), g.Text(a.Description)),
						),
					)
				})),
			),
		),
	)
}
