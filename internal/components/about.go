package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/NeilHuang625/zcmetal/internal/content"
	"github.com/NeilHuang625/zcmetal/pkg/visibility"
)

func About(a content.About, asset AssetURL, visible bool) g.Node {
	n := len(a.Highlights)
	return Section(
		ID(SectionAbout),
		RevealRoot(SectionAbout),
		Class("py-24 bg-gray-50"),
		Div(
			Class("container mx-auto px-4 grid md:grid-cols-2 gap-12 items-center"),
			Div(
				Reveal(visibility.FadeUp, visible, ""),
				H2(Class("text-2xl sm:text-3xl font-semibold mb-4"), g.Text(a.Heading)),
				P(Class("text-lg mb-6"), g.Text(a.Lead)),
				g.Map(a.Paragraphs, func(p string) g.Node {
					return P(Class("text-gray-600 mb-4"), g.Text(p))
				}),
			),
			Photo(asset(a.Image), "Our team at work", "rounded-lg shadow-lg w-full object-cover"),
		),
		Div(
			Class("container mx-auto px-4 mt-20"),
			H2(Class("text-3xl font-semibold text-center mb-10"), g.Text("Why Choose Us")),
			Div(
				Class("grid sm:grid-cols-2 lg:grid-cols-4 gap-8"),
				g.Group(mapIndex(a.Highlights, func(i int, h content.Highlight) g.Node {
					return Div(
						Reveal(visibility.FadeUp, visible, "text-center p-6 bg-white rounded-lg shadow-sm"),
						StaggerDelay(visibility.DefaultStagger, i, n),
						Photo(asset(h.Icon), "", "h-14 mx-auto mb-4"),
						H3(Class("text-xl font-semibold mb-2"), g.Text(h.Title)),
						P(Class("text-gray-600"), g.Text(h.Text)),
					)
				})),
			),
		),
	)
}
