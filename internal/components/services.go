package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/NeilHuang625/zcmetal/internal/content"
	"github.com/NeilHuang625/zcmetal/pkg/visibility"
)

// Services is the grid of service cards, each linking to its detail page.
func Services(services []content.Service, asset AssetURL, visible bool) g.Node {
	n := len(services)
	return Section(
		ID(SectionServices),
		RevealRoot(SectionServices),
		Class("py-24 overflow-hidden"),
		Div(
			Class("container mx-auto px-4"),
			Heading("Our Services", "From custom gates to precision metal work, we design, fabricate and install everything in house.", visible),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-6"),
				g.Group(mapIndex(services, func(i int, svc content.Service) g.Node {
					return A(
						Href("/services/"+svc.ID),
						Reveal(visibility.FadeUp, visible, "group relative h-96 rounded-lg overflow-hidden shadow-lg"),
						StaggerDelay(visibility.DefaultStagger, i, n),
						Photo(asset(svc.Image), svc.Title, "absolute inset-0 w-full h-full object-cover transition-transform duration-700 group-hover:scale-110"),
						Div(Class("absolute inset-0 bg-gradient-to-t from-black/80 to-transparent")),
						Div(
							Class("absolute bottom-0 p-6"),
							H3(Class("text-2xl font-bold text-white mb-2"), g.Text(svc.Title)),
							P(Class("text-gray-200 text-sm"), g.Text(svc.Description)),
							Ul(
								Class("mt-3 flex flex-wrap gap-2"),
								g.Map(svc.Highlights, func(h string) g.Node {
									return Li(Class("text-xs text-white bg-white/20 rounded-full px-2 py-0.5"), g.Text(h))
								}),
							),
						),
					)
				})),
			),
		),
	)
}

// mapIndex is g.Map with the element index.
func mapIndex[T any](ts []T, cb func(int, T) g.Node) []g.Node {
	nodes := make([]g.Node, 0, len(ts))
	for i, t := range ts {
		nodes = append(nodes, cb(i, t))
	}
	return nodes
}
