package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/NeilHuang625/zcmetal/domain/catalog"
	"github.com/NeilHuang625/zcmetal/internal/content"
	"github.com/NeilHuang625/zcmetal/pkg/visibility"
)

// headerThumbs is how many gallery thumbnails the detail header shows
// before collapsing the rest into a "+N" badge.
const headerThumbs = 3

// ServiceDetail is the page of one service: header, features, its gallery
// in folder order and a contact call to action.
func ServiceDetail(svc content.Service, v *catalog.View, links GalleryLinks) g.Node {
	items := v.State.Items

	return Div(
		Class("w-full bg-white tracking-wide"),

		Div(
			Class("relative bg-gradient-to-r from-gray-50 to-gray-100 border-b border-gray-200"),
			Div(
				Class("px-4 py-8 flex flex-col md:flex-row md:items-end justify-between gap-4"),
				Div(
					H1(
						Class("text-3xl md:text-4xl font-bold text-gray-800 mb-2 relative"),
						g.Text(svc.Title),
						Span(Class("absolute -bottom-1 left-0 w-16 h-1 bg-blue-600 rounded-full")),
					),
					P(Class("text-gray-600 max-w-2xl mt-3"), g.Text(svc.Description)),
				),
				HeaderThumbs(items),
			),
		),

		Div(
			Class("px-4 py-6"),
			P(Class("text-gray-700 mb-6 max-w-4xl"), g.Text(svc.LongDescription)),

			Div(
				Class("bg-gray-50 rounded-lg p-4 shadow-sm mb-6"),
				H2(
					Class("text-lg font-semibold mb-3 text-gray-800 flex items-center"),
					Span(Class("w-1.5 h-5 bg-blue-600 rounded-full mr-2.5")),
					g.Text("Key Features"),
				),
				Ul(
					Class("grid grid-cols-1 md:grid-cols-2 gap-2"),
					g.Map(svc.Features, func(f string) g.Node {
						return Li(
							Class("flex items-start"),
							Span(Class("bg-green-100 rounded-full p-1 text-green-600 mr-2 flex-shrink-0"), Icon("lucide--check size-3", "")),
							Span(Class("text-gray-700 text-sm"), g.Text(f)),
						)
					}),
				),
			),

			g.If(len(items) > 0,
				Div(
					ID("gallery"),
					Class("mb-6"),
					H2(
						Class("text-lg font-semibold mb-4 text-gray-800 flex items-center"),
						Span(Class("w-1.5 h-5 bg-blue-600 rounded-full mr-2.5")),
						g.Text("Gallery"),
					),
					serviceGrid(svc, v, links),
					g.If(!v.Pager.Exhausted(),
						Div(
							Class("text-center mt-8"),
							A(
								Href(links.URL(v.Pager.NextShown(), "")),
								Class("inline-block bg-gray-800 hover:bg-gray-900 text-white px-8 py-3 rounded-full"),
								g.Textf("Show more (%d)", v.Pager.Remaining()),
							),
						),
					),
				),
			),

			Div(
				Class("bg-gradient-to-r from-blue-600 to-blue-700 rounded-lg p-5 text-white shadow-sm"),
				H3(Class("text-lg font-medium mb-2"), g.Textf("Interested in our %s?", strings.ToLower(svc.Title))),
				P(Class("mb-4 opacity-90 text-sm"), g.Text("Contact us today for a personalized consultation and free quote.")),
				A(
					Href(SectionURL(SectionContact)),
					Class("inline-flex items-center px-5 py-2 bg-white text-blue-700 font-medium rounded-full text-sm hover:bg-gray-100"),
					g.Text("Contact Us"),
					Icon("lucide--arrow-right ml-1.5 size-4", ""),
				),
			),
		),

		Lightbox(v, links),
	)
}

// HeaderThumbs shows the first few photos as overlapping circles, with a
// badge counting the rest.
func HeaderThumbs(items []catalog.Asset) g.Node {
	if len(items) == 0 {
		return nil
	}
	shown := items[:min(headerThumbs, len(items))]
	return Div(
		Class("hidden md:flex -space-x-3"),
		g.Group(mapIndex(shown, func(i int, a catalog.Asset) g.Node {
			return Div(
				Class("w-12 h-12 rounded-full border-2 border-white overflow-hidden shadow-sm"),
				Style(fmt.Sprintf("z-index: %d", headerThumbs-i)),
				Photo(a.URL, "", "w-full h-full object-cover"),
			)
		})),
		g.If(len(items) > headerThumbs,
			Div(
				Class("w-12 h-12 rounded-full bg-gray-800 border-2 border-white flex items-center justify-center text-white text-xs shadow-sm"),
				g.Textf("+%d", len(items)-headerThumbs),
			),
		),
	)
}

func serviceGrid(svc content.Service, v *catalog.View, links GalleryLinks) g.Node {
	n := len(v.Visible)
	return Div(
		Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-3"),
		g.Group(mapIndex(v.Visible, func(i int, a catalog.Asset) g.Node {
			return A(
				Href(links.URL(v.Pager.Shown(), a.ID)),
				Reveal(visibility.Fade, true, "block aspect-square rounded-lg overflow-hidden shadow-sm hover:shadow-md"),
				StaggerDelay(visibility.DefaultStagger, i, n),
				Photo(a.URL, fmt.Sprintf("%s example %d", svc.Title, i+1), "w-full h-full object-cover hover:scale-105 transition-transform duration-500"),
			)
		})),
	)
}
