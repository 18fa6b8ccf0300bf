package components

import (
	"path"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/NeilHuang625/zcmetal/internal/content"
	"github.com/NeilHuang625/zcmetal/pkg/visibility"
)

// SolutionsIndex lists every case study.
func SolutionsIndex(solutions []content.Solution, asset AssetURL) g.Node {
	return Div(
		Class("px-4 py-10"),
		H1(Class("text-3xl md:text-4xl font-bold text-gray-800 mb-8"), g.Text("Our Solutions")),
		solutionCards(solutions, asset),
	)
}

func solutionCards(solutions []content.Solution, asset AssetURL) g.Node {
	n := len(solutions)
	return Div(
		Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
		g.Group(mapIndex(solutions, func(i int, sol content.Solution) g.Node {
			return A(
				Href("/solutions/"+sol.ID),
				Reveal(visibility.FadeUp, true, "group block bg-white rounded-lg overflow-hidden shadow-md hover:shadow-xl"),
				StaggerDelay(visibility.DefaultStagger, i, n),
				Div(
					Class("h-56 overflow-hidden"),
					Photo(asset(sol.Image), sol.Title, "w-full h-full object-cover transition-transform duration-700 group-hover:scale-110"),
				),
				Div(
					Class("p-6"),
					H3(Class("text-xl font-semibold mb-2 text-gray-800 group-hover:text-blue-600"), g.Text(sol.Title)),
					P(Class("text-gray-600 text-sm"), g.Text(sol.Description)),
				),
			)
		})),
	)
}

// SolutionDetail is one case study with its gallery, videos and links to
// the other studies.
func SolutionDetail(sol content.Solution, others []content.Solution, asset AssetURL) g.Node {
	return Div(
		Div(
			Class("relative h-[60vh] bg-cover bg-center flex items-end"),
			Style("background-image: url('"+asset(sol.Image)+"')"),
			Div(Class("absolute inset-0 bg-gradient-to-t from-black/70 to-transparent")),
			Div(
				Class("relative z-10 p-8"),
				H1(Class("text-3xl md:text-5xl lg:text-6xl font-bold text-white mb-4 drop-shadow-lg"), g.Text(sol.Title)),
				P(Class("text-white/90 max-w-3xl"), g.Text(sol.Description)),
			),
		),

		Div(
			Class("px-4 py-12 grid lg:grid-cols-3 gap-12"),
			Div(
				Class("lg:col-span-2"),
				H2(Class("text-3xl font-bold mb-6 text-gray-800 inline-block border-b-2 border-blue-500 pb-2"), g.Text("Project Overview")),
				P(Class("text-gray-700 mb-6"), g.Text(sol.FullDescription)),
				Ul(
					Class("grid sm:grid-cols-2 gap-2"),
					g.Map(sol.Features, func(f string) g.Node {
						return Li(Class("flex items-center gap-2"), Icon("lucide--check size-4 text-green-600", ""), g.Text(f))
					}),
				),
			),
			Div(
				Class("bg-gray-50 rounded-lg p-6 space-y-4"),
				g.If(sol.Client != "", Div(H3(Class("font-semibold text-xl mb-1 text-gray-800"), g.Text("Client")), P(g.Text(sol.Client)))),
				g.If(sol.Timeline != "", Div(H3(Class("font-semibold text-xl mb-1 text-gray-800"), g.Text("Timeline")), P(g.Text(sol.Timeline)))),
			),
		),

		Div(
			Class("px-4 pb-12 grid md:grid-cols-2 gap-8"),
			Div(
				H3(Class("font-semibold text-xl mb-3 text-gray-800"), g.Text("The Challenge")),
				Ul(
					Class("list-disc pl-5 space-y-2 text-gray-700"),
					g.Map(sol.Challenges, func(c string) g.Node { return Li(g.Text(c)) }),
				),
			),
			Div(
				H3(Class("font-semibold text-xl mb-3 text-gray-800"), g.Text("Our Solution")),
				P(Class("text-gray-700"), g.Text(sol.Approach)),
			),
		),

		g.If(len(sol.Gallery) > 0,
			Div(
				Class("px-4 pb-12"),
				H2(Class("text-3xl font-bold mb-8 text-gray-800 text-center"), g.Text("Project Gallery")),
				Div(
					Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-4"),
					g.Group(mapIndex(sol.Gallery, func(i int, p string) g.Node {
						return A(
							Href(asset(p)),
							g.Attr("target", "_blank"),
							Class("block aspect-video rounded-lg overflow-hidden shadow"),
							Photo(asset(p), sol.Title, "w-full h-full object-cover hover:scale-105 transition-transform duration-500"),
						)
					})),
				),
			),
		),

		g.If(len(sol.Videos) > 0,
			Div(
				Class("px-4 pb-12"),
				H2(Class("text-3xl font-bold mb-8 text-gray-800 text-center"), g.Text("Project Videos")),
				Div(
					Class("grid md:grid-cols-2 gap-6"),
					g.Map(sol.Videos, func(p string) g.Node {
						return g.El("video",
							Class("w-full rounded-lg shadow bg-black aspect-video"),
							Src(asset(p)),
							g.Attr("poster", asset(posterFor(p))),
							g.Attr("controls"),
							g.Attr("preload", "metadata"),
							g.Attr("playsinline"),
						)
					}),
				),
			),
		),

		Div(
			Class("bg-gray-900 text-white text-center py-16 px-4"),
			H2(Class("text-3xl md:text-4xl font-bold mb-6"), g.Text("Ready for Your Custom Solution?")),
			P(Class("mb-8 text-gray-300"), g.Text("Tell us about your property and we'll design something that fits.")),
			A(
				Href(SectionURL(SectionQuote)),
				Class("inline-block bg-white text-gray-900 px-8 py-3 rounded-full font-medium hover:bg-gray-200"),
				g.Text("Get a Quote"),
			),
		),

		g.If(len(others) > 0,
			Div(
				Class("px-4 py-12"),
				H2(Class("text-3xl font-bold mb-8 text-gray-800 text-center"), g.Text("Other Solutions")),
				solutionCards(others, asset),
			),
		),
	)
}

// posterFor maps video/<k>/<k>.mp4 to its thumbnail video/<k>/<k>.jpg.
func posterFor(p string) string {
	return strings.TrimSuffix(p, path.Ext(p)) + ".jpg"
}
