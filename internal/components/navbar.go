package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/NeilHuang625/zcmetal/internal/content"
)

const solidClass = "bg-white/90 backdrop-blur shadow-md"

var menuLinks = []struct {
	Label   string
	Section string
}{
	{"Services", SectionServices},
	{"About", SectionAbout},
	{"Recent Work", SectionRecentWork},
	{"Videos", SectionVideos},
	{"Contact", SectionContact},
}

// Navbar is fixed to the top. On the home page it starts transparent over
// the hero; navbar.js makes it solid past 400px and hides it while
// scrolling down.
func Navbar(company content.Company, asset AssetURL, home bool) g.Node {
	barClass := solidClass
	if home {
		barClass = "bg-transparent"
	}

	return g.Group([]g.Node{
		Nav(
			ID("navbar"),
			g.Attr("data-home", boolAttr(home)),
			g.Attr("data-solid", solidClass),
			Class("fixed top-0 left-0 w-full z-50 px-6 py-4 transition-all duration-300 ease-in-out "+barClass),
			Div(
				Class("flex justify-between items-center"),
				A(Href("/"), Class("flex items-center z-50"), Logo(company, asset, home)),
				Div(
					Class("flex items-center space-x-4"),
					A(
						Href(SectionURL(SectionQuote)),
						Class("bg-gradient-to-r from-gray-500 to-gray-800 text-white px-5 py-2 rounded-full font-extralight tracking-wider border border-gray-400 shadow-lg hover:scale-105"),
						g.Text("Get Quote"),
					),
					Label(
						For("menu-toggle"),
						Class("relative z-50 w-10 h-10 flex flex-col justify-center items-center cursor-pointer"),
						g.Attr("aria-label", "Toggle menu"),
						Icon("lucide--menu size-6", ""),
					),
				),
			),
		),

		Input(ID("menu-toggle"), Type("checkbox"), Class("peer hidden")),
		Div(
			Class("fixed inset-0 z-40 flex flex-col justify-center items-center bg-gradient-to-br from-gray-800 to-gray-900 opacity-0 invisible peer-checked:opacity-100 peer-checked:visible transition-all duration-500"),
			Ul(
				Class("text-center space-y-8"),
				g.Map(menuLinks, func(l struct {
					Label   string
					Section string
				}) g.Node {
					return Li(A(
						Href(SectionURL(l.Section)),
						g.Attr("data-menu-link", ""),
						Class("block text-gray-200 text-3xl font-semibold hover:text-gray-400 hover:translate-x-2 transition-all duration-300"),
						g.Text(l.Label),
					))
				}),
			),
		),
	})
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
