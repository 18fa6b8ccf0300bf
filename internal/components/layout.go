package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/NeilHuang625/zcmetal/internal/content"
)

type PageConfig struct {
	Title       string
	Description string
	OGImage     string
	// Path is the request path; it decides the navbar style and sidebar.
	Path string
	// ScrollTo names a section to bring into view after load.
	ScrollTo string
	Year     int
}

// sidebarPaths show the services/solutions sidebar, on exact match or
// for any path below them.
var sidebarPaths = []string{
	"/solutions",
	"/services",
	"/gates",
	"/fences",
	"/balustrades",
	"/metal-works",
}

// ShowSidebar reports whether path gets the sidebar layout.
func ShowSidebar(path string) bool {
	for _, p := range sidebarPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

func Layout(config PageConfig, site *content.Site, asset AssetURL, children ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = site.Company.Name + " | Aluminium Gates, Fences & Balustrades"
	}

	if config.Description == "" {
		config.Description = site.Hero.Subtitle
	}

	if config.OGImage == "" {
		config.OGImage = asset(site.Hero.Background)
	}

	home := config.Path == "/" || config.Path == ""

	var main g.Node
	if ShowSidebar(config.Path) {
		main = Div(
			Class("flex flex-grow pt-16 lg:pt-20"),
			Div(
				Class("hidden lg:block w-[280px] flex-shrink-0"),
				SidebarNav(config.Path, site),
			),
			Div(
				Class("w-full flex-grow"),
				Main(Class("min-h-[calc(100vh-9rem)]"), g.Group(children)),
			),
		)
	} else {
		main = Main(Class("flex-grow"), g.Group(children))
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),

				Link(Rel("icon"), Href(asset(site.Company.Logo))),

				Script(Src("https://cdn.tailwindcss.com")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("font-poppins text-gray-800 bg-white"),
				g.If(config.ScrollTo != "", g.Attr("data-scroll-to", config.ScrollTo)),

				Div(
					Class("flex flex-col min-h-screen"),
					Navbar(site.Company, asset, home),
					main,
					PageFooter(site, asset, config.Year),
				),

				Script(Src("/static/js/reveal.js"), Defer()),
				Script(Src("/static/js/navbar.js"), Defer()),
				Script(Src("/static/js/lightbox.js"), Defer()),
			),
		),
	})
}
