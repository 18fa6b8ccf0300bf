package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/NeilHuang625/zcmetal/internal/content"
)

type navItem struct {
	Title    string
	Href     string
	Active   bool
	Children []navItem
}

// active reports whether path is href or below it.
func active(path, href string) bool {
	return path == href || strings.HasPrefix(path, href+"/")
}

func sidebarItems(path string, site *content.Site) []navItem {
	services := navItem{Title: "Services", Href: "/services"}
	for _, svc := range site.Services {
		href := "/services/" + svc.ID
		child := navItem{Title: svc.Title, Href: href, Active: active(path, href) || path == "/"+svc.ID}
		services.Active = services.Active || child.Active
		services.Children = append(services.Children, child)
	}
	services.Active = services.Active || active(path, "/services")

	solutions := navItem{Title: "Solutions", Href: "/solutions", Active: active(path, "/solutions")}
	for _, sol := range site.Solutions {
		href := "/solutions/" + sol.ID
		solutions.Children = append(solutions.Children, navItem{Title: sol.Title, Href: href, Active: active(path, href)})
	}

	return []navItem{services, solutions}
}

// SidebarNav lists services and solutions. The category holding the current
// page starts expanded.
func SidebarNav(path string, site *content.Site) g.Node {
	return Div(
		Class("h-full py-6 px-6 overflow-y-auto"),
		Nav(
			Class("space-y-8"),
			H3(Class("text-xl font-semibold text-gray-800 mb-2"), g.Text("Search by")),
			Div(Class("border-b border-gray-200 mb-6")),
			g.Map(sidebarItems(path, site), func(item navItem) g.Node {
				linkClass := "flex-grow text-lg font-medium text-gray-700 hover:text-blue-600"
				if item.Active {
					linkClass = "flex-grow text-lg font-medium text-blue-600"
				}
				return Details(
					Class("space-y-3 mb-8"),
					g.If(item.Active, g.Attr("open")),
					Summary(
						Class("flex items-center justify-between cursor-pointer"),
						A(Href(item.Href), Class(linkClass), g.Text(item.Title)),
					),
					Ul(
						Class("pl-5 pt-2 space-y-3 border-l-2 border-gray-200"),
						g.Map(item.Children, func(child navItem) g.Node {
							cls, dot := "text-gray-600 hover:text-blue-600", "bg-gray-400"
							if child.Active {
								cls, dot = "text-blue-600 font-medium", "bg-blue-600 scale-125"
							}
							return Li(
								A(
									Href(child.Href),
									Class("py-1 text-base flex items-center transition-colors "+cls),
									g.If(child.Active, g.Attr("aria-current", "page")),
									Span(Class("w-2 h-2 rounded-full mr-2 "+dot)),
									Span(Class("flex-grow"), g.Text(child.Title)),
								),
							)
						}),
					),
				)
			}),
		),
	)
}
