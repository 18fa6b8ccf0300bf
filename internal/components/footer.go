package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/NeilHuang625/zcmetal/internal/content"
)

func PageFooter(site *content.Site, asset AssetURL, year int) g.Node {
	c := site.Contact

	return Footer(
		Class("bg-gray-900 text-gray-300"),
		Div(
			Class("container mx-auto px-4 py-12 grid grid-cols-2 md:grid-cols-4 gap-8"),

			Div(
				Class("col-span-2"),
				Photo(asset(site.Company.LogoWithName), site.Company.Name, "h-12 brightness-0 invert"),
				P(Class("mt-4 max-w-sm text-sm text-gray-400"), g.Text(site.About.Lead)),
			),

			Div(
				P(Class("font-medium text-white"), g.Text("Services")),
				Div(
					Class("flex flex-col space-y-1.5 mt-4 text-sm"),
					g.Map(site.Services, func(svc content.Service) g.Node {
						return A(Href("/services/"+svc.ID), Class("hover:text-white"), g.Text(svc.Title))
					}),
				),
			),

			Div(
				P(Class("font-medium text-white"), g.Text("Contact")),
				Div(
					Class("flex flex-col space-y-1.5 mt-4 text-sm"),
					A(Href("tel:"+c.Phone), Class("hover:text-white"), g.Text(c.PhoneDisplay)),
					A(Href("mailto:"+c.Email), Class("hover:text-white"), g.Text(c.Email)),
					g.Map(c.Address, func(line string) g.Node {
						return Span(g.Text(line))
					}),
				),
			),
		),

		Div(
			Class("border-t border-gray-800 py-6 text-center text-sm text-gray-500"),
			P(g.Text(fmt.Sprintf("© %d %s. All rights reserved.", year, site.Company.Name))),
		),
	)
}
