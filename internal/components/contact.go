package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/NeilHuang625/zcmetal/internal/content"
	"github.com/NeilHuang625/zcmetal/pkg/visibility"
)

func Contact(c content.Contact, asset AssetURL, visible bool) g.Node {
	return Section(
		ID(SectionContact),
		RevealRoot(SectionContact),
		Class("py-24 bg-gray-50"),
		Div(
			Class("container mx-auto px-4 grid lg:grid-cols-2 gap-12"),
			Div(
				Reveal(visibility.FadeUp, visible, ""),
				H2(Class("text-4xl font-bold text-gray-900 mb-4"), g.Text("Contact Us")),
				P(Class("text-gray-600 mb-8"), g.Text("Call, email or drop by. We're happy to talk through your project.")),
				Ul(
					Class("space-y-4"),
					Li(
						Class("flex items-center gap-3"),
						Icon("lucide--phone size-5", "Phone"),
						A(Href("tel:"+c.Phone), Class("hover:underline"), g.Text(c.PhoneDisplay)),
						Span(Class("text-gray-500 text-sm"), g.Text(c.PhoneNote)),
					),
					Li(
						Class("flex items-center gap-3"),
						Icon("lucide--mail size-5", "Email"),
						A(Href("mailto:"+c.Email), Class("hover:underline"), g.Text(c.Email)),
					),
					Li(
						Class("flex items-start gap-3"),
						Icon("lucide--map-pin size-5", "Address"),
						g.El("address", Class("not-italic"), g.Group(addressLines(c.Address))),
					),
				),
				Div(
					Class("flex gap-8 mt-10"),
					g.Map(c.Social, func(s content.Social) g.Node {
						return Div(
							Class("text-center"),
							Photo(asset(s.QR), s.Network+" QR code", "w-28 h-28 object-contain mx-auto"),
							P(Class("mt-2 text-sm font-medium"), g.Text(s.Network)),
							P(Class("text-xs text-gray-500"), g.Text(s.Handle)),
						)
					}),
				),
			),
			Div(
				Reveal(visibility.Fade, visible, "rounded-lg overflow-hidden shadow-lg min-h-[400px]"),
				Delay(3*visibility.DefaultStagger.Base),
				g.El("iframe",
					Src(c.MapEmbedURL),
					Title("Our location"),
					Class("w-full h-full min-h-[400px] border-0"),
					g.Attr("loading", "lazy"),
					g.Attr("referrerpolicy", "no-referrer-when-downgrade"),
					g.Attr("allowfullscreen"),
				),
			),
		),
	)
}

func addressLines(lines []string) []g.Node {
	nodes := make([]g.Node, 0, 2*len(lines))
	for i, l := range lines {
		if i > 0 {
			nodes = append(nodes, Br())
		}
		nodes = append(nodes, g.Text(l))
	}
	return nodes
}
