package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/NeilHuang625/zcmetal/internal/content"
	"github.com/NeilHuang625/zcmetal/pkg/visibility"
)

func Hero(h content.Hero, asset AssetURL, visible bool) g.Node {
	return Section(
		ID(SectionHero),
		RevealRoot(SectionHero),
		Class("relative h-screen flex items-center justify-center text-white bg-cover bg-center"),
		Style("background-image: url('"+asset(h.Background)+"')"),

		Div(Class("absolute inset-0 bg-black/50")),

		Div(
			Class("relative z-10 text-center px-6 max-w-4xl"),
			H1(
				Reveal(visibility.FadeDown, visible, "text-4xl md:text-7xl tracking-normal leading-tight mb-6"),
				g.Text(h.Title),
			),
			P(
				Reveal(visibility.FadeUp, visible, "text-lg md:text-2xl font-light mb-10"),
				Delay(visibility.DefaultStagger.Base*3),
				g.Text(h.Subtitle),
			),
			Div(
				Reveal(visibility.FadeUp, visible, "flex flex-wrap justify-center gap-4"),
				Delay(visibility.DefaultStagger.Base*5),
				A(
					Href(SectionURL(SectionQuote)),
					Class("bg-white text-gray-900 px-8 py-3 rounded-full font-medium hover:bg-gray-200"),
					g.Text("Get a Free Quote"),
				),
				A(
					Href(SectionURL(SectionRecentWork)),
					Class("border border-white px-8 py-3 rounded-full font-medium hover:bg-white/10"),
					g.Text("View Our Work"),
				),
			),
		),
	)
}
