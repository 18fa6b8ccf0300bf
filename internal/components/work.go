package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/NeilHuang625/zcmetal/internal/content"
	"github.com/NeilHuang625/zcmetal/pkg/visibility"
)

// Work is the "Our Work" carousel, a horizontally scrolling strip.
func Work(slides []content.Slide, asset AssetURL, visible bool) g.Node {
	n := len(slides)
	return Section(
		ID(SectionWork),
		RevealRoot(SectionWork),
		Class("py-20 bg-zinc-900"),
		Div(
			Class("container mx-auto px-4"),
			H2(
				Reveal(visibility.FadeDown, visible, "text-2xl md:text-3xl font-semibold mb-6 md:mb-10 text-zinc-50"),
				g.Text("Our Work"),
			),
			Div(
				Class("flex gap-6 overflow-x-auto snap-x snap-mandatory pb-4"),
				g.Group(mapIndex(slides, func(i int, s content.Slide) g.Node {
					return Div(
						Reveal(visibility.Fade, visible, "relative flex-none w-80 md:w-[28rem] h-96 snap-start rounded-lg overflow-hidden"),
						StaggerDelay(visibility.DefaultStagger, i, n),
						Photo(asset(s.Image), s.Title, "absolute inset-0 w-full h-full object-cover"),
						Div(
							Class("absolute inset-x-0 bottom-0 p-6 bg-gradient-to-t from-black/80 to-transparent"),
							H3(Class("text-lg sm:text-xl md:text-3xl tracking-wider text-zinc-50"), g.Text(s.Title)),
							P(Class("text-zinc-300 mt-2"), g.Text(s.Description)),
						),
					)
				})),
			),
		),
	)
}
