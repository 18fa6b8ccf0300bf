package components

import (
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/NeilHuang625/zcmetal/domain/catalog"
	"github.com/NeilHuang625/zcmetal/pkg/visibility"
)

// GalleryLinks builds the links of a paginated gallery. Every link repeats
// the seed, so a random-once order survives "load more" and the lightbox.
type GalleryLinks struct {
	Path   string
	Seed   uint64
	Anchor string
}

// URL returns the gallery with shown items displayed and, if photo is not
// empty, the lightbox open on it.
func (l GalleryLinks) URL(shown int, photo string) string {
	q := url.Values{}
	if l.Seed != 0 {
		q.Set("seed", strconv.FormatUint(l.Seed, 10))
	}
	if shown > catalog.PageSize {
		q.Set("shown", strconv.Itoa(shown))
	}
	if photo != "" {
		q.Set("photo", photo)
	}
	u := l.Path
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	if l.Anchor != "" {
		u += "#" + l.Anchor
	}
	return u
}

var categoryLinks = []struct {
	Label string
	Href  string
}{
	{"Gates", "/services/gates"},
	{"Fences", "/services/fences"},
	{"Balustrades", "/services/balustrades"},
	{"Metal Works", "/services/metal-works"},
}

// RecentWork renders the shuffled gallery of every project photo.
func RecentWork(v *catalog.View, links GalleryLinks, visible bool) g.Node {
	if v.State.Loading {
		return Section(
			ID(SectionRecentWork),
			RevealRoot(SectionRecentWork),
			Class("bg-gray-100 py-20"),
			Div(
				Class("container mx-auto px-4 text-center"),
				H2(Class("text-3xl font-bold mb-4"), g.Text("Loading our gallery...")),
				Div(Class("flex justify-center"), Div(Class("w-16 h-16 border-4 border-gray-300 border-t-blue-500 rounded-full animate-spin"))),
			),
		)
	}

	if v.Empty() {
		return Section(
			ID(SectionRecentWork),
			RevealRoot(SectionRecentWork),
			Class("bg-gray-100 py-20"),
			Div(
				Class("container mx-auto px-4 text-center"),
				H2(Class("text-3xl font-bold mb-4"), g.Text("Our Recent Work")),
				P(Class("text-gray-600"), g.Text("No gallery images found. Please check back soon!")),
			),
		)
	}

	return Section(
		ID(SectionRecentWork),
		RevealRoot(SectionRecentWork),
		Class("bg-gray-100 py-20 overflow-hidden"),
		Div(
			Class("container mx-auto px-4"),
			Heading("Our Recent Work", "Explore our latest projects showcasing quality craftsmanship, innovative design, and attention to detail.", visible),

			Div(
				Reveal(visibility.FadeDown, visible, "flex flex-wrap justify-center mb-12"),
				Delay(2*visibility.DefaultStagger.Base),
				g.Map(categoryLinks, func(l struct {
					Label string
					Href  string
				}) g.Node {
					return A(
						Href(l.Href),
						Class("px-6 py-2.5 m-1 bg-white hover:bg-gray-800 hover:text-white rounded-full shadow-sm transition-colors duration-300"),
						g.Text(l.Label),
					)
				}),
			),

			GalleryGrid(v, links, visible),

			g.If(!v.Pager.Exhausted(),
				Div(
					Reveal(visibility.FadeUp, visible, "text-center mt-12"),
					Delay(8*visibility.DefaultStagger.Base),
					A(
						Href(links.URL(v.Pager.NextShown(), "")),
						Class("inline-block bg-gray-800 hover:bg-gray-900 text-white px-8 py-3 rounded-full shadow-md transition-colors duration-300"),
						g.Attr("data-load-more", ""),
						g.Text("Load More Projects"),
					),
				),
			),

			g.If(v.Pager.AllViewed(),
				Div(Class("text-center mt-12 text-gray-600"), g.Text("You've viewed all projects in our gallery.")),
			),
		),

		Lightbox(v, links),
	)
}

// GalleryGrid renders the displayed items with staggered entry. Each item
// opens the lightbox.
func GalleryGrid(v *catalog.View, links GalleryLinks, visible bool) g.Node {
	n := len(v.Visible)
	return Div(
		Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-6 md:gap-8"),
		g.Group(mapIndex(v.Visible, func(i int, a catalog.Asset) g.Node {
			return A(
				Href(links.URL(v.Pager.Shown(), a.ID)),
				ID("photo-"+a.ID),
				Reveal(visibility.FadeUp, visible, "block overflow-hidden rounded-lg shadow-md hover:shadow-xl cursor-pointer group"),
				StaggerDelay(visibility.DefaultStagger, i, n),
				Div(
					Class("relative h-64 sm:h-72 overflow-hidden bg-gray-200"),
					Photo(a.URL, a.Title, "w-full h-full object-cover transition-transform duration-700 group-hover:scale-110"),
					Div(Class("absolute top-3 right-3 px-3 py-1 bg-black/70 text-white text-xs rounded-full capitalize"), g.Text(a.Label())),
					Div(
						Class("absolute inset-0 bg-black/50 opacity-0 group-hover:opacity-100 transition-opacity duration-300 flex flex-col justify-end p-6"),
						P(Class("text-white font-medium"), g.Text(a.Title)),
						P(Class("text-gray-300 mt-1"), g.Text("View details")),
					),
				),
			)
		})),
	)
}

// Lightbox renders the full-screen viewer when one is open. Its previous
// and next links wrap within the displayed items; lightbox.js binds them to
// the arrow keys and the close link to Escape.
func Lightbox(v *catalog.View, links GalleryLinks) g.Node {
	if v.Lightbox == nil {
		return nil
	}
	cur, ok := v.Lightbox.Current()
	if !ok {
		return nil
	}
	prev, next := v.Lightbox.Neighbours()
	shown := v.Pager.Shown()

	return Div(
		ID("lightbox"),
		Class("fixed inset-0 bg-black/90 z-50 flex items-center justify-center p-4"),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "true"),
		A(
			Href(links.URL(shown, "")),
			Class("absolute top-4 right-4 text-white hover:text-gray-300"),
			g.Attr("data-lightbox-close", ""),
			Icon("lucide--x size-6", "Close"),
		),
		Div(
			Class("max-w-full max-h-[85vh]"),
			Photo(cur.URL, cur.Title, "max-w-full max-h-[85vh] object-contain"),
		),
		A(
			Href(links.URL(shown, prev)),
			Class("absolute left-4 top-1/2 -translate-y-1/2 p-2 rounded-full bg-black/50 text-white hover:bg-black/70"),
			g.Attr("data-lightbox-prev", ""),
			Icon("lucide--chevron-left size-5", "Previous"),
		),
		A(
			Href(links.URL(shown, next)),
			Class("absolute right-4 top-1/2 -translate-y-1/2 p-2 rounded-full bg-black/50 text-white hover:bg-black/70"),
			g.Attr("data-lightbox-next", ""),
			Icon("lucide--chevron-right size-5", "Next"),
		),
		Div(
			Class("absolute bottom-8 left-0 w-full text-center"),
			Div(
				Class("bg-black/50 text-white py-2 px-4 rounded-lg inline-block"),
				P(Class("font-medium text-sm mb-1"), g.Text(cur.Title)),
				g.If(cur.Category != "", P(Class("text-xs text-gray-300 capitalize"), g.Textf("Category: %s", cur.Label()))),
			),
		),
	)
}
