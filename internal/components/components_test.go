package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/NeilHuang625/zcmetal/domain/catalog"
	"github.com/NeilHuang625/zcmetal/internal/content"
	"github.com/NeilHuang625/zcmetal/pkg/visibility"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func assets(n int) []catalog.Asset {
	out := make([]catalog.Asset, n)
	for i := range out {
		out[i] = catalog.Asset{
			ID:       fmt.Sprintf("a%d.jpg", i),
			URL:      fmt.Sprintf("/media/gallery/gate/a%d.jpg", i),
			Category: catalog.CategoryGates,
			Title:    fmt.Sprintf("Gate %d", i),
		}
	}
	return out
}

func view(items []catalog.Asset, shown int) *catalog.View {
	p := catalog.PagerAt(len(items), shown)
	return &catalog.View{
		State:   catalog.State{Kind: catalog.KindGalleryAll, Status: catalog.StatusReady, Items: items},
		Pager:   p,
		Visible: p.Visible(items),
	}
}

func TestGalleryLinks_URL(t *testing.T) {
	tests := []struct {
		name  string
		links GalleryLinks
		shown int
		photo string
		want  string
	}{
		{"first page", GalleryLinks{Path: "/"}, catalog.PageSize, "", "/"},
		{"seed and anchor", GalleryLinks{Path: "/", Seed: 42, Anchor: SectionRecentWork}, 18, "", "/?seed=42&shown=18#recent-work"},
		{"photo", GalleryLinks{Path: "/services/gates", Anchor: "gallery"}, 9, "a1.jpg", "/services/gates?photo=a1.jpg#gallery"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.links.URL(tt.shown, tt.photo))
		})
	}
}

func TestShowSidebar(t *testing.T) {
	assert.True(t, ShowSidebar("/services"))
	assert.True(t, ShowSidebar("/services/gates"))
	assert.True(t, ShowSidebar("/solutions/modern-gates"))
	assert.False(t, ShowSidebar("/"))
	assert.False(t, ShowSidebar("/servicesx"))
}

func TestSectionURL(t *testing.T) {
	assert.Equal(t, "/?section=contact#contact", SectionURL(SectionContact))
}

func TestReveal(t *testing.T) {
	hidden := render(t, g.El("div", Reveal(visibility.FadeUp, false, "block")))
	assert.Contains(t, hidden, `class="block `+visibility.FadeUp.Class(false)+`"`)
	assert.NotContains(t, hidden, "data-visible")

	shown := render(t, g.El("div", Reveal(visibility.Fade, true, "")))
	assert.Contains(t, shown, `class="`+visibility.Fade.Class(true)+`"`)
	assert.Contains(t, shown, `data-visible="true"`)
}

func TestRecentWork_Empty(t *testing.T) {
	html := render(t, RecentWork(view([]catalog.Asset{}, 0), GalleryLinks{Path: "/"}, true))
	assert.Contains(t, html, "No gallery images found. Please check back soon!")
}

func TestRecentWork_Loading(t *testing.T) {
	v := &catalog.View{State: catalog.State{Status: catalog.StatusLoading, Loading: true}}
	html := render(t, RecentWork(v, GalleryLinks{Path: "/"}, true))
	assert.Contains(t, html, "Loading our gallery...")
}

func TestRecentWork_Pagination(t *testing.T) {
	links := GalleryLinks{Path: "/", Seed: 7, Anchor: SectionRecentWork}

	html := render(t, RecentWork(view(assets(12), 0), links, true))
	assert.Equal(t, 9, strings.Count(html, `id="photo-`))
	assert.Contains(t, html, "Load More Projects")
	assert.Contains(t, html, `href="/?seed=7&amp;shown=12#recent-work"`)
	assert.NotContains(t, html, "viewed all projects")

	html = render(t, RecentWork(view(assets(12), 12), links, true))
	assert.Equal(t, 12, strings.Count(html, `id="photo-`))
	assert.NotContains(t, html, "Load More Projects")
	assert.Contains(t, html, "You&#39;ve viewed all projects in our gallery.")
}

func TestRecentWork_SmallGalleryHasNoViewedAllNote(t *testing.T) {
	html := render(t, RecentWork(view(assets(4), 0), GalleryLinks{Path: "/"}, true))
	assert.NotContains(t, html, "Load More Projects")
	assert.NotContains(t, html, "viewed all projects")
}

func TestLightbox(t *testing.T) {
	v := view(assets(3), 0)
	assert.Nil(t, Lightbox(v, GalleryLinks{Path: "/"}))

	v.Lightbox = catalog.NewLightbox(v.Visible)
	require.True(t, v.Lightbox.Select("a0.jpg"))

	html := render(t, Lightbox(v, GalleryLinks{Path: "/"}))
	assert.Contains(t, html, `id="lightbox"`)
	assert.Contains(t, html, `href="/?photo=a2.jpg" class="absolute left-4`, "previous wraps to the last item")
	assert.Contains(t, html, `href="/?photo=a1.jpg" class="absolute right-4`)
	assert.Contains(t, html, "Category: gates")
}

func TestVideoShowcase(t *testing.T) {
	empty := render(t, VideoShowcase(view([]catalog.Asset{}, 0), true))
	assert.Contains(t, empty, "No videos available at the moment. Please check back later.")

	clips := []catalog.Asset{
		{ID: "1", URL: "/media/video/1/1.mp4", ThumbnailURL: "/media/video/1/1.jpg", Title: "One", Key: 1},
		{ID: "2", URL: "/media/video/2/2.mp4", ThumbnailURL: "/media/video/2/2.jpg", Title: "Two", Key: 2},
	}
	html := render(t, VideoShowcase(view(clips, 0), true))
	assert.Equal(t, 2, strings.Count(html, "<video"))
	assert.Equal(t, 1, strings.Count(html, "autoplay"))
	assert.Contains(t, html, `poster="/media/video/1/1.jpg"`)

	html = render(t, VideoShowcase(view(clips, 0), false))
	assert.NotContains(t, html, "autoplay")
}

func TestServiceDetail(t *testing.T) {
	site, err := content.Load()
	require.NoError(t, err)
	svc, ok := site.Service("gates")
	require.True(t, ok)

	html := render(t, ServiceDetail(svc, view(assets(5), 0), GalleryLinks{Path: "/services/gates", Anchor: "gallery"}))
	assert.Contains(t, html, svc.Title)
	assert.Contains(t, html, "Key Features")
	assert.Contains(t, html, "+2")
	assert.Contains(t, html, `href="/?section=contact#contact"`)
	assert.NotContains(t, html, "Show more")
}

func TestServiceDetail_NoPhotos(t *testing.T) {
	svc := content.Service{ID: "gates", Title: "Gates", Features: []string{"Powder coated"}}
	html := render(t, ServiceDetail(svc, view([]catalog.Asset{}, 0), GalleryLinks{Path: "/services/gates"}))
	assert.NotContains(t, html, `id="gallery"`)
	assert.Contains(t, html, "Interested in our gates?")
}

func TestPosterFor(t *testing.T) {
	assert.Equal(t, "video/3/3.jpg", posterFor("video/3/3.mp4"))
}

func TestSectionOptions(t *testing.T) {
	assert.Equal(t, 0.07, SectionOptions(SectionServices).Threshold)
	assert.Equal(t, "-50px", SectionOptions(SectionVideos).RootMargin)
	assert.Equal(t, visibility.Options{Threshold: visibility.DefaultThreshold, RootMargin: visibility.DefaultRootMargin}, SectionOptions(SectionContact))
}

func TestRevealRoot(t *testing.T) {
	html := render(t, VideoShowcase(view([]catalog.Asset{}, 0), true))
	assert.Contains(t, html, `id="videos" data-reveal-root="" data-threshold="0.1" data-root-margin="-50px"`)

	html = render(t, g.El("section", RevealRoot(SectionServices)))
	assert.Contains(t, html, `data-threshold="0.07"`)
}
