package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ids(items []Asset) []string {
	out := make([]string, len(items))
	for i, a := range items {
		out[i] = a.ID
	}
	return out
}

func newTestLoader(src Source, spec Spec) *Loader {
	return NewLoader(src, spec, WithConcurrency(2), WithLogger(testLogger()))
}

func TestLoader_GalleryByService(t *testing.T) {
	l := newTestLoader(NewFSSource(mediaFS(), "/media"), Spec{
		Kind:     KindGalleryByService,
		Pattern:  "gallery/gate/*.{png,jpg,jpeg,svg}",
		Ordering: EnumerationOrder{},
	})
	assert.Equal(t, StatusIdle, l.State().Status)

	st := l.Load(context.Background())
	require.Equal(t, StatusReady, st.Status)
	assert.False(t, st.Loading)
	assert.NotEmpty(t, st.MountID)
	assert.Zero(t, st.Seed)
	require.Len(t, st.Items, 2)

	first := st.Items[0]
	assert.Equal(t, "gate1.jpg", first.ID)
	assert.Equal(t, CategoryGates, first.Category)
	assert.Equal(t, "Gate", first.Title)
	assert.True(t, strings.HasPrefix(first.URL, "/media/gallery/gate/gate1.jpg?v="))
	assert.Equal(t, "Sliding Gate", st.Items[1].Title)
}

func TestLoader_LoadsOnce(t *testing.T) {
	fsys := mediaFS()
	l := newTestLoader(NewFSSource(fsys, "/media"), Spec{
		Kind:     KindGalleryByService,
		Pattern:  "gallery/fence/*.jpg",
		Ordering: EnumerationOrder{},
	})
	st := l.Load(context.Background())
	require.Len(t, st.Items, 1)

	fsys["gallery/fence/new.jpg"] = &fstest.MapFile{Data: []byte("n")}
	again := l.Load(context.Background())
	assert.Equal(t, st, again, "published state never changes within a mount")

	// callers cannot mutate the published items
	again.Items[0].Title = "changed"
	assert.Equal(t, "Pool Fence", l.State().Items[0].Title)
}

func TestLoader_RandomOnce(t *testing.T) {
	src := NewFSSource(mediaFS(), "/media")
	spec := Spec{Kind: KindGalleryAll, Pattern: "gallery/**/*.{jpg,jpeg,png,svg}", Ordering: RandomOnce{}}

	l := newTestLoader(src, spec)
	st := l.Load(context.Background())
	require.Equal(t, StatusReady, st.Status)
	require.Len(t, st.Items, 5)
	require.NotZero(t, st.Seed, "a seed is picked when none is given")

	for range 3 {
		assert.Equal(t, ids(st.Items), ids(l.State().Items), "order is stable across reads")
	}

	spec.Ordering = RandomOnce{Seed: st.Seed}
	replay := newTestLoader(src, spec).Load(context.Background())
	assert.Equal(t, ids(st.Items), ids(replay.Items), "same seed reproduces the order")
	assert.Equal(t, st.Seed, replay.Seed)
	assert.NotEqual(t, st.MountID, replay.MountID)

	assert.ElementsMatch(t, []string{
		"gate1.jpg", "sliding_gate.png", "pool_fence.jpg", "glass 01.jpg", "stairs.svg",
	}, ids(st.Items))
}

func TestShuffle_Deterministic(t *testing.T) {
	a, b := assets(20), assets(20)
	shuffle(a, 42)
	shuffle(b, 42)
	assert.Equal(t, a, b)
	assert.ElementsMatch(t, assets(20), a)
}

func TestLoader_Empty(t *testing.T) {
	l := newTestLoader(NewFSSource(fstest.MapFS{}, "/media"), Spec{
		Kind:     KindGalleryAll,
		Pattern:  "gallery/**/*.jpg",
		Ordering: RandomOnce{},
	})
	st := l.Load(context.Background())
	assert.Equal(t, StatusReady, st.Status)
	assert.NotNil(t, st.Items)
	assert.Empty(t, st.Items)
	assert.NotNil(t, l.State().Items, "later snapshots keep the empty slice")

	raw, err := json.Marshal(st)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"items":[]`)
}

func TestLoader_EnumerationFailure(t *testing.T) {
	l := newTestLoader(NewFSSource(mediaFS(), "/media"), Spec{
		Kind:     KindGalleryAll,
		Pattern:  "gallery/[",
		Ordering: RandomOnce{},
	})
	st := l.Load(context.Background())
	assert.Equal(t, StatusFailed, st.Status)
	assert.False(t, st.Loading)
	assert.NotNil(t, st.Items)
	assert.Empty(t, st.Items)
	assert.True(t, st.Done())

	again := l.Load(context.Background())
	assert.NotNil(t, again.Items, "a finished loader returns the published empty slice")
}

// flakySource fails to resolve paths containing "broken".
type flakySource struct {
	*FSSource
}

func (s flakySource) Resolve(ctx context.Context, p string) (string, error) {
	if strings.Contains(p, "broken") {
		return "", errors.New("unreadable")
	}
	return s.FSSource.Resolve(ctx, p)
}

func TestLoader_ResolveFailureDropsItem(t *testing.T) {
	fsys := fstest.MapFS{
		"gallery/gate/a.jpg":      {Data: []byte("a")},
		"gallery/gate/broken.jpg": {Data: []byte("b")},
		"gallery/gate/c.jpg":      {Data: []byte("c")},
	}
	before := testutil.ToFloat64(AssetsDropped.WithLabelValues(string(KindGalleryByService), "resolve_error"))

	l := newTestLoader(flakySource{NewFSSource(fsys, "/media")}, Spec{
		Kind:     KindGalleryByService,
		Pattern:  "gallery/gate/*.jpg",
		Ordering: EnumerationOrder{},
	})
	st := l.Load(context.Background())
	assert.Equal(t, StatusReady, st.Status)
	assert.Equal(t, []string{"a.jpg", "c.jpg"}, ids(st.Items))
	for _, a := range st.Items {
		assert.NotEmpty(t, a.URL)
	}

	after := testutil.ToFloat64(AssetsDropped.WithLabelValues(string(KindGalleryByService), "resolve_error"))
	assert.Equal(t, 1.0, after-before)
}

func TestLoader_IDCollision(t *testing.T) {
	fsys := fstest.MapFS{
		"gallery/gate/a.jpg":  {Data: []byte("1")},
		"gallery/fence/a.jpg": {Data: []byte("2")},
		"gallery/fence/b.jpg": {Data: []byte("3")},
	}
	l := newTestLoader(NewFSSource(fsys, "/media"), Spec{
		Kind:     KindGalleryAll,
		Pattern:  "gallery/**/*.jpg",
		Ordering: EnumerationOrder{},
	})
	st := l.Load(context.Background())
	assert.Equal(t, []string{"gallery-fence-a.jpg", "b.jpg", "gallery-gate-a.jpg"}, ids(st.Items))
}

func TestLoader_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := newTestLoader(NewFSSource(mediaFS(), "/media"), Spec{
		Kind:     KindGalleryAll,
		Pattern:  "gallery/**/*.jpg",
		Ordering: RandomOnce{},
	})
	st := l.Load(ctx)
	assert.Equal(t, StatusLoading, st.Status, "nothing is published after cancellation")
	assert.True(t, st.Loading)
	assert.Nil(t, st.Items)
}

func TestLoader_Videos(t *testing.T) {
	fsys := fstest.MapFS{
		"video/1/1.mp4": {Data: []byte("v")},
		"video/1/1.jpg": {Data: []byte("t")},
		"video/2/2.mp4": {Data: []byte("v")},
		"video/3/3.jpg": {Data: []byte("t")},
		"video/4/4.mp4": {Data: []byte("v")},
		"video/4/4.jpg": {Data: []byte("t")},
		"video/4/x.jpg": {Data: []byte("t")},
	}
	before := testutil.ToFloat64(AssetsDropped.WithLabelValues(string(KindVideoShowcase), "unpaired"))

	l := newTestLoader(NewFSSource(fsys, "/media"), Spec{
		Kind:     KindVideoShowcase,
		Pattern:  "video/**/*.{mp4,jpg}",
		Ordering: ExplicitKeyOrder{Keys: []int{4, 1, 2, 3, 5}},
		Captions: TitleTable{1: {Title: "Automatic Gate", Description: "Remote controlled."}},
	})
	st := l.Load(context.Background())
	require.Equal(t, StatusReady, st.Status)
	require.Len(t, st.Items, 2)

	v4, v1 := st.Items[0], st.Items[1]
	assert.Equal(t, "4.mp4", v4.ID)
	assert.Equal(t, 4, v4.Key)
	assert.Equal(t, "4", v4.Category)
	assert.Equal(t, "Video Project 4", v4.Title)
	assert.Equal(t, fallbackVideoDescription, v4.Description)
	assert.True(t, strings.HasPrefix(v4.ThumbnailURL, "/media/video/4/4.jpg?v="))

	assert.Equal(t, "Automatic Gate", v1.Title)
	assert.Equal(t, "Remote controlled.", v1.Description)
	assert.True(t, strings.HasPrefix(v1.URL, "/media/video/1/1.mp4?v="))

	after := testutil.ToFloat64(AssetsDropped.WithLabelValues(string(KindVideoShowcase), "unpaired"))
	assert.Equal(t, 2.0, after-before, "keys 2 and 3 have one half each")
}

func TestPairVideos(t *testing.T) {
	pairs, partial := pairVideos([]string{
		"video/2/2.jpg",
		"video/2/2.mp4",
		"video/3/3.mp4",
		"video/7/other.mp4",
	}, []int{1, 2, 3, 7})

	require.Len(t, pairs, 1)
	assert.Equal(t, videoPair{key: 2, video: "video/2/2.mp4", thumb: "video/2/2.jpg"}, pairs[0])
	assert.Equal(t, []missingHalf{{key: 3, missing: "3/3.jpg"}}, partial)
}

func TestAssetIDs(t *testing.T) {
	assert.Equal(t,
		[]string{"a.jpg", "gallery-x-b.jpg", "gallery-y-b.jpg"},
		assetIDs([]string{"gallery/a.jpg", "gallery/x/b.jpg", "/gallery/y/b.jpg"}),
	)
}
