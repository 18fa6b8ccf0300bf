package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"gallery/gate/a.jpg", CategoryGates},
		{"/gallery/gate/a.jpg", CategoryGates},
		{"gallery/Gate/a.jpg", CategoryGates},
		{"gallery/fence/a.jpg", CategoryFences},
		{"gallery/balustrade/a.png", CategoryBalustrades},
		{"gallery/metalwork/a.svg", CategoryMetalWorks},
		{"gallery/gates/a.jpg", CategoryOthers},
		{"gallery/misc/a.jpg", CategoryOthers},
		{"gate/a.jpg", CategoryGates},
		// first rule wins
		{"gallery/gate/fence/a.jpg", CategoryGates},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.path))
		})
	}
}

func TestSynthesizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sliding_gate-02.jpg", "Sliding Gate"},
		{"pool-fence.png", "Pool Fence"},
		{"IMG_0042.JPG", "IMG"},
		{"123.jpg", DefaultTitle},
		{"__--.jpg", DefaultTitle},
		{"étagère.jpg", "Étagère"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SynthesizeTitle(tt.in))
		})
	}
}

func TestTitleTable_Title(t *testing.T) {
	table := TitleTable{
		3: {Title: "Driveway Gate"},
		4: {Description: "no title"},
	}

	assert.Equal(t, "Driveway Gate", table.Title("video/3/3.mp4"))
	assert.Equal(t, "Swing Gate", table.Title("video/4/swing_gate.mp4"), "empty caption title falls back")
	assert.Equal(t, "Swing Gate", table.Title("gallery/gate/swing_gate.jpg"))
	assert.Equal(t, DefaultTitle, table.Title("video/0/0.mp4"))

	var none TitleTable
	assert.Equal(t, "Pool Fence", none.Title("gallery/fence/pool_fence1.jpg"))
}

func TestAsset_Label(t *testing.T) {
	assert.Equal(t, "metal works", Asset{Category: CategoryMetalWorks}.Label())
	assert.Equal(t, "gates", Asset{Category: CategoryGates}.Label())
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("video-showcase")
	assert.True(t, ok)
	assert.Equal(t, KindVideoShowcase, k)

	_, ok = ParseKind("photos")
	assert.False(t, ok)
}
