package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assets(n int) []Asset {
	out := make([]Asset, n)
	for i := range out {
		out[i] = Asset{ID: fmt.Sprintf("a%d.jpg", i), URL: fmt.Sprintf("/media/a%d.jpg", i)}
	}
	return out
}

func TestPager(t *testing.T) {
	p := NewPager(20)
	assert.Equal(t, 9, p.Shown())
	assert.Equal(t, 11, p.Remaining())
	assert.False(t, p.Exhausted())
	assert.Equal(t, 18, p.NextShown())
	assert.Equal(t, 9, p.Shown(), "NextShown does not mutate")

	p.Increase()
	assert.Equal(t, 18, p.Shown())
	p.Increase()
	assert.Equal(t, 20, p.Shown(), "clamped to total")
	assert.True(t, p.Exhausted())
	assert.True(t, p.AllViewed())
	assert.Zero(t, p.Remaining())

	p.Increase()
	assert.Equal(t, 20, p.Shown())
}

func TestPager_Small(t *testing.T) {
	tests := []struct {
		total     int
		shown     int
		allViewed bool
	}{
		{0, 0, false},
		{5, 5, false},
		{6, 6, false},
		{7, 7, true},
		{9, 9, true},
		{-3, 0, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.total), func(t *testing.T) {
			p := NewPager(tt.total)
			assert.Equal(t, tt.shown, p.Shown())
			assert.True(t, p.Exhausted())
			assert.Equal(t, tt.allViewed, p.AllViewed())
		})
	}
}

func TestPagerAt(t *testing.T) {
	assert.Equal(t, 18, PagerAt(30, 18).Shown())
	assert.Equal(t, 9, PagerAt(30, 2).Shown(), "never below one page")
	assert.Equal(t, 30, PagerAt(30, 99).Shown())
	assert.Equal(t, 4, PagerAt(4, 18).Shown())
}

func TestPager_Visible(t *testing.T) {
	items := assets(12)
	p := NewPager(len(items))
	assert.Equal(t, items[:9], p.Visible(items))
	p.Increase()
	assert.Equal(t, items, p.Visible(items))
	assert.Empty(t, NewPager(0).Visible(nil))
}
