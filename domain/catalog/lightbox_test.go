package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLightbox_Wraps(t *testing.T) {
	lb := NewLightbox(assets(3))
	assert.False(t, lb.IsOpen())

	require.True(t, lb.Select("a0.jpg"))
	prev, next := lb.Neighbours()
	assert.Equal(t, "a2.jpg", prev)
	assert.Equal(t, "a1.jpg", next)

	lb.Previous()
	cur, ok := lb.Current()
	require.True(t, ok)
	assert.Equal(t, "a2.jpg", cur.ID)

	lb.Next()
	lb.Next()
	cur, _ = lb.Current()
	assert.Equal(t, "a1.jpg", cur.ID)
}

func TestLightbox_SelectUnknown(t *testing.T) {
	lb := NewLightbox(assets(3))
	assert.False(t, lb.Select("a9.jpg"), "outside the displayed subset")
	assert.False(t, lb.IsOpen())
	_, ok := lb.Current()
	assert.False(t, ok)
}

func TestLightbox_ClosedAndEmpty(t *testing.T) {
	lb := NewLightbox(nil)
	lb.Next()
	lb.Previous()
	assert.False(t, lb.Select("x"))
	prev, next := lb.Neighbours()
	assert.Empty(t, prev)
	assert.Empty(t, next)

	lb = NewLightbox(assets(2))
	require.True(t, lb.Select("a1.jpg"))
	lb.Close()
	lb.Next()
	require.True(t, lb.Select("a1.jpg"))
	cur, _ := lb.Current()
	assert.Equal(t, "a1.jpg", cur.ID)
}

func TestLightbox_HandleKey(t *testing.T) {
	lb := NewLightbox(assets(4))
	assert.False(t, lb.HandleKey("ArrowRight"), "closed viewer ignores keys")

	require.True(t, lb.Select("a3.jpg"))
	assert.True(t, lb.HandleKey("ArrowRight"))
	cur, _ := lb.Current()
	assert.Equal(t, "a0.jpg", cur.ID)

	assert.True(t, lb.HandleKey("ArrowLeft"))
	cur, _ = lb.Current()
	assert.Equal(t, "a3.jpg", cur.ID)

	assert.False(t, lb.HandleKey("Enter"))
	assert.True(t, lb.IsOpen())

	assert.True(t, lb.HandleKey("Escape"))
	assert.False(t, lb.IsOpen())
}
