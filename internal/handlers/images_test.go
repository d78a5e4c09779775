package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecepns/rnstore/internal/models"
)

func img(path string) *string { return &path }

func TestParseColors(t *testing.T) {
	t.Run("WellFormed", func(t *testing.T) {
		list, err := parseColors(`[{"name":"Natural Titanium","color":"#8e8d8a"},{"name":"Blue","color":"#3b5998"}]`)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Natural Titanium", list[0].Name)
		assert.Equal(t, "#3b5998", list[1].Color)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := parseColors("")
		assert.Error(t, err)
	})

	t.Run("NotAnArray", func(t *testing.T) {
		_, err := parseColors(`{"name":"x"}`)
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := parseColors("not json")
		assert.Error(t, err)
	})
}

func TestResolveColorsCreate(t *testing.T) {
	incoming := []colorInput{{Name: "Black", Color: "#000"}, {Name: "White", Color: "#fff"}}

	t.Run("AllUploaded", func(t *testing.T) {
		colors, stale := resolveColors(incoming, nil, map[int]string{
			0: "/uploads/1.jpg",
			1: "/uploads/2.jpg",
		})
		require.Len(t, colors, 2)
		assert.Equal(t, img("/uploads/1.jpg"), colors[0].Image)
		assert.Equal(t, img("/uploads/2.jpg"), colors[1].Image)
		assert.Empty(t, stale)
		assert.Equal(t, colors[0].Image, primaryImage(colors))
	})

	t.Run("NoUploads", func(t *testing.T) {
		colors, stale := resolveColors(incoming, nil, nil)
		require.Len(t, colors, 2)
		assert.Nil(t, colors[0].Image)
		assert.Nil(t, colors[1].Image)
		assert.Empty(t, stale)
		assert.Nil(t, primaryImage(colors))
	})

	t.Run("NoVariants", func(t *testing.T) {
		colors, stale := resolveColors(nil, nil, nil)
		assert.Empty(t, colors)
		assert.Empty(t, stale)
		assert.Nil(t, primaryImage(colors))
	})
}

func TestResolveColorsUpdate(t *testing.T) {
	existing := []models.ProductColor{
		{Name: "Black", Color: "#000", Image: img("/uploads/old-0.jpg")},
		{Name: "White", Color: "#fff", Image: img("/uploads/old-1.jpg")},
	}
	incoming := []colorInput{{Name: "Black", Color: "#000"}, {Name: "White", Color: "#fff"}}

	t.Run("CarryForwardWithoutUpload", func(t *testing.T) {
		colors, stale := resolveColors(incoming, existing, nil)
		require.Len(t, colors, 2)
		assert.Equal(t, img("/uploads/old-0.jpg"), colors[0].Image)
		assert.Equal(t, img("/uploads/old-1.jpg"), colors[1].Image)
		assert.Empty(t, stale)
	})

	t.Run("ReplaceOnePosition", func(t *testing.T) {
		colors, stale := resolveColors(incoming, existing, map[int]string{1: "/uploads/new-1.jpg"})
		assert.Equal(t, img("/uploads/old-0.jpg"), colors[0].Image)
		assert.Equal(t, img("/uploads/new-1.jpg"), colors[1].Image)
		require.Len(t, stale, 1)
		assert.Equal(t, "/uploads/old-1.jpg", *stale[0])
	})

	t.Run("ReplacedFirstVariantAlsoChangesPrimary", func(t *testing.T) {
		colors, stale := resolveColors(incoming, existing, map[int]string{0: "/uploads/new-0.jpg"})
		assert.Equal(t, img("/uploads/new-0.jpg"), primaryImage(colors))
		require.Len(t, stale, 1)
		assert.Equal(t, "/uploads/old-0.jpg", *stale[0])
		// the handler adds the old primary on top of this; the same path
		// twice is fine because file removal is idempotent
		assert.False(t, sameImage(primaryImage(colors), existing[0].Image))
	})

	t.Run("NewPositionWithoutExisting", func(t *testing.T) {
		longer := append(incoming, colorInput{Name: "Red", Color: "#f00"})
		colors, stale := resolveColors(longer, existing, map[int]string{2: "/uploads/new-2.jpg"})
		require.Len(t, colors, 3)
		assert.Equal(t, img("/uploads/new-2.jpg"), colors[2].Image)
		assert.Empty(t, stale)
	})

	t.Run("DroppedTrailingVariant", func(t *testing.T) {
		colors, stale := resolveColors(incoming[:1], existing, nil)
		require.Len(t, colors, 1)
		assert.Equal(t, img("/uploads/old-0.jpg"), colors[0].Image)
		assert.Empty(t, stale)
	})
}

func TestSameImage(t *testing.T) {
	assert.True(t, sameImage(nil, nil))
	assert.True(t, sameImage(img("/uploads/a.jpg"), img("/uploads/a.jpg")))
	assert.False(t, sameImage(img("/uploads/a.jpg"), nil))
	assert.False(t, sameImage(nil, img("/uploads/a.jpg")))
	assert.False(t, sameImage(img("/uploads/a.jpg"), img("/uploads/b.jpg")))
}
