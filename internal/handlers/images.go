package handlers

import (
	"encoding/json"

	"github.com/cecepns/rnstore/internal/models"
)

// colorInput is one entry of the multipart "colors" field.
type colorInput struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// parseColors decodes the colors payload. Anything that is not a JSON array
// of {name, color} objects is a validation error; the caller must reject the
// request before touching the row or the file store.
func parseColors(raw string) ([]colorInput, error) {
	var list []colorInput
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// resolveColors builds the variant list to persist. uploaded maps variant
// position to the public path of a freshly stored file; existing is the
// previously persisted list (nil on create). A position with a new upload
// takes it and marks the image it replaces as stale; otherwise the existing
// image at that position carries forward. Stale paths must only be removed
// after the new row is persisted.
func resolveColors(incoming []colorInput, existing []models.ProductColor, uploaded map[int]string) (colors []models.ProductColor, stale []*string) {
	colors = make([]models.ProductColor, 0, len(incoming))
	for i, in := range incoming {
		var image *string
		if path, ok := uploaded[i]; ok {
			p := path
			image = &p
			if i < len(existing) && existing[i].Image != nil {
				stale = append(stale, existing[i].Image)
			}
		} else if i < len(existing) {
			image = existing[i].Image
		}
		colors = append(colors, models.ProductColor{Name: in.Name, Color: in.Color, Image: image})
	}
	return colors, stale
}

// primaryImage derives the product image from its variants: the first
// variant's image, or nil when there is none.
func primaryImage(colors []models.ProductColor) *string {
	if len(colors) == 0 {
		return nil
	}
	return colors[0].Image
}

// sameImage compares two nullable image paths.
func sameImage(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
