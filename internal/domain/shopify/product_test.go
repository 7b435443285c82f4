package shopify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_HasVariantAxes(t *testing.T) {
	withAxes := Product{Options: []ProductOption{
		{Name: "Size", Position: 1, Values: []string{"Small", "Large"}},
	}}
	assert.True(t, withAxes.HasVariantAxes())

	// Shopify assigns a single "Default Title" option to products without
	// merchant-defined variants.
	defaultOnly := Product{Options: []ProductOption{
		{Name: "Title", Position: 1, Values: []string{DefaultTitleValue}},
	}}
	assert.False(t, defaultOnly.HasVariantAxes())

	assert.False(t, Product{}.HasVariantAxes())
	assert.False(t, Product{Options: []ProductOption{{Name: "Size"}}}.HasVariantAxes())
}

func TestVariant_OptionValue(t *testing.T) {
	variant := Variant{Options: [MaxOptionSlots]string{"Small", "Blue"}}

	assert.Equal(t, "Small", variant.OptionValue(0))
	assert.Equal(t, "Blue", variant.OptionValue(1))
	assert.Empty(t, variant.OptionValue(2))
	assert.Empty(t, variant.OptionValue(-1))
	assert.Empty(t, variant.OptionValue(3))
}

func TestProduct_FirstVariant(t *testing.T) {
	_, ok := Product{}.FirstVariant()
	assert.False(t, ok)

	product := Product{Variants: []Variant{{ID: 501}, {ID: 502}}}
	first, ok := product.FirstVariant()
	assert.True(t, ok)
	assert.Equal(t, int64(501), first.ID)
}

func TestProduct_ImageSrc(t *testing.T) {
	assert.Empty(t, Product{}.ImageSrc())
	assert.Equal(t, "https://cdn/img.png", Product{Image: &Image{Src: "https://cdn/img.png"}}.ImageSrc())
}
