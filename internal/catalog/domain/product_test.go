package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonshop/commerce-core/internal/validation"
)

func f64(v float64) *float64 { return &v }
func bptr(v bool) *bool      { return &v }

func TestValidateReportsEveryInvalidField(t *testing.T) {
	p := Product{
		Name:          "  ",
		Price:         -5,
		StockQuantity: -1,
	}

	err := p.Validate()

	verrs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs, "name")
	assert.Contains(t, verrs, "price")
	assert.Contains(t, verrs, "stock_quantity")
	assert.Len(t, verrs, 3)
}

func TestValidateSalePriceMustBeBelowPrice(t *testing.T) {
	p := Product{Name: "Lamp", Price: 50, SalePrice: f64(60)}

	verrs, ok := validation.AsErrors(p.Validate())
	require.True(t, ok)
	assert.Contains(t, verrs, "sale_price")

	p.SalePrice = f64(40)
	assert.NoError(t, p.Validate())
}

func TestEffectivePrice(t *testing.T) {
	p := Product{Price: 100}
	assert.Equal(t, 100.0, p.EffectivePrice())
	assert.False(t, p.OnSale())

	p.SalePrice = f64(75)
	assert.Equal(t, 75.0, p.EffectivePrice())
	assert.True(t, p.OnSale())

	// sale above base price does not apply
	p.SalePrice = f64(150)
	assert.Equal(t, 100.0, p.EffectivePrice())
	assert.False(t, p.OnSale())
}

func TestSearchScoreWeights(t *testing.T) {
	p := Product{
		Name:        "Neon Lamp",
		Description: "A neon lamp for desks",
		Category:    "lighting",
		Tags:        []string{"neon", "lamp", "decor"},
	}

	// name(10) + prefix(5) + description(3) + one tag(2)
	assert.Equal(t, 20, p.SearchScore("neon"))
	// name(10) + description(3) + one tag(2)
	assert.Equal(t, 15, p.SearchScore("lamp"))
	// category only
	assert.Equal(t, 1, p.SearchScore("lighting"))
	assert.Equal(t, 0, p.SearchScore("chair"))
	assert.Equal(t, 0, p.SearchScore("   "))
}

func TestFilterMatchesIsLogicalAnd(t *testing.T) {
	p := Product{
		Name:          "Neon Lamp",
		Category:      "lighting",
		Price:         80,
		StockQuantity: 3,
		Active:        true,
	}

	all := ProductFilter{
		Category: "Lighting",
		Search:   "neon",
		MinPrice: f64(50),
		MaxPrice: f64(100),
		InStock:  bptr(true),
		Active:   bptr(true),
	}
	assert.True(t, all.Matches(p))

	oneMiss := all
	oneMiss.MaxPrice = f64(70)
	assert.False(t, oneMiss.Matches(p))
}

func TestFilterPriceRangeUsesEffectivePrice(t *testing.T) {
	p := Product{Name: "Lamp", Price: 120, SalePrice: f64(60)}

	f := ProductFilter{MaxPrice: f64(100)}
	assert.True(t, f.Matches(p))

	f = ProductFilter{MinPrice: f64(100)}
	assert.False(t, f.Matches(p))
}

func TestFilterValidateRejectsInvertedRange(t *testing.T) {
	f := ProductFilter{MinPrice: f64(100), MaxPrice: f64(10)}

	verrs, ok := validation.AsErrors(f.Validate())
	require.True(t, ok)
	assert.Contains(t, verrs, "min_price")
}
