package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		gramsPerKm float64
		want       EmissionCategory
	}{
		{0, CategoryExcellent},
		{119.9, CategoryExcellent},
		{120, CategoryGood},
		{159.9, CategoryGood},
		{160, CategoryAverage},
		{199.9, CategoryAverage},
		{200, CategoryHigh},
		{249.9, CategoryHigh},
		{250, CategoryVeryHigh},
		{400, CategoryVeryHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryFor(tt.gramsPerKm), "CategoryFor(%v)", tt.gramsPerKm)
	}
}

func TestCategoryMapsComplete(t *testing.T) {
	categories := []EmissionCategory{
		CategoryExcellent, CategoryGood, CategoryAverage, CategoryHigh, CategoryVeryHigh,
	}
	for _, c := range categories {
		assert.NotEmpty(t, Interpretations[c], "interpretation for %s", c)
		assert.NotEmpty(t, CategoryColors[c], "color for %s", c)
	}
}

func TestFuelType(t *testing.T) {
	assert.True(t, FuelType("X").Valid())
	assert.True(t, FuelType("D").Valid())
	assert.False(t, FuelType("Q").Valid())
	assert.False(t, FuelType("").Valid())

	assert.Equal(t, "Regular gasoline", FuelRegularGas.Label())
	assert.Equal(t, "Diesel", FuelDiesel.Label())
	assert.Equal(t, "Q", FuelType("Q").Label())
}
