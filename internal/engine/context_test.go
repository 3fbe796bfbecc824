package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaakydd/DriveGreen-sub000/internal/models"
)

func averageGasContext() *models.PredictionContext {
	return &models.PredictionContext{
		PredictedEmissions: 185,
		Category:           "Average",
		Interpretation:     "Average emissions - Typical for mid-size vehicles",
		Vehicle: models.VehicleSpec{
			FuelType:         "X",
			Cylinders:        4,
			EngineSizeLiters: 2.0,
		},
	}
}

func TestAnnualCO2Kg(t *testing.T) {
	assert.Equal(t, 4019, annualCO2Kg(185))
	assert.Equal(t, 1521, annualCO2Kg(70))
	assert.Equal(t, 0, annualCO2Kg(0))
}

func TestAnnualFuelCost(t *testing.T) {
	assert.Equal(t, 1005, annualFuelCost(185))
	assert.Equal(t, 380, annualFuelCost(70))
}

func TestContextRespond_IntentRouting(t *testing.T) {
	pc := averageGasContext()

	tests := []struct {
		input      string
		wantIntent string
	}{
		{"explain my result", "explain"},
		{"help me understand this", "explain"},
		{"what does this number mean", "explain"},
		{"how can i improve", "improve"},
		{"can i do better", "improve"},
		{"how do i reduce my emissions", "improve"},
		{"compare my vehicle with an ev", "compare"},
		{"my car versus a hybrid", "compare"},
		{"my car vs a hybrid", "compare"},
		{"is my score good", "rating"},
		{"is this bad", "rating"},
		{"my result", "results"},
		{"show my results", "results"},
		{"my prediction", "results"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			text, intent, ok := contextRespond(Normalize(tt.input), pc)
			require.True(t, ok)
			assert.Equal(t, tt.wantIntent, intent)
			assert.NotEmpty(t, text)
		})
	}
}

func TestContextRespond_NoIntent(t *testing.T) {
	_, _, ok := contextRespond("tell me about fuel types", averageGasContext())
	assert.False(t, ok)
}

func TestExplainResult(t *testing.T) {
	got := explainResult(averageGasContext())
	assert.Contains(t, got, "185 g/km")
	assert.Contains(t, got, "Average Performance")
	assert.Contains(t, got, "4019 kg")
	assert.Contains(t, got, "$1005")
}

func TestExplainResult_Bands(t *testing.T) {
	tests := []struct {
		emissions float64
		want      string
	}{
		{100, "Excellent Performance"},
		{140, "Good Performance"},
		{185, "Average Performance"},
		{230, "High Emissions"},
	}
	for _, tt := range tests {
		pc := averageGasContext()
		pc.PredictedEmissions = tt.emissions
		assert.Contains(t, explainResult(pc), tt.want)
	}
}

func TestRateResult_Bands(t *testing.T) {
	tests := []struct {
		emissions float64
		want      string
	}{
		{119, "Excellent"},
		{120, "Good"},
		{160, "Average"},
		{200, "High"},
		{250, "Very High"},
	}
	for _, tt := range tests {
		pc := averageGasContext()
		pc.PredictedEmissions = tt.emissions
		assert.Contains(t, rateResult(pc), tt.want)
	}
}

func TestImproveResult_SavingsBands(t *testing.T) {
	tests := []struct {
		emissions float64
		want      string
	}{
		{140, "$200-300"},
		{185, "$400-600"},
		{230, "$800-1200"},
	}
	for _, tt := range tests {
		pc := averageGasContext()
		pc.PredictedEmissions = tt.emissions
		assert.Contains(t, improveResult(pc), tt.want)
	}
}

func TestCompareResult(t *testing.T) {
	got := compareResult(averageGasContext())
	assert.Contains(t, got, "185 g/km")
	assert.Contains(t, got, "Electric vehicle (~70 g/km): 62% lower emissions, ~$625/year saved")
	assert.Contains(t, got, "Plug-in hybrid")
	assert.Contains(t, got, "Hybrid")
	assert.Contains(t, got, "Efficient gas car")
}

func TestCompareResult_NeverNegative(t *testing.T) {
	pc := averageGasContext()
	pc.PredictedEmissions = 60 // below every reference
	got := compareResult(pc)
	assert.Equal(t, 4, strings.Count(got, "0% lower emissions, ~$0/year saved"))
}

func TestResultSummary(t *testing.T) {
	got := resultSummary(averageGasContext())
	assert.Contains(t, got, "185 g/km (Average)")
	assert.Contains(t, got, "Regular gasoline")
	assert.Contains(t, got, "2L engine, 4 cylinders")
	assert.Contains(t, got, "room for improvement")
}

func TestVehicleRecap(t *testing.T) {
	got := vehicleRecap(averageGasContext())
	assert.Contains(t, got, "Regular gasoline")
	assert.Contains(t, got, "2L engine")
	assert.Contains(t, got, "4 cylinders")
	assert.Contains(t, got, "185 g/km")
}
