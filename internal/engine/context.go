package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/yaakydd/DriveGreen-sub000/internal/models"
)

// Annualization constants: miles driven per year, miles to km, grams to kg,
// and an approximate fuel cost per kg of CO2.
const (
	annualMiles    = 13500.0
	milesToKm      = 1.60934
	costPerKgCO2   = 0.25
	refEVgpkm      = 70.0
	refPHEVgpkm    = 105.0
	refHybridgpkm  = 115.0
	refEffGasagpkm = 150.0
)

// annualCO2Kg estimates yearly CO2 in kilograms for a per-km emission rate.
func annualCO2Kg(gramsPerKm float64) int {
	return int(math.Round(gramsPerKm * annualMiles * milesToKm / 1000))
}

// annualFuelCost estimates yearly fuel cost in dollars from the annual CO2.
func annualFuelCost(gramsPerKm float64) int {
	return int(math.Round(float64(annualCO2Kg(gramsPerKm)) * costPerKgCO2))
}

func formatEmissions(gramsPerKm float64) string {
	return strconv.FormatFloat(gramsPerKm, 'f', -1, 64)
}

// contextRespond recognizes the high-value intents that bypass generic
// scoring when a prediction context is available. Triggers are substring
// checks on the normalized sub-query, most specific first, so that
// "explain my result" routes to the explanation rather than the summary.
// Returns the response, the intent name, and whether any intent fired.
func contextRespond(norm string, pc *models.PredictionContext) (string, string, bool) {
	words := Words(norm)
	switch {
	case containsAny(norm, "explain", "understand") ||
		(strings.Contains(norm, "what does") && strings.Contains(norm, "mean")):
		return explainResult(pc), "explain", true
	case containsAny(norm, "improve", "better", "reduce my", "lower my"):
		return improveResult(pc), "improve", true
	case containsAny(norm, "compare", "versus") || hasWord(words, "vs"):
		return compareResult(pc), "compare", true
	case containsAny(norm, "good", "bad", "average", "is my score"):
		return rateResult(pc), "rating", true
	case containsAny(norm, "my result", "my score", "my vehicle", "show my results", "my prediction", "my emissions"):
		return resultSummary(pc), "results", true
	}
	return "", "", false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func hasWord(words []string, w string) bool {
	for _, candidate := range words {
		if candidate == w {
			return true
		}
	}
	return false
}

func resultSummary(pc *models.PredictionContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's your vehicle's emissions summary:\n\n")
	fmt.Fprintf(&b, "- Predicted CO2: %s g/km (%s)\n", formatEmissions(pc.PredictedEmissions), pc.Category)
	fmt.Fprintf(&b, "- Vehicle: %s, %sL engine, %d cylinders\n",
		pc.Vehicle.FuelType.Label(),
		strconv.FormatFloat(pc.Vehicle.EngineSizeLiters, 'f', -1, 64),
		pc.Vehicle.Cylinders)
	if pc.Interpretation != "" {
		fmt.Fprintf(&b, "- %s\n", pc.Interpretation)
	}
	b.WriteString("\n")

	e := pc.PredictedEmissions
	switch {
	case e < 160:
		b.WriteString("That's a strong result: you're already below the typical mid-size car.")
	case e <= 200:
		b.WriteString("There's room for improvement here. Ask me how to reduce your emissions.")
	default:
		b.WriteString("Emissions are on the high side. Ask me to compare your vehicle against hybrid and electric alternatives.")
	}
	return b.String()
}

func vehicleRecap(pc *models.PredictionContext) string {
	return fmt.Sprintf("Your estimate was produced for a %s vehicle with a %sL engine and %d cylinders, predicting %s g/km of CO2 (%s).",
		pc.Vehicle.FuelType.Label(),
		strconv.FormatFloat(pc.Vehicle.EngineSizeLiters, 'f', -1, 64),
		pc.Vehicle.Cylinders,
		formatEmissions(pc.PredictedEmissions),
		pc.Category)
}

func explainResult(pc *models.PredictionContext) string {
	e := pc.PredictedEmissions
	var narrative string
	switch {
	case e < 120:
		narrative = "Excellent Performance: your vehicle emits less CO2 than 85% of vehicles on the road, in the territory of efficient hybrids."
	case e < 160:
		narrative = "Good Performance: your vehicle does better than about 60% of vehicles, comparable to modern compact cars."
	case e < 200:
		narrative = "Average Performance: your vehicle sits in the typical mid-size range. There's meaningful room to improve."
	default:
		narrative = "High Emissions: your vehicle emits more CO2 than most passenger cars, in the range of large SUVs and trucks."
	}

	kg := annualCO2Kg(e)
	cost := annualFuelCost(e)
	return fmt.Sprintf("Your predicted emissions are %s g/km. %s\n\nOver a typical year of driving (13,500 miles), that's roughly %d kg of CO2 and about $%d in fuel costs.",
		formatEmissions(e), narrative, kg, cost)
}

func improveResult(pc *models.PredictionContext) string {
	e := pc.PredictedEmissions
	var actions []string
	var savings string
	switch {
	case e < 160:
		actions = []string{
			"Keep tire pressure at the recommended maximum (saves ~3%)",
			"Drive smoothly: steady acceleration saves up to 20%",
			"Stay on top of maintenance: oil changes and air filters",
		}
		savings = "$200-300"
	case e <= 200:
		actions = []string{
			"Keep tire pressure at the recommended maximum (saves ~3%)",
			"Remove excess weight: every 100 lbs costs ~1%",
			"Drive smoothly: steady acceleration saves up to 20%",
			"Plan routes to avoid heavy traffic",
			"Take public transit one day a week",
		}
		savings = "$400-600"
	default:
		actions = []string{
			"Drive smoothly: steady acceleration saves up to 20%",
			"Remove excess weight and roof racks when not in use",
			"Keep up with maintenance: a poorly tuned engine wastes fuel",
			"Take public transit one day a week",
			"For your next vehicle, consider a hybrid or EV: a 30-60% reduction",
		}
		savings = "$800-1200"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "At %s g/km, here's where to start:\n\n", formatEmissions(e))
	for i, a := range actions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, a)
	}
	fmt.Fprintf(&b, "\nFollowing through is typically worth %s a year in fuel.", savings)
	return b.String()
}

func rateResult(pc *models.PredictionContext) string {
	e := pc.PredictedEmissions
	var verdict string
	switch {
	case e < 120:
		verdict = "Excellent: top 15% of vehicles, efficient hybrid territory."
	case e < 160:
		verdict = "Good: better than about 60% of vehicles, like a modern compact."
	case e < 200:
		verdict = "Average: typical mid-size car range. Not bad, not great."
	case e < 250:
		verdict = "High: large SUV and truck territory, above most passenger cars."
	default:
		verdict = "Very High: heavy trucks and poorly tuned engines live here."
	}
	return fmt.Sprintf("Your score of %s g/km rates as %s (%s)", formatEmissions(e), verdict, pc.Category)
}

func compareResult(pc *models.PredictionContext) string {
	e := pc.PredictedEmissions
	references := []struct {
		name  string
		gpkm  float64
		label string
	}{
		{"Electric vehicle", refEVgpkm, "~70 g/km"},
		{"Plug-in hybrid", refPHEVgpkm, "~105 g/km"},
		{"Hybrid", refHybridgpkm, "~115 g/km"},
		{"Efficient gas car", refEffGasagpkm, "~150 g/km"},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Your vehicle at %s g/km versus common alternatives:\n\n", formatEmissions(e))
	for _, ref := range references {
		reduction := 0
		saving := 0
		if e > ref.gpkm {
			reduction = int(math.Round((1 - ref.gpkm/e) * 100))
			saving = annualFuelCost(e) - annualFuelCost(ref.gpkm)
			if saving < 0 {
				saving = 0
			}
		}
		fmt.Fprintf(&b, "- %s (%s): %d%% lower emissions, ~$%d/year saved\n", ref.name, ref.label, reduction, saving)
	}
	b.WriteString("\nSwitching isn't always practical, but even eco-driving habits close part of the gap.")
	return b.String()
}
