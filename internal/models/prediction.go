package models

type FuelType string

const (
	FuelRegularGas FuelType = "X"
	FuelPremiumGas FuelType = "Z"
	FuelEthanol    FuelType = "E"
	FuelDiesel     FuelType = "D"
	FuelNaturalGas FuelType = "N"
)

// FuelTypeLabels maps the model service's fuel codes to display names.
var FuelTypeLabels = map[FuelType]string{
	FuelRegularGas: "Regular gasoline",
	FuelPremiumGas: "Premium gasoline",
	FuelEthanol:    "Ethanol (E85)",
	FuelDiesel:     "Diesel",
	FuelNaturalGas: "Natural gas",
}

func (f FuelType) Valid() bool {
	_, ok := FuelTypeLabels[f]
	return ok
}

// Label returns the display name for the fuel code, or the raw code when
// the code is unknown.
func (f FuelType) Label() string {
	if label, ok := FuelTypeLabels[f]; ok {
		return label
	}
	return string(f)
}

type EmissionCategory string

const (
	CategoryExcellent EmissionCategory = "Excellent"
	CategoryGood      EmissionCategory = "Good"
	CategoryAverage   EmissionCategory = "Average"
	CategoryHigh      EmissionCategory = "High"
	CategoryVeryHigh  EmissionCategory = "Very High"
)

// CategoryFor bands a predicted g/km value into its emission category.
// Thresholds match the model service: <120, <160, <200, <250, else Very High.
func CategoryFor(gramsPerKm float64) EmissionCategory {
	switch {
	case gramsPerKm < 120:
		return CategoryExcellent
	case gramsPerKm < 160:
		return CategoryGood
	case gramsPerKm < 200:
		return CategoryAverage
	case gramsPerKm < 250:
		return CategoryHigh
	default:
		return CategoryVeryHigh
	}
}

// Interpretations carries the user-facing text for each category.
var Interpretations = map[EmissionCategory]string{
	CategoryExcellent: "Excellent! This vehicle has very low emissions and is highly environmentally friendly. You'll save money on fuel and contribute less to climate change.",
	CategoryGood:      "Good! This vehicle has moderate emissions and is reasonably eco-friendly. A solid choice for balancing performance and environmental impact.",
	CategoryAverage:   "Average. This vehicle has typical emissions for its class. Consider more fuel-efficient options if environmental impact is a priority.",
	CategoryHigh:      "High. This vehicle produces above-average emissions. Expect higher fuel costs and greater environmental impact.",
	CategoryVeryHigh:  "Very High. This vehicle produces significant emissions. Fuel costs will be substantial and environmental impact is considerable.",
}

// CategoryColors carries the UI accent color per category.
var CategoryColors = map[EmissionCategory]string{
	CategoryExcellent: "#09422f",
	CategoryGood:      "#22c55e",
	CategoryAverage:   "#f59e0b",
	CategoryHigh:      "#f74f4f",
	CategoryVeryHigh:  "#dc2626",
}

type VehicleSpec struct {
	FuelType         FuelType `json:"fuel_type"`
	Cylinders        int      `json:"cylinders"`
	EngineSizeLiters float64  `json:"engine_size"`
}

// PredictionContext is the last computed estimate plus the vehicle specs that
// produced it. The chat engine only reads it; the category is trusted as
// supplied even if it disagrees with the banding thresholds.
type PredictionContext struct {
	PredictedEmissions float64          `json:"predicted_co2_emissions"`
	Category           EmissionCategory `json:"category"`
	Interpretation     string           `json:"interpretation"`
	Vehicle            VehicleSpec      `json:"vehicle"`
}
