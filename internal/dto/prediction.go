package dto

type PredictionInput struct {
	FuelType   string  `json:"fuel_type"`
	EngineSize float64 `json:"engine_size"`
	Cylinders  int     `json:"cylinders"`
}

type PredictionOutput struct {
	PredictedCO2Emissions float64 `json:"predicted_co2_emissions"`
	Unit                  string  `json:"unit"`
	Interpretation        string  `json:"interpretation"`
	Category              string  `json:"category"`
	Color                 string  `json:"color"`
}

type FuelTypesResponse struct {
	FuelTypes    []string          `json:"fuel_types"`
	Descriptions map[string]string `json:"descriptions"`
}

type ModelInfoResponse struct {
	InputFeatures         []string          `json:"input_features"`
	PreprocessingPipeline []string          `json:"preprocessing_pipeline"`
	Output                string            `json:"output"`
	ModelType             string            `json:"model_type"`
	ValidRanges           map[string]string `json:"valid_ranges"`
}
