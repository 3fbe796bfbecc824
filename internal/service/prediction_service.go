package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/yaakydd/DriveGreen-sub000/internal/dto"
	"github.com/yaakydd/DriveGreen-sub000/internal/models"
	"github.com/yaakydd/DriveGreen-sub000/pkg/config"

	"go.uber.org/zap"
)

var (
	ErrAnalyticsDisabled    = errors.New("chat analytics is disabled")
	ErrInvalidFuelType      = errors.New("fuel type must be one of X, Z, E, D, N")
	ErrInvalidEngineSize    = errors.New("engine size must be between 0.9 and 8.4 liters")
	ErrInvalidCylinders     = errors.New("cylinders must be between 3 and 16")
	ErrPredictorUnavailable = errors.New("prediction service unavailable")
)

// PredictionService proxies estimates to the remote CO2 model service and
// interprets the returned value. The chat engine never talks to the network;
// it only consumes the PredictionContext assembled here.
type PredictionService struct {
	config     *config.PredictorConfig
	httpClient *http.Client
	logger     *zap.Logger
}

func NewPredictionService(cfg *config.PredictorConfig, logger *zap.Logger) *PredictionService {
	return &PredictionService{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// ValidateInput enforces the model's supported ranges before any network
// call is made.
func (s *PredictionService) ValidateInput(input *dto.PredictionInput) error {
	if !models.FuelType(input.FuelType).Valid() {
		return ErrInvalidFuelType
	}
	if input.EngineSize < 0.9 || input.EngineSize > 8.4 {
		return ErrInvalidEngineSize
	}
	if input.Cylinders < 3 || input.Cylinders > 16 {
		return ErrInvalidCylinders
	}
	return nil
}

// predictorResponse tolerates both field namings the model service has used.
type predictorResponse struct {
	PredictedCO2Emissions *float64 `json:"predicted_co2_emissions"`
	PredictedCO2          *float64 `json:"predicted_CO2"`
	Error                 string   `json:"error"`
}

// Predict calls the remote model service and bands the result.
func (s *PredictionService) Predict(ctx context.Context, input *dto.PredictionInput) (*dto.PredictionOutput, error) {
	if err := s.ValidateInput(input); err != nil {
		return nil, err
	}

	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to encode prediction request: %w", err)
	}

	url := s.config.BaseURL + "/predict"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build prediction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error("Prediction request failed", zap.String("url", url), zap.Error(err))
		return nil, ErrPredictorUnavailable
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read prediction response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		s.logger.Error("Prediction service returned error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", data),
		)
		return nil, ErrPredictorUnavailable
	}

	var parsed predictorResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode prediction response: %w", err)
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("prediction service error: %s", parsed.Error)
	}

	var co2 float64
	switch {
	case parsed.PredictedCO2Emissions != nil:
		co2 = *parsed.PredictedCO2Emissions
	case parsed.PredictedCO2 != nil:
		co2 = *parsed.PredictedCO2
	default:
		return nil, fmt.Errorf("prediction service returned no value")
	}

	return s.Interpret(co2), nil
}

// Interpret bands a raw g/km value into the full prediction output.
func (s *PredictionService) Interpret(co2 float64) *dto.PredictionOutput {
	category := models.CategoryFor(co2)
	return &dto.PredictionOutput{
		PredictedCO2Emissions: co2,
		Unit:                  "g/km",
		Interpretation:        models.Interpretations[category],
		Category:              string(category),
		Color:                 models.CategoryColors[category],
	}
}

// BuildContext assembles the PredictionContext the chat engine consumes.
func (s *PredictionService) BuildContext(input *dto.PredictionInput, output *dto.PredictionOutput) *models.PredictionContext {
	return &models.PredictionContext{
		PredictedEmissions: output.PredictedCO2Emissions,
		Category:           models.EmissionCategory(output.Category),
		Interpretation:     output.Interpretation,
		Vehicle: models.VehicleSpec{
			FuelType:         models.FuelType(input.FuelType),
			Cylinders:        input.Cylinders,
			EngineSizeLiters: input.EngineSize,
		},
	}
}
