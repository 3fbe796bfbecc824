package handlers

import (
	"errors"

	"github.com/yaakydd/DriveGreen-sub000/internal/dto"
	"github.com/yaakydd/DriveGreen-sub000/internal/models"
	"github.com/yaakydd/DriveGreen-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PredictHandler struct {
	predictionService *service.PredictionService
	logger            *zap.Logger
}

func NewPredictHandler(predictionService *service.PredictionService, logger *zap.Logger) *PredictHandler {
	return &PredictHandler{
		predictionService: predictionService,
		logger:            logger,
	}
}

// Predict godoc
// @Summary Predict CO2 emissions
// @Description Validates vehicle specs and proxies them to the remote model service
// @Tags predict
// @Accept json
// @Produce json
// @Param request body dto.PredictionInput true "Vehicle specs"
// @Success 200 {object} dto.PredictionOutput
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/predict [post]
func (h *PredictHandler) Predict(c *fiber.Ctx) error {
	var input dto.PredictionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	output, err := h.predictionService.Predict(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFuelType),
			errors.Is(err, service.ErrInvalidEngineSize),
			errors.Is(err, service.ErrInvalidCylinders):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, service.ErrPredictorUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Prediction service unavailable. Please try again.",
			})
		default:
			h.logger.Error("Prediction failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Prediction failed",
			})
		}
	}

	return c.JSON(output)
}

// FuelTypes godoc
// @Summary Supported fuel types
// @Tags predict
// @Produce json
// @Success 200 {object} dto.FuelTypesResponse
// @Router /api/v1/predict/fuel-types [get]
func (h *PredictHandler) FuelTypes(c *fiber.Ctx) error {
	descriptions := make(map[string]string, len(models.FuelTypeLabels))
	for code, label := range models.FuelTypeLabels {
		descriptions[string(code)] = label
	}
	return c.JSON(dto.FuelTypesResponse{
		FuelTypes:    []string{"X", "Z", "E", "D", "N"},
		Descriptions: descriptions,
	})
}

// ModelInfo godoc
// @Summary Model pipeline description
// @Tags predict
// @Produce json
// @Success 200 {object} dto.ModelInfoResponse
// @Router /api/v1/predict/model-info [get]
func (h *PredictHandler) ModelInfo(c *fiber.Ctx) error {
	return c.JSON(dto.ModelInfoResponse{
		InputFeatures: []string{"fuel_type", "engine_size", "cylinders"},
		PreprocessingPipeline: []string{
			"1. Log1p transform engine size and cylinders",
			"2. One-hot encode fuel type",
			"3. Predict log CO2 with XGBoost",
			"4. Reverse transform to g/km",
		},
		Output:    "CO2 emissions in g/km",
		ModelType: "XGBoost Regressor",
		ValidRanges: map[string]string{
			"engine_size": "0.9 to 8.4 liters",
			"cylinders":   "3 to 16",
			"fuel_type":   "X, Z, E, D, N",
		},
	})
}
