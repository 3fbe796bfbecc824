package api

import (
	_ "github.com/yaakydd/DriveGreen-sub000/docs"
	"github.com/yaakydd/DriveGreen-sub000/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

func SetupRouter(
	chatHandler *handlers.ChatHandler,
	predictHandler *handlers.PredictHandler,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	api := app.Group("/api/v1")

	chat := api.Group("/chat")
	chat.Post("", chatHandler.Chat)
	chat.Get("/health", chatHandler.Health)
	chat.Get("/suggestions", chatHandler.Suggestions)
	chat.Get("/events", chatHandler.Events)

	predict := api.Group("/predict")
	predict.Post("", predictHandler.Predict)
	predict.Get("/fuel-types", predictHandler.FuelTypes)
	predict.Get("/model-info", predictHandler.ModelInfo)

	return app
}
