package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/i474232898/weather-motion-relay/internal/forecast"
	"github.com/i474232898/weather-motion-relay/internal/metrics"
)

// ErrFetchWeather is the static message returned for any upstream failure.
const ErrFetchWeather = "failed to fetch weather data"

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *forecast.Service, m *metrics.Metrics, log *zap.Logger) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-relay",
		})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{})))

	app.Post("/motion-detected", func(c *fiber.Ctx) error {
		service.RecordMotion()
		c.Status(fiber.StatusOK)
		return nil
	})

	app.Get("/weather", func(c *fiber.Ctx) error {
		report, err := service.Report(c.UserContext())
		if err != nil {
			log.Error("weather fetch failed",
				zap.Any("requestId", c.Locals("requestid")),
				zap.Error(err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": ErrFetchWeather,
			})
		}
		return c.JSON(report)
	})
}
