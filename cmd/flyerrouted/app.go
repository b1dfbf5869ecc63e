package main

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/flyermap/planner/internal/export"
	"github.com/flyermap/planner/internal/planner"
	"github.com/flyermap/planner/internal/transport"
)

var validate = validator.New()

// newApp builds the fiber app exposing the generate/export/health routes
// documented for this service, wired against a single orchestrator and
// its job store.
func newApp(orch *planner.Orchestrator, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "flyerrouted",
		ErrorHandler: errorHandler(logger),
	})

	h := &handlers{orch: orch}

	app.Get("/api/health", h.health)
	app.Post("/api/generate", h.generate)
	app.Get("/api/export/:job/gpx", h.exportGPX)
	app.Get("/api/export/:job/kml", h.exportKML)
	app.Get("/api/export/:job/geojson", h.exportGeoJSON)

	return app
}

type handlers struct {
	orch *planner.Orchestrator
}

func (h *handlers) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *handlers) generate(c *fiber.Ctx) error {
	var req transport.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body: "+err.Error())
	}

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "validation failed: "+err.Error())
	}

	params, err := req.ToParams()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	job, err := h.orch.Generate(c.Context(), params)
	if err != nil {
		return mapPlannerError(err)
	}

	return c.JSON(transport.FromJob(job, params.Mode))
}

func (h *handlers) exportGPX(c *fiber.Ctx) error {
	job, ok := h.orch.Store.Get(c.Params("job"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "job not found")
	}

	body, err := export.GPXAll(job.Routes)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/gpx+xml")

	return c.SendString(body)
}

func (h *handlers) exportKML(c *fiber.Ctx) error {
	job, ok := h.orch.Store.Get(c.Params("job"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "job not found")
	}

	body, err := export.KML(job.Routes)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/vnd.google-earth.kml+xml")

	return c.SendString(body)
}

func (h *handlers) exportGeoJSON(c *fiber.Ctx) error {
	job, ok := h.orch.Store.Get(c.Params("job"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "job not found")
	}

	body, err := export.GeoJSON(job.Routes)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	return c.Send(body)
}

// mapPlannerError maps an internal/planner sentinel error to the HTTP
// status code it carries on the wire.
func mapPlannerError(err error) error {
	switch {
	case errors.Is(err, planner.ErrInvalidArea), errors.Is(err, planner.ErrInvalidParameters), errors.Is(err, planner.ErrNoRoads):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("request failed", zap.Error(err), zap.String("path", c.Path()))
		}

		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}
