package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eldercare/backend/internal/domain"
	"github.com/eldercare/backend/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	healthSvc    *service.HealthService
	vitalsSvc    *service.VitalsService
	dashboardSvc *service.DashboardService
}

// NewHandler creates a new handler
func NewHandler(healthSvc *service.HealthService, vitalsSvc *service.VitalsService, dashboardSvc *service.DashboardService) *Handler {
	return &Handler{
		healthSvc:    healthSvc,
		vitalsSvc:    vitalsSvc,
		dashboardSvc: dashboardSvc,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	status := "ok"
	code := fiber.StatusOK
	if err := h.healthSvc.Health(c.UserContext()); err != nil {
		status = "degraded"
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":  status,
		"service": "eldercare-backend",
		"version": "1.0.0",
	})
}

// ListLogs returns a page of the user's logs
func (h *Handler) ListLogs(c *fiber.Ctx) error {
	page, err := h.healthSvc.ListLogs(c.UserContext(), UserID(c), c.QueryInt("page", 1), c.QueryInt("limit", service.DefaultPageSize))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// CreateLog stores a new log and returns its risk score
func (h *Handler) CreateLog(c *fiber.Ctx) error {
	var raw domain.RawObservation
	if err := c.BodyParser(&raw); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	log, risk, err := h.healthSvc.CreateLog(c.UserContext(), UserID(c), raw)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Health log created successfully",
		"healthLog": log,
		"risk":      risk,
	})
}

// GetLog returns one log
func (h *Handler) GetLog(c *fiber.Ctx) error {
	log, risk, err := h.healthSvc.GetLog(c.UserContext(), UserID(c), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"healthLog": log,
		"risk":      risk,
	})
}

// UpdateLog replaces a log
func (h *Handler) UpdateLog(c *fiber.Ctx) error {
	var raw domain.RawObservation
	if err := c.BodyParser(&raw); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	log, risk, err := h.healthSvc.UpdateLog(c.UserContext(), UserID(c), c.Params("id"), raw)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":   "Health log updated successfully",
		"healthLog": log,
		"risk":      risk,
	})
}

// DeleteLog removes a log
func (h *Handler) DeleteLog(c *fiber.Ctx) error {
	if err := h.healthSvc.DeleteLog(c.UserContext(), UserID(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Health log deleted successfully"})
}

// GetVitals returns simulated device readings
func (h *Handler) GetVitals(c *fiber.Ctx) error {
	return c.JSON(h.vitalsSvc.GetCurrentVitals(c.UserContext()))
}

// GetRiskAnalysis scores the user's recent logs
func (h *Handler) GetRiskAnalysis(c *fiber.Ctx) error {
	risk, err := h.healthSvc.RiskAnalysis(c.UserContext(), UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(risk)
}

// GetTrends returns trend points, predictions and insights
func (h *Handler) GetTrends(c *fiber.Ctx) error {
	report, err := h.healthSvc.Trends(c.UserContext(), UserID(c), c.QueryInt("days", service.DefaultTrendDays))
	if err != nil {
		return err
	}
	return c.JSON(report)
}

// GetDashboard returns the aggregated overview
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardSvc.GetDashboardData(c.UserContext(), UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}
