package handlers

import (
	"strconv"

	"baa-logistica/internal/core/services"
	"baa-logistica/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles the read-only dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Stats handles the per-entity status counts
// @Summary Dashboard statistics
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.GetEstatisticas(c.Context())
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Estatísticas obtidas com sucesso", stats)
}

// ActiveTrips handles the joined active-trips view
// @Summary Active trips
// @Description Planned and in-progress trips with driver, vehicle, cargo and client
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /dashboard/active-trips [get]
func (h *DashboardHandler) ActiveTrips(c *fiber.Ctx) error {
	viagens, err := h.dashboardService.GetViagensAtivas(c.Context())
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Viagens ativas obtidas com sucesso", viagens)
}

// RecentCargo handles the most recently registered cargo records
// @Summary Recent cargo
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param count query int false "Number of records" default(10)
// @Success 200 {object} response.Response
// @Router /dashboard/recent-cargo [get]
func (h *DashboardHandler) RecentCargo(c *fiber.Ctx) error {
	count, _ := strconv.Atoi(c.Query("count", "10"))

	cargas, err := h.dashboardService.GetUltimasCargas(c.Context(), count)
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Últimas cargas obtidas com sucesso", cargas)
}

// TripsByMonth handles the trailing six-month trip breakdown
// @Summary Trips by month
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /dashboard/trips-by-month [get]
func (h *DashboardHandler) TripsByMonth(c *fiber.Ctx) error {
	meses, err := h.dashboardService.GetViagensPorMes(c.Context())
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Viagens por mês obtidas com sucesso", meses)
}
