package handlers

import (
	"fmt"

	"baa-logistica/internal/adapters/persistence/models"
	"baa-logistica/internal/core/services"
	"baa-logistica/internal/pkg/pagination"
	"baa-logistica/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MotoristaHandler handles driver endpoints
type MotoristaHandler struct {
	motoristaService *services.MotoristaService
}

// NewMotoristaHandler creates a new driver handler
func NewMotoristaHandler(motoristaService *services.MotoristaService) *MotoristaHandler {
	return &MotoristaHandler{
		motoristaService: motoristaService,
	}
}

// List handles listing drivers
// @Summary List drivers
// @Description Get drivers, optionally filtered by status and free-text search
// @Tags Drivers
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param search query string false "Search by name, CPF or CNH"
// @Success 200 {object} response.Response
// @Router /drivers [get]
func (h *MotoristaHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	offset, limit := 0, 0
	if params.Requested {
		offset, limit = params.Offset, params.Limit
	}

	motoristas, err := h.motoristaService.List(c.Context(), c.Query("status"), c.Query("search"), offset, limit)
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Motoristas listados com sucesso", motoristas)
}

// ListAvailable handles listing drivers free for a new trip
// @Summary List available drivers
// @Description Active drivers not assigned to an in-progress trip
// @Tags Drivers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /drivers/available [get]
func (h *MotoristaHandler) ListAvailable(c *fiber.Ctx) error {
	motoristas, err := h.motoristaService.ListAvailable(c.Context())
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Motoristas disponíveis listados com sucesso", motoristas)
}

// Get handles getting a driver by ID
// @Summary Get driver
// @Tags Drivers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Driver ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /drivers/{id} [get]
func (h *MotoristaHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	motorista, err := h.motoristaService.Get(c.Context(), id)
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Motorista encontrado", motorista)
}

// Create handles creating a driver
// @Summary Create driver
// @Tags Drivers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /drivers [post]
func (h *MotoristaHandler) Create(c *fiber.Ctx) error {
	var motorista models.Motorista
	if err := c.BodyParser(&motorista); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	if err := h.motoristaService.Create(c.Context(), &motorista); err != nil {
		return failure(c, err)
	}

	return response.Created(c, fmt.Sprintf("/api/drivers/%d", motorista.ID), motorista)
}

// Update handles updating a driver
// @Summary Update driver
// @Tags Drivers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Driver ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /drivers/{id} [put]
func (h *MotoristaHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	var input models.Motorista
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	motorista, err := h.motoristaService.Update(c.Context(), id, &input)
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Motorista atualizado com sucesso", motorista)
}

// Delete handles deleting a driver
// @Summary Delete driver
// @Tags Drivers
// @Security BearerAuth
// @Param id path int true "Driver ID"
// @Success 204
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /drivers/{id} [delete]
func (h *MotoristaHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	if err := h.motoristaService.Delete(c.Context(), id); err != nil {
		return failure(c, err)
	}

	return response.NoContent(c)
}
