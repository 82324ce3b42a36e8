package handlers

import (
	"fmt"

	"baa-logistica/internal/adapters/persistence/models"
	"baa-logistica/internal/core/services"
	"baa-logistica/internal/pkg/pagination"
	"baa-logistica/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CargaHandler handles cargo endpoints
type CargaHandler struct {
	cargaService *services.CargaService
}

// NewCargaHandler creates a new cargo handler
func NewCargaHandler(cargaService *services.CargaService) *CargaHandler {
	return &CargaHandler{
		cargaService: cargaService,
	}
}

// List handles listing cargo records
// @Summary List cargo
// @Description Get cargo records with the owning client, optionally filtered by status
// @Tags Cargo
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Response
// @Router /cargo [get]
func (h *CargaHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	offset, limit := 0, 0
	if params.Requested {
		offset, limit = params.Offset, params.Limit
	}

	cargas, err := h.cargaService.List(c.Context(), c.Query("status"), offset, limit)
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Cargas listadas com sucesso", cargas)
}

// Get handles getting a cargo record by ID, including its client, trips and
// status history
// @Summary Get cargo
// @Tags Cargo
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cargo ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cargo/{id} [get]
func (h *CargaHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	carga, err := h.cargaService.Get(c.Context(), id)
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Carga encontrada", carga)
}

// Create handles creating a cargo record
// @Summary Create cargo
// @Description Register a cargo; a protocol number is generated when absent
// @Tags Cargo
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /cargo [post]
func (h *CargaHandler) Create(c *fiber.Ctx) error {
	var carga models.Carga
	if err := c.BodyParser(&carga); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	if err := h.cargaService.Create(c.Context(), &carga, responsavel(c)); err != nil {
		return failure(c, err)
	}

	return response.Created(c, fmt.Sprintf("/api/cargo/%d", carga.ID), carga)
}

// Update handles updating a cargo record; manual status changes must follow
// the cargo transition table
// @Summary Update cargo
// @Tags Cargo
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cargo ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cargo/{id} [put]
func (h *CargaHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	var input models.Carga
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	carga, err := h.cargaService.Update(c.Context(), id, &input, responsavel(c))
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Carga atualizada com sucesso", carga)
}

// Delete handles deleting a cargo record
// @Summary Delete cargo
// @Tags Cargo
// @Security BearerAuth
// @Param id path int true "Cargo ID"
// @Success 204
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cargo/{id} [delete]
func (h *CargaHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	if err := h.cargaService.Delete(c.Context(), id); err != nil {
		return failure(c, err)
	}

	return response.NoContent(c)
}
