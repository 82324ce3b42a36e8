package handlers

import (
	"fmt"

	"baa-logistica/internal/adapters/persistence/models"
	"baa-logistica/internal/core/services"
	"baa-logistica/internal/pkg/pagination"
	"baa-logistica/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ViagemHandler handles trip endpoints
type ViagemHandler struct {
	viagemService *services.ViagemService
}

// NewViagemHandler creates a new trip handler
func NewViagemHandler(viagemService *services.ViagemService) *ViagemHandler {
	return &ViagemHandler{
		viagemService: viagemService,
	}
}

// List handles listing trips
// @Summary List trips
// @Description Get trips with driver, vehicle and cargo, optionally filtered by status
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Response
// @Router /trips [get]
func (h *ViagemHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	offset, limit := 0, 0
	if params.Requested {
		offset, limit = params.Offset, params.Limit
	}

	viagens, err := h.viagemService.List(c.Context(), c.Query("status"), offset, limit)
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Viagens listadas com sucesso", viagens)
}

// Get handles getting a trip by ID with references and expenses
// @Summary Get trip
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trip ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /trips/{id} [get]
func (h *ViagemHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	viagem, err := h.viagemService.Get(c.Context(), id)
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Viagem encontrada", viagem)
}

// Create handles creating a trip. The referenced vehicle moves to Em Viagem
// and the cargo to Em Transporte in the same transaction.
// @Summary Create trip
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /trips [post]
func (h *ViagemHandler) Create(c *fiber.Ctx) error {
	var viagem models.Viagem
	if err := c.BodyParser(&viagem); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	if err := h.viagemService.Create(c.Context(), &viagem, responsavel(c)); err != nil {
		return failure(c, err)
	}

	return response.Created(c, fmt.Sprintf("/api/trips/%d", viagem.ID), viagem)
}

// Update handles updating a trip; moving it to Concluída releases the
// vehicle and marks the cargo Entregue
// @Summary Update trip
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trip ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /trips/{id} [put]
func (h *ViagemHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	var input models.Viagem
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	viagem, err := h.viagemService.Update(c.Context(), id, &input, responsavel(c))
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Viagem atualizada com sucesso", viagem)
}

// Delete handles deleting a trip
// @Summary Delete trip
// @Description Trips in progress cannot be deleted; deleting a planned trip frees its vehicle and cargo
// @Tags Trips
// @Security BearerAuth
// @Param id path int true "Trip ID"
// @Success 204
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /trips/{id} [delete]
func (h *ViagemHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	if err := h.viagemService.Delete(c.Context(), id, responsavel(c)); err != nil {
		return failure(c, err)
	}

	return response.NoContent(c)
}

// AddDespesa handles registering an expense on a trip
// @Summary Add trip expense
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trip ID"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /trips/{id}/expenses [post]
func (h *ViagemHandler) AddDespesa(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	var despesa models.DespesaViagem
	if err := c.BodyParser(&despesa); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	if err := h.viagemService.AddDespesa(c.Context(), id, &despesa); err != nil {
		return failure(c, err)
	}

	location := fmt.Sprintf("/api/trips/%d/expenses/%d", id, despesa.ID)
	return response.Created(c, location, despesa)
}

// DeleteDespesa handles removing an expense from a trip
// @Summary Delete trip expense
// @Tags Trips
// @Security BearerAuth
// @Param id path int true "Trip ID"
// @Param expenseId path int true "Expense ID"
// @Success 204
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /trips/{id}/expenses/{expenseId} [delete]
func (h *ViagemHandler) DeleteDespesa(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}
	despesaID, ok := parseID(c, "expenseId")
	if !ok {
		return response.BadRequest(c, "ID de despesa inválido")
	}

	if err := h.viagemService.DeleteDespesa(c.Context(), id, despesaID); err != nil {
		return failure(c, err)
	}

	return response.NoContent(c)
}
