package handlers

import (
	"fmt"

	"baa-logistica/internal/adapters/persistence/models"
	"baa-logistica/internal/core/services"
	"baa-logistica/internal/pkg/pagination"
	"baa-logistica/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ClienteHandler handles client endpoints
type ClienteHandler struct {
	clienteService *services.ClienteService
}

// NewClienteHandler creates a new client handler
func NewClienteHandler(clienteService *services.ClienteService) *ClienteHandler {
	return &ClienteHandler{
		clienteService: clienteService,
	}
}

// List handles listing clients
// @Summary List clients
// @Description Get clients, optionally filtered by status
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /clients [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	offset, limit := 0, 0
	if params.Requested {
		offset, limit = params.Offset, params.Limit
	}

	clientes, err := h.clienteService.List(c.Context(), c.Query("status"), offset, limit)
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Clientes listados com sucesso", clientes)
}

// Get handles getting a client by ID
// @Summary Get client
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /clients/{id} [get]
func (h *ClienteHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	cliente, err := h.clienteService.Get(c.Context(), id)
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Cliente encontrado", cliente)
}

// Create handles creating a client
// @Summary Create client
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /clients [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var cliente models.Cliente
	if err := c.BodyParser(&cliente); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	if err := h.clienteService.Create(c.Context(), &cliente); err != nil {
		return failure(c, err)
	}

	return response.Created(c, fmt.Sprintf("/api/clients/%d", cliente.ID), cliente)
}

// Update handles updating a client
// @Summary Update client
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /clients/{id} [put]
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	var input models.Cliente
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	cliente, err := h.clienteService.Update(c.Context(), id, &input)
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Cliente atualizado com sucesso", cliente)
}

// Delete handles deleting a client
// @Summary Delete client
// @Tags Clients
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 204
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /clients/{id} [delete]
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	if err := h.clienteService.Delete(c.Context(), id); err != nil {
		return failure(c, err)
	}

	return response.NoContent(c)
}
