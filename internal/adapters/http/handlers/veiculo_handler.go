package handlers

import (
	"fmt"

	"baa-logistica/internal/adapters/persistence/models"
	"baa-logistica/internal/core/services"
	"baa-logistica/internal/pkg/pagination"
	"baa-logistica/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// VeiculoHandler handles vehicle endpoints
type VeiculoHandler struct {
	veiculoService *services.VeiculoService
}

// NewVeiculoHandler creates a new vehicle handler
func NewVeiculoHandler(veiculoService *services.VeiculoService) *VeiculoHandler {
	return &VeiculoHandler{
		veiculoService: veiculoService,
	}
}

// List handles listing vehicles
// @Summary List vehicles
// @Description Get vehicles, optionally filtered by status and type
// @Tags Vehicles
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by vehicle type"
// @Success 200 {object} response.Response
// @Router /vehicles [get]
func (h *VeiculoHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	offset, limit := 0, 0
	if params.Requested {
		offset, limit = params.Offset, params.Limit
	}

	veiculos, err := h.veiculoService.List(c.Context(), c.Query("status"), c.Query("type"), offset, limit)
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Veículos listados com sucesso", veiculos)
}

// ListAvailable handles listing vehicles with status Disponível
// @Summary List available vehicles
// @Tags Vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /vehicles/available [get]
func (h *VeiculoHandler) ListAvailable(c *fiber.Ctx) error {
	veiculos, err := h.veiculoService.ListAvailable(c.Context())
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Veículos disponíveis listados com sucesso", veiculos)
}

// Get handles getting a vehicle by ID
// @Summary Get vehicle
// @Tags Vehicles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vehicles/{id} [get]
func (h *VeiculoHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	veiculo, err := h.veiculoService.Get(c.Context(), id)
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Veículo encontrado", veiculo)
}

// Create handles creating a vehicle
// @Summary Create vehicle
// @Tags Vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /vehicles [post]
func (h *VeiculoHandler) Create(c *fiber.Ctx) error {
	var veiculo models.Veiculo
	if err := c.BodyParser(&veiculo); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	if err := h.veiculoService.Create(c.Context(), &veiculo); err != nil {
		return failure(c, err)
	}

	return response.Created(c, fmt.Sprintf("/api/vehicles/%d", veiculo.ID), veiculo)
}

// Update handles updating a vehicle
// @Summary Update vehicle
// @Tags Vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vehicles/{id} [put]
func (h *VeiculoHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	var input models.Veiculo
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	veiculo, err := h.veiculoService.Update(c.Context(), id, &input)
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Veículo atualizado com sucesso", veiculo)
}

// Delete handles deleting a vehicle
// @Summary Delete vehicle
// @Tags Vehicles
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 204
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vehicles/{id} [delete]
func (h *VeiculoHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	if err := h.veiculoService.Delete(c.Context(), id); err != nil {
		return failure(c, err)
	}

	return response.NoContent(c)
}

// AddManutencao handles registering a maintenance record on a vehicle
// @Summary Add maintenance record
// @Tags Vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vehicles/{id}/maintenance [post]
func (h *VeiculoHandler) AddManutencao(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	var manutencao models.Manutencao
	if err := c.BodyParser(&manutencao); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	if err := h.veiculoService.AddManutencao(c.Context(), id, &manutencao); err != nil {
		return failure(c, err)
	}

	location := fmt.Sprintf("/api/vehicles/%d/maintenance/%d", id, manutencao.ID)
	return response.Created(c, location, manutencao)
}

// DeleteManutencao handles removing a maintenance record from a vehicle
// @Summary Delete maintenance record
// @Tags Vehicles
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Param maintenanceId path int true "Maintenance ID"
// @Success 204
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vehicles/{id}/maintenance/{maintenanceId} [delete]
func (h *VeiculoHandler) DeleteManutencao(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}
	manutencaoID, ok := parseID(c, "maintenanceId")
	if !ok {
		return response.BadRequest(c, "ID de manutenção inválido")
	}

	if err := h.veiculoService.DeleteManutencao(c.Context(), id, manutencaoID); err != nil {
		return failure(c, err)
	}

	return response.NoContent(c)
}
