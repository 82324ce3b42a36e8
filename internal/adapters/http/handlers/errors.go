package handlers

import (
	"errors"
	"log"

	"baa-logistica/internal/core/domain"
	"baa-logistica/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// failure maps a domain error to the HTTP response every handler shares:
// validation and conflict errors become 400, missing records 404, bad
// credentials a generic 401, and anything else a logged 500 that never
// leaks store internals to the caller.
func failure(c *fiber.Ctx, err error) error {
	var validationErr *domain.ValidationError
	var conflictErr *domain.ConflictError

	switch {
	case errors.As(err, &validationErr):
		return response.ValidationFailed(c, validationErr.First(), validationErr.FieldMap())
	case errors.As(err, &conflictErr):
		return response.BadRequest(c, conflictErr.Message)
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, "Registro não encontrado")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return response.Unauthorized(c, "Login ou senha inválidos")
	default:
		log.Printf("⚠️ Erro interno: %v", err)
		return response.InternalServerError(c, "Erro interno do servidor")
	}
}

// parseID reads a positive integer route parameter, defaulting to "id"
func parseID(c *fiber.Ctx, names ...string) (uint, bool) {
	name := "id"
	if len(names) > 0 {
		name = names[0]
	}
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// responsavel returns the authenticated user's name for audit records
func responsavel(c *fiber.Ctx) string {
	nome, _ := c.Locals("nome").(string)
	return nome
}
