package handlers

import (
	"baa-logistica/internal/core/services"
	"baa-logistica/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Login string `json:"login"`
	Senha string `json:"senha"`
}

// ChangePasswordRequest represents the change password request body
type ChangePasswordRequest struct {
	SenhaAtual string `json:"senhaAtual"`
	NovaSenha  string `json:"novaSenha"`
}

// Login handles user authentication
// @Summary Login
// @Description Authenticate with login and password, returns a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	if req.Login == "" || req.Senha == "" {
		return response.BadRequest(c, "Login e senha são obrigatórios")
	}

	result, err := h.authService.Login(c.Context(), req.Login, req.Senha)
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Login realizado com sucesso", result)
}

// ChangePassword handles password changes for the authenticated user
// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/alterar-senha [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Não autenticado")
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	if err := h.authService.ChangePassword(c.Context(), userID, req.SenhaAtual, req.NovaSenha); err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Senha alterada com sucesso", nil)
}

// Me handles returning the authenticated user's profile
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Não autenticado")
	}

	usuario, err := h.authService.Me(c.Context(), userID)
	if err != nil {
		return failure(c, err)
	}

	return response.Success(c, "Usuário autenticado", usuario)
}
