package middleware

import (
	"errors"
	"strings"

	"baa-logistica/internal/config"
	"baa-logistica/internal/pkg/jwt"
	"baa-logistica/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware rejects requests without a valid bearer token and places
// the token claims in the request locals. It runs before any business
// logic on protected routes.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return response.Unauthorized(c, "Token de acesso não informado")
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwt.ValidateToken(token, cfg.JWT.Secret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return response.Unauthorized(c, "Token expirado")
			}
			return response.Unauthorized(c, "Token inválido")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("nome", claims.Nome)
		c.Locals("email", claims.Email)
		c.Locals("perfil", claims.Perfil)

		return c.Next()
	}
}
