package services

import (
	"context"
	"errors"
	"log"
	"time"

	"baa-logistica/internal/adapters/persistence/models"
	"baa-logistica/internal/adapters/persistence/repositories"
	"baa-logistica/internal/config"
	"baa-logistica/internal/core/domain"
	"baa-logistica/internal/pkg/jwt"
	"baa-logistica/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService handles authentication business logic
type AuthService struct {
	usuarioRepo repositories.UsuarioRepository
	cfg         *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(usuarioRepo repositories.UsuarioRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		usuarioRepo: usuarioRepo,
		cfg:         cfg,
	}
}

// LoginResult represents a successful authentication
type LoginResult struct {
	Token     string    `json:"token"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Perfil    string    `json:"perfil"`
	Expiracao time.Time `json:"expiracao"`
}

// Login authenticates a user by login and plaintext password.
// Unknown login and wrong password both map to ErrInvalidCredentials so the
// response never reveals which one failed.
func (s *AuthService) Login(ctx context.Context, login, senha string) (*LoginResult, error) {
	usuario, err := s.usuarioRepo.GetActiveByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(senha, usuario.SenhaHash) {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	usuario.DataUltimoAcesso = &now
	if err := s.usuarioRepo.Update(ctx, usuario); err != nil {
		return nil, err
	}

	token, expiracao, err := jwt.GenerateToken(
		usuario.ID,
		usuario.Nome,
		usuario.Email,
		usuario.Perfil,
		s.cfg.JWT.Secret,
		s.cfg.JWT.Issuer,
		s.cfg.JWT.ExpiryHours,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Login bem-sucedido: %s", usuario.Login)

	return &LoginResult{
		Token:     token,
		Nome:      usuario.Nome,
		Email:     usuario.Email,
		Perfil:    usuario.Perfil,
		Expiracao: expiracao,
	}, nil
}

// ChangePassword replaces the caller's password after proving the current one
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, senhaAtual, novaSenha string) error {
	usuario, err := s.usuarioRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}

	if !password.Verify(senhaAtual, usuario.SenhaHash) {
		return domain.NewValidationError(domain.FieldViolation{
			Field:   "senhaAtual",
			Message: "Senha atual incorreta",
		})
	}

	if !password.ValidatePassword(novaSenha) {
		return domain.NewValidationError(domain.FieldViolation{
			Field:   "novaSenha",
			Message: "A nova senha deve ter pelo menos 6 caracteres",
		})
	}

	hash, err := password.Hash(novaSenha)
	if err != nil {
		return err
	}

	usuario.SenhaHash = hash
	if err := s.usuarioRepo.Update(ctx, usuario); err != nil {
		return err
	}

	log.Printf("✅ Senha alterada: %s", usuario.Login)
	return nil
}

// Me returns the caller's own profile, never the password hash
func (s *AuthService) Me(ctx context.Context, userID uint) (*models.UsuarioResponse, error) {
	usuario, err := s.usuarioRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return usuario.ToResponse(), nil
}
