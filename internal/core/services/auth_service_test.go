package services

import (
	"context"
	"testing"

	"baa-logistica/internal/adapters/persistence/models"
	"baa-logistica/internal/adapters/persistence/repositories"
	"baa-logistica/internal/config"
	"baa-logistica/internal/core/domain"
	"baa-logistica/internal/pkg/jwt"
	"baa-logistica/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:      "unit-test-secret",
			Issuer:      "baa-logistica",
			ExpiryHours: 8,
		},
	}
}

func seedUsuario(t *testing.T, db *gorm.DB) *models.Usuario {
	t.Helper()
	hash, err := password.Hash("senha-forte")
	require.NoError(t, err)
	usuario := &models.Usuario{
		Nome:      "Maria Silva",
		Email:     "maria@baa.com.br",
		Login:     "maria",
		SenhaHash: hash,
		Perfil:    domain.PerfilAdmin,
		Ativo:     true,
	}
	require.NoError(t, db.Create(usuario).Error)
	return usuario
}

func TestAuthLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repositories.NewUsuarioRepository(db), testConfig())
	ctx := context.Background()

	seedUsuario(t, db)

	result, err := svc.Login(ctx, "maria", "senha-forte")
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", result.Nome)
	assert.Equal(t, domain.PerfilAdmin, result.Perfil)

	claims, err := jwt.ValidateToken(result.Token, "unit-test-secret")
	require.NoError(t, err)
	assert.Equal(t, "maria@baa.com.br", claims.Email)

	// last access is stamped on success
	var saved models.Usuario
	require.NoError(t, db.Where("login = ?", "maria").First(&saved).Error)
	assert.NotNil(t, saved.DataUltimoAcesso)
}

func TestAuthLoginFailuresAreIndistinguishable(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repositories.NewUsuarioRepository(db), testConfig())
	ctx := context.Background()

	seedUsuario(t, db)

	_, errUnknown := svc.Login(ctx, "ninguem", "senha-forte")
	_, errWrongPass := svc.Login(ctx, "maria", "senha-errada")

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPass)
}

func TestAuthLoginRejectsInactiveUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repositories.NewUsuarioRepository(db), testConfig())
	ctx := context.Background()

	usuario := seedUsuario(t, db)
	require.NoError(t, db.Model(usuario).Update("ativo", false).Error)

	_, err := svc.Login(ctx, "maria", "senha-forte")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthChangePassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repositories.NewUsuarioRepository(db), testConfig())
	ctx := context.Background()

	usuario := seedUsuario(t, db)

	err := svc.ChangePassword(ctx, usuario.ID, "senha-errada", "nova-senha")
	requireViolation(t, err, "senhaAtual")

	err = svc.ChangePassword(ctx, usuario.ID, "senha-forte", "curta")
	requireViolation(t, err, "novaSenha")

	require.NoError(t, svc.ChangePassword(ctx, usuario.ID, "senha-forte", "nova-senha"))

	_, err = svc.Login(ctx, "maria", "senha-forte")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "maria", "nova-senha")
	assert.NoError(t, err)
}

func TestAuthMe(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repositories.NewUsuarioRepository(db), testConfig())
	ctx := context.Background()

	usuario := seedUsuario(t, db)

	me, err := svc.Me(ctx, usuario.ID)
	require.NoError(t, err)
	assert.Equal(t, usuario.Login, me.Login)
	assert.Equal(t, usuario.Email, me.Email)

	_, err = svc.Me(ctx, usuario.ID+1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
