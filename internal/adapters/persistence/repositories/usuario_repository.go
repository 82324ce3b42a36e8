package repositories

import (
	"context"

	"baa-logistica/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// usuarioRepository implements UsuarioRepository interface
type usuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository creates a new user repository
func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

// Create creates a new user
func (r *usuarioRepository) Create(ctx context.Context, usuario *models.Usuario) error {
	return r.db.WithContext(ctx).Create(usuario).Error
}

// GetByID gets a user by ID
func (r *usuarioRepository) GetByID(ctx context.Context, id uint) (*models.Usuario, error) {
	var usuario models.Usuario
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

// GetActiveByLogin gets an active user by login
func (r *usuarioRepository) GetActiveByLogin(ctx context.Context, login string) (*models.Usuario, error) {
	var usuario models.Usuario
	err := r.db.WithContext(ctx).Where("login = ? AND ativo = ?", login, true).First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

// Update updates a user
func (r *usuarioRepository) Update(ctx context.Context, usuario *models.Usuario) error {
	return r.db.WithContext(ctx).Save(usuario).Error
}
