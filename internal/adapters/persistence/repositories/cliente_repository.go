package repositories

import (
	"context"

	"baa-logistica/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// clienteRepository implements ClienteRepository interface
type clienteRepository struct {
	db *gorm.DB
}

// NewClienteRepository creates a new client repository
func NewClienteRepository(db *gorm.DB) ClienteRepository {
	return &clienteRepository{db: db}
}

// Create creates a new client
func (r *clienteRepository) Create(ctx context.Context, cliente *models.Cliente) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(cliente).Error
}

// GetByID gets a client by ID with its cargas
func (r *clienteRepository) GetByID(ctx context.Context, id uint) (*models.Cliente, error) {
	var cliente models.Cliente
	err := r.db.WithContext(ctx).Preload("Cargas").Where("id = ?", id).First(&cliente).Error
	if err != nil {
		return nil, err
	}
	return &cliente, nil
}

// Update updates a client; associations are never written here
func (r *clienteRepository) Update(ctx context.Context, cliente *models.Cliente) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(cliente).Error
}

// Delete removes a client
func (r *clienteRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Cliente{}, id).Error
}

// List lists clients ordered by razao social, optionally filtered by status
func (r *clienteRepository) List(ctx context.Context, status string, offset, limit int) ([]*models.Cliente, error) {
	var clientes []*models.Cliente
	query := r.db.WithContext(ctx).Order("razao_social")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}
	err := query.Find(&clientes).Error
	return clientes, err
}

// ExistsByCNPJ checks if another client holds the given CNPJ
func (r *clienteRepository) ExistsByCNPJ(ctx context.Context, cnpj string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Cliente{}).
		Where("cnpj = ? AND id <> ?", cnpj, excludeID).
		Count(&count).Error
	return count > 0, err
}

// ExistsByCPF checks if another client holds the given CPF
func (r *clienteRepository) ExistsByCPF(ctx context.Context, cpf string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Cliente{}).
		Where("cpf = ? AND id <> ?", cpf, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Exists checks if a client exists
func (r *clienteRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Cliente{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// HasCargas checks if the client owns any cargas
func (r *clienteRepository) HasCargas(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Carga{}).Where("cliente_id = ?", id).Count(&count).Error
	return count > 0, err
}
