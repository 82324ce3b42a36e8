package repositories

import (
	"context"

	"baa-logistica/internal/adapters/persistence/models"
	"baa-logistica/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// motoristaRepository implements MotoristaRepository interface
type motoristaRepository struct {
	db *gorm.DB
}

// NewMotoristaRepository creates a new driver repository
func NewMotoristaRepository(db *gorm.DB) MotoristaRepository {
	return &motoristaRepository{db: db}
}

// Create creates a new driver
func (r *motoristaRepository) Create(ctx context.Context, motorista *models.Motorista) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(motorista).Error
}

// GetByID gets a driver by ID with its trips
func (r *motoristaRepository) GetByID(ctx context.Context, id uint) (*models.Motorista, error) {
	var motorista models.Motorista
	err := r.db.WithContext(ctx).Preload("Viagens").Where("id = ?", id).First(&motorista).Error
	if err != nil {
		return nil, err
	}
	return &motorista, nil
}

// Update updates a driver; associations are never written here
func (r *motoristaRepository) Update(ctx context.Context, motorista *models.Motorista) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(motorista).Error
}

// Delete removes a driver
func (r *motoristaRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Motorista{}, id).Error
}

// List lists drivers ordered by name, filtered by status and/or a search
// term matched against name, CPF and CNH
func (r *motoristaRepository) List(ctx context.Context, status, search string, offset, limit int) ([]*models.Motorista, error) {
	var motoristas []*models.Motorista
	query := r.db.WithContext(ctx).Order("nome")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("nome LIKE ? OR cpf LIKE ? OR cnh LIKE ?", pattern, pattern, pattern)
	}
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}
	err := query.Find(&motoristas).Error
	return motoristas, err
}

// ListAvailable lists active drivers currently not assigned to a trip in progress
func (r *motoristaRepository) ListAvailable(ctx context.Context) ([]*models.Motorista, error) {
	var motoristas []*models.Motorista
	subquery := r.db.Model(&models.Viagem{}).
		Select("motorista_id").
		Where("status = ?", domain.ViagemEmAndamento)
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.MotoristaAtivo).
		Where("id NOT IN (?)", subquery).
		Order("nome").
		Find(&motoristas).Error
	return motoristas, err
}

// ExistsByCPF checks if another driver holds the given CPF
func (r *motoristaRepository) ExistsByCPF(ctx context.Context, cpf string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Motorista{}).
		Where("cpf = ? AND id <> ?", cpf, excludeID).
		Count(&count).Error
	return count > 0, err
}

// ExistsByCNH checks if another driver holds the given CNH
func (r *motoristaRepository) ExistsByCNH(ctx context.Context, cnh string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Motorista{}).
		Where("cnh = ? AND id <> ?", cnh, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Exists checks if a driver exists
func (r *motoristaRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Motorista{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// HasViagens checks if any trip references the driver
func (r *motoristaRepository) HasViagens(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Viagem{}).Where("motorista_id = ?", id).Count(&count).Error
	return count > 0, err
}
