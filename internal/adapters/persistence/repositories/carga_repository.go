package repositories

import (
	"context"

	"baa-logistica/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// cargaRepository implements CargaRepository interface
type cargaRepository struct {
	db *gorm.DB
}

// NewCargaRepository creates a new cargo repository
func NewCargaRepository(db *gorm.DB) CargaRepository {
	return &cargaRepository{db: db}
}

// GetByID gets a cargo by ID with client, trips and status history
func (r *cargaRepository) GetByID(ctx context.Context, id uint) (*models.Carga, error) {
	var carga models.Carga
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Viagens").
		Preload("Historicos", func(db *gorm.DB) *gorm.DB {
			return db.Order("historico_status_cargas.data_mudanca")
		}).
		Where("id = ?", id).
		First(&carga).Error
	if err != nil {
		return nil, err
	}
	return &carga, nil
}

// List lists cargos with their clients, newest first
func (r *cargaRepository) List(ctx context.Context, status string, offset, limit int) ([]*models.Carga, error) {
	var cargas []*models.Carga
	query := r.db.WithContext(ctx).Preload("Cliente").Order("data_cadastro DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}
	err := query.Find(&cargas).Error
	return cargas, err
}

// ExistsByProtocolo checks if another cargo holds the given protocol number
func (r *cargaRepository) ExistsByProtocolo(ctx context.Context, protocolo string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Carga{}).
		Where("numero_protocolo = ? AND id <> ?", protocolo, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Exists checks if a cargo exists
func (r *cargaRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Carga{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// HasViagens checks if any trip references the cargo
func (r *cargaRepository) HasViagens(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Viagem{}).Where("carga_id = ?", id).Count(&count).Error
	return count > 0, err
}
