package repositories

import (
	"context"

	"baa-logistica/internal/adapters/persistence/models"
	"baa-logistica/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// veiculoRepository implements VeiculoRepository interface
type veiculoRepository struct {
	db *gorm.DB
}

// NewVeiculoRepository creates a new vehicle repository
func NewVeiculoRepository(db *gorm.DB) VeiculoRepository {
	return &veiculoRepository{db: db}
}

// Create creates a new vehicle
func (r *veiculoRepository) Create(ctx context.Context, veiculo *models.Veiculo) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(veiculo).Error
}

// GetByID gets a vehicle by ID with its maintenance records
func (r *veiculoRepository) GetByID(ctx context.Context, id uint) (*models.Veiculo, error) {
	var veiculo models.Veiculo
	err := r.db.WithContext(ctx).Preload("Manutencoes").Where("id = ?", id).First(&veiculo).Error
	if err != nil {
		return nil, err
	}
	return &veiculo, nil
}

// Update updates a vehicle; associations are never written here
func (r *veiculoRepository) Update(ctx context.Context, veiculo *models.Veiculo) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(veiculo).Error
}

// Delete removes a vehicle and, by constraint, its maintenance records
func (r *veiculoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Select("Manutencoes").Delete(&models.Veiculo{ID: id}).Error
}

// List lists vehicles ordered by plate, filtered by status and/or type
func (r *veiculoRepository) List(ctx context.Context, status, tipo string, offset, limit int) ([]*models.Veiculo, error) {
	var veiculos []*models.Veiculo
	query := r.db.WithContext(ctx).Order("placa")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if tipo != "" {
		query = query.Where("tipo_veiculo = ?", tipo)
	}
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}
	err := query.Find(&veiculos).Error
	return veiculos, err
}

// ListAvailable lists vehicles with status Disponível
func (r *veiculoRepository) ListAvailable(ctx context.Context) ([]*models.Veiculo, error) {
	var veiculos []*models.Veiculo
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.VeiculoDisponivel).
		Order("placa").
		Find(&veiculos).Error
	return veiculos, err
}

// ExistsByPlaca checks if another vehicle holds the given plate
func (r *veiculoRepository) ExistsByPlaca(ctx context.Context, placa string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Veiculo{}).
		Where("placa = ? AND id <> ?", placa, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Exists checks if a vehicle exists
func (r *veiculoRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Veiculo{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// HasViagens checks if any trip references the vehicle
func (r *veiculoRepository) HasViagens(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Viagem{}).Where("veiculo_id = ?", id).Count(&count).Error
	return count > 0, err
}

// CreateManutencao appends a maintenance record to a vehicle
func (r *veiculoRepository) CreateManutencao(ctx context.Context, manutencao *models.Manutencao) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(manutencao).Error
}

// GetManutencaoByID gets a maintenance record by ID
func (r *veiculoRepository) GetManutencaoByID(ctx context.Context, id uint) (*models.Manutencao, error) {
	var manutencao models.Manutencao
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&manutencao).Error
	if err != nil {
		return nil, err
	}
	return &manutencao, nil
}

// DeleteManutencao removes a maintenance record
func (r *veiculoRepository) DeleteManutencao(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Manutencao{}, id).Error
}
