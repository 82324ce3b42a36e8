package repositories

import (
	"context"

	"baa-logistica/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// viagemRepository implements ViagemRepository interface
type viagemRepository struct {
	db *gorm.DB
}

// NewViagemRepository creates a new trip repository
func NewViagemRepository(db *gorm.DB) ViagemRepository {
	return &viagemRepository{db: db}
}

// GetByID gets a trip by ID with driver, vehicle, cargo (incl. client) and expenses
func (r *viagemRepository) GetByID(ctx context.Context, id uint) (*models.Viagem, error) {
	var viagem models.Viagem
	err := r.db.WithContext(ctx).
		Preload("Motorista").
		Preload("Veiculo").
		Preload("Carga.Cliente").
		Preload("Despesas").
		Where("id = ?", id).
		First(&viagem).Error
	if err != nil {
		return nil, err
	}
	return &viagem, nil
}

// List lists trips with their references, newest first
func (r *viagemRepository) List(ctx context.Context, status string, offset, limit int) ([]*models.Viagem, error) {
	var viagens []*models.Viagem
	query := r.db.WithContext(ctx).
		Preload("Motorista").
		Preload("Veiculo").
		Preload("Carga.Cliente").
		Order("data_cadastro DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}
	err := query.Find(&viagens).Error
	return viagens, err
}

// ExistsByNumero checks if another trip holds the given trip number
func (r *viagemRepository) ExistsByNumero(ctx context.Context, numero string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Viagem{}).
		Where("numero_viagem = ? AND id <> ?", numero, excludeID).
		Count(&count).Error
	return count > 0, err
}

// GetDespesaByID gets a trip expense by ID
func (r *viagemRepository) GetDespesaByID(ctx context.Context, id uint) (*models.DespesaViagem, error) {
	var despesa models.DespesaViagem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&despesa).Error
	if err != nil {
		return nil, err
	}
	return &despesa, nil
}

// CreateDespesa appends an expense to a trip
func (r *viagemRepository) CreateDespesa(ctx context.Context, despesa *models.DespesaViagem) error {
	return r.db.WithContext(ctx).Create(despesa).Error
}

// DeleteDespesa removes a trip expense
func (r *viagemRepository) DeleteDespesa(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.DespesaViagem{}, id).Error
}
