package services

import (
	"context"
	"errors"

	"baa-logistica/internal/adapters/persistence/models"
	"baa-logistica/internal/adapters/persistence/repositories"
	"baa-logistica/internal/core/domain"

	"gorm.io/gorm"
)

// VeiculoService handles vehicle business logic
type VeiculoService struct {
	veiculoRepo repositories.VeiculoRepository
}

// NewVeiculoService creates a new vehicle service
func NewVeiculoService(veiculoRepo repositories.VeiculoRepository) *VeiculoService {
	return &VeiculoService{veiculoRepo: veiculoRepo}
}

var veiculoMessages = map[string]string{
	"placa.required":           "Placa é obrigatória",
	"modelo.required":          "Modelo é obrigatório",
	"marca.required":           "Marca é obrigatória",
	"anoFabricacao.required":   "Ano de fabricação inválido",
	"anoFabricacao.gt":         "Ano de fabricação inválido",
	"tipoVeiculo.required":     "Tipo de veículo é obrigatório",
	"capacidadeCarga.required": "Capacidade de carga deve ser maior que zero",
	"capacidadeCarga.gt":       "Capacidade de carga deve ser maior que zero",
}

var manutencaoMessages = map[string]string{
	"tipoManutencao.required":      "Tipo de manutenção é obrigatório",
	"descricaoManutencao.required": "Descrição da manutenção é obrigatória",
}

// List lists vehicles filtered by status and/or type
func (s *VeiculoService) List(ctx context.Context, status, tipo string, offset, limit int) ([]*models.Veiculo, error) {
	return s.veiculoRepo.List(ctx, status, tipo, offset, limit)
}

// ListAvailable lists vehicles with status Disponível
func (s *VeiculoService) ListAvailable(ctx context.Context) ([]*models.Veiculo, error) {
	return s.veiculoRepo.ListAvailable(ctx)
}

// Get returns a vehicle by ID
func (s *VeiculoService) Get(ctx context.Context, id uint) (*models.Veiculo, error) {
	veiculo, err := s.veiculoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return veiculo, nil
}

// Create validates and persists a new vehicle
func (s *VeiculoService) Create(ctx context.Context, veiculo *models.Veiculo) error {
	veiculo.ID = 0
	if veiculo.Status == "" {
		veiculo.Status = domain.VeiculoDisponivel
	}

	violations, err := s.validateVeiculo(ctx, veiculo, 0)
	if err != nil {
		return err
	}
	if err := violationList(violations); err != nil {
		return err
	}

	return s.veiculoRepo.Create(ctx, veiculo)
}

// Update validates and persists changes to an existing vehicle.
// Status set here is the manual leg of the vehicle status union; the
// trip service owns the Em Viagem / Disponível flips.
func (s *VeiculoService) Update(ctx context.Context, id uint, input *models.Veiculo) (*models.Veiculo, error) {
	veiculo, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	veiculo.Placa = input.Placa
	veiculo.Modelo = input.Modelo
	veiculo.Marca = input.Marca
	veiculo.AnoFabricacao = input.AnoFabricacao
	veiculo.TipoVeiculo = input.TipoVeiculo
	veiculo.CapacidadeCarga = input.CapacidadeCarga
	veiculo.CapacidadeVolume = input.CapacidadeVolume
	veiculo.Renavam = input.Renavam
	veiculo.Chassi = input.Chassi
	veiculo.KmAtual = input.KmAtual
	veiculo.DataAquisicao = input.DataAquisicao
	veiculo.Observacoes = input.Observacoes
	if input.Status != "" {
		veiculo.Status = input.Status
	}

	violations, err := s.validateVeiculo(ctx, veiculo, id)
	if err != nil {
		return nil, err
	}
	if err := violationList(violations); err != nil {
		return nil, err
	}

	if err := s.veiculoRepo.Update(ctx, veiculo); err != nil {
		return nil, err
	}
	return veiculo, nil
}

// Delete removes a vehicle (and its maintenance records) unless trips
// still reference it
func (s *VeiculoService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	hasViagens, err := s.veiculoRepo.HasViagens(ctx, id)
	if err != nil {
		return err
	}
	if hasViagens {
		return domain.NewConflictError("Não é possível excluir veículo com viagens vinculadas")
	}

	return s.veiculoRepo.Delete(ctx, id)
}

// AddManutencao appends a maintenance record to a vehicle
func (s *VeiculoService) AddManutencao(ctx context.Context, veiculoID uint, manutencao *models.Manutencao) error {
	if _, err := s.Get(ctx, veiculoID); err != nil {
		return err
	}

	manutencao.ID = 0
	manutencao.VeiculoID = veiculoID
	if manutencao.Status == "" {
		manutencao.Status = "Concluída"
	}

	if err := violationList(structViolations(manutencao, manutencaoMessages)); err != nil {
		return err
	}

	return s.veiculoRepo.CreateManutencao(ctx, manutencao)
}

// DeleteManutencao removes a maintenance record from a vehicle
func (s *VeiculoService) DeleteManutencao(ctx context.Context, veiculoID, manutencaoID uint) error {
	manutencao, err := s.veiculoRepo.GetManutencaoByID(ctx, manutencaoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	if manutencao.VeiculoID != veiculoID {
		return domain.ErrNotFound
	}

	return s.veiculoRepo.DeleteManutencao(ctx, manutencaoID)
}

// validateVeiculo collects every violation before any write
func (s *VeiculoService) validateVeiculo(ctx context.Context, veiculo *models.Veiculo, excludeID uint) ([]domain.FieldViolation, error) {
	violations := structViolations(veiculo, veiculoMessages)

	if !domain.ValidVeiculoStatus(veiculo.Status) {
		violations = append(violations, domain.FieldViolation{
			Field: "status", Message: "Status inválido: " + veiculo.Status,
		})
	}

	if veiculo.Placa != "" {
		exists, err := s.veiculoRepo.ExistsByPlaca(ctx, veiculo.Placa, excludeID)
		if err != nil {
			return nil, err
		}
		if exists {
			violations = append(violations, domain.FieldViolation{
				Field: "placa", Message: "Placa já cadastrada",
			})
		}
	}

	return violations, nil
}
