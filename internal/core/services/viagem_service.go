package services

import (
	"context"
	"errors"
	"log"

	"baa-logistica/internal/adapters/persistence/models"
	"baa-logistica/internal/adapters/persistence/repositories"
	"baa-logistica/internal/core/domain"

	"gorm.io/gorm"
)

// ViagemService owns the trip lifecycle and the status-transition engine:
// every trip write that affects the referenced vehicle or cargo runs as a
// single transactional command, so either the trip, the vehicle status,
// the cargo status and the history row all persist, or none do.
type ViagemService struct {
	db            *gorm.DB
	viagemRepo    repositories.ViagemRepository
	cargaRepo     repositories.CargaRepository
	veiculoRepo   repositories.VeiculoRepository
	motoristaRepo repositories.MotoristaRepository
}

// NewViagemService creates a new trip service
func NewViagemService(
	db *gorm.DB,
	viagemRepo repositories.ViagemRepository,
	cargaRepo repositories.CargaRepository,
	veiculoRepo repositories.VeiculoRepository,
	motoristaRepo repositories.MotoristaRepository,
) *ViagemService {
	return &ViagemService{
		db:            db,
		viagemRepo:    viagemRepo,
		cargaRepo:     cargaRepo,
		veiculoRepo:   veiculoRepo,
		motoristaRepo: motoristaRepo,
	}
}

var viagemMessages = map[string]string{
	"numeroViagem.required": "Número da viagem é obrigatório",
	"cargaId.required":      "Carga é obrigatória",
	"veiculoId.required":    "Veículo é obrigatório",
	"motoristaId.required":  "Motorista é obrigatório",
}

var despesaMessages = map[string]string{
	"tipoDespesa.required": "Tipo de despesa é obrigatório",
	"valor.required":       "Valor deve ser maior que zero",
	"valor.gt":             "Valor deve ser maior que zero",
}

// List lists trips, optionally filtered by status
func (s *ViagemService) List(ctx context.Context, status string, offset, limit int) ([]*models.Viagem, error) {
	return s.viagemRepo.List(ctx, status, offset, limit)
}

// Get returns a trip by ID with references and expenses
func (s *ViagemService) Get(ctx context.Context, id uint) (*models.Viagem, error) {
	viagem, err := s.viagemRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return viagem, nil
}

// Create is the CreateTrip command. The new trip always starts as
// Planejada; inside one transaction the referenced vehicle becomes
// Em Viagem and the cargo becomes Em Transporte with a history row.
func (s *ViagemService) Create(ctx context.Context, viagem *models.Viagem, responsavel string) error {
	viagem.ID = 0
	viagem.Status = domain.ViagemPlanejada
	viagem.Carga, viagem.Veiculo, viagem.Motorista, viagem.Despesas = nil, nil, nil, nil

	violations := structViolations(viagem, viagemMessages)

	if viagem.NumeroViagem != "" {
		exists, err := s.viagemRepo.ExistsByNumero(ctx, viagem.NumeroViagem, 0)
		if err != nil {
			return err
		}
		if exists {
			violations = append(violations, domain.FieldViolation{
				Field: "numeroViagem", Message: "Número de viagem já existe",
			})
		}
	}

	var carga *models.Carga
	if viagem.CargaID != 0 {
		var err error
		carga, err = s.cargaRepo.GetByID(ctx, viagem.CargaID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			violations = append(violations, domain.FieldViolation{
				Field: "cargaId", Message: "Carga não encontrada",
			})
		} else if carga.Status != domain.CargaAguardando {
			violations = append(violations, domain.FieldViolation{
				Field: "cargaId", Message: "Carga não está aguardando transporte",
			})
		}
	}

	if viagem.VeiculoID != 0 {
		veiculo, err := s.veiculoRepo.GetByID(ctx, viagem.VeiculoID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			violations = append(violations, domain.FieldViolation{
				Field: "veiculoId", Message: "Veículo não encontrado",
			})
		} else if veiculo.Status != domain.VeiculoDisponivel {
			violations = append(violations, domain.FieldViolation{
				Field: "veiculoId", Message: "Veículo não está disponível",
			})
		}
	}

	if viagem.MotoristaID != 0 {
		exists, err := s.motoristaRepo.Exists(ctx, viagem.MotoristaID)
		if err != nil {
			return err
		}
		if !exists {
			violations = append(violations, domain.FieldViolation{
				Field: "motoristaId", Message: "Motorista não encontrado",
			})
		}
	}

	if err := violationList(violations); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(viagem).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Veiculo{}).
			Where("id = ?", viagem.VeiculoID).
			Update("status", domain.VeiculoEmViagem).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Carga{}).
			Where("id = ?", viagem.CargaID).
			Update("status", domain.CargaEmTransporte).Error; err != nil {
			return err
		}

		anterior := carga.Status
		historico := &models.HistoricoStatusCarga{
			CargaID:            viagem.CargaID,
			StatusAnterior:     &anterior,
			StatusNovo:         domain.CargaEmTransporte,
			Observacoes:        "Carga vinculada à viagem " + viagem.NumeroViagem,
			UsuarioResponsavel: responsavel,
		}
		return tx.Create(historico).Error
	})
	if err != nil {
		return err
	}

	log.Printf("✅ Viagem criada: %s (Id=%d)", viagem.NumeroViagem, viagem.ID)
	return nil
}

// Update touches dates, odometer readings, freight value, notes and status.
// The cargo/vehicle/driver references are immutable after creation. A
// transition to Concluída is the CompleteTrip command: inside one
// transaction the vehicle returns to Disponível (odometer updated from
// kmFinal when present) and the cargo becomes Entregue with a history row.
func (s *ViagemService) Update(ctx context.Context, id uint, input *models.Viagem, responsavel string) (*models.Viagem, error) {
	var viagem models.Viagem
	if err := s.db.WithContext(ctx).First(&viagem, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	statusAnterior := viagem.Status

	viagem.DataSaida = input.DataSaida
	viagem.DataPrevisaoChegada = input.DataPrevisaoChegada
	viagem.DataChegadaReal = input.DataChegadaReal
	viagem.KmInicial = input.KmInicial
	viagem.KmFinal = input.KmFinal
	viagem.DistanciaPercorrida = input.DistanciaPercorrida
	viagem.ValorFrete = input.ValorFrete
	viagem.Observacoes = input.Observacoes
	if input.Status != "" {
		viagem.Status = input.Status
	}

	if !domain.ValidViagemStatus(viagem.Status) {
		return nil, domain.NewValidationError(domain.FieldViolation{
			Field: "status", Message: "Status inválido: " + viagem.Status,
		})
	}

	completing := viagem.Status == domain.ViagemConcluida && statusAnterior != domain.ViagemConcluida

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&viagem).Error; err != nil {
			return err
		}
		if !completing {
			return nil
		}
		return s.completeTrip(tx, &viagem, responsavel)
	})
	if err != nil {
		return nil, err
	}
	return &viagem, nil
}

// completeTrip applies the vehicle/cargo side effects of a completed trip
// within the caller's transaction
func (s *ViagemService) completeTrip(tx *gorm.DB, viagem *models.Viagem, responsavel string) error {
	updates := map[string]interface{}{"status": domain.VeiculoDisponivel}
	if viagem.KmFinal != nil {
		updates["km_atual"] = *viagem.KmFinal
	}
	if err := tx.Model(&models.Veiculo{}).
		Where("id = ?", viagem.VeiculoID).
		Updates(updates).Error; err != nil {
		return err
	}

	var carga models.Carga
	if err := tx.First(&carga, viagem.CargaID).Error; err != nil {
		return err
	}
	if carga.Status == domain.CargaEntregue {
		return nil
	}

	if err := tx.Model(&models.Carga{}).
		Where("id = ?", carga.ID).
		Update("status", domain.CargaEntregue).Error; err != nil {
		return err
	}

	anterior := carga.Status
	historico := &models.HistoricoStatusCarga{
		CargaID:            carga.ID,
		StatusAnterior:     &anterior,
		StatusNovo:         domain.CargaEntregue,
		Observacoes:        "Viagem " + viagem.NumeroViagem + " concluída",
		UsuarioResponsavel: responsavel,
	}
	return tx.Create(historico).Error
}

// Delete removes a trip and its expenses. A trip in progress cannot be
// deleted. Deleting a Planejada trip rolls the vehicle and cargo back to
// Disponível/Aguardando so they are not left stuck in a transit status
// that no trip justifies anymore.
func (s *ViagemService) Delete(ctx context.Context, id uint, responsavel string) error {
	var viagem models.Viagem
	if err := s.db.WithContext(ctx).First(&viagem, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}

	if viagem.Status == domain.ViagemEmAndamento {
		return domain.NewConflictError("Não é possível excluir viagem em andamento")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("viagem_id = ?", id).Delete(&models.DespesaViagem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Viagem{}, id).Error; err != nil {
			return err
		}
		if viagem.Status != domain.ViagemPlanejada {
			return nil
		}
		return s.rollbackPlannedTrip(tx, &viagem, responsavel)
	})
}

// rollbackPlannedTrip undoes the CreateTrip side effects when a trip is
// deleted before it ever started
func (s *ViagemService) rollbackPlannedTrip(tx *gorm.DB, viagem *models.Viagem, responsavel string) error {
	if err := tx.Model(&models.Veiculo{}).
		Where("id = ? AND status = ?", viagem.VeiculoID, domain.VeiculoEmViagem).
		Update("status", domain.VeiculoDisponivel).Error; err != nil {
		return err
	}

	var carga models.Carga
	if err := tx.First(&carga, viagem.CargaID).Error; err != nil {
		return err
	}
	if carga.Status != domain.CargaEmTransporte {
		return nil
	}

	if err := tx.Model(&models.Carga{}).
		Where("id = ?", carga.ID).
		Update("status", domain.CargaAguardando).Error; err != nil {
		return err
	}

	anterior := carga.Status
	historico := &models.HistoricoStatusCarga{
		CargaID:            carga.ID,
		StatusAnterior:     &anterior,
		StatusNovo:         domain.CargaAguardando,
		Observacoes:        "Viagem " + viagem.NumeroViagem + " excluída antes do início do transporte",
		UsuarioResponsavel: responsavel,
	}
	return tx.Create(historico).Error
}

// AddDespesa appends an expense to a trip
func (s *ViagemService) AddDespesa(ctx context.Context, viagemID uint, despesa *models.DespesaViagem) error {
	if _, err := s.Get(ctx, viagemID); err != nil {
		return err
	}

	despesa.ID = 0
	despesa.ViagemID = viagemID

	if err := violationList(structViolations(despesa, despesaMessages)); err != nil {
		return err
	}

	return s.viagemRepo.CreateDespesa(ctx, despesa)
}

// DeleteDespesa removes an expense from a trip
func (s *ViagemService) DeleteDespesa(ctx context.Context, viagemID, despesaID uint) error {
	despesa, err := s.viagemRepo.GetDespesaByID(ctx, despesaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	if despesa.ViagemID != viagemID {
		return domain.ErrNotFound
	}

	return s.viagemRepo.DeleteDespesa(ctx, despesaID)
}
