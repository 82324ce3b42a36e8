package services

import (
	"context"
	"errors"
	"strings"

	"baa-logistica/internal/adapters/persistence/models"
	"baa-logistica/internal/adapters/persistence/repositories"
	"baa-logistica/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CargaService handles cargo business logic. Writes that touch the status
// history run inside a transaction so a cargo is never persisted without
// its history row.
type CargaService struct {
	db          *gorm.DB
	cargaRepo   repositories.CargaRepository
	clienteRepo repositories.ClienteRepository
}

// NewCargaService creates a new cargo service
func NewCargaService(db *gorm.DB, cargaRepo repositories.CargaRepository, clienteRepo repositories.ClienteRepository) *CargaService {
	return &CargaService{
		db:          db,
		cargaRepo:   cargaRepo,
		clienteRepo: clienteRepo,
	}
}

var cargaMessages = map[string]string{
	"clienteId.required":      "Cliente é obrigatório",
	"descricaoCarga.required": "Descrição da carga é obrigatória",
}

// List lists cargos, optionally filtered by status
func (s *CargaService) List(ctx context.Context, status string, offset, limit int) ([]*models.Carga, error) {
	return s.cargaRepo.List(ctx, status, offset, limit)
}

// Get returns a cargo by ID with client, trips and status history
func (s *CargaService) Get(ctx context.Context, id uint) (*models.Carga, error) {
	carga, err := s.cargaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return carga, nil
}

// Create validates and persists a new cargo together with its first
// history entry. A blank protocol number is generated by the system.
func (s *CargaService) Create(ctx context.Context, carga *models.Carga, responsavel string) error {
	carga.ID = 0
	carga.Cliente, carga.Viagens, carga.Historicos = nil, nil, nil
	if carga.Status == "" {
		carga.Status = domain.CargaAguardando
	}
	if strings.TrimSpace(carga.NumeroProtocolo) == "" {
		carga.NumeroProtocolo = generateProtocolo()
	}

	violations, err := s.validateCarga(ctx, carga, 0)
	if err != nil {
		return err
	}
	if err := violationList(violations); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(carga).Error; err != nil {
			return err
		}
		historico := &models.HistoricoStatusCarga{
			CargaID:            carga.ID,
			StatusNovo:         carga.Status,
			Observacoes:        "Carga cadastrada no sistema",
			UsuarioResponsavel: responsavel,
		}
		return tx.Create(historico).Error
	})
}

// Update validates and persists changes to an existing cargo. A status
// change must follow the cargo transition table and appends exactly one
// history row, atomically with the cargo write.
func (s *CargaService) Update(ctx context.Context, id uint, input *models.Carga, responsavel string) (*models.Carga, error) {
	carga, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	// detach preloaded associations so Save only touches the cargas row
	carga.Cliente, carga.Viagens, carga.Historicos = nil, nil, nil

	statusAnterior := carga.Status

	carga.TipoCarga = input.TipoCarga
	carga.DescricaoCarga = input.DescricaoCarga
	carga.PesoCarga = input.PesoCarga
	carga.VolumeCarga = input.VolumeCarga
	carga.ValorCarga = input.ValorCarga
	carga.EnderecoColeta = input.EnderecoColeta
	carga.CidadeColeta = input.CidadeColeta
	carga.EstadoColeta = input.EstadoColeta
	carga.EnderecoEntrega = input.EnderecoEntrega
	carga.CidadeEntrega = input.CidadeEntrega
	carga.EstadoEntrega = input.EstadoEntrega
	carga.DataPrevistaColeta = input.DataPrevistaColeta
	carga.DataPrevistaEntrega = input.DataPrevistaEntrega
	carga.Observacoes = input.Observacoes
	if input.Status != "" {
		carga.Status = input.Status
	}

	violations, err := s.validateCarga(ctx, carga, id)
	if err != nil {
		return nil, err
	}
	if carga.Status != statusAnterior && !domain.CanTransitionCarga(statusAnterior, carga.Status) {
		violations = append(violations, domain.FieldViolation{
			Field:   "status",
			Message: "Transição de status inválida: " + statusAnterior + " → " + carga.Status,
		})
	}
	if err := violationList(violations); err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(carga).Error; err != nil {
			return err
		}
		if carga.Status == statusAnterior {
			return nil
		}
		anterior := statusAnterior
		historico := &models.HistoricoStatusCarga{
			CargaID:            carga.ID,
			StatusAnterior:     &anterior,
			StatusNovo:         carga.Status,
			UsuarioResponsavel: responsavel,
		}
		return tx.Create(historico).Error
	})
	if err != nil {
		return nil, err
	}
	return carga, nil
}

// Delete removes a cargo and its history unless trips still reference it
func (s *CargaService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	hasViagens, err := s.cargaRepo.HasViagens(ctx, id)
	if err != nil {
		return err
	}
	if hasViagens {
		return domain.NewConflictError("Não é possível excluir carga com viagens vinculadas")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("carga_id = ?", id).Delete(&models.HistoricoStatusCarga{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Carga{}, id).Error
	})
}

// validateCarga collects every violation before any write
func (s *CargaService) validateCarga(ctx context.Context, carga *models.Carga, excludeID uint) ([]domain.FieldViolation, error) {
	violations := structViolations(carga, cargaMessages)

	if !domain.ValidCargaStatus(carga.Status) {
		violations = append(violations, domain.FieldViolation{
			Field: "status", Message: "Status inválido: " + carga.Status,
		})
	}

	if carga.NumeroProtocolo != "" {
		exists, err := s.cargaRepo.ExistsByProtocolo(ctx, carga.NumeroProtocolo, excludeID)
		if err != nil {
			return nil, err
		}
		if exists {
			violations = append(violations, domain.FieldViolation{
				Field: "numeroProtocolo", Message: "Número de protocolo já existe",
			})
		}
	}

	if carga.ClienteID != 0 {
		exists, err := s.clienteRepo.Exists(ctx, carga.ClienteID)
		if err != nil {
			return nil, err
		}
		if !exists {
			violations = append(violations, domain.FieldViolation{
				Field: "clienteId", Message: "Cliente não encontrado",
			})
		}
	}

	return violations, nil
}

// generateProtocolo builds a system protocol number, e.g. CRG-1A2B3C4D
func generateProtocolo() string {
	return "CRG-" + strings.ToUpper(uuid.NewString()[:8])
}
