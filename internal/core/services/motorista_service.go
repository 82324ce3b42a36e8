package services

import (
	"context"
	"errors"
	"time"

	"baa-logistica/internal/adapters/persistence/models"
	"baa-logistica/internal/adapters/persistence/repositories"
	"baa-logistica/internal/core/domain"

	"gorm.io/gorm"
)

// MotoristaService handles driver business logic
type MotoristaService struct {
	motoristaRepo repositories.MotoristaRepository
}

// NewMotoristaService creates a new driver service
func NewMotoristaService(motoristaRepo repositories.MotoristaRepository) *MotoristaService {
	return &MotoristaService{motoristaRepo: motoristaRepo}
}

var motoristaMessages = map[string]string{
	"nome.required":         "Nome é obrigatório",
	"cpf.required":          "CPF é obrigatório",
	"cnh.required":          "CNH é obrigatória",
	"categoriaCNH.required": "Categoria CNH é obrigatória",
	"validadeCNH.required":  "Validade da CNH é obrigatória",
	"dataAdmissao.required": "Data de admissão é obrigatória",
	"email.email":           "Email inválido",
}

// List lists drivers filtered by status and/or search term
func (s *MotoristaService) List(ctx context.Context, status, search string, offset, limit int) ([]*models.Motorista, error) {
	return s.motoristaRepo.List(ctx, status, search, offset, limit)
}

// ListAvailable lists active drivers not assigned to a trip in progress
func (s *MotoristaService) ListAvailable(ctx context.Context) ([]*models.Motorista, error) {
	return s.motoristaRepo.ListAvailable(ctx)
}

// Get returns a driver by ID
func (s *MotoristaService) Get(ctx context.Context, id uint) (*models.Motorista, error) {
	motorista, err := s.motoristaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return motorista, nil
}

// Create validates and persists a new driver
func (s *MotoristaService) Create(ctx context.Context, motorista *models.Motorista) error {
	motorista.ID = 0
	if motorista.Status == "" {
		motorista.Status = domain.MotoristaAtivo
	}

	violations, err := s.validateMotorista(ctx, motorista, 0)
	if err != nil {
		return err
	}
	if err := violationList(violations); err != nil {
		return err
	}

	return s.motoristaRepo.Create(ctx, motorista)
}

// Update validates and persists changes to an existing driver
func (s *MotoristaService) Update(ctx context.Context, id uint, input *models.Motorista) (*models.Motorista, error) {
	motorista, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	motorista.Nome = input.Nome
	motorista.CPF = input.CPF
	motorista.CNH = input.CNH
	motorista.CategoriaCNH = input.CategoriaCNH
	motorista.ValidadeCNH = input.ValidadeCNH
	motorista.Telefone = input.Telefone
	motorista.Email = input.Email
	motorista.Endereco = input.Endereco
	motorista.DataNascimento = input.DataNascimento
	motorista.DataAdmissao = input.DataAdmissao
	motorista.Observacoes = input.Observacoes
	if input.Status != "" {
		motorista.Status = input.Status
	}

	violations, err := s.validateMotorista(ctx, motorista, id)
	if err != nil {
		return nil, err
	}
	if err := violationList(violations); err != nil {
		return nil, err
	}

	if err := s.motoristaRepo.Update(ctx, motorista); err != nil {
		return nil, err
	}
	return motorista, nil
}

// Delete removes a driver unless trips still reference it
func (s *MotoristaService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	hasViagens, err := s.motoristaRepo.HasViagens(ctx, id)
	if err != nil {
		return err
	}
	if hasViagens {
		return domain.NewConflictError("Não é possível excluir motorista com viagens vinculadas")
	}

	return s.motoristaRepo.Delete(ctx, id)
}

// validateMotorista collects every violation before any write
func (s *MotoristaService) validateMotorista(ctx context.Context, motorista *models.Motorista, excludeID uint) ([]domain.FieldViolation, error) {
	violations := structViolations(motorista, motoristaMessages)

	if !domain.ValidMotoristaStatus(motorista.Status) {
		violations = append(violations, domain.FieldViolation{
			Field: "status", Message: "Status inválido: " + motorista.Status,
		})
	}

	// Date-only comparison: a CNH expiring today is still accepted.
	// Both sides are normalized to midnight in the document's own
	// location so the result never depends on the server clock's
	// time of day or timezone.
	if !motorista.ValidadeCNH.IsZero() {
		validade := motorista.ValidadeCNH
		validadeDia := time.Date(validade.Year(), validade.Month(), validade.Day(), 0, 0, 0, 0, validade.Location())
		now := time.Now().In(validade.Location())
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, validade.Location())
		if validadeDia.Before(today) {
			violations = append(violations, domain.FieldViolation{
				Field: "validadeCNH", Message: "CNH está vencida. Por favor, informe uma data futura.",
			})
		}
	}

	if motorista.CPF != "" {
		exists, err := s.motoristaRepo.ExistsByCPF(ctx, motorista.CPF, excludeID)
		if err != nil {
			return nil, err
		}
		if exists {
			violations = append(violations, domain.FieldViolation{
				Field: "cpf", Message: "CPF já cadastrado",
			})
		}
	}

	if motorista.CNH != "" {
		exists, err := s.motoristaRepo.ExistsByCNH(ctx, motorista.CNH, excludeID)
		if err != nil {
			return nil, err
		}
		if exists {
			violations = append(violations, domain.FieldViolation{
				Field: "cnh", Message: "CNH já cadastrada",
			})
		}
	}

	return violations, nil
}
