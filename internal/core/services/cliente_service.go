package services

import (
	"context"
	"errors"

	"baa-logistica/internal/adapters/persistence/models"
	"baa-logistica/internal/adapters/persistence/repositories"
	"baa-logistica/internal/core/domain"

	"gorm.io/gorm"
)

// ClienteService handles client business logic
type ClienteService struct {
	clienteRepo repositories.ClienteRepository
}

// NewClienteService creates a new client service
func NewClienteService(clienteRepo repositories.ClienteRepository) *ClienteService {
	return &ClienteService{clienteRepo: clienteRepo}
}

var clienteMessages = map[string]string{
	"razaoSocial.required": "Razão social é obrigatória",
	"email.email":          "Email inválido",
}

// List lists clients, optionally filtered by status
func (s *ClienteService) List(ctx context.Context, status string, offset, limit int) ([]*models.Cliente, error) {
	return s.clienteRepo.List(ctx, status, offset, limit)
}

// Get returns a client by ID
func (s *ClienteService) Get(ctx context.Context, id uint) (*models.Cliente, error) {
	cliente, err := s.clienteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return cliente, nil
}

// Create validates and persists a new client
func (s *ClienteService) Create(ctx context.Context, cliente *models.Cliente) error {
	cliente.ID = 0
	normalizeCliente(cliente)
	if cliente.Status == "" {
		cliente.Status = domain.ClienteAtivo
	}

	violations, err := s.validateCliente(ctx, cliente, 0)
	if err != nil {
		return err
	}
	if err := violationList(violations); err != nil {
		return err
	}

	return s.clienteRepo.Create(ctx, cliente)
}

// Update validates and persists changes to an existing client
func (s *ClienteService) Update(ctx context.Context, id uint, input *models.Cliente) (*models.Cliente, error) {
	cliente, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	normalizeCliente(input)

	cliente.RazaoSocial = input.RazaoSocial
	cliente.NomeFantasia = input.NomeFantasia
	cliente.CNPJ = input.CNPJ
	cliente.CPF = input.CPF
	cliente.Telefone = input.Telefone
	cliente.Email = input.Email
	cliente.Endereco = input.Endereco
	cliente.Cidade = input.Cidade
	cliente.Estado = input.Estado
	cliente.CEP = input.CEP
	cliente.Contato = input.Contato
	if input.Status != "" {
		cliente.Status = input.Status
	}

	violations, err := s.validateCliente(ctx, cliente, id)
	if err != nil {
		return nil, err
	}
	if err := violationList(violations); err != nil {
		return nil, err
	}

	if err := s.clienteRepo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

// Delete removes a client unless cargas still reference it
func (s *ClienteService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	hasCargas, err := s.clienteRepo.HasCargas(ctx, id)
	if err != nil {
		return err
	}
	if hasCargas {
		return domain.NewConflictError("Não é possível excluir cliente com cargas vinculadas")
	}

	return s.clienteRepo.Delete(ctx, id)
}

// validateCliente collects every violation before any write
func (s *ClienteService) validateCliente(ctx context.Context, cliente *models.Cliente, excludeID uint) ([]domain.FieldViolation, error) {
	violations := structViolations(cliente, clienteMessages)

	if !domain.ValidClienteStatus(cliente.Status) {
		violations = append(violations, domain.FieldViolation{
			Field: "status", Message: "Status inválido: " + cliente.Status,
		})
	}

	if cliente.CNPJ != nil {
		exists, err := s.clienteRepo.ExistsByCNPJ(ctx, *cliente.CNPJ, excludeID)
		if err != nil {
			return nil, err
		}
		if exists {
			violations = append(violations, domain.FieldViolation{
				Field: "cnpj", Message: "CNPJ já cadastrado",
			})
		}
	}

	if cliente.CPF != nil {
		exists, err := s.clienteRepo.ExistsByCPF(ctx, *cliente.CPF, excludeID)
		if err != nil {
			return nil, err
		}
		if exists {
			violations = append(violations, domain.FieldViolation{
				Field: "cpf", Message: "CPF já cadastrado",
			})
		}
	}

	return violations, nil
}

// normalizeCliente maps empty documents to NULL so the unique indexes on
// cnpj/cpf only apply when a value is present
func normalizeCliente(cliente *models.Cliente) {
	if cliente.CNPJ != nil && *cliente.CNPJ == "" {
		cliente.CNPJ = nil
	}
	if cliente.CPF != nil && *cliente.CPF == "" {
		cliente.CPF = nil
	}
}
