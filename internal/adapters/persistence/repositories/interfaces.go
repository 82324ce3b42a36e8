package repositories

import (
	"context"

	"baa-logistica/internal/adapters/persistence/models"
)

// UsuarioRepository defines user repository interface
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *models.Usuario) error
	GetByID(ctx context.Context, id uint) (*models.Usuario, error)
	GetActiveByLogin(ctx context.Context, login string) (*models.Usuario, error)
	Update(ctx context.Context, usuario *models.Usuario) error
}

// ClienteRepository defines client repository interface
type ClienteRepository interface {
	Create(ctx context.Context, cliente *models.Cliente) error
	GetByID(ctx context.Context, id uint) (*models.Cliente, error)
	Update(ctx context.Context, cliente *models.Cliente) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, status string, offset, limit int) ([]*models.Cliente, error)
	ExistsByCNPJ(ctx context.Context, cnpj string, excludeID uint) (bool, error)
	ExistsByCPF(ctx context.Context, cpf string, excludeID uint) (bool, error)
	Exists(ctx context.Context, id uint) (bool, error)
	HasCargas(ctx context.Context, id uint) (bool, error)
}

// MotoristaRepository defines driver repository interface
type MotoristaRepository interface {
	Create(ctx context.Context, motorista *models.Motorista) error
	GetByID(ctx context.Context, id uint) (*models.Motorista, error)
	Update(ctx context.Context, motorista *models.Motorista) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, status, search string, offset, limit int) ([]*models.Motorista, error)
	ListAvailable(ctx context.Context) ([]*models.Motorista, error)
	ExistsByCPF(ctx context.Context, cpf string, excludeID uint) (bool, error)
	ExistsByCNH(ctx context.Context, cnh string, excludeID uint) (bool, error)
	Exists(ctx context.Context, id uint) (bool, error)
	HasViagens(ctx context.Context, id uint) (bool, error)
}

// VeiculoRepository defines vehicle repository interface
type VeiculoRepository interface {
	Create(ctx context.Context, veiculo *models.Veiculo) error
	GetByID(ctx context.Context, id uint) (*models.Veiculo, error)
	Update(ctx context.Context, veiculo *models.Veiculo) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, status, tipo string, offset, limit int) ([]*models.Veiculo, error)
	ListAvailable(ctx context.Context) ([]*models.Veiculo, error)
	ExistsByPlaca(ctx context.Context, placa string, excludeID uint) (bool, error)
	Exists(ctx context.Context, id uint) (bool, error)
	HasViagens(ctx context.Context, id uint) (bool, error)
	CreateManutencao(ctx context.Context, manutencao *models.Manutencao) error
	GetManutencaoByID(ctx context.Context, id uint) (*models.Manutencao, error)
	DeleteManutencao(ctx context.Context, id uint) error
}

// CargaRepository defines cargo repository interface.
// Writes that must be atomic with status history live in the services,
// inside a transaction scope.
type CargaRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Carga, error)
	List(ctx context.Context, status string, offset, limit int) ([]*models.Carga, error)
	ExistsByProtocolo(ctx context.Context, protocolo string, excludeID uint) (bool, error)
	Exists(ctx context.Context, id uint) (bool, error)
	HasViagens(ctx context.Context, id uint) (bool, error)
}

// ViagemRepository defines trip repository interface.
// Trip writes are transactional commands owned by the trip service.
type ViagemRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Viagem, error)
	List(ctx context.Context, status string, offset, limit int) ([]*models.Viagem, error)
	ExistsByNumero(ctx context.Context, numero string, excludeID uint) (bool, error)
	GetDespesaByID(ctx context.Context, id uint) (*models.DespesaViagem, error)
	CreateDespesa(ctx context.Context, despesa *models.DespesaViagem) error
	DeleteDespesa(ctx context.Context, id uint) error
}
