package services

import (
	"testing"
	"time"

	"baa-logistica/internal/adapters/persistence/models"
	"baa-logistica/internal/core/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory sqlite database with the full schema.
// Connections are capped at one so every query sees the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, models.AutoMigrate(db))
	return db
}

func seedCliente(t *testing.T, db *gorm.DB) *models.Cliente {
	t.Helper()
	cnpj := "12345678000190"
	cliente := &models.Cliente{
		RazaoSocial: "Transportes Andrade Ltda",
		CNPJ:        &cnpj,
		Status:      domain.ClienteAtivo,
	}
	require.NoError(t, db.Create(cliente).Error)
	return cliente
}

func seedMotorista(t *testing.T, db *gorm.DB) *models.Motorista {
	t.Helper()
	validade := time.Now().AddDate(2, 0, 0)
	motorista := &models.Motorista{
		Nome:         "Carlos Pereira",
		CPF:          "11122233344",
		CNH:          "98765432100",
		CategoriaCNH: "E",
		ValidadeCNH:  validade,
		DataAdmissao: time.Now().AddDate(-1, 0, 0),
		Status:       domain.MotoristaAtivo,
	}
	require.NoError(t, db.Create(motorista).Error)
	return motorista
}

func seedVeiculo(t *testing.T, db *gorm.DB) *models.Veiculo {
	t.Helper()
	veiculo := &models.Veiculo{
		Placa:           "ABC1D23",
		Modelo:          "FH 540",
		Marca:           "Volvo",
		AnoFabricacao:   2020,
		TipoVeiculo:     "Carreta",
		CapacidadeCarga: 30000,
		KmAtual:         150000,
		Status:          domain.VeiculoDisponivel,
	}
	require.NoError(t, db.Create(veiculo).Error)
	return veiculo
}

func seedCarga(t *testing.T, db *gorm.DB, clienteID uint) *models.Carga {
	t.Helper()
	carga := &models.Carga{
		NumeroProtocolo: "CRG-TEST0001",
		ClienteID:       clienteID,
		DescricaoCarga:  "Bobinas de aço",
		PesoCarga:       12000,
		Status:          domain.CargaAguardando,
	}
	require.NoError(t, db.Create(carga).Error)
	return carga
}

// requireViolation asserts err is a validation error carrying a violation
// for the given field
func requireViolation(t *testing.T, err error, field string) {
	t.Helper()
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	_, ok := validationErr.FieldMap()[field]
	require.True(t, ok, "expected violation on %q, got %v", field, validationErr.Violations)
}
