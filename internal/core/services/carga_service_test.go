package services

import (
	"context"
	"strings"
	"testing"

	"baa-logistica/internal/adapters/persistence/models"
	"baa-logistica/internal/adapters/persistence/repositories"
	"baa-logistica/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCargaService(db *gorm.DB) *CargaService {
	return NewCargaService(db, repositories.NewCargaRepository(db), repositories.NewClienteRepository(db))
}

func TestCargaCreateGeneratesProtocolAndHistory(t *testing.T) {
	db := newTestDB(t)
	svc := newCargaService(db)
	ctx := context.Background()

	cliente := seedCliente(t, db)

	carga := &models.Carga{
		ClienteID:      cliente.ID,
		DescricaoCarga: "Paletes de bebidas",
	}
	require.NoError(t, svc.Create(ctx, carga, "Maria"))

	assert.True(t, strings.HasPrefix(carga.NumeroProtocolo, "CRG-"), "protocol %q should carry the CRG- prefix", carga.NumeroProtocolo)
	assert.Equal(t, domain.CargaAguardando, carga.Status)

	var historicos []models.HistoricoStatusCarga
	require.NoError(t, db.Where("carga_id = ?", carga.ID).Find(&historicos).Error)
	require.Len(t, historicos, 1)
	assert.Nil(t, historicos[0].StatusAnterior)
	assert.Equal(t, domain.CargaAguardando, historicos[0].StatusNovo)
	assert.Equal(t, "Maria", historicos[0].UsuarioResponsavel)
}

func TestCargaCreateValidations(t *testing.T) {
	db := newTestDB(t)
	svc := newCargaService(db)
	ctx := context.Background()

	cliente := seedCliente(t, db)
	existing := seedCarga(t, db, cliente.ID)

	err := svc.Create(ctx, &models.Carga{}, "Maria")
	requireViolation(t, err, "clienteId")
	requireViolation(t, err, "descricaoCarga")

	err = svc.Create(ctx, &models.Carga{
		NumeroProtocolo: existing.NumeroProtocolo,
		ClienteID:       cliente.ID,
		DescricaoCarga:  "Duplicada",
	}, "Maria")
	requireViolation(t, err, "numeroProtocolo")

	err = svc.Create(ctx, &models.Carga{
		ClienteID:      cliente.ID + 100,
		DescricaoCarga: "Cliente fantasma",
	}, "Maria")
	requireViolation(t, err, "clienteId")
}

func TestCargaUpdateEnforcesTransitionTable(t *testing.T) {
	db := newTestDB(t)
	svc := newCargaService(db)
	ctx := context.Background()

	cliente := seedCliente(t, db)
	carga := seedCarga(t, db, cliente.ID)

	// Aguardando cannot jump straight to Entregue
	_, err := svc.Update(ctx, carga.ID, &models.Carga{
		ClienteID:      cliente.ID,
		DescricaoCarga: carga.DescricaoCarga,
		Status:         domain.CargaEntregue,
	}, "Maria")
	requireViolation(t, err, "status")

	// cancelling while waiting is allowed and audited
	updated, err := svc.Update(ctx, carga.ID, &models.Carga{
		ClienteID:      cliente.ID,
		DescricaoCarga: carga.DescricaoCarga,
		Status:         domain.CargaCancelada,
	}, "Maria")
	require.NoError(t, err)
	assert.Equal(t, domain.CargaCancelada, updated.Status)

	var historicos []models.HistoricoStatusCarga
	require.NoError(t, db.Where("carga_id = ?", carga.ID).Order("id").Find(&historicos).Error)
	require.Len(t, historicos, 1)
	require.NotNil(t, historicos[0].StatusAnterior)
	assert.Equal(t, domain.CargaAguardando, *historicos[0].StatusAnterior)
	assert.Equal(t, domain.CargaCancelada, historicos[0].StatusNovo)
}

func TestCargaUpdateWithoutStatusChangeWritesNoHistory(t *testing.T) {
	db := newTestDB(t)
	svc := newCargaService(db)
	ctx := context.Background()

	cliente := seedCliente(t, db)
	carga := seedCarga(t, db, cliente.ID)

	updated, err := svc.Update(ctx, carga.ID, &models.Carga{
		ClienteID:      cliente.ID,
		DescricaoCarga: "Descrição revisada",
		Status:         carga.Status,
	}, "Maria")
	require.NoError(t, err)
	assert.Equal(t, "Descrição revisada", updated.DescricaoCarga)

	var count int64
	require.NoError(t, db.Model(&models.HistoricoStatusCarga{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCargaDeleteBlockedByTrips(t *testing.T) {
	db := newTestDB(t)
	svc := newCargaService(db)
	ctx := context.Background()

	cliente := seedCliente(t, db)
	motorista := seedMotorista(t, db)
	veiculo := seedVeiculo(t, db)
	carga := seedCarga(t, db, cliente.ID)

	viagemSvc := newViagemService(db)
	require.NoError(t, viagemSvc.Create(ctx, &models.Viagem{
		NumeroViagem: "VG-001",
		CargaID:      carga.ID,
		VeiculoID:    veiculo.ID,
		MotoristaID:  motorista.ID,
	}, "Maria"))

	err := svc.Delete(ctx, carga.ID)
	var conflictErr *domain.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "Não é possível excluir carga com viagens vinculadas", conflictErr.Message)
}

func TestCargaDeleteRemovesHistory(t *testing.T) {
	db := newTestDB(t)
	svc := newCargaService(db)
	ctx := context.Background()

	cliente := seedCliente(t, db)
	carga := &models.Carga{ClienteID: cliente.ID, DescricaoCarga: "Efêmera"}
	require.NoError(t, svc.Create(ctx, carga, "Maria"))

	require.NoError(t, svc.Delete(ctx, carga.ID))

	var count int64
	require.NoError(t, db.Model(&models.HistoricoStatusCarga{}).Where("carga_id = ?", carga.ID).Count(&count).Error)
	assert.Zero(t, count)

	_, err := svc.Get(ctx, carga.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
