package services

import (
	"context"
	"testing"
	"time"

	"baa-logistica/internal/adapters/persistence/models"
	"baa-logistica/internal/adapters/persistence/repositories"
	"baa-logistica/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVeiculoUniquePlaca(t *testing.T) {
	db := newTestDB(t)
	svc := NewVeiculoService(repositories.NewVeiculoRepository(db))
	ctx := context.Background()

	existing := seedVeiculo(t, db)

	err := svc.Create(ctx, &models.Veiculo{
		Placa:           existing.Placa,
		Modelo:          "Actros",
		Marca:           "Mercedes-Benz",
		AnoFabricacao:   2022,
		TipoVeiculo:     "Truck",
		CapacidadeCarga: 14000,
	})
	requireViolation(t, err, "placa")
}

func TestVeiculoListAvailableFiltersByStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewVeiculoService(repositories.NewVeiculoRepository(db))
	ctx := context.Background()

	disponivel := seedVeiculo(t, db)

	emManutencao := &models.Veiculo{
		Placa:           "XYZ9A88",
		Modelo:          "Atego",
		Marca:           "Mercedes-Benz",
		AnoFabricacao:   2018,
		TipoVeiculo:     "Truck",
		CapacidadeCarga: 10000,
		Status:          domain.VeiculoManutencao,
	}
	require.NoError(t, db.Create(emManutencao).Error)

	disponiveis, err := svc.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, disponiveis, 1)
	assert.Equal(t, disponivel.Placa, disponiveis[0].Placa)
}

func TestVeiculoManutencaoLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewVeiculoService(repositories.NewVeiculoRepository(db))
	ctx := context.Background()

	veiculo := seedVeiculo(t, db)

	err := svc.AddManutencao(ctx, veiculo.ID, &models.Manutencao{})
	requireViolation(t, err, "tipoManutencao")
	requireViolation(t, err, "descricaoManutencao")

	manutencao := &models.Manutencao{
		TipoManutencao:      "Preventiva",
		DescricaoManutencao: "Troca de óleo e filtros",
		DataManutencao:      time.Now(),
	}
	require.NoError(t, svc.AddManutencao(ctx, veiculo.ID, manutencao))
	require.NotZero(t, manutencao.ID)
	assert.Equal(t, "Concluída", manutencao.Status)

	// the record belongs to this vehicle only
	assert.ErrorIs(t, svc.DeleteManutencao(ctx, veiculo.ID+1, manutencao.ID), domain.ErrNotFound)
	require.NoError(t, svc.DeleteManutencao(ctx, veiculo.ID, manutencao.ID))
}

func TestVeiculoDeleteCascadesManutencoes(t *testing.T) {
	db := newTestDB(t)
	svc := NewVeiculoService(repositories.NewVeiculoRepository(db))
	ctx := context.Background()

	veiculo := seedVeiculo(t, db)
	require.NoError(t, svc.AddManutencao(ctx, veiculo.ID, &models.Manutencao{
		TipoManutencao:      "Corretiva",
		DescricaoManutencao: "Embreagem",
	}))

	require.NoError(t, svc.Delete(ctx, veiculo.ID))

	var count int64
	require.NoError(t, db.Model(&models.Manutencao{}).Where("veiculo_id = ?", veiculo.ID).Count(&count).Error)
	assert.Zero(t, count)
}
