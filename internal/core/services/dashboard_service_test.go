package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"baa-logistica/internal/adapters/persistence/models"
	"baa-logistica/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardEstatisticas(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	ctx := context.Background()

	cliente := seedCliente(t, db)
	motorista := seedMotorista(t, db)
	veiculo := seedVeiculo(t, db)
	carga := seedCarga(t, db, cliente.ID)

	deFerias := &models.Motorista{
		Nome:         "Pedro Rocha",
		CPF:          "44455566677",
		CNH:          "78978978978",
		CategoriaCNH: "E",
		ValidadeCNH:  time.Now().AddDate(2, 0, 0),
		DataAdmissao: time.Now(),
		Status:       domain.MotoristaFerias,
	}
	require.NoError(t, db.Create(deFerias).Error)

	require.NoError(t, newViagemService(db).Create(ctx, &models.Viagem{
		NumeroViagem: "VG-001",
		CargaID:      carga.ID,
		VeiculoID:    veiculo.ID,
		MotoristaID:  motorista.ID,
	}, "Maria"))

	stats, err := svc.GetEstatisticas(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.Clientes.Total)
	assert.Equal(t, int64(1), stats.Clientes.Ativos)
	assert.Equal(t, int64(2), stats.Motoristas.Total)
	assert.Equal(t, int64(1), stats.Motoristas.Ativos)
	assert.Equal(t, int64(1), stats.Motoristas.Inativos)
	assert.Equal(t, int64(1), stats.Veiculos.Total)
	assert.Equal(t, int64(0), stats.Veiculos.Disponiveis)
	assert.Equal(t, int64(1), stats.Veiculos.EmViagem)
	assert.Equal(t, int64(1), stats.Cargas.EmTransporte)
	assert.Equal(t, int64(0), stats.Cargas.Aguardando)
	assert.Equal(t, int64(1), stats.Viagens.Planejadas)
	assert.Equal(t, int64(0), stats.Viagens.Concluidas)
}

func TestDashboardViagensAtivasOrderedByArrival(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	ctx := context.Background()

	cliente := seedCliente(t, db)
	motorista := seedMotorista(t, db)
	viagemSvc := newViagemService(db)

	amanha := time.Now().Add(24 * time.Hour)
	semanaQueVem := time.Now().Add(7 * 24 * time.Hour)

	// two independent vehicle/cargo pairs
	veiculoA := seedVeiculo(t, db)
	cargaA := seedCarga(t, db, cliente.ID)
	veiculoB := &models.Veiculo{
		Placa: "DEF4G56", Modelo: "R 450", Marca: "Scania",
		AnoFabricacao: 2021, TipoVeiculo: "Carreta", CapacidadeCarga: 28000,
		Status: domain.VeiculoDisponivel,
	}
	require.NoError(t, db.Create(veiculoB).Error)
	cargaB := &models.Carga{
		NumeroProtocolo: "CRG-TEST0002", ClienteID: cliente.ID,
		DescricaoCarga: "Grãos", Status: domain.CargaAguardando,
	}
	require.NoError(t, db.Create(cargaB).Error)

	require.NoError(t, viagemSvc.Create(ctx, &models.Viagem{
		NumeroViagem: "VG-TARDE", CargaID: cargaA.ID, VeiculoID: veiculoA.ID,
		MotoristaID: motorista.ID, DataPrevisaoChegada: &semanaQueVem,
	}, "Maria"))
	require.NoError(t, viagemSvc.Create(ctx, &models.Viagem{
		NumeroViagem: "VG-CEDO", CargaID: cargaB.ID, VeiculoID: veiculoB.ID,
		MotoristaID: motorista.ID, DataPrevisaoChegada: &amanha,
	}, "Maria"))

	ativas, err := svc.GetViagensAtivas(ctx)
	require.NoError(t, err)
	require.Len(t, ativas, 2)
	assert.Equal(t, "VG-CEDO", ativas[0].NumeroViagem)
	assert.Equal(t, "VG-TARDE", ativas[1].NumeroViagem)
	assert.Equal(t, "Carlos Pereira", ativas[0].Motorista)
	assert.Equal(t, "Transportes Andrade Ltda", ativas[0].Cliente)
	assert.Equal(t, "Scania R 450", ativas[0].Veiculo)
}

func TestDashboardUltimasCargasHonorsCount(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	ctx := context.Background()

	cliente := seedCliente(t, db)
	base := time.Now().Add(-48 * time.Hour)
	for i := 0; i < 5; i++ {
		carga := &models.Carga{
			NumeroProtocolo: fmt.Sprintf("CRG-SEQ%04d", i+1),
			ClienteID:       cliente.ID,
			DescricaoCarga:  "Lote",
			Status:          domain.CargaAguardando,
			DataCadastro:    base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(carga).Error)
	}

	recentes, err := svc.GetUltimasCargas(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recentes, 3)
	assert.Equal(t, "CRG-SEQ0005", recentes[0].NumeroProtocolo)
	assert.Equal(t, "Transportes Andrade Ltda", recentes[0].Cliente)

	// non-positive count falls back to the default of ten
	todas, err := svc.GetUltimasCargas(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, todas, 5)
}

func TestDashboardViagensPorMes(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	ctx := context.Background()

	cliente := seedCliente(t, db)
	motorista := seedMotorista(t, db)
	veiculo := seedVeiculo(t, db)
	carga := seedCarga(t, db, cliente.ID)

	viagemSvc := newViagemService(db)
	viagem := &models.Viagem{
		NumeroViagem: "VG-001",
		CargaID:      carga.ID,
		VeiculoID:    veiculo.ID,
		MotoristaID:  motorista.ID,
	}
	require.NoError(t, viagemSvc.Create(ctx, viagem, "Maria"))
	_, err := viagemSvc.Update(ctx, viagem.ID, &models.Viagem{Status: domain.ViagemConcluida}, "Maria")
	require.NoError(t, err)

	meses, err := svc.GetViagensPorMes(ctx)
	require.NoError(t, err)
	require.Len(t, meses, 6)

	now := time.Now()
	atual := meses[5]
	assert.Equal(t, now.Year(), atual.Ano)
	assert.Equal(t, int(now.Month()), atual.Mes)
	assert.Equal(t, int64(1), atual.Total)
	assert.Equal(t, int64(1), atual.Concluidas)

	for _, m := range meses[:5] {
		assert.Zero(t, m.Total)
	}
}
