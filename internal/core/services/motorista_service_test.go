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

func TestMotoristaCreateRequiredFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewMotoristaService(repositories.NewMotoristaRepository(db))

	err := svc.Create(context.Background(), &models.Motorista{})
	requireViolation(t, err, "nome")
	requireViolation(t, err, "cpf")
	requireViolation(t, err, "cnh")
	requireViolation(t, err, "categoriaCNH")
	requireViolation(t, err, "validadeCNH")
	requireViolation(t, err, "dataAdmissao")
}

func TestMotoristaCreateRejectsExpiredCNH(t *testing.T) {
	db := newTestDB(t)
	svc := NewMotoristaService(repositories.NewMotoristaRepository(db))

	motorista := &models.Motorista{
		Nome:         "João Souza",
		CPF:          "55566677788",
		CNH:          "12312312312",
		CategoriaCNH: "D",
		ValidadeCNH:  time.Now().AddDate(0, -1, 0),
		DataAdmissao: time.Now(),
	}
	err := svc.Create(context.Background(), motorista)
	requireViolation(t, err, "validadeCNH")
}

func TestMotoristaCNHExpiringTodayIsAcceptedInAnyTimezone(t *testing.T) {
	db := newTestDB(t)
	svc := NewMotoristaService(repositories.NewMotoristaRepository(db))
	ctx := context.Background()

	// A CNH dated today must be accepted and one dated yesterday must be
	// rejected, at any time of day, regardless of the document's or the
	// server's timezone.
	zones := []struct {
		name string
		loc  *time.Location
		cpf  string
		cnh  string
	}{
		{"UTC-12", time.FixedZone("UTC-12", -12*60*60), "10120230344", "10101010101"},
		{"UTC", time.UTC, "20230340455", "20202020202"},
		{"UTC+14", time.FixedZone("UTC+14", 14*60*60), "30340450566", "30303030303"},
	}

	for _, zone := range zones {
		now := time.Now().In(zone.loc)
		hoje := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, zone.loc)

		motorista := &models.Motorista{
			Nome:         "Motorista " + zone.name,
			CPF:          zone.cpf,
			CNH:          zone.cnh,
			CategoriaCNH: "E",
			ValidadeCNH:  hoje,
			DataAdmissao: now,
		}
		require.NoError(t, svc.Create(ctx, motorista), "CNH expiring today rejected in %s", zone.name)

		vencida := &models.Motorista{
			Nome:         "Vencida " + zone.name,
			CPF:          zone.cpf + "0",
			CNH:          zone.cnh + "0",
			CategoriaCNH: "E",
			ValidadeCNH:  hoje.AddDate(0, 0, -1),
			DataAdmissao: now,
		}
		requireViolation(t, svc.Create(ctx, vencida), "validadeCNH")
	}
}

func TestMotoristaUniqueCPFAndCNH(t *testing.T) {
	db := newTestDB(t)
	svc := NewMotoristaService(repositories.NewMotoristaRepository(db))
	ctx := context.Background()

	existing := seedMotorista(t, db)

	duplicate := &models.Motorista{
		Nome:         "Outro Motorista",
		CPF:          existing.CPF,
		CNH:          existing.CNH,
		CategoriaCNH: "E",
		ValidadeCNH:  time.Now().AddDate(1, 0, 0),
		DataAdmissao: time.Now(),
	}
	err := svc.Create(ctx, duplicate)
	requireViolation(t, err, "cpf")
	requireViolation(t, err, "cnh")

	// updating the existing driver with its own documents is fine
	existing.Telefone = "11 99999-0000"
	updated, err := svc.Update(ctx, existing.ID, existing)
	require.NoError(t, err)
	assert.Equal(t, "11 99999-0000", updated.Telefone)
}

func TestMotoristaDeleteBlockedByTrips(t *testing.T) {
	db := newTestDB(t)
	svc := NewMotoristaService(repositories.NewMotoristaRepository(db))
	ctx := context.Background()

	cliente := seedCliente(t, db)
	motorista := seedMotorista(t, db)
	veiculo := seedVeiculo(t, db)
	carga := seedCarga(t, db, cliente.ID)

	require.NoError(t, newViagemService(db).Create(ctx, &models.Viagem{
		NumeroViagem: "VG-001",
		CargaID:      carga.ID,
		VeiculoID:    veiculo.ID,
		MotoristaID:  motorista.ID,
	}, "Maria"))

	err := svc.Delete(ctx, motorista.ID)
	var conflictErr *domain.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "Não é possível excluir motorista com viagens vinculadas", conflictErr.Message)
}

func TestMotoristaListAvailableExcludesDriversOnTheRoad(t *testing.T) {
	db := newTestDB(t)
	svc := NewMotoristaService(repositories.NewMotoristaRepository(db))
	ctx := context.Background()

	cliente := seedCliente(t, db)
	ocupado := seedMotorista(t, db)
	veiculo := seedVeiculo(t, db)
	carga := seedCarga(t, db, cliente.ID)

	livre := &models.Motorista{
		Nome:         "Ana Lima",
		CPF:          "99988877766",
		CNH:          "45645645645",
		CategoriaCNH: "E",
		ValidadeCNH:  time.Now().AddDate(3, 0, 0),
		DataAdmissao: time.Now(),
		Status:       domain.MotoristaAtivo,
	}
	require.NoError(t, db.Create(livre).Error)

	viagemSvc := newViagemService(db)
	viagem := &models.Viagem{
		NumeroViagem: "VG-001",
		CargaID:      carga.ID,
		VeiculoID:    veiculo.ID,
		MotoristaID:  ocupado.ID,
	}
	require.NoError(t, viagemSvc.Create(ctx, viagem, "Maria"))
	_, err := viagemSvc.Update(ctx, viagem.ID, &models.Viagem{Status: domain.ViagemEmAndamento}, "Maria")
	require.NoError(t, err)

	disponiveis, err := svc.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, disponiveis, 1)
	assert.Equal(t, "Ana Lima", disponiveis[0].Nome)
}
