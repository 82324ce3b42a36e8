package services

import (
	"context"
	"testing"

	"baa-logistica/internal/adapters/persistence/models"
	"baa-logistica/internal/adapters/persistence/repositories"
	"baa-logistica/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClienteCreateDefaultsAndUniqueness(t *testing.T) {
	db := newTestDB(t)
	svc := NewClienteService(repositories.NewClienteRepository(db))
	ctx := context.Background()

	err := svc.Create(ctx, &models.Cliente{})
	requireViolation(t, err, "razaoSocial")

	existing := seedCliente(t, db)

	duplicate := &models.Cliente{
		RazaoSocial: "Concorrente SA",
		CNPJ:        existing.CNPJ,
	}
	err = svc.Create(ctx, duplicate)
	requireViolation(t, err, "cnpj")
}

func TestClienteEmptyDocumentsAreNotUnique(t *testing.T) {
	db := newTestDB(t)
	svc := NewClienteService(repositories.NewClienteRepository(db))
	ctx := context.Background()

	// two clients without documents coexist: blank CNPJ/CPF become NULL
	vazio := ""
	primeiro := &models.Cliente{RazaoSocial: "Cliente Um", CNPJ: &vazio}
	require.NoError(t, svc.Create(ctx, primeiro))
	assert.Nil(t, primeiro.CNPJ)

	segundo := &models.Cliente{RazaoSocial: "Cliente Dois"}
	require.NoError(t, svc.Create(ctx, segundo))
}

func TestClienteUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewClienteService(repositories.NewClienteRepository(db))
	ctx := context.Background()

	cliente := seedCliente(t, db)

	_, err := svc.Update(ctx, cliente.ID, &models.Cliente{
		RazaoSocial: cliente.RazaoSocial,
		Status:      "Suspenso",
	})
	requireViolation(t, err, "status")

	updated, err := svc.Update(ctx, cliente.ID, &models.Cliente{
		RazaoSocial: cliente.RazaoSocial,
		Status:      domain.ClienteInativo,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ClienteInativo, updated.Status)
}

func TestClienteDeleteBlockedByCargas(t *testing.T) {
	db := newTestDB(t)
	svc := NewClienteService(repositories.NewClienteRepository(db))
	ctx := context.Background()

	cliente := seedCliente(t, db)
	seedCarga(t, db, cliente.ID)

	err := svc.Delete(ctx, cliente.ID)
	var conflictErr *domain.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "Não é possível excluir cliente com cargas vinculadas", conflictErr.Message)

	outro := &models.Cliente{RazaoSocial: "Sem Cargas Ltda"}
	require.NoError(t, svc.Create(ctx, outro))
	require.NoError(t, svc.Delete(ctx, outro.ID))
	_, err = svc.Get(ctx, outro.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
