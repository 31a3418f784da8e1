package usecase_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comptalink-api/internal/application/dto"
	"github.com/jhoicas/comptalink-api/internal/application/usecase"
	"github.com/jhoicas/comptalink-api/internal/domain"
	"github.com/jhoicas/comptalink-api/internal/domain/entity"
	"github.com/jhoicas/comptalink-api/internal/infrastructure/memory"
)

// fixture arma los repos en memoria con un contador (id 1) y un cliente (id 2),
// el mismo arranque que usa la app de demostración.
type fixture struct {
	users      *memory.UserRepo
	expenses   *memory.ExpenseRepo
	documents  *memory.DocumentRepo
	invoices   *memory.InvoiceRepo
	txs        *memory.TransactionRepo
	notifs     *memory.NotificationRepo
	accountant usecase.Actor
	client     usecase.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:     memory.NewUserRepository(),
		expenses:  memory.NewExpenseRepository(),
		documents: memory.NewDocumentRepository(),
		invoices:  memory.NewInvoiceRepository(),
		txs:       memory.NewTransactionRepository(),
		notifs:    memory.NewNotificationRepository(),
	}
	acc, err := f.users.Create(&entity.User{Username: "comptable", PasswordHash: "x", FullName: "Marie Dupont", Role: entity.RoleAccountant})
	require.NoError(t, err)
	cli, err := f.users.Create(&entity.User{Username: "client", PasswordHash: "x", FullName: "Jean Martin", Role: entity.RoleClient})
	require.NoError(t, err)
	require.Equal(t, int64(1), acc.ID)
	require.Equal(t, int64(2), cli.ID)
	f.accountant = usecase.Actor{ID: acc.ID, Role: acc.Role}
	f.client = usecase.Actor{ID: cli.ID, Role: cli.Role}
	return f
}

func (f *fixture) expenseUC() *usecase.ExpenseUseCase {
	return usecase.NewExpenseUseCase(f.expenses, f.users, f.notifs, usecase.NewAllAccountantsResolver(f.users))
}

func expenseRequest() dto.CreateExpenseRequest {
	return dto.CreateExpenseRequest{
		Type:         "purchase_invoice",
		Amount:       45000,
		SupplierName: "EDF",
		InvoiceDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC).Format(time.RFC3339),
	}
}

// Escenario completo: el cliente deposita un gasto, el contador lo valida.
func TestExpense_FlujoDepositoYValidacion(t *testing.T) {
	f := newFixture(t)
	uc := f.expenseUC()

	created, err := uc.Create(f.client, expenseRequest(), "/uploads/abc.pdf", "facture-edf.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)
	assert.Nil(t, created.ReviewedBy)
	assert.Nil(t, created.ReviewedAt)
	assert.Equal(t, f.client.ID, created.UserID)

	// El alta avisa al lado contable.
	accNotifs, err := f.notifs.ListByUser(f.accountant.ID)
	require.NoError(t, err)
	require.Len(t, accNotifs, 1, "el contador recibe el aviso del depósito")
	assert.Contains(t, accNotifs[0].Message, "Jean Martin")

	reviewed, err := uc.Review(f.accountant, created.ID, "processed")
	require.NoError(t, err)
	assert.Equal(t, "processed", reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, f.accountant.ID, *reviewed.ReviewedBy)
	require.NotNil(t, reviewed.ReviewedAt)

	// La revisión emite exactamente una notificación al dueño.
	cliNotifs, err := f.notifs.ListByUser(f.client.ID)
	require.NoError(t, err)
	require.Len(t, cliNotifs, 1, "exactamente un aviso por revisión")
	assert.Equal(t, "Votre facture d'achat a été validée.", cliNotifs[0].Message)
	assert.False(t, cliNotifs[0].Read)
	assert.True(t, strings.HasSuffix(cliNotifs[0].Link, "/expenses/1"))
}

func TestExpense_RechazoNotificaRejetee(t *testing.T) {
	f := newFixture(t)
	uc := f.expenseUC()

	created, err := uc.Create(f.client, expenseRequest(), "", "")
	require.NoError(t, err)

	_, err = uc.Review(f.accountant, created.ID, "rejected")
	require.NoError(t, err)

	cliNotifs, err := f.notifs.ListByUser(f.client.ID)
	require.NoError(t, err)
	require.Len(t, cliNotifs, 1)
	assert.Equal(t, "Votre facture d'achat a été rejetée.", cliNotifs[0].Message)
}

// La revisión está restringida por rol, no por propiedad.
func TestExpense_ClienteNoPuedeRevisar(t *testing.T) {
	f := newFixture(t)
	uc := f.expenseUC()

	created, err := uc.Create(f.client, expenseRequest(), "", "")
	require.NoError(t, err)

	_, err = uc.Review(f.client, created.ID, "processed")
	assert.ErrorIs(t, err, domain.ErrForbidden, "un cliente no revisa, ni siquiera sus propios gastos")

	// El registro no cambió.
	exp, err := f.expenses.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewPending, exp.Status)
	assert.Nil(t, exp.ReviewedBy)
}

func TestExpense_RevisionEstadoDesconocido(t *testing.T) {
	f := newFixture(t)
	uc := f.expenseUC()

	created, err := uc.Create(f.client, expenseRequest(), "", "")
	require.NoError(t, err)

	_, err = uc.Review(f.accountant, created.ID, "archivée")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExpense_RevisionIdInexistente(t *testing.T) {
	f := newFixture(t)
	uc := f.expenseUC()

	_, err := uc.Review(f.accountant, 999, "processed")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El workflow no es idempotente: repetir la revisión re-estampa y re-notifica.
func TestExpense_RevisionRepetidaNotificaDeNuevo(t *testing.T) {
	f := newFixture(t)
	uc := f.expenseUC()

	created, err := uc.Create(f.client, expenseRequest(), "", "")
	require.NoError(t, err)

	_, err = uc.Review(f.accountant, created.ID, "processed")
	require.NoError(t, err)
	_, err = uc.Review(f.accountant, created.ID, "processed")
	require.NoError(t, err)

	cliNotifs, err := f.notifs.ListByUser(f.client.ID)
	require.NoError(t, err)
	assert.Len(t, cliNotifs, 2, "cada invocación emite su propio aviso")
}

func TestExpense_CreateInvalido(t *testing.T) {
	f := newFixture(t)
	uc := f.expenseUC()

	bad := expenseRequest()
	bad.Amount = 0
	_, err := uc.Create(f.client, bad, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad = expenseRequest()
	bad.InvoiceDate = "10/03/2025" // no RFC 3339
	_, err = uc.Create(f.client, bad, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El listado solo muestra los gastos del actor.
func TestExpense_ListFiltraPorDueno(t *testing.T) {
	f := newFixture(t)
	uc := f.expenseUC()

	_, err := uc.Create(f.client, expenseRequest(), "", "")
	require.NoError(t, err)

	otherClient, err := f.users.Create(&entity.User{Username: "autre", PasswordHash: "x", FullName: "Luc Petit", Role: entity.RoleClient})
	require.NoError(t, err)

	list, err := uc.ListByActor(usecase.Actor{ID: otherClient.ID, Role: otherClient.Role})
	require.NoError(t, err)
	assert.Empty(t, list, "otro cliente no ve los gastos ajenos")

	mine, err := uc.ListByActor(f.client)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}
