package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comptalink-api/internal/domain/entity"
	"github.com/jhoicas/comptalink-api/internal/infrastructure/memory"
)

func day(n int) time.Time {
	return time.Date(2025, time.March, n, 12, 0, 0, 0, time.UTC)
}

// ──────────────────────────────────────────────────────────────────────────────
// Identidad
// ──────────────────────────────────────────────────────────────────────────────

// Los ids por tipo de entidad empiezan en 1 y crecen de a uno, sin reutilización.
func TestCreate_IdsMonotonicosDesdeUno(t *testing.T) {
	repo := memory.NewTransactionRepository()

	for i := 1; i <= 5; i++ {
		tx, err := repo.Create(&entity.Transaction{
			UserID: 1, Type: entity.TransactionIncome, Amount: 100, Category: "ventes", Date: day(i),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(i), tx.ID, "el id debe ser el siguiente de la secuencia")
	}
}

// Cada tipo de entidad lleva su propio contador.
func TestCreate_ContadoresIndependientesPorEntidad(t *testing.T) {
	txRepo := memory.NewTransactionRepository()
	invRepo := memory.NewInvoiceRepository()

	tx, err := txRepo.Create(&entity.Transaction{UserID: 1, Type: entity.TransactionIncome, Amount: 100, Category: "ventes", Date: day(1)})
	require.NoError(t, err)
	inv, err := invRepo.Create(&entity.Invoice{UserID: 1, InvoiceNumber: "F-001", ClientName: "Acme", Amount: 5000, IssueDate: day(1), DueDate: day(30), Status: entity.InvoiceDraft})
	require.NoError(t, err)

	assert.Equal(t, int64(1), tx.ID)
	assert.Equal(t, int64(1), inv.ID, "la primera factura también debe tener id 1")
}

// Create no debe mutar el registro que recibe el llamador.
func TestCreate_NoMutaLaEntrada(t *testing.T) {
	repo := memory.NewExpenseRepository()
	in := &entity.Expense{UserID: 2, Type: "purchase_invoice", Amount: 900, SupplierName: "EDF", InvoiceDate: day(3)}

	out, err := repo.Create(in)
	require.NoError(t, err)

	assert.Equal(t, int64(0), in.ID, "la entrada del llamador queda intacta")
	assert.Equal(t, int64(1), out.ID)
}

// Los registros devueltos son copias: mutarlos no toca el estado guardado.
func TestLecturas_DevuelvenCopiasDelEstado(t *testing.T) {
	users := memory.NewUserRepository()
	invoices := memory.NewInvoiceRepository()
	expenses := memory.NewExpenseRepository()

	u, err := users.Create(&entity.User{Username: "marie", PasswordHash: "x", FullName: "Marie Dupont", Role: entity.RoleClient})
	require.NoError(t, err)
	u.FullName = "autre nom"

	got, err := users.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Marie Dupont", got.FullName, "el map no se muta vía el puntero devuelto por Create")
	got.Role = entity.RoleAccountant
	again, err := users.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleClient, again.Role)

	inv, err := invoices.Create(&entity.Invoice{
		UserID: u.ID, InvoiceNumber: "F-001", ClientName: "Acme", Amount: 5000,
		IssueDate: day(1), DueDate: day(30), Status: entity.InvoiceDraft,
		Items: []entity.InvoiceItem{{Description: "Conseil", Quantity: 1, UnitPrice: 5000, Total: 5000}},
	})
	require.NoError(t, err)
	inv.Items[0].Total = -1

	gotInv, err := invoices.GetByID(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), gotInv.Items[0].Total, "las líneas guardadas no comparten backing array")

	e, err := expenses.Create(&entity.Expense{UserID: u.ID, Type: "purchase_invoice", Amount: 900, SupplierName: "EDF", InvoiceDate: day(3)})
	require.NoError(t, err)
	reviewed, err := expenses.UpdateStatus(e.ID, entity.ReviewProcessed, 1)
	require.NoError(t, err)
	*reviewed.ReviewedBy = 99

	gotExp, err := expenses.GetByID(e.ID)
	require.NoError(t, err)
	require.NotNil(t, gotExp.ReviewedBy)
	assert.Equal(t, int64(1), *gotExp.ReviewedBy, "el par de revisión guardado no es alcanzable desde fuera")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ausencia: (nil, nil), nunca error ni pánico
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_AusenteDevuelveNilNil(t *testing.T) {
	users := memory.NewUserRepository()
	expenses := memory.NewExpenseRepository()
	notifs := memory.NewNotificationRepository()

	u, err := users.GetByID(999)
	require.NoError(t, err)
	assert.Nil(t, u)

	e, err := expenses.GetByID(999)
	require.NoError(t, err)
	assert.Nil(t, e)

	n, err := notifs.MarkRead(999)
	require.NoError(t, err)
	assert.Nil(t, n, "marcar una notificación inexistente no es un error")

	exp, err := expenses.UpdateStatus(999, entity.ReviewProcessed, 1)
	require.NoError(t, err)
	assert.Nil(t, exp, "revisar un gasto inexistente no es un error")
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtrado por dueño y órdenes
// ──────────────────────────────────────────────────────────────────────────────

func TestListByUser_FiltraPorDuenoYOrdenaFechaDesc(t *testing.T) {
	repo := memory.NewTransactionRepository()

	_, err := repo.Create(&entity.Transaction{UserID: 1, Type: entity.TransactionIncome, Amount: 100, Category: "ventes", Date: day(1)})
	require.NoError(t, err)
	_, err = repo.Create(&entity.Transaction{UserID: 2, Type: entity.TransactionExpense, Amount: 50, Category: "achats", Date: day(2)})
	require.NoError(t, err)
	_, err = repo.Create(&entity.Transaction{UserID: 1, Type: entity.TransactionExpense, Amount: 75, Category: "achats", Date: day(5)})
	require.NoError(t, err)

	list, err := repo.ListByUser(1)
	require.NoError(t, err)
	require.Len(t, list, 2, "solo los movimientos del usuario 1")
	assert.Equal(t, day(5), list[0].Date, "el más reciente primero")
	assert.Equal(t, day(1), list[1].Date)
	for _, tx := range list {
		assert.Equal(t, int64(1), tx.UserID)
	}
}

func TestListByUser_Documentos_OrdenSubidaDesc(t *testing.T) {
	repo := memory.NewDocumentRepository()

	_, err := repo.Create(&entity.Document{UserID: 1, Type: "receipt", Title: "ancien", FileURL: "/uploads/a.pdf", UploadDate: day(1), Status: entity.ReviewPending})
	require.NoError(t, err)
	_, err = repo.Create(&entity.Document{UserID: 1, Type: "receipt", Title: "récent", FileURL: "/uploads/b.pdf", UploadDate: day(9), Status: entity.ReviewPending})
	require.NoError(t, err)

	list, err := repo.ListByUser(1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "récent", list[0].Title)
}

func TestListUnprocessed_SoloPendientes(t *testing.T) {
	repo := memory.NewDocumentRepository()

	d1, err := repo.Create(&entity.Document{UserID: 1, Type: "receipt", Title: "pendiente", FileURL: "/uploads/a.pdf", UploadDate: day(2), Status: entity.ReviewPending})
	require.NoError(t, err)
	d2, err := repo.Create(&entity.Document{UserID: 2, Type: "invoice", Title: "otro pendiente", FileURL: "/uploads/b.pdf", UploadDate: day(4), Status: entity.ReviewPending})
	require.NoError(t, err)

	_, err = repo.UpdateStatus(d1.ID, entity.ReviewProcessed, 7)
	require.NoError(t, err)

	pending, err := repo.ListUnprocessed()
	require.NoError(t, err)
	require.Len(t, pending, 1, "los procesados salen de la cola")
	assert.Equal(t, d2.ID, pending[0].ID)
}

// El listado de clientes excluye contadores y ordena por nombre con colación francesa.
func TestListClients_SoloRolClientOrdenFrances(t *testing.T) {
	repo := memory.NewUserRepository()

	_, err := repo.Create(&entity.User{Username: "zoe", FullName: "Zoé Bernard", Role: entity.RoleClient})
	require.NoError(t, err)
	_, err = repo.Create(&entity.User{Username: "compta", FullName: "Marie Dupont", Role: entity.RoleAccountant})
	require.NoError(t, err)
	_, err = repo.Create(&entity.User{Username: "etienne", FullName: "Étienne Arnaud", Role: entity.RoleClient})
	require.NoError(t, err)

	clients, err := repo.ListClients()
	require.NoError(t, err)
	require.Len(t, clients, 2, "el contador no aparece en la cartera")
	// Con colación francesa É ordena junto a E, antes de Z.
	assert.Equal(t, "Étienne Arnaud", clients[0].FullName)
	assert.Equal(t, "Zoé Bernard", clients[1].FullName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Par de revisión
// ──────────────────────────────────────────────────────────────────────────────

// UpdateStatus asigna estado, reviewedBy y reviewedAt juntos; antes de la
// revisión ambos campos del par son nil.
func TestUpdateStatus_ParDeRevisionAtomico(t *testing.T) {
	repo := memory.NewExpenseRepository()

	created, err := repo.Create(&entity.Expense{UserID: 2, Type: "purchase_invoice", Amount: 900, SupplierName: "EDF", InvoiceDate: day(3), Status: entity.ReviewPending})
	require.NoError(t, err)
	assert.Nil(t, created.ReviewedBy)
	assert.Nil(t, created.ReviewedAt)

	updated, err := repo.UpdateStatus(created.ID, entity.ReviewProcessed, 1)
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, entity.ReviewProcessed, updated.Status)
	require.NotNil(t, updated.ReviewedBy, "reviewedBy se asigna con la transición")
	require.NotNil(t, updated.ReviewedAt, "reviewedAt se asigna con la transición")
	assert.Equal(t, int64(1), *updated.ReviewedBy)

	// El resto de campos no cambia.
	assert.Equal(t, created.Amount, updated.Amount)
	assert.Equal(t, created.SupplierName, updated.SupplierName)
	assert.Equal(t, created.UserID, updated.UserID)
}

// Una segunda revisión re-estampa el par (el workflow no es idempotente).
func TestUpdateStatus_SegundaRevisionReestampa(t *testing.T) {
	repo := memory.NewExpenseRepository()

	created, err := repo.Create(&entity.Expense{UserID: 2, Type: "purchase_invoice", Amount: 900, SupplierName: "EDF", InvoiceDate: day(3), Status: entity.ReviewPending})
	require.NoError(t, err)

	first, err := repo.UpdateStatus(created.ID, entity.ReviewProcessed, 1)
	require.NoError(t, err)
	second, err := repo.UpdateStatus(created.ID, entity.ReviewRejected, 3)
	require.NoError(t, err)

	assert.Equal(t, entity.ReviewRejected, second.Status)
	assert.Equal(t, int64(3), *second.ReviewedBy)
	assert.False(t, second.ReviewedAt.Before(*first.ReviewedAt), "la segunda marca temporal no retrocede")
}

// ──────────────────────────────────────────────────────────────────────────────
// Notificaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestNotificaciones_CreanNoLeidasYMarkReadEsDefinitivo(t *testing.T) {
	repo := memory.NewNotificationRepository()

	n, err := repo.Create(&entity.Notification{UserID: 2, Title: "Facture d'achat examinée", Message: "Votre facture d'achat a été validée.", Read: true})
	require.NoError(t, err)
	assert.False(t, n.Read, "toda notificación nace no leída, aunque el llamador diga lo contrario")

	marked, err := repo.MarkRead(n.ID)
	require.NoError(t, err)
	require.NotNil(t, marked)
	assert.True(t, marked.Read)

	again, err := repo.MarkRead(n.ID)
	require.NoError(t, err)
	assert.True(t, again.Read, "marcar dos veces mantiene leída")
}

func TestNotificaciones_ListaPorDestinatarioRecientesPrimero(t *testing.T) {
	repo := memory.NewNotificationRepository()

	_, err := repo.Create(&entity.Notification{UserID: 2, Title: "a", Message: "première"})
	require.NoError(t, err)
	_, err = repo.Create(&entity.Notification{UserID: 9, Title: "b", Message: "autre destinataire"})
	require.NoError(t, err)
	_, err = repo.Create(&entity.Notification{UserID: 2, Title: "c", Message: "dernière"})
	require.NoError(t, err)

	list, err := repo.ListByUser(2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// CreatedAt lo estampa el store; a igual instante decide el id más alto.
	assert.Equal(t, "c", list[0].Title)
	assert.Equal(t, "a", list[1].Title)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invoices
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceUpdateStatus_SoloCambiaElEstado(t *testing.T) {
	repo := memory.NewInvoiceRepository()

	created, err := repo.Create(&entity.Invoice{
		UserID: 1, InvoiceNumber: "F-001", ClientName: "Acme", Amount: 120000,
		IssueDate: day(1), DueDate: day(30), Status: entity.InvoiceDraft,
		Items: []entity.InvoiceItem{{Description: "Conseil", Quantity: 2, UnitPrice: 60000, Total: 120000}},
	})
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(created.ID, entity.InvoicePaid)
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, entity.InvoicePaid, updated.Status)
	assert.Equal(t, created.InvoiceNumber, updated.InvoiceNumber)
	assert.Equal(t, created.Amount, updated.Amount)
	assert.Len(t, updated.Items, 1)
}
