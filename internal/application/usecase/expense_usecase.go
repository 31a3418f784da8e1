package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/comptalink-api/internal/application/dto"
	"github.com/jhoicas/comptalink-api/internal/domain"
	"github.com/jhoicas/comptalink-api/internal/domain/entity"
	"github.com/jhoicas/comptalink-api/internal/domain/repository"
)

// ExpenseUseCase casos de uso de facturas de compra: alta con aviso al lado
// contable y revisión con aviso al dueño.
type ExpenseUseCase struct {
	expenseRepo repository.ExpenseRepository
	userRepo    repository.UserRepository
	notifRepo   repository.NotificationRepository
	accountants AccountantResolver
}

// NewExpenseUseCase construye el caso de uso de gastos.
func NewExpenseUseCase(expenseRepo repository.ExpenseRepository, userRepo repository.UserRepository, notifRepo repository.NotificationRepository, accountants AccountantResolver) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo, userRepo: userRepo, notifRepo: notifRepo, accountants: accountants}
}

// Create registra una factura de compra del actor en estado pending y notifica
// a los contadores resueltos por la política inyectada. fileURL y fileName son
// la referencia opaca producida por el storage de archivos (pueden ir vacíos).
func (uc *ExpenseUseCase) Create(actor Actor, in dto.CreateExpenseRequest, fileURL, fileName string) (*dto.ExpenseResponse, error) {
	if in.Amount <= 0 || in.SupplierName == "" {
		return nil, domain.ErrInvalidInput
	}
	invoiceDate, err := time.Parse(time.RFC3339, in.InvoiceDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	exp, err := uc.expenseRepo.Create(&entity.Expense{
		UserID:       actor.ID,
		Type:         in.Type,
		Amount:       in.Amount,
		SupplierName: in.SupplierName,
		InvoiceDate:  invoiceDate,
		Status:       entity.ReviewPending,
		Notes:        in.Notes,
		FileURL:      fileURL,
		FileName:     fileName,
	})
	if err != nil {
		return nil, err
	}
	owner, err := uc.userRepo.GetByID(actor.ID)
	if err != nil {
		return nil, err
	}
	ownerName := ""
	if owner != nil {
		ownerName = owner.FullName
	}
	recipients, err := uc.accountants.ResolveAccountants()
	if err != nil {
		return nil, err
	}
	for _, acc := range recipients {
		_, err := uc.notifRepo.Create(&entity.Notification{
			UserID:  acc.ID,
			Title:   "Nouvelle facture d'achat",
			Message: fmt.Sprintf("%s a ajouté une nouvelle facture d'achat (%s).", ownerName, exp.SupplierName),
			Link:    fmt.Sprintf("/expenses/%d", exp.ID),
		})
		if err != nil {
			return nil, err
		}
	}
	resp := dto.ToExpenseResponse(exp)
	return &resp, nil
}

// ListByActor devuelve los gastos del actor, fecha de factura descendente.
func (uc *ExpenseUseCase) ListByActor(actor Actor) ([]dto.ExpenseResponse, error) {
	list, err := uc.expenseRepo.ListByUser(actor.ID)
	if err != nil {
		return nil, err
	}
	return dto.ToExpenseResponses(list), nil
}

// Review transición de revisión, solo para contadores. Asigna estado,
// reviewedBy y reviewedAt en un único reemplazo y emite exactamente una
// notificación al dueño del gasto. No es idempotente: cada invocación
// re-estampa la revisión y emite un aviso nuevo.
func (uc *ExpenseUseCase) Review(actor Actor, id int64, statusStr string) (*dto.ExpenseResponse, error) {
	if !actor.IsAccountant() {
		return nil, domain.ErrForbidden
	}
	status := entity.ReviewStatus(statusStr)
	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}
	updated, err := uc.expenseRepo.UpdateStatus(id, status, actor.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	message := "Votre facture d'achat a été rejetée."
	if status == entity.ReviewProcessed {
		message = "Votre facture d'achat a été validée."
	}
	if _, err := uc.notifRepo.Create(&entity.Notification{
		UserID:  updated.UserID,
		Title:   "Facture d'achat examinée",
		Message: message,
		Link:    fmt.Sprintf("/expenses/%d", updated.ID),
	}); err != nil {
		return nil, err
	}
	resp := dto.ToExpenseResponse(updated)
	return &resp, nil
}
