package usecase

import (
	"context"

	"github.com/jhoicas/comptalink-api/internal/application/dto"
	"github.com/jhoicas/comptalink-api/internal/domain"
	"github.com/jhoicas/comptalink-api/internal/domain/entity"
	"github.com/jhoicas/comptalink-api/internal/domain/repository"
)

// InvoicePDFGenerator puerto de render de facturas en PDF.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice, issuer *entity.User) ([]byte, error)
}

// InvoiceUseCase casos de uso de facturas de venta.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	userRepo    repository.UserRepository
	pdfGen      InvoicePDFGenerator
}

// NewInvoiceUseCase construye el caso de uso de facturas.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, userRepo repository.UserRepository, pdfGen InvoicePDFGenerator) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, userRepo: userRepo, pdfGen: pdfGen}
}

// Create registra una factura del propio actor. Sin estado explícito se crea en draft.
func (uc *InvoiceUseCase) Create(actor Actor, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	status := entity.InvoiceStatus(in.Status)
	if in.Status == "" {
		status = entity.InvoiceDraft
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.InvoiceNumber == "" || in.ClientName == "" || in.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	items := make([]entity.InvoiceItem, 0, len(in.Items))
	for _, it := range in.Items {
		// Toda línea lleva cantidad y montos estrictamente positivos.
		if it.Quantity <= 0 || it.UnitPrice <= 0 || it.Total <= 0 {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	inv, err := uc.invoiceRepo.Create(&entity.Invoice{
		UserID:        actor.ID,
		InvoiceNumber: in.InvoiceNumber,
		ClientName:    in.ClientName,
		Amount:        in.Amount,
		IssueDate:     in.IssueDate,
		DueDate:       in.DueDate,
		Status:        status,
		Items:         items,
		Notes:         in.Notes,
	})
	if err != nil {
		return nil, err
	}
	resp := dto.ToInvoiceResponse(inv)
	return &resp, nil
}

// ListByActor devuelve las facturas del actor, fecha de emisión descendente.
func (uc *InvoiceUseCase) ListByActor(actor Actor) ([]dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.ListByUser(actor.ID)
	if err != nil {
		return nil, err
	}
	return dto.ToInvoiceResponses(list), nil
}

// UpdateStatus cambia únicamente el estado de la factura. Permitido al dueño
// de la factura o a cualquier contador; el resto recibe ErrForbidden.
func (uc *InvoiceUseCase) UpdateStatus(actor Actor, id int64, statusStr string) (*dto.InvoiceResponse, error) {
	status := entity.InvoiceStatus(statusStr)
	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.UserID != actor.ID && !actor.IsAccountant() {
		return nil, domain.ErrForbidden
	}
	updated, err := uc.invoiceRepo.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToInvoiceResponse(updated)
	return &resp, nil
}

// GeneratePDF renderiza la factura en PDF. Misma regla de acceso que el cambio
// de estado: dueño o contador.
func (uc *InvoiceUseCase) GeneratePDF(ctx context.Context, actor Actor, id int64) ([]byte, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.UserID != actor.ID && !actor.IsAccountant() {
		return nil, domain.ErrForbidden
	}
	issuer, err := uc.userRepo.GetByID(inv.UserID)
	if err != nil {
		return nil, err
	}
	if issuer == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdfGen.GenerateInvoicePDF(ctx, inv, issuer)
}
