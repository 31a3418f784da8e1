package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/comptalink-api/internal/application/dto"
	"github.com/jhoicas/comptalink-api/internal/domain"
	"github.com/jhoicas/comptalink-api/internal/domain/entity"
	"github.com/jhoicas/comptalink-api/internal/domain/repository"
)

// DocumentUseCase casos de uso de documentos de soporte. Mismo workflow de
// revisión que los gastos, más la cola de pendientes del contador.
type DocumentUseCase struct {
	docRepo     repository.DocumentRepository
	userRepo    repository.UserRepository
	notifRepo   repository.NotificationRepository
	accountants AccountantResolver
}

// NewDocumentUseCase construye el caso de uso de documentos.
func NewDocumentUseCase(docRepo repository.DocumentRepository, userRepo repository.UserRepository, notifRepo repository.NotificationRepository, accountants AccountantResolver) *DocumentUseCase {
	return &DocumentUseCase{docRepo: docRepo, userRepo: userRepo, notifRepo: notifRepo, accountants: accountants}
}

// Create registra un documento del actor en estado pending y notifica a los
// contadores. El archivo es obligatorio para documentos: fileURL y fileName
// ya vienen validados por el handler.
func (uc *DocumentUseCase) Create(actor Actor, in dto.CreateDocumentRequest, fileURL, fileName string) (*dto.DocumentResponse, error) {
	if in.Type == "" || in.Title == "" || fileURL == "" {
		return nil, domain.ErrInvalidInput
	}
	doc, err := uc.docRepo.Create(&entity.Document{
		UserID:     actor.ID,
		Type:       in.Type,
		Title:      in.Title,
		FileURL:    fileURL,
		FileName:   fileName,
		UploadDate: time.Now(),
		Status:     entity.ReviewPending,
		Notes:      in.Notes,
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
			Title:   "Nouveau document",
			Message: fmt.Sprintf("%s a ajouté un nouveau document : %s.", ownerName, doc.Title),
			Link:    fmt.Sprintf("/documents/%d", doc.ID),
		})
		if err != nil {
			return nil, err
		}
	}
	resp := dto.ToDocumentResponse(doc)
	return &resp, nil
}

// ListByActor devuelve los documentos del actor, fecha de subida descendente.
func (uc *DocumentUseCase) ListByActor(actor Actor) ([]dto.DocumentResponse, error) {
	list, err := uc.docRepo.ListByUser(actor.ID)
	if err != nil {
		return nil, err
	}
	return dto.ToDocumentResponses(list), nil
}

// ListUnprocessed cola de documentos pendientes. Solo contadores.
func (uc *DocumentUseCase) ListUnprocessed(actor Actor) ([]dto.DocumentResponse, error) {
	if !actor.IsAccountant() {
		return nil, domain.ErrForbidden
	}
	list, err := uc.docRepo.ListUnprocessed()
	if err != nil {
		return nil, err
	}
	return dto.ToDocumentResponses(list), nil
}

// Review transición de revisión del documento, solo para contadores. Misma
// semántica que la revisión de gastos: reemplazo atómico del par de revisión
// y exactamente una notificación al dueño por invocación.
func (uc *DocumentUseCase) Review(actor Actor, id int64, statusStr string) (*dto.DocumentResponse, error) {
	if !actor.IsAccountant() {
		return nil, domain.ErrForbidden
	}
	status := entity.ReviewStatus(statusStr)
	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}
	updated, err := uc.docRepo.UpdateStatus(id, status, actor.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	message := "Votre document a été rejeté."
	if status == entity.ReviewProcessed {
		message = "Votre document a été traité."
	}
	if _, err := uc.notifRepo.Create(&entity.Notification{
		UserID:  updated.UserID,
		Title:   "Document examiné",
		Message: message,
		Link:    fmt.Sprintf("/documents/%d", updated.ID),
	}); err != nil {
		return nil, err
	}
	resp := dto.ToDocumentResponse(updated)
	return &resp, nil
}
