package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comptalink-api/internal/application/dto"
	"github.com/jhoicas/comptalink-api/internal/application/usecase"
	"github.com/jhoicas/comptalink-api/internal/domain"
	"github.com/jhoicas/comptalink-api/internal/infrastructure/upload"
)

// DocumentHandler maneja los documentos de soporte (protegido).
// A diferencia de los gastos, el adjunto es obligatorio.
type DocumentHandler struct {
	uc      *usecase.DocumentUseCase
	storage *upload.LocalStorage
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *usecase.DocumentUseCase, storage *upload.LocalStorage) *DocumentHandler {
	return &DocumentHandler{uc: uc, storage: storage}
}

// Create registra un documento con su adjunto obligatorio.
// POST /api/documents  (multipart/form-data)
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "formulaire invalide"})
	}
	fileURL, fileName, err := saveUploadedFile(c, h.storage, true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	doc, err := h.uc.Create(GetActor(c), in, fileURL, fileName)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "données invalides"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// List devuelve los documentos del usuario autenticado, subida descendente.
// GET /api/documents
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListByActor(GetActor(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// ListPending cola de documentos pendientes de revisión (solo contadores).
// GET /api/documents/pending
func (h *DocumentHandler) ListPending(c *fiber.Ctx) error {
	list, err := h.uc.ListUnprocessed(GetActor(c))
	if err != nil {
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "réservé au comptable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Review transición de revisión del documento (solo contadores).
// PATCH /api/documents/:id/review
func (h *DocumentHandler) Review(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id invalide"})
	}
	var in dto.ReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	doc, err := h.uc.Review(GetActor(c), int64(id), in.Status)
	if err != nil {
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "réservé au comptable"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "statut inconnu"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "document introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(doc)
}
