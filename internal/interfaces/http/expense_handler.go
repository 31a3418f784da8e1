package http

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comptalink-api/internal/application/dto"
	"github.com/jhoicas/comptalink-api/internal/application/usecase"
	"github.com/jhoicas/comptalink-api/internal/domain"
	"github.com/jhoicas/comptalink-api/internal/infrastructure/upload"
)

// ExpenseHandler maneja las facturas de compra (protegido).
// El alta llega como multipart: los campos del formulario más un adjunto opcional.
type ExpenseHandler struct {
	uc      *usecase.ExpenseUseCase
	storage *upload.LocalStorage
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase, storage *upload.LocalStorage) *ExpenseHandler {
	return &ExpenseHandler{uc: uc, storage: storage}
}

// Create registra una factura de compra; el adjunto es opcional.
// POST /api/expenses  (multipart/form-data)
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "formulaire invalide"})
	}
	fileURL, fileName, err := saveUploadedFile(c, h.storage, false)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	exp, err := h.uc.Create(GetActor(c), in, fileURL, fileName)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "données invalides"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(exp)
}

// List devuelve los gastos del usuario autenticado, fecha de factura descendente.
// GET /api/expenses
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListByActor(GetActor(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Review transición de revisión del gasto (solo contadores).
// PATCH /api/expenses/:id/review
func (h *ExpenseHandler) Review(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id invalide"})
	}
	var in dto.ReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
	}
	exp, err := h.uc.Review(GetActor(c), int64(id), in.Status)
	if err != nil {
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "réservé au comptable"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "statut inconnu"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "facture d'achat introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(exp)
}

// saveUploadedFile extrae el adjunto "file" del multipart y lo persiste.
// Con required=false la ausencia de adjunto no es error (devuelve cadenas vacías).
func saveUploadedFile(c *fiber.Ctx, storage *upload.LocalStorage, required bool) (fileURL, fileName string, err error) {
	fh, err := c.FormFile("file")
	if err != nil {
		if !required {
			return "", "", nil
		}
		return "", "", fiber.NewError(fiber.StatusBadRequest, "fichier requis")
	}
	if fh.Size > upload.MaxFileSize {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "fichier trop volumineux (5 Mo max)")
	}
	f, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return "", "", err
	}
	stored, err := storage.Save(fh.Filename, content)
	if err != nil {
		return "", "", err
	}
	return stored.URL, stored.Name, nil
}
