package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/comptalink-api/internal/application/auth"
	"github.com/jhoicas/comptalink-api/internal/application/usecase"
	"github.com/jhoicas/comptalink-api/internal/domain/entity"
	"github.com/jhoicas/comptalink-api/internal/infrastructure/upload"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	TransactionUC  *usecase.TransactionUseCase
	InvoiceUC      *usecase.InvoiceUseCase
	ExpenseUC      *usecase.ExpenseUseCase
	DocumentUC     *usecase.DocumentUseCase
	NotificationUC *usecase.NotificationUseCase
	ClientUC       *usecase.ClientUseCase
	Storage        *upload.LocalStorage
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Transactions (protegido)
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Patch("/:id/status", invoiceHandler.UpdateStatus)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Expenses (protegido, alta multipart)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC, deps.Storage)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Patch("/:id/review", expenseHandler.Review)

	// Documents (protegido, alta multipart)
	documents := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC, deps.Storage)
	documents.Post("/", documentHandler.Create)
	documents.Get("/", documentHandler.List)
	documents.Get("/pending", RequireRole(entity.RoleAccountant), documentHandler.ListPending)
	documents.Patch("/:id/review", documentHandler.Review)

	// Notifications (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Patch("/:id/read", notificationHandler.MarkRead)

	// Clients (protegido, solo contadores)
	clients := protected.Group("/clients", RequireRole(entity.RoleAccountant))
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)

	// Adjuntos: servidos solo a usuarios autenticados.
	if deps.Storage != nil {
		uploads := app.Group("/uploads", AuthMiddleware(deps.JWTSecret))
		uploads.Static("/", deps.Storage.Dir())
	}
}
