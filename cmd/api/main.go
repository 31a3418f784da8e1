package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/comptalink-api/internal/application/auth"
	"github.com/jhoicas/comptalink-api/internal/application/usecase"
	"github.com/jhoicas/comptalink-api/internal/domain/entity"
	"github.com/jhoicas/comptalink-api/internal/domain/repository"
	"github.com/jhoicas/comptalink-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/comptalink-api/internal/infrastructure/pdf"
	"github.com/jhoicas/comptalink-api/internal/infrastructure/postgres"
	"github.com/jhoicas/comptalink-api/internal/infrastructure/upload"
	httpRouter "github.com/jhoicas/comptalink-api/internal/interfaces/http"
	"github.com/jhoicas/comptalink-api/pkg/config"
	"github.com/jhoicas/comptalink-api/pkg/logger"
)

// repos agrupa los puertos de persistencia; se llena con el adaptador
// elegido por STORAGE_DRIVER (memory por defecto, postgres opcional).
type repos struct {
	users         repository.UserRepository
	transactions  repository.TransactionRepository
	invoices      repository.InvoiceRepository
	expenses      repository.ExpenseRepository
	documents     repository.DocumentRepository
	notifications repository.NotificationRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var r repos
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		r = repos{
			users:         postgres.NewUserRepository(pool),
			transactions:  postgres.NewTransactionRepository(pool),
			invoices:      postgres.NewInvoiceRepository(pool),
			expenses:      postgres.NewExpenseRepository(pool),
			documents:     postgres.NewDocumentRepository(pool),
			notifications: postgres.NewNotificationRepository(pool),
		}
	case "memory":
		r = repos{
			users:         memory.NewUserRepository(),
			transactions:  memory.NewTransactionRepository(),
			invoices:      memory.NewInvoiceRepository(),
			expenses:      memory.NewExpenseRepository(),
			documents:     memory.NewDocumentRepository(),
			notifications: memory.NewNotificationRepository(),
		}
		if cfg.App.Env == "development" {
			seedDemoUsers(r.users, log)
		}
	default:
		log.Fatal().Str("driver", cfg.Storage.Driver).Msg("STORAGE_DRIVER desconocido")
	}

	storage, err := upload.NewLocalStorage(cfg.Storage.UploadsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de archivos")
	}

	accountants := usecase.NewAllAccountantsResolver(r.users)
	pdfGenerator := infrapdf.NewMarotoInvoicePDF()

	authUC := auth.NewAuthUseCase(r.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	transactionUC := usecase.NewTransactionUseCase(r.transactions)
	invoiceUC := usecase.NewInvoiceUseCase(r.invoices, r.users, pdfGenerator)
	expenseUC := usecase.NewExpenseUseCase(r.expenses, r.users, r.notifications, accountants)
	documentUC := usecase.NewDocumentUseCase(r.documents, r.users, r.notifications, accountants)
	notificationUC := usecase.NewNotificationUseCase(r.notifications)
	clientUC := usecase.NewClientUseCase(r.users)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ComptaLink API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		TransactionUC:  transactionUC,
		InvoiceUC:      invoiceUC,
		ExpenseUC:      expenseUC,
		DocumentUC:     documentUC,
		NotificationUC: notificationUC,
		ClientUC:       clientUC,
		Storage:        storage,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// seedDemoUsers crea un contador y un cliente de demostración para poder
// probar la API recién levantada con el driver en memoria.
func seedDemoUsers(users repository.UserRepository, log *logger.Logger) {
	demo := []struct {
		username, password, email, fullName, role string
	}{
		{"comptable", "comptable123", "comptable@comptalink.fr", "Marie Dupont", entity.RoleAccountant},
		{"client", "client123", "client@comptalink.fr", "Jean Martin", entity.RoleClient},
	}
	for _, d := range demo {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			log.Error().Err(err).Str("username", d.username).Msg("seed: hash de contraseña")
			continue
		}
		u, err := users.Create(&entity.User{
			Username:     d.username,
			PasswordHash: string(hash),
			Email:        d.email,
			FullName:     d.fullName,
			Role:         d.role,
		})
		if err != nil {
			log.Error().Err(err).Str("username", d.username).Msg("seed: crear usuario")
			continue
		}
		log.Info().Int64("id", u.ID).Str("username", u.Username).Str("role", u.Role).Msg("usuario demo creado")
	}
}
