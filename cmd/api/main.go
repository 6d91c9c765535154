package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/chamador/gestor-inventario/internal/application/auth"
	"github.com/chamador/gestor-inventario/internal/application/inventory"
	"github.com/chamador/gestor-inventario/internal/infrastructure/jsonstore"
	httpRouter "github.com/chamador/gestor-inventario/internal/interfaces/http"
	"github.com/chamador/gestor-inventario/pkg/config"
	"github.com/chamador/gestor-inventario/pkg/logger"
)

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
		Msg("iniciando aplicación")

	// Gestor con datos de ejemplo; si existe archivo de datos, la carga los
	// reemplaza. Archivo ausente o corrupto deja los datos de ejemplo.
	gestor := inventory.NewGestor()
	gestor.SeedExampleData()
	store := jsonstore.New(cfg.Data.FilePath, log)
	store.Load(gestor)

	adminHash := ""
	if cfg.Auth.AdminPassword != "" {
		adminHash, err = auth.HashPassword(cfg.Auth.AdminPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear contraseña de administrador")
		}
	} else {
		log.Warn().Msg("AUTH_ADMIN_PASSWORD vacío: el login quedará deshabilitado")
	}

	authUC := auth.NewAuthUseCase(auth.Config{
		AdminUser:         cfg.Auth.AdminUser,
		AdminPasswordHash: adminHash,
		JWTSecret:         cfg.JWT.Secret,
		JWTExpMinutes:     cfg.JWT.Expiration,
		JWTIssuer:         cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Gestor:    gestor,
		Store:     store,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
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

	// Persistir el estado antes de salir.
	if err := store.Save(gestor); err != nil {
		log.Error().Err(err).Msg("guardar datos al apagar")
	}

	log.Info().Msg("aplicación detenida")
}
