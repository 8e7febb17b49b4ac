package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/seguridad-api/internal/application/auth"
	"github.com/jhoicas/seguridad-api/internal/application/service"
	"github.com/jhoicas/seguridad-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/seguridad-api/internal/interfaces/http"
	"github.com/jhoicas/seguridad-api/pkg/config"
	"github.com/jhoicas/seguridad-api/pkg/jwt"
	"github.com/jhoicas/seguridad-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	issuer, err := jwt.New(jwt.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Audience:   cfg.JWT.Audience,
		ExpMinutes: cfg.JWT.Expiration,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configuración JWT")
	}

	userRepo := postgres.NewUserRepository(pool)
	rolUserRepo := postgres.NewRolUserRepository(pool)
	personRepo := postgres.NewPersonRepository(pool)
	rolRepo := postgres.NewRolRepository(pool)
	formRepo := postgres.NewFormRepository(pool)
	moduleRepo := postgres.NewModuleRepository(pool)
	permissionRepo := postgres.NewPermissionRepository(pool)
	formModuleRepo := postgres.NewFormModuleRepository(pool)
	rolFormPermissionRepo := postgres.NewRolFormPermissionRepository(pool)

	userSvc := service.NewUserService(userRepo, log)
	rolUserSvc := service.NewRolUserService(rolUserRepo, log)
	personSvc := service.NewPersonService(personRepo, log)
	rolSvc := service.NewRolService(rolRepo, log)
	formSvc := service.NewFormService(formRepo, log)
	moduleSvc := service.NewModuleService(moduleRepo, log)
	permissionSvc := service.NewPermissionService(permissionRepo, log)
	formModuleSvc := service.NewFormModuleService(formModuleRepo, log)
	rolFormPermissionSvc := service.NewRolFormPermissionService(rolFormPermissionRepo, log)

	authUC := auth.NewAuthUseCase(userRepo, rolUserSvc, issuer, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Seguridad API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:               authUC,
		UserSvc:              userSvc,
		RolUserSvc:           rolUserSvc,
		PersonSvc:            personSvc,
		RolSvc:               rolSvc,
		FormSvc:              formSvc,
		ModuleSvc:            moduleSvc,
		PermissionSvc:        permissionSvc,
		FormModuleSvc:        formModuleSvc,
		RolFormPermissionSvc: rolFormPermissionSvc,
		Issuer:               issuer,
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
