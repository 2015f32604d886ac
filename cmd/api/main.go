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

	"github.com/kalitech/magasin-api/internal/application/movement"
	"github.com/kalitech/magasin-api/internal/application/usecase"
	"github.com/kalitech/magasin-api/internal/infrastructure/postgres"
	infraredis "github.com/kalitech/magasin-api/internal/infrastructure/redis"
	httpRouter "github.com/kalitech/magasin-api/internal/interfaces/http"
	"github.com/kalitech/magasin-api/pkg/config"
	"github.com/kalitech/magasin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("chargement configuration : " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	partnerRepo := postgres.NewPartnerRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := movement.NewDestinationResolver(partnerRepo, projectRepo)
	registerMovementUC := movement.NewRegisterMovementUseCase(txRunner, productRepo, resolver)
	attachDocumentUC := movement.NewAttachDocumentUseCase(movementRepo)
	movementQueriesUC := movement.NewQueryUseCase(movementRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo)

	// Limiteur de débit optionnel : actif seulement si REDIS_ADDR est défini.
	var limiter infraredis.Client
	if cfg.Redis.Addr != "" {
		rc, err := infraredis.NewClient(cfg.Redis.Addr)
		if err != nil {
			log.Warn().Err(err).Msg("redis indisponible, limiteur de débit désactivé")
		} else {
			limiter = rc
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Magasin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		RegisterMovement: registerMovementUC,
		AttachDocument:   attachDocumentUC,
		MovementQueries:  movementQueriesUC,
		JWTSecret:        cfg.JWT.Secret,
		RateLimiter:      limiter,
		RateLimit:        cfg.Redis.RateLimit,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
