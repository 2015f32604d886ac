package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kalitech/magasin-api/internal/application/movement"
	"github.com/kalitech/magasin-api/internal/application/usecase"
	"github.com/kalitech/magasin-api/internal/infrastructure/redis"
)

// RouterDeps dépendances du router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *movement.RegisterMovementUseCase
	AttachDocument   *movement.AttachDocumentUseCase
	MovementQueries  *movement.QueryUseCase
	JWTSecret        string
	RateLimiter      redis.Client // nil = limiteur désactivé
	RateLimit        int
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	if deps.RateLimiter != nil {
		api.Use(RateLimiter(deps.RateLimiter, deps.RateLimit))
	}

	// Toutes les routes métier exigent un Bearer Token (identité de l'opérateur).
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.AttachDocument, deps.MovementQueries)
	mouvements := protected.Group("/mouvements")
	mouvements.Post("/", movementHandler.Register)
	mouvements.Get("/", movementHandler.List)
	mouvements.Get("/:id", movementHandler.GetByID)
	mouvements.Post("/:id/document", movementHandler.AttachDocument)

	productHandler := NewProductHandler(deps.ProductUC)
	produits := protected.Group("/produits")
	produits.Post("/", productHandler.Create)
	produits.Get("/", productHandler.List)
	produits.Get("/alertes", productHandler.ListAlerts)
	produits.Get("/:id", productHandler.GetByID)
	produits.Put("/:id", productHandler.Update)
	produits.Get("/:id/mouvements", movementHandler.ListByProduct)
	produits.Get("/:id/verification", movementHandler.Verify)
}
