package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kalitech/magasin-api/internal/application/dto"
	"github.com/kalitech/magasin-api/internal/application/usecase"
)

// ProductHandler gère les requêtes HTTP du référentiel produits (protégé).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construit le handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Créer un produit
// @Tags         produits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "nom, seuilAlerte, prixMinimum"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/produits [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CORPS_INVALIDE", Message: "corps de requête invalide"})
	}
	product, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// GetByID godoc
// @Summary      Consulter un produit
// @Tags         produits
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID du produit"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produits/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// Update godoc
// @Summary      Modifier un produit (jamais la quantité)
// @Tags         produits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID du produit"
// @Param        body  body  dto.UpdateProductRequest  true  "nom, seuilAlerte, prixMinimum"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produits/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CORPS_INVALIDE", Message: "corps de requête invalide"})
	}
	product, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// List godoc
// @Summary      Lister les produits
// @Tags         produits
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Taille de page (défaut 50, max 200)"
// @Param        offset  query  int  false  "Décalage"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/produits [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "produits": list})
}

// ListAlerts godoc
// @Summary      Produits sous leur seuil d'alerte
// @Tags         produits
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/produits/alertes [get]
func (h *ProductHandler) ListAlerts(c *fiber.Ctx) error {
	list, err := h.uc.ListBelowThreshold()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "produits": list})
}
