package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kalitech/magasin-api/internal/application/dto"
	"github.com/kalitech/magasin-api/internal/application/movement"
	"github.com/kalitech/magasin-api/internal/domain/entity"
	"github.com/kalitech/magasin-api/internal/domain/repository"
)

// MovementHandler gère les requêtes HTTP du registre des mouvements (protégé).
type MovementHandler struct {
	register *movement.RegisterMovementUseCase
	attach   *movement.AttachDocumentUseCase
	queries  *movement.QueryUseCase
}

// NewMovementHandler construit le handler.
func NewMovementHandler(
	register *movement.RegisterMovementUseCase,
	attach *movement.AttachDocumentUseCase,
	queries *movement.QueryUseCase,
) *MovementHandler {
	return &MovementHandler{register: register, attach: attach, queries: queries}
}

// Register godoc
// @Summary      Enregistrer un mouvement de stock
// @Tags         mouvements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "type, produitId, quantite ; fournisseurId/etat pour ENTREE ; demandeurId et destination pour SORTIE"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/mouvements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	operatorID := GetUserID(c)
	if operatorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "jeton invalide"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CORPS_INVALIDE", Message: "corps de requête invalide"})
	}
	mov, err := h.register.RegisterMovementFromRequest(c.Context(), operatorID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// AttachDocument godoc
// @Summary      Attacher un justificatif à un mouvement
// @Description  Lie le chemin d'un fichier déjà stocké par le service documentaire.
//
//	N'affecte jamais l'effet quantité déjà committé.
//
// @Tags         mouvements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID du mouvement"
// @Param        body  body  dto.AttachDocumentRequest  true  "chemin du fichier"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/mouvements/{id}/document [post]
func (h *MovementHandler) AttachDocument(c *fiber.Ctx) error {
	var in dto.AttachDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CORPS_INVALIDE", Message: "corps de requête invalide"})
	}
	if err := h.attach.AttachDocument(c.Context(), c.Params("id"), in.Path); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "justificatif attaché"})
}

// GetByID godoc
// @Summary      Consulter un mouvement
// @Tags         mouvements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID du mouvement"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mouvements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	mov, err := h.queries.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovementResponse(mov))
}

// List godoc
// @Summary      Lister les mouvements
// @Tags         mouvements
// @Security     Bearer
// @Produce      json
// @Param        produit_id  query  string  false  "Filtrer par produit"
// @Param        type        query  string  false  "ENTREE ou SORTIE"
// @Param        du          query  string  false  "Date de début (RFC 3339)"
// @Param        au          query  string  false  "Date de fin (RFC 3339)"
// @Param        limit       query  int     false  "Taille de page (défaut 50, max 200)"
// @Param        offset      query  int     false  "Décalage"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/mouvements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	filter := repository.MovementFilter{
		ProductID: c.Query("produit_id"),
		Type:      c.Query("type"),
		Limit:     c.QueryInt("limit"),
		Offset:    c.QueryInt("offset"),
	}
	if from, err := time.Parse(time.RFC3339, c.Query("du")); err == nil {
		filter.From = &from
	}
	if to, err := time.Parse(time.RFC3339, c.Query("au")); err == nil {
		filter.To = &to
	}
	list, err := h.queries.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovementResponse(m))
	}
	return c.JSON(fiber.Map{"total": len(out), "mouvements": out})
}

// ListByProduct godoc
// @Summary      Mouvements d'un produit
// @Tags         produits
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID du produit"
// @Param        limit   query  int     false  "Taille de page"
// @Param        offset  query  int     false  "Décalage"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/produits/{id}/mouvements [get]
func (h *MovementHandler) ListByProduct(c *fiber.Ctx) error {
	filter := repository.MovementFilter{
		ProductID: c.Params("id"),
		Limit:     c.QueryInt("limit"),
		Offset:    c.QueryInt("offset"),
	}
	list, err := h.queries.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovementResponse(m))
	}
	return c.JSON(fiber.Map{"total": len(out), "mouvements": out})
}

// Verify godoc
// @Summary      Vérifier la cohérence compteur / registre d'un produit
// @Tags         produits
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID du produit"
// @Success      200  {object}  dto.VerificationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produits/{id}/verification [get]
func (h *MovementHandler) Verify(c *fiber.Ctx) error {
	res, err := h.queries.Verify(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	out := &dto.MovementResponse{
		ID:            m.ID,
		Type:          m.Type,
		ProductID:     m.ProductID,
		Quantity:      m.Quantity,
		SerialNumbers: m.SerialNumbers,
		Comment:       m.Comment,
		OperatorID:    m.OperatorID,
		SupplierID:    m.SupplierID,
		Condition:     m.Condition,
		SalePrice:     m.SalePrice,
		RequesterID:   m.RequesterID,
		DocumentPath:  m.DocumentPath,
		CreatedAt:     m.CreatedAt,
	}
	if m.Destination != nil {
		out.DestinationType = m.Destination.Type
		out.PartnerID = m.Destination.PartnerID
		out.ProjectID = m.Destination.ProjectID
		out.DestinationName = m.Destination.Name
		out.DestinationContact = m.Destination.Contact
	}
	return out
}
