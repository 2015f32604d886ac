package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kalitech/magasin-api/internal/application/dto"
	"github.com/kalitech/magasin-api/internal/domain"
)

// respondError traduit une erreur de domaine en réponse HTTP avec un code stable.
// Les erreurs de saisie ne sont jamais retentables ; seul STORAGE (transaction non
// committée, aucun état partiel persisté) peut l'être côté appelant.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "QUANTITE_INVALIDE", Message: "la quantité doit être un entier strictement positif"})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUIT_INTROUVABLE", Message: "produit introuvable"})
	case errors.Is(err, domain.ErrMovementNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "MOUVEMENT_INTROUVABLE", Message: "mouvement introuvable"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_INSUFFISANT", Message: "stock insuffisant pour cette sortie"})
	case errors.Is(err, domain.ErrMissingRequester):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DEMANDEUR_MANQUANT", Message: "demandeurId est obligatoire pour une sortie"})
	case errors.Is(err, domain.ErrInvalidDestination):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DESTINATION_INVALIDE", Message: "exactement une destination doit être renseignée"})
	case errors.Is(err, domain.ErrReferenceNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "REFERENCE_INTROUVABLE", Message: "partenaire ou projet introuvable"})
	case errors.Is(err, domain.ErrInvalidCondition):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ETAT_INVALIDE", Message: "etat doit être neuf, occasion ou reconditionne"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DOUBLON", Message: "ressource dupliquée"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CORPS_INVALIDE", Message: "données invalides"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE", Message: "échec de persistance, aucun état partiel enregistré"})
	}
}
