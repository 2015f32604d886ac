package domain

import "errors"

// Erreurs de domaine (sans dépendances externes). Toutes sont des erreurs de saisie
// renvoyées telles quelles à l'appelant ; aucune n'est retentée automatiquement.
var (
	ErrInvalidQuantity    = errors.New("quantité invalide")
	ErrProductNotFound    = errors.New("produit introuvable")
	ErrMovementNotFound   = errors.New("mouvement introuvable")
	ErrInsufficientStock  = errors.New("stock insuffisant")
	ErrMissingRequester   = errors.New("demandeur manquant")
	ErrInvalidDestination = errors.New("destination invalide")
	ErrReferenceNotFound  = errors.New("référence introuvable")
	ErrInvalidCondition   = errors.New("état invalide")
	ErrInvalidInput       = errors.New("entrée invalide")
	ErrDuplicate          = errors.New("ressource dupliquée")
)
