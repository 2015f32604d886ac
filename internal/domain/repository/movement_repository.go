package repository

import (
	"time"

	"github.com/kalitech/magasin-api/internal/domain/entity"
)

// MovementFilter filtres pour les consultations du registre.
type MovementFilter struct {
	ProductID string
	Type      string // ENTREE | SORTIE | vide
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// MovementRepository définit le port de persistance du registre des mouvements.
// Create insère le mouvement et ses numéros de série ; un mouvement n'est jamais
// supprimé ni modifié ensuite, hormis AttachDocument.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	List(filter MovementFilter) ([]*entity.Movement, error)
	AttachDocument(id, path string) error
	// LedgerSum recalcule la somme signée des mouvements d'un produit
	// (entrées - sorties), pour la vérification du compteur dénormalisé.
	LedgerSum(productID string) (int, error)
}
