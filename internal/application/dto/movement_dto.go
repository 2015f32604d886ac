package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body de POST /api/mouvements.
// Les champs fournisseur/etat ne concernent que les entrées ; prixVenteDefinitif,
// demandeurId et la destination ne concernent que les sorties.
type RegisterMovementRequest struct {
	Type          string   `json:"type"` // ENTREE | SORTIE
	ProductID     string   `json:"produitId"`
	Quantity      int      `json:"quantite"`
	SerialNumbers []string `json:"serialNumbers,omitempty"`
	Comment       *string  `json:"commentaire,omitempty"`

	// ENTREE uniquement
	SupplierID *string `json:"fournisseurId,omitempty"`
	Condition  *string `json:"etat,omitempty"` // neuf | occasion | reconditionne (défaut : neuf)

	// SORTIE uniquement
	SalePrice          *decimal.Decimal `json:"prixVenteDefinitif,omitempty"`
	RequesterID        string           `json:"demandeurId,omitempty"`
	DestinationType    *string          `json:"destinationType,omitempty"` // PARTENAIRE | PROJET | PARTICULIER
	PartnerID          *string          `json:"partenaireDstId,omitempty"`
	ProjectID          *string          `json:"projetId,omitempty"`
	DestinationName    *string          `json:"destination,omitempty"` // nom du particulier
	DestinationContact *string          `json:"destinationContact,omitempty"`
}

// MovementResponse représentation d'un mouvement créé ou consulté.
type MovementResponse struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	ProductID     string   `json:"produitId"`
	Quantity      int      `json:"quantite"`
	SerialNumbers []string `json:"serialNumbers,omitempty"`
	Comment       string   `json:"commentaire,omitempty"`
	OperatorID    string   `json:"operateurId"`

	SupplierID string `json:"fournisseurId,omitempty"`
	Condition  string `json:"etat,omitempty"`

	SalePrice          *decimal.Decimal `json:"prixVenteDefinitif,omitempty"`
	RequesterID        string           `json:"demandeurId,omitempty"`
	DestinationType    string           `json:"destinationType,omitempty"`
	PartnerID          string           `json:"partenaireDstId,omitempty"`
	ProjectID          string           `json:"projetId,omitempty"`
	DestinationName    string           `json:"destination,omitempty"`
	DestinationContact string           `json:"destinationContact,omitempty"`

	DocumentPath string    `json:"documentPath,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AttachDocumentRequest body de POST /api/mouvements/:id/document.
// Le fichier lui-même est stocké par le service documentaire ; ici on ne lie que le chemin.
type AttachDocumentRequest struct {
	Path string `json:"chemin"`
}

// VerificationResponse résultat du rapprochement compteur / registre d'un produit.
type VerificationResponse struct {
	ProductID string `json:"produitId"`
	Quantity  int    `json:"quantite"`
	LedgerSum int    `json:"sommeRegistre"`
	Coherent  bool   `json:"coherent"`
}
