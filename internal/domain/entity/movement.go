package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Types de mouvement de stock.
const (
	MovementTypeEntree = "ENTREE" // réception de matériel
	MovementTypeSortie = "SORTIE" // livraison ou consommation
)

// États du matériel à l'entrée.
const (
	ConditionNeuf          = "neuf"
	ConditionOccasion      = "occasion"
	ConditionReconditionne = "reconditionne"
)

// ValidCondition indique si l'état fait partie des valeurs admises.
func ValidCondition(c string) bool {
	switch c {
	case ConditionNeuf, ConditionOccasion, ConditionReconditionne:
		return true
	}
	return false
}

// Movement représente une écriture du registre de stock. Immuable après création :
// type, quantité et produit ne changent jamais ; seul DocumentPath peut être
// renseigné après coup (justificatif).
type Movement struct {
	ID            string
	Type          string // ENTREE | SORTIE
	ProductID     string
	Quantity      int // toujours > 0, le signe est porté par Type
	OperatorID    string
	Comment       string
	SerialNumbers []string

	// ENTREE uniquement
	SupplierID string // optionnel
	Condition  string // neuf | occasion | reconditionne

	// SORTIE uniquement
	SalePrice   *decimal.Decimal // prix de vente définitif (optionnel)
	RequesterID string
	Destination *Destination

	DocumentPath string // justificatif attaché après coup (optionnel)
	CreatedAt    time.Time
}

// Delta retourne l'effet du mouvement sur la quantité du produit
// (+Quantity pour une entrée, -Quantity pour une sortie).
func (m *Movement) Delta() int {
	if m.Type == MovementTypeSortie {
		return -m.Quantity
	}
	return m.Quantity
}
