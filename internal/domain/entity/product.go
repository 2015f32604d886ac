package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product représente un article du parc matériel.
// Quantity est un compteur dénormalisé de la somme des mouvements ; il n'est jamais
// modifié directement, uniquement par le registre des mouvements dans une transaction.
type Product struct {
	ID             string
	Name           string
	Quantity       int
	AlertThreshold *int             // seuil d'alerte stock bas (optionnel)
	MinSalePrice   *decimal.Decimal // prix de vente minimum (optionnel)
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BelowThreshold indique si le stock est au niveau ou sous le seuil d'alerte.
func (p *Product) BelowThreshold() bool {
	return p.AlertThreshold != nil && p.Quantity <= *p.AlertThreshold
}
