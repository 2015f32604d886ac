package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body de POST /api/produits. La quantité démarre à 0 et
// ne se modifie ensuite que par le registre des mouvements.
type CreateProductRequest struct {
	Name           string           `json:"nom"`
	AlertThreshold *int             `json:"seuilAlerte,omitempty"`
	MinSalePrice   *decimal.Decimal `json:"prixMinimum,omitempty"`
}

// UpdateProductRequest body de PUT /api/produits/:id (jamais la quantité).
type UpdateProductRequest struct {
	Name           string           `json:"nom"`
	AlertThreshold *int             `json:"seuilAlerte,omitempty"`
	MinSalePrice   *decimal.Decimal `json:"prixMinimum,omitempty"`
}

// ProductResponse représentation d'un produit.
type ProductResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"nom"`
	Quantity       int              `json:"quantite"`
	AlertThreshold *int             `json:"seuilAlerte,omitempty"`
	MinSalePrice   *decimal.Decimal `json:"prixMinimum,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}
