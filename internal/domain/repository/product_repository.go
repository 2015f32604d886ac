package repository

import "github.com/kalitech/magasin-api/internal/domain/entity"

// ProductRepository définit le port de persistance du référentiel produits.
// GetForUpdate et UpdateQuantity ne sont appelés que depuis la transaction du registre
// des mouvements : la quantité ne se modifie jamais en dehors.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(id string, quantity int) error
	List(limit, offset int) ([]*entity.Product, error)
	ListBelowThreshold() ([]*entity.Product, error)
}
