package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kalitech/magasin-api/internal/application/dto"
	"github.com/kalitech/magasin-api/internal/domain"
	"github.com/kalitech/magasin-api/internal/domain/entity"
	"github.com/kalitech/magasin-api/internal/domain/repository"
)

// ProductUseCase cas d'usage CRUD du référentiel produits.
// La quantité se gère exclusivement via le registre des mouvements.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construit le cas d'usage.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crée un produit. La quantité démarre à 0.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.AlertThreshold != nil && *in.AlertThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(in.Name),
		Quantity:       0,
		AlertThreshold: in.AlertThreshold,
		MinSalePrice:   in.MinSalePrice,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID retourne un produit par ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// Update modifie nom, seuil d'alerte et prix minimum. Jamais la quantité.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if strings.TrimSpace(in.Name) != "" {
		product.Name = strings.TrimSpace(in.Name)
	}
	if in.AlertThreshold != nil {
		if *in.AlertThreshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.AlertThreshold = in.AlertThreshold
	}
	if in.MinSalePrice != nil {
		product.MinSalePrice = in.MinSalePrice
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List retourne les produits paginés.
func (uc *ProductUseCase) List(limit, offset int) ([]*dto.ProductResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	products, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// ListBelowThreshold retourne les produits au niveau ou sous leur seuil d'alerte.
func (uc *ProductUseCase) ListBelowThreshold() ([]*dto.ProductResponse, error) {
	products, err := uc.repo.ListBelowThreshold()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Quantity:       p.Quantity,
		AlertThreshold: p.AlertThreshold,
		MinSalePrice:   p.MinSalePrice,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
