package movement

import (
	"context"

	"github.com/kalitech/magasin-api/internal/application/dto"
	"github.com/kalitech/magasin-api/internal/domain"
	"github.com/kalitech/magasin-api/internal/domain/entity"
	"github.com/kalitech/magasin-api/internal/domain/repository"
)

// QueryUseCase consultations du registre : lectures seules, hors de tout verrou.
type QueryUseCase struct {
	movRepo     repository.MovementRepository
	productRepo repository.ProductRepository
}

// NewQueryUseCase construit le cas d'usage de consultation.
func NewQueryUseCase(movRepo repository.MovementRepository, productRepo repository.ProductRepository) *QueryUseCase {
	return &QueryUseCase{movRepo: movRepo, productRepo: productRepo}
}

// GetByID retourne un mouvement par identifiant.
func (uc *QueryUseCase) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrMovementNotFound
	}
	return mov, nil
}

// List retourne les mouvements filtrés (produit, type, plage de dates, pagination).
func (uc *QueryUseCase) List(ctx context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 200 {
		filter.Limit = 200
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return uc.movRepo.List(filter)
}

// Verify recalcule la somme du registre d'un produit et la compare au compteur
// dénormalisé. Invariant attendu : quantite == somme(ENTREE) - somme(SORTIE).
func (uc *QueryUseCase) Verify(ctx context.Context, productID string) (*dto.VerificationResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	sum, err := uc.movRepo.LedgerSum(productID)
	if err != nil {
		return nil, err
	}
	return &dto.VerificationResponse{
		ProductID: productID,
		Quantity:  product.Quantity,
		LedgerSum: sum,
		Coherent:  product.Quantity == sum,
	}, nil
}
