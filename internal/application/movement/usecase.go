package movement

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kalitech/magasin-api/internal/domain"
	"github.com/kalitech/magasin-api/internal/domain/entity"
	"github.com/kalitech/magasin-api/internal/domain/repository"
	"github.com/kalitech/magasin-api/internal/domain/serial"
)

// RegisterMovementUseCase enregistre les mouvements de stock (ENTREE, SORTIE) de façon
// transactionnelle, avec verrouillage de la ligne produit (SELECT FOR UPDATE) et
// Commit/Rollback. L'écriture du registre et la mise à jour du compteur quantite
// forment une unité atomique : jamais l'un sans l'autre.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	resolver    *DestinationResolver
}

// NewRegisterMovementUseCase construit le cas d'usage.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	resolver *DestinationResolver,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		resolver:    resolver,
	}
}

// MovementInput entrée pour enregistrer un mouvement.
// Pour ENTREE : ProductID, Quantity ; SupplierID et Condition optionnels (Condition par défaut "neuf").
// Pour SORTIE : ProductID, Quantity, RequesterID et exactement une variante de destination.
type MovementInput struct {
	OperatorID    string
	Type          string
	ProductID     string
	Quantity      int
	Comment       string
	SerialNumbers []string

	SupplierID string
	Condition  string

	SalePrice          *decimal.Decimal
	RequesterID        string
	DestinationType    string
	PartnerID          string
	ProjectID          string
	DestinationName    string
	DestinationContact string
}

// RegisterMovement valide la demande (ordre : quantité, produit, règles propres au type),
// résout la destination, analyse les numéros de série, puis ouvre la transaction :
// verrou de ligne sur le produit, revérification du stock pour une sortie, écriture du
// mouvement et du nouveau compteur. Toute erreur fait un Rollback complet.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	if input.Type != entity.MovementTypeEntree && input.Type != entity.MovementTypeSortie {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	mov := &entity.Movement{
		ID:         uuid.New().String(),
		Type:       input.Type,
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
		OperatorID: input.OperatorID,
		Comment:    strings.TrimSpace(input.Comment),
		CreatedAt:  time.Now(),
	}

	switch input.Type {
	case entity.MovementTypeSortie:
		// Pré-contrôle hors transaction ; le contrôle qui fait foi est refait sous verrou.
		if product.Quantity-input.Quantity < 0 {
			return nil, domain.ErrInsufficientStock
		}
		if strings.TrimSpace(input.RequesterID) == "" {
			return nil, domain.ErrMissingRequester
		}
		dst, err := uc.resolver.Resolve(
			input.DestinationType, input.PartnerID, input.ProjectID,
			input.DestinationName, input.DestinationContact,
		)
		if err != nil {
			return nil, err
		}
		mov.RequesterID = strings.TrimSpace(input.RequesterID)
		mov.Destination = dst
		mov.SalePrice = input.SalePrice

	case entity.MovementTypeEntree:
		condition := strings.TrimSpace(input.Condition)
		if condition == "" {
			condition = entity.ConditionNeuf
		}
		if !entity.ValidCondition(condition) {
			return nil, domain.ErrInvalidCondition
		}
		mov.Condition = condition
		mov.SupplierID = strings.TrimSpace(input.SupplierID)
	}

	mov.SerialNumbers = serial.Parse(strings.Join(input.SerialNumbers, ","))

	// Transaction : verrou de ligne puis double écriture atomique (registre + compteur).
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		locked, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrProductNotFound
		}
		newQty := locked.Quantity + mov.Delta()
		if newQty < 0 {
			return domain.ErrInsufficientStock
		}
		if err := productRepo.UpdateQuantity(locked.ID, newQty); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}
