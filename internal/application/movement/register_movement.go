package movement

import (
	"context"

	"github.com/kalitech/magasin-api/internal/application/dto"
	"github.com/kalitech/magasin-api/internal/domain/entity"
)

// RegisterMovementFromRequest adapte le body HTTP au cas d'usage RegisterMovement(ctx, MovementInput).
// À utiliser depuis les handlers HTTP qui disposent de l'operatorID (middleware auth)
// et du dto.RegisterMovementRequest.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, operatorID string, in dto.RegisterMovementRequest) (*entity.Movement, error) {
	input := MovementInput{
		OperatorID:         operatorID,
		Type:               in.Type,
		ProductID:          in.ProductID,
		Quantity:           in.Quantity,
		Comment:            deref(in.Comment),
		SerialNumbers:      in.SerialNumbers,
		SupplierID:         deref(in.SupplierID),
		Condition:          deref(in.Condition),
		SalePrice:          in.SalePrice,
		RequesterID:        in.RequesterID,
		DestinationType:    deref(in.DestinationType),
		PartnerID:          deref(in.PartnerID),
		ProjectID:          deref(in.ProjectID),
		DestinationName:    deref(in.DestinationName),
		DestinationContact: deref(in.DestinationContact),
	}
	return uc.RegisterMovement(ctx, input)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
