package movement

import (
	"context"
	"strings"

	"github.com/kalitech/magasin-api/internal/domain"
	"github.com/kalitech/magasin-api/internal/domain/repository"
)

// AttachDocumentUseCase lie un justificatif (chemin de fichier) à un mouvement déjà
// enregistré. Opération hors transaction de stock : elle ne peut ni annuler ni altérer
// l'effet quantité déjà committé.
type AttachDocumentUseCase struct {
	movRepo repository.MovementRepository
}

// NewAttachDocumentUseCase construit le cas d'usage.
func NewAttachDocumentUseCase(movRepo repository.MovementRepository) *AttachDocumentUseCase {
	return &AttachDocumentUseCase{movRepo: movRepo}
}

// AttachDocument enregistre le chemin du justificatif sur le mouvement.
func (uc *AttachDocumentUseCase) AttachDocument(ctx context.Context, movementID, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return domain.ErrInvalidInput
	}
	mov, err := uc.movRepo.GetByID(movementID)
	if err != nil {
		return err
	}
	if mov == nil {
		return domain.ErrMovementNotFound
	}
	return uc.movRepo.AttachDocument(movementID, path)
}
