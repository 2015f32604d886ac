package movement

import (
	"context"

	"github.com/kalitech/magasin-api/internal/domain/repository"
)

// TxRunner exécute une fonction dans une transaction de BD, en passant des
// repositories attachés à cette transaction. Garantit l'atomicité entre l'écriture
// du mouvement et la mise à jour du compteur de stock : les deux ou aucune.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
