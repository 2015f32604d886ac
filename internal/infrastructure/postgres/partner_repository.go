package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kalitech/magasin-api/internal/domain/entity"
	"github.com/kalitech/magasin-api/internal/domain/repository"
)

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

// PartnerRepo lecture des partenaires (données de référence gérées ailleurs).
type PartnerRepo struct {
	q Querier
}

// NewPartnerRepository construit l'adaptateur.
func NewPartnerRepository(q Querier) *PartnerRepo {
	return &PartnerRepo{q: q}
}

// GetByID retourne un partenaire par ID (nil si absent).
func (r *PartnerRepo) GetByID(id string) (*entity.Partner, error) {
	var p entity.Partner
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nom, created_at FROM partenaires WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get partenaire: %w", err)
	}
	return &p, nil
}
