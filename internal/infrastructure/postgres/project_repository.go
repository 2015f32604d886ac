package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kalitech/magasin-api/internal/domain/entity"
	"github.com/kalitech/magasin-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo lecture des projets internes (données de référence gérées ailleurs).
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construit l'adaptateur.
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// GetByID retourne un projet par ID (nil si absent).
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	var p entity.Project
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nom, created_at FROM projets WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get projet: %w", err)
	}
	return &p, nil
}
