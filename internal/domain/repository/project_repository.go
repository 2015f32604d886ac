package repository

import "github.com/kalitech/magasin-api/internal/domain/entity"

// ProjectRepository port de lecture des projets internes (données de référence).
type ProjectRepository interface {
	GetByID(id string) (*entity.Project, error)
}
