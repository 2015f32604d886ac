package repository

import "github.com/kalitech/magasin-api/internal/domain/entity"

// PartnerRepository port de lecture des partenaires (données de référence du CRM).
type PartnerRepository interface {
	GetByID(id string) (*entity.Partner, error)
}
