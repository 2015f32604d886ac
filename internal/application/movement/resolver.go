package movement

import (
	"strings"

	"github.com/kalitech/magasin-api/internal/domain"
	"github.com/kalitech/magasin-api/internal/domain/entity"
	"github.com/kalitech/magasin-api/internal/domain/repository"
)

// DestinationResolver détermine et valide la variante de destination d'une sortie.
// La sortie du resolver est toujours exactement une variante étiquetée : le code aval
// peut faire un switch sur Type sans revalider l'exclusivité.
type DestinationResolver struct {
	partnerRepo repository.PartnerRepository
	projectRepo repository.ProjectRepository
}

// NewDestinationResolver construit le resolver.
func NewDestinationResolver(partnerRepo repository.PartnerRepository, projectRepo repository.ProjectRepository) *DestinationResolver {
	return &DestinationResolver{partnerRepo: partnerRepo, projectRepo: projectRepo}
}

// Resolve choisit la variante à partir des champs bruts de la requête.
// Exactement un des trois groupes doit être renseigné : partenaireDstId, projetId,
// ou destination (nom du particulier). Zéro ou plusieurs groupes -> ErrInvalidDestination.
// Si destinationType est fourni, il doit correspondre à la variante renseignée
// (l'ancien format dupliquait l'information ; les deux doivent concorder).
func (r *DestinationResolver) Resolve(declaredType, partnerID, projectID, name, contact string) (*entity.Destination, error) {
	partnerID = strings.TrimSpace(partnerID)
	projectID = strings.TrimSpace(projectID)
	name = strings.TrimSpace(name)

	populated := 0
	if partnerID != "" {
		populated++
	}
	if projectID != "" {
		populated++
	}
	if name != "" {
		populated++
	}
	if populated != 1 {
		return nil, domain.ErrInvalidDestination
	}

	var dst *entity.Destination
	switch {
	case partnerID != "":
		d, ok := entity.NewPartnerDestination(partnerID)
		if !ok {
			return nil, domain.ErrInvalidDestination
		}
		partner, err := r.partnerRepo.GetByID(partnerID)
		if err != nil {
			return nil, err
		}
		if partner == nil {
			return nil, domain.ErrReferenceNotFound
		}
		dst = d
	case projectID != "":
		d, ok := entity.NewProjectDestination(projectID)
		if !ok {
			return nil, domain.ErrInvalidDestination
		}
		project, err := r.projectRepo.GetByID(projectID)
		if err != nil {
			return nil, err
		}
		if project == nil {
			return nil, domain.ErrReferenceNotFound
		}
		dst = d
	default:
		d, ok := entity.NewIndividualDestination(name, contact)
		if !ok {
			return nil, domain.ErrInvalidDestination
		}
		dst = d
	}

	if declaredType != "" && declaredType != dst.Type {
		return nil, domain.ErrInvalidDestination
	}
	return dst, nil
}
