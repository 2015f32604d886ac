package entity

import "strings"

// Types de destination d'une sortie. Exactement une variante par mouvement.
const (
	DestinationPartenaire  = "PARTENAIRE"  // client ou partenaire référencé
	DestinationProjet      = "PROJET"      // projet interne
	DestinationParticulier = "PARTICULIER" // personne nommée (nom + contact libre)
)

// Destination est l'union étiquetée des trois cibles possibles d'une sortie.
// Construire uniquement via les constructeurs ci-dessous : le code aval peut faire
// un switch sur Type sans revalider l'exclusivité des variantes.
type Destination struct {
	Type      string
	PartnerID string // renseigné si Type == PARTENAIRE
	ProjectID string // renseigné si Type == PROJET
	Name      string // renseigné si Type == PARTICULIER
	Contact   string // texte libre, optionnel (PARTICULIER)
}

// NewPartnerDestination construit la variante PARTENAIRE.
func NewPartnerDestination(partnerID string) (*Destination, bool) {
	if strings.TrimSpace(partnerID) == "" {
		return nil, false
	}
	return &Destination{Type: DestinationPartenaire, PartnerID: partnerID}, true
}

// NewProjectDestination construit la variante PROJET.
func NewProjectDestination(projectID string) (*Destination, bool) {
	if strings.TrimSpace(projectID) == "" {
		return nil, false
	}
	return &Destination{Type: DestinationProjet, ProjectID: projectID}, true
}

// NewIndividualDestination construit la variante PARTICULIER.
// Le nom est obligatoire (non vide après trim), le contact reste du texte libre.
func NewIndividualDestination(name, contact string) (*Destination, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}
	return &Destination{Type: DestinationParticulier, Name: name, Contact: strings.TrimSpace(contact)}, true
}
