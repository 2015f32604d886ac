package entity

import "time"

// Partner représente un client ou partenaire référencé (données de référence,
// gérées par le module CRM ; ici en lecture seule pour la résolution des sorties).
type Partner struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
