package entity

import "time"

// Project représente un projet interne (données de référence, lecture seule ici).
type Project struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
