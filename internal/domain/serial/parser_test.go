package serial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kalitech/magasin-api/internal/domain/serial"
)

// La saisie réelle des techniciens est irrégulière : espaces, jetons vides, doublons.
func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"saisie propre", "SN1,SN2,SN3", []string{"SN1", "SN2", "SN3"}},
		{"espaces et jeton vide", "SN1, SN2 ,, SN3", []string{"SN1", "SN2", "SN3"}},
		{"chaine vide", "", nil},
		{"uniquement des virgules", " , ,, ", nil},
		{"doublon conserve la premiere occurrence", "SN1, SN2, SN1", []string{"SN1", "SN2"}},
		{"un seul numero", "  ABC-123  ", []string{"ABC-123"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, serial.Parse(tc.in))
		})
	}
}

// Le nombre de numéros saisis n'est pas contraint par la quantité du mouvement ;
// ce test documente que le parseur n'impose aucun rapprochement.
func TestParse_CountIsInformational(t *testing.T) {
	got := serial.Parse("SN1, SN2")
	assert.Len(t, got, 2, "deux numéros pour un mouvement de quantité quelconque")
}
