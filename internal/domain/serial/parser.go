package serial

import "strings"

// Parse découpe une saisie de numéros de série séparés par des virgules :
// trim de chaque jeton, jetons vides ignorés, doublons supprimés en conservant
// l'ordre de première apparition. Le nombre de numéros n'est pas contraint par la
// quantité du mouvement (saisie informative).
func Parse(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		token := strings.TrimSpace(p)
		if token == "" {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
