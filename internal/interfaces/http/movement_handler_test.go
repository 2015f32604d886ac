package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalitech/magasin-api/internal/application/movement"
	"github.com/kalitech/magasin-api/internal/application/usecase"
	"github.com/kalitech/magasin-api/internal/domain/entity"
	"github.com/kalitech/magasin-api/internal/domain/repository"
	apphttp "github.com/kalitech/magasin-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dépôts en mémoire pour les tests de bout en bout de la couche HTTP.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	movements []*entity.Movement
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = p
	return nil
}
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }
func (r *memProductRepo) Update(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = p
	return nil
}
func (r *memProductRepo) UpdateQuantity(id string, quantity int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.products[id]; ok {
		p.Quantity = quantity
	}
	return nil
}
func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}
func (r *memProductRepo) ListBelowThreshold() ([]*entity.Product, error) { return nil, nil }

type memMovementRepo struct{ s *memStore }

func (r *memMovementRepo) Create(m *entity.Movement) error {
	r.s.movements = append(r.s.movements, m)
	return nil
}
func (r *memMovementRepo) GetByID(id string) (*entity.Movement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}
func (r *memMovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Movement{}
	for _, m := range r.s.movements {
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}
func (r *memMovementRepo) AttachDocument(id, path string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.movements {
		if m.ID == id {
			m.DocumentPath = path
		}
	}
	return nil
}
func (r *memMovementRepo) LedgerSum(productID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sum := 0
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			sum += m.Delta()
		}
	}
	return sum, nil
}

type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	// Les dépôts liés à la "transaction" partagent le même store déjà verrouillé.
	return fn(&memMovementRepo{r.s}, &txView{r.s})
}

// txView vue produit sans verrouillage, le mutex est déjà détenu par le runner.
type txView struct{ s *memStore }

func (r *txView) Create(p *entity.Product) error { return nil }
func (r *txView) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *txView) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }
func (r *txView) Update(p *entity.Product) error                  { return nil }
func (r *txView) UpdateQuantity(id string, quantity int) error {
	if p, ok := r.s.products[id]; ok {
		p.Quantity = quantity
	}
	return nil
}
func (r *txView) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *txView) ListBelowThreshold() ([]*entity.Product, error)    { return nil, nil }

type memPartnerRepo struct{}

func (memPartnerRepo) GetByID(id string) (*entity.Partner, error) {
	if id == "partenaire-1" {
		return &entity.Partner{ID: id, Name: "Emmaüs Connect"}, nil
	}
	return nil, nil
}

type memProjectRepo struct{}

func (memProjectRepo) GetByID(id string) (*entity.Project, error) {
	if id == "projet-1" {
		return &entity.Project{ID: id, Name: "Déploiement Lyon"}, nil
	}
	return nil, nil
}

// buildAPIApp câble l'application complète sur les dépôts en mémoire.
func buildAPIApp(s *memStore) *fiber.App {
	productRepo := &memProductRepo{s}
	movementRepo := &memMovementRepo{s}
	resolver := movement.NewDestinationResolver(memPartnerRepo{}, memProjectRepo{})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:        usecase.NewProductUseCase(productRepo),
		RegisterMovement: movement.NewRegisterMovementUseCase(&memTxRunner{s}, productRepo, resolver),
		AttachDocument:   movement.NewAttachDocumentUseCase(movementRepo),
		MovementQueries:  movement.NewQueryUseCase(movementRepo, productRepo),
		JWTSecret:        testJWTSecret,
	})
	return app
}

func newMemStore(products ...*entity.Product) *memStore {
	s := &memStore{products: map[string]*entity.Product{}}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", testToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", testToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/mouvements
// ──────────────────────────────────────────────────────────────────────────────

func TestPostMouvement_Sortie(t *testing.T) {
	s := newMemStore(&entity.Product{ID: "p1", Name: "Dell Latitude 5520", Quantity: 10})
	app := buildAPIApp(s)

	resp := postJSON(t, app, "/api/mouvements", fiber.Map{
		"type":            "SORTIE",
		"produitId":       "p1",
		"quantite":        4,
		"demandeurId":     "demandeur-1",
		"partenaireDstId": "partenaire-1",
		"serialNumbers":   []string{"SN1", " SN2 "},
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "SORTIE", body["type"])
	assert.Equal(t, "PARTENAIRE", body["destinationType"])
	assert.Equal(t, "partenaire-1", body["partenaireDstId"])
	assert.Equal(t, testUserID, body["operateurId"], "l'opérateur vient du jeton, pas du corps")
	assert.Equal(t, float64(4), body["quantite"])

	assert.Equal(t, 6, s.products["p1"].Quantity)
}

func TestPostMouvement_StockInsuffisant(t *testing.T) {
	s := newMemStore(&entity.Product{ID: "p1", Quantity: 6})
	app := buildAPIApp(s)

	resp := postJSON(t, app, "/api/mouvements", fiber.Map{
		"type":        "SORTIE",
		"produitId":   "p1",
		"quantite":    10,
		"demandeurId": "demandeur-1",
		"destination": "Jean Dupont",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "STOCK_INSUFFISANT", body["code"])
	assert.Equal(t, 6, s.products["p1"].Quantity)
}

func TestPostMouvement_DestinationInvalide(t *testing.T) {
	s := newMemStore(&entity.Product{ID: "p1", Quantity: 10})
	app := buildAPIApp(s)

	resp := postJSON(t, app, "/api/mouvements", fiber.Map{
		"type":            "SORTIE",
		"produitId":       "p1",
		"quantite":        1,
		"demandeurId":     "demandeur-1",
		"partenaireDstId": "partenaire-1",
		"projetId":        "projet-1",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "DESTINATION_INVALIDE", body["code"])
	assert.Empty(t, s.movements)
}

func TestPostMouvement_ProduitIntrouvable(t *testing.T) {
	app := buildAPIApp(newMemStore())

	resp := postJSON(t, app, "/api/mouvements", fiber.Map{
		"type":      "ENTREE",
		"produitId": "inconnu",
		"quantite":  5,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "PRODUIT_INTROUVABLE", body["code"])
}

func TestPostMouvement_EntreeEtatParDefaut(t *testing.T) {
	s := newMemStore(&entity.Product{ID: "p1", Quantity: 2})
	app := buildAPIApp(s)

	resp := postJSON(t, app, "/api/mouvements", fiber.Map{
		"type":      "ENTREE",
		"produitId": "p1",
		"quantite":  5,
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "neuf", body["etat"])
	assert.Equal(t, 7, s.products["p1"].Quantity)
}

func TestPostMouvement_SansJeton(t *testing.T) {
	app := buildAPIApp(newMemStore())

	req := httptest.NewRequest(http.MethodPost, "/api/mouvements", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultations
// ──────────────────────────────────────────────────────────────────────────────

func TestGetVerification(t *testing.T) {
	s := newMemStore(&entity.Product{ID: "p1", Quantity: 0})
	app := buildAPIApp(s)

	resp := postJSON(t, app, "/api/mouvements", fiber.Map{
		"type": "ENTREE", "produitId": "p1", "quantite": 10,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = getJSON(t, app, "/api/produits/p1/verification")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, float64(10), body["quantite"])
	assert.Equal(t, float64(10), body["sommeRegistre"])
	assert.Equal(t, true, body["coherent"])
}

func TestGetMouvementsParProduit(t *testing.T) {
	s := newMemStore(
		&entity.Product{ID: "p1", Quantity: 0},
		&entity.Product{ID: "p2", Quantity: 0},
	)
	app := buildAPIApp(s)

	for _, pid := range []string{"p1", "p1", "p2"} {
		resp := postJSON(t, app, "/api/mouvements", fiber.Map{
			"type": "ENTREE", "produitId": pid, "quantite": 1,
		})
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := getJSON(t, app, "/api/produits/p1/mouvements")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, float64(2), body["total"])
}

func TestAttachDocumentRoute(t *testing.T) {
	s := newMemStore(&entity.Product{ID: "p1", Quantity: 0})
	app := buildAPIApp(s)

	resp := postJSON(t, app, "/api/mouvements", fiber.Map{
		"type": "ENTREE", "produitId": "p1", "quantite": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode(t, resp)
	resp.Body.Close()
	movID, _ := created["id"].(string)
	require.NotEmpty(t, movID)

	resp = postJSON(t, app, "/api/mouvements/"+movID+"/document", fiber.Map{
		"chemin": "/documents/bl-2024-0042.pdf",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/documents/bl-2024-0042.pdf", s.movements[0].DocumentPath)
}
