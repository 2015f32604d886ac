package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kalitech/magasin-api/internal/domain"
	"github.com/kalitech/magasin-api/internal/domain/entity"
	"github.com/kalitech/magasin-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implémentation du port ProductRepository sur PostgreSQL (pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construit l'adaptateur. Passer le pool ou une tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = "id, nom, quantite, seuil_alerte, prix_minimum, created_at, updated_at"

// Create persiste un nouveau produit (quantité à 0).
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO produits (id, nom, quantite, seuil_alerte, prix_minimum, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Quantity, product.AlertThreshold,
		product.MinSalePrice, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produit: %w", err)
	}
	return nil
}

// GetByID retourne un produit par ID (nil si absent).
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produits WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate retourne le produit en verrouillant sa ligne (SELECT FOR UPDATE).
// À n'appeler que dans une transaction : c'est ce verrou qui sérialise les
// mouvements concurrents sur un même produit.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produits WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// Update modifie les métadonnées du produit (jamais la quantité).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE produits SET nom = $2, seuil_alerte = $3, prix_minimum = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.AlertThreshold, product.MinSalePrice, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update produit: %w", err)
	}
	return nil
}

// UpdateQuantity écrit le nouveau compteur. Appelé uniquement depuis la transaction
// du registre, après GetForUpdate sur la même ligne.
func (r *ProductRepo) UpdateQuantity(id string, quantity int) error {
	query := `UPDATE produits SET quantite = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("update quantite: %w", err)
	}
	return nil
}

// List retourne les produits paginés par nom.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produits ORDER BY nom LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list produits: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// ListBelowThreshold retourne les produits au niveau ou sous leur seuil d'alerte.
func (r *ProductRepo) ListBelowThreshold() ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM produits
		WHERE seuil_alerte IS NOT NULL AND quantite <= seuil_alerte
		ORDER BY nom`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list produits sous seuil: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Quantity, &p.AlertThreshold, &p.MinSalePrice, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produit: %w", err)
	}
	return &p, nil
}

func (r *ProductRepo) scanMany(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Quantity, &p.AlertThreshold, &p.MinSalePrice, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan produit: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
