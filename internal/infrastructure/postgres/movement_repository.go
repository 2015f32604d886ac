package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/kalitech/magasin-api/internal/domain/entity"
	"github.com/kalitech/magasin-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implémentation du port MovementRepository sur PostgreSQL (pool ou tx).
// La destination (union étiquetée) est aplatie en colonnes ; la reconstruction en
// variante unique se fait au scan, l'exclusivité ayant été validée avant insertion.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construit l'adaptateur. Passer le pool ou une tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, type, produit_id, quantite, operateur, commentaire,
	fournisseur_id, etat, prix_vente, demandeur_id,
	destination_type, partenaire_id, projet_id, destination_nom, destination_contact,
	document_path, created_at`

// Create persiste un mouvement et ses numéros de série.
// À appeler dans la transaction du registre (même tx que la mise à jour du compteur).
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `
		INSERT INTO mouvements (id, type, produit_id, quantite, operateur, commentaire,
			fournisseur_id, etat, prix_vente, demandeur_id,
			destination_type, partenaire_id, projet_id, destination_nom, destination_contact,
			created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	var destType, partnerID, projectID, destName, destContact *string
	if m.Destination != nil {
		destType = &m.Destination.Type
		partnerID = nullable(m.Destination.PartnerID)
		projectID = nullable(m.Destination.ProjectID)
		destName = nullable(m.Destination.Name)
		destContact = nullable(m.Destination.Contact)
	}

	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Type, m.ProductID, m.Quantity, nullable(m.OperatorID), nullable(m.Comment),
		nullable(m.SupplierID), nullable(m.Condition), m.SalePrice, nullable(m.RequesterID),
		destType, partnerID, projectID, destName, destContact,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert mouvement: %w", err)
	}

	for i, sn := range m.SerialNumbers {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO numeros_serie (mouvement_id, valeur, position) VALUES ($1, $2, $3)`,
			m.ID, sn, i,
		)
		if err != nil {
			return fmt.Errorf("insert numero de serie: %w", err)
		}
	}
	return nil
}

// GetByID retourne un mouvement et ses numéros de série (nil si absent).
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM mouvements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil || m == nil {
		return m, err
	}
	if err := r.loadSerials(m); err != nil {
		return nil, err
	}
	return m, nil
}

// List retourne les mouvements filtrés, du plus récent au plus ancien.
func (r *MovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM mouvements WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND produit_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list mouvements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, m := range list {
		if err := r.loadSerials(m); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// AttachDocument renseigne le chemin du justificatif. Seule mutation admise après création.
func (r *MovementRepo) AttachDocument(id, path string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE mouvements SET document_path = $2 WHERE id = $1`, id, path)
	if err != nil {
		return fmt.Errorf("attach document: %w", err)
	}
	return nil
}

// LedgerSum recalcule la somme signée du registre pour un produit.
func (r *MovementRepo) LedgerSum(productID string) (int, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN type = 'ENTREE' THEN quantite ELSE -quantite END), 0)
		FROM mouvements WHERE produit_id = $1`
	var sum int
	if err := r.q.QueryRow(context.Background(), query, productID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("somme registre: %w", err)
	}
	return sum, nil
}

func (r *MovementRepo) loadSerials(m *entity.Movement) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT valeur FROM numeros_serie WHERE mouvement_id = $1 ORDER BY position`, m.ID)
	if err != nil {
		return fmt.Errorf("list numeros de serie: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var sn string
		if err := rows.Scan(&sn); err != nil {
			return fmt.Errorf("scan numero de serie: %w", err)
		}
		m.SerialNumbers = append(m.SerialNumbers, sn)
	}
	return rows.Err()
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var operator, comment, supplier, condition, requester *string
	var destType, partnerID, projectID, destName, destContact, docPath *string
	var salePrice *decimal.Decimal

	err := row.Scan(
		&m.ID, &m.Type, &m.ProductID, &m.Quantity, &operator, &comment,
		&supplier, &condition, &salePrice, &requester,
		&destType, &partnerID, &projectID, &destName, &destContact,
		&docPath, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mouvement: %w", err)
	}

	m.OperatorID = deref(operator)
	m.Comment = deref(comment)
	m.SupplierID = deref(supplier)
	m.Condition = deref(condition)
	m.SalePrice = salePrice
	m.RequesterID = deref(requester)
	m.DocumentPath = deref(docPath)
	if destType != nil {
		m.Destination = &entity.Destination{
			Type:      *destType,
			PartnerID: deref(partnerID),
			ProjectID: deref(projectID),
			Name:      deref(destName),
			Contact:   deref(destContact),
		}
	}
	return &m, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
