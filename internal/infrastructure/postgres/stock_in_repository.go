package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/electrostock-api/internal/domain"
	"github.com/jhoicas/electrostock-api/internal/domain/entity"
	"github.com/jhoicas/electrostock-api/internal/domain/repository"
)

var _ repository.StockInRepository = (*StockInRepo)(nil)

// StockInRepo implementación de StockInRepository sobre PostgreSQL (usable con pool o tx).
type StockInRepo struct {
	q Querier
}

// NewStockInRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockInRepository(q Querier) *StockInRepo {
	return &StockInRepo{q: q}
}

// Create persiste una entrada de inventario.
func (r *StockInRepo) Create(entry *entity.StockIn) error {
	query := `
		INSERT INTO stock_in (id, product_id, quantity, operator_id, in_time)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.Quantity, entry.OperatorID, entry.InTime,
	)
	if err != nil {
		return fmt.Errorf("insert stock_in: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID, nil si no existe.
func (r *StockInRepo) GetByID(id string) (*entity.StockIn, error) {
	query := `
		SELECT id, product_id, quantity, operator_id, in_time
		FROM stock_in WHERE id = $1`
	var e entity.StockIn
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.ProductID, &e.Quantity, &e.OperatorID, &e.InTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock_in: %w", err)
	}
	return &e, nil
}

// UpdateQuantity reescribe la cantidad de una entrada existente.
func (r *StockInRepo) UpdateQuantity(id string, quantity int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE stock_in SET quantity = $2 WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("update stock_in: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una entrada por ID.
func (r *StockInRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM stock_in WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock_in: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListRecords lista las entradas enriquecidas con nombres de producto y
// operador, más recientes primero. Referencias rotas se muestran con un
// nombre de relleno en lugar de excluir la fila.
func (r *StockInRepo) ListRecords() ([]*entity.StockInRecord, error) {
	query := `
		SELECT s.id, COALESCE(p.name, 'producto desconocido'), s.quantity,
		       COALESCE(u.username, 'operador desconocido'), s.in_time
		FROM stock_in s
		LEFT JOIN products p ON p.id = s.product_id
		LEFT JOIN users u ON u.id = s.operator_id
		ORDER BY s.in_time DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock_in records: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockInRecord
	for rows.Next() {
		var rec entity.StockInRecord
		if err := rows.Scan(&rec.ID, &rec.ProductName, &rec.Quantity, &rec.Operator, &rec.InTime); err != nil {
			return nil, fmt.Errorf("scan stock_in record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
