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

var _ repository.StockOutRepository = (*StockOutRepo)(nil)

// StockOutRepo implementación de StockOutRepository sobre PostgreSQL (usable con pool o tx).
type StockOutRepo struct {
	q Querier
}

// NewStockOutRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockOutRepository(q Querier) *StockOutRepo {
	return &StockOutRepo{q: q}
}

// Create persiste una salida de inventario.
func (r *StockOutRepo) Create(entry *entity.StockOut) error {
	query := `
		INSERT INTO stock_out (id, product_id, quantity, operator_id, out_time)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.Quantity, entry.OperatorID, entry.OutTime,
	)
	if err != nil {
		return fmt.Errorf("insert stock_out: %w", err)
	}
	return nil
}

// GetByID obtiene una salida por ID, nil si no existe.
func (r *StockOutRepo) GetByID(id string) (*entity.StockOut, error) {
	query := `
		SELECT id, product_id, quantity, operator_id, out_time
		FROM stock_out WHERE id = $1`
	var e entity.StockOut
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.ProductID, &e.Quantity, &e.OperatorID, &e.OutTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock_out: %w", err)
	}
	return &e, nil
}

// UpdateQuantity reescribe la cantidad de una salida existente.
func (r *StockOutRepo) UpdateQuantity(id string, quantity int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE stock_out SET quantity = $2 WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("update stock_out: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una salida por ID.
func (r *StockOutRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM stock_out WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock_out: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListRecords lista las salidas enriquecidas con nombres, más recientes primero.
func (r *StockOutRepo) ListRecords() ([]*entity.StockOutRecord, error) {
	query := `
		SELECT s.id, COALESCE(p.name, 'producto desconocido'), s.quantity,
		       COALESCE(u.username, 'operador desconocido'), s.out_time
		FROM stock_out s
		LEFT JOIN products p ON p.id = s.product_id
		LEFT JOIN users u ON u.id = s.operator_id
		ORDER BY s.out_time DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock_out records: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockOutRecord
	for rows.Next() {
		var rec entity.StockOutRecord
		if err := rows.Scan(&rec.ID, &rec.ProductName, &rec.Quantity, &rec.Operator, &rec.OutTime); err != nil {
			return nil, fmt.Errorf("scan stock_out record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
