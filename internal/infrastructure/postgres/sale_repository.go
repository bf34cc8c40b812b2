package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/electrostock-api/internal/domain"
	"github.com/jhoicas/electrostock-api/internal/domain/entity"
	"github.com/jhoicas/electrostock-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta con su total congelado.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, quantity, total_price, salesman_id, sale_time)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductID, sale.Quantity, sale.TotalPrice, sale.SalesmanID, sale.SaleTime,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID, nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, product_id, quantity, total_price, salesman_id, sale_time
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ProductID, &s.Quantity, &s.TotalPrice, &s.SalesmanID, &s.SaleTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// UpdateQuantity reescribe cantidad y total en una sola sentencia.
func (r *SaleRepo) UpdateQuantity(id string, quantity int, totalPrice decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE sales SET quantity = $2, total_price = $3 WHERE id = $1`,
		id, quantity, totalPrice)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una venta por ID.
func (r *SaleRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListRecords lista las ventas enriquecidas con nombres, más recientes primero.
func (r *SaleRepo) ListRecords() ([]*entity.SaleRecord, error) {
	query := `
		SELECT s.id, COALESCE(p.name, 'producto desconocido'), s.quantity, s.total_price,
		       COALESCE(u.username, 'vendedor desconocido'), s.sale_time
		FROM sales s
		LEFT JOIN products p ON p.id = s.product_id
		LEFT JOIN users u ON u.id = s.salesman_id
		ORDER BY s.sale_time DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sale records: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleRecord
	for rows.Next() {
		var rec entity.SaleRecord
		if err := rows.Scan(&rec.ID, &rec.ProductName, &rec.Quantity, &rec.TotalPrice, &rec.Salesman, &rec.SaleTime); err != nil {
			return nil, fmt.Errorf("scan sale record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
