package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/electrostock-api/internal/domain/repository"
)

var _ repository.StatisticsRepository = (*StatisticsRepo)(nil)

// StatisticsRepo consultas de solo lectura sobre los libros de inventario.
type StatisticsRepo struct {
	pool *pgxpool.Pool
}

// NewStatisticsRepository construye el adaptador de estadísticas.
func NewStatisticsRepository(pool *pgxpool.Pool) *StatisticsRepo {
	return &StatisticsRepo{pool: pool}
}

// StockInStats devuelve una fila por entrada en el rango, con fecha y producto.
func (r *StatisticsRepo) StockInStats(ctx context.Context, from, to *time.Time) ([]repository.LedgerStatResult, error) {
	query := `
		SELECT to_char(s.in_time, 'YYYY-MM-DD'), COALESCE(p.name, 'producto desconocido'),
		       s.quantity, 0::numeric
		FROM stock_in s
		LEFT JOIN products p ON p.id = s.product_id`
	query, args := appendDateRange(query, "s.in_time", from, to)
	query += " ORDER BY s.in_time DESC"
	return r.queryStats(ctx, query, args)
}

// StockOutStats devuelve una fila por salida en el rango.
func (r *StatisticsRepo) StockOutStats(ctx context.Context, from, to *time.Time) ([]repository.LedgerStatResult, error) {
	query := `
		SELECT to_char(s.out_time, 'YYYY-MM-DD'), COALESCE(p.name, 'producto desconocido'),
		       s.quantity, 0::numeric
		FROM stock_out s
		LEFT JOIN products p ON p.id = s.product_id`
	query, args := appendDateRange(query, "s.out_time", from, to)
	query += " ORDER BY s.out_time DESC"
	return r.queryStats(ctx, query, args)
}

// SaleStats devuelve una fila por venta en el rango, con el total congelado.
func (r *StatisticsRepo) SaleStats(ctx context.Context, from, to *time.Time) ([]repository.LedgerStatResult, error) {
	query := `
		SELECT to_char(s.sale_time, 'YYYY-MM-DD'), COALESCE(p.name, 'producto desconocido'),
		       s.quantity, s.total_price
		FROM sales s
		LEFT JOIN products p ON p.id = s.product_id`
	query, args := appendDateRange(query, "s.sale_time", from, to)
	query += " ORDER BY s.sale_time DESC"
	return r.queryStats(ctx, query, args)
}

func appendDateRange(query, column string, from, to *time.Time) (string, []any) {
	args := []any{}
	pos := 1
	clause := " WHERE 1=1"
	if from != nil {
		clause += fmt.Sprintf(" AND %s >= $%d", column, pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		clause += fmt.Sprintf(" AND %s < $%d", column, pos)
		args = append(args, *to)
		pos++
	}
	return query + clause, args
}

func (r *StatisticsRepo) queryStats(ctx context.Context, query string, args []any) ([]repository.LedgerStatResult, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query statistics: %w", err)
	}
	defer rows.Close()
	var list []repository.LedgerStatResult
	for rows.Next() {
		var s repository.LedgerStatResult
		var amount decimal.Decimal
		if err := rows.Scan(&s.Label, &s.ProductName, &s.Count, &amount); err != nil {
			return nil, fmt.Errorf("scan statistics row: %w", err)
		}
		s.TotalAmount = amount
		list = append(list, s)
	}
	return list, rows.Err()
}
