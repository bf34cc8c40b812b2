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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `p.id, p.name, p.type_id, COALESCE(t.type_name, ''), p.price, p.stock, p.status, p.created_at`

// Create persiste un nuevo producto con su stock inicial.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, type_id, price, stock, status, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.TypeID, product.Price, product.Stock, product.Status, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con el nombre de tipo resuelto.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p LEFT JOIN product_types t ON t.id = p.type_id
		WHERE p.id = $1`
	p, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// ListAll lista todos los productos, más recientes primero.
func (r *ProductRepo) ListAll() ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p LEFT JOIN product_types t ON t.id = p.type_id
		ORDER BY p.created_at DESC`
	return r.list(query)
}

// Search filtra por nombre parcial (ILIKE) y/o tipo.
func (r *ProductRepo) Search(name, typeID string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p LEFT JOIN product_types t ON t.id = p.type_id
		WHERE 1=1`
	args := []any{}
	pos := 1
	if name != "" {
		query += fmt.Sprintf(" AND p.name ILIKE $%d", pos)
		args = append(args, "%"+name+"%")
		pos++
	}
	if typeID != "" {
		query += fmt.Sprintf(" AND p.type_id = $%d", pos)
		args = append(args, typeID)
		pos++
	}
	query += " ORDER BY p.created_at DESC"
	return r.list(query, args...)
}

// Update actualiza campos de catálogo. Nunca escribe la columna stock:
// esa pasa solo por AdjustStock.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, type_id = NULLIF($3, ''), price = $4, status = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.TypeID, product.Price, product.Status,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// AdjustStock aplica stock += delta en una sola sentencia condicional, de modo
// que dos decrementos concurrentes nunca pierdan una actualización ni dejen el
// stock en negativo. Si la sentencia no afecta filas, se relee el stock para
// distinguir producto inexistente de stock insuficiente.
func (r *ProductRepo) AdjustStock(productID string, delta int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock + $2 WHERE id = $1 AND stock + $2 >= 0`,
		productID, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}
	var current int
	err = r.q.QueryRow(context.Background(), `SELECT stock FROM products WHERE id = $1`, productID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("read stock: %w", err)
	}
	return &domain.InsufficientStockError{Current: current, Requested: -delta}
}

// ListAtOrBelowStock devuelve los productos con stock <= threshold, los más
// escasos primero.
func (r *ProductRepo) ListAtOrBelowStock(threshold int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p LEFT JOIN product_types t ON t.id = p.type_id
		WHERE p.stock <= $1
		ORDER BY p.stock ASC, p.name ASC`
	return r.list(query, threshold)
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var typeID *string
	err := row.Scan(&p.ID, &p.Name, &typeID, &p.TypeName, &p.Price, &p.Stock, &p.Status, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if typeID != nil {
		p.TypeID = *typeID
	}
	return &p, nil
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var typeID *string
		if err := rows.Scan(&p.ID, &p.Name, &typeID, &p.TypeName, &p.Price, &p.Stock, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if typeID != nil {
			p.TypeID = *typeID
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
