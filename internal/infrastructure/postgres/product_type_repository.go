package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/electrostock-api/internal/domain"
	"github.com/jhoicas/electrostock-api/internal/domain/entity"
	"github.com/jhoicas/electrostock-api/internal/domain/repository"
)

var _ repository.ProductTypeRepository = (*ProductTypeRepo)(nil)

// ProductTypeRepo implementación de ProductTypeRepository sobre PostgreSQL.
type ProductTypeRepo struct {
	pool *pgxpool.Pool
}

// NewProductTypeRepository construye el adaptador para tipos de producto.
func NewProductTypeRepository(pool *pgxpool.Pool) *ProductTypeRepo {
	return &ProductTypeRepo{pool: pool}
}

// Create persiste un tipo nuevo.
func (r *ProductTypeRepo) Create(t *entity.ProductType) error {
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO product_types (id, type_name) VALUES ($1, $2)`, t.ID, t.TypeName)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product_type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo por ID, nil si no existe.
func (r *ProductTypeRepo) GetByID(id string) (*entity.ProductType, error) {
	var t entity.ProductType
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, type_name FROM product_types WHERE id = $1`, id).Scan(&t.ID, &t.TypeName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product_type: %w", err)
	}
	return &t, nil
}

// List devuelve todos los tipos ordenados por nombre.
func (r *ProductTypeRepo) List() ([]*entity.ProductType, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, type_name FROM product_types ORDER BY type_name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list product_types: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductType
	for rows.Next() {
		var t entity.ProductType
		if err := rows.Scan(&t.ID, &t.TypeName); err != nil {
			return nil, fmt.Errorf("scan product_type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update renombra un tipo.
func (r *ProductTypeRepo) Update(t *entity.ProductType) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE product_types SET type_name = $2 WHERE id = $1`, t.ID, t.TypeName)
	if err != nil {
		return fmt.Errorf("update product_type: %w", err)
	}
	return nil
}

// Delete elimina un tipo por ID.
func (r *ProductTypeRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM product_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product_type: %w", err)
	}
	return nil
}
