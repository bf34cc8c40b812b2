package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/electrostock-api/internal/application/stock"
	"github.com/jhoicas/electrostock-api/internal/domain"
	"github.com/jhoicas/electrostock-api/internal/domain/entity"
	"github.com/jhoicas/electrostock-api/internal/domain/repository"
	apphttp "github.com/jhoicas/electrostock-api/internal/interfaces/http"
)

// Repos en memoria para ejercitar el mapeo de errores de dominio a HTTP sin
// PostgreSQL. Solo implementan lo que las rutas de stock tocan.

type memState struct {
	products map[string]*entity.Product
	ins      map[string]*entity.StockIn
	outs     map[string]*entity.StockOut
}

type memProductRepo struct{ s *memState }

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *memProductRepo) ListAll() ([]*entity.Product, error)           { return nil, nil }
func (r *memProductRepo) Search(_, _ string) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) Update(*entity.Product) error                  { return nil }
func (r *memProductRepo) Delete(string) error                           { return nil }
func (r *memProductRepo) AdjustStock(productID string, delta int) error {
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Stock+delta < 0 {
		return &domain.InsufficientStockError{Current: p.Stock, Requested: -delta}
	}
	p.Stock += delta
	return nil
}
func (r *memProductRepo) ListAtOrBelowStock(int) ([]*entity.Product, error) { return nil, nil }

type memStockInRepo struct{ s *memState }

var _ repository.StockInRepository = (*memStockInRepo)(nil)

func (r *memStockInRepo) Create(e *entity.StockIn) error { r.s.ins[e.ID] = e; return nil }
func (r *memStockInRepo) GetByID(id string) (*entity.StockIn, error) {
	return r.s.ins[id], nil
}
func (r *memStockInRepo) UpdateQuantity(id string, q int) error {
	e, ok := r.s.ins[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.Quantity = q
	return nil
}
func (r *memStockInRepo) Delete(id string) error { delete(r.s.ins, id); return nil }
func (r *memStockInRepo) ListRecords() ([]*entity.StockInRecord, error) {
	var out []*entity.StockInRecord
	for _, e := range r.s.ins {
		out = append(out, &entity.StockInRecord{ID: e.ID, Quantity: e.Quantity, InTime: e.InTime})
	}
	return out, nil
}

type memStockOutRepo struct{ s *memState }

var _ repository.StockOutRepository = (*memStockOutRepo)(nil)

func (r *memStockOutRepo) Create(e *entity.StockOut) error { r.s.outs[e.ID] = e; return nil }
func (r *memStockOutRepo) GetByID(id string) (*entity.StockOut, error) {
	return r.s.outs[id], nil
}
func (r *memStockOutRepo) UpdateQuantity(id string, q int) error {
	e, ok := r.s.outs[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.Quantity = q
	return nil
}
func (r *memStockOutRepo) Delete(id string) error { delete(r.s.outs, id); return nil }
func (r *memStockOutRepo) ListRecords() ([]*entity.StockOutRecord, error) { return nil, nil }

// memTxRunner ejecuta fn directo; el rollback lo cubren los tests del usecase.
type memTxRunner struct{ s *memState }

var _ stock.TxRunner = (*memTxRunner)(nil)

func (tr *memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	inRepo repository.StockInRepository,
	outRepo repository.StockOutRepository,
) error) error {
	return fn(&memProductRepo{s: tr.s}, &memStockInRepo{s: tr.s}, &memStockOutRepo{s: tr.s})
}

const stockProductID = "00000000-0000-0000-0000-0000000000aa"

func buildStockApp(stockInicial int) (*fiber.App, *memState) {
	s := &memState{
		products: map[string]*entity.Product{},
		ins:      map[string]*entity.StockIn{},
		outs:     map[string]*entity.StockOut{},
	}
	s.products[stockProductID] = &entity.Product{
		ID:        stockProductID,
		Name:      "Microondas",
		Price:     decimal.RequireFromString("80"),
		Stock:     stockInicial,
		Status:    entity.ProductStatusActive,
		CreatedAt: time.Now(),
	}
	uc := stock.NewStockUseCase(
		&memTxRunner{s: s},
		&memProductRepo{s: s},
		&memStockInRepo{s: s},
		&memStockOutRepo{s: s},
	)
	app := fiber.New()
	h := apphttp.NewStockHandler(uc)
	grp := app.Group("/api/stock", apphttp.AuthMiddleware(testJWTSecret))
	grp.Post("/in", h.StockIn)
	grp.Post("/out", h.StockOut)
	grp.Put("/in/:id", h.UpdateStockIn)
	return app, s
}

func postJSON(t *testing.T, app *fiber.App, path, token, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) (code, message string) {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body["code"], body["message"]
}

func TestStockIn_HTTP_Creado(t *testing.T) {
	app, s := buildStockApp(100)
	token := tokenForRole(t, "bodeguero")

	resp := postJSON(t, app, "/api/stock/in", token,
		`{"product_id":"`+stockProductID+`","quantity":10}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 110, s.products[stockProductID].Stock)
}

func TestStockOut_HTTP_StockInsuficiente_409(t *testing.T) {
	app, s := buildStockApp(110)
	token := tokenForRole(t, "bodeguero")

	resp := postJSON(t, app, "/api/stock/out", token,
		`{"product_id":"`+stockProductID+`","quantity":200}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	code, message := decodeError(t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", code)
	assert.Contains(t, message, "110", "el mensaje debe incluir el stock actual")
	assert.Contains(t, message, "200", "el mensaje debe incluir lo solicitado")
	assert.Equal(t, 110, s.products[stockProductID].Stock)
}

func TestStockIn_HTTP_ProductoInexistente_404(t *testing.T) {
	app, _ := buildStockApp(100)
	token := tokenForRole(t, "bodeguero")

	resp := postJSON(t, app, "/api/stock/in", token,
		`{"product_id":"no-existe","quantity":10}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	code, _ := decodeError(t, resp)
	assert.Equal(t, "NOT_FOUND", code)
}

func TestStockIn_HTTP_CantidadInvalida_400(t *testing.T) {
	app, _ := buildStockApp(100)
	token := tokenForRole(t, "bodeguero")

	resp := postJSON(t, app, "/api/stock/in", token,
		`{"product_id":"`+stockProductID+`","quantity":0}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	code, _ := decodeError(t, resp)
	assert.Equal(t, "VALIDATION", code)
}

func TestStockIn_HTTP_SinToken_401(t *testing.T) {
	app, _ := buildStockApp(100)

	req := httptest.NewRequest(http.MethodPost, "/api/stock/in",
		strings.NewReader(`{"product_id":"x","quantity":1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUpdateStockIn_HTTP_RegistroInexistente_404(t *testing.T) {
	app, _ := buildStockApp(100)
	token := tokenForRole(t, "bodeguero")

	req := httptest.NewRequest(http.MethodPut, "/api/stock/in/no-existe",
		strings.NewReader(`{"quantity":5}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
