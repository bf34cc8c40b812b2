package sale_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/electrostock-api/internal/application/dto"
	"github.com/jhoicas/electrostock-api/internal/application/sale"
	"github.com/jhoicas/electrostock-api/internal/domain"
	"github.com/jhoicas/electrostock-api/internal/domain/entity"
	"github.com/jhoicas/electrostock-api/internal/domain/repository"
)

// Fakes en memoria con snapshot/restore para emular el rollback transaccional.

type fakeState struct {
	products map[string]*entity.Product
	sales    map[string]*entity.Sale
}

func newFakeState() *fakeState {
	return &fakeState{
		products: map[string]*entity.Product{},
		sales:    map[string]*entity.Sale{},
	}
}

func (s *fakeState) clone() *fakeState {
	c := newFakeState()
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for id, v := range s.sales {
		cv := *v
		c.sales[id] = &cv
	}
	return c
}

type fakeProductRepo struct{ s *fakeState }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) ListAll() ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) Search(name, typeID string) ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) Update(p *entity.Product) error { return nil }

func (r *fakeProductRepo) Delete(id string) error { return nil }

func (r *fakeProductRepo) AdjustStock(productID string, delta int) error {
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

func (r *fakeProductRepo) ListAtOrBelowStock(threshold int) ([]*entity.Product, error) {
	return nil, nil
}

type fakeSaleRepo struct{ s *fakeState }

var _ repository.SaleRepository = (*fakeSaleRepo)(nil)

func (r *fakeSaleRepo) Create(v *entity.Sale) error {
	cv := *v
	r.s.sales[v.ID] = &cv
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	v, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	cv := *v
	return &cv, nil
}

func (r *fakeSaleRepo) UpdateQuantity(id string, quantity int, totalPrice decimal.Decimal) error {
	v, ok := r.s.sales[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.Quantity = quantity
	v.TotalPrice = totalPrice
	return nil
}

func (r *fakeSaleRepo) Delete(id string) error {
	if _, ok := r.s.sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.sales, id)
	return nil
}

func (r *fakeSaleRepo) ListRecords() ([]*entity.SaleRecord, error) {
	var out []*entity.SaleRecord
	for _, v := range r.s.sales {
		out = append(out, &entity.SaleRecord{
			ID:         v.ID,
			Quantity:   v.Quantity,
			TotalPrice: v.TotalPrice,
			SaleTime:   v.SaleTime,
		})
	}
	return out, nil
}

type fakeTxRunner struct{ s *fakeState }

var _ sale.TxRunner = (*fakeTxRunner)(nil)

func (tr *fakeTxRunner) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	snap := tr.s.clone()
	err := fn(&fakeProductRepo{s: tr.s}, &fakeSaleRepo{s: tr.s})
	if err != nil {
		tr.s.products = snap.products
		tr.s.sales = snap.sales
	}
	return err
}

const (
	productID  = "p-nevera"
	salesmanID = "u-vendedor"
)

func newFixture(stockInicial int, precio string) (*sale.SaleUseCase, *fakeState) {
	s := newFakeState()
	s.products[productID] = &entity.Product{
		ID:        productID,
		Name:      "Nevera 300L",
		Price:     decimal.RequireFromString(precio),
		Stock:     stockInicial,
		Status:    entity.ProductStatusActive,
		CreatedAt: time.Now(),
	}
	uc := sale.NewSaleUseCase(&fakeTxRunner{s: s}, &fakeProductRepo{s: s}, &fakeSaleRepo{s: s})
	return uc, s
}

func firstSaleID(s *fakeState) string {
	for id := range s.sales {
		return id
	}
	return ""
}

func TestSell_DescuentaStockYCongelaTotal(t *testing.T) {
	uc, s := newFixture(110, "50")

	err := uc.Sell(context.Background(), salesmanID, dto.SellRequest{ProductID: productID, Quantity: 5})
	require.NoError(t, err)

	assert.Equal(t, 105, s.products[productID].Stock)
	require.Len(t, s.sales, 1)
	v := s.sales[firstSaleID(s)]
	assert.True(t, decimal.RequireFromString("250").Equal(v.TotalPrice),
		"total esperado 250 (50 × 5), obtenido %s", v.TotalPrice)
	assert.Equal(t, salesmanID, v.SalesmanID)
}

func TestSell_StockInsuficiente_NoMutaNada(t *testing.T) {
	uc, s := newFixture(3, "50")

	err := uc.Sell(context.Background(), salesmanID, dto.SellRequest{ProductID: productID, Quantity: 5})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 3, insufficient.Current)
	assert.Equal(t, 5, insufficient.Requested)

	assert.Equal(t, 3, s.products[productID].Stock)
	assert.Empty(t, s.sales, "no debe quedar registro de la venta fallida")
}

func TestSell_CantidadInvalida(t *testing.T) {
	uc, s := newFixture(10, "50")

	err := uc.Sell(context.Background(), salesmanID, dto.SellRequest{ProductID: productID, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, 10, s.products[productID].Stock)
}

func TestSell_ProductoInexistente(t *testing.T) {
	uc, _ := newFixture(10, "50")

	err := uc.Sell(context.Background(), salesmanID, dto.SellRequest{ProductID: "no-existe", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateSale_CompensaStockYRecalculaConPrecioVigente(t *testing.T) {
	uc, s := newFixture(110, "50")
	require.NoError(t, uc.Sell(context.Background(), salesmanID, dto.SellRequest{ProductID: productID, Quantity: 5}))
	id := firstSaleID(s)
	require.Equal(t, 105, s.products[productID].Stock)

	// el precio de catálogo cambió después de la venta original
	s.products[productID].Price = decimal.RequireFromString("60")

	// 5 → 3: se devuelven 2 al stock y el total usa el precio vigente
	require.NoError(t, uc.UpdateSale(context.Background(), id, 3))
	assert.Equal(t, 107, s.products[productID].Stock)
	v := s.sales[id]
	assert.Equal(t, 3, v.Quantity)
	assert.True(t, decimal.RequireFromString("180").Equal(v.TotalPrice),
		"el total se recalcula con el precio vigente (60 × 3), obtenido %s", v.TotalPrice)
}

func TestUpdateSale_AumentoSinStock_Falla(t *testing.T) {
	uc, s := newFixture(7, "50")
	require.NoError(t, uc.Sell(context.Background(), salesmanID, dto.SellRequest{ProductID: productID, Quantity: 5}))
	id := firstSaleID(s)
	require.Equal(t, 2, s.products[productID].Stock)

	// 5 → 10 requiere descontar 5 más pero solo quedan 2
	err := uc.UpdateSale(context.Background(), id, 10)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 2, s.products[productID].Stock)
	assert.Equal(t, 5, s.sales[id].Quantity)
}

func TestUpdateSale_PrecioNoCambia_TotalSigueElPrecioVigente(t *testing.T) {
	uc, s := newFixture(20, "25.50")
	require.NoError(t, uc.Sell(context.Background(), salesmanID, dto.SellRequest{ProductID: productID, Quantity: 4}))
	id := firstSaleID(s)

	require.NoError(t, uc.UpdateSale(context.Background(), id, 2))
	v := s.sales[id]
	assert.True(t, decimal.RequireFromString("51").Equal(v.TotalPrice),
		"total 25.50 × 2 = 51, obtenido %s", v.TotalPrice)
}

func TestDeleteSale_DevuelveStock(t *testing.T) {
	uc, s := newFixture(110, "50")
	require.NoError(t, uc.Sell(context.Background(), salesmanID, dto.SellRequest{ProductID: productID, Quantity: 5}))
	id := firstSaleID(s)
	require.Equal(t, 105, s.products[productID].Stock)

	require.NoError(t, uc.DeleteSale(context.Background(), id))
	assert.Equal(t, 110, s.products[productID].Stock)
	assert.Empty(t, s.sales)
}

func TestDeleteSale_VentaInexistente(t *testing.T) {
	uc, _ := newFixture(10, "50")
	err := uc.DeleteSale(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
