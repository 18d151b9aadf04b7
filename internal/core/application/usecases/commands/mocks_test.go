package commands_test

import (
	"context"
	"testing"
	"time"

	"transfers/internal/core/application/usecases/commands"
	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/core/domain/model/order"
	"transfers/internal/core/domain/model/product"
	"transfers/internal/core/domain/model/stock"
	"transfers/internal/core/domain/model/warehouse"
	"transfers/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByLineID(ctx context.Context, lineID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, lineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByFamily(ctx context.Context, year, sequence, suffix int) (*order.Order, error) {
	args := m.Called(ctx, year, sequence, suffix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) NextSequenceNumber(ctx context.Context, year int) (int, error) {
	args := m.Called(ctx, year)
	return args.Int(0), args.Error(1)
}
func (m *MockOrderRepository) SiblingSuffixes(ctx context.Context, year, sequence int) ([]int, error) {
	args := m.Called(ctx, year, sequence)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}
func (m *MockOrderRepository) CodeInUse(ctx context.Context, code string, excludeID kernel.UUID) (bool, error) {
	args := m.Called(ctx, code, excludeID)
	return args.Bool(0), args.Error(1)
}
func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockOrderRepository) GetStaleDrafts(ctx context.Context, before time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) GetByCode(ctx context.Context, code string) (*product.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Warehouse), args.Error(1)
}
func (m *MockWarehouseRepository) GetAll(ctx context.Context) ([]*warehouse.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*warehouse.Warehouse), args.Error(1)
}

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) Get(ctx context.Context, productCode string, warehouseID kernel.UUID) (*stock.Level, error) {
	args := m.Called(ctx, productCode, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Level), args.Error(1)
}
func (m *MockStockRepository) Save(ctx context.Context, level *stock.Level) error {
	args := m.Called(ctx, level)
	return args.Error(0)
}
func (m *MockStockRepository) RecordMovement(ctx context.Context, movement *stock.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderCatalogUoW struct{ MockOrderUoW }

func (m *MockOrderCatalogUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockOrderCatalogUoWFactory struct{ mock.Mock }

func (m *MockOrderCatalogUoWFactory) Create() commands.OrderCatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderCatalogUoW)
}

type MockOrderWarehouseUoW struct{ MockOrderUoW }

func (m *MockOrderWarehouseUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

type MockOrderWarehouseUoWFactory struct{ mock.Mock }

func (m *MockOrderWarehouseUoWFactory) Create() commands.OrderWarehouseUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderWarehouseUoW)
}

type MockStockUoW struct{ mock.Mock }

func (m *MockStockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockStockUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

type MockStockUoWFactory struct{ mock.Mock }

func (m *MockStockUoWFactory) Create() commands.StockUoW {
	args := m.Called()
	return args.Get(0).(commands.StockUoW)
}

func newDraftOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), 2026, 1, kernel.NewUUID(), kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return o
}

func newDraftOrderWithLine(t *testing.T, productCode string, qty int) (*order.Order, *order.Line) {
	t.Helper()
	o := newDraftOrder(t)
	_, line, err := o.AddLine(kernel.NewUUID(), productCode, "desc "+productCode, qty, time.Now())
	require.NoError(t, err)
	return o, line
}

func newSentOrder(t *testing.T, productCode string, qty int) (*order.Order, *order.Line) {
	t.Helper()
	o, line := newDraftOrderWithLine(t, productCode, qty)
	require.NoError(t, o.MarkSent("ops@example.com", time.Now()))
	return o, line
}

func newClosedOrder(t *testing.T, productCode string, requested, prepared int) (*order.Order, *order.Line) {
	t.Helper()
	o, line := newSentOrder(t, productCode, requested)
	if prepared > 0 {
		_, _, err := o.AddPrepared(productCode, prepared, time.Now())
		require.NoError(t, err)
	}
	require.NoError(t, o.MarkClosed(o.BaseCode()+".0", time.Now()))
	return o, line
}
