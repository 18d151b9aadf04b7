package queries_test

import (
	"context"
	"testing"
	"time"

	"transfers/internal/adapters/out/postgres/orderrepo"
	"transfers/internal/adapters/out/postgres/stockrepo"
	"transfers/internal/adapters/out/postgres/warehouserepo"
	"transfers/internal/core/application/usecases/queries"
	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/core/domain/model/order"
	"transfers/internal/core/domain/model/stock"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type QueriesTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository

	listHandler         queries.ListOrdersQueryHandler
	getHandler          queries.GetOrderQueryHandler
	warehousesHandler   queries.ListWarehousesQueryHandler
	stockHandler        queries.GetStockQueryHandler
	shippedItemsHandler queries.ListShippedItemsQueryHandler
	statsHandler        queries.GetStatsQueryHandler
}

func (s *QueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	s.Require().NoError(err)
	s.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&warehouserepo.WarehouseDTO{},
		&stockrepo.StockLevelDTO{},
		&stockrepo.StockMovementDTO{},
	)
	s.Require().NoError(err)

	s.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	s.listHandler = queries.NewListOrdersQueryHandler(db)
	s.getHandler = queries.NewGetOrderQueryHandler(db)
	s.warehousesHandler = queries.NewListWarehousesQueryHandler(db)
	s.stockHandler = queries.NewGetStockQueryHandler(db)
	s.shippedItemsHandler = queries.NewListShippedItemsQueryHandler(db)
	s.statsHandler = queries.NewGetStatsQueryHandler(db)
}

func (s *QueriesTestSuite) TearDownSuite() {
	if s.container != nil {
		err := s.container.Terminate(context.Background())
		s.Require().NoError(err)
	}
}

func (s *QueriesTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec(
		"TRUNCATE TABLE orders, order_lines, warehouses, stock_levels, stock_movements CASCADE",
	).Error)
}

func (s *QueriesTestSuite) newOrder(year, sequence int) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), year, sequence, kernel.NewUUID(), kernel.NewUUID(), time.Now())
	s.Require().NoError(err)
	return o
}

func (s *QueriesTestSuite) addLine(o *order.Order, code string, qty int) {
	_, _, err := o.AddLine(kernel.NewUUID(), code, "desc "+code, qty, time.Now())
	s.Require().NoError(err)
}

func (s *QueriesTestSuite) TestListOrders_EmptyDatabase() {
	q, err := queries.NewListOrdersQuery("", 0, "")
	s.Require().NoError(err)

	result, err := s.listHandler.Handle(context.Background(), q)
	s.Require().NoError(err)
	s.NotNil(result)
	s.Empty(result)
}

func (s *QueriesTestSuite) TestListOrders_FamilyOrdering() {
	ctx := context.Background()

	older := s.newOrder(2025, 7)
	root := s.newOrder(2026, 3)
	earlier := s.newOrder(2026, 2)
	for _, o := range []*order.Order{older, root, earlier} {
		s.Require().NoError(s.orderRepo.Add(ctx, o))
	}

	q, err := queries.NewListOrdersQuery("", 0, "")
	s.Require().NoError(err)

	result, err := s.listHandler.Handle(ctx, q)
	s.Require().NoError(err)
	s.Require().Len(result, 3)
	// year desc, then sequence desc
	s.Equal(root.Code(), result[0].Code)
	s.Equal(earlier.Code(), result[1].Code)
	s.Equal(older.Code(), result[2].Code)
}

func (s *QueriesTestSuite) TestListOrders_Filters() {
	ctx := context.Background()

	draft := s.newOrder(2026, 1)
	s.addLine(draft, "SKU-1", 5)

	sent := s.newOrder(2026, 2)
	s.addLine(sent, "SKU-2", 3)
	s.Require().NoError(sent.MarkSent("north@example.com", time.Now()))

	lastYear := s.newOrder(2025, 1)

	for _, o := range []*order.Order{draft, sent, lastYear} {
		s.Require().NoError(s.orderRepo.Add(ctx, o))
	}

	byState, err := queries.NewListOrdersQuery("SENT", 0, "")
	s.Require().NoError(err)
	result, err := s.listHandler.Handle(ctx, byState)
	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal(sent.Code(), result[0].Code)
	s.Equal("SENT", result[0].State)
	s.Equal(1, result[0].LineCount)

	byYear, err := queries.NewListOrdersQuery("", 2025, "")
	s.Require().NoError(err)
	result, err = s.listHandler.Handle(ctx, byYear)
	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal(lastYear.Code(), result[0].Code)

	byText, err := queries.NewListOrdersQuery("", 0, "north@")
	s.Require().NoError(err)
	result, err = s.listHandler.Handle(ctx, byText)
	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal(sent.Code(), result[0].Code)
}

func (s *QueriesTestSuite) TestGetOrder_DetailWithLineStats() {
	ctx := context.Background()

	o := s.newOrder(2026, 10)
	s.addLine(o, "SKU-1", 8)
	s.addLine(o, "SKU-2", 4)
	s.addLine(o, "SKU-3", 2)
	s.Require().NoError(o.MarkSent("ops@example.com", time.Now()))
	_, _, err := o.AddPrepared("SKU-1", 8, time.Now())
	s.Require().NoError(err)
	_, _, err = o.AddPrepared("SKU-2", 1, time.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.orderRepo.Add(ctx, o))

	q, err := queries.NewGetOrderQuery(o.ID())
	s.Require().NoError(err)

	detail, err := s.getHandler.Handle(ctx, q)
	s.Require().NoError(err)
	s.Equal(o.Code(), detail.Code)
	s.Equal("IN_PROGRESS", detail.State)
	s.Require().Len(detail.Lines, 3)
	s.Equal(1, detail.LinesDone)
	s.Equal(1, detail.LinesPartial)
	s.Equal(1, detail.LinesNotStarted)
	s.False(detail.FullyPrepared)

	byCode := make(map[string]queries.GetOrderLineResponse)
	for _, line := range detail.Lines {
		byCode[line.ProductCode] = line
	}
	s.Equal("DONE", byCode["SKU-1"].Status)
	s.Equal(0, byCode["SKU-1"].Residual)
	s.Equal("PARTIAL", byCode["SKU-2"].Status)
	s.Equal(3, byCode["SKU-2"].Residual)
	s.Equal("NOT_STARTED", byCode["SKU-3"].Status)
	s.Equal(2, byCode["SKU-3"].Residual)
}

func (s *QueriesTestSuite) TestGetOrder_NotFound() {
	q, err := queries.NewGetOrderQuery(kernel.NewUUID())
	s.Require().NoError(err)

	_, err = s.getHandler.Handle(context.Background(), q)
	s.Require().Error(err)
}

func (s *QueriesTestSuite) TestListWarehouses_OrderedByName() {
	for _, name := range []string{"South", "Central", "North"} {
		dto := warehouserepo.WarehouseDTO{ID: kernel.NewUUID().Bytes(), Name: name}
		s.Require().NoError(s.db.Create(&dto).Error)
	}

	result, err := s.warehousesHandler.Handle(context.Background(), queries.NewListWarehousesQuery())
	s.Require().NoError(err)
	s.Require().Len(result, 3)
	s.Equal("Central", result[0].Name)
	s.Equal("North", result[1].Name)
	s.Equal("South", result[2].Name)
}

func (s *QueriesTestSuite) createWarehouse(id kernel.UUID, name string) {
	dto := warehouserepo.WarehouseDTO{ID: id.Bytes(), Name: name}
	s.Require().NoError(s.db.Create(&dto).Error)
}

func (s *QueriesTestSuite) TestListShippedItems_OnlyShippedOrders() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	shipped := s.newOrder(2026, 1)
	s.createWarehouse(shipped.FromWarehouseID(), "North")
	s.createWarehouse(shipped.ToWarehouseID(), "South")
	s.addLine(shipped, "SKU-1", 8)
	s.addLine(shipped, "SKU-2", 4)
	s.Require().NoError(shipped.MarkSent("ops@example.com", now))
	_, _, err := shipped.AddPrepared("SKU-1", 8, now)
	s.Require().NoError(err)
	s.Require().NoError(shipped.MarkClosed(shipped.Code()+".0", now))
	_, err = shipped.MarkShipped(now)
	s.Require().NoError(err)

	open := s.newOrder(2026, 2)
	s.addLine(open, "SKU-3", 2)

	s.Require().NoError(s.orderRepo.Add(ctx, shipped))
	s.Require().NoError(s.orderRepo.Add(ctx, open))

	items, err := s.shippedItemsHandler.Handle(ctx, queries.NewListShippedItemsQuery("", 0))
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	for _, item := range items {
		s.Equal(shipped.Code(), item.OrderCode)
		s.Equal("North", item.FromWarehouse)
		s.Equal("South", item.ToWarehouse)
		s.WithinDuration(now, item.ShippedAt, time.Second)
	}
}

func (s *QueriesTestSuite) TestListShippedItems_ShippedQtyAndSearch() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	o := s.newOrder(2026, 5)
	s.addLine(o, "SKU-1", 8)
	s.addLine(o, "SKU-2", 4)
	s.Require().NoError(o.MarkSent("ops@example.com", now))
	_, _, err := o.AddPrepared("SKU-1", 8, now)
	s.Require().NoError(err)
	_, _, err = o.AddPrepared("SKU-2", 1, now)
	s.Require().NoError(err)
	s.Require().NoError(o.MarkClosed(o.Code()+".0", now))
	_, err = o.MarkShipped(now)
	s.Require().NoError(err)
	s.Require().NoError(s.orderRepo.Add(ctx, o))

	items, err := s.shippedItemsHandler.Handle(ctx, queries.NewListShippedItemsQuery("sku-2", 0))
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal("SKU-2", items[0].ProductCode)
	s.Equal(4, items[0].QtyRequested)
	s.Equal(1, items[0].QtyShipped)
	s.Equal("desc SKU-2", items[0].Description)

	byCode, err := s.shippedItemsHandler.Handle(ctx, queries.NewListShippedItemsQuery(o.Code(), 0))
	s.Require().NoError(err)
	s.Len(byCode, 2)
}

func (s *QueriesTestSuite) recordMovement(code string, warehouseID kernel.UUID, before, after int, at time.Time) {
	movement, err := stock.NewMovement(kernel.NewUUID(), code, warehouseID, before, after, at)
	s.Require().NoError(err)
	repo := stockrepo.NewGormStockRepository(s.db)
	s.Require().NoError(repo.RecordMovement(context.Background(), movement))
}

func (s *QueriesTestSuite) TestGetStats_CountsAndRecentMovements() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	w1 := kernel.NewUUID()
	w2 := kernel.NewUUID()
	s.createWarehouse(w1, "North")
	s.createWarehouse(w2, "South")

	s.recordMovement("SKU-1", w1, 0, 5, now.Add(-3*time.Minute))
	s.recordMovement("SKU-1", w1, 5, 3, now.Add(-2*time.Minute))
	s.recordMovement("SKU-2", w2, 0, 7, now.Add(-time.Minute))
	s.recordMovement("SKU-9", w1, 0, 1, now.AddDate(-1, 0, 0))

	q, err := queries.NewGetStatsQuery("year", nil)
	s.Require().NoError(err)

	stats, err := s.statsHandler.Handle(ctx, q)
	s.Require().NoError(err)
	s.Equal(queries.StatsPeriodYear, stats.Period)
	s.Equal(3, stats.Movements)
	s.Equal(2, stats.ProductsTouched)
	s.Require().Len(stats.RecentMovements, 3)
	s.Equal("SKU-2", stats.RecentMovements[0].ProductCode)
	s.Equal("South", stats.RecentMovements[0].WarehouseName)
	s.Equal(-2, stats.RecentMovements[1].Delta)
	s.Equal("SKU-1", stats.RecentMovements[2].ProductCode)
}

func (s *QueriesTestSuite) TestGetStats_WarehouseFilter() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	w1 := kernel.NewUUID()
	w2 := kernel.NewUUID()
	s.createWarehouse(w1, "North")
	s.createWarehouse(w2, "South")

	s.recordMovement("SKU-1", w1, 0, 5, now.Add(-2*time.Minute))
	s.recordMovement("SKU-1", w1, 5, 6, now.Add(-time.Minute))
	s.recordMovement("SKU-2", w2, 0, 7, now)

	q, err := queries.NewGetStatsQuery("year", &w1)
	s.Require().NoError(err)

	stats, err := s.statsHandler.Handle(ctx, q)
	s.Require().NoError(err)
	s.Equal(2, stats.Movements)
	s.Equal(1, stats.ProductsTouched)
	s.Require().Len(stats.RecentMovements, 2)
	for _, m := range stats.RecentMovements {
		s.True(m.WarehouseID.IsEqual(w1))
	}
}

func (s *QueriesTestSuite) TestGetStock_ExistingCell() {
	warehouseID := kernel.NewUUID()
	updated := time.Now().UTC().Truncate(time.Microsecond)
	dto := stockrepo.StockLevelDTO{
		ProductCode: "SKU-1",
		WarehouseID: warehouseID.Bytes(),
		Quantity:    17,
		UpdatedAt:   updated,
	}
	s.Require().NoError(s.db.Create(&dto).Error)

	q, err := queries.NewGetStockQuery("SKU-1", warehouseID)
	s.Require().NoError(err)

	level, err := s.stockHandler.Handle(context.Background(), q)
	s.Require().NoError(err)
	s.Equal("SKU-1", level.ProductCode)
	s.True(level.WarehouseID.IsEqual(warehouseID))
	s.Equal(17, level.Quantity)
	s.Require().NotNil(level.UpdatedAt)
	s.Equal(updated, level.UpdatedAt.UTC())
}

func (s *QueriesTestSuite) TestGetStock_MissingCellReadsZero() {
	q, err := queries.NewGetStockQuery("SKU-NEVER", kernel.NewUUID())
	s.Require().NoError(err)

	level, err := s.stockHandler.Handle(context.Background(), q)
	s.Require().NoError(err)
	s.Equal(0, level.Quantity)
	s.Nil(level.UpdatedAt)
}

func TestQueriesTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(QueriesTestSuite))
}
