package cmd

import (
	"transfers/internal/adapters/out/postgres"
	"transfers/internal/core/application/usecases/commands"
	"transfers/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderWarehouseUoWFactory = FuncOrderWarehouseUoWFactory(func() commands.OrderWarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddLineCommandHandler() commands.AddLineCommandHandler {
	var f commands.OrderCatalogUoWFactory = FuncOrderCatalogUoWFactory(func() commands.OrderCatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddLineCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateLineQtyCommandHandler() commands.UpdateLineQtyCommandHandler {
	return commands.NewUpdateLineQtyCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteLineCommandHandler() commands.DeleteLineCommandHandler {
	return commands.NewDeleteLineCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetLineNoteCommandHandler() commands.SetLineNoteCommandHandler {
	return commands.NewSetLineNoteCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSendOrderCommandHandler() commands.SendOrderCommandHandler {
	return commands.NewSendOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddPreparedCommandHandler() commands.AddPreparedCommandHandler {
	return commands.NewAddPreparedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCloseOrderCommandHandler() commands.CloseOrderCommandHandler {
	return commands.NewCloseOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSplitResidualCommandHandler() commands.SplitResidualCommandHandler {
	return commands.NewSplitResidualCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkShippedCommandHandler() commands.MarkShippedCommandHandler {
	return commands.NewMarkShippedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReapStaleDraftsCommandHandler() commands.ReapStaleDraftsCommandHandler {
	return commands.NewReapStaleDraftsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdjustStockCommandHandler() commands.AdjustStockCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdjustStockCommandHandler(f)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListWarehousesQueryHandler() queries.ListWarehousesQueryHandler {
	return queries.NewListWarehousesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockQueryHandler() queries.GetStockQueryHandler {
	return queries.NewGetStockQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShippedItemsQueryHandler() queries.ListShippedItemsQueryHandler {
	return queries.NewListShippedItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatsQueryHandler() queries.GetStatsQueryHandler {
	return queries.NewGetStatsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderCatalogUoWFactory func() commands.OrderCatalogUoW

func (f FuncOrderCatalogUoWFactory) Create() commands.OrderCatalogUoW {
	return f()
}

type FuncOrderWarehouseUoWFactory func() commands.OrderWarehouseUoW

func (f FuncOrderWarehouseUoWFactory) Create() commands.OrderWarehouseUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}
