package http

import (
	"net/http"
	"strconv"

	"transfers/internal/core/application/usecases/commands"
	"transfers/internal/core/application/usecases/queries"
	"transfers/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler   commands.CreateOrderCommandHandler
	deleteOrderHandler   commands.DeleteOrderCommandHandler
	sendOrderHandler     commands.SendOrderCommandHandler
	closeOrderHandler    commands.CloseOrderCommandHandler
	markShippedHandler   commands.MarkShippedCommandHandler
	addLineHandler       commands.AddLineCommandHandler
	updateLineQtyHandler commands.UpdateLineQtyCommandHandler
	deleteLineHandler    commands.DeleteLineCommandHandler
	setLineNoteHandler   commands.SetLineNoteCommandHandler
	addPreparedHandler   commands.AddPreparedCommandHandler
	splitResidualHandler commands.SplitResidualCommandHandler
	adjustStockHandler   commands.AdjustStockCommandHandler

	listOrdersHandler       queries.ListOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	listWarehousesHandler   queries.ListWarehousesQueryHandler
	getStockHandler         queries.GetStockQueryHandler
	listShippedItemsHandler queries.ListShippedItemsQueryHandler
	getStatsHandler         queries.GetStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	sendOrderHandler commands.SendOrderCommandHandler,
	closeOrderHandler commands.CloseOrderCommandHandler,
	markShippedHandler commands.MarkShippedCommandHandler,
	addLineHandler commands.AddLineCommandHandler,
	updateLineQtyHandler commands.UpdateLineQtyCommandHandler,
	deleteLineHandler commands.DeleteLineCommandHandler,
	setLineNoteHandler commands.SetLineNoteCommandHandler,
	addPreparedHandler commands.AddPreparedCommandHandler,
	splitResidualHandler commands.SplitResidualCommandHandler,
	adjustStockHandler commands.AdjustStockCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listWarehousesHandler queries.ListWarehousesQueryHandler,
	getStockHandler queries.GetStockQueryHandler,
	listShippedItemsHandler queries.ListShippedItemsQueryHandler,
	getStatsHandler queries.GetStatsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		deleteOrderHandler:      deleteOrderHandler,
		sendOrderHandler:        sendOrderHandler,
		closeOrderHandler:       closeOrderHandler,
		markShippedHandler:      markShippedHandler,
		addLineHandler:          addLineHandler,
		updateLineQtyHandler:    updateLineQtyHandler,
		deleteLineHandler:       deleteLineHandler,
		setLineNoteHandler:      setLineNoteHandler,
		addPreparedHandler:      addPreparedHandler,
		splitResidualHandler:    splitResidualHandler,
		adjustStockHandler:      adjustStockHandler,
		listOrdersHandler:       listOrdersHandler,
		getOrderHandler:         getOrderHandler,
		listWarehousesHandler:   listWarehousesHandler,
		getStockHandler:         getStockHandler,
		listShippedItemsHandler: listShippedItemsHandler,
		getStatsHandler:         getStatsHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/shipped-items", s.ListShippedItems)
	api.GET("/orders/:id", s.GetOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/send", s.SendOrder)
	api.POST("/orders/:id/close", s.CloseOrder)
	api.POST("/orders/:id/ship", s.MarkShipped)
	api.POST("/orders/:id/lines", s.AddLine)
	api.POST("/orders/:id/prepared", s.AddPrepared)
	api.POST("/orders/:id/lines/:lineId/split", s.SplitResidual)

	api.PATCH("/lines/:id", s.UpdateLineQty)
	api.DELETE("/lines/:id", s.DeleteLine)
	api.PATCH("/lines/:id/note", s.SetLineNote)

	api.GET("/warehouses", s.ListWarehouses)
	api.GET("/stock", s.GetStock)
	api.POST("/stock/delta", s.AdjustStock)
	api.GET("/stats", s.GetStats)

	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	from, err := kernel.UUIDFromString(req.FromWarehouseID)
	if err != nil {
		return badRequest(ctx, "invalid fromWarehouseId")
	}
	to, err := kernel.UUIDFromString(req.ToWarehouseID)
	if err != nil {
		return badRequest(ctx, "invalid toWarehouseId")
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), from, to)
	if err != nil {
		return mapError(ctx, err)
	}

	o, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(o))
}

// ListOrders handles GET /api/v1/orders with optional state, year and q
// filters.
func (s *Server) ListOrders(ctx echo.Context) error {
	year := 0
	if raw := ctx.QueryParam("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "year must be a number")
		}
		year = parsed
	}

	query, err := queries.NewListOrdersQuery(ctx.QueryParam("state"), year, ctx.QueryParam("q"))
	if err != nil {
		return mapError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]orderListItem, len(orders))
	for i, o := range orders {
		response[i] = orderListItemFromQuery(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailFromQuery(detail))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SendOrder handles POST /api/v1/orders/:id/send. Re-sending an already sent
// order refreshes the recipient and the sent timestamp.
func (s *Server) SendOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req sendOrderRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSendOrderCommand(orderID, req.Email)
	if err != nil {
		return mapError(ctx, err)
	}

	o, err := s.sendOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(o))
}

// CloseOrder handles POST /api/v1/orders/:id/close.
func (s *Server) CloseOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCloseOrderCommand(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	result, err := s.closeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	response := closeOrderResponse{
		ClosedCode:    result.ClosedCode,
		AlreadyClosed: result.AlreadyClosed,
	}
	if result.Successor != nil {
		successor := orderFromDomain(result.Successor)
		response.Successor = &successor
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkShipped handles POST /api/v1/orders/:id/ship. Repeated calls keep the
// original shipment timestamp.
func (s *Server) MarkShipped(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewMarkShippedCommand(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	result, err := s.markShippedHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, markShippedResponse{
		Order:          orderFromDomain(result.Order),
		AlreadyShipped: result.AlreadyShipped,
	})
}

// AddLine handles POST /api/v1/orders/:id/lines.
func (s *Server) AddLine(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req addLineRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAddLineCommand(orderID, req.ProductCode, req.Qty)
	if err != nil {
		return mapError(ctx, err)
	}

	result, err := s.addLineHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, addLineResponseFromResult(result))
}

// UpdateLineQty handles PATCH /api/v1/lines/:id.
func (s *Server) UpdateLineQty(ctx echo.Context) error {
	lineID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid line id")
	}

	var req updateLineQtyRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateLineQtyCommand(lineID, req.Qty)
	if err != nil {
		return mapError(ctx, err)
	}

	line, err := s.updateLineQtyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, lineFromDomain(line))
}

// DeleteLine handles DELETE /api/v1/lines/:id.
func (s *Server) DeleteLine(ctx echo.Context) error {
	lineID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid line id")
	}

	cmd, err := commands.NewDeleteLineCommand(lineID)
	if err != nil {
		return mapError(ctx, err)
	}

	if err = s.deleteLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetLineNote handles PATCH /api/v1/lines/:id/note. An empty note clears the
// existing one. Notes are editable in every order state.
func (s *Server) SetLineNote(ctx echo.Context) error {
	lineID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid line id")
	}

	var req setLineNoteRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSetLineNoteCommand(lineID, req.Note)
	if err != nil {
		return mapError(ctx, err)
	}

	line, err := s.setLineNoteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, lineFromDomain(line))
}

// AddPrepared handles POST /api/v1/orders/:id/prepared, recording a scan
// against the line for the given product.
func (s *Server) AddPrepared(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req addPreparedRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAddPreparedCommand(orderID, req.ProductCode, req.Delta)
	if err != nil {
		return mapError(ctx, err)
	}

	result, err := s.addPreparedHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, addPreparedResponse{
		Line:    lineFromDomain(result.Line),
		Started: result.Started,
		State:   result.Order.Status().WireName(),
	})
}

// SplitResidual handles POST /api/v1/orders/:id/lines/:lineId/split.
func (s *Server) SplitResidual(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}
	lineID, err := pathUUID(ctx, "lineId")
	if err != nil {
		return badRequest(ctx, "invalid line id")
	}

	cmd, err := commands.NewSplitResidualCommand(orderID, lineID)
	if err != nil {
		return mapError(ctx, err)
	}

	result, err := s.splitResidualHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, splitResidualResponse{
		Target:        orderFromDomain(result.Target),
		TargetCreated: result.TargetCreated,
		Line:          lineFromDomain(result.Line),
		QtyDelivered:  result.QtyDelivered,
		QtyResidual:   result.QtyResidual,
	})
}

// ListWarehouses handles GET /api/v1/warehouses.
func (s *Server) ListWarehouses(ctx echo.Context) error {
	warehouses, err := s.listWarehousesHandler.Handle(
		ctx.Request().Context(),
		queries.NewListWarehousesQuery(),
	)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]warehouseResponse, len(warehouses))
	for i, w := range warehouses {
		response[i] = warehouseResponse{ID: w.ID.String(), Name: w.Name}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListShippedItems handles GET /api/v1/orders/shipped-items.
func (s *Server) ListShippedItems(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("take"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "take must be a number")
		}
		limit = parsed
	}

	query := queries.NewListShippedItemsQuery(ctx.QueryParam("q"), limit)

	items, err := s.listShippedItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]shippedItemResponse, len(items))
	for i, item := range items {
		response[i] = shippedItemFromQuery(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStats handles GET /api/v1/stats.
func (s *Server) GetStats(ctx echo.Context) error {
	var warehouseID *kernel.UUID
	if raw := ctx.QueryParam("warehouseId"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "invalid warehouseId")
		}
		warehouseID = &parsed
	}

	query, err := queries.NewGetStatsQuery(ctx.QueryParam("period"), warehouseID)
	if err != nil {
		return mapError(ctx, err)
	}

	stats, err := s.getStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statsFromQuery(stats))
}

// GetStock handles GET /api/v1/stock.
func (s *Server) GetStock(ctx echo.Context) error {
	warehouseID, err := kernel.UUIDFromString(ctx.QueryParam("warehouseId"))
	if err != nil {
		return badRequest(ctx, "invalid warehouseId")
	}

	query, err := queries.NewGetStockQuery(ctx.QueryParam("productCode"), warehouseID)
	if err != nil {
		return mapError(ctx, err)
	}

	level, err := s.getStockHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stockQueryResponse{
		ProductCode: level.ProductCode,
		WarehouseID: level.WarehouseID.String(),
		Quantity:    level.Quantity,
		UpdatedAt:   level.UpdatedAt,
	})
}

// AdjustStock handles POST /api/v1/stock/delta.
func (s *Server) AdjustStock(ctx echo.Context) error {
	var req adjustStockRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	warehouseID, err := kernel.UUIDFromString(req.WarehouseID)
	if err != nil {
		return badRequest(ctx, "invalid warehouseId")
	}

	cmd, err := commands.NewAdjustStockCommand(req.ProductCode, warehouseID, req.Delta)
	if err != nil {
		return mapError(ctx, err)
	}

	level, err := s.adjustStockHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stockLevelResponse{
		ProductCode: level.ProductCode(),
		WarehouseID: level.WarehouseID().String(),
		Quantity:    level.Quantity(),
		UpdatedAt:   level.UpdatedAt(),
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}
