package http

import (
	"time"

	"transfers/internal/core/application/usecases/commands"
	"transfers/internal/core/application/usecases/queries"
	"transfers/internal/core/domain/model/order"
)

type createOrderRequest struct {
	FromWarehouseID string `json:"fromWarehouseId" validate:"required"`
	ToWarehouseID   string `json:"toWarehouseId" validate:"required"`
}

type sendOrderRequest struct {
	Email string `json:"email" validate:"required"`
}

type addLineRequest struct {
	ProductCode string `json:"productCode" validate:"required"`
	Qty         int    `json:"qty" validate:"required,gt=0"`
}

type updateLineQtyRequest struct {
	Qty int `json:"qty" validate:"required,gt=0"`
}

// setLineNoteRequest carries the replacement note. An empty string clears it,
// so no validation tag here.
type setLineNoteRequest struct {
	Note string `json:"note"`
}

type addPreparedRequest struct {
	ProductCode string `json:"productCode" validate:"required"`
	Delta       int    `json:"delta" validate:"required,gt=0"`
}

type adjustStockRequest struct {
	ProductCode string `json:"productCode" validate:"required"`
	WarehouseID string `json:"warehouseId" validate:"required"`
	Delta       int    `json:"delta" validate:"required"`
}

type orderResponse struct {
	ID             string         `json:"id"`
	Code           string         `json:"code"`
	Year           int            `json:"year"`
	SequenceNumber int            `json:"sequenceNumber"`
	Suffix         int            `json:"suffix"`
	State          string         `json:"state"`
	FromWarehouse  string         `json:"fromWarehouseId"`
	ToWarehouse    string         `json:"toWarehouseId"`
	RecipientEmail string         `json:"recipientEmail,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	SentAt         *time.Time     `json:"sentAt,omitempty"`
	ClosedAt       *time.Time     `json:"closedAt,omitempty"`
	ShippedAt      *time.Time     `json:"shippedAt,omitempty"`
	Lines          []lineResponse `json:"lines"`
}

type lineResponse struct {
	ID          string `json:"id"`
	ProductCode string `json:"productCode"`
	Description string `json:"description"`
	Requested   int    `json:"requested"`
	Prepared    int    `json:"prepared"`
	Residual    int    `json:"residual"`
	Status      string `json:"status"`
	Note        string `json:"note,omitempty"`
}

// addLineResponse carries the affected line plus the order's full current
// line list, so clients can refresh their view after a merge.
type addLineResponse struct {
	Mode  string         `json:"mode"`
	Line  lineResponse   `json:"line"`
	Lines []lineResponse `json:"lines"`
}

type addPreparedResponse struct {
	Line    lineResponse `json:"line"`
	Started bool         `json:"started"`
	State   string       `json:"state"`
}

type closeOrderResponse struct {
	ClosedCode    string         `json:"closedCode"`
	AlreadyClosed bool           `json:"alreadyClosed"`
	Successor     *orderResponse `json:"successor,omitempty"`
}

type markShippedResponse struct {
	Order          orderResponse `json:"order"`
	AlreadyShipped bool          `json:"alreadyShipped"`
}

type splitResidualResponse struct {
	Target        orderResponse `json:"target"`
	TargetCreated bool          `json:"targetCreated"`
	Line          lineResponse  `json:"line"`
	QtyDelivered  int           `json:"qtyDelivered"`
	QtyResidual   int           `json:"qtyResidual"`
}

type orderListItem struct {
	ID             string     `json:"id"`
	Code           string     `json:"code"`
	Year           int        `json:"year"`
	SequenceNumber int        `json:"sequenceNumber"`
	Suffix         int        `json:"suffix"`
	State          string     `json:"state"`
	FromWarehouse  string     `json:"fromWarehouseId"`
	ToWarehouse    string     `json:"toWarehouseId"`
	RecipientEmail string     `json:"recipientEmail,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	SentAt         *time.Time `json:"sentAt,omitempty"`
	ClosedAt       *time.Time `json:"closedAt,omitempty"`
	ShippedAt      *time.Time `json:"shippedAt,omitempty"`
	LineCount      int        `json:"lineCount"`
}

type orderDetail struct {
	orderListItem
	Lines           []lineResponse `json:"lines"`
	LinesDone       int            `json:"linesDone"`
	LinesPartial    int            `json:"linesPartial"`
	LinesNotStarted int            `json:"linesNotStarted"`
	FullyPrepared   bool           `json:"fullyPrepared"`
}

type warehouseResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type stockLevelResponse struct {
	ProductCode string    `json:"productCode"`
	WarehouseID string    `json:"warehouseId"`
	Quantity    int       `json:"quantity"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type shippedItemResponse struct {
	LineID        string    `json:"lineId"`
	ProductCode   string    `json:"productCode"`
	Description   string    `json:"description"`
	QtyRequested  int       `json:"qtyRequested"`
	QtyShipped    int       `json:"qtyShipped"`
	OrderID       string    `json:"orderId"`
	OrderCode     string    `json:"orderCode"`
	FromWarehouse string    `json:"fromWarehouse"`
	ToWarehouse   string    `json:"toWarehouse"`
	ShippedAt     time.Time `json:"shippedAt"`
}

type statsMovementResponse struct {
	ID            string    `json:"id"`
	ProductCode   string    `json:"productCode"`
	WarehouseID   string    `json:"warehouseId"`
	WarehouseName string    `json:"warehouseName,omitempty"`
	QtyBefore     int       `json:"qtyBefore"`
	QtyAfter      int       `json:"qtyAfter"`
	Delta         int       `json:"delta"`
	CreatedAt     time.Time `json:"createdAt"`
}

type statsResponse struct {
	Period          string                  `json:"period"`
	From            time.Time               `json:"from"`
	To              time.Time               `json:"to"`
	Movements       int                     `json:"movements"`
	ProductsTouched int                     `json:"productsTouched"`
	RecentMovements []statsMovementResponse `json:"recentMovements"`
}

// stockQueryResponse differs from stockLevelResponse in that a never-adjusted
// ledger cell has no update timestamp.
type stockQueryResponse struct {
	ProductCode string     `json:"productCode"`
	WarehouseID string     `json:"warehouseId"`
	Quantity    int        `json:"quantity"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func linesFromDomain(lines []*order.Line) []lineResponse {
	responses := make([]lineResponse, len(lines))
	for i, l := range lines {
		responses[i] = lineFromDomain(l)
	}
	return responses
}

func addLineResponseFromResult(result *commands.AddLineResult) addLineResponse {
	return addLineResponse{
		Mode:  string(result.Mode),
		Line:  lineFromDomain(result.Line),
		Lines: linesFromDomain(result.Order.Lines()),
	}
}

func orderFromDomain(o *order.Order) orderResponse {
	return orderResponse{
		ID:             o.ID().String(),
		Code:           o.Code(),
		Year:           o.Year(),
		SequenceNumber: o.SequenceNumber(),
		Suffix:         o.Suffix(),
		State:          o.Status().WireName(),
		FromWarehouse:  o.FromWarehouseID().String(),
		ToWarehouse:    o.ToWarehouseID().String(),
		RecipientEmail: o.RecipientEmail(),
		CreatedAt:      o.CreatedAt(),
		SentAt:         o.SentAt(),
		ClosedAt:       o.ClosedAt(),
		ShippedAt:      o.ShippedAt(),
		Lines:          linesFromDomain(o.Lines()),
	}
}

func lineFromDomain(l *order.Line) lineResponse {
	return lineResponse{
		ID:          l.ID().String(),
		ProductCode: l.ProductCode(),
		Description: l.Description(),
		Requested:   l.RequestedQty(),
		Prepared:    l.PreparedQty(),
		Residual:    l.Residual(),
		Status:      l.Status().String(),
		Note:        l.Note(),
	}
}

func shippedItemFromQuery(item queries.ListShippedItemsQueryResponse) shippedItemResponse {
	return shippedItemResponse{
		LineID:        item.LineID.String(),
		ProductCode:   item.ProductCode,
		Description:   item.Description,
		QtyRequested:  item.QtyRequested,
		QtyShipped:    item.QtyShipped,
		OrderID:       item.OrderID.String(),
		OrderCode:     item.OrderCode,
		FromWarehouse: item.FromWarehouse,
		ToWarehouse:   item.ToWarehouse,
		ShippedAt:     item.ShippedAt,
	}
}

func statsFromQuery(stats *queries.GetStatsQueryResponse) statsResponse {
	movements := make([]statsMovementResponse, len(stats.RecentMovements))
	for i, m := range stats.RecentMovements {
		movements[i] = statsMovementResponse{
			ID:            m.ID.String(),
			ProductCode:   m.ProductCode,
			WarehouseID:   m.WarehouseID.String(),
			WarehouseName: m.WarehouseName,
			QtyBefore:     m.QtyBefore,
			QtyAfter:      m.QtyAfter,
			Delta:         m.Delta,
			CreatedAt:     m.CreatedAt,
		}
	}

	return statsResponse{
		Period:          string(stats.Period),
		From:            stats.From,
		To:              stats.To,
		Movements:       stats.Movements,
		ProductsTouched: stats.ProductsTouched,
		RecentMovements: movements,
	}
}

func orderListItemFromQuery(o queries.ListOrdersQueryResponse) orderListItem {
	return orderListItem{
		ID:             o.ID.String(),
		Code:           o.Code,
		Year:           o.Year,
		SequenceNumber: o.SequenceNumber,
		Suffix:         o.Suffix,
		State:          o.State,
		FromWarehouse:  o.FromWarehouse.String(),
		ToWarehouse:    o.ToWarehouse.String(),
		RecipientEmail: o.RecipientEmail,
		CreatedAt:      o.CreatedAt,
		SentAt:         o.SentAt,
		ClosedAt:       o.ClosedAt,
		ShippedAt:      o.ShippedAt,
		LineCount:      o.LineCount,
	}
}

func orderDetailFromQuery(o *queries.GetOrderQueryResponse) orderDetail {
	lines := make([]lineResponse, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = lineResponse{
			ID:          l.ID.String(),
			ProductCode: l.ProductCode,
			Description: l.Description,
			Requested:   l.Requested,
			Prepared:    l.Prepared,
			Residual:    l.Residual,
			Status:      l.Status,
			Note:        l.Note,
		}
	}

	return orderDetail{
		orderListItem: orderListItem{
			ID:             o.ID.String(),
			Code:           o.Code,
			Year:           o.Year,
			SequenceNumber: o.SequenceNumber,
			Suffix:         o.Suffix,
			State:          o.State,
			FromWarehouse:  o.FromWarehouse.String(),
			ToWarehouse:    o.ToWarehouse.String(),
			RecipientEmail: o.RecipientEmail,
			CreatedAt:      o.CreatedAt,
			SentAt:         o.SentAt,
			ClosedAt:       o.ClosedAt,
			ShippedAt:      o.ShippedAt,
			LineCount:      len(o.Lines),
		},
		Lines:           lines,
		LinesDone:       o.LinesDone,
		LinesPartial:    o.LinesPartial,
		LinesNotStarted: o.LinesNotStarted,
		FullyPrepared:   o.FullyPrepared,
	}
}
