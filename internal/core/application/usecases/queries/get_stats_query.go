package queries

import (
	"errors"
	"strings"
	"time"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/pkg/guard"
)

// statsMovementsLimit caps the recent-movements list of the stats view.
const statsMovementsLimit = 50

var ErrGetStatsQueryIsNotConstructed = errors.New(
	"GetStatsQuery must be created via NewGetStatsQuery constructor",
)

// StatsPeriod selects the window of the stock-movement statistics.
type StatsPeriod string

const (
	StatsPeriodDay   StatsPeriod = "day"
	StatsPeriodWeek  StatsPeriod = "week"
	StatsPeriodMonth StatsPeriod = "month"
	StatsPeriodYear  StatsPeriod = "year"
)

// GetStatsQuery retrieves stock-movement statistics for a period, optionally
// narrowed to one warehouse.
type GetStatsQuery struct {
	period      StatsPeriod
	warehouseID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStatsQuery creates a stats query. An unknown period falls back to
// day; warehouseID is optional.
func NewGetStatsQuery(period string, warehouseID *kernel.UUID) (GetStatsQuery, error) {
	if warehouseID != nil {
		if err := warehouseID.Validate(); err != nil {
			return GetStatsQuery{}, err
		}
	}

	return GetStatsQuery{
		period:      normalizePeriod(period),
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func normalizePeriod(input string) StatsPeriod {
	switch StatsPeriod(strings.ToLower(strings.TrimSpace(input))) {
	case StatsPeriodWeek:
		return StatsPeriodWeek
	case StatsPeriodMonth:
		return StatsPeriodMonth
	case StatsPeriodYear:
		return StatsPeriodYear
	default:
		return StatsPeriodDay
	}
}

// Validate ensures the query was created through the constructor.
func (q GetStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatsQueryIsNotConstructed)
}

// Period returns the selected window.
func (q GetStatsQuery) Period() StatsPeriod {
	return q.period
}

// WarehouseID returns the warehouse filter, nil when unfiltered.
func (q GetStatsQuery) WarehouseID() *kernel.UUID {
	return q.warehouseID
}

// PeriodStart returns the start of the window ending at now. Weeks start on
// Monday.
func (q GetStatsQuery) PeriodStart(now time.Time) time.Time {
	switch q.period {
	case StatsPeriodWeek:
		daysSinceMonday := (int(now.Weekday()) + 6) % 7
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return day.AddDate(0, 0, -daysSinceMonday)
	case StatsPeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case StatsPeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
}

// GetStatsMovementResponse is one recent movement of the stats view.
type GetStatsMovementResponse struct {
	ID            kernel.UUID
	ProductCode   string
	WarehouseID   kernel.UUID
	WarehouseName string
	QtyBefore     int
	QtyAfter      int
	Delta         int
	CreatedAt     time.Time
}

// GetStatsQueryResponse summarizes stock movements inside the window:
// how many adjustments ran, how many distinct products they touched, and the
// most recent entries.
type GetStatsQueryResponse struct {
	Period          StatsPeriod
	From            time.Time
	To              time.Time
	Movements       int
	ProductsTouched int
	RecentMovements []GetStatsMovementResponse
}
