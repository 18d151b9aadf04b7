package http

import (
	"testing"
	"time"

	"transfers/internal/core/application/usecases/commands"
	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderWithLines(t *testing.T, codes map[string]int) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), 2026, 10, kernel.NewUUID(), kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	for code, qty := range codes {
		_, _, err = o.AddLine(kernel.NewUUID(), code, "desc "+code, qty, time.Now())
		require.NoError(t, err)
	}
	return o
}

func TestAddLineResponseFromResult(t *testing.T) {
	t.Run("should carry the affected line and the full current line list", func(t *testing.T) {
		o := newOrderWithLines(t, map[string]int{"SKU-1": 5, "SKU-2": 4})

		mode, line, err := o.AddLine(kernel.NewUUID(), "SKU-1", "ignored", 3, time.Now())
		require.NoError(t, err)
		require.Equal(t, order.AddLineModeSum, mode)

		resp := addLineResponseFromResult(&commands.AddLineResult{Mode: mode, Line: line, Order: o})

		assert.Equal(t, "sum", resp.Mode)
		assert.Equal(t, line.ID().String(), resp.Line.ID)
		assert.Equal(t, 8, resp.Line.Requested)

		require.Len(t, resp.Lines, 2)
		byCode := make(map[string]lineResponse)
		for _, l := range resp.Lines {
			byCode[l.ProductCode] = l
		}
		assert.Equal(t, 8, byCode["SKU-1"].Requested)
		assert.Equal(t, "desc SKU-1", byCode["SKU-1"].Description)
		assert.Equal(t, 4, byCode["SKU-2"].Requested)
	})

	t.Run("should list a newly created line alongside existing ones", func(t *testing.T) {
		o := newOrderWithLines(t, map[string]int{"SKU-1": 5})

		mode, line, err := o.AddLine(kernel.NewUUID(), "SKU-9", "desc SKU-9", 2, time.Now())
		require.NoError(t, err)
		require.Equal(t, order.AddLineModeNew, mode)

		resp := addLineResponseFromResult(&commands.AddLineResult{Mode: mode, Line: line, Order: o})

		assert.Equal(t, "new", resp.Mode)
		assert.Len(t, resp.Lines, 2)
	})
}
