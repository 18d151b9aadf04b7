package order_test

import (
	"testing"
	"time"

	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	now := time.Now()
	lineID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	t.Run("should create line with description snapshot", func(t *testing.T) {
		l, err := order.NewLine(lineID, orderID, "SKU-1", "blue widget", 5, now)

		require.NoError(t, err)
		assert.True(t, l.ID().IsEqual(lineID))
		assert.True(t, l.OrderID().IsEqual(orderID))
		assert.Equal(t, "SKU-1", l.ProductCode())
		assert.Equal(t, "blue widget", l.Description())
		assert.Equal(t, 5, l.RequestedQty())
		assert.Equal(t, 0, l.PreparedQty())
		assert.Empty(t, l.Note())
	})

	t.Run("should fail without product code", func(t *testing.T) {
		_, err := order.NewLine(lineID, orderID, "", "desc", 5, now)
		require.Error(t, err)
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		for _, qty := range []int{0, -1} {
			_, err := order.NewLine(lineID, orderID, "SKU-1", "desc", qty, now)
			require.Error(t, err)
		}
	})

	t.Run("should fail with unconstructed identifiers", func(t *testing.T) {
		var zero kernel.UUID

		_, err := order.NewLine(zero, orderID, "SKU-1", "desc", 5, now)
		require.Error(t, err)

		_, err = order.NewLine(lineID, zero, "SKU-1", "desc", 5, now)
		require.Error(t, err)
	})
}

func TestRestoreLine(t *testing.T) {
	now := time.Now()

	t.Run("should restore stored quantities as-is", func(t *testing.T) {
		l, err := order.RestoreLine(kernel.NewUUID(), kernel.NewUUID(),
			"SKU-1", "desc", 4, 9, "hurry", now, now)

		require.NoError(t, err)
		assert.Equal(t, 4, l.RequestedQty())
		assert.Equal(t, 9, l.PreparedQty())
		assert.Equal(t, "hurry", l.Note())
	})
}

func TestLine_Status(t *testing.T) {
	now := time.Now()
	restore := func(requested, prepared int) *order.Line {
		l, err := order.RestoreLine(kernel.NewUUID(), kernel.NewUUID(),
			"SKU-1", "desc", requested, prepared, "", now, now)
		require.NoError(t, err)
		return l
	}

	t.Run("should be NotStarted at zero prepared", func(t *testing.T) {
		assert.Equal(t, order.NotStarted, restore(5, 0).Status())
		assert.Equal(t, "NOT_STARTED", restore(5, 0).Status().String())
	})

	t.Run("should be Partial strictly below requested", func(t *testing.T) {
		assert.Equal(t, order.Partial, restore(5, 3).Status())
		assert.Equal(t, "PARTIAL", restore(5, 3).Status().String())
	})

	t.Run("should be Done at or above requested", func(t *testing.T) {
		assert.Equal(t, order.Done, restore(5, 5).Status())
		assert.Equal(t, order.Done, restore(5, 9).Status())
		assert.Equal(t, "DONE", restore(5, 9).Status().String())
	})
}

func TestLine_Residual(t *testing.T) {
	now := time.Now()
	restore := func(requested, prepared int) *order.Line {
		l, err := order.RestoreLine(kernel.NewUUID(), kernel.NewUUID(),
			"SKU-1", "desc", requested, prepared, "", now, now)
		require.NoError(t, err)
		return l
	}

	t.Run("should report the unfulfilled remainder", func(t *testing.T) {
		assert.Equal(t, 2, restore(5, 3).Residual())
		assert.Equal(t, 5, restore(5, 0).Residual())
	})

	t.Run("should report zero when over-prepared", func(t *testing.T) {
		assert.Equal(t, 0, restore(5, 5).Residual())
		assert.Equal(t, 0, restore(5, 9).Residual())
	})
}
