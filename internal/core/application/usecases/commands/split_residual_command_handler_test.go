package commands_test

import (
	"testing"
	"time"

	"transfers/internal/core/application/usecases/commands"
	"transfers/internal/core/domain/model/kernel"
	"transfers/internal/core/domain/model/order"
	"transfers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSplitResidualCommandHandler_Handle_CreatesTargetSibling(t *testing.T) {
	ctx := t.Context()
	// SKU-3 at 3/8: partial, closed anyway
	o, line := newClosedOrder(t, "SKU-3", 8, 3)
	cmd, _ := commands.NewSplitResidualCommand(o.ID(), line.ID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("GetByFamily", mock.Anything, o.Year(), o.SequenceNumber(), 1).
			Return(nil, errs.NewObjectNotFoundError("suffix", "1")).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSplitResidualCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, result.TargetCreated)
	assert.Equal(t, 3, result.QtyDelivered)
	assert.Equal(t, 5, result.QtyResidual)

	// source line shrank to its prepared quantity and is Done in place
	assert.Equal(t, 3, line.RequestedQty())
	assert.Equal(t, 3, line.PreparedQty())
	assert.Equal(t, order.Done, line.Status())

	target := result.Target
	assert.Equal(t, 1, target.Suffix())
	assert.Equal(t, order.InProgress, target.Status())
	require.Len(t, target.Lines(), 1)
	assert.Equal(t, "SKU-3", result.Line.ProductCode())
	assert.Equal(t, 5, result.Line.RequestedQty())
	assert.Equal(t, 0, result.Line.PreparedQty())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSplitResidualCommandHandler_Handle_ReusesExistingSibling(t *testing.T) {
	ctx := t.Context()
	o, line := newClosedOrder(t, "SKU-3", 8, 3)

	sibling, err := o.NewSuccessor(kernel.NewUUID(), 1, time.Now())
	require.NoError(t, err)

	cmd, _ := commands.NewSplitResidualCommand(o.ID(), line.ID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("GetByFamily", mock.Anything, o.Year(), o.SequenceNumber(), 1).Return(sibling, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, sibling).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSplitResidualCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, result.TargetCreated)
	assert.True(t, result.Target.ID().IsEqual(sibling.ID()))
	require.Len(t, sibling.Lines(), 1)
	assert.Equal(t, 5, sibling.Lines()[0].RequestedQty())
}

func TestSplitResidualCommandHandler_Handle_DoneLineRejected(t *testing.T) {
	ctx := t.Context()
	// fully prepared line is not strictly partial
	o, line := newClosedOrder(t, "SKU-1", 8, 8)
	cmd, _ := commands.NewSplitResidualCommand(o.ID(), line.ID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("GetByFamily", mock.Anything, o.Year(), o.SequenceNumber(), 1).
			Return(nil, errs.NewObjectNotFoundError("suffix", "1")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSplitResidualCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, 8, line.RequestedQty())
}

func TestSplitResidualCommandHandler_Handle_OpenOrderRejected(t *testing.T) {
	ctx := t.Context()
	o, line := newSentOrder(t, "SKU-1", 8)
	cmd, _ := commands.NewSplitResidualCommand(o.ID(), line.ID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("GetByFamily", mock.Anything, o.Year(), o.SequenceNumber(), 1).
			Return(nil, errs.NewObjectNotFoundError("suffix", "1")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSplitResidualCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestSplitResidualCommandHandler_Handle_ClosedSiblingRejected(t *testing.T) {
	ctx := t.Context()
	o, line := newClosedOrder(t, "SKU-3", 8, 3)

	sibling, err := o.NewSuccessor(kernel.NewUUID(), 1, time.Now())
	require.NoError(t, err)
	_, addErr := sibling.AddResidualLine(kernel.NewUUID(), "SKU-9", "filler", 1, time.Now())
	require.NoError(t, addErr)
	require.NoError(t, sibling.MarkClosed(sibling.BaseCode()+".1.0", time.Now()))

	cmd, _ := commands.NewSplitResidualCommand(o.ID(), line.ID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("GetByFamily", mock.Anything, o.Year(), o.SequenceNumber(), 1).Return(sibling, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSplitResidualCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	// source untouched on failure
	assert.Equal(t, 8, line.RequestedQty())
	assert.Equal(t, order.Closed, o.Status())
}
