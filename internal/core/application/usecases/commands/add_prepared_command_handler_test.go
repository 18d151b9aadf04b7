package commands_test

import (
	"context"
	"testing"

	"transfers/internal/core/application/usecases/commands"
	"transfers/internal/core/domain/model/order"
	"transfers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expectOrderMutation(ctx context.Context, uow *MockOrderUoW, repo *MockOrderRepository, o *order.Order) {
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
}

func TestAddPreparedCommandHandler_Handle_StartsPreparation(t *testing.T) {
	ctx := t.Context()
	o, _ := newSentOrder(t, "SKU-1", 8)
	cmd, _ := commands.NewAddPreparedCommand(o.ID(), "SKU-1", 5)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectOrderMutation(ctx, uow, orderRepo, o)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddPreparedCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, result.Started)
	assert.Equal(t, order.InProgress, result.Order.Status())
	assert.Equal(t, 5, result.Line.PreparedQty())
	assert.Equal(t, order.Partial, result.Line.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddPreparedCommandHandler_Handle_SecondScanDoesNotRestart(t *testing.T) {
	ctx := t.Context()
	o, _ := newSentOrder(t, "SKU-1", 8)
	_, _, err := o.AddPrepared("SKU-1", 5, o.CreatedAt())
	require.NoError(t, err)

	cmd, _ := commands.NewAddPreparedCommand(o.ID(), "SKU-1", 3)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectOrderMutation(ctx, uow, orderRepo, o)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddPreparedCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, result.Started)
	assert.Equal(t, 8, result.Line.PreparedQty())
	assert.Equal(t, order.Done, result.Line.Status())
}

func TestAddPreparedCommandHandler_Handle_OverPreparedIsNotClamped(t *testing.T) {
	ctx := t.Context()
	o, _ := newSentOrder(t, "SKU-1", 5)
	cmd, _ := commands.NewAddPreparedCommand(o.ID(), "SKU-1", 9)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectOrderMutation(ctx, uow, orderRepo, o)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddPreparedCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 9, result.Line.PreparedQty())
	assert.Equal(t, order.Done, result.Line.Status())
}

func TestAddPreparedCommandHandler_Handle_UnknownLine(t *testing.T) {
	ctx := t.Context()
	o, _ := newSentOrder(t, "SKU-1", 5)
	cmd, _ := commands.NewAddPreparedCommand(o.ID(), "SKU-9", 1)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddPreparedCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAddPreparedCommandHandler_Handle_DraftRejected(t *testing.T) {
	ctx := t.Context()
	o, _ := newDraftOrderWithLine(t, "SKU-1", 5)
	cmd, _ := commands.NewAddPreparedCommand(o.ID(), "SKU-1", 1)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddPreparedCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}
