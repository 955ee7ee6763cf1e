package commands_test

import (
	"errors"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return aggregate
}

func catalogProduct(t *testing.T, price string, available bool) *product.Product {
	t.Helper()
	unitPrice, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	p, err := product.RestoreProduct(kernel.NewUUID(), "Margherita", unitPrice, available)
	require.NoError(t, err)
	return p
}

func TestAddItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t)
	p := catalogProduct(t, "10.00", true)
	cmd, _ := commands.NewAddItemCommand(aggregate.ID(), p.ID(), 2)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	catalog := new(MockProductCatalog)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		catalog.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemCommandHandler(factory, catalog)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, updated.Items(), 1)
	expectedTotal, _ := kernel.MoneyFromString("20.00")
	assert.True(t, updated.TotalValue().IsEqual(expectedTotal))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	catalog.AssertExpectations(t)
}

func TestAddItemCommandHandler_Handle_ProductUnavailable(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t)
	p := catalogProduct(t, "10.00", false)
	cmd, _ := commands.NewAddItemCommand(aggregate.ID(), p.ID(), 1)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	catalog := new(MockProductCatalog)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		catalog.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemCommandHandler(factory, catalog)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectUnavailable)
	assert.Empty(t, aggregate.Items())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddItemCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewAddItemCommand(orderID, kernel.NewUUID(), 1)

	notFound := errs.NewObjectNotFoundError("order", orderID.String())
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	catalog := new(MockProductCatalog)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, orderID).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemCommandHandler(factory, catalog)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAddItemCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t)
	require.NoError(t, aggregate.ChangeStatus(order.Delivered))
	p := catalogProduct(t, "10.00", true)
	cmd, _ := commands.NewAddItemCommand(aggregate.ID(), p.ID(), 1)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	catalog := new(MockProductCatalog)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		catalog.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemCommandHandler(factory, catalog)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestAddItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := commands.NewAddItemCommandHandler(new(MockOrderUoWFactory), new(MockProductCatalog))
	_, err := h.Handle(ctx, commands.AddItemCommand{})
	require.ErrorIs(t, err, commands.ErrAddItemCommandIsNotConstructed)
}

func TestAddItemCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t)
	p := catalogProduct(t, "5.50", true)
	cmd, _ := commands.NewAddItemCommand(aggregate.ID(), p.ID(), 1)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	catalog := new(MockProductCatalog)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		catalog.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddItemCommandHandler(factory, catalog)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
