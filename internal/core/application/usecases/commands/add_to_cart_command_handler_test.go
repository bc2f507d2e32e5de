package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddToCartCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewAddToCartCommand(kernel.NewUUID(), kernel.NewUUID(), 2)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Equal(t, 2, cmd.Quantity())
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := commands.NewAddToCartCommand(kernel.NewUUID(), kernel.NewUUID(), 0)

		require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		cmd := commands.AddToCartCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrAddToCartCommandIsNotConstructed)
	})
}

func TestAddToCartCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, _ := commands.NewAddToCartCommand(clientID, productID, 2)

	product, err := catalog.NewProduct(productID, "Pepperoni pizza", mustMoney(t, "15.95"))
	require.NoError(t, err)
	clientCart, err := cart.NewCart(clientID)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productID).Return(product, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, clientID).Return(clientCart, nil).Once(),
		cartRepo.On("Save", mock.Anything, clientCart).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddToCartCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, clientCart.Lines(), 1)
	require.Equal(t, 2, clientCart.Lines()[0].Quantity())
	cartRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddToCartCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, _ := commands.NewAddToCartCommand(clientID, productID, 2)

	productRepo := new(MockProductRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productID).
			Return(nil, errs.NewObjectNotFoundError("product", productID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddToCartCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
