package commands_test

import (
	"context"
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/address"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCheckoutOrderRepository struct{ mock.Mock }

func (m *MockCheckoutOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockCheckoutOrderRepository) Update(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockCheckoutOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCheckoutOrderRepository) Delete(_ context.Context, _ kernel.UUID) error {
	return errors.New("not implemented in mock")
}

type MockCheckoutAddressRepository struct{ mock.Mock }

func (m *MockCheckoutAddressRepository) Add(ctx context.Context, addr *address.Address) error {
	args := m.Called(ctx, addr)
	return args.Error(0)
}

type MockCheckoutPriceRepository struct{ mock.Mock }

func (m *MockCheckoutPriceRepository) GetPrice(
	ctx context.Context, productID string, size string,
) (kernel.Money, error) {
	args := m.Called(ctx, productID, size)
	return args.Get(0).(kernel.Money), args.Error(1)
}

type MockCheckoutUoW struct{ mock.Mock }

func (m *MockCheckoutUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockCheckoutUoW) AddressRepository() ports.AddressRepository {
	args := m.Called()
	return args.Get(0).(ports.AddressRepository)
}
func (m *MockCheckoutUoW) PriceRepository() ports.PriceRepository {
	args := m.Called()
	return args.Get(0).(ports.PriceRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

func testMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoney(decimal.RequireFromString(value))
	require.NoError(t, err)
	return money
}

func newCheckoutCommand(t *testing.T, declaredTotal string) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		nil,
		[]commands.OrderItemInput{{ProductID: "P1", Size: "L", Quantity: 2}},
		testMoney(t, declaredTotal),
		"CASH",
		nil,
		commands.AddressInput{
			FullName:   "John Doe",
			Street:     "12 Main St",
			City:       "Springfield",
			PostalCode: "12345",
		},
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCheckoutCommand(t, "39.98")

	orderRepo := new(MockCheckoutOrderRepository)
	addressRepo := new(MockCheckoutAddressRepository)
	priceRepo := new(MockCheckoutPriceRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PriceRepository").Return(priceRepo).Once(),
		priceRepo.On("GetPrice", mock.Anything, "P1", "L").Return(testMoney(t, "19.99"), nil).Once(),
		uow.On("AddressRepository").Return(addressRepo).Once(),
		addressRepo.On("Add", mock.Anything, mock.AnythingOfType("*address.Address")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	addressRepo.AssertExpectations(t)
	priceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockCheckoutUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_UnknownProductSize(t *testing.T) {
	ctx := t.Context()
	cmd := newCheckoutCommand(t, "39.98")

	priceRepo := new(MockCheckoutPriceRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PriceRepository").Return(priceRepo).Once(),
		priceRepo.On("GetPrice", mock.Anything, "P1", "L").
			Return(kernel.Money{}, errs.NewObjectNotFoundError("productSize", "productId: P1, size: L")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.Contains(t, err.Error(), "P1")
	priceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DeclaredTotalMismatch(t *testing.T) {
	ctx := t.Context()
	cmd := newCheckoutCommand(t, "10.00") // resolved total is 39.98

	addressRepo := new(MockCheckoutAddressRepository)
	priceRepo := new(MockCheckoutPriceRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PriceRepository").Return(priceRepo).Once(),
		priceRepo.On("GetPrice", mock.Anything, "P1", "L").Return(testMoney(t, "19.99"), nil).Once(),
		uow.On("AddressRepository").Return(addressRepo).Once(),
		addressRepo.On("Add", mock.Anything, mock.AnythingOfType("*address.Address")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Contains(t, err.Error(), "totalPrice")
	addressRepo.AssertExpectations(t)
	priceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newCheckoutCommand(t, "39.98")

	orderRepo := new(MockCheckoutOrderRepository)
	addressRepo := new(MockCheckoutAddressRepository)
	priceRepo := new(MockCheckoutPriceRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PriceRepository").Return(priceRepo).Once(),
		priceRepo.On("GetPrice", mock.Anything, "P1", "L").Return(testMoney(t, "19.99"), nil).Once(),
		uow.On("AddressRepository").Return(addressRepo).Once(),
		addressRepo.On("Add", mock.Anything, mock.AnythingOfType("*address.Address")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newCheckoutCommand(t, "39.98")

	uow := new(MockCheckoutUoW)
	factory := new(MockCheckoutUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
