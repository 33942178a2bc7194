package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/WWStoryMode/project-firefly/internal/core/application/usecases/commands"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/order"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/services"
	"github.com/WWStoryMode/project-firefly/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) AddItems(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllUnassignedPending(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct {
	mock.Mock
}

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct {
	mock.Mock
}

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockMatchHandler struct {
	mock.Mock
}

func (m *MockMatchHandler) Handle(ctx context.Context, command commands.MatchDeliveryCommand) error {
	args := m.Called(ctx, command)
	return args.Error(0)
}

func testPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	price, err := kernel.NewMoney(decimal.NewFromInt(10))
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Soup", price, 1, "")
	require.NoError(t, err)

	pendingOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, "5 Mill Road", "",
	)
	require.NoError(t, err)
	return pendingOrder
}

func newJobFixture(t *testing.T, backlog []*order.Order) (*DeliveryMatchingJob, *MockMatchHandler) {
	t.Helper()

	repo := new(MockOrderRepository)
	repo.On("GetAllUnassignedPending", mock.Anything).Return(backlog, nil)

	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	handler := new(MockMatchHandler)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewDeliveryMatchingJob(factory, handler, "*/5 * * * * *", logger), handler
}

func TestRun_MatchesEveryDegradedOrder(t *testing.T) {
	first := testPendingOrder(t)
	second := testPendingOrder(t)
	job, handler := newJobFixture(t, []*order.Order{first, second})

	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.MatchDeliveryCommand) bool {
		return cmd.OrderID().IsEqual(first.ID())
	})).Return(nil).Once()
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.MatchDeliveryCommand) bool {
		return cmd.OrderID().IsEqual(second.ID())
	})).Return(nil).Once()

	err := job.run(t.Context())

	require.NoError(t, err)
	handler.AssertExpectations(t)
}

func TestRun_StopsWhenPoolExhausted(t *testing.T) {
	first := testPendingOrder(t)
	second := testPendingOrder(t)
	job, handler := newJobFixture(t, []*order.Order{first, second})

	handler.On("Handle", mock.Anything, mock.Anything).
		Return(commands.ErrNoDeliveryPeopleAvailable).Once()

	err := job.run(t.Context())

	require.NoError(t, err)
	handler.AssertNumberOfCalls(t, "Handle", 1)
}

func TestRun_SkipsOrdersThatMovedOn(t *testing.T) {
	first := testPendingOrder(t)
	second := testPendingOrder(t)
	third := testPendingOrder(t)
	job, handler := newJobFixture(t, []*order.Order{first, second, third})

	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.MatchDeliveryCommand) bool {
		return cmd.OrderID().IsEqual(first.ID())
	})).Return(services.ErrOrderAlreadyAssigned).Once()
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.MatchDeliveryCommand) bool {
		return cmd.OrderID().IsEqual(second.ID())
	})).Return(commands.ErrOrderIsNotMatchable).Once()
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.MatchDeliveryCommand) bool {
		return cmd.OrderID().IsEqual(third.ID())
	})).Return(nil).Once()

	err := job.run(t.Context())

	require.NoError(t, err)
	handler.AssertExpectations(t)
}

func TestRun_PropagatesListingFailure(t *testing.T) {
	listErr := errors.New("connection reset")

	repo := new(MockOrderRepository)
	repo.On("GetAllUnassignedPending", mock.Anything).Return(nil, listErr)

	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	handler := new(MockMatchHandler)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	job := NewDeliveryMatchingJob(factory, handler, "*/5 * * * * *", logger)

	err := job.run(t.Context())

	require.Error(t, err)
	assert.ErrorIs(t, err, listErr)
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}
