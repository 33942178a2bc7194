package commands_test

import (
	"errors"
	"testing"

	"github.com/WWStoryMode/project-firefly/internal/core/application/usecases/commands"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/delivery"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/order"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/services"
	"github.com/WWStoryMode/project-firefly/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		testItems(t), "12 Harbour St", "",
	)
	require.NoError(t, err)

	return o
}

func TestMatchDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t)
	cmd, err := commands.NewMatchDeliveryCommand(testOrder.ID())
	require.NoError(t, err)

	person, err := delivery.NewPerson(kernel.NewUUID(), "Alice", true, true)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	personRepo := new(MockDeliveryPersonRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryPersonRepository").Return(personRepo).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		personRepo.On("GetFirstAvailable", ctx).Return(person, nil).Once(),
		assignmentRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Assignment")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		personRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Person")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMatchDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, person.IsAvailable(), "matched person must be claimed")
	require.NotNil(t, testOrder.DeliveryPerson())
	assert.True(t, testOrder.DeliveryPerson().IsEqual(person.ID()))
	orderRepo.AssertExpectations(t)
	personRepo.AssertExpectations(t)
	assignmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestMatchDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.MatchDeliveryCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewMatchDeliveryCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrMatchDeliveryCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestMatchDeliveryCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewMatchDeliveryCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	personRepo := new(MockDeliveryPersonRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryPersonRepository").Return(personRepo).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMatchDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoOrderFound)
}

func TestMatchDeliveryCommandHandler_Handle_OrderAlreadyAssigned(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t)
	require.NoError(t, testOrder.AssignDeliveryPerson(kernel.NewUUID()))

	cmd, err := commands.NewMatchDeliveryCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	personRepo := new(MockDeliveryPersonRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryPersonRepository").Return(personRepo).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMatchDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrOrderAlreadyAssigned)
	personRepo.AssertNotCalled(t, "GetFirstAvailable")
}

func TestMatchDeliveryCommandHandler_Handle_OrderNotPending(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t)
	require.NoError(t, testOrder.TransitionTo(order.StatusCancelled))

	cmd, err := commands.NewMatchDeliveryCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	personRepo := new(MockDeliveryPersonRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryPersonRepository").Return(personRepo).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMatchDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderIsNotMatchable)
}

func TestMatchDeliveryCommandHandler_Handle_NoDeliveryPeopleAvailable(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t)
	cmd, err := commands.NewMatchDeliveryCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	personRepo := new(MockDeliveryPersonRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryPersonRepository").Return(personRepo).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		personRepo.On("GetFirstAvailable", ctx).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMatchDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoDeliveryPeopleAvailable)
	assert.Nil(t, testOrder.DeliveryPerson(), "order must stay unassigned")
}

func TestMatchDeliveryCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()

	testOrder := newPendingOrder(t)
	cmd, err := commands.NewMatchDeliveryCommand(testOrder.ID())
	require.NoError(t, err)

	person, err := delivery.NewPerson(kernel.NewUUID(), "Bob", true, true)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	personRepo := new(MockDeliveryPersonRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryPersonRepository").Return(personRepo).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		personRepo.On("GetFirstAvailable", ctx).Return(person, nil).Once(),
		assignmentRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Assignment")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		personRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Person")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMatchDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
