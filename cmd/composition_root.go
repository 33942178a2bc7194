package cmd

import (
	"log/slog"
	"os"

	"github.com/WWStoryMode/project-firefly/internal/adapters/out/postgres"
	"github.com/WWStoryMode/project-firefly/internal/core/application/usecases/commands"
	"github.com/WWStoryMode/project-firefly/internal/core/application/usecases/queries"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// CompositionRoot wires up the application's dependency graph.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

// NewCompositionRoot creates the composition root from the opened database
// connection.
func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

// Logger returns the application-wide structured logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// CreateOrderUoWFactory adapts the GORM unit of work factory to the
// order-only unit of work the order commands expect.
func (c *CompositionRoot) CreateOrderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	matchHandler := c.CreateMatchDeliveryCommandHandler()
	return commands.NewCreateOrderCommandHandler(c.CreateOrderUoWFactory(), matchHandler, c.logger)
}

func (c *CompositionRoot) CreateMatchDeliveryCommandHandler() commands.MatchDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewMatchDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.CreateOrderUoWFactory())
}

func (c *CompositionRoot) CreateTransitionAssignmentCommandHandler() commands.TransitionAssignmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionAssignmentCommandHandler(f, delivery.DefaultCascadePolicy())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAssignmentsQueryHandler() queries.ListAssignmentsQueryHandler {
	return queries.NewListAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignmentQueryHandler() queries.GetAssignmentQueryHandler {
	return queries.NewGetAssignmentQueryHandler(c.gormDB)
}

// FuncOrderUoWFactory adapts a closure to the commands.OrderUoWFactory
// interface.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncUoWFactory adapts a closure to the commands.UoWFactory interface.
type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
