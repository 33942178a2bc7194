package assignmentrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/WWStoryMode/project-firefly/internal/adapters/out/postgres/assignmentrepo"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/delivery"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"
	"github.com/WWStoryMode/project-firefly/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// AssignmentRepositoryIntegrationTestSuite provides integration tests for
// AssignmentRepository using PostgreSQL containers.
type AssignmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *assignmentrepo.GormAssignmentRepository
	tracker    *MockAggregateTracker
}

func (suite *AssignmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&assignmentrepo.AssignmentDTO{}))
}

func (suite *AssignmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE delivery_assignments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = assignmentrepo.NewGormAssignmentRepository(suite.db, suite.tracker)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AssignmentRepositoryIntegrationTestSuite) createTestAssignment() *delivery.Assignment {
	assignment, err := delivery.NewAssignment(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)

	return assignment
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestAdd_ValidAssignment_Success() {
	ctx := context.Background()

	assignment := suite.createTestAssignment()
	suite.tracker.On("TrackAggregate", assignment.ID(), assignment).Once()

	err := suite.repository.Add(ctx, assignment)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&assignmentrepo.AssignmentDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestAdd_SecondAssignmentForSameOrder_Rejected() {
	ctx := context.Background()

	first := suite.createTestAssignment()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second, err := delivery.NewAssignment(
		kernel.NewUUID(), first.OrderID(), kernel.NewUUID(), time.Now().UTC(),
	)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, second)

	suite.Require().Error(err, "unique index on order_id must reject a second assignment")
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestGet_RoundTripsAggregate() {
	ctx := context.Background()

	assignment := suite.createTestAssignment()
	suite.tracker.On("TrackAggregate", assignment.ID(), assignment).Once()
	suite.Require().NoError(suite.repository.Add(ctx, assignment))

	loaded, err := suite.repository.Get(ctx, assignment.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(assignment))
	suite.Equal(delivery.StatusPending, loaded.Status())
	suite.True(loaded.AssignedAt().Equal(assignment.AssignedAt()))
	suite.Nil(loaded.AcceptedAt())
	suite.Nil(loaded.PickedUpAt())
	suite.Nil(loaded.DeliveredAt())
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestGetByOrder() {
	ctx := context.Background()

	assignment := suite.createTestAssignment()
	suite.tracker.On("TrackAggregate", assignment.ID(), assignment).Once()
	suite.Require().NoError(suite.repository.Add(ctx, assignment))

	loaded, err := suite.repository.GetByOrder(ctx, assignment.OrderID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(assignment))

	_, err = suite.repository.GetByOrder(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestUpdate_PersistsLifecycleTimestamps() {
	ctx := context.Background()

	assignment := suite.createTestAssignment()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, assignment))

	now := time.Date(2025, time.March, 14, 11, 0, 0, 0, time.UTC)
	suite.Require().NoError(assignment.TransitionTo(delivery.StatusAccepted, now))
	suite.Require().NoError(suite.repository.Update(ctx, assignment))

	loaded, err := suite.repository.Get(ctx, assignment.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.StatusAccepted, loaded.Status())
	suite.Require().NotNil(loaded.AcceptedAt())
	suite.True(loaded.AcceptedAt().Equal(now))
	suite.Nil(loaded.PickedUpAt())
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestUpdate_MissingAssignment_ReturnsError() {
	ctx := context.Background()

	assignment := suite.createTestAssignment()

	err := suite.repository.Update(ctx, assignment)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestAssignmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepositoryIntegrationTestSuite))
}
