package personrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/WWStoryMode/project-firefly/internal/adapters/out/postgres/personrepo"
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

// DeliveryPersonRepositoryIntegrationTestSuite provides integration tests for
// DeliveryPersonRepository using PostgreSQL containers.
type DeliveryPersonRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *personrepo.GormDeliveryPersonRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryPersonRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&personrepo.PersonDTO{}))
}

func (suite *DeliveryPersonRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE delivery_people").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = personrepo.NewGormDeliveryPersonRepository(suite.db, suite.tracker)
}

func (suite *DeliveryPersonRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryPersonRepositoryIntegrationTestSuite) addPerson(name string, isActive, isAvailable bool) *delivery.Person {
	person, err := delivery.NewPerson(kernel.NewUUID(), name, isActive, isAvailable)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", person.ID(), person)
	suite.Require().NoError(suite.repository.Add(context.Background(), person))

	return person
}

func (suite *DeliveryPersonRepositoryIntegrationTestSuite) TestAdd_And_Get_RoundTripsAggregate() {
	person := suite.addPerson("Marta", true, true)

	loaded, err := suite.repository.Get(context.Background(), person.ID())
	suite.Require().NoError(err)

	suite.Equal(person.ID(), loaded.ID())
	suite.Equal("Marta", loaded.Name())
	suite.True(loaded.IsActive())
	suite.True(loaded.IsAvailable())
}

func (suite *DeliveryPersonRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryPersonRepositoryIntegrationTestSuite) TestUpdate_PersistsClaimedAvailability() {
	ctx := context.Background()

	person := suite.addPerson("Piotr", true, true)

	suite.Require().NoError(person.Claim())
	suite.Require().NoError(suite.repository.Update(ctx, person))

	loaded, err := suite.repository.Get(ctx, person.ID())
	suite.Require().NoError(err)
	suite.False(loaded.IsAvailable(), "claimed person must stay busy after reload")
	suite.True(loaded.IsActive())
}

func (suite *DeliveryPersonRepositoryIntegrationTestSuite) TestUpdate_PersistsRelease() {
	ctx := context.Background()

	person := suite.addPerson("Ewa", true, true)
	suite.Require().NoError(person.Claim())
	suite.Require().NoError(suite.repository.Update(ctx, person))

	person.Release()
	suite.Require().NoError(suite.repository.Update(ctx, person))

	loaded, err := suite.repository.Get(ctx, person.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsAvailable())
}

func (suite *DeliveryPersonRepositoryIntegrationTestSuite) TestUpdate_MissingPerson_ReturnsError() {
	person, err := delivery.NewPerson(kernel.NewUUID(), "Nobody", true, true)
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), person)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *DeliveryPersonRepositoryIntegrationTestSuite) TestGetFirstAvailable_SkipsIneligiblePeople() {
	ctx := context.Background()

	suite.addPerson("Inactive", false, true)
	suite.addPerson("Busy", true, false)
	eligible := suite.addPerson("Free", true, true)

	found, err := suite.repository.GetFirstAvailable(ctx)
	suite.Require().NoError(err)

	suite.Equal(eligible.ID(), found.ID())
	suite.True(found.IsEligible())
}

func (suite *DeliveryPersonRepositoryIntegrationTestSuite) TestGetFirstAvailable_NobodyFree_ReturnsNotFound() {
	ctx := context.Background()

	suite.addPerson("Inactive", false, true)
	suite.addPerson("Busy", true, false)

	_, err := suite.repository.GetFirstAvailable(ctx)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryPersonRepositoryIntegrationTestSuite) TestGetFirstAvailable_LockedRow_IsSkipped() {
	ctx := context.Background()

	first := suite.addPerson("First", true, true)
	second := suite.addPerson("Second", true, true)

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepo := personrepo.NewGormDeliveryPersonRepository(tx, suite.tracker)
	locked, err := txRepo.GetFirstAvailable(ctx)
	suite.Require().NoError(err)

	other, err := suite.repository.GetFirstAvailable(ctx)
	suite.Require().NoError(err)

	suite.NotEqual(locked.ID(), other.ID(), "concurrent matcher must skip the locked row")
	suite.ElementsMatch(
		[]kernel.UUID{first.ID(), second.ID()},
		[]kernel.UUID{locked.ID(), other.ID()},
	)
}

func TestDeliveryPersonRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryPersonRepositoryIntegrationTestSuite))
}
