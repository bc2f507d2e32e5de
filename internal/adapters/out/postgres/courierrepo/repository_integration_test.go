package courierrepo_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/courierrepo"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

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

// CourierRepositoryIntegrationTestSuite provides integration tests for CourierRepository
// using PostgreSQL containers to verify database persistence behavior.
type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *courierrepo.GormCourierRepository
	tracker    *MockAggregateTracker
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&courierrepo.CourierDTO{}))
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE couriers CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = courierrepo.NewGormCourierRepository(suite.db, suite.tracker)
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_NewCourier_StartsWithZeroBalances() {
	ctx := context.Background()

	testCourier, err := courier.NewCourier(kernel.NewUUID(), "Ivan Petrov", "bicycle")
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", testCourier.ID(), testCourier).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testCourier))

	loaded, err := suite.repository.Get(ctx, testCourier.ID())
	suite.Require().NoError(err)
	suite.Equal("Ivan Petrov", loaded.Name())
	suite.Equal("bicycle", loaded.VehicleType())
	suite.True(loaded.TotalTurnover().IsZero())
	suite.True(loaded.TotalBonuses().IsZero())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_NonExistentCourier_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_SettledBalances_RoundTrip() {
	ctx := context.Background()

	testCourier, err := courier.NewCourier(kernel.NewUUID(), "Ivan Petrov", "scooter")
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", testCourier.ID(), testCourier).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testCourier))

	turnover, err := kernel.NewMoneyFromString("110.00")
	suite.Require().NoError(err)
	bonusAmount, err := kernel.NewMoneyFromString("10.00")
	suite.Require().NoError(err)
	testCourier.AddTurnover(turnover)
	testCourier.GrantBonus(bonusAmount)

	suite.Require().NoError(suite.repository.Update(ctx, testCourier))

	loaded, err := suite.repository.Get(ctx, testCourier.ID())
	suite.Require().NoError(err)
	suite.Equal("120.00", loaded.TotalTurnover().String())
	suite.Equal("10.00", loaded.TotalBonuses().String())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetForUpdate_SerializesConcurrentSettlement() {
	ctx := context.Background()

	testCourier, err := courier.NewCourier(kernel.NewUUID(), "Ivan Petrov", "car")
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testCourier))

	amount, err := kernel.NewMoneyFromString("25.00")
	suite.Require().NoError(err)

	// Two settlements race on the same courier row. The row lock makes the
	// read-modify-write sequences serialize, so no update is lost.
	settle := func() error {
		tx := suite.db.WithContext(ctx).Begin()
		if tx.Error != nil {
			return tx.Error
		}
		defer tx.Rollback()

		repo := courierrepo.NewGormCourierRepository(tx, suite.tracker)
		locked, lockErr := repo.GetForUpdate(ctx, testCourier.ID())
		if lockErr != nil {
			return lockErr
		}

		locked.AddTurnover(amount)
		if updErr := repo.Update(ctx, locked); updErr != nil {
			return updErr
		}
		return tx.Commit().Error
	}

	done := make(chan error, 2)
	go func() { done <- settle() }()
	go func() { done <- settle() }()
	suite.Require().NoError(<-done)
	suite.Require().NoError(<-done)

	loaded, err := suite.repository.Get(ctx, testCourier.ID())
	suite.Require().NoError(err)
	suite.Equal("50.00", loaded.TotalTurnover().String())
}

func TestCourierRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
