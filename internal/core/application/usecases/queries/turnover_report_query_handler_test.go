package queries_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type TurnoverReportQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.TurnoverReportQueryHandler
}

func (suite *TurnoverReportQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))

	suite.handler = queries.NewTurnoverReportQueryHandler(db)
}

func (suite *TurnoverReportQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TurnoverReportQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
}

func (suite *TurnoverReportQueryHandlerTestSuite) seedOrder(status order.Status, totalPrice string, createdAt time.Time) uuid.UUID {
	amount, err := decimal.NewFromString(totalPrice)
	suite.Require().NoError(err)

	id := uuid.New()
	suite.Require().NoError(suite.db.Create(&orderrepo.OrderDTO{
		ID:         id,
		ClientID:   uuid.New(),
		TotalPrice: amount,
		Status:     int(status),
		Address:    "Lenina st. 1",
		Phone:      "+79990001122",
		CreatedAt:  createdAt,
	}).Error)
	return id
}

func (suite *TurnoverReportQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptyReport() {
	query := queries.NewTurnoverReportQuery("2024-03-01", "2024-03-31")

	report, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(report.Orders)
	suite.Equal("0.00", report.Total.String())
}

func (suite *TurnoverReportQueryHandlerTestSuite) TestHandle_DeliveredWithinRange_SummedAndOrdered() {
	first := suite.seedOrder(order.Delivered, "60.00", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	second := suite.seedOrder(order.Delivered, "50.00", time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC))
	// Pending orders and deliveries outside the range do not count.
	suite.seedOrder(order.Pending, "99.00", time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC))
	suite.seedOrder(order.Delivered, "40.00", time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC))

	query := queries.NewTurnoverReportQuery("2024-03-01", "2024-03-02")

	report, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(report.Orders, 2)
	suite.Equal(first, report.Orders[0].ID.Bytes())
	suite.Equal(second, report.Orders[1].ID.Bytes())
	suite.Equal("60.00", report.Orders[0].TotalPrice.String())
	suite.Equal("50.00", report.Orders[1].TotalPrice.String())
	suite.Equal("110.00", report.Total.String())
}

func (suite *TurnoverReportQueryHandlerTestSuite) TestHandle_EndDateIsInclusive() {
	suite.seedOrder(order.Delivered, "25.50", time.Date(2024, 3, 2, 23, 30, 0, 0, time.UTC))

	query := queries.NewTurnoverReportQuery("2024-03-01", "2024-03-02")

	report, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(report.Orders, 1)
	suite.Equal("25.50", report.Total.String())
}

func (suite *TurnoverReportQueryHandlerTestSuite) TestHandle_MalformedDates_ReturnEmptyReport() {
	suite.seedOrder(order.Delivered, "60.00", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	testCases := []struct {
		name      string
		startDate string
		endDate   string
	}{
		{name: "malformed start date", startDate: "not-a-date", endDate: "2024-03-31"},
		{name: "malformed end date", startDate: "2024-03-01", endDate: "31/03/2024"},
		{name: "empty dates", startDate: "", endDate: ""},
		{name: "inverted range", startDate: "2024-03-31", endDate: "2024-03-01"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			query := queries.NewTurnoverReportQuery(tc.startDate, tc.endDate)

			report, err := suite.handler.Handle(context.Background(), query)

			suite.Require().NoError(err)
			suite.Empty(report.Orders)
			suite.Equal("0.00", report.Total.String())
		})
	}
}

func (suite *TurnoverReportQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.TurnoverReportQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewTurnoverReportQuery constructor")
}

func TestTurnoverReportQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(TurnoverReportQueryHandlerTestSuite))
}
