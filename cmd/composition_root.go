package cmd

import (
	"log/slog"
	"os"

	"foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/kafka"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     *postgres.GormUnitOfWorkFactory
	eventPublisher ports.OrderEventPublisher
	logger         *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var publisher ports.OrderEventPublisher = kafka.NoopOrderProducer{}
	if configs.KafkaHost != "" {
		producer, err := kafka.NewOrderProducer(
			[]string{configs.KafkaHost},
			configs.KafkaOrderChangedTopic,
			logger,
		)
		if err != nil {
			logger.Warn("Kafka producer unavailable, order events disabled", "error", err)
		} else {
			publisher = producer
		}
	}

	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     postgres.NewGormUnitOfWorkFactory(gormDB),
		eventPublisher: publisher,
		logger:         logger,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateAddToCartCommandHandler() commands.AddToCartCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddToCartCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveFromCartCommandHandler() commands.RemoveFromCartCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveFromCartCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.AcceptOrderUoWFactory = FuncAcceptOrderUoWFactory(func() commands.AcceptOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f, c.eventPublisher)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	var f commands.DeliverOrderUoWFactory = FuncDeliverOrderUoWFactory(func() commands.DeliverOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDeliveredCommandHandler(f, services.NewBonusSettlement(), c.eventPublisher)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateTurnoverReportQueryHandler() queries.TurnoverReportQueryHandler {
	return queries.NewTurnoverReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateEarningsReportQueryHandler() queries.EarningsReportQueryHandler {
	return queries.NewEarningsReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClientOrdersQueryHandler() queries.GetClientOrdersQueryHandler {
	return queries.NewGetClientOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnassignedOrdersQueryHandler() queries.GetUnassignedOrdersQueryHandler {
	return queries.NewGetUnassignedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateAddToCartCommandHandler(),
		c.CreateRemoveFromCartCommandHandler(),
		c.CreateCheckoutCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateMarkDeliveredCommandHandler(),
		c.CreateCreateCourierCommandHandler(),
		c.CreateTurnoverReportQueryHandler(),
		c.CreateEarningsReportQueryHandler(),
		c.CreateGetClientOrdersQueryHandler(),
		c.CreateGetUnassignedOrdersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateTurnoverReportQueryHandler(), c.logger)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncAcceptOrderUoWFactory func() commands.AcceptOrderUoW

func (f FuncAcceptOrderUoWFactory) Create() commands.AcceptOrderUoW {
	return f()
}

type FuncDeliverOrderUoWFactory func() commands.DeliverOrderUoW

func (f FuncDeliverOrderUoWFactory) Create() commands.DeliverOrderUoW {
	return f()
}
