package cmd

import (
	"errors"
	"log/slog"
	"strings"

	httpin "catering/internal/adapters/in/http"
	"catering/internal/adapters/out/kafka"
	"catering/internal/adapters/out/postgres"
	redisstore "catering/internal/adapters/out/redis"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/delivery"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/payment"
	"catering/internal/core/ports"
	"catering/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	clock      kernel.Clock
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	closers    []func() error
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	c := &CompositionRoot{
		configs: configs,
		gormDB:  gormDB,
		clock:   kernel.NewSystemClock(configs.Location),
		logger:  logger,
	}
	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, c.createEventPublisher(), logger)
	return c
}

// Close releases the broker and cache connections.
func (c *CompositionRoot) Close() error {
	var errList []error
	for _, closeFn := range c.closers {
		errList = append(errList, closeFn())
	}
	return errors.Join(errList...)
}

func (c *CompositionRoot) createEventPublisher() ports.EventPublisher {
	if c.configs.KafkaHost == "" {
		c.logger.Info("KAFKA_HOST is not set, domain events are not published")
		return kafka.NopPublisher{}
	}

	writer := kafka.NewWriter(strings.Split(c.configs.KafkaHost, ",")...)
	c.closers = append(c.closers, writer.Close)
	return kafka.NewPublisher(writer, kafka.Topics{
		order.AggregateType:    c.configs.KafkaOrderChangedTopic,
		payment.AggregateType:  c.configs.KafkaPaymentChangedTopic,
		delivery.AggregateType: c.configs.KafkaDeliveryChangedTopic,
	})
}

func (c *CompositionRoot) createIdempotencyStore() httpin.IdempotencyStore {
	if c.configs.RedisAddr == "" {
		c.logger.Info("REDIS_ADDR is not set, Idempotency-Key is ignored")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     c.configs.RedisAddr,
		Password: c.configs.RedisPassword,
	})
	c.closers = append(c.closers, rdb.Close)
	return redisstore.NewIdempotencyStore(rdb, c.configs.IdempotencyTTL)
}

// CreateRouter wires every handler into the HTTP stack.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(
		httpin.OrderHandlers{
			Create:       c.CreateCreateOrderCommandHandler(),
			Update:       c.CreateUpdateOrderCommandHandler(),
			ChangeStatus: c.CreateChangeOrderStatusCommandHandler(),
			Remove:       c.CreateRemoveOrderCommandHandler(),
			Queries:      c.CreateOrderQueryHandler(),
		},
		httpin.PaymentHandlers{
			Create:       c.CreateCreatePaymentCommandHandler(),
			Update:       c.CreateUpdatePaymentCommandHandler(),
			ChangeStatus: c.CreateChangePaymentStatusCommandHandler(),
			Complete:     c.CreateCompletePaymentCommandHandler(),
			Remove:       c.CreateRemovePaymentCommandHandler(),
			Queries:      c.CreatePaymentQueryHandler(),
		},
		httpin.DeliveryHandlers{
			Schedule:     c.CreateScheduleDeliveryCommandHandler(),
			Update:       c.CreateUpdateDeliveryCommandHandler(),
			ChangeStatus: c.CreateChangeDeliveryStatusCommandHandler(),
			Remove:       c.CreateRemoveDeliveryCommandHandler(),
			Queries:      c.CreateDeliveryQueryHandler(),
		},
		httpin.CatalogHandlers{
			Commands: c.CreateCatalogCommandHandler(),
			Queries:  c.CreateCatalogQueryHandler(),
		},
	)

	return httpin.NewRouter(server, httpin.RouterConfig{
		Logger:           c.logger,
		Idempotency:      c.createIdempotencyStore(),
		ValidateRequests: c.configs.OpenAPIValidation,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateOrderQueryHandler(),
		c.CreatePaymentQueryHandler(),
		c.CreateDeliveryQueryHandler(),
		c.configs.DigestCron,
		c.configs.Location,
		c.logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	return commands.NewRemoveOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreatePaymentCommandHandler() commands.CreatePaymentCommandHandler {
	return commands.NewCreatePaymentCommandHandler(c.paymentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdatePaymentCommandHandler() commands.UpdatePaymentCommandHandler {
	return commands.NewUpdatePaymentCommandHandler(c.paymentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateChangePaymentStatusCommandHandler() commands.ChangePaymentStatusCommandHandler {
	return commands.NewChangePaymentStatusCommandHandler(c.paymentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCompletePaymentCommandHandler() commands.CompletePaymentCommandHandler {
	return commands.NewCompletePaymentCommandHandler(c.paymentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRemovePaymentCommandHandler() commands.RemovePaymentCommandHandler {
	return commands.NewRemovePaymentCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateScheduleDeliveryCommandHandler() commands.ScheduleDeliveryCommandHandler {
	return commands.NewScheduleDeliveryCommandHandler(c.deliveryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateDeliveryCommandHandler() commands.UpdateDeliveryCommandHandler {
	return commands.NewUpdateDeliveryCommandHandler(c.deliveryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateChangeDeliveryStatusCommandHandler() commands.ChangeDeliveryStatusCommandHandler {
	return commands.NewChangeDeliveryStatusCommandHandler(c.deliveryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRemoveDeliveryCommandHandler() commands.RemoveDeliveryCommandHandler {
	return commands.NewRemoveDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCatalogCommandHandler() commands.CatalogCommandHandler {
	return commands.NewCatalogCommandHandler(c.catalogUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateOrderQueryHandler() queries.OrderQueryHandler {
	return queries.NewOrderQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreatePaymentQueryHandler() queries.PaymentQueryHandler {
	return queries.NewPaymentQueryHandler(c.gormDB, c.clock, c.CreateOrderQueryHandler())
}

func (c *CompositionRoot) CreateDeliveryQueryHandler() queries.DeliveryQueryHandler {
	return queries.NewDeliveryQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateCatalogQueryHandler() queries.CatalogQueryHandler {
	return queries.NewCatalogQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
