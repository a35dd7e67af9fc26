package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpadapter "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/idempotency"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/adapters/out/postgres/loyaltyrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/telegram"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory

	redisClient *redis.Client
	idempotency ports.IdempotencyGuard
	notifier    *telegram.Notifier
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}

	if cfg.RedisAddr != "" {
		c.redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		c.idempotency = idempotency.NewRedisGuard(c.redisClient)
	} else {
		logger.Info("REDIS_ADDR is empty, idempotency keys are ignored")
	}

	sender, err := telegram.NewBotSender(cfg.TelegramBotToken)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("init telegram bot: %w", err), c.Close())
	}
	if sender == nil {
		logger.Info("TELEGRAM_BOT_TOKEN is empty, status notifications are only logged")
	}
	c.notifier = telegram.NewNotifier(
		sender,
		loyaltyrepo.NewGormCustomerRepository(gormDB),
		logger,
		cfg.NotificationQueue,
	)

	return c, nil
}

// Close releases the connections owned by the root. The database pool is
// owned by the caller.
func (c *CompositionRoot) Close() error {
	if c.redisClient == nil {
		return nil
	}
	return c.redisClient.Close()
}

func (c *CompositionRoot) CreateOrderPricer() services.OrderPricer {
	return services.NewOrderPricer(catalogrepo.NewGormCatalogStore(c.gormDB), services.NewGeoEstimator())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.CreateOrderPricer(), c.idempotency)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.CreateUpdateOrderStatusCommandHandler())
}

func (c *CompositionRoot) CreateProcessLoyaltyCreditsCommandHandler() commands.ProcessLoyaltyCreditsCommandHandler {
	var f commands.LoyaltyUoWFactory = FuncLoyaltyUoWFactory(func() commands.LoyaltyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessLoyaltyCreditsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB, nil))
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB, nil),
		catalogrepo.NewGormCatalogStore(c.gormDB),
	)
}

func (c *CompositionRoot) CreateListUserOrdersQueryHandler() queries.ListUserOrdersQueryHandler {
	return queries.NewListUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRestaurantsQueryHandler() queries.ListRestaurantsQueryHandler {
	return queries.NewListRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantQueryHandler() queries.GetRestaurantQueryHandler {
	return queries.NewGetRestaurantQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMenuItemsQueryHandler() queries.ListMenuItemsQueryHandler {
	return queries.NewListMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLoyaltyQueryHandler() queries.GetLoyaltyQueryHandler {
	return queries.NewGetLoyaltyQueryHandler(c.gormDB)
}

// CreateEcho builds the HTTP server with every route registered.
func (c *CompositionRoot) CreateEcho() *echo.Echo {
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),

		GetOrder:        c.CreateGetOrderQueryHandler(),
		TrackOrder:      c.CreateTrackOrderQueryHandler(),
		ListUserOrders:  c.CreateListUserOrdersQueryHandler(),
		ListRestaurants: c.CreateListRestaurantsQueryHandler(),
		GetRestaurant:   c.CreateGetRestaurantQueryHandler(),
		ListMenuItems:   c.CreateListMenuItemsQueryHandler(),
		GetLoyalty:      c.CreateGetLoyaltyQueryHandler(),
	}, c.logger)

	return httpadapter.NewEcho(server, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	loyaltyJob := jobs.NewLoyaltyCreditJob(
		c.CreateProcessLoyaltyCreditsCommandHandler(),
		c.cfg.LoyaltyJobSchedule,
		c.cfg.LoyaltyBatchSize,
		c.logger,
	)
	return jobs.NewJobManager(loyaltyJob, c.notifier, c.logger)
}

// Ping checks the external dependencies the root holds.
func (c *CompositionRoot) Ping(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	if err = sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	if c.redisClient != nil {
		if err = c.redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("ping redis: %w", err)
		}
	}
	return nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLoyaltyUoWFactory func() commands.LoyaltyUoW

func (f FuncLoyaltyUoWFactory) Create() commands.LoyaltyUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
