package provider

import (
	"github.com/crave-wave/cravewave/internal/cache"
	"github.com/crave-wave/cravewave/internal/config"
	"github.com/crave-wave/cravewave/internal/logger"
	"github.com/crave-wave/cravewave/internal/models"
	"github.com/crave-wave/cravewave/internal/payment/razorpay"
	"github.com/crave-wave/cravewave/internal/queue"
	"github.com/crave-wave/cravewave/internal/repository"
	"github.com/crave-wave/cravewave/internal/service"
)

// Container dependency injection container
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	PaymentCfg  *razorpay.Config

	// Repositories
	UserRepo  repository.UserRepository
	FoodRepo  repository.FoodRepository
	CartRepo  repository.CartRepository
	OrderRepo repository.OrderRepository

	// Services
	UserAuthService *service.UserAuthService
	CatalogService  *service.CatalogService
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
	OrderService    *service.OrderService
	EmailService    *service.EmailService
}

// NewContainer initializes the container
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
		PaymentCfg: &razorpay.Config{
			KeyID:     cfg.Razorpay.KeyID,
			KeySecret: cfg.Razorpay.KeySecret,
			BaseURL:   cfg.Razorpay.BaseURL,
			TimeoutMS: cfg.Razorpay.TimeoutMS,
		},
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.FoodRepo = repository.NewFoodRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.CatalogService = service.NewCatalogService(c.FoodRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.FoodRepo)
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.OrderService = service.NewOrderService(c.OrderRepo)
	c.CheckoutService = service.NewCheckoutService(
		c.CartRepo,
		c.FoodRepo,
		c.OrderRepo,
		c.UserRepo,
		c.CartService,
		c.QueueClient,
		c.PaymentCfg,
	)
}
