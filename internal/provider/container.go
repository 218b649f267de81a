package provider

import (
	"github.com/farmket-server/internal/cache"
	"github.com/farmket-server/internal/config"
	"github.com/farmket-server/internal/logger"
	"github.com/farmket-server/internal/models"
	"github.com/farmket-server/internal/repository"
	"github.com/farmket-server/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	CategoryRepo      repository.CategoryRepository
	ProductRepo       repository.ProductRepository
	ProductImageRepo  repository.ProductImageRepository
	UserRepo          repository.UserRepository
	SellerProfileRepo repository.SellerProfileRepository
	BuyerProfileRepo  repository.BuyerProfileRepository

	// Services
	CategoryService      *service.CategoryService
	ProductService       *service.ProductService
	ProductImageService  *service.ProductImageService
	UserService          *service.UserService
	SellerProfileService *service.SellerProfileService
	BuyerProfileService  *service.BuyerProfileService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存；失败不阻断启动，缓存路径自行退化
	if err := cache.InitRedis(&cfg.Redis, cfg.Cache.Enabled); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{
		Config: cfg,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.ProductImageRepo = repository.NewProductImageRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.SellerProfileRepo = repository.NewSellerProfileRepository(db)
	c.BuyerProfileRepo = repository.NewBuyerProfileRepository(db)
}

func (c *Container) initServices() {
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo, c.SellerProfileRepo)
	c.ProductImageService = service.NewProductImageService(c.ProductImageRepo, c.ProductRepo)
	c.UserService = service.NewUserService(c.UserRepo)
	c.SellerProfileService = service.NewSellerProfileService(c.SellerProfileRepo, c.UserRepo)
	c.BuyerProfileService = service.NewBuyerProfileService(c.BuyerProfileRepo, c.UserRepo)
}
