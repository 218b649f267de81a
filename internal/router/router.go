package router

import (
	"github.com/farmket-server/internal/config"
	adminhandlers "github.com/farmket-server/internal/http/handlers/admin"
	publichandlers "github.com/farmket-server/internal/http/handlers/public"
	"github.com/farmket-server/internal/logger"
	"github.com/farmket-server/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（商品图、店铺 Logo 等按路径存储的图片）
	r.Static("/uploads", "./uploads")

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口（买家侧只读）
		apiV1.GET("/categories", publicHandler.GetCategories)
		apiV1.GET("/products", publicHandler.GetProducts)
		apiV1.GET("/products/:slug", publicHandler.GetProductBySlug)

		// 管理员接口
		admin := apiV1.Group("/admin")
		{
			// 分类管理
			admin.GET("/categories", adminHandler.GetAdminCategories)
			admin.GET("/categories/:id", adminHandler.GetAdminCategory)
			admin.POST("/categories", adminHandler.CreateCategory)
			admin.PUT("/categories/:id", adminHandler.UpdateCategory)
			admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

			// 商品管理
			admin.GET("/products", adminHandler.GetAdminProducts)
			admin.GET("/products/:id", adminHandler.GetAdminProduct)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)

			// 商品图片管理
			admin.GET("/product-images", adminHandler.GetAdminProductImages)
			admin.POST("/product-images", adminHandler.CreateProductImage)
			admin.PUT("/product-images/:id", adminHandler.UpdateProductImage)
			admin.DELETE("/product-images/:id", adminHandler.DeleteProductImage)

			// 用户管理
			admin.GET("/users", adminHandler.GetAdminUsers)
			admin.GET("/users/:id", adminHandler.GetAdminUser)
			admin.POST("/users", adminHandler.CreateAdminUser)
			admin.POST("/users/superuser", adminHandler.CreateAdminSuperuser)
			admin.PUT("/users/:id", adminHandler.UpdateAdminUser)
			admin.DELETE("/users/:id", adminHandler.DeleteAdminUser)

			// 卖家档案管理
			admin.GET("/seller-profiles", adminHandler.GetAdminSellerProfiles)
			admin.GET("/seller-profiles/:user_id", adminHandler.GetAdminSellerProfile)
			admin.POST("/seller-profiles", adminHandler.CreateSellerProfile)
			admin.PUT("/seller-profiles/:user_id", adminHandler.UpdateSellerProfile)
			admin.POST("/seller-profiles/:user_id/verify", adminHandler.VerifySellerProfile)
			admin.DELETE("/seller-profiles/:user_id", adminHandler.DeleteSellerProfile)

			// 买家档案管理
			admin.GET("/buyer-profiles", adminHandler.GetAdminBuyerProfiles)
			admin.GET("/buyer-profiles/:user_id", adminHandler.GetAdminBuyerProfile)
			admin.POST("/buyer-profiles", adminHandler.CreateBuyerProfile)
			admin.PUT("/buyer-profiles/:user_id", adminHandler.UpdateBuyerProfile)
			admin.DELETE("/buyer-profiles/:user_id", adminHandler.DeleteBuyerProfile)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
