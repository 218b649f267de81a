package main

import (
	"fmt"
	"log"

	"github.com/farmket-server/internal/config"
	"github.com/farmket-server/internal/constants"
	"github.com/farmket-server/internal/logger"
	"github.com/farmket-server/internal/models"
	"github.com/farmket-server/internal/provider"
	"github.com/farmket-server/internal/repository"
	"github.com/farmket-server/internal/service"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 写入走服务层，slug 派生、邮箱归一化等规则与线上一致
	c := provider.NewContainer(cfg)

	// 分类树
	vegetables := upsertCategory(c, stdLog, service.CategoryInput{
		Name:        "Vegetables",
		Slug:        "vegetables",
		Description: "Seasonal vegetables straight from local fields.",
	}, nil)
	upsertCategory(c, stdLog, service.CategoryInput{
		Name:        "Leafy Greens",
		Slug:        "leafy-greens",
		Description: "Lettuce, kale, chard and other greens.",
	}, vegetables)
	upsertCategory(c, stdLog, service.CategoryInput{
		Name:        "Root Vegetables",
		Slug:        "root-vegetables",
		Description: "Carrots, beets, radishes and potatoes.",
	}, vegetables)
	fruits := upsertCategory(c, stdLog, service.CategoryInput{
		Name:        "Fruits",
		Slug:        "fruits",
		Description: "Orchard and vine fruit picked at peak ripeness.",
	}, nil)
	upsertCategory(c, stdLog, service.CategoryInput{
		Name:        "Berries",
		Slug:        "berries",
		Description: "Strawberries, blueberries and seasonal berries.",
	}, fruits)
	dairy := upsertCategory(c, stdLog, service.CategoryInput{
		Name:        "Dairy & Eggs",
		Slug:        "dairy-eggs",
		Description: "Small-batch dairy and free-range eggs.",
	}, nil)
	pantry := upsertCategory(c, stdLog, service.CategoryInput{
		Name:        "Honey & Preserves",
		Slug:        "honey-preserves",
		Description: "Raw honey, jams and farm preserves.",
	}, nil)

	// 卖家账号与店铺
	sellerUser := ensureUser(c, stdLog, service.CreateUserInput{
		Email:       "rosa@greenacres.farm",
		Password:    "farmket-demo",
		UserType:    constants.UserTypeSeller,
		FirstName:   "Rosa",
		LastName:    "Alvarez",
		PhoneNumber: "+15035550117",
		City:        "Salinas",
		State:       "CA",
	})
	if sellerUser != nil {
		ensureSellerProfile(c, stdLog, service.SellerProfileInput{
			UserID:              sellerUser.ID,
			BusinessName:        "Green Acres Farm",
			BusinessDescription: "Family farm growing organic vegetables and berries since 1998.",
			BusinessLogo:        "sellers/green-acres/logo.png",
			TaxID:               "94-1234567",
		})
	}

	// 买家账号与偏好
	buyerUser := ensureUser(c, stdLog, service.CreateUserInput{
		Email:     "sam@farmket.dev",
		Password:  "farmket-demo",
		UserType:  constants.UserTypeBuyer,
		FirstName: "Sam",
		LastName:  "Porter",
		City:      "Portland",
		State:     "OR",
	})
	if buyerUser != nil && vegetables != nil && fruits != nil {
		ensureBuyerProfile(c, stdLog, service.BuyerProfileInput{
			UserID:              buyerUser.ID,
			PreferredCategories: []uint{vegetables.ID, fruits.ID},
		})
	}

	// 商品与图片
	if sellerUser != nil {
		featured := true
		products := []struct {
			input  service.ProductInput
			images []service.ProductImageInput
		}{
			{
				input: service.ProductInput{
					SellerID:      sellerUser.ID,
					Name:          "Organic Heirloom Tomatoes",
					Slug:          "organic-heirloom-tomatoes",
					CategoryID:    categoryID(vegetables),
					Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(4.50)),
					StockQuantity: 120,
					Unit:          constants.UnitKg,
					SKU:           "GA-VEG-001",
					IsFeatured:    &featured,
				},
				images: []service.ProductImageInput{
					{Image: "products/heirloom-tomatoes-1.jpg", AltText: "Heirloom tomatoes in a wooden crate"},
					{Image: "products/heirloom-tomatoes-2.jpg", AltText: "Sliced heirloom tomatoes"},
				},
			},
			{
				input: service.ProductInput{
					SellerID:      sellerUser.ID,
					Name:          "Rainbow Carrot Bunch",
					Slug:          "rainbow-carrot-bunch",
					CategoryID:    categoryID(vegetables),
					Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(3.20)),
					DiscountPrice: moneyPtr(2.60),
					StockQuantity: 80,
					Unit:          constants.UnitBunch,
					SKU:           "GA-VEG-002",
				},
				images: []service.ProductImageInput{
					{Image: "products/rainbow-carrots.jpg", AltText: "Bunch of rainbow carrots"},
				},
			},
			{
				input: service.ProductInput{
					SellerID:      sellerUser.ID,
					Name:          "Fresh Strawberries",
					Slug:          "fresh-strawberries",
					CategoryID:    categoryID(fruits),
					Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(6.80)),
					DiscountPrice: moneyPtr(5.90),
					StockQuantity: 45,
					Unit:          constants.UnitPack,
					SKU:           "GA-FRU-001",
					IsFeatured:    &featured,
				},
				images: []service.ProductImageInput{
					{Image: "products/strawberries.jpg", AltText: "Basket of fresh strawberries"},
				},
			},
			{
				input: service.ProductInput{
					SellerID:      sellerUser.ID,
					Name:          "Free-Range Eggs",
					Slug:          "free-range-eggs",
					CategoryID:    categoryID(dairy),
					Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(5.40)),
					StockQuantity: 60,
					Unit:          constants.UnitDozen,
					SKU:           "GA-DAI-001",
				},
				images: []service.ProductImageInput{
					{Image: "products/free-range-eggs.jpg", AltText: "Carton of free-range eggs"},
				},
			},
			{
				input: service.ProductInput{
					SellerID:      sellerUser.ID,
					Name:          "Raw Wildflower Honey",
					Slug:          "raw-wildflower-honey",
					CategoryID:    categoryID(pantry),
					Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(12.00)),
					StockQuantity: 30,
					Unit:          constants.UnitPiece,
					SKU:           "GA-PAN-001",
				},
				images: []service.ProductImageInput{
					{Image: "products/wildflower-honey.jpg", AltText: "Jar of raw wildflower honey"},
				},
			},
			{
				input: service.ProductInput{
					SellerID:      sellerUser.ID,
					Name:          "Winter Squash (Sold Out Demo)",
					Slug:          "winter-squash",
					CategoryID:    categoryID(vegetables),
					Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(2.90)),
					StockQuantity: 0,
					Unit:          constants.UnitKg,
					SKU:           "GA-VEG-003",
					Status:        constants.ProductStatusOutOfStock,
				},
			},
		}

		for _, item := range products {
			product := upsertProduct(c, stdLog, item.input)
			if product == nil {
				continue
			}
			ensureProductImages(c, stdLog, product, item.images)
		}
	}

	fmt.Println("\n✅ Demo data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 7 Categories (2 with subcategories)")
	fmt.Println("- 1 Seller (rosa@greenacres.farm) + verified profile")
	fmt.Println("- 1 Buyer (sam@farmket.dev) + preferences")
	fmt.Println("- 6 Products (2 discounted, 1 sold out)")
	fmt.Println("- Product images")
}

// upsertCategory 按 slug 建或更新分类
func upsertCategory(c *provider.Container, stdLog *log.Logger, input service.CategoryInput, parent *models.Category) *models.Category {
	if parent != nil {
		parentID := parent.ID
		input.ParentID = &parentID
	}

	existing, err := c.CategoryRepo.GetBySlug(input.Slug, false)
	if err != nil {
		stdLog.Printf("Failed to look up category %s: %v", input.Slug, err)
		return nil
	}
	if existing == nil {
		category, err := c.CategoryService.Create(input)
		if err != nil {
			stdLog.Printf("Failed to create category %s: %v", input.Slug, err)
			return nil
		}
		stdLog.Printf("Created category: %s", category.Slug)
		return category
	}

	category, err := c.CategoryService.Update(fmt.Sprintf("%d", existing.ID), input)
	if err != nil {
		stdLog.Printf("Failed to update category %s: %v", input.Slug, err)
		return existing
	}
	stdLog.Printf("Updated category: %s", category.Slug)
	return category
}

// ensureUser 按邮箱建用户；已存在则复用
func ensureUser(c *provider.Container, stdLog *log.Logger, input service.CreateUserInput) *models.User {
	existing, err := c.UserRepo.GetByEmail(input.Email)
	if err != nil {
		stdLog.Printf("Failed to look up user %s: %v", input.Email, err)
		return nil
	}
	if existing != nil {
		stdLog.Printf("User already exists: %s", existing.Email)
		return existing
	}

	user, err := c.UserService.CreateUser(input)
	if err != nil {
		stdLog.Printf("Failed to create user %s: %v", input.Email, err)
		return nil
	}
	stdLog.Printf("Created user: %s", user.Email)
	return user
}

// ensureSellerProfile 建店铺档案并标记已认证
func ensureSellerProfile(c *provider.Container, stdLog *log.Logger, input service.SellerProfileInput) {
	userID := fmt.Sprintf("%d", input.UserID)
	existing, err := c.SellerProfileRepo.GetByUserID(userID)
	if err != nil {
		stdLog.Printf("Failed to look up seller profile for user %d: %v", input.UserID, err)
		return
	}
	if existing == nil {
		if _, err := c.SellerProfileService.Create(input); err != nil {
			stdLog.Printf("Failed to create seller profile %s: %v", input.BusinessName, err)
			return
		}
		stdLog.Printf("Created seller profile: %s", input.BusinessName)
	} else {
		if _, err := c.SellerProfileService.Update(userID, input); err != nil {
			stdLog.Printf("Failed to update seller profile %s: %v", input.BusinessName, err)
			return
		}
		stdLog.Printf("Updated seller profile: %s", input.BusinessName)
	}

	if _, err := c.SellerProfileService.Verify(userID); err != nil {
		stdLog.Printf("Failed to verify seller profile %s: %v", input.BusinessName, err)
	}
}

// ensureBuyerProfile 建买家档案；已存在则更新偏好分类
func ensureBuyerProfile(c *provider.Container, stdLog *log.Logger, input service.BuyerProfileInput) {
	userID := fmt.Sprintf("%d", input.UserID)
	existing, err := c.BuyerProfileRepo.GetByUserID(userID)
	if err != nil {
		stdLog.Printf("Failed to look up buyer profile for user %d: %v", input.UserID, err)
		return
	}
	if existing == nil {
		if _, err := c.BuyerProfileService.Create(input); err != nil {
			stdLog.Printf("Failed to create buyer profile for user %d: %v", input.UserID, err)
			return
		}
		stdLog.Printf("Created buyer profile for user %d", input.UserID)
		return
	}
	if _, err := c.BuyerProfileService.Update(userID, input); err != nil {
		stdLog.Printf("Failed to update buyer profile for user %d: %v", input.UserID, err)
		return
	}
	stdLog.Printf("Updated buyer profile for user %d", input.UserID)
}

// upsertProduct 按 slug 建或更新商品
func upsertProduct(c *provider.Container, stdLog *log.Logger, input service.ProductInput) *models.Product {
	if input.CategoryID == 0 {
		stdLog.Printf("Skip product %s: category missing", input.Slug)
		return nil
	}

	existing, err := c.ProductRepo.GetBySlug(input.Slug, false)
	if err != nil {
		stdLog.Printf("Failed to look up product %s: %v", input.Slug, err)
		return nil
	}
	if existing == nil {
		product, err := c.ProductService.Create(input)
		if err != nil {
			stdLog.Printf("Failed to create product %s: %v", input.Slug, err)
			return nil
		}
		stdLog.Printf("Created product: %s", product.Slug)
		return product
	}

	product, err := c.ProductService.Update(fmt.Sprintf("%d", existing.ID), input)
	if err != nil {
		stdLog.Printf("Failed to update product %s: %v", input.Slug, err)
		return existing
	}
	stdLog.Printf("Updated product: %s", product.Slug)
	return product
}

// ensureProductImages 商品还没有任何图片时补种
func ensureProductImages(c *provider.Container, stdLog *log.Logger, product *models.Product, images []service.ProductImageInput) {
	if len(images) == 0 {
		return
	}

	_, total, err := c.ProductImageRepo.List(repository.ProductImageListFilter{
		Page:      1,
		PageSize:  1,
		ProductID: fmt.Sprintf("%d", product.ID),
	})
	if err != nil {
		stdLog.Printf("Failed to list images for %s: %v", product.Slug, err)
		return
	}
	if total > 0 {
		stdLog.Printf("Images already exist for: %s", product.Slug)
		return
	}

	for _, image := range images {
		image.ProductID = product.ID
		if _, err := c.ProductImageService.Create(image); err != nil {
			stdLog.Printf("Failed to create image %s: %v", image.Image, err)
			continue
		}
		stdLog.Printf("Created image for %s: %s", product.Slug, image.Image)
	}
}

func categoryID(category *models.Category) uint {
	if category == nil {
		return 0
	}
	return category.ID
}

func moneyPtr(value float64) *models.Money {
	money := models.NewMoneyFromDecimal(decimal.NewFromFloat(value))
	return &money
}
