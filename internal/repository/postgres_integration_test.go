//go:build integration
// +build integration

package repository

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/farmket-server/internal/constants"
	"github.com/farmket-server/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	cleanupModels := []interface{}{
		&models.ProductImage{},
		&models.Product{},
		&models.BuyerProfile{},
		&models.SellerProfile{},
		&models.Category{},
		&models.User{},
	}
	_ = db.Migrator().DropTable(cleanupModels...)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.SellerProfile{},
		&models.BuyerProfile{},
		&models.Product{},
		&models.ProductImage{},
	); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(cleanupModels...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func createPostgresSeller(t *testing.T, db *gorm.DB, email, businessName string) *models.SellerProfile {
	t.Helper()

	user := &models.User{
		Email:      email,
		UserType:   constants.UserTypeSeller,
		FirstName:  "Nadia",
		LastName:   "Brooks",
		IsActive:   true,
		DateJoined: time.Now().UTC(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create seller user failed: %v", err)
	}

	profile := &models.SellerProfile{
		UserID:       user.ID,
		BusinessName: businessName,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("create seller profile failed: %v", err)
	}
	return profile
}

// TestPostgresCaseInsensitiveSearchRepositories 验证 ILIKE 路径：
// SQLite 的 LIKE 本身不区分大小写，这组断言只有在 PostgreSQL 下才真正生效。
func TestPostgresCaseInsensitiveSearchRepositories(t *testing.T) {
	db := setupPostgresIntegrationDB(t)

	seller := createPostgresSeller(t, db, "nadia@sunriseorganics.farm", "Sunrise Organics")

	category := &models.Category{
		Name:     "Postgres Vegetables",
		Slug:     "pg-vegetables",
		IsActive: true,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	productRepo := NewProductRepository(db)
	product := &models.Product{
		SellerID:      seller.UserID,
		Name:          "Heirloom Tomatoes",
		Slug:          "heirloom-tomatoes",
		CategoryID:    category.ID,
		Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(4.50)),
		StockQuantity: 20,
		Unit:          constants.UnitKg,
		SKU:           "PG-VEG-001",
		Status:        constants.ProductStatusAvailable,
	}
	if err := productRepo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	rows, total, err := productRepo.List(ProductListFilter{
		Page:   1,
		Search: "HEIRLOOM",
	})
	if err != nil {
		t.Fatalf("product list search by name failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("product list search by name want 1 got total=%d len=%d", total, len(rows))
	}

	rows, total, err = productRepo.List(ProductListFilter{
		Page:   1,
		Search: "sunrise",
	})
	if err != nil {
		t.Fatalf("product list search by seller failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("product list search by seller want 1 got total=%d len=%d", total, len(rows))
	}

	sellerRepo := NewSellerProfileRepository(db)
	sellerRows, sellerTotal, err := sellerRepo.List(SellerProfileListFilter{
		Page:   1,
		Search: "ORGANICS",
	})
	if err != nil {
		t.Fatalf("seller list search failed: %v", err)
	}
	if sellerTotal != 1 || len(sellerRows) != 1 {
		t.Fatalf("seller list search want 1 got total=%d len=%d", sellerTotal, len(sellerRows))
	}

	userRepo := NewUserRepository(db)
	userRows, userTotal, err := userRepo.List(UserListFilter{
		Page:   1,
		Search: "SunriseOrganics",
	})
	if err != nil {
		t.Fatalf("user list search failed: %v", err)
	}
	if userTotal != 1 || len(userRows) != 1 {
		t.Fatalf("user list search want 1 got total=%d len=%d", userTotal, len(userRows))
	}
}

func TestPostgresBuyerPreferredCategoriesRoundTrip(t *testing.T) {
	db := setupPostgresIntegrationDB(t)

	buyer := &models.User{
		Email:      "pg-buyer@farmket.dev",
		UserType:   constants.UserTypeBuyer,
		IsActive:   true,
		DateJoined: time.Now().UTC(),
	}
	if err := db.Create(buyer).Error; err != nil {
		t.Fatalf("create buyer failed: %v", err)
	}

	var categoryIDs []uint
	for i := 1; i <= 3; i++ {
		category := &models.Category{
			Name:     fmt.Sprintf("Preference %d", i),
			Slug:     fmt.Sprintf("pg-preference-%d", i),
			IsActive: true,
		}
		if err := db.Create(category).Error; err != nil {
			t.Fatalf("create category %d failed: %v", i, err)
		}
		categoryIDs = append(categoryIDs, category.ID)
	}

	repo := NewBuyerProfileRepository(db)
	profile := &models.BuyerProfile{
		UserID:              buyer.ID,
		PreferredCategories: models.UintList{categoryIDs[2], categoryIDs[0]},
	}
	if err := repo.Create(profile); err != nil {
		t.Fatalf("create buyer profile failed: %v", err)
	}

	got, err := repo.GetByUserID(fmt.Sprintf("%d", buyer.ID))
	if err != nil {
		t.Fatalf("get buyer profile failed: %v", err)
	}
	if got == nil {
		t.Fatalf("buyer profile should exist")
	}
	if len(got.PreferredCategories) != 2 {
		t.Fatalf("preferred categories len want 2 got %d", len(got.PreferredCategories))
	}
	// 偏好分类按写入顺序持久化，顺序本身有语义。
	if got.PreferredCategories[0] != categoryIDs[2] || got.PreferredCategories[1] != categoryIDs[0] {
		t.Fatalf("preferred categories order changed: got %v", got.PreferredCategories)
	}
}
