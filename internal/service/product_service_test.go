package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/farmket-server/internal/constants"
	"github.com/farmket-server/internal/models"
	"github.com/farmket-server/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) (*ProductService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.SellerProfile{}, &models.Category{}, &models.Product{}, &models.ProductImage{}); err != nil {
		t.Fatalf("migrate product models failed: %v", err)
	}
	svc := NewProductService(
		repository.NewProductRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewSellerProfileRepository(db),
	)
	return svc, db
}

func seedSellerAndCategory(t *testing.T, db *gorm.DB) (*models.SellerProfile, *models.Category) {
	t.Helper()
	user := &models.User{
		Email:      "seed-seller@farmket.test",
		UserType:   constants.UserTypeSeller,
		IsActive:   true,
		DateJoined: time.Now(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create seed user failed: %v", err)
	}
	profile := &models.SellerProfile{UserID: user.ID, BusinessName: "Seed Farm"}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("create seed profile failed: %v", err)
	}
	category := &models.Category{Name: "Produce", Slug: "produce", IsActive: true}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create seed category failed: %v", err)
	}
	return profile, category
}

func baseProductInput(seller *models.SellerProfile, category *models.Category, name, sku string) ProductInput {
	return ProductInput{
		SellerID:      seller.UserID,
		Name:          name,
		CategoryID:    category.ID,
		Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(30)),
		StockQuantity: 10,
		SKU:           sku,
	}
}

func TestProductSlugSuffixSequence(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	seller, category := seedSellerAndCategory(t, db)

	slugs := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		product, err := svc.Create(baseProductInput(seller, category, "Organic Honey", fmt.Sprintf("HN-%d", i)))
		if err != nil {
			t.Fatalf("create product %d failed: %v", i, err)
		}
		slugs = append(slugs, product.Slug)
	}

	want := []string{"organic-honey", "organic-honey-1", "organic-honey-2"}
	for i := range want {
		if slugs[i] != want[i] {
			t.Fatalf("slug %d want %s got %s", i, want[i], slugs[i])
		}
	}
}

func TestProductResaveKeepsSlug(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	seller, category := seedSellerAndCategory(t, db)

	first, err := svc.Create(baseProductInput(seller, category, "Organic Honey", "HN-0"))
	if err != nil {
		t.Fatalf("create first product failed: %v", err)
	}
	if _, err := svc.Create(baseProductInput(seller, category, "Organic Honey", "HN-1")); err != nil {
		t.Fatalf("create second product failed: %v", err)
	}

	// 重新保存第一个商品：探测排除自身主键，slug 不应跳到下一个后缀。
	id := fmt.Sprintf("%d", first.ID)
	updated, err := svc.Update(id, baseProductInput(seller, category, "Organic Honey", "HN-0"))
	if err != nil {
		t.Fatalf("resave product failed: %v", err)
	}
	if updated.Slug != "organic-honey" {
		t.Fatalf("resave should keep slug organic-honey, got %s", updated.Slug)
	}
}

func TestProductManualSlugKeptVerbatim(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	seller, category := seedSellerAndCategory(t, db)

	input := baseProductInput(seller, category, "Raw Honey", "HN-M0")
	input.Slug = "honey_from_the-hills"
	product, err := svc.Create(input)
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if product.Slug != "honey_from_the-hills" {
		t.Fatalf("manual slug want honey_from_the-hills got %s", product.Slug)
	}

	conflict := baseProductInput(seller, category, "Other Honey", "HN-M1")
	conflict.Slug = "honey_from_the-hills"
	_, err = svc.Create(conflict)
	if !errors.Is(err, ErrSlugExists) {
		t.Fatalf("manual slug conflict want ErrSlugExists got %v", err)
	}
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("slug conflict should carry the duplicate class, got %v", err)
	}
}

func TestProductSKUChecks(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	seller, category := seedSellerAndCategory(t, db)

	missing := baseProductInput(seller, category, "Kale", "")
	if _, err := svc.Create(missing); !errors.Is(err, ErrSKURequired) {
		t.Fatalf("empty sku want ErrSKURequired got %v", err)
	}

	if _, err := svc.Create(baseProductInput(seller, category, "Kale", "KL-01")); err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	_, err := svc.Create(baseProductInput(seller, category, "Chard", "KL-01"))
	if !errors.Is(err, ErrSKUExists) {
		t.Fatalf("duplicate sku want ErrSKUExists got %v", err)
	}
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("sku conflict should carry the duplicate class, got %v", err)
	}
}

func TestProductRejectsUnknownReferences(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	seller, category := seedSellerAndCategory(t, db)

	badSeller := baseProductInput(seller, category, "Ghost Goods", "GG-01")
	badSeller.SellerID = 9999
	if _, err := svc.Create(badSeller); !errors.Is(err, ErrSellerInvalid) {
		t.Fatalf("unknown seller want ErrSellerInvalid got %v", err)
	}

	badCategory := baseProductInput(seller, category, "Ghost Goods", "GG-01")
	badCategory.CategoryID = 9999
	if _, err := svc.Create(badCategory); !errors.Is(err, ErrCategoryInvalid) {
		t.Fatalf("unknown category want ErrCategoryInvalid got %v", err)
	}
}

func TestProductFieldValidation(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	seller, category := seedSellerAndCategory(t, db)

	negative := baseProductInput(seller, category, "Bad Price", "BP-01")
	negative.Price = models.NewMoneyFromDecimal(decimal.NewFromInt(-1))
	if _, err := svc.Create(negative); !errors.Is(err, ErrPriceNegative) {
		t.Fatalf("negative price want ErrPriceNegative got %v", err)
	}

	badStock := baseProductInput(seller, category, "Bad Stock", "BS-01")
	badStock.StockQuantity = -5
	if _, err := svc.Create(badStock); !errors.Is(err, ErrStockNegative) {
		t.Fatalf("negative stock want ErrStockNegative got %v", err)
	}

	badUnit := baseProductInput(seller, category, "Bad Unit", "BU-01")
	badUnit.Unit = "barrel"
	if _, err := svc.Create(badUnit); !errors.Is(err, ErrUnitInvalid) {
		t.Fatalf("unknown unit want ErrUnitInvalid got %v", err)
	}

	badStatus := baseProductInput(seller, category, "Bad Status", "BT-01")
	badStatus.Status = "hidden"
	if _, err := svc.Create(badStatus); !errors.Is(err, ErrStatusInvalid) {
		t.Fatalf("unknown status want ErrStatusInvalid got %v", err)
	}

	defaults, err := svc.Create(baseProductInput(seller, category, "Defaults", "DF-01"))
	if err != nil {
		t.Fatalf("create with defaults failed: %v", err)
	}
	if defaults.Unit != constants.UnitKg {
		t.Fatalf("unit default want kg got %s", defaults.Unit)
	}
	if defaults.Status != constants.ProductStatusAvailable {
		t.Fatalf("status default want available got %s", defaults.Status)
	}
}

func TestProductDiscountValidation(t *testing.T) {
	svc, db := setupProductServiceTest(t)
	seller, category := seedSellerAndCategory(t, db)

	input := baseProductInput(seller, category, "Discounted Figs", "FG-01")
	discount := models.NewMoneyFromDecimal(decimal.NewFromInt(-2))
	input.DiscountPrice = &discount
	if _, err := svc.Create(input); !errors.Is(err, ErrDiscountInvalid) {
		t.Fatalf("negative discount want ErrDiscountInvalid got %v", err)
	}

	valid := baseProductInput(seller, category, "Discounted Figs", "FG-01")
	zero := models.NewMoneyFromDecimal(decimal.Zero)
	valid.DiscountPrice = &zero
	product, err := svc.Create(valid)
	if err != nil {
		t.Fatalf("create with zero discount failed: %v", err)
	}
	if product.DiscountPrice == nil {
		t.Fatalf("zero discount should be stored, got nil")
	}
	// 折扣价为 0 视同未打折，实际售价回落到原价。
	if got := product.FinalPrice().String(); got != "30.00" {
		t.Fatalf("zero discount final price want 30.00 got %s", got)
	}
	if !product.DiscountPercentage().IsZero() {
		t.Fatalf("zero discount percentage want 0 got %s", product.DiscountPercentage())
	}
}
