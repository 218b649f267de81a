package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/farmket-server/internal/models"
	"github.com/farmket-server/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupProductImageServiceTest(t *testing.T) (*ProductImageService, *ProductService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.SellerProfile{}, &models.Category{}, &models.Product{}, &models.ProductImage{}); err != nil {
		t.Fatalf("migrate image models failed: %v", err)
	}
	products := repository.NewProductRepository(db)
	imageService := NewProductImageService(repository.NewProductImageRepository(db), products)
	productService := NewProductService(products, repository.NewCategoryRepository(db), repository.NewSellerProfileRepository(db))
	return imageService, productService, db
}

func TestProductImageCreateChecks(t *testing.T) {
	images, products, db := setupProductImageServiceTest(t)
	seller, category := seedSellerAndCategory(t, db)

	product, err := products.Create(baseProductInput(seller, category, "Gallery Apples", "GA-01"))
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	_, err = images.Create(ProductImageInput{ProductID: product.ID, Image: "   "})
	if !errors.Is(err, ErrImageRequired) {
		t.Fatalf("blank image want ErrImageRequired got %v", err)
	}

	_, err = images.Create(ProductImageInput{ProductID: 9999, Image: "products/apples.jpg"})
	if !errors.Is(err, ErrProductInvalid) {
		t.Fatalf("unknown product want ErrProductInvalid got %v", err)
	}

	image, err := images.Create(ProductImageInput{ProductID: product.ID, Image: "  products/apples.jpg  ", AltText: "Crate of apples"})
	if err != nil {
		t.Fatalf("create image failed: %v", err)
	}
	if image.Image != "products/apples.jpg" {
		t.Fatalf("image path should be trimmed, got %q", image.Image)
	}

	fetched, err := images.GetByID(fmt.Sprintf("%d", image.ID))
	if err != nil {
		t.Fatalf("get image failed: %v", err)
	}
	if fetched.AltText != "Crate of apples" {
		t.Fatalf("alt text want %q got %q", "Crate of apples", fetched.AltText)
	}

	if err := images.Delete(fmt.Sprintf("%d", image.ID)); err != nil {
		t.Fatalf("delete image failed: %v", err)
	}
	if _, err := images.GetByID(fmt.Sprintf("%d", image.ID)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted image want ErrNotFound got %v", err)
	}
}
