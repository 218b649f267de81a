package service

import (
	"fmt"
	"strings"

	"github.com/farmket-server/internal/constants"
	"github.com/farmket-server/internal/models"
	"github.com/farmket-server/internal/repository"
)

// ProductService 商品业务服务
type ProductService struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	sellers    repository.SellerProfileRepository
}

// NewProductService 创建商品服务
func NewProductService(
	repo repository.ProductRepository,
	categories repository.CategoryRepository,
	sellers repository.SellerProfileRepository,
) *ProductService {
	return &ProductService{repo: repo, categories: categories, sellers: sellers}
}

// ProductInput 创建/更新商品输入
type ProductInput struct {
	SellerID      uint
	Name          string
	Slug          string
	CategoryID    uint
	Price         models.Money
	DiscountPrice *models.Money
	StockQuantity int
	Unit          string
	SKU           string
	Status        string
	IsFeatured    *bool
}

// List 后台商品列表
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.repo.List(filter)
}

// ListPublic 前台商品列表（仅在售商品）
func (s *ProductService) ListPublic(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	filter.OnlyAvailable = true
	filter.Status = ""
	filter.WithSeller = true
	filter.WithCategory = true
	filter.WithImages = true
	return s.repo.List(filter)
}

// GetByID 获取商品详情
func (s *ProductService) GetByID(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// GetBySlug 前台按 slug 获取在售商品
func (s *ProductService) GetBySlug(slug string) (*models.Product, error) {
	product, err := s.repo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	unit, status, err := s.validateFields(input)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(input.SellerID, input.CategoryID); err != nil {
		return nil, err
	}

	slug, err := s.assignSlug(name, input.Slug, nil)
	if err != nil {
		return nil, err
	}
	sku, err := s.checkSKU(input.SKU, nil)
	if err != nil {
		return nil, err
	}

	product := models.Product{
		SellerID:      input.SellerID,
		Name:          name,
		Slug:          slug,
		CategoryID:    input.CategoryID,
		Price:         input.Price,
		DiscountPrice: input.DiscountPrice,
		StockQuantity: input.StockQuantity,
		Unit:          unit,
		SKU:           sku,
		Status:        status,
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}
	if err := s.repo.Create(&product); err != nil {
		return nil, translateStorageError(err)
	}
	return &product, nil
}

// Update 更新商品
func (s *ProductService) Update(id string, input ProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	unit, status, err := s.validateFields(input)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(input.SellerID, input.CategoryID); err != nil {
		return nil, err
	}

	slug, err := s.assignSlug(name, input.Slug, &id)
	if err != nil {
		return nil, err
	}
	sku, err := s.checkSKU(input.SKU, &id)
	if err != nil {
		return nil, err
	}

	product.SellerID = input.SellerID
	product.Name = name
	product.Slug = slug
	product.CategoryID = input.CategoryID
	product.Price = input.Price
	product.DiscountPrice = input.DiscountPrice
	product.StockQuantity = input.StockQuantity
	product.Unit = unit
	product.SKU = sku
	product.Status = status
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}

	if err := s.repo.Update(product); err != nil {
		return nil, translateStorageError(err)
	}
	return product, nil
}

// Delete 删除商品（图片随库级联删除）
func (s *ProductService) Delete(id string) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// assignSlug 商品 slug：未提供时由名称派生基准串，依次探测 base、base-1、
// base-2…，每次探测都排除自身主键（重存幂等），取第一个空闲候选；手动提供
// 的 slug 原样保留，只做一次冲突预检。预检与写入之间的竞争由唯一约束兜底。
func (s *ProductService) assignSlug(name, slug string, excludeID *string) (string, error) {
	slug = strings.TrimSpace(slug)
	if slug != "" {
		count, err := s.repo.CountBySlug(slug, excludeID)
		if err != nil {
			return "", err
		}
		if count > 0 {
			return "", ErrSlugExists
		}
		return slug, nil
	}

	base := Slugify(name)
	candidate := base
	counter := 1
	for {
		count, err := s.repo.CountBySlug(candidate, excludeID)
		if err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
		counter++
	}
}

func (s *ProductService) checkSKU(sku string, excludeID *string) (string, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return "", ErrSKURequired
	}
	count, err := s.repo.CountBySKU(sku, excludeID)
	if err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrSKUExists
	}
	return sku, nil
}

func (s *ProductService) validateFields(input ProductInput) (unit string, status string, err error) {
	if input.Price.IsNegative() {
		return "", "", ErrPriceNegative
	}
	if input.DiscountPrice != nil && input.DiscountPrice.IsNegative() {
		return "", "", ErrDiscountInvalid
	}
	if input.StockQuantity < 0 {
		return "", "", ErrStockNegative
	}

	unit = strings.TrimSpace(input.Unit)
	if unit == "" {
		unit = constants.UnitKg
	} else if !isValidUnit(unit) {
		return "", "", ErrUnitInvalid
	}

	status = strings.TrimSpace(input.Status)
	if status == "" {
		status = constants.ProductStatusAvailable
	} else if !isValidProductStatus(status) {
		return "", "", ErrStatusInvalid
	}
	return unit, status, nil
}

func (s *ProductService) checkReferences(sellerID, categoryID uint) error {
	seller, err := s.sellers.GetByUserID(fmt.Sprintf("%d", sellerID))
	if err != nil {
		return err
	}
	if seller == nil {
		return ErrSellerInvalid
	}

	category, err := s.categories.GetByID(fmt.Sprintf("%d", categoryID))
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryInvalid
	}
	return nil
}

func isValidUnit(unit string) bool {
	switch unit {
	case constants.UnitKg, constants.UnitGram, constants.UnitLiter,
		constants.UnitPiece, constants.UnitDozen, constants.UnitBunch, constants.UnitPack:
		return true
	}
	return false
}

func isValidProductStatus(status string) bool {
	switch status {
	case constants.ProductStatusAvailable, constants.ProductStatusOutOfStock, constants.ProductStatusDiscontinued:
		return true
	}
	return false
}
