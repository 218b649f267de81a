package repository

import (
	"errors"
	"strings"

	"github.com/farmket-server/internal/constants"
	"github.com/farmket-server/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetBySlug(slug string, onlyAvailable bool) (*models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	CountBySlug(slug string, excludeID *string) (int64, error)
	CountBySKU(sku string, excludeID *string) (int64, error)
	CountBySeller(sellerID string) (int64, error)
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// List 商品列表
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := r.db.Model(&models.Product{})
	if filter.WithSeller {
		query = query.Preload("Seller")
	}
	if filter.WithCategory {
		query = query.Preload("Category")
	}
	if filter.WithImages {
		query = query.Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		})
	}
	if filter.OnlyAvailable {
		query = query.Where("products.status = ?", constants.ProductStatusAvailable)
	} else if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("products.status = ?", status)
	}
	if filter.CategoryID != "" {
		query = query.Where("products.category_id = ?", filter.CategoryID)
	}
	if filter.SellerID != "" {
		query = query.Where("products.seller_id = ?", filter.SellerID)
	}
	if filter.IsFeatured != nil {
		query = query.Where("products.is_featured = ?", *filter.IsFeatured)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.
			Joins("LEFT JOIN seller_profiles ON seller_profiles.user_id = products.seller_id").
			Joins("LEFT JOIN users ON users.id = seller_profiles.user_id").
			Select("products.*")
		condition, argCount := buildLikeCondition(r.db, []string{
			"products.name", "products.slug", "products.sku",
			"users.email", "seller_profiles.business_name",
		})
		query = query.Where(condition, repeatLikeArgs(like, argCount)...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("products.created_at DESC, products.id DESC").Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// GetBySlug 根据 slug 获取商品
func (r *GormProductRepository) GetBySlug(slug string, onlyAvailable bool) (*models.Product, error) {
	query := r.db.Preload("Seller").Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("slug = ?", slug)
	if onlyAvailable {
		query = query.Where("status = ?", constants.ProductStatusAvailable)
	}

	var product models.Product
	if err := query.First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetByID 根据 ID 获取商品
func (r *GormProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Seller").Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update 更新商品
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete 删除商品
func (r *GormProductRepository) Delete(id string) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// CountBySlug 统计 slug 数量
func (r *GormProductRepository) CountBySlug(slug string, excludeID *string) (int64, error) {
	var count int64
	query := r.db.Model(&models.Product{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountBySKU 统计 SKU 数量
func (r *GormProductRepository) CountBySKU(sku string, excludeID *string) (int64, error) {
	var count int64
	query := r.db.Model(&models.Product{}).Where("sku = ?", sku)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountBySeller 统计某卖家名下商品数
func (r *GormProductRepository) CountBySeller(sellerID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("seller_id = ?", sellerID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
