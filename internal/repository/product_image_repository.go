package repository

import (
	"errors"
	"strings"

	"github.com/farmket-server/internal/models"

	"gorm.io/gorm"
)

// ProductImageRepository 商品图片数据访问接口
type ProductImageRepository interface {
	List(filter ProductImageListFilter) ([]models.ProductImage, int64, error)
	GetByID(id string) (*models.ProductImage, error)
	Create(image *models.ProductImage) error
	Update(image *models.ProductImage) error
	Delete(id string) error
	CountByProduct(productID string) (int64, error)
}

// GormProductImageRepository GORM 实现
type GormProductImageRepository struct {
	db *gorm.DB
}

// NewProductImageRepository 创建商品图片仓库
func NewProductImageRepository(db *gorm.DB) *GormProductImageRepository {
	return &GormProductImageRepository{db: db}
}

// List 商品图片列表
func (r *GormProductImageRepository) List(filter ProductImageListFilter) ([]models.ProductImage, int64, error) {
	var images []models.ProductImage

	query := r.db.Model(&models.ProductImage{})
	if filter.ProductID != "" {
		query = query.Where("product_images.product_id = ?", filter.ProductID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.
			Joins("LEFT JOIN products ON products.id = product_images.product_id").
			Select("product_images.*")
		condition, argCount := buildLikeCondition(r.db, []string{"products.name", "product_images.alt_text"})
		query = query.Where(condition, repeatLikeArgs(like, argCount)...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("product_images.created_at DESC, product_images.id DESC").Find(&images).Error; err != nil {
		return nil, 0, err
	}

	return images, total, nil
}

// GetByID 根据 ID 获取商品图片
func (r *GormProductImageRepository) GetByID(id string) (*models.ProductImage, error) {
	var image models.ProductImage
	if err := r.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

// Create 创建商品图片
func (r *GormProductImageRepository) Create(image *models.ProductImage) error {
	return r.db.Create(image).Error
}

// Update 更新商品图片
func (r *GormProductImageRepository) Update(image *models.ProductImage) error {
	return r.db.Save(image).Error
}

// Delete 删除商品图片
func (r *GormProductImageRepository) Delete(id string) error {
	return r.db.Delete(&models.ProductImage{}, id).Error
}

// CountByProduct 统计商品的图片数量
func (r *GormProductImageRepository) CountByProduct(productID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.ProductImage{}).Where("product_id = ?", productID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
