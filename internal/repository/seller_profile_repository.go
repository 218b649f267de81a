package repository

import (
	"errors"
	"strings"

	"github.com/farmket-server/internal/models"

	"gorm.io/gorm"
)

// SellerProfileRepository 卖家档案数据访问接口
type SellerProfileRepository interface {
	List(filter SellerProfileListFilter) ([]models.SellerProfile, int64, error)
	GetByUserID(userID string) (*models.SellerProfile, error)
	Create(profile *models.SellerProfile) error
	Update(profile *models.SellerProfile) error
	Delete(userID string) error
	CountByBusinessName(name string, excludeUserID *string) (int64, error)
}

// GormSellerProfileRepository GORM 实现
type GormSellerProfileRepository struct {
	db *gorm.DB
}

// NewSellerProfileRepository 创建卖家档案仓库
func NewSellerProfileRepository(db *gorm.DB) *GormSellerProfileRepository {
	return &GormSellerProfileRepository{db: db}
}

// List 卖家档案列表
func (r *GormSellerProfileRepository) List(filter SellerProfileListFilter) ([]models.SellerProfile, int64, error) {
	var profiles []models.SellerProfile

	query := r.db.Model(&models.SellerProfile{})
	if filter.WithUser {
		query = query.Preload("User")
	}
	if filter.IsVerifiedSeller != nil {
		query = query.Where("seller_profiles.is_verified_seller = ?", *filter.IsVerifiedSeller)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.
			Joins("LEFT JOIN users ON users.id = seller_profiles.user_id").
			Select("seller_profiles.*")
		condition, argCount := buildLikeCondition(r.db, []string{"seller_profiles.business_name", "users.email"})
		query = query.Where(condition, repeatLikeArgs(like, argCount)...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("seller_profiles.rating DESC, seller_profiles.user_id ASC").Find(&profiles).Error; err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

// GetByUserID 根据用户 ID 获取卖家档案
func (r *GormSellerProfileRepository) GetByUserID(userID string) (*models.SellerProfile, error) {
	var profile models.SellerProfile
	if err := r.db.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Create 创建卖家档案
func (r *GormSellerProfileRepository) Create(profile *models.SellerProfile) error {
	return r.db.Create(profile).Error
}

// Update 更新卖家档案
func (r *GormSellerProfileRepository) Update(profile *models.SellerProfile) error {
	return r.db.Save(profile).Error
}

// Delete 删除卖家档案
func (r *GormSellerProfileRepository) Delete(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.SellerProfile{}).Error
}

// CountByBusinessName 统计店铺名数量
func (r *GormSellerProfileRepository) CountByBusinessName(name string, excludeUserID *string) (int64, error) {
	var count int64
	query := r.db.Model(&models.SellerProfile{}).Where("business_name = ?", name)
	if excludeUserID != nil {
		query = query.Where("user_id != ?", *excludeUserID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
