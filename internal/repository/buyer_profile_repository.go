package repository

import (
	"errors"

	"github.com/farmket-server/internal/models"

	"gorm.io/gorm"
)

// BuyerProfileRepository 买家档案数据访问接口
type BuyerProfileRepository interface {
	List(filter BuyerProfileListFilter) ([]models.BuyerProfile, int64, error)
	GetByUserID(userID string) (*models.BuyerProfile, error)
	Create(profile *models.BuyerProfile) error
	Update(profile *models.BuyerProfile) error
	Delete(userID string) error
}

// GormBuyerProfileRepository GORM 实现
type GormBuyerProfileRepository struct {
	db *gorm.DB
}

// NewBuyerProfileRepository 创建买家档案仓库
func NewBuyerProfileRepository(db *gorm.DB) *GormBuyerProfileRepository {
	return &GormBuyerProfileRepository{db: db}
}

// List 买家档案列表
func (r *GormBuyerProfileRepository) List(filter BuyerProfileListFilter) ([]models.BuyerProfile, int64, error) {
	var profiles []models.BuyerProfile

	query := r.db.Model(&models.BuyerProfile{})
	if filter.WithUser {
		query = query.Preload("User")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("user_id ASC").Find(&profiles).Error; err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

// GetByUserID 根据用户 ID 获取买家档案
func (r *GormBuyerProfileRepository) GetByUserID(userID string) (*models.BuyerProfile, error) {
	var profile models.BuyerProfile
	if err := r.db.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Create 创建买家档案
func (r *GormBuyerProfileRepository) Create(profile *models.BuyerProfile) error {
	return r.db.Create(profile).Error
}

// Update 更新买家档案
func (r *GormBuyerProfileRepository) Update(profile *models.BuyerProfile) error {
	return r.db.Save(profile).Error
}

// Delete 删除买家档案
func (r *GormBuyerProfileRepository) Delete(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.BuyerProfile{}).Error
}
