package service

import (
	"fmt"

	"github.com/farmket-server/internal/models"
	"github.com/farmket-server/internal/repository"
)

// BuyerProfileService 买家档案业务服务
type BuyerProfileService struct {
	repo  repository.BuyerProfileRepository
	users repository.UserRepository
}

// NewBuyerProfileService 创建买家档案服务
func NewBuyerProfileService(repo repository.BuyerProfileRepository, users repository.UserRepository) *BuyerProfileService {
	return &BuyerProfileService{repo: repo, users: users}
}

// BuyerProfileInput 创建/更新买家档案输入
// 订单数、消费额、积分是统计字段，不接受外部写入。
type BuyerProfileInput struct {
	UserID              uint
	PreferredCategories []uint
}

// List 买家档案列表
func (s *BuyerProfileService) List(filter repository.BuyerProfileListFilter) ([]models.BuyerProfile, int64, error) {
	return s.repo.List(filter)
}

// GetByUserID 获取买家档案
func (s *BuyerProfileService) GetByUserID(userID string) (*models.BuyerProfile, error) {
	profile, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return profile, nil
}

// Create 创建买家档案（一个用户至多一份）
func (s *BuyerProfileService) Create(input BuyerProfileInput) (*models.BuyerProfile, error) {
	user, err := s.users.GetByID(fmt.Sprintf("%d", input.UserID))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserInvalid
	}

	existing, err := s.repo.GetByUserID(fmt.Sprintf("%d", input.UserID))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileExists
	}

	profile := models.BuyerProfile{
		UserID:              input.UserID,
		PreferredCategories: models.UintList(input.PreferredCategories),
	}
	if err := s.repo.Create(&profile); err != nil {
		return nil, translateStorageError(err)
	}
	return &profile, nil
}

// Update 更新买家档案
func (s *BuyerProfileService) Update(userID string, input BuyerProfileInput) (*models.BuyerProfile, error) {
	profile, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}

	profile.PreferredCategories = models.UintList(input.PreferredCategories)

	if err := s.repo.Update(profile); err != nil {
		return nil, translateStorageError(err)
	}
	return profile, nil
}

// Delete 删除买家档案
func (s *BuyerProfileService) Delete(userID string) error {
	profile, err := s.repo.GetByUserID(userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrNotFound
	}
	return s.repo.Delete(userID)
}
