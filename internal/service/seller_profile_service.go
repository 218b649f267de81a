package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/farmket-server/internal/models"
	"github.com/farmket-server/internal/repository"
)

// SellerProfileService 卖家档案业务服务
type SellerProfileService struct {
	repo  repository.SellerProfileRepository
	users repository.UserRepository
}

// NewSellerProfileService 创建卖家档案服务
func NewSellerProfileService(repo repository.SellerProfileRepository, users repository.UserRepository) *SellerProfileService {
	return &SellerProfileService{repo: repo, users: users}
}

// SellerProfileInput 创建/更新卖家档案输入
// 评分与累计成交、营收是统计字段，不接受外部写入。
type SellerProfileInput struct {
	UserID              uint
	BusinessName        string
	BusinessDescription string
	BusinessLogo        string
	TaxID               string
	BusinessLicense     string
	BankAccountName     string
	BankAccountNumber   string
	BankName            string
	BankRoutingNumber   string
}

// List 卖家档案列表
func (s *SellerProfileService) List(filter repository.SellerProfileListFilter) ([]models.SellerProfile, int64, error) {
	return s.repo.List(filter)
}

// GetByUserID 获取卖家档案
func (s *SellerProfileService) GetByUserID(userID string) (*models.SellerProfile, error) {
	profile, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return profile, nil
}

// Create 创建卖家档案（一个用户至多一份）
func (s *SellerProfileService) Create(input SellerProfileInput) (*models.SellerProfile, error) {
	businessName := strings.TrimSpace(input.BusinessName)
	if businessName == "" {
		return nil, ErrNameRequired
	}

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

	count, err := s.repo.CountByBusinessName(businessName, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrBusinessNameExists
	}

	profile := models.SellerProfile{
		UserID:              input.UserID,
		BusinessName:        businessName,
		BusinessDescription: input.BusinessDescription,
		BusinessLogo:        input.BusinessLogo,
		TaxID:               input.TaxID,
		BusinessLicense:     input.BusinessLicense,
		BankAccountName:     input.BankAccountName,
		BankAccountNumber:   input.BankAccountNumber,
		BankName:            input.BankName,
		BankRoutingNumber:   input.BankRoutingNumber,
	}
	if err := s.repo.Create(&profile); err != nil {
		return nil, translateStorageError(err)
	}
	return &profile, nil
}

// Update 更新卖家档案
func (s *SellerProfileService) Update(userID string, input SellerProfileInput) (*models.SellerProfile, error) {
	profile, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}

	businessName := strings.TrimSpace(input.BusinessName)
	if businessName == "" {
		return nil, ErrNameRequired
	}

	count, err := s.repo.CountByBusinessName(businessName, &userID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrBusinessNameExists
	}

	profile.BusinessName = businessName
	profile.BusinessDescription = input.BusinessDescription
	profile.BusinessLogo = input.BusinessLogo
	profile.TaxID = input.TaxID
	profile.BusinessLicense = input.BusinessLicense
	profile.BankAccountName = input.BankAccountName
	profile.BankAccountNumber = input.BankAccountNumber
	profile.BankName = input.BankName
	profile.BankRoutingNumber = input.BankRoutingNumber

	if err := s.repo.Update(profile); err != nil {
		return nil, translateStorageError(err)
	}
	return profile, nil
}

// Verify 认证卖家：置位并记录认证时间；重复认证保留首次时间。
func (s *SellerProfileService) Verify(userID string) (*models.SellerProfile, error) {
	profile, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}

	if !profile.IsVerifiedSeller {
		now := time.Now()
		profile.IsVerifiedSeller = true
		profile.VerificationDate = &now
		if err := s.repo.Update(profile); err != nil {
			return nil, err
		}
	}
	return profile, nil
}

// Delete 删除卖家档案（名下商品随库级联删除）
func (s *SellerProfileService) Delete(userID string) error {
	profile, err := s.repo.GetByUserID(userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrNotFound
	}
	return s.repo.Delete(userID)
}
