package service

import (
	"fmt"
	"strings"

	"github.com/farmket-server/internal/models"
	"github.com/farmket-server/internal/repository"
)

// CategoryService 分类业务服务
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CategoryInput 创建/更新分类输入
type CategoryInput struct {
	Name        string
	Slug        string
	Description string
	ParentID    *uint
	Image       string
	IsActive    *bool
}

// List 后台分类列表
func (s *CategoryService) List(filter repository.CategoryListFilter) ([]models.Category, int64, error) {
	return s.repo.List(filter)
}

// ListPublic 前台分类列表（仅启用分类，携带子分类）
func (s *CategoryService) ListPublic(page, pageSize int) ([]models.Category, int64, error) {
	return s.repo.List(repository.CategoryListFilter{
		Page:         page,
		PageSize:     pageSize,
		OnlyActive:   true,
		WithChildren: true,
	})
}

// GetByID 获取分类详情
func (s *CategoryService) GetByID(id string) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// GetBySlug 前台按 slug 获取启用分类
func (s *CategoryService) GetBySlug(slug string) (*models.Category, error) {
	category, err := s.repo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Create 创建分类
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	slug, err := s.assignSlug(name, input.Slug, nil)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountByName(name, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryNameExists
	}

	if err := s.checkParent(input.ParentID); err != nil {
		return nil, err
	}

	category := models.Category{
		Name:        name,
		Slug:        slug,
		Description: input.Description,
		ParentID:    input.ParentID,
		Image:       input.Image,
		IsActive:    true,
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if err := s.repo.Create(&category); err != nil {
		return nil, translateStorageError(err)
	}
	return &category, nil
}

// Update 更新分类
func (s *CategoryService) Update(id string, input CategoryInput) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	slug, err := s.assignSlug(name, input.Slug, &id)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountByName(name, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryNameExists
	}

	if input.ParentID != nil && *input.ParentID == category.ID {
		return nil, ErrParentInvalid
	}
	if err := s.checkParent(input.ParentID); err != nil {
		return nil, err
	}

	category.Name = name
	category.Slug = slug
	category.Description = input.Description
	category.ParentID = input.ParentID
	category.Image = input.Image
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := s.repo.Update(category); err != nil {
		return nil, translateStorageError(err)
	}
	return category, nil
}

// Delete 删除分类（子分类和商品随库级联删除）
func (s *CategoryService) Delete(id string) error {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// assignSlug 分类 slug：未提供时由名称派生。无论来源都只做一次冲突预检，
// 冲突即报错，不做后缀递增。
func (s *CategoryService) assignSlug(name, slug string, excludeID *string) (string, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		slug = Slugify(name)
	}
	count, err := s.repo.CountBySlug(slug, excludeID)
	if err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrSlugExists
	}
	return slug, nil
}

func (s *CategoryService) checkParent(parentID *uint) error {
	if parentID == nil {
		return nil
	}
	parent, err := s.repo.GetByID(fmt.Sprintf("%d", *parentID))
	if err != nil {
		return err
	}
	if parent == nil {
		return ErrParentInvalid
	}
	return nil
}
