package service

import (
	"fmt"
	"strings"

	"github.com/farmket-server/internal/models"
	"github.com/farmket-server/internal/repository"
)

// ProductImageService 商品图片业务服务
type ProductImageService struct {
	repo     repository.ProductImageRepository
	products repository.ProductRepository
}

// NewProductImageService 创建商品图片服务
func NewProductImageService(repo repository.ProductImageRepository, products repository.ProductRepository) *ProductImageService {
	return &ProductImageService{repo: repo, products: products}
}

// ProductImageInput 创建/更新商品图片输入
type ProductImageInput struct {
	ProductID uint
	Image     string
	AltText   string
}

// List 商品图片列表
func (s *ProductImageService) List(filter repository.ProductImageListFilter) ([]models.ProductImage, int64, error) {
	return s.repo.List(filter)
}

// GetByID 获取商品图片详情
func (s *ProductImageService) GetByID(id string) (*models.ProductImage, error) {
	image, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, ErrNotFound
	}
	return image, nil
}

// Create 创建商品图片
func (s *ProductImageService) Create(input ProductImageInput) (*models.ProductImage, error) {
	imagePath := strings.TrimSpace(input.Image)
	if imagePath == "" {
		return nil, ErrImageRequired
	}
	if err := s.checkProduct(input.ProductID); err != nil {
		return nil, err
	}

	image := models.ProductImage{
		ProductID: input.ProductID,
		Image:     imagePath,
		AltText:   input.AltText,
	}
	if err := s.repo.Create(&image); err != nil {
		return nil, translateStorageError(err)
	}
	return &image, nil
}

// Update 更新商品图片
func (s *ProductImageService) Update(id string, input ProductImageInput) (*models.ProductImage, error) {
	image, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, ErrNotFound
	}

	imagePath := strings.TrimSpace(input.Image)
	if imagePath == "" {
		return nil, ErrImageRequired
	}
	if err := s.checkProduct(input.ProductID); err != nil {
		return nil, err
	}

	image.ProductID = input.ProductID
	image.Image = imagePath
	image.AltText = input.AltText

	if err := s.repo.Update(image); err != nil {
		return nil, translateStorageError(err)
	}
	return image, nil
}

// Delete 删除商品图片
func (s *ProductImageService) Delete(id string) error {
	image, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if image == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func (s *ProductImageService) checkProduct(productID uint) error {
	product, err := s.products.GetByID(fmt.Sprintf("%d", productID))
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductInvalid
	}
	return nil
}
