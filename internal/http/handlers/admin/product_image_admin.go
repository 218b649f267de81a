package admin

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/farmket-server/internal/http/response"
	"github.com/farmket-server/internal/repository"
	"github.com/farmket-server/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductImageUpsertRequest 商品图片创建/更新请求
type ProductImageUpsertRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Image     string `json:"image"`
	AltText   string `json:"alt_text"`
}

// GetAdminProductImages 获取商品图片列表 (Admin)
func (h *Handler) GetAdminProductImages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	images, total, err := h.ProductImageService.List(repository.ProductImageListFilter{
		Page:      page,
		PageSize:  pageSize,
		ProductID: c.Query("product_id"),
		Search:    c.Query("search"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "product image list failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, images, pagination)
}

// CreateProductImage 创建商品图片
func (h *Handler) CreateProductImage(c *gin.Context) {
	var req ProductImageUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	image, err := h.ProductImageService.Create(service.ProductImageInput{
		ProductID: req.ProductID,
		Image:     req.Image,
		AltText:   req.AltText,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			respondError(c, response.CodeBadRequest, err.Error(), nil)
		default:
			respondError(c, response.CodeInternal, "product image create failed", err)
		}
		return
	}

	h.invalidateImageProductCache(c, image.ProductID)
	response.Success(c, image)
}

// UpdateProductImage 更新商品图片
func (h *Handler) UpdateProductImage(c *gin.Context) {
	id := c.Param("id")

	var req ProductImageUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	existing, err := h.ProductImageService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "product image not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "product image fetch failed", err)
		return
	}

	image, err := h.ProductImageService.Update(id, service.ProductImageInput{
		ProductID: req.ProductID,
		Image:     req.Image,
		AltText:   req.AltText,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "product image not found", nil)
		case errors.Is(err, service.ErrValidation):
			respondError(c, response.CodeBadRequest, err.Error(), nil)
		default:
			respondError(c, response.CodeInternal, "product image update failed", err)
		}
		return
	}

	// 图片可能被挪到别的商品下，两边详情缓存都清
	h.invalidateImageProductCache(c, existing.ProductID)
	if image.ProductID != existing.ProductID {
		h.invalidateImageProductCache(c, image.ProductID)
	}
	response.Success(c, image)
}

// DeleteProductImage 删除商品图片
func (h *Handler) DeleteProductImage(c *gin.Context) {
	id := c.Param("id")

	image, err := h.ProductImageService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "product image not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "product image fetch failed", err)
		return
	}

	if err := h.ProductImageService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "product image not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "product image delete failed", err)
		return
	}

	h.invalidateImageProductCache(c, image.ProductID)
	response.Success(c, gin.H{
		"deleted": true,
	})
}

// invalidateImageProductCache 图片变更后清理所属商品的详情缓存。
func (h *Handler) invalidateImageProductCache(c *gin.Context, productID uint) {
	product, err := h.ProductService.GetByID(fmt.Sprintf("%d", productID))
	if err != nil {
		requestLog(c).Warnw("product_cache_invalidate_failed", "product_id", productID, "error", err)
		return
	}
	h.invalidateProductCache(c, product.Slug)
}
