package admin

import (
	"errors"
	"strconv"

	"github.com/farmket-server/internal/cache"
	"github.com/farmket-server/internal/http/response"
	"github.com/farmket-server/internal/models"
	"github.com/farmket-server/internal/repository"
	"github.com/farmket-server/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductUpsertRequest 商品创建/更新请求
type ProductUpsertRequest struct {
	SellerID      uint          `json:"seller_id" binding:"required"`
	Name          string        `json:"name" binding:"required"`
	Slug          string        `json:"slug"`
	CategoryID    uint          `json:"category_id" binding:"required"`
	Price         models.Money  `json:"price"`
	DiscountPrice *models.Money `json:"discount_price"`
	StockQuantity int           `json:"stock_quantity"`
	Unit          string        `json:"unit"`
	SKU           string        `json:"sku"`
	Status        string        `json:"status"`
	IsFeatured    *bool         `json:"is_featured"`
}

// AdminProductView 后台商品行，附带展示价与卖家店铺名
type AdminProductView struct {
	models.Product
	DisplayPrice       string `json:"display_price"`
	SellerBusinessName string `json:"seller_business_name"`
}

func buildAdminProductView(product models.Product) AdminProductView {
	return AdminProductView{
		Product:            product,
		DisplayPrice:       product.DisplayPrice(),
		SellerBusinessName: product.SellerBusinessName(),
	}
}

func (i ProductUpsertRequest) toServiceInput() service.ProductInput {
	return service.ProductInput{
		SellerID:      i.SellerID,
		Name:          i.Name,
		Slug:          i.Slug,
		CategoryID:    i.CategoryID,
		Price:         i.Price,
		DiscountPrice: i.DiscountPrice,
		StockQuantity: i.StockQuantity,
		Unit:          i.Unit,
		SKU:           i.SKU,
		Status:        i.Status,
		IsFeatured:    i.IsFeatured,
	}
}

// invalidateProductCache 清理商品详情缓存；失败仅记日志，不影响响应。
func (h *Handler) invalidateProductCache(c *gin.Context, slugs ...string) {
	if err := cache.DelProductDetail(c.Request.Context(), slugs...); err != nil {
		requestLog(c).Warnw("product_cache_invalidate_failed", "error", err)
	}
}

// GetAdminProducts 获取商品列表 (Admin)
func (h *Handler) GetAdminProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   c.Query("category_id"),
		SellerID:     c.Query("seller_id"),
		Status:       c.Query("status"),
		Search:       c.Query("search"),
		WithSeller:   true,
		WithCategory: true,
	}
	if raw := c.Query("is_featured"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "invalid is_featured", err)
			return
		}
		filter.IsFeatured = &parsed
	}

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "product list failed", err)
		return
	}

	views := make([]AdminProductView, 0, len(products))
	for _, product := range products {
		views = append(views, buildAdminProductView(product))
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, views, pagination)
}

// GetAdminProduct 获取商品详情 (Admin)
func (h *Handler) GetAdminProduct(c *gin.Context) {
	id := c.Param("id")
	product, err := h.ProductService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}
	response.Success(c, buildAdminProductView(*product))
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	product, err := h.ProductService.Create(req.toServiceInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrDuplicate):
			respondError(c, response.CodeBadRequest, err.Error(), nil)
		default:
			respondError(c, response.CodeInternal, "product create failed", err)
		}
		return
	}

	// 同名 slug 的旧缓存可能还在 TTL 内
	h.invalidateProductCache(c, product.Slug)
	response.Success(c, product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var req ProductUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	existing, err := h.ProductService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}

	product, err := h.ProductService.Update(id, req.toServiceInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "product not found", nil)
		case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrDuplicate):
			respondError(c, response.CodeBadRequest, err.Error(), nil)
		default:
			respondError(c, response.CodeInternal, "product update failed", err)
		}
		return
	}

	// slug 可能被改掉，新旧 key 都清
	h.invalidateProductCache(c, existing.Slug, product.Slug)
	response.Success(c, product)
}

// DeleteProduct 删除商品（图片随库级联删除）
func (h *Handler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := h.ProductService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}

	if err := h.ProductService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "product delete failed", err)
		return
	}

	h.invalidateProductCache(c, product.Slug)
	response.Success(c, gin.H{
		"deleted": true,
	})
}
