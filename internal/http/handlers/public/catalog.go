package public

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/farmket-server/internal/cache"
	"github.com/farmket-server/internal/http/response"
	"github.com/farmket-server/internal/models"
	"github.com/farmket-server/internal/repository"
	"github.com/farmket-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PublicProductView 前台商品响应结构
type PublicProductView struct {
	models.Product
	FinalPrice         models.Money    `json:"final_price"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	DisplayPrice       string          `json:"display_price"`
	InStock            bool            `json:"in_stock"`
	SellerBusinessName string          `json:"seller_business_name"`
}

func buildPublicProductView(product models.Product) PublicProductView {
	return PublicProductView{
		Product:            product,
		FinalPrice:         product.FinalPrice(),
		DiscountPercentage: product.DiscountPercentage(),
		DisplayPrice:       product.DisplayPrice(),
		InStock:            product.IsInStock(),
		SellerBusinessName: product.SellerBusinessName(),
	}
}

// GetCategories 获取分类列表（仅启用分类，携带子分类）
func (h *Handler) GetCategories(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	categories, total, err := h.CategoryService.ListPublic(page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "category list failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, categories, pagination)
}

// GetProducts 获取商品列表（仅在售商品）
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: c.Query("category_id"),
		Search:     strings.TrimSpace(c.Query("search")),
	}
	if raw := c.Query("is_featured"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "invalid is_featured", err)
			return
		}
		filter.IsFeatured = &parsed
	}

	products, total, err := h.ProductService.ListPublic(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "product list failed", err)
		return
	}

	views := make([]PublicProductView, 0, len(products))
	for i := range products {
		views = append(views, buildPublicProductView(products[i]))
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, views, pagination)
}

// GetProductBySlug 根据 slug 获取商品详情
// 命中缓存直接返回；缓存读写失败回落到数据库，只记日志。
func (h *Handler) GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var cached PublicProductView
	if hit, err := cache.GetProductDetail(c.Request.Context(), slug, &cached); err != nil {
		requestLog(c).Warnw("product_cache_read_failed", "slug", slug, "error", err)
	} else if hit {
		response.Success(c, cached)
		return
	}

	product, err := h.ProductService.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}

	view := buildPublicProductView(*product)

	ttl := time.Duration(h.Config.Cache.TTLSeconds) * time.Second
	if err := cache.SetProductDetail(c.Request.Context(), slug, view, ttl); err != nil {
		requestLog(c).Warnw("product_cache_write_failed", "slug", slug, "error", err)
	}

	response.Success(c, view)
}
