package admin

import (
	"errors"
	"strconv"

	"github.com/farmket-server/internal/http/response"
	"github.com/farmket-server/internal/repository"
	"github.com/farmket-server/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryUpsertRequest 分类创建/更新请求
type CategoryUpsertRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parent_id"`
	Image       string `json:"image"`
	IsActive    *bool  `json:"is_active"`
}

// GetAdminCategories 获取分类列表 (Admin)
func (h *Handler) GetAdminCategories(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.CategoryListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
	}
	if raw := c.Query("parent_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, response.CodeBadRequest, "invalid parent_id", err)
			return
		}
		parentID := uint(parsed)
		filter.ParentID = &parentID
	}
	if raw := c.Query("is_active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "invalid is_active", err)
			return
		}
		filter.IsActive = &parsed
	}
	if raw := c.Query("with_children"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "invalid with_children", err)
			return
		}
		filter.WithChildren = parsed
	}

	categories, total, err := h.CategoryService.List(filter)
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

// GetAdminCategory 获取分类详情 (Admin)
func (h *Handler) GetAdminCategory(c *gin.Context) {
	id := c.Param("id")
	category, err := h.CategoryService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "category not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "category fetch failed", err)
		return
	}
	response.Success(c, category)
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	category, err := h.CategoryService.Create(service.CategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ParentID:    req.ParentID,
		Image:       req.Image,
		IsActive:    req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrDuplicate):
			respondError(c, response.CodeBadRequest, err.Error(), nil)
		default:
			respondError(c, response.CodeInternal, "category create failed", err)
		}
		return
	}

	response.Success(c, category)
}

// UpdateCategory 更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var req CategoryUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	category, err := h.CategoryService.Update(id, service.CategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ParentID:    req.ParentID,
		Image:       req.Image,
		IsActive:    req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "category not found", nil)
		case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrDuplicate):
			respondError(c, response.CodeBadRequest, err.Error(), nil)
		default:
			respondError(c, response.CodeInternal, "category update failed", err)
		}
		return
	}

	response.Success(c, category)
}

// DeleteCategory 删除分类（子分类与分类下商品随库级联删除）
func (h *Handler) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	if err := h.CategoryService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "category not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "category delete failed", err)
		return
	}

	response.Success(c, gin.H{
		"deleted": true,
	})
}
