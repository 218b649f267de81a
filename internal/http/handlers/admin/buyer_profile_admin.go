package admin

import (
	"errors"
	"strconv"

	"github.com/farmket-server/internal/http/response"
	"github.com/farmket-server/internal/repository"
	"github.com/farmket-server/internal/service"

	"github.com/gin-gonic/gin"
)

// BuyerProfileUpsertRequest 创建/更新买家档案请求
type BuyerProfileUpsertRequest struct {
	UserID              uint   `json:"user_id" binding:"required"`
	PreferredCategories []uint `json:"preferred_categories"`
}

// GetAdminBuyerProfiles 获取买家档案列表 (Admin)
func (h *Handler) GetAdminBuyerProfiles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.BuyerProfileListFilter{
		Page:     page,
		PageSize: pageSize,
		WithUser: true,
	}

	profiles, total, err := h.BuyerProfileService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "buyer profile list failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, profiles, pagination)
}

// GetAdminBuyerProfile 按用户 ID 获取买家档案 (Admin)
func (h *Handler) GetAdminBuyerProfile(c *gin.Context) {
	userID := c.Param("user_id")
	profile, err := h.BuyerProfileService.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "buyer profile not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "buyer profile fetch failed", err)
		return
	}
	response.Success(c, profile)
}

// CreateBuyerProfile 创建买家档案
func (h *Handler) CreateBuyerProfile(c *gin.Context) {
	var req BuyerProfileUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	profile, err := h.BuyerProfileService.Create(service.BuyerProfileInput{
		UserID:              req.UserID,
		PreferredCategories: req.PreferredCategories,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrDuplicate):
			respondError(c, response.CodeBadRequest, err.Error(), nil)
		default:
			respondError(c, response.CodeInternal, "buyer profile create failed", err)
		}
		return
	}

	response.Success(c, profile)
}

// UpdateBuyerProfile 更新买家档案
func (h *Handler) UpdateBuyerProfile(c *gin.Context) {
	userID := c.Param("user_id")

	var req BuyerProfileUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	profile, err := h.BuyerProfileService.Update(userID, service.BuyerProfileInput{
		UserID:              req.UserID,
		PreferredCategories: req.PreferredCategories,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "buyer profile not found", nil)
		case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrDuplicate):
			respondError(c, response.CodeBadRequest, err.Error(), nil)
		default:
			respondError(c, response.CodeInternal, "buyer profile update failed", err)
		}
		return
	}

	response.Success(c, profile)
}

// DeleteBuyerProfile 删除买家档案
func (h *Handler) DeleteBuyerProfile(c *gin.Context) {
	userID := c.Param("user_id")

	if err := h.BuyerProfileService.Delete(userID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "buyer profile not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "buyer profile delete failed", err)
		return
	}

	response.Success(c, gin.H{
		"deleted": true,
	})
}
