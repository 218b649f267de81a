package admin

import (
	"errors"
	"strconv"

	"github.com/farmket-server/internal/http/response"
	"github.com/farmket-server/internal/repository"
	"github.com/farmket-server/internal/service"

	"github.com/gin-gonic/gin"
)

// SellerProfileUpsertRequest 创建/更新卖家档案请求
type SellerProfileUpsertRequest struct {
	UserID              uint   `json:"user_id" binding:"required"`
	BusinessName        string `json:"business_name" binding:"required"`
	BusinessDescription string `json:"business_description"`
	BusinessLogo        string `json:"business_logo"`
	TaxID               string `json:"tax_id"`
	BusinessLicense     string `json:"business_license"`
	BankAccountName     string `json:"bank_account_name"`
	BankAccountNumber   string `json:"bank_account_number"`
	BankName            string `json:"bank_name"`
	BankRoutingNumber   string `json:"bank_routing_number"`
}

func (r SellerProfileUpsertRequest) toServiceInput() service.SellerProfileInput {
	return service.SellerProfileInput{
		UserID:              r.UserID,
		BusinessName:        r.BusinessName,
		BusinessDescription: r.BusinessDescription,
		BusinessLogo:        r.BusinessLogo,
		TaxID:               r.TaxID,
		BusinessLicense:     r.BusinessLicense,
		BankAccountName:     r.BankAccountName,
		BankAccountNumber:   r.BankAccountNumber,
		BankName:            r.BankName,
		BankRoutingNumber:   r.BankRoutingNumber,
	}
}

// GetAdminSellerProfiles 获取卖家档案列表 (Admin)
func (h *Handler) GetAdminSellerProfiles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.SellerProfileListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
		WithUser: true,
	}
	if raw := c.Query("is_verified_seller"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "invalid is_verified_seller", err)
			return
		}
		filter.IsVerifiedSeller = &parsed
	}

	profiles, total, err := h.SellerProfileService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "seller profile list failed", err)
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

// GetAdminSellerProfile 按用户 ID 获取卖家档案 (Admin)
func (h *Handler) GetAdminSellerProfile(c *gin.Context) {
	userID := c.Param("user_id")
	profile, err := h.SellerProfileService.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "seller profile not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "seller profile fetch failed", err)
		return
	}
	response.Success(c, profile)
}

// CreateSellerProfile 创建卖家档案
func (h *Handler) CreateSellerProfile(c *gin.Context) {
	var req SellerProfileUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	profile, err := h.SellerProfileService.Create(req.toServiceInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrDuplicate):
			respondError(c, response.CodeBadRequest, err.Error(), nil)
		default:
			respondError(c, response.CodeInternal, "seller profile create failed", err)
		}
		return
	}

	response.Success(c, profile)
}

// UpdateSellerProfile 更新卖家档案
func (h *Handler) UpdateSellerProfile(c *gin.Context) {
	userID := c.Param("user_id")

	var req SellerProfileUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	profile, err := h.SellerProfileService.Update(userID, req.toServiceInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "seller profile not found", nil)
		case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrDuplicate):
			respondError(c, response.CodeBadRequest, err.Error(), nil)
		default:
			respondError(c, response.CodeInternal, "seller profile update failed", err)
		}
		return
	}

	response.Success(c, profile)
}

// VerifySellerProfile 标记卖家已认证；首次认证时间保留不覆盖
func (h *Handler) VerifySellerProfile(c *gin.Context) {
	userID := c.Param("user_id")

	profile, err := h.SellerProfileService.Verify(userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "seller profile not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "seller profile verify failed", err)
		return
	}

	response.Success(c, profile)
}

// DeleteSellerProfile 删除卖家档案
func (h *Handler) DeleteSellerProfile(c *gin.Context) {
	userID := c.Param("user_id")

	if err := h.SellerProfileService.Delete(userID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "seller profile not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "seller profile delete failed", err)
		return
	}

	response.Success(c, gin.H{
		"deleted": true,
	})
}
