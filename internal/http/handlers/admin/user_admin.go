package admin

import (
	"errors"
	"strconv"

	"github.com/farmket-server/internal/http/response"
	"github.com/farmket-server/internal/repository"
	"github.com/farmket-server/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateUserRequest 创建用户请求
type CreateUserRequest struct {
	Email          string `json:"email" binding:"required"`
	Password       string `json:"password"`
	UserType       string `json:"user_type"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	PhoneNumber    string `json:"phone_number"`
	ProfilePicture string `json:"profile_picture"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	IsActive       *bool  `json:"is_active"`
	IsStaff        *bool  `json:"is_staff"`
	IsSuperuser    *bool  `json:"is_superuser"`
	IsVerified     *bool  `json:"is_verified"`
}

// CreateSuperuserRequest 创建超级管理员请求
type CreateSuperuserRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	IsActive    *bool  `json:"is_active"`
	IsStaff     *bool  `json:"is_staff"`
	IsSuperuser *bool  `json:"is_superuser"`
}

// UpdateUserRequest 更新用户请求；password 缺省表示不改密码
type UpdateUserRequest struct {
	Email          string  `json:"email" binding:"required"`
	Password       *string `json:"password"`
	UserType       string  `json:"user_type"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	PhoneNumber    string  `json:"phone_number"`
	ProfilePicture string  `json:"profile_picture"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	IsActive       *bool   `json:"is_active"`
	IsStaff        *bool   `json:"is_staff"`
	IsSuperuser    *bool   `json:"is_superuser"`
	IsVerified     *bool   `json:"is_verified"`
}

// GetAdminUsers 获取用户列表 (Admin)
func (h *Handler) GetAdminUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		UserType: c.Query("user_type"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("is_active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "invalid is_active", err)
			return
		}
		filter.IsActive = &parsed
	}
	if raw := c.Query("is_staff"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "invalid is_staff", err)
			return
		}
		filter.IsStaff = &parsed
	}

	users, total, err := h.UserService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "user list failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, users, pagination)
}

// GetAdminUser 获取用户详情 (Admin)
func (h *Handler) GetAdminUser(c *gin.Context) {
	id := c.Param("id")
	user, err := h.UserService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "user not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "user fetch failed", err)
		return
	}
	response.Success(c, user)
}

// CreateAdminUser 创建用户
func (h *Handler) CreateAdminUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	user, err := h.UserService.CreateUser(service.CreateUserInput{
		Email:          req.Email,
		Password:       req.Password,
		UserType:       req.UserType,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PhoneNumber:    req.PhoneNumber,
		ProfilePicture: req.ProfilePicture,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		IsActive:       req.IsActive,
		IsStaff:        req.IsStaff,
		IsSuperuser:    req.IsSuperuser,
		IsVerified:     req.IsVerified,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrDuplicate):
			respondError(c, response.CodeBadRequest, err.Error(), nil)
		default:
			respondError(c, response.CodeInternal, "user create failed", err)
		}
		return
	}

	response.Success(c, user)
}

// CreateAdminSuperuser 创建超级管理员
// is_staff / is_superuser 显式传 false 属于矛盾配置，会被拒绝。
func (h *Handler) CreateAdminSuperuser(c *gin.Context) {
	var req CreateSuperuserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	user, err := h.UserService.CreateSuperuser(service.CreateSuperuserInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		IsActive:    req.IsActive,
		IsStaff:     req.IsStaff,
		IsSuperuser: req.IsSuperuser,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSuperuserFlags):
			respondError(c, response.CodeBadRequest, err.Error(), nil)
		case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrDuplicate):
			respondError(c, response.CodeBadRequest, err.Error(), nil)
		default:
			respondError(c, response.CodeInternal, "superuser create failed", err)
		}
		return
	}

	response.Success(c, user)
}

// UpdateAdminUser 更新用户
func (h *Handler) UpdateAdminUser(c *gin.Context) {
	id := c.Param("id")

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	user, err := h.UserService.UpdateUser(id, service.UpdateUserInput{
		Email:          req.Email,
		Password:       req.Password,
		UserType:       req.UserType,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PhoneNumber:    req.PhoneNumber,
		ProfilePicture: req.ProfilePicture,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		IsActive:       req.IsActive,
		IsStaff:        req.IsStaff,
		IsSuperuser:    req.IsSuperuser,
		IsVerified:     req.IsVerified,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "user not found", nil)
		case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrDuplicate):
			respondError(c, response.CodeBadRequest, err.Error(), nil)
		default:
			respondError(c, response.CodeInternal, "user update failed", err)
		}
		return
	}

	response.Success(c, user)
}

// DeleteAdminUser 删除用户（买家/卖家档案及名下商品随库级联删除）
func (h *Handler) DeleteAdminUser(c *gin.Context) {
	id := c.Param("id")

	if err := h.UserService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "user not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "user delete failed", err)
		return
	}

	response.Success(c, gin.H{
		"deleted": true,
	})
}
