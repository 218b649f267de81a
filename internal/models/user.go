package models

import (
	"strings"
	"time"

	"github.com/farmket-server/internal/constants"
)

// User 用户表（邮箱登录，区分买家/卖家两种角色）
type User struct {
	ID             uint       `gorm:"primarykey" json:"id"`                                                                                                 // 主键
	Email          string     `gorm:"size:255;uniqueIndex;not null;index:idx_users_email_type,priority:1" json:"email"`                                     // 邮箱（登录标识）
	UserType       string     `gorm:"type:varchar(10);index;index:idx_users_email_type,priority:2;index:idx_users_type_active,priority:1;index:idx_users_city_type,priority:2" json:"user_type"` // 用户类型（buyer/seller，可为空）
	FirstName      string     `gorm:"size:150" json:"first_name"`                                                                                           // 名
	LastName       string     `gorm:"size:150" json:"last_name"`                                                                                            // 姓
	PasswordHash   string     `gorm:"size:255" json:"-"`                                                                                                    // 密码哈希（空表示禁用密码登录）
	PhoneNumber    string     `gorm:"size:17" json:"phone_number"`                                                                                          // 手机号
	ProfilePicture string     `gorm:"size:500" json:"profile_picture"`                                                                                      // 头像路径
	Address        string     `gorm:"size:255" json:"address"`                                                                                              // 地址
	City           string     `gorm:"size:100;index:idx_users_city_type,priority:1" json:"city"`                                                            // 城市
	State          string     `gorm:"size:100" json:"state"`                                                                                                // 省/州
	IsActive       bool       `gorm:"default:true;index:idx_users_type_active,priority:2" json:"is_active"`                                                 // 是否启用
	IsStaff        bool       `gorm:"default:false" json:"is_staff"`                                                                                        // 是否后台人员
	IsSuperuser    bool       `gorm:"default:false" json:"is_superuser"`                                                                                    // 是否超级管理员
	IsVerified     bool       `gorm:"default:false" json:"is_verified"`                                                                                     // 是否已验证
	DateJoined     time.Time  `gorm:"not null" json:"date_joined"`                                                                                          // 注册时间
	LastLogin      *time.Time `json:"last_login"`                                                                                                           // 最后登录时间
	UpdatedAt      time.Time  `json:"updated_at"`                                                                                                           // 更新时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// IsBuyer 是否买家
func (u *User) IsBuyer() bool {
	return u.UserType == constants.UserTypeBuyer
}

// IsSeller 是否卖家
func (u *User) IsSeller() bool {
	return u.UserType == constants.UserTypeSeller
}

// FullName 全名（去除首尾空格）
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// ShortName 简称（名）
func (u *User) ShortName() string {
	return u.FirstName
}

// HasUsablePassword 是否设置过可用密码
func (u *User) HasUsablePassword() bool {
	return u.PasswordHash != ""
}
