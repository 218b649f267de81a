package models

import (
	"time"
)

// Category 分类表（水果、蔬菜等商品分类，支持父子层级）
type Category struct {
	ID          uint      `gorm:"primarykey" json:"id"`                       // 主键
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`  // 分类名称
	Slug        string    `gorm:"size:220;uniqueIndex;not null" json:"slug"`  // 唯一标识
	Description string    `gorm:"type:text" json:"description"`               // 分类描述
	ParentID    *uint     `gorm:"index" json:"parent_id"`                     // 父分类ID（空表示顶级分类）
	Image       string    `gorm:"size:500" json:"image"`                      // 分类图片路径
	IsActive    bool      `gorm:"default:true;index" json:"is_active"`        // 是否启用
	CreatedAt   time.Time `json:"created_at"`                                 // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                 // 更新时间

	// 关联
	Subcategories []Category `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"subcategories,omitempty"` // 子分类（随父级联删除）
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
