package models

import (
	"time"
)

// ProductImage 商品图片表
type ProductImage struct {
	ID        uint      `gorm:"primarykey" json:"id"`             // 主键
	ProductID uint      `gorm:"not null;index" json:"product_id"` // 商品ID
	Image     string    `gorm:"size:500;not null" json:"image"`   // 图片路径
	AltText   string    `gorm:"size:255" json:"alt_text"`         // 替代文本
	CreatedAt time.Time `json:"created_at"`                       // 创建时间
}

// TableName 指定表名
func (ProductImage) TableName() string {
	return "product_images"
}
