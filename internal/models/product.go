package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product 商品表（农产品，价格与折扣价均为 2 位小数）
type Product struct {
	ID            uint            `gorm:"primarykey" json:"id"`                                              // 主键
	SellerID      uint            `gorm:"not null;index" json:"seller_id"`                                   // 卖家档案ID（seller_profiles.user_id）
	Name          string          `gorm:"size:200;not null;index" json:"name"`                               // 商品名称
	Slug          string          `gorm:"size:220;uniqueIndex;not null" json:"slug"`                         // 唯一标识
	CategoryID    uint            `gorm:"not null;index" json:"category_id"`                                 // 分类ID
	Price         Money           `gorm:"type:decimal(10,2);not null;default:0" json:"price"`                // 原价
	DiscountPrice *Money          `gorm:"type:decimal(10,2)" json:"discount_price"`                          // 折扣价（空表示无折扣）
	StockQuantity int             `gorm:"not null;default:0;index" json:"stock_quantity"`                    // 库存数量
	Unit          string          `gorm:"type:varchar(10);not null;default:'kg'" json:"unit"`                // 计量单位
	SKU           string          `gorm:"column:sku;size:50;uniqueIndex;not null" json:"sku"`                // 库存编码
	Status        string          `gorm:"type:varchar(20);not null;default:'available';index" json:"status"` // 商品状态
	IsFeatured    bool            `gorm:"default:false;index" json:"is_featured"`                            // 是否推荐
	AverageRating decimal.Decimal `gorm:"type:decimal(3,2);not null;default:0;index" json:"average_rating"`  // 平均评分
	TotalReviews  int             `gorm:"not null;default:0" json:"total_reviews"`                           // 累计评价数
	TotalSold     int             `gorm:"not null;default:0;index" json:"total_sold"`                        // 累计销量
	CreatedAt     time.Time       `gorm:"index" json:"created_at"`                                           // 创建时间
	UpdatedAt     time.Time       `json:"updated_at"`                                                        // 更新时间

	// 关联
	Seller   SellerProfile  `gorm:"foreignKey:SellerID;references:UserID;constraint:OnDelete:CASCADE" json:"seller,omitempty"` // 卖家档案（随卖家级联删除）
	Category Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"`              // 分类（随分类级联删除）
	Images   []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`                  // 商品图片（随商品级联删除）
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// hasDiscount 判断折扣价是否生效（空或 0 视为未设置）
func (p *Product) hasDiscount() bool {
	return p.DiscountPrice != nil && !p.DiscountPrice.IsZero()
}

// DiscountPercentage 折扣百分比：((原价-折扣价)/原价)*100，保留 2 位小数。
// 折扣价未设置或原价非正时返回 0；折扣价高于原价时返回负数，不做拦截。
func (p *Product) DiscountPercentage() decimal.Decimal {
	if p.hasDiscount() && p.Price.GreaterThan(decimal.Zero) {
		discount := p.Price.Sub(p.DiscountPrice.Decimal).Div(p.Price.Decimal).Mul(decimal.NewFromInt(100))
		return discount.Round(2)
	}
	return decimal.Zero.Round(2)
}

// FinalPrice 实际售价：有折扣价时取折扣价，否则取原价
func (p *Product) FinalPrice() Money {
	if p.hasDiscount() {
		return *p.DiscountPrice
	}
	return p.Price
}

// IsInStock 是否有库存（只看数量，不看状态）
func (p *Product) IsInStock() bool {
	return p.StockQuantity > 0
}

// DisplayPrice 后台列表用的价格展示串
func (p *Product) DisplayPrice() string {
	return "$" + p.FinalPrice().String()
}

// SellerBusinessName 后台列表用的卖家店铺名（需预加载 Seller）
func (p *Product) SellerBusinessName() string {
	if p.Seller.UserID == 0 {
		return ""
	}
	return p.Seller.BusinessName
}
