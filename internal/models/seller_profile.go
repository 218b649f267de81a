package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SellerProfile 卖家档案表（与用户一对一，主键即用户ID）
type SellerProfile struct {
	UserID              uint            `gorm:"primarykey" json:"user_id"`                                                            // 用户ID（主键）
	BusinessName        string          `gorm:"size:255;uniqueIndex;not null" json:"business_name"`                                   // 店铺名称
	BusinessDescription string          `gorm:"type:text" json:"business_description"`                                                // 店铺描述
	BusinessLogo        string          `gorm:"size:500" json:"business_logo"`                                                        // 店铺 Logo 路径
	TaxID               string          `gorm:"size:50" json:"tax_id"`                                                                // 税号
	BusinessLicense     string          `gorm:"size:100" json:"business_license"`                                                     // 营业执照号
	BankAccountName     string          `gorm:"size:255" json:"bank_account_name"`                                                    // 银行账户名
	BankAccountNumber   string          `gorm:"size:50" json:"bank_account_number"`                                                   // 银行账号
	BankName            string          `gorm:"size:100" json:"bank_name"`                                                            // 银行名称
	BankRoutingNumber   string          `gorm:"size:50" json:"bank_routing_number"`                                                   // 银行路由号
	Rating              decimal.Decimal `gorm:"type:decimal(3,2);not null;default:0;index:idx_sellers_rating_verified,priority:1" json:"rating"` // 卖家评分
	TotalSales          int             `gorm:"not null;default:0" json:"total_sales"`                                                // 累计成交单数
	TotalRevenue        Money           `gorm:"type:decimal(12,2);not null;default:0" json:"total_revenue"`                           // 累计营收
	IsVerifiedSeller    bool            `gorm:"default:false;index:idx_sellers_rating_verified,priority:2" json:"is_verified_seller"` // 是否认证卖家
	VerificationDate    *time.Time      `json:"verification_date"`                                                                    // 认证时间
	CreatedAt           time.Time       `json:"created_at"`                                                                           // 创建时间
	UpdatedAt           time.Time       `json:"updated_at"`                                                                           // 更新时间

	// 关联
	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"user,omitempty"` // 所属用户（随用户级联删除）
}

// TableName 指定表名
func (SellerProfile) TableName() string {
	return "seller_profiles"
}
