package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// UintList 无符号整数列表类型，按 JSON 存储（如偏好分类ID列表）
type UintList []uint

// Value 实现 driver.Valuer 接口
func (l UintList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(UintList{})
	}
	return json.Marshal(l)
}

// Scan 实现 sql.Scanner 接口
func (l *UintList) Scan(value interface{}) error {
	if value == nil {
		*l = UintList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		*l = UintList{}
		return nil
	}
}

// BuyerProfile 买家档案表（与用户一对一，主键即用户ID）
type BuyerProfile struct {
	UserID              uint      `gorm:"primarykey" json:"user_id"`                               // 用户ID（主键）
	PreferredCategories UintList  `gorm:"type:json" json:"preferred_categories"`                   // 偏好分类ID列表（有序）
	TotalOrders         int       `gorm:"not null;default:0" json:"total_orders"`                  // 累计订单数
	TotalSpent          Money     `gorm:"type:decimal(12,2);not null;default:0" json:"total_spent"` // 累计消费金额
	LoyaltyPoints       int       `gorm:"not null;default:0" json:"loyalty_points"`                // 积分
	CreatedAt           time.Time `json:"created_at"`                                              // 创建时间
	UpdatedAt           time.Time `json:"updated_at"`                                              // 更新时间

	// 关联
	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"user,omitempty"` // 所属用户（随用户级联删除）
}

// TableName 指定表名
func (BuyerProfile) TableName() string {
	return "buyer_profiles"
}
