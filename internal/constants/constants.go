package constants

// 用户类型常量
const (
	UserTypeBuyer  = "buyer"
	UserTypeSeller = "seller"
)

// 商品状态常量
const (
	ProductStatusAvailable    = "available"
	ProductStatusOutOfStock   = "out_of_stock"
	ProductStatusDiscontinued = "discontinued"
)

// 计量单位常量
const (
	UnitKg    = "kg"
	UnitGram  = "g"
	UnitLiter = "l"
	UnitPiece = "piece"
	UnitDozen = "dozen"
	UnitBunch = "bunch"
	UnitPack  = "pack"
)

// 字段长度上限常量
const (
	MaxCategoryNameLength = 100
	MaxProductNameLength  = 200
	MaxSlugLength         = 220
	MaxSKULength          = 50
	MaxEmailLength        = 255
	MaxNameLength         = 150
	MaxPhoneLength        = 17
	MaxBusinessNameLength = 255
)

// 分页默认值常量
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
