package repository

// CategoryListFilter 查询分类列表的过滤条件
type CategoryListFilter struct {
	Page         int
	PageSize     int
	ParentID     *uint // nil 不过滤；0 只取顶级分类
	IsActive     *bool
	Search       string
	OnlyActive   bool
	WithChildren bool
}

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page          int
	PageSize      int
	CategoryID    string
	SellerID      string
	Status        string
	IsFeatured    *bool
	Search        string
	OnlyAvailable bool
	WithSeller    bool
	WithCategory  bool
	WithImages    bool
}

// ProductImageListFilter 查询商品图片列表的过滤条件
type ProductImageListFilter struct {
	Page      int
	PageSize  int
	ProductID string
	Search    string
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page     int
	PageSize int
	UserType string
	IsActive *bool
	IsStaff  *bool
	Search   string
}

// SellerProfileListFilter 查询卖家档案列表的过滤条件
type SellerProfileListFilter struct {
	Page             int
	PageSize         int
	IsVerifiedSeller *bool
	Search           string
	WithUser         bool
}

// BuyerProfileListFilter 查询买家档案列表的过滤条件
type BuyerProfileListFilter struct {
	Page     int
	PageSize int
	WithUser bool
}
