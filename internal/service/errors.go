package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// 错误分为三类：校验失败、唯一性冲突、超管标志矛盾。
// 具体错误用 %w 挂在分类下，errors.Is 对分类和具体错误都成立。
var (
	ErrValidation     = errors.New("validation failed")
	ErrDuplicate      = errors.New("duplicate value")
	ErrSuperuserFlags = errors.New("superuser flags conflict")
	ErrNotFound       = errors.New("record not found")
)

// 校验类错误
var (
	ErrEmailRequired   = fmt.Errorf("%w: email is required", ErrValidation)
	ErrPhoneInvalid    = fmt.Errorf("%w: phone number format is invalid", ErrValidation)
	ErrUserTypeInvalid = fmt.Errorf("%w: user type must be buyer or seller", ErrValidation)
	ErrNameRequired    = fmt.Errorf("%w: name is required", ErrValidation)
	ErrSKURequired     = fmt.Errorf("%w: sku is required", ErrValidation)
	ErrPriceNegative   = fmt.Errorf("%w: price must not be negative", ErrValidation)
	ErrDiscountInvalid = fmt.Errorf("%w: discount price must not be negative", ErrValidation)
	ErrStockNegative   = fmt.Errorf("%w: stock quantity must not be negative", ErrValidation)
	ErrUnitInvalid     = fmt.Errorf("%w: unknown unit", ErrValidation)
	ErrStatusInvalid   = fmt.Errorf("%w: unknown product status", ErrValidation)
	ErrImageRequired   = fmt.Errorf("%w: image is required", ErrValidation)
	ErrCategoryInvalid = fmt.Errorf("%w: category does not exist", ErrValidation)
	ErrProductInvalid  = fmt.Errorf("%w: product does not exist", ErrValidation)
	ErrSellerInvalid   = fmt.Errorf("%w: seller profile does not exist", ErrValidation)
	ErrUserInvalid     = fmt.Errorf("%w: user does not exist", ErrValidation)
	ErrParentInvalid   = fmt.Errorf("%w: parent category does not exist", ErrValidation)
)

// 唯一性冲突类错误
var (
	ErrSlugExists         = fmt.Errorf("%w: slug already exists", ErrDuplicate)
	ErrSKUExists          = fmt.Errorf("%w: sku already exists", ErrDuplicate)
	ErrEmailExists        = fmt.Errorf("%w: email already exists", ErrDuplicate)
	ErrCategoryNameExists = fmt.Errorf("%w: category name already exists", ErrDuplicate)
	ErrBusinessNameExists = fmt.Errorf("%w: business name already exists", ErrDuplicate)
	ErrProfileExists      = fmt.Errorf("%w: profile already exists for this user", ErrDuplicate)
)

// translateStorageError 把存储层的唯一键冲突归入冲突类；其余错误原样返回。
// 预检和写入之间的竞争窗口由数据库唯一约束兜底，这里统一其表现。
func translateStorageError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}
