package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/farmket-server/internal/constants"
	"github.com/farmket-server/internal/models"
	"github.com/farmket-server/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// phonePattern 手机号格式：可选 + 前缀和国家码 1，9 到 15 位数字
var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// UserService 用户业务服务
type UserService struct {
	repo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// CreateUserInput 创建用户输入；布尔位用指针区分未提供与显式 false。
type CreateUserInput struct {
	Email          string
	Password       string
	UserType       string
	FirstName      string
	LastName       string
	PhoneNumber    string
	ProfilePicture string
	Address        string
	City           string
	State          string
	IsActive       *bool
	IsStaff        *bool
	IsSuperuser    *bool
	IsVerified     *bool
}

// CreateSuperuserInput 创建超级管理员输入
type CreateSuperuserInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	IsActive    *bool
	IsStaff     *bool
	IsSuperuser *bool
}

// UpdateUserInput 更新用户输入；Password 为 nil 表示不改密码。
type UpdateUserInput struct {
	Email          string
	UserType       string
	FirstName      string
	LastName       string
	PhoneNumber    string
	ProfilePicture string
	Address        string
	City           string
	State          string
	Password       *string
	IsActive       *bool
	IsStaff        *bool
	IsSuperuser    *bool
	IsVerified     *bool
}

// List 用户列表
func (s *UserService) List(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.repo.List(filter)
}

// GetByID 获取用户详情
func (s *UserService) GetByID(id string) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// GetByEmail 根据邮箱获取用户（不存在返回 nil）
func (s *UserService) GetByEmail(email string) (*models.User, error) {
	return s.repo.GetByEmail(normalizeEmail(email))
}

// CreateUser 创建用户：空邮箱报错；邮箱规范化后查重；密码为空时存空哈希，
// 该账号在设置密码前无法用密码登录。不会自动创建买家/卖家档案。
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	if input.Email == "" {
		return nil, ErrEmailRequired
	}
	email := normalizeEmail(input.Email)

	if input.UserType != "" && input.UserType != constants.UserTypeBuyer && input.UserType != constants.UserTypeSeller {
		return nil, ErrUserTypeInvalid
	}
	if input.PhoneNumber != "" && !phonePattern.MatchString(input.PhoneNumber) {
		return nil, ErrPhoneInvalid
	}

	count, err := s.repo.CountByEmail(email, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailExists
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:          email,
		UserType:       input.UserType,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		PasswordHash:   hash,
		PhoneNumber:    input.PhoneNumber,
		ProfilePicture: input.ProfilePicture,
		Address:        input.Address,
		City:           input.City,
		State:          input.State,
		IsActive:       true,
		DateJoined:     time.Now(),
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.IsStaff != nil {
		user.IsStaff = *input.IsStaff
	}
	if input.IsSuperuser != nil {
		user.IsSuperuser = *input.IsSuperuser
	}
	if input.IsVerified != nil {
		user.IsVerified = *input.IsVerified
	}

	if err := s.repo.Create(&user); err != nil {
		return nil, translateStorageError(err)
	}
	return &user, nil
}

// CreateSuperuser 创建超级管理员：未显式给出的标志默认 true；
// is_staff 或 is_superuser 显式传 false 属于矛盾配置，直接拒绝。
func (s *UserService) CreateSuperuser(input CreateSuperuserInput) (*models.User, error) {
	if input.IsStaff == nil {
		input.IsStaff = boolPtr(true)
	} else if !*input.IsStaff {
		return nil, fmt.Errorf("%w: is_staff must be true", ErrSuperuserFlags)
	}
	if input.IsSuperuser == nil {
		input.IsSuperuser = boolPtr(true)
	} else if !*input.IsSuperuser {
		return nil, fmt.Errorf("%w: is_superuser must be true", ErrSuperuserFlags)
	}
	if input.IsActive == nil {
		input.IsActive = boolPtr(true)
	}

	return s.CreateUser(CreateUserInput{
		Email:       input.Email,
		Password:    input.Password,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		IsActive:    input.IsActive,
		IsStaff:     input.IsStaff,
		IsSuperuser: input.IsSuperuser,
	})
}

// EnsureSuperuser 启动引导：邮箱不存在时创建超管并返回 true，已存在则原样
// 返回现有用户。
func (s *UserService) EnsureSuperuser(email, password string) (*models.User, bool, error) {
	existing, err := s.repo.GetByEmail(normalizeEmail(email))
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	user, err := s.CreateSuperuser(CreateSuperuserInput{Email: email, Password: password})
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

// UpdateUser 更新用户
func (s *UserService) UpdateUser(id string, input UpdateUserInput) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if input.Email == "" {
		return nil, ErrEmailRequired
	}
	email := normalizeEmail(input.Email)

	if input.UserType != "" && input.UserType != constants.UserTypeBuyer && input.UserType != constants.UserTypeSeller {
		return nil, ErrUserTypeInvalid
	}
	if input.PhoneNumber != "" && !phonePattern.MatchString(input.PhoneNumber) {
		return nil, ErrPhoneInvalid
	}

	count, err := s.repo.CountByEmail(email, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailExists
	}

	user.Email = email
	user.UserType = input.UserType
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.PhoneNumber = input.PhoneNumber
	user.ProfilePicture = input.ProfilePicture
	user.Address = input.Address
	user.City = input.City
	user.State = input.State
	if input.Password != nil {
		hash, err := hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.IsStaff != nil {
		user.IsStaff = *input.IsStaff
	}
	if input.IsSuperuser != nil {
		user.IsSuperuser = *input.IsSuperuser
	}
	if input.IsVerified != nil {
		user.IsVerified = *input.IsVerified
	}

	if err := s.repo.Update(user); err != nil {
		return nil, translateStorageError(err)
	}
	return user, nil
}

// Delete 删除用户（买家/卖家档案及其商品随库级联删除）
func (s *UserService) Delete(id string) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// VerifyPassword 校验明文密码与存储哈希是否匹配；空哈希账号恒为否。
func (s *UserService) VerifyPassword(user *models.User, password string) bool {
	if user == nil || !user.HasUsablePassword() {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// normalizeEmail 规范邮箱：有 @ 时去除首尾空白并把最后一个 @ 之后的域名
// 转小写（本地部分大小写保留）；没有 @ 的输入原样返回。
func normalizeEmail(email string) string {
	trimmed := strings.TrimSpace(email)
	at := strings.LastIndex(trimmed, "@")
	if at < 0 {
		return email
	}
	return trimmed[:at] + "@" + strings.ToLower(trimmed[at+1:])
}

// hashPassword 空密码直接存空哈希，账号无法用密码登录。
func hashPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func boolPtr(value bool) *bool {
	return &value
}
