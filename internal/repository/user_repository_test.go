package repository

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/farmket-server/internal/constants"
	"github.com/farmket-server/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupUserRepositoryTest(t *testing.T) (*GormUserRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.SellerProfile{}, &models.BuyerProfile{}); err != nil {
		t.Fatalf("migrate user models failed: %v", err)
	}
	return NewUserRepository(db), db
}

func createTestUser(t *testing.T, db *gorm.DB, email, userType string) *models.User {
	t.Helper()
	user := &models.User{
		Email:      email,
		UserType:   userType,
		IsActive:   true,
		DateJoined: time.Now(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func TestUserGetByEmailNotFoundReturnsNil(t *testing.T) {
	repo, _ := setupUserRepositoryTest(t)

	got, err := repo.GetByEmail("nobody@farmket.test")
	if err != nil {
		t.Fatalf("get by email failed: %v", err)
	}
	if got != nil {
		t.Fatalf("missing user want nil got %+v", got)
	}
}

func TestUserCountByEmailExcludesID(t *testing.T) {
	repo, db := setupUserRepositoryTest(t)

	user := createTestUser(t, db, "farmer@farmket.test", constants.UserTypeSeller)

	count, err := repo.CountByEmail("farmer@farmket.test", nil)
	if err != nil {
		t.Fatalf("count by email failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}

	excludeID := fmt.Sprintf("%d", user.ID)
	count, err = repo.CountByEmail("farmer@farmket.test", &excludeID)
	if err != nil {
		t.Fatalf("count excluding self failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count excluding self want 0 got %d", count)
	}
}

func TestUserListFilters(t *testing.T) {
	repo, db := setupUserRepositoryTest(t)

	seller := createTestUser(t, db, "alice@farmket.test", constants.UserTypeSeller)
	seller.FirstName = "Alice"
	if err := db.Save(seller).Error; err != nil {
		t.Fatalf("update seller failed: %v", err)
	}

	buyer := createTestUser(t, db, "bob@farmket.test", constants.UserTypeBuyer)
	buyer.IsActive = false
	if err := db.Save(buyer).Error; err != nil {
		t.Fatalf("update buyer failed: %v", err)
	}

	staff := createTestUser(t, db, "ops@farmket.test", "")
	staff.IsStaff = true
	if err := db.Save(staff).Error; err != nil {
		t.Fatalf("update staff failed: %v", err)
	}

	sellers, total, err := repo.List(UserListFilter{UserType: constants.UserTypeSeller})
	if err != nil {
		t.Fatalf("list sellers failed: %v", err)
	}
	if total != 1 || sellers[0].Email != "alice@farmket.test" {
		t.Fatalf("sellers want alice got total=%d", total)
	}

	inactive := false
	got, total, err := repo.List(UserListFilter{IsActive: &inactive})
	if err != nil {
		t.Fatalf("list inactive failed: %v", err)
	}
	if total != 1 || got[0].Email != "bob@farmket.test" {
		t.Fatalf("inactive want bob got total=%d", total)
	}

	isStaff := true
	got, total, err = repo.List(UserListFilter{IsStaff: &isStaff})
	if err != nil {
		t.Fatalf("list staff failed: %v", err)
	}
	if total != 1 || got[0].Email != "ops@farmket.test" {
		t.Fatalf("staff want ops got total=%d", total)
	}

	got, total, err = repo.List(UserListFilter{Search: "alice"})
	if err != nil {
		t.Fatalf("list search failed: %v", err)
	}
	if total != 1 || got[0].FirstName != "Alice" {
		t.Fatalf("search want Alice got total=%d", total)
	}
}

func TestUserDeleteCascadesProfiles(t *testing.T) {
	repo, db := setupUserRepositoryTest(t)

	seller := createTestUser(t, db, "grower@farmket.test", constants.UserTypeSeller)
	profile := &models.SellerProfile{
		UserID:       seller.ID,
		BusinessName: "Grower Farm",
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("create seller profile failed: %v", err)
	}

	buyer := createTestUser(t, db, "shopper@farmket.test", constants.UserTypeBuyer)
	if err := db.Create(&models.BuyerProfile{UserID: buyer.ID}).Error; err != nil {
		t.Fatalf("create buyer profile failed: %v", err)
	}

	if err := repo.Delete(fmt.Sprintf("%d", seller.ID)); err != nil {
		t.Fatalf("delete seller failed: %v", err)
	}

	var sellerProfiles int64
	if err := db.Model(&models.SellerProfile{}).Count(&sellerProfiles).Error; err != nil {
		t.Fatalf("count seller profiles failed: %v", err)
	}
	if sellerProfiles != 0 {
		t.Fatalf("seller profile should cascade, want 0 got %d", sellerProfiles)
	}

	var buyerProfiles int64
	if err := db.Model(&models.BuyerProfile{}).Count(&buyerProfiles).Error; err != nil {
		t.Fatalf("count buyer profiles failed: %v", err)
	}
	if buyerProfiles != 1 {
		t.Fatalf("other user's profile should survive, want 1 got %d", buyerProfiles)
	}

	if err := repo.Delete(fmt.Sprintf("%d", buyer.ID)); err != nil {
		t.Fatalf("delete buyer failed: %v", err)
	}
	if err := db.Model(&models.BuyerProfile{}).Count(&buyerProfiles).Error; err != nil {
		t.Fatalf("recount buyer profiles failed: %v", err)
	}
	if buyerProfiles != 0 {
		t.Fatalf("buyer profile should cascade, want 0 got %d", buyerProfiles)
	}
}

func TestUserDuplicateEmailTranslatesError(t *testing.T) {
	repo, db := setupUserRepositoryTest(t)

	createTestUser(t, db, "dup@farmket.test", constants.UserTypeBuyer)
	err := repo.Create(&models.User{
		Email:      "dup@farmket.test",
		UserType:   constants.UserTypeBuyer,
		IsActive:   true,
		DateJoined: time.Now(),
	})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("duplicate email want gorm.ErrDuplicatedKey got %v", err)
	}
}
