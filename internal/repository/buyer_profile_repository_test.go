package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/farmket-server/internal/constants"
	"github.com/farmket-server/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupBuyerProfileRepositoryTest(t *testing.T) (*GormBuyerProfileRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.BuyerProfile{}); err != nil {
		t.Fatalf("migrate buyer models failed: %v", err)
	}
	return NewBuyerProfileRepository(db), db
}

func TestBuyerProfilePreferredCategoriesRoundTrip(t *testing.T) {
	repo, db := setupBuyerProfileRepositoryTest(t)

	user := createTestUser(t, db, "basket@farmket.test", constants.UserTypeBuyer)
	profile := &models.BuyerProfile{
		UserID:              user.ID,
		PreferredCategories: models.UintList{3, 7, 11},
	}
	if err := repo.Create(profile); err != nil {
		t.Fatalf("create buyer profile failed: %v", err)
	}

	got, err := repo.GetByUserID(fmt.Sprintf("%d", user.ID))
	if err != nil {
		t.Fatalf("get buyer profile failed: %v", err)
	}
	if got == nil {
		t.Fatal("get buyer profile want profile got nil")
	}
	if len(got.PreferredCategories) != 3 || got.PreferredCategories[1] != 7 {
		t.Fatalf("preferred categories want [3 7 11] got %v", got.PreferredCategories)
	}
	if got.User.Email != "basket@farmket.test" {
		t.Fatalf("user preload want basket@farmket.test got %q", got.User.Email)
	}
}

func TestBuyerProfileEmptyPreferredCategoriesStoresEmptyList(t *testing.T) {
	repo, db := setupBuyerProfileRepositoryTest(t)

	user := createTestUser(t, db, "empty@farmket.test", constants.UserTypeBuyer)
	if err := repo.Create(&models.BuyerProfile{UserID: user.ID}); err != nil {
		t.Fatalf("create buyer profile failed: %v", err)
	}

	got, err := repo.GetByUserID(fmt.Sprintf("%d", user.ID))
	if err != nil {
		t.Fatalf("get buyer profile failed: %v", err)
	}
	if got == nil {
		t.Fatal("get buyer profile want profile got nil")
	}
	if got.PreferredCategories == nil || len(got.PreferredCategories) != 0 {
		t.Fatalf("preferred categories want empty list got %v", got.PreferredCategories)
	}
}
