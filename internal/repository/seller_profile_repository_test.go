package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/farmket-server/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupSellerProfileRepositoryTest(t *testing.T) (*GormSellerProfileRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.SellerProfile{}); err != nil {
		t.Fatalf("migrate seller models failed: %v", err)
	}
	return NewSellerProfileRepository(db), db
}

func TestSellerProfileListFiltersAndOrder(t *testing.T) {
	repo, db := setupSellerProfileRepositoryTest(t)

	low := createTestSeller(t, db, "low@farmket.test", "Low Meadow")
	low.Rating = decimal.RequireFromString("3.20")
	if err := db.Save(low).Error; err != nil {
		t.Fatalf("save low failed: %v", err)
	}

	high := createTestSeller(t, db, "high@farmket.test", "High Meadow")
	high.Rating = decimal.RequireFromString("4.85")
	high.IsVerifiedSeller = true
	if err := db.Save(high).Error; err != nil {
		t.Fatalf("save high failed: %v", err)
	}

	got, total, err := repo.List(SellerProfileListFilter{})
	if err != nil {
		t.Fatalf("list sellers failed: %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Fatalf("sellers want 2 got total=%d len=%d", total, len(got))
	}
	if got[0].BusinessName != "High Meadow" {
		t.Fatalf("list should order by rating desc, got %s first", got[0].BusinessName)
	}

	verified := true
	got, total, err = repo.List(SellerProfileListFilter{IsVerifiedSeller: &verified})
	if err != nil {
		t.Fatalf("list verified failed: %v", err)
	}
	if total != 1 || got[0].BusinessName != "High Meadow" {
		t.Fatalf("verified want High Meadow got total=%d", total)
	}

	got, total, err = repo.List(SellerProfileListFilter{Search: "low@farmket"})
	if err != nil {
		t.Fatalf("search by email failed: %v", err)
	}
	if total != 1 || got[0].BusinessName != "Low Meadow" {
		t.Fatalf("email search want Low Meadow got total=%d", total)
	}

	got, _, err = repo.List(SellerProfileListFilter{WithUser: true})
	if err != nil {
		t.Fatalf("list with user failed: %v", err)
	}
	if got[0].User.Email == "" {
		t.Fatal("user preload should populate email")
	}
}

func TestSellerProfileCountByBusinessName(t *testing.T) {
	repo, db := setupSellerProfileRepositoryTest(t)

	profile := createTestSeller(t, db, "stand@farmket.test", "Roadside Stand")

	count, err := repo.CountByBusinessName("Roadside Stand", nil)
	if err != nil {
		t.Fatalf("count by business name failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}

	excludeID := fmt.Sprintf("%d", profile.UserID)
	count, err = repo.CountByBusinessName("Roadside Stand", &excludeID)
	if err != nil {
		t.Fatalf("count excluding self failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count excluding self want 0 got %d", count)
	}
}

func TestSellerProfileGetByUserIDNotFoundReturnsNil(t *testing.T) {
	repo, _ := setupSellerProfileRepositoryTest(t)

	got, err := repo.GetByUserID("9999")
	if err != nil {
		t.Fatalf("get by user id failed: %v", err)
	}
	if got != nil {
		t.Fatalf("missing profile want nil got %+v", got)
	}
}
