package models

import (
	"testing"

	"github.com/farmket-server/internal/constants"

	"github.com/shopspring/decimal"
)

func mustMoney(t *testing.T, amount string) Money {
	t.Helper()
	m, err := NewMoneyFromString(amount)
	if err != nil {
		t.Fatalf("parse money %q failed: %v", amount, err)
	}
	return m
}

func moneyPtr(m Money) *Money {
	return &m
}

func TestDiscountPercentage(t *testing.T) {
	cases := []struct {
		name     string
		price    string
		discount string
		want     string
	}{
		{"no discount", "100.00", "", "0"},
		{"quarter off", "100.00", "75.00", "25"},
		{"above price yields negative", "100.00", "120.00", "-20"},
		{"zero discount treated as unset", "100.00", "0.00", "0"},
		{"odd split rounds to two places", "3.00", "2.00", "33.33"},
	}

	for _, tc := range cases {
		product := Product{Price: mustMoney(t, tc.price)}
		if tc.discount != "" {
			product.DiscountPrice = moneyPtr(mustMoney(t, tc.discount))
		}
		got := product.DiscountPercentage()
		want := decimal.RequireFromString(tc.want)
		if !got.Equal(want) {
			t.Fatalf("%s: discount percentage got %s want %s", tc.name, got, want)
		}
	}
}

func TestDiscountPercentageZeroPrice(t *testing.T) {
	product := Product{
		Price:         mustMoney(t, "0.00"),
		DiscountPrice: moneyPtr(mustMoney(t, "10.00")),
	}
	if got := product.DiscountPercentage(); !got.IsZero() {
		t.Fatalf("zero price should yield zero percentage, got %s", got)
	}
}

func TestFinalPrice(t *testing.T) {
	product := Product{Price: mustMoney(t, "40.00")}
	if got := product.FinalPrice().String(); got != "40.00" {
		t.Fatalf("final price without discount got %s want 40.00", got)
	}

	product.DiscountPrice = moneyPtr(mustMoney(t, "29.50"))
	if got := product.FinalPrice().String(); got != "29.50" {
		t.Fatalf("final price with discount got %s want 29.50", got)
	}

	// 折扣价高于原价时仍原样生效
	product.DiscountPrice = moneyPtr(mustMoney(t, "55.00"))
	if got := product.FinalPrice().String(); got != "55.00" {
		t.Fatalf("final price above list price got %s want 55.00", got)
	}

	product.DiscountPrice = moneyPtr(mustMoney(t, "0.00"))
	if got := product.FinalPrice().String(); got != "40.00" {
		t.Fatalf("zero discount should fall back to price, got %s", got)
	}
}

func TestIsInStockIgnoresStatus(t *testing.T) {
	product := Product{StockQuantity: 0, Status: constants.ProductStatusAvailable}
	if product.IsInStock() {
		t.Fatalf("zero stock should report out of stock even when status is available")
	}

	product = Product{StockQuantity: 3, Status: constants.ProductStatusDiscontinued}
	if !product.IsInStock() {
		t.Fatalf("positive stock should report in stock even when status is discontinued")
	}
}

func TestDisplayPrice(t *testing.T) {
	product := Product{
		Price:         mustMoney(t, "100.00"),
		DiscountPrice: moneyPtr(mustMoney(t, "75.00")),
	}
	if got := product.DisplayPrice(); got != "$75.00" {
		t.Fatalf("display price got %s want $75.00", got)
	}
}

func TestSellerBusinessName(t *testing.T) {
	product := Product{}
	if got := product.SellerBusinessName(); got != "" {
		t.Fatalf("unloaded seller should yield empty business name, got %q", got)
	}

	product.Seller = SellerProfile{UserID: 7, BusinessName: "Green Valley Farm"}
	if got := product.SellerBusinessName(); got != "Green Valley Farm" {
		t.Fatalf("seller business name got %q", got)
	}
}

func TestUserRoleHelpers(t *testing.T) {
	buyer := User{UserType: constants.UserTypeBuyer}
	if !buyer.IsBuyer() || buyer.IsSeller() {
		t.Fatalf("buyer role helpers mismatch: is_buyer=%v is_seller=%v", buyer.IsBuyer(), buyer.IsSeller())
	}

	seller := User{UserType: constants.UserTypeSeller}
	if !seller.IsSeller() || seller.IsBuyer() {
		t.Fatalf("seller role helpers mismatch: is_buyer=%v is_seller=%v", seller.IsBuyer(), seller.IsSeller())
	}

	staff := User{}
	if staff.IsBuyer() || staff.IsSeller() {
		t.Fatalf("empty user type should match neither role")
	}
}

func TestUserFullName(t *testing.T) {
	user := User{FirstName: "Asha", LastName: "Patel"}
	if got := user.FullName(); got != "Asha Patel" {
		t.Fatalf("full name got %q", got)
	}

	user = User{FirstName: "Asha"}
	if got := user.FullName(); got != "Asha" {
		t.Fatalf("full name with empty last name got %q", got)
	}
}

func TestUserHasUsablePassword(t *testing.T) {
	user := User{}
	if user.HasUsablePassword() {
		t.Fatalf("empty hash should not be usable")
	}
	user.PasswordHash = "$2a$10$abcdefghijklmnopqrstuv"
	if !user.HasUsablePassword() {
		t.Fatalf("non-empty hash should be usable")
	}
}
