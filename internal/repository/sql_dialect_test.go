package repository

import (
	"strings"
	"testing"
)

func TestLikeOperatorByDialect(t *testing.T) {
	if got := likeOperatorByDialect("postgres"); got != "ILIKE" {
		t.Fatalf("postgres like operator want ILIKE got %s", got)
	}
	if got := likeOperatorByDialect("sqlite"); got != "LIKE" {
		t.Fatalf("sqlite like operator want LIKE got %s", got)
	}
	if got := likeOperatorByDialect(""); got != "LIKE" {
		t.Fatalf("empty dialect should fall back to LIKE, got %s", got)
	}
}

func TestBuildLikeConditionByDialect(t *testing.T) {
	condition, argCount := buildLikeConditionByDialect("sqlite", []string{"products.name", "products.slug", "", "products.sku"})
	if argCount != 3 {
		t.Fatalf("arg count want 3 got %d", argCount)
	}
	if !strings.Contains(condition, "products.name LIKE ?") {
		t.Fatalf("condition should contain name LIKE, got %s", condition)
	}
	if strings.Count(condition, " OR ") != 2 {
		t.Fatalf("condition should join columns with OR, got %s", condition)
	}

	condition, _ = buildLikeConditionByDialect("postgres", []string{"users.email"})
	if condition != "users.email ILIKE ?" {
		t.Fatalf("postgres condition mismatch, got %s", condition)
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs("%mango%", 3)
	if len(args) != 3 {
		t.Fatalf("args len want 3 got %d", len(args))
	}
	for idx, arg := range args {
		if arg != "%mango%" {
			t.Fatalf("args[%d] want %%mango%% got %v", idx, arg)
		}
	}
}
