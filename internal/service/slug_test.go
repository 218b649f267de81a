package service

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Fresh Tomatoes", "fresh-tomatoes"},
		{"accents folded", "Crème Brûlée", "creme-brulee"},
		{"punctuation dropped", "Bob's Farm!", "bobs-farm"},
		{"runs collapsed", "  Red -- Apples  ", "red-apples"},
		{"underscores survive", "winter_squash mix", "winter_squash-mix"},
		{"edge underscores trimmed", "___weird---", "weird"},
		{"digits kept", "100% Organic", "100-organic"},
		{"non ascii dropped", "日本語", ""},
		{"mixed script", "Ωmega Farm", "mega-farm"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.input); got != tc.want {
				t.Fatalf("Slugify(%q) want %q got %q", tc.input, tc.want, got)
			}
		})
	}
}
