package images

import (
	"strings"
	"testing"
)

func TestHeadshotURL_KnownPlayer(t *testing.T) {
	r := NewResolver(map[string]string{"Patrick Mahomes": "3139477"})

	got := r.HeadshotURL("Patrick Mahomes")
	want := "https://a.espncdn.com/i/headshots/nfl/players/full/3139477.png"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestHeadshotURL_CaseInsensitiveAndTrimmed(t *testing.T) {
	r := NewResolver(map[string]string{"Patrick Mahomes": "3139477"})

	tests := []string{
		"patrick mahomes",
		"PATRICK MAHOMES",
		"  Patrick Mahomes  ",
	}
	for _, name := range tests {
		if got := r.HeadshotURL(name); !strings.Contains(got, "3139477") {
			t.Errorf("lookup for %q missed the mapping: %s", name, got)
		}
	}
}

func TestHeadshotURL_UnknownPlayerGetsInitialsPlaceholder(t *testing.T) {
	r := NewResolver(map[string]string{})

	got := r.HeadshotURL("Josh Allen")
	if !strings.Contains(got, "ui-avatars.com") {
		t.Errorf("expected placeholder URL, got %s", got)
	}
	if !strings.Contains(got, "name=JA") {
		t.Errorf("expected initials JA in placeholder, got %s", got)
	}
}

func TestFallbackURL_DistinctPalette(t *testing.T) {
	r := NewResolver(map[string]string{})

	placeholder := r.HeadshotURL("Josh Allen")
	fallback := r.FallbackURL("Josh Allen")

	if fallback == placeholder {
		t.Error("fallback must use a distinct palette from the placeholder")
	}
	if !strings.Contains(fallback, "name=JA") {
		t.Errorf("expected initials JA in fallback, got %s", fallback)
	}
}

func TestFallbackURL_AlwaysSynthesized(t *testing.T) {
	// Even a mapped player gets an initials fallback for client-side error
	// recovery.
	r := NewResolver(map[string]string{"Patrick Mahomes": "3139477"})

	got := r.FallbackURL("Patrick Mahomes")
	if strings.Contains(got, "3139477") {
		t.Errorf("fallback should never be a CDN lookup, got %s", got)
	}
	if !strings.Contains(got, "name=PM") {
		t.Errorf("expected initials PM, got %s", got)
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Josh Allen", "JA"},
		{"Amon-Ra St. Brown", "AB"},
		{"Cher", "C"},
		{"", "?"},
		{"D'Andre Swift", "DS"},
	}
	for _, tt := range tests {
		if got := initials(tt.name); got != tt.want {
			t.Errorf("initials(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
