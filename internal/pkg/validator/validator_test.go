package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-01-01", "2000-12-31"}
	invalid := []string{"2025-13-01", "01-01-2025", "2025-01-01T00:00:00Z", "", "yesterday"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidCountryCode(t *testing.T) {
	valid := []string{"CH", "CO", "DE"}
	invalid := []string{"ch", "CHE", "C", "", "1A"}
	for _, s := range valid {
		if !IsValidCountryCode(s) {
			t.Errorf("IsValidCountryCode(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidCountryCode(s) {
			t.Errorf("IsValidCountryCode(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"full_time", "part_time_50"}
	if !IsInSlice("full_time", slice) {
		t.Error("IsInSlice should find full_time")
	}
	if IsInSlice("freelance", slice) {
		t.Error("IsInSlice should not find freelance")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "period_start", Message: "is required"},
		{Field: "country_code", Message: "is required"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["period_start"] != "is required" {
		t.Errorf("ToMap()[period_start] = %q", m["period_start"])
	}
	if errs.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
