package model

import (
	"strings"
	"testing"
	"time"
)

func TestNewCaseID(t *testing.T) {
	id := NewCaseID()
	if !strings.HasPrefix(id, "CASE-") {
		t.Fatalf("NewCaseID() = %q, want CASE- prefix", id)
	}
}

func TestNowLayout(t *testing.T) {
	s := Now()
	ts, err := time.Parse(TimeLayout, s)
	if err != nil {
		t.Fatalf("Now() = %q does not match layout: %v", s, err)
	}
	if time.Since(ts) > time.Minute {
		t.Errorf("Now() = %q is not current", s)
	}
}

func TestNormalizeGender(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Male", GenderMale},
		{"Female", GenderFemale},
		{"Other", GenderOther},
		{"", GenderOther},
		{"male", GenderOther},
		{"unknown", GenderOther},
	}
	for _, tt := range tests {
		if got := NormalizeGender(tt.in); got != tt.want {
			t.Errorf("NormalizeGender(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
