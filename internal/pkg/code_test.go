package pkg

import (
	"strings"
	"testing"
	"time"
)

func TestRandDigits(t *testing.T) {
	s, err := RandDigits(6)
	if err != nil {
		t.Fatalf("RandDigits: %v", err)
	}
	if len(s) != 6 {
		t.Fatalf("want 6 digits, got %q", s)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			t.Fatalf("non-digit %q in %q", c, s)
		}
	}
}

func TestMembershipNoFormat(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	no, err := MembershipNo(now)
	if err != nil {
		t.Fatalf("MembershipNo: %v", err)
	}
	if len(no) != 13 {
		t.Fatalf("want 13 chars, got %q", no)
	}
	if !strings.HasPrefix(no, "M20250315") {
		t.Fatalf("bad prefix: %q", no)
	}
}

func TestRandTokenUnique(t *testing.T) {
	a, err := RandToken(32)
	if err != nil {
		t.Fatalf("RandToken: %v", err)
	}
	b, err := RandToken(32)
	if err != nil {
		t.Fatalf("RandToken: %v", err)
	}
	if a == b {
		t.Fatal("two tokens should not collide")
	}
}
