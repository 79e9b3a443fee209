package security

import (
	"strings"
	"testing"
)

func TestRandomStringRejectsInvalidArguments(t *testing.T) {
	t.Parallel()

	if _, err := RandomString(-1, "abc"); err == nil {
		t.Fatal("expected error for negative length")
	}
	if _, err := RandomString(4, ""); err == nil {
		t.Fatal("expected error for empty alphabet")
	}
	value, err := RandomString(0, "")
	if err != nil || value != "" {
		t.Fatalf("expected empty value for zero length, got %q (%v)", value, err)
	}
}

func TestNewTokenIDUsesAlphabet(t *testing.T) {
	t.Parallel()

	first, err := NewTokenID()
	if err != nil {
		t.Fatalf("NewTokenID returned error: %v", err)
	}
	if len(first) != tokenIDLength {
		t.Fatalf("token id length = %d, want %d", len(first), tokenIDLength)
	}
	for _, char := range first {
		if !strings.ContainsRune(tokenIDAlphabet, char) {
			t.Fatalf("token id %q contains %q outside alphabet", first, char)
		}
	}

	second, err := NewTokenID()
	if err != nil {
		t.Fatalf("NewTokenID returned error: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct token ids, got %q twice", first)
	}
}
