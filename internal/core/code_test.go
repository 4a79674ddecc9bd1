package core

import (
	"strings"
	"testing"
)

func TestNormalizeCode(t *testing.T) {
	cases := map[string]string{
		"ab12cd":    "AB12CD",
		" AB12CD ":  "AB12CD",
		"\tAb12Cd ": "AB12CD",
		"":          "",
	}
	for in, want := range cases {
		if got := NormalizeCode(in); got != want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRandomCodeShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := randomCode(defaultCodeLength)
		if len(code) != defaultCodeLength {
			t.Fatalf("code %q has length %d", code, len(code))
		}
		for _, r := range code {
			if !strings.ContainsRune(codeAlphabet, r) {
				t.Fatalf("code %q contains %q outside the alphabet", code, r)
			}
		}
	}
}

func TestNewRoomCodeAvoidsLiveCodes(t *testing.T) {
	taken := map[string]bool{}
	for i := 0; i < 200; i++ {
		code := newRoomCode(defaultCodeLength, func(c string) bool { return taken[c] })
		if taken[code] {
			t.Fatalf("allocated live code %q twice", code)
		}
		taken[code] = true
	}
}

func TestNewRoomCodeWidensWhenSpaceIsCrowded(t *testing.T) {
	// Refusing every default-length candidate forces the fallback to a
	// wider code instead of spinning forever.
	code := newRoomCode(defaultCodeLength, func(c string) bool {
		return len(c) == defaultCodeLength
	})
	if len(code) != defaultCodeLength+1 {
		t.Fatalf("expected widened code, got %q", code)
	}
}
