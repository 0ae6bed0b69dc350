package security

import (
	"strings"
	"testing"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "What is the capital of France?", "What is the capital of France?"},
		{"script stripped", "<script>alert(1)</script>Geography", "Geography"},
		{"tags stripped, text kept", "<b>Geography</b>", "Geography"},
		{"null bytes dropped", "Geo\x00graphy", "Geography"},
		{"whitespace trimmed", "  Geography  ", "Geography"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTitle(tt.input); got != tt.want {
				t.Errorf("SanitizeTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeTitle_CapsLength(t *testing.T) {
	long := strings.Repeat("a", 2000)
	if got := SanitizeTitle(long); len(got) != 1000 {
		t.Errorf("len = %d, want 1000", len(got))
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "correct-horse-battery" {
		t.Fatal("password stored in the clear")
	}

	if !CheckPassword(hash, "correct-horse-battery") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
	if CheckPassword("not-a-hash", "correct-horse-battery") {
		t.Error("garbage hash accepted")
	}
}
