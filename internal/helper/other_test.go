package helper

import (
	"testing"
	"time"
)

func TestParseAPIDate(t *testing.T) {
	got, err := ParseAPIDate("2024-01-03")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	for _, raw := range []string{"03-01-2024", "2024/01/03", "2024-13-01", ""} {
		if _, err := ParseAPIDate(raw); err == nil {
			t.Errorf("Expected an error for %q", raw)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	if !IsNumeric("24") {
		t.Error("24 should be numeric")
	}
	for _, s := range []string{"-5", "2.5", "abc", "1h"} {
		if IsNumeric(s) {
			t.Errorf("%q should not be numeric", s)
		}
	}
}
