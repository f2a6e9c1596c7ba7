package constants

import "testing"

func TestCanonicalizeGender(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"m", "Male", true},
		{"M", "Male", true},
		{"male", "Male", true},
		{"f", "Female", true},
		{"FEMALE", "Female", true},
		{"Female", "Female", true},
		{" f ", "Female", true},
		{"o", "Other", true},
		{"x", "x", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := CanonicalizeGender(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("CanonicalizeGender(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
