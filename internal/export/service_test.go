package export

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short stays whole", "note", 10, "note"},
		{"cut with ellipsis", "abcdefgh", 5, "abcd…"},
		{"zero limit passes through", "abc", 0, "abc"},
		{"single rune limit", "abc", 1, "a"},
		{"arabic remark cut on rune boundary", "ملاحظة عن المريض", 8, "ملاحظة …"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.n)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate produced invalid UTF-8: %q", got)
			}
		})
	}
}

func TestJoinProcedures(t *testing.T) {
	got := joinProcedures([]entity.ProcedureItem{
		{Name: "Filling", FinalAmount: 200},
		{Name: "Scaling", FinalAmount: 150.5},
	})
	if got != "Filling (200.00), Scaling (150.50)" {
		t.Errorf("joined = %q", got)
	}
	if strings.TrimSpace(joinProcedures(nil)) != "" {
		t.Error("empty list must join to an empty string")
	}
}
