package pipeline

import (
	"testing"
	"time"

	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
)

func TestNormalizeVisitDate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"18/5/25", "18/05/2025"},
		{"5/1/99", "05/01/1999"},
		{"1/1/69", "01/01/1969"},
		{"1/1/68", "01/01/2068"},
		{"01/12/2024", "01/12/2024"},
		{"  7/7/25 ", "07/07/2025"},
		{"2025-05-18", "2025-05-18"}, // no slashes, passes through
		{"May 18", "May 18"},
		{"1/2", "1/2"}, // two parts, passes through
	}
	for _, tt := range tests {
		if got := NormalizeVisitDate(tt.in); got != tt.want {
			t.Errorf("NormalizeVisitDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeVisitDateEmptyDefaultsToToday(t *testing.T) {
	got := NormalizeVisitDate("")
	want := time.Now().Format("2006-01-02")
	if got != want {
		t.Errorf("empty date = %q, want today %q", got, want)
	}
}

func TestDisplayDateToISO(t *testing.T) {
	got, err := DisplayDateToISO("18/05/2025")
	if err != nil {
		t.Fatalf("DisplayDateToISO: %v", err)
	}
	if got.Format("2006-01-02") != "2025-05-18" {
		t.Errorf("got %s", got.Format("2006-01-02"))
	}

	got, err = DisplayDateToISO("2025-05-18")
	if err != nil {
		t.Fatalf("ISO input should parse: %v", err)
	}
	if got.Format("2006-01-02") != "2025-05-18" {
		t.Errorf("got %s", got.Format("2006-01-02"))
	}

	if _, err := DisplayDateToISO("May 18"); err == nil {
		t.Error("want error for unparseable date")
	}
}

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 150.5, 150.5},
		{"numeric string", "50", 50},
		{"decimal string", " 99.90 ", 99.9},
		{"empty string", "", 0},
		{"garbage string", "free", 0},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoerceAmount(tt.in); got != tt.want {
				t.Errorf("CoerceAmount(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTitleCaseProcedure(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"root canal treatment", "Root Canal Treatment"},
		{"SCALING", "Scaling"},
		{"  filling   composite ", "Filling Composite"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleCaseProcedure(tt.in); got != tt.want {
			t.Errorf("TitleCaseProcedure(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeRecord(t *testing.T) {
	raw := entity.RawPatientEntry{
		Name:        " Amina ",
		FileNumber:  float64(2043),
		Gender:      "f",
		Nationality: "Egyptian",
		Procedure:   " filling ",
		Amount:      "150",
	}

	rec := NormalizeRecord(raw, "18/5/25")

	if rec.VisitDate != "18/05/2025" {
		t.Errorf("VisitDate = %q", rec.VisitDate)
	}
	if rec.Name != "Amina" {
		t.Errorf("Name = %q", rec.Name)
	}
	if rec.FileNumber != "2043" {
		t.Errorf("FileNumber = %q", rec.FileNumber)
	}
	if rec.Gender != "Female" {
		t.Errorf("Gender = %q", rec.Gender)
	}
	if rec.PaymentType != "Cash" {
		t.Errorf("PaymentType = %q, want Cash default", rec.PaymentType)
	}
	if rec.Amount != 150 {
		t.Errorf("Amount = %v", rec.Amount)
	}
}

func TestNormalizeRecordUnknownGenderPassesThrough(t *testing.T) {
	rec := NormalizeRecord(entity.RawPatientEntry{Name: "X", Gender: "unknwn"}, "")
	if rec.Gender != "unknwn" {
		t.Errorf("Gender = %q, want unrecognized input preserved", rec.Gender)
	}
}
