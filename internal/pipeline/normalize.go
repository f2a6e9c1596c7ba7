package pipeline

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dentistnoor/DentistFriend-V2-sub000/constants"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
)

// NormalizeRecord maps one raw model row plus the image's shared visit date
// onto the staged record shape. Normalization never rejects a row; anything
// it cannot interpret passes through for a human to fix in review.
func NormalizeRecord(raw entity.RawPatientEntry, visitDate string) entity.StagedPatientRecord {
	gender, _ := constants.CanonicalizeGender(raw.Gender)

	return entity.StagedPatientRecord{
		VisitDate:   NormalizeVisitDate(visitDate),
		Name:        strings.TrimSpace(raw.Name),
		FileNumber:  strings.TrimSpace(coerceString(raw.FileNumber)),
		Gender:      gender,
		Nationality: strings.TrimSpace(raw.Nationality),
		PaymentType: string(constants.PaymentTypeCash),
		Procedure:   strings.TrimSpace(raw.Procedure),
		Amount:      CoerceAmount(raw.Amount),
	}
}

// NormalizeVisitDate brings loose ledger dates ("18/5/25", "5/1/99") into the
// DD/MM/YYYY display form. An absent date defaults to today in ISO form; a
// shape without '/' separators passes through unchanged. Two-digit years use
// the same century pivot as time.Parse: 69..99 -> 19xx, otherwise 20xx.
func NormalizeVisitDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now().Format("2006-01-02")
	}
	if !strings.Contains(s, "/") {
		return s
	}

	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return s
	}
	day, month, year := pad2(parts[0]), pad2(parts[1]), strings.TrimSpace(parts[2])
	if len(year) == 2 {
		if yy, err := strconv.Atoi(year); err == nil && yy >= 69 {
			year = "19" + year
		} else {
			year = "20" + year
		}
	}
	return day + "/" + month + "/" + year
}

// DisplayDateToISO converts DD/MM/YYYY into YYYY-MM-DD for storage. Inputs
// already in ISO form (the empty-date default) are returned as-is.
func DisplayDateToISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation("2006-01-02", s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("02/01/2006", s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid visit date %q: %w", s, err)
	}
	return t, nil
}

// CoerceAmount accepts native numbers as-is and non-empty numeric strings via
// decimal parsing; anything else coerces to 0.
func CoerceAmount(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return 0
	default:
		return 0
	}
}

// TitleCaseProcedure title-cases each whitespace-separated token of a
// freehand procedure string. Applied at commit time, not extraction time.
func TitleCaseProcedure(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		r := []rune(f)
		fields[i] = strings.ToUpper(string(r[:1])) + strings.ToLower(string(r[1:]))
	}
	return strings.Join(fields, " ")
}

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		// ledger file numbers read as bare numbers
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

func pad2(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
