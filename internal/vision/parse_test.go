package vision

import (
	"errors"
	"testing"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "bare object",
			in:   `{"a":1}`,
			want: `{"a":1}`,
		},
		{
			name: "prose wrapped",
			in:   "Sure! Here is the data:\n{\"a\":1}\nLet me know if you need more.",
			want: `{"a":1}`,
		},
		{
			name: "code fenced",
			in:   "```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name:    "no object at all",
			in:      "I could not read the image.",
			wantErr: true,
		},
		{
			name:    "closing brace before opening",
			in:      "} nothing {",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONObject(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrNoJSONObject) {
					t.Fatalf("want ErrNoJSONObject, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLedgerProseWrapped(t *testing.T) {
	text := "Here is the extracted ledger:\n" +
		`{"visit_date": "18/5/25", "patients": [{"name": "A", "file_number": "1001", "gender": "F", "nationality": "", "procedure": "filling", "amount": "50"}]}` +
		"\nHope that helps!"

	ledger, raw, err := ParseLedger(text)
	if err != nil {
		t.Fatalf("ParseLedger: %v", err)
	}
	if len(raw) == 0 {
		t.Error("expected raw JSON span to be returned")
	}
	if ledger.VisitDate != "18/5/25" {
		t.Errorf("visit_date = %q, want 18/5/25", ledger.VisitDate)
	}
	if len(ledger.Patients) != 1 {
		t.Fatalf("patients = %d, want 1", len(ledger.Patients))
	}
	if ledger.Patients[0].Name != "A" {
		t.Errorf("name = %q, want A", ledger.Patients[0].Name)
	}
}

func TestParseLedgerNumericFields(t *testing.T) {
	// Models regularly emit file numbers and amounts as bare numbers.
	text := `{"visit_date": "01/02/2025", "patients": [{"name": "B", "file_number": 2043, "gender": "Male", "nationality": null, "procedure": "scaling", "amount": 150.5}]}`

	ledger, _, err := ParseLedger(text)
	if err != nil {
		t.Fatalf("ParseLedger: %v", err)
	}
	if len(ledger.Patients) != 1 {
		t.Fatalf("patients = %d, want 1", len(ledger.Patients))
	}
}

func TestParseLedgerMissingPatients(t *testing.T) {
	if _, _, err := ParseLedger(`{"visit_date": "01/02/2025"}`); err == nil {
		t.Fatal("want error for object without patients array")
	}
}

func TestParseLedgerNoJSON(t *testing.T) {
	if _, _, err := ParseLedger("the page is blank"); !errors.Is(err, ErrNoJSONObject) {
		t.Fatalf("want ErrNoJSONObject, got %v", err)
	}
}
