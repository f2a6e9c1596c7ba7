package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/vision"
)

// scriptedGenerator returns one canned response (or error) per call, in order.
type scriptedGenerator struct {
	responses []string
	errs      []error
	calls     int
}

func (g *scriptedGenerator) GenerateContent(_ context.Context, _ string, _ vision.EncodedImage) (string, error) {
	i := g.calls
	g.calls++
	if i < len(g.errs) && g.errs[i] != nil {
		return "", g.errs[i]
	}
	return g.responses[i], nil
}

func ledgerJSON(name string) string {
	return fmt.Sprintf(`{"visit_date": "01/02/2025", "patients": [{"name": %q, "file_number": "1", "gender": "M", "nationality": "", "procedure": "exam", "amount": "10"}]}`, name)
}

func TestBatchRunNoFiles(t *testing.T) {
	b := NewBatch(&scriptedGenerator{}, nil)
	if _, _, err := b.Run(context.Background(), nil, nil); !errors.Is(err, ErrNoFiles) {
		t.Fatalf("want ErrNoFiles, got %v", err)
	}
}

func TestBatchRunIsolatesFileFailures(t *testing.T) {
	gen := &scriptedGenerator{
		responses: []string{ledgerJSON("A"), "", ledgerJSON("C")},
		errs:      []error{nil, errors.New("model unavailable"), nil},
	}
	b := NewBatch(gen, nil)

	files := []UploadedFile{
		{Name: "page1.jpg", MIMEType: "image/jpeg", Data: []byte("1")},
		{Name: "page2.jpg", MIMEType: "image/jpeg", Data: []byte("2")},
		{Name: "page3.jpg", MIMEType: "image/jpeg", Data: []byte("3")},
	}

	records, failures, err := b.Run(context.Background(), files, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	// submission order survives the middle failure
	if records[0].Name != "A" || records[1].Name != "C" {
		t.Errorf("order = [%s, %s], want [A, C]", records[0].Name, records[1].Name)
	}

	if len(failures) != 1 {
		t.Fatalf("failures = %d, want 1", len(failures))
	}
	if failures[0].Index != 1 || failures[0].Name != "page2.jpg" {
		t.Errorf("failure = %+v, want index 1 page2.jpg", failures[0])
	}
}

func TestBatchRunUnparseableResponseIsNotFatal(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{"I see a blurry page."}}
	b := NewBatch(gen, nil)

	records, failures, err := b.Run(context.Background(),
		[]UploadedFile{{Name: "p.jpg", MIMEType: "image/jpeg", Data: []byte("x")}}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(records) != 0 || len(failures) != 1 {
		t.Errorf("records=%d failures=%d, want 0/1", len(records), len(failures))
	}
}

func TestBatchRunReportsProgress(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{ledgerJSON("A"), ledgerJSON("B")}}
	b := NewBatch(gen, nil)

	var seen [][2]int
	progress := func(done, total int) { seen = append(seen, [2]int{done, total}) }

	if _, _, err := b.Run(context.Background(), []UploadedFile{
		{Name: "1.jpg", MIMEType: "image/jpeg", Data: []byte("1")},
		{Name: "2.jpg", MIMEType: "image/jpeg", Data: []byte("2")},
	}, progress); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := [][2]int{{1, 2}, {2, 2}}
	if len(seen) != len(want) {
		t.Fatalf("progress calls = %v", seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("progress[%d] = %v, want %v", i, seen[i], want[i])
		}
	}
}
