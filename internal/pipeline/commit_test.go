package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/common"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
)

type fakeCreator struct {
	created []*entity.PatientRecord
	failOn  int // 1-based call number to fail on; 0 never fails
	calls   int
}

func (f *fakeCreator) Create(_ context.Context, _ uuid.UUID, rec *entity.PatientRecord) (*entity.PatientRecord, error) {
	f.calls++
	if f.failOn != 0 && f.calls == f.failOn {
		return nil, errors.New("connection reset")
	}
	f.created = append(f.created, rec)
	return rec, nil
}

type fakeFinder struct {
	templates map[string]*entity.ProcedureTemplate
}

func (f *fakeFinder) FindByName(_ context.Context, _ uuid.UUID, name string) (*entity.ProcedureTemplate, error) {
	if tpl, ok := f.templates[strings.ToLower(name)]; ok {
		return tpl, nil
	}
	return nil, common.ErrNotFound
}

func staged(name, fileNumber string) entity.StagedPatientRecord {
	return entity.StagedPatientRecord{
		VisitDate:   "18/05/2025",
		Name:        name,
		FileNumber:  fileNumber,
		Gender:      "Female",
		PaymentType: "Cash",
		Procedure:   "filling",
		Amount:      100,
	}
}

func TestCommitSkipsIncompleteRecords(t *testing.T) {
	store := &fakeCreator{}
	c := NewCommit(store, &fakeFinder{}, nil)

	res, err := c.Run(context.Background(), uuid.New(), []entity.StagedPatientRecord{
		staged("Amina", "1001"),
		staged("", "1002"),     // blank name
		staged("Badr", "   "),  // blank file number
		staged("Celine", "1003"),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Created != 2 || res.Skipped != 2 {
		t.Errorf("result = %+v, want 2 created 2 skipped", res)
	}
	if len(store.created) != 2 {
		t.Fatalf("store writes = %d", len(store.created))
	}
	if store.created[0].PatientName != "Amina" || store.created[1].PatientName != "Celine" {
		t.Errorf("persisted = %s, %s", store.created[0].PatientName, store.created[1].PatientName)
	}
}

func TestCommitStoreErrorKeepsEarlierWrites(t *testing.T) {
	store := &fakeCreator{failOn: 2}
	c := NewCommit(store, &fakeFinder{}, nil)

	res, err := c.Run(context.Background(), uuid.New(), []entity.StagedPatientRecord{
		staged("A", "1"),
		staged("B", "2"),
		staged("C", "3"),
	})
	if err == nil {
		t.Fatal("want error on store failure")
	}
	// no rollback: the first write stays
	if len(store.created) != 1 || store.created[0].PatientName != "A" {
		t.Errorf("store writes = %d", len(store.created))
	}
	if res.Created != 1 {
		t.Errorf("partial result = %+v", res)
	}
}

func TestCommitResolvesTemplateMatch(t *testing.T) {
	tplID := uuid.New()
	finder := &fakeFinder{templates: map[string]*entity.ProcedureTemplate{
		"filling": {ID: tplID, Name: "Filling", CashPrice: 200},
	}}
	store := &fakeCreator{}
	c := NewCommit(store, finder, nil)

	if _, err := c.Run(context.Background(), uuid.New(),
		[]entity.StagedPatientRecord{staged("A", "1")}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	rec := store.created[0]
	if len(rec.Procedures) != 1 {
		t.Fatalf("procedures = %d, want 1", len(rec.Procedures))
	}
	item := rec.Procedures[0]
	if item.TemplateID == nil || *item.TemplateID != tplID {
		t.Error("expected the line to reference the matched template")
	}
	// the OCR row amount wins over template pricing
	if item.FinalAmount != 100 || rec.TotalAmount != 100 {
		t.Errorf("amount = %v / %v, want the row amount 100", item.FinalAmount, rec.TotalAmount)
	}
}

func TestCommitFreeTextProcedure(t *testing.T) {
	store := &fakeCreator{}
	c := NewCommit(store, &fakeFinder{}, nil)

	s := staged("A", "1")
	s.Procedure = "root canal treatment"
	if _, err := c.Run(context.Background(), uuid.New(), []entity.StagedPatientRecord{s}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	item := store.created[0].Procedures[0]
	if item.TemplateID != nil {
		t.Error("free text line must not carry a template id")
	}
	if item.Name != "Root Canal Treatment" {
		t.Errorf("name = %q, want title-cased", item.Name)
	}
}

func TestCommitBlankProcedureStaysBlank(t *testing.T) {
	finder := &fakeFinder{templates: map[string]*entity.ProcedureTemplate{
		"filling": {ID: uuid.New(), Name: "Filling", CashPrice: 200},
	}}
	store := &fakeCreator{}
	c := NewCommit(store, finder, nil)

	s := staged("A", "1")
	s.Procedure = ""
	if _, err := c.Run(context.Background(), uuid.New(), []entity.StagedPatientRecord{s}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	item := store.created[0].Procedures[0]
	// an unreadable cell must not be replaced with an invented name
	if item.Name != "" {
		t.Errorf("name = %q, want blank preserved", item.Name)
	}
	if item.TemplateID != nil {
		t.Error("blank name must not match any template")
	}
	if item.FinalAmount != 100 {
		t.Errorf("amount = %v, want the row amount kept", item.FinalAmount)
	}
}

func TestCommitMarksSourceOCR(t *testing.T) {
	store := &fakeCreator{}
	c := NewCommit(store, &fakeFinder{}, nil)

	if _, err := c.Run(context.Background(), uuid.New(),
		[]entity.StagedPatientRecord{staged("A", "1")}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if store.created[0].Source != "OCR" {
		t.Errorf("source = %q, want OCR", store.created[0].Source)
	}
}
