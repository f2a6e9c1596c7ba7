package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/common"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/export"
)

// memPatientRepo is an in-memory repository.PatientRepository.
type memPatientRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*entity.PatientRecord
}

func newMemPatientRepo() *memPatientRepo {
	return &memPatientRepo{records: make(map[uuid.UUID]*entity.PatientRecord)}
}

func (m *memPatientRepo) Create(_ context.Context, profileID uuid.UUID, rec *entity.PatientRecord) (*entity.PatientRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *rec
	cp.ID = uuid.New()
	cp.ProfileID = profileID
	cp.CreatedAt = time.Now()
	m.records[cp.ID] = &cp
	return &cp, nil
}

func (m *memPatientRepo) GetByID(_ context.Context, profileID, id uuid.UUID) (*entity.PatientRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok || rec.ProfileID != profileID {
		return nil, common.ErrNotFound
	}
	return rec, nil
}

func (m *memPatientRepo) List(_ context.Context, profileID uuid.UUID, from, to *time.Time) ([]*entity.PatientRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.PatientRecord
	for _, rec := range m.records {
		if rec.ProfileID != profileID {
			continue
		}
		if from != nil && rec.VisitDate.Before(*from) {
			continue
		}
		if to != nil && rec.VisitDate.After(*to) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (m *memPatientRepo) Update(_ context.Context, profileID uuid.UUID, rec *entity.PatientRecord) (*entity.PatientRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.records[rec.ID]
	if !ok || old.ProfileID != profileID {
		return nil, common.ErrNotFound
	}
	cp := *rec
	cp.ProfileID = profileID
	m.records[cp.ID] = &cp
	return &cp, nil
}

func (m *memPatientRepo) Delete(_ context.Context, profileID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok || rec.ProfileID != profileID {
		return common.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

// memTemplateRepo is an in-memory repository.TemplateRepository.
type memTemplateRepo struct {
	mu        sync.Mutex
	templates map[uuid.UUID]*entity.ProcedureTemplate
}

func newMemTemplateRepo() *memTemplateRepo {
	return &memTemplateRepo{templates: make(map[uuid.UUID]*entity.ProcedureTemplate)}
}

func (m *memTemplateRepo) Create(_ context.Context, profileID uuid.UUID, tpl *entity.ProcedureTemplate) (*entity.ProcedureTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *tpl
	cp.ID = uuid.New()
	cp.ProfileID = profileID
	m.templates[cp.ID] = &cp
	return &cp, nil
}

func (m *memTemplateRepo) List(_ context.Context, profileID uuid.UUID) ([]*entity.ProcedureTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.ProcedureTemplate
	for _, tpl := range m.templates {
		if tpl.ProfileID == profileID {
			out = append(out, tpl)
		}
	}
	return out, nil
}

func (m *memTemplateRepo) FindByName(_ context.Context, profileID uuid.UUID, name string) (*entity.ProcedureTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, tpl := range m.templates {
		if tpl.ProfileID == profileID && strings.EqualFold(tpl.Name, name) {
			return tpl, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memTemplateRepo) Update(_ context.Context, profileID uuid.UUID, tpl *entity.ProcedureTemplate) (*entity.ProcedureTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.templates[tpl.ID]
	if !ok || old.ProfileID != profileID {
		return nil, common.ErrNotFound
	}
	cp := *tpl
	cp.ProfileID = profileID
	m.templates[cp.ID] = &cp
	return &cp, nil
}

func (m *memTemplateRepo) Delete(_ context.Context, profileID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	tpl, ok := m.templates[id]
	if !ok || tpl.ProfileID != profileID {
		return common.ErrNotFound
	}
	delete(m.templates, id)
	return nil
}

func newCRUDServer(t *testing.T) (*echo.Echo, *memPatientRepo) {
	t.Helper()
	cfg := &common.Config{}
	cfg.Vision.APIKey = "key"
	patients := newMemPatientRepo()
	templates := newMemTemplateRepo()
	svc := NewService(cfg, &stubGenerator{}, patients, templates, nil,
		export.NewService(patients, nil), nil)
	e := echo.New()
	svc.RegisterRoutes(e)
	return e, patients
}

func doJSON(t *testing.T, e *echo.Echo, method, target, profileID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if profileID != "" {
		req.Header.Set("X-Profile-ID", profileID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRecordCRUD(t *testing.T) {
	e, _ := newCRUDServer(t)
	profileID := uuid.NewString()

	create := map[string]any{
		"visitDate":   "2025-05-18",
		"patientName": "Amina",
		"fileNumber":  "1001",
		"type":        "Cash",
		"procedures": []map[string]any{
			{"name": "Filling", "price": 200, "discount": 0, "finalAmount": 200},
		},
	}
	rec := doJSON(t, e, http.MethodPost, "/api/records", profileID, create)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created entity.PatientRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.Source != "MANUAL" {
		t.Errorf("source = %q, want MANUAL", created.Source)
	}
	if created.TotalAmount != 200 {
		t.Errorf("total = %v, want summed from procedures", created.TotalAmount)
	}

	rec = doJSON(t, e, http.MethodGet, "/api/records/"+created.ID.String(), profileID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodGet, "/api/records", profileID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var list struct {
		Records []entity.PatientRecord `json:"records"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list.Records) != 1 {
		t.Fatalf("list = %d records", len(list.Records))
	}

	// another profile must not see the record
	rec = doJSON(t, e, http.MethodGet, "/api/records/"+created.ID.String(), uuid.NewString(), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("cross-profile get status = %d, want 404", rec.Code)
	}

	rec = doJSON(t, e, http.MethodDelete, "/api/records/"+created.ID.String(), profileID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec = doJSON(t, e, http.MethodDelete, "/api/records/"+created.ID.String(), profileID, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}

func TestCreateRecordValidation(t *testing.T) {
	e, _ := newCRUDServer(t)
	profileID := uuid.NewString()

	rec := doJSON(t, e, http.MethodPost, "/api/records", profileID, map[string]any{
		"visitDate":  "2025-05-18",
		"fileNumber": "1001",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for missing patientName", rec.Code)
	}

	rec = doJSON(t, e, http.MethodPost, "/api/records", profileID, map[string]any{
		"visitDate":   "sometime",
		"patientName": "A",
		"fileNumber":  "1",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for bad date", rec.Code)
	}
}

func TestCommitRecordsEndpoint(t *testing.T) {
	e, patients := newCRUDServer(t)
	profileID := uuid.NewString()

	body := map[string]any{
		"records": []map[string]any{
			{"visitDate": "18/05/2025", "name": "Amina", "file_number": "1001", "paymentType": "Cash", "procedure": "filling", "amount": 150},
			{"visitDate": "18/05/2025", "name": "", "file_number": "1002", "paymentType": "Cash", "amount": 50},
		},
	}
	rec := doJSON(t, e, http.MethodPost, "/api/records/commit", profileID, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res struct {
		Created int `json:"created"`
		Skipped int `json:"skipped"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Created != 1 || res.Skipped != 1 {
		t.Errorf("result = %+v, want 1 created 1 skipped", res)
	}
	if len(patients.records) != 1 {
		t.Errorf("store writes = %d", len(patients.records))
	}
}

func TestTemplateCRUD(t *testing.T) {
	e, _ := newCRUDServer(t)
	profileID := uuid.NewString()

	rec := doJSON(t, e, http.MethodPost, "/api/templates", profileID, map[string]any{
		"name":      "Filling",
		"cashPrice": 200,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created entity.ProcedureTemplate
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}

	rec = doJSON(t, e, http.MethodPost, "/api/templates", profileID, map[string]any{
		"name":      "Scaling",
		"cashPrice": -1,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("negative price status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, e, http.MethodGet, "/api/templates", profileID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodDelete, "/api/templates/"+created.ID.String(), profileID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
}

func TestExportRecordsXLSX(t *testing.T) {
	e, _ := newCRUDServer(t)
	profileID := uuid.NewString()

	create := map[string]any{
		"visitDate":   "2025-05-18",
		"patientName": "Amina",
		"fileNumber":  "1001",
		"type":        "Cash",
		"totalAmount": 150,
	}
	if rec := doJSON(t, e, http.MethodPost, "/api/records", profileID, create); rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/records/export", nil)
	req.Header.Set("X-Profile-ID", profileID)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("export status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("content type = %q", ct)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty workbook body")
	}
}
