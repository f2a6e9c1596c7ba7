package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/common"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/vision"
)

type stubGenerator struct {
	response string
	err      error
}

func (g *stubGenerator) GenerateContent(context.Context, string, vision.EncodedImage) (string, error) {
	return g.response, g.err
}

func newTestServer(t *testing.T, gen vision.ContentGenerator, apiKey string) *echo.Echo {
	t.Helper()
	cfg := &common.Config{}
	cfg.Vision.APIKey = apiKey

	svc := NewService(cfg, gen, nil, nil, nil, nil, nil)
	e := echo.New()
	svc.RegisterRoutes(e)
	return e
}

func multipartBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, data := range files {
		fw, err := w.CreateFormFile("files", name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write(data); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not an error object: %s", rec.Body.String())
	}
	return body["error"]
}

func TestAnalyzeRequiresProfileHeader(t *testing.T) {
	e := newTestServer(t, &stubGenerator{}, "key")
	body, ctype := multipartBody(t, map[string][]byte{"p.jpg": []byte("x")})

	req := httptest.NewRequest(http.MethodPost, "/api/ocr/analyze", body)
	req.Header.Set(echo.HeaderContentType, ctype)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if msg := errorBody(t, rec); !strings.Contains(msg, "X-Profile-ID") {
		t.Errorf("error = %q", msg)
	}
}

func TestAnalyzeMissingAPIKey(t *testing.T) {
	e := newTestServer(t, &stubGenerator{}, "")
	body, ctype := multipartBody(t, map[string][]byte{"p.jpg": []byte("x")})

	req := httptest.NewRequest(http.MethodPost, "/api/ocr/analyze", body)
	req.Header.Set(echo.HeaderContentType, ctype)
	req.Header.Set("X-Profile-ID", uuid.NewString())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if msg := errorBody(t, rec); msg == "" {
		t.Error("expected an error message body")
	}
}

func TestAnalyzeNoFiles(t *testing.T) {
	e := newTestServer(t, &stubGenerator{}, "key")
	body, ctype := multipartBody(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/ocr/analyze", body)
	req.Header.Set(echo.HeaderContentType, ctype)
	req.Header.Set("X-Profile-ID", uuid.NewString())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if msg := errorBody(t, rec); msg != "No files provided" {
		t.Errorf("error = %q, want No files provided", msg)
	}
}

func orderedMultipartBody(t *testing.T, names []string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, name := range names {
		fw, err := w.CreateFormFile("files", name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte("data")); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}

func TestAnalyzeUnsupportedFileIsPerFileFailure(t *testing.T) {
	gen := &stubGenerator{
		response: `{"visit_date": "18/5/25", "patients": [{"name": "A", "file_number": "1", "gender": "M", "nationality": "", "procedure": "exam", "amount": "50"}]}`,
	}
	e := newTestServer(t, gen, "key")

	// a bad part in the middle must not block the good pages around it
	body, ctype := orderedMultipartBody(t, []string{"page1.jpg", "notes.txt", "page2.jpg"})
	req := httptest.NewRequest(http.MethodPost, "/api/ocr/analyze", body)
	req.Header.Set(echo.HeaderContentType, ctype)
	req.Header.Set("X-Profile-ID", uuid.NewString())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s, want 200", rec.Code, rec.Body.String())
	}

	var resp struct {
		Records  []map[string]any `json:"records"`
		Failures []struct {
			Index int    `json:"index"`
			Name  string `json:"name"`
		} `json:"failures"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Records) != 2 {
		t.Fatalf("records = %d, want 2 from the supported pages", len(resp.Records))
	}
	if len(resp.Failures) != 1 {
		t.Fatalf("failures = %v, want 1", resp.Failures)
	}
	if resp.Failures[0].Name != "notes.txt" || resp.Failures[0].Index != 1 {
		t.Errorf("failure = %+v, want notes.txt at submission index 1", resp.Failures[0])
	}
}

func TestAnalyzeAllFilesUnsupported(t *testing.T) {
	e := newTestServer(t, &stubGenerator{}, "key")

	body, ctype := orderedMultipartBody(t, []string{"notes.txt"})
	req := httptest.NewRequest(http.MethodPost, "/api/ocr/analyze", body)
	req.Header.Set(echo.HeaderContentType, ctype)
	req.Header.Set("X-Profile-ID", uuid.NewString())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// file parts were provided, so this is an empty result, not a 400
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Records  []map[string]any `json:"records"`
		Failures []map[string]any `json:"failures"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Records) != 0 || len(resp.Failures) != 1 {
		t.Errorf("records=%d failures=%d, want 0/1", len(resp.Records), len(resp.Failures))
	}
}

func TestAnalyzeStagesRecordsForReview(t *testing.T) {
	gen := &stubGenerator{
		response: `{"visit_date": "18/5/25", "patients": [{"name": "Amina", "file_number": "1001", "gender": "F", "nationality": "", "procedure": "filling", "amount": "150"}]}`,
	}
	e := newTestServer(t, gen, "key")
	profileID := uuid.NewString()

	body, ctype := multipartBody(t, map[string][]byte{"page1.jpg": []byte("img")})
	req := httptest.NewRequest(http.MethodPost, "/api/ocr/analyze", body)
	req.Header.Set(echo.HeaderContentType, ctype)
	req.Header.Set("X-Profile-ID", profileID)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Records []map[string]any `json:"records"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Records) != 1 {
		t.Fatalf("records = %d, want 1", len(resp.Records))
	}
	if resp.Records[0]["name"] != "Amina" {
		t.Errorf("name = %v", resp.Records[0]["name"])
	}
	if resp.Records[0]["visitDate"] != "18/05/2025" {
		t.Errorf("visitDate = %v, want normalized 18/05/2025", resp.Records[0]["visitDate"])
	}
	if resp.Records[0]["gender"] != "Female" {
		t.Errorf("gender = %v, want canonical Female", resp.Records[0]["gender"])
	}

	// the batch is now staged for review
	sreq := httptest.NewRequest(http.MethodGet, "/api/ocr/session", nil)
	sreq.Header.Set("X-Profile-ID", profileID)
	srec := httptest.NewRecorder()
	e.ServeHTTP(srec, sreq)

	var snap struct {
		Phase   string           `json:"phase"`
		Records []map[string]any `json:"records"`
	}
	if err := json.Unmarshal(srec.Body.Bytes(), &snap); err != nil {
		t.Fatal(err)
	}
	if snap.Phase != "Reviewing" || len(snap.Records) != 1 {
		t.Errorf("session = %s with %d records, want Reviewing/1", snap.Phase, len(snap.Records))
	}
}

func TestAnalyzeModelFailureReportsFileNotBatch(t *testing.T) {
	gen := &stubGenerator{err: fmt.Errorf("model unavailable")}
	e := newTestServer(t, gen, "key")

	body, ctype := multipartBody(t, map[string][]byte{"page1.jpg": []byte("img")})
	req := httptest.NewRequest(http.MethodPost, "/api/ocr/analyze", body)
	req.Header.Set(echo.HeaderContentType, ctype)
	req.Header.Set("X-Profile-ID", uuid.NewString())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with per-file failure", rec.Code)
	}
	var resp struct {
		Records  []map[string]any `json:"records"`
		Failures []map[string]any `json:"failures"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Records) != 0 || len(resp.Failures) != 1 {
		t.Errorf("records=%d failures=%d, want 0/1", len(resp.Records), len(resp.Failures))
	}
}

func TestSessionCommitWithoutBatch(t *testing.T) {
	e := newTestServer(t, &stubGenerator{}, "key")
	req := httptest.NewRequest(http.MethodPost, "/api/ocr/session/commit", nil)
	req.Header.Set("X-Profile-ID", uuid.NewString())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409 when nothing is under review", rec.Code)
	}
}

func TestSessionEditAndDelete(t *testing.T) {
	gen := &stubGenerator{
		response: `{"visit_date": "18/5/25", "patients": [{"name": "A", "file_number": "1", "gender": "M", "nationality": "", "procedure": "exam", "amount": "10"}, {"name": "B", "file_number": "2", "gender": "M", "nationality": "", "procedure": "exam", "amount": "20"}]}`,
	}
	e := newTestServer(t, gen, "key")
	profileID := uuid.NewString()

	body, ctype := multipartBody(t, map[string][]byte{"p.jpg": []byte("x")})
	req := httptest.NewRequest(http.MethodPost, "/api/ocr/analyze", body)
	req.Header.Set(echo.HeaderContentType, ctype)
	req.Header.Set("X-Profile-ID", profileID)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("analyze status = %d", rec.Code)
	}

	edit := `{"visitDate":"18/05/2025","name":"A","file_number":"1","paymentType":"Cash","procedure":"exam","amount":99}`
	ereq := httptest.NewRequest(http.MethodPut, "/api/ocr/session/record", strings.NewReader(edit))
	ereq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	ereq.Header.Set("X-Profile-ID", profileID)
	erec := httptest.NewRecorder()
	e.ServeHTTP(erec, ereq)
	if erec.Code != http.StatusOK {
		t.Fatalf("edit status = %d, body = %s", erec.Code, erec.Body.String())
	}

	dreq := httptest.NewRequest(http.MethodDelete, "/api/ocr/session/record", nil)
	dreq.Header.Set("X-Profile-ID", profileID)
	drec := httptest.NewRecorder()
	e.ServeHTTP(drec, dreq)
	if drec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", drec.Code)
	}

	var snap struct {
		Records []map[string]any `json:"records"`
	}
	if err := json.Unmarshal(drec.Body.Bytes(), &snap); err != nil {
		t.Fatal(err)
	}
	if len(snap.Records) != 1 || snap.Records[0]["name"] != "B" {
		t.Errorf("records after delete = %v", snap.Records)
	}
}

func TestHealthz(t *testing.T) {
	e := newTestServer(t, &stubGenerator{}, "key")
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
