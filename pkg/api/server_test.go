// pkg/api/server_test.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ozcomp/compintake/internal/extract"
	"github.com/ozcomp/compintake/internal/fetch"
)

type fakeImporter struct {
	record *extract.Competition
	err    error
	gotURL string
}

func (f *fakeImporter) Import(ctx context.Context, url string) (*extract.Competition, error) {
	f.gotURL = url
	return f.record, f.err
}

type fakePersister struct {
	records []extract.Competition
	err     error
}

func (f *fakePersister) Write(records []extract.Competition) error {
	f.records = append(f.records, records...)
	return f.err
}

func draftRecord() *extract.Competition {
	return &extract.Competition{
		Title:              "Summer Design Contest",
		StartDate:          "2024-06-01T09:00",
		EndDate:            "2024-07-01T17:00",
		SubmissionDeadline: "2024-07-01T17:00",
		Category:           extract.CategoryOpenFree,
		TypeOfGame:         extract.GameOfSkill,
		Status:             extract.StatusDraft,
		BannerURL:          "https://compsite.example/comp/1",
		EntryCriteria:      []string{},
		Issues:             []string{extract.ReviewNotice},
	}
}

func newTestServer(imp Importer, per Persister) *Server {
	return NewServer(ServerOptions{
		Importer:  imp,
		Persister: per,
		Version:   "test",
		Format:    "json",
	})
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleImportSuccess(t *testing.T) {
	imp := &fakeImporter{record: draftRecord()}
	server := newTestServer(imp, &fakePersister{})

	rec := postJSON(t, server.Handler(), "/api/v1/import", `{"url":"https://compsite.example/comp/1"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if imp.gotURL != "https://compsite.example/comp/1" {
		t.Errorf("importer called with %q", imp.gotURL)
	}

	var resp ImportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp.Record == nil || resp.Record.Title != "Summer Design Contest" {
		t.Errorf("response record = %+v", resp.Record)
	}
}

func TestHandleImportBadRequests(t *testing.T) {
	server := newTestServer(&fakeImporter{record: draftRecord()}, &fakePersister{})

	tests := []struct {
		name string
		body string
	}{
		{"not json", `{{{`},
		{"missing url", `{}`},
		{"relative url", `{"url":"/comp/1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, server.Handler(), "/api/v1/import", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestHandleImportUpstreamStatus(t *testing.T) {
	imp := &fakeImporter{err: &fetch.Error{
		URL:        "https://compsite.example/gone",
		StatusCode: http.StatusNotFound,
		Message:    "unexpected status 404 Not Found",
	}}
	server := newTestServer(imp, &fakePersister{})

	rec := postJSON(t, server.Handler(), "/api/v1/import", `{"url":"https://compsite.example/gone"}`)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("upstream_status = %d, want 404", resp.StatusCode)
	}
}

func TestHandleImportTransportFailure(t *testing.T) {
	imp := &fakeImporter{err: &fetch.Error{
		URL:     "https://compsite.example/down",
		Message: "request failed",
		Cause:   errors.New("connection refused"),
	}}
	server := newTestServer(imp, &fakePersister{})

	rec := postJSON(t, server.Handler(), "/api/v1/import", `{"url":"https://compsite.example/down"}`)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestHandleImportInternalFailure(t *testing.T) {
	imp := &fakeImporter{err: errors.New("something broke")}
	server := newTestServer(imp, &fakePersister{})

	rec := postJSON(t, server.Handler(), "/api/v1/import", `{"url":"https://compsite.example/x"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestHandleCreateSuccess(t *testing.T) {
	per := &fakePersister{}
	server := newTestServer(&fakeImporter{}, per)

	body, _ := json.Marshal(CreateRequest{Record: *draftRecord()})
	rec := postJSON(t, server.Handler(), "/api/v1/competitions", string(body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(per.records) != 1 {
		t.Fatalf("persisted %d records, want 1", len(per.records))
	}

	var resp CreateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if !resp.Persisted || resp.Format != "json" {
		t.Errorf("response = %+v", resp)
	}
}

func TestHandleCreateValidation(t *testing.T) {
	server := newTestServer(&fakeImporter{}, &fakePersister{})

	mutate := func(fn func(*extract.Competition)) string {
		record := draftRecord()
		fn(record)
		body, _ := json.Marshal(CreateRequest{Record: *record})
		return string(body)
	}

	tests := []struct {
		name string
		body string
	}{
		{"missing title", mutate(func(c *extract.Competition) { c.Title = " " })},
		{"missing dates", mutate(func(c *extract.Competition) { c.StartDate = "" })},
		{"bad category", mutate(func(c *extract.Competition) { c.Category = "Mystery" })},
		{"bad game type", mutate(func(c *extract.Competition) { c.TypeOfGame = "Game of Guessing" })},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, server.Handler(), "/api/v1/competitions", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestHandleCreateDefaultsStatus(t *testing.T) {
	per := &fakePersister{}
	server := newTestServer(&fakeImporter{}, per)

	record := draftRecord()
	record.Status = ""
	body, _ := json.Marshal(CreateRequest{Record: *record})

	rec := postJSON(t, server.Handler(), "/api/v1/competitions", string(body))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if per.records[0].Status != extract.StatusDraft {
		t.Errorf("persisted status = %q, want draft default", per.records[0].Status)
	}
}

func TestHandleCreatePersistFailure(t *testing.T) {
	server := newTestServer(&fakeImporter{}, &fakePersister{err: errors.New("disk full")})

	body, _ := json.Marshal(CreateRequest{Record: *draftRecord()})
	rec := postJSON(t, server.Handler(), "/api/v1/competitions", string(body))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(&fakeImporter{}, &fakePersister{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status"`) {
		t.Errorf("health body = %s", rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	server := newTestServer(&fakeImporter{record: draftRecord()}, &fakePersister{})

	// Drive one import so counters exist before scraping.
	postJSON(t, server.Handler(), "/api/v1/import", `{"url":"https://compsite.example/comp/1"}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "compintake_imports_total") {
		t.Errorf("metrics output missing import counter")
	}
}
