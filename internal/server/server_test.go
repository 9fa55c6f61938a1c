package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sambulosenda/news-sub001/internal/domain"
	"github.com/sambulosenda/news-sub001/internal/engine"
)

func newTestRouter() http.Handler {
	srv := New(Deps{Engine: engine.New(engine.Options{})})
	return srv.Router()
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	newTestRouter().ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
}

func TestClassifyEndpoint(t *testing.T) {
	t.Parallel()

	body := `{"title":"Harare court ruling","content":"The Harare High Court ruled.","category":"Politics","tags":["zimbabwe"]}`
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/v1/classify", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	newTestRouter().ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var tag domain.LocationTag
	if err := json.Unmarshal(recorder.Body.Bytes(), &tag); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if tag.Country != domain.Zimbabwe || tag.City != "Harare" {
		t.Fatalf("unexpected classification: %+v", tag)
	}
}

func TestRelatedEndpoint(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)
	payload := map[string]any{
		"target": domain.Article{
			ID: "t", Title: "Eskom loadshedding update", Date: date,
			Categories: []string{"news", "energy"},
		},
		"candidates": []domain.Article{
			{ID: "a", Title: "Loadshedding schedule change", Date: date, Categories: []string{"news", "energy"}},
			{ID: "t", Title: "Eskom loadshedding update", Date: date, Categories: []string{"news", "energy"}},
		},
		"limit": 5,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/v1/related", strings.NewReader(string(raw)))
	request.Header.Set("Content-Type", "application/json")
	newTestRouter().ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response struct {
		Results []domain.RelevanceScore `json:"results"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(response.Results) != 1 || response.Results[0].ArticleID != "a" {
		t.Fatalf("unexpected results: %+v", response.Results)
	}
}

func TestPlacementsEndpoint(t *testing.T) {
	t.Parallel()

	paragraphs := strings.Repeat("<p>"+strings.TrimSpace(strings.Repeat("word ", 200))+"</p>", 6)
	payload := map[string]any{
		"content": paragraphs,
		"config": map[string]any{
			"minParagraphsBeforeFirst":  2,
			"minWordsBetweenPlacements": 300,
			"maxPlacements":             2,
		},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/v1/placements", strings.NewReader(string(raw)))
	request.Header.Set("Content-Type", "application/json")
	newTestRouter().ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response struct {
		Placements []domain.AdPlacement `json:"placements"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(response.Placements) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(response.Placements))
	}
}

func TestRelatedForArticleWithoutStore(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/articles/abc/related", nil)
	newTestRouter().ServeHTTP(recorder, request)

	if recorder.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without a store, got %d", recorder.Code)
	}
}

func TestClassifyRejectsInvalidBody(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/v1/classify", strings.NewReader("{"))
	request.Header.Set("Content-Type", "application/json")
	newTestRouter().ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", recorder.Code)
	}
}
