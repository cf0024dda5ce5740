package preview

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandler_Preview(t *testing.T) {
	svc, _, _ := newTestService(t, map[string][]byte{"doc": sampleWorkbook(t)})
	server := httptest.NewServer(NewHandler(svc, nil))
	defer server.Close()

	get := func() (*http.Response, map[string]any) {
		t.Helper()
		resp, err := http.Get(server.URL + "/documents/doc/preview?maxRows=2&maxCols=2")
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		defer resp.Body.Close()
		var body map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		return resp, body
	}

	resp, body := get()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, expected 200: %v", resp.StatusCode, body)
	}
	if got := resp.Header.Get("X-Cache"); got != "MISS" {
		t.Errorf("X-Cache = %q, expected MISS", got)
	}
	if got := resp.Header.Get("Cache-Control"); got != PreviewCacheControl {
		t.Errorf("Cache-Control = %q", got)
	}
	if body["cache"] != "MISS" {
		t.Errorf("cache = %v, expected MISS", body["cache"])
	}
	if body["cellCount"] != float64(4) {
		t.Errorf("cellCount = %v, expected 4", body["cellCount"])
	}
	html, _ := body["html"].(string)
	if !strings.Contains(html, "<table") {
		t.Errorf("html = %q", html)
	}
	md, _ := body["metadata"].(map[string]any)
	if md["totalSheets"] != float64(2) {
		t.Errorf("metadata = %v", md)
	}

	resp, body = get()
	if got := resp.Header.Get("X-Cache"); got != "HIT" {
		t.Errorf("X-Cache = %q, expected HIT", got)
	}
	if body["cache"] != "HIT" {
		t.Errorf("cache = %v, expected HIT", body["cache"])
	}
}

func TestHandler_Errors(t *testing.T) {
	svc, _, _ := newTestService(t, map[string][]byte{"doc": sampleWorkbook(t)})
	h := NewHandler(svc, nil)

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"missing document", "/documents/nope/preview", http.StatusNotFound},
		{"missing sheet", "/documents/doc/preview?sheet=Nope", http.StatusNotFound},
		{"bad maxRows", "/documents/doc/preview?maxRows=ten", http.StatusBadRequest},
		{"negative maxCols", "/documents/doc/preview?maxCols=-1", http.StatusBadRequest},
		{"unknown route", "/documents/doc", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			if rec.Code != tt.status {
				t.Errorf("status = %d, expected %d (%s)", rec.Code, tt.status, rec.Body.String())
			}
			if rec.Header().Get("X-Cache") != "" {
				t.Error("X-Cache set on error response")
			}
		})
	}
}

func TestHandler_Health(t *testing.T) {
	svc, _, _ := newTestService(t, map[string][]byte{"doc": sampleWorkbook(t)})
	h := NewHandler(svc, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/documents/doc/preview", nil))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	var body struct {
		Status string `json:"status"`
		Cache  struct {
			Entries int `json:"entries"`
			Misses  int `json:"misses"`
		} `json:"cache"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Status != "ok" || body.Cache.Entries != 1 || body.Cache.Misses != 1 {
		t.Errorf("health = %+v", body)
	}
}
