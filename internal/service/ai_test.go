package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"workacare/internal/config"
)

func aiForTest(url string) *AIService {
	return NewAIService(config.AIConfig{BaseURL: url, APIKey: "test-key", Model: "test-model"})
}

func TestAnalyzeDemoModeWithoutKey(t *testing.T) {
	svc := NewAIService(config.AIConfig{BaseURL: "http://invalid", Model: "m"})
	report := svc.Analyze(context.Background(), nil, nil, nil)
	if report.Summary == "" || len(report.Recommendations) == 0 {
		t.Fatalf("demo mode must return the static report: %+v", report)
	}
	if report.RiskLevel != "medium" {
		t.Fatalf("fallback risk level: %s", report.RiskLevel)
	}
}

func TestAnalyzeParsesModelReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth header: %q", got)
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"` +
			`{\"summary\":\"Tudo bem\",\"recommendations\":[\"Pausas\"],\"riskLevel\":\"low\"}"}}]}`))
	}))
	defer srv.Close()

	report := aiForTest(srv.URL).Analyze(context.Background(), nil, nil, nil)
	if report.Summary != "Tudo bem" || report.RiskLevel != "low" {
		t.Fatalf("parsed report: %+v", report)
	}
}

func TestAnalyzeStripsMarkdownFences(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":` +
			`"` + "```json\\n" + `{\"summary\":\"ok\",\"recommendations\":[],\"riskLevel\":\"high\"}` + "\\n```" + `"}}]}`))
	}))
	defer srv.Close()

	report := aiForTest(srv.URL).Analyze(context.Background(), nil, nil, nil)
	if report.Summary != "ok" || report.RiskLevel != "high" {
		t.Fatalf("fenced report: %+v", report)
	}
}

func TestAnalyzeFallsBackOnGarbage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"isto não é JSON"}}]}`))
	}))
	defer srv.Close()

	report := aiForTest(srv.URL).Analyze(context.Background(), nil, nil, nil)
	if report.Summary == "" || report.RiskLevel != "medium" {
		t.Fatalf("garbage reply must degrade to the static report: %+v", report)
	}
}

func TestAnalyzeFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	report := aiForTest(srv.URL).Analyze(context.Background(), nil, nil, nil)
	if report.Summary == "" {
		t.Fatalf("5xx must degrade to the static report")
	}
}

func TestStripFences(t *testing.T) {
	cases := []struct{ in, want string }{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, c := range cases {
		if got := stripFences(c.in); got != c.want {
			t.Fatalf("stripFences(%q)=%q, want %q", c.in, got, c.want)
		}
	}
}
