package service

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"workacare/internal/model"
)

func parseExport(t *testing.T, out string) [][]string {
	t.Helper()
	r := csv.NewReader(strings.NewReader(out))
	r.Comma = ';'
	recs, err := r.ReadAll()
	if err != nil {
		t.Fatalf("parse export: %v", err)
	}
	return recs
}

func TestBuildCSVQuoting(t *testing.T) {
	out := BuildCSV([]string{"a", "b"}, [][]string{
		{"plain", `with "quotes"`},
		{"semi;colon", "line\nbreak"},
	})
	lines := strings.Split(out, "\n")
	if lines[0] != "a;b" {
		t.Fatalf("header: %q", lines[0])
	}
	if lines[1] != `plain;"with ""quotes"""` {
		t.Fatalf("quoted row: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], `"semi;colon";"line`) {
		t.Fatalf("separator row: %q", lines[2])
	}
}

func TestBuildCSVRoundTrip(t *testing.T) {
	rows := [][]string{
		{"r1", `contém "aspas" internas`, "10"},
		{"r2", "texto; com separador", "20"},
		{"r3", "simples", "30"},
	}
	recs := parseExport(t, BuildCSV([]string{"id", "texto", "valor"}, rows))
	if len(recs) != 1+len(rows) {
		t.Fatalf("want %d records, got %d", 1+len(rows), len(recs))
	}
	if recs[1][1] != `contém "aspas" internas` {
		t.Fatalf("quote recovery: %q", recs[1][1])
	}
	if recs[2][1] != "texto; com separador" {
		t.Fatalf("separator recovery: %q", recs[2][1])
	}
}

func TestFlattenAnswer(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"texto", "texto"},
		{"com\nquebra", "com quebra"},
		{float64(4), "4"},
		{float64(3.5), "3.5"},
		{[]any{"a", "b"}, "a, b"},
		{[]string{"x", "y", "z"}, "x, y, z"},
	}
	for _, c := range cases {
		if got := flattenAnswer(c.in); got != c.want {
			t.Fatalf("flattenAnswer(%v)=%q, want %q", c.in, got, c.want)
		}
	}
}

func TestExportResponsesCSVRows(t *testing.T) {
	created := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	r := resp("G-checkin", 80, "TI", created)
	r.ID = "resp-1"
	r.Participant.Name = "Maria"
	r.Answers = model.AnswerMap{"g1": float64(4), "g2": "tudo bem"}

	out := ExportResponsesCSV([]model.SurveyResponse{r})
	lines := strings.Split(out, "\n")
	// one header plus one row per answered question
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "ID Resposta;Data;Nome") {
		t.Fatalf("header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "15/03/2026") || !strings.Contains(lines[1], "Maria") {
		t.Fatalf("row: %q", lines[1])
	}
	if !strings.Contains(lines[1], ";g1;") {
		t.Fatalf("question order should start at g1: %q", lines[1])
	}
}

func TestExportResponsesCSVAnonymous(t *testing.T) {
	r := resp("G-checkin", 50, "TI", time.Now())
	r.Participant.Name = "Maria"
	r.Participant.Anonymous = true
	r.Answers = model.AnswerMap{"g1": float64(3)}

	out := ExportResponsesCSV([]model.SurveyResponse{r})
	if strings.Contains(out, "Maria") {
		t.Fatalf("anonymous export leaked the name:\n%s", out)
	}
	if !strings.Contains(out, "Anônimo") {
		t.Fatalf("anonymous placeholder missing:\n%s", out)
	}
}

func TestExportReportCSV(t *testing.T) {
	out := ExportReportCSV([]model.ReportRow{
		{Item: "TI", Metric: "Bem-Estar Geral", Value: 70, Count: 2},
	})
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d", len(lines))
	}
	if lines[1] != "TI;Bem-Estar Geral;70;2" {
		t.Fatalf("row: %q", lines[1])
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, time.July, 2, 0, 0, 0, 0, time.UTC)
	if got := ExportFilename("respostas", now); got != "workacare_respostas_2026-07-02.csv" {
		t.Fatalf("filename: %q", got)
	}
}
