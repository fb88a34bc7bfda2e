package service

import (
	"strings"
	"testing"
	"time"

	"workacare/internal/model"
)

func TestGenerateReportUnknownType(t *testing.T) {
	_, err := GenerateReport(nil, model.ReportRequest{Type: "wat"}, time.Now())
	if err == nil {
		t.Fatalf("unknown type must fail")
	}
}

func TestGenerateReportDepartmentMode(t *testing.T) {
	now := time.Now()
	rs := []model.SurveyResponse{
		resp("A-mental-wellbeing", 80, "TI", now),
		resp("A-mental-wellbeing", 60, "TI", now),
		resp("A-mental-wellbeing", 40, "RH", now),
	}
	rows, err := GenerateReport(rs, model.ReportRequest{Type: ReportDepartment, Department: "all"}, now)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 rows, got %d: %+v", len(rows), rows)
	}
	if rows[0].Item != "TI" || rows[0].Value != 70 || rows[0].Count != 2 {
		t.Fatalf("TI row: %+v", rows[0])
	}
	if rows[1].Item != "RH" || rows[1].Value != 40 || rows[1].Count != 1 {
		t.Fatalf("RH row: %+v", rows[1])
	}
}

func TestGenerateReportDepartmentFilter(t *testing.T) {
	now := time.Now()
	rs := []model.SurveyResponse{
		resp("A-mental-wellbeing", 80, "TI", now),
		resp("A-mental-wellbeing", 40, "RH", now),
	}
	rows, err := GenerateReport(rs, model.ReportRequest{Type: ReportGeneral, Department: "TI"}, now)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(rows) != 1 || rows[0].Count != 1 || rows[0].Value != 80 {
		t.Fatalf("filtered rows: %+v", rows)
	}
}

func TestGenerateReportDateWindow(t *testing.T) {
	now := time.Now()
	rs := []model.SurveyResponse{
		resp("A-mental-wellbeing", 80, "TI", now.AddDate(0, 0, -5)),
		resp("A-mental-wellbeing", 20, "TI", now.AddDate(0, 0, -45)),
	}
	rows, err := GenerateReport(rs, model.ReportRequest{Type: ReportGeneral}, now)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	// default window is 30 days, the 45-day-old row falls out
	if len(rows) != 1 || rows[0].Count != 1 || rows[0].Value != 80 {
		t.Fatalf("window rows: %+v", rows)
	}

	rows, err = GenerateReport(rs, model.ReportRequest{Type: ReportGeneral, RangeDays: 90}, now)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(rows) != 1 || rows[0].Count != 2 || rows[0].Value != 50 {
		t.Fatalf("90-day rows: %+v", rows)
	}
}

func TestGenerateReportCategoryUppercases(t *testing.T) {
	now := time.Now()
	rs := []model.SurveyResponse{resp("A-mental-wellbeing", 60, "TI", now)}
	rows, err := GenerateReport(rs, model.ReportRequest{Type: ReportCategory}, now)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(rows) != 1 || rows[0].Item != "MENTAL" {
		t.Fatalf("category rows: %+v", rows)
	}
}

func TestGenerateReportKPIMode(t *testing.T) {
	now := time.Now()
	rs := []model.SurveyResponse{
		resp("A-mental-wellbeing", 70, "TI", now),
		resp("E-work-preferences", 50, "TI", now), // no KPI mapping, dropped
		resp("I-dei", 55, "TI", now),
	}
	rows, err := GenerateReport(rs, model.ReportRequest{Type: ReportKPI}, now)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 rows, got %d: %+v", len(rows), rows)
	}
	if rows[0].Item != "Saúde Mental" || rows[1].Item != "Diversidade & Inclusão" {
		t.Fatalf("kpi rows: %+v", rows)
	}
}

func TestGenerateReportSpecificSurvey(t *testing.T) {
	now := time.Now()
	r1 := resp("G-checkin", 0, "TI", now)
	r1.Answers = model.AnswerMap{"g1": float64(4), "g2": "texto"}
	r2 := resp("G-checkin", 0, "TI", now)
	r2.Answers = model.AnswerMap{"g1": float64(2)}

	rows, err := GenerateReport([]model.SurveyResponse{r1, r2},
		model.ReportRequest{Type: ReportSpecificSurvey, SurveyID: "G-checkin"}, now)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("want 1 row, got %d: %+v", len(rows), rows)
	}
	if rows[0].Value != 60 || rows[0].Count != 2 {
		t.Fatalf("g1 row: %+v", rows[0])
	}

	if _, err := GenerateReport(nil, model.ReportRequest{Type: ReportSpecificSurvey}, now); err == nil {
		t.Fatalf("missing survey_id must fail")
	}
}

func TestTruncateLongQuestionText(t *testing.T) {
	long := strings.Repeat("á", 60)
	got := truncate(long, 50)
	if len([]rune(got)) != 53 || !strings.HasSuffix(got, "...") {
		t.Fatalf("truncate: %q", got)
	}
	short := "curto"
	if truncate(short, 50) != short {
		t.Fatalf("short strings pass through")
	}
}
