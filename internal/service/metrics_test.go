package service

import (
	"testing"
	"time"

	"workacare/internal/catalog"
	"workacare/internal/model"
)

func resp(surveyID string, score int, dept string, created time.Time) model.SurveyResponse {
	return model.SurveyResponse{
		SurveyID:       surveyID,
		Score:          score,
		Participant:    model.Participant{Department: dept},
		CreatedAt:      created,
		SurveyTitle:    catalog.SurveyTitle(surveyID),
		SurveyCategory: catalog.SurveyCategory(surveyID),
	}
}

func TestKPIMetricsEmpty(t *testing.T) {
	metrics := KPIMetrics(nil, false)
	if len(metrics) != 6 {
		t.Fatalf("want 6 cards, got %d", len(metrics))
	}
	for _, m := range metrics {
		if m.Value != 0 {
			t.Fatalf("card %s: got %d, want 0", m.Label, m.Value)
		}
	}
}

func TestKPIMetricsOwnerScopedDropsZeros(t *testing.T) {
	now := time.Now()
	rs := []model.SurveyResponse{resp("A-mental-wellbeing", 80, "TI", now)}
	metrics := KPIMetrics(rs, true)
	// only the mental card and the total-responses sentinel survive
	if len(metrics) != 2 {
		t.Fatalf("want 2 cards, got %d: %+v", len(metrics), metrics)
	}
	if metrics[0].Value != 80 || metrics[0].Trend != "up" {
		t.Fatalf("mental card: %+v", metrics[0])
	}
	if metrics[1].ID != "6" || metrics[1].Value != 1 {
		t.Fatalf("total card: %+v", metrics[1])
	}
}

func TestKPIMetricsTrendFlips(t *testing.T) {
	now := time.Now()
	low := KPIMetrics([]model.SurveyResponse{resp("A-mental-wellbeing", 60, "TI", now)}, false)
	if low[0].Trend != "down" {
		t.Fatalf("60 should trend down, got %s", low[0].Trend)
	}
	high := KPIMetrics([]model.SurveyResponse{resp("A-mental-wellbeing", 61, "TI", now)}, false)
	if high[0].Trend != "up" {
		t.Fatalf("61 should trend up, got %s", high[0].Trend)
	}
}

func TestChartDataBucketsByMonth(t *testing.T) {
	jan := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)
	rs := []model.SurveyResponse{
		resp("A-mental-wellbeing", 80, "TI", jan),
		resp("A-mental-wellbeing", 60, "TI", jan),
		resp("B-physical-wellbeing", 40, "TI", feb),
	}
	points := ChartData(rs)
	if len(points) != 2 {
		t.Fatalf("want 2 buckets, got %d", len(points))
	}
	if points[0].Name != "Jan" || points[1].Name != "Fev" {
		t.Fatalf("bucket names: %s, %s", points[0].Name, points[1].Name)
	}
	if points[0].Mental != 70 || points[0].Participacao != 2 {
		t.Fatalf("jan bucket: %+v", points[0])
	}
	if points[1].Fisico != 40 || points[1].Mental != 0 {
		t.Fatalf("feb bucket: %+v", points[1])
	}
}

func TestDepartmentDataDefaultsAndSorts(t *testing.T) {
	now := time.Now()
	rs := []model.SurveyResponse{
		resp("A-mental-wellbeing", 50, "TI", now),
		resp("A-mental-wellbeing", 90, "", now),
		resp("G-checkin", 30, "TI", now),
	}
	depts := DepartmentData(rs)
	if len(depts) != 2 {
		t.Fatalf("want 2 departments, got %d", len(depts))
	}
	if depts[0].Name != "Geral" || depts[1].Name != "TI" {
		t.Fatalf("order: %s, %s", depts[0].Name, depts[1].Name)
	}
	if depts[1].Stress != 30 {
		t.Fatalf("TI pulse: %+v", depts[1])
	}
}

func TestMoodDistributionBoundaries(t *testing.T) {
	now := time.Now()
	rs := []model.SurveyResponse{
		resp("G-checkin", 70, "TI", now),
		resp("G-checkin", 69, "TI", now),
		resp("G-checkin", 40, "TI", now),
		resp("G-checkin", 39, "TI", now),
		resp("A-mental-wellbeing", 10, "TI", now), // not a check-in, ignored
	}
	buckets := MoodDistribution(rs)
	if len(buckets) != 3 {
		t.Fatalf("want 3 buckets, got %d: %+v", len(buckets), buckets)
	}
	if buckets[0].Value != 1 || buckets[1].Value != 2 || buckets[2].Value != 1 {
		t.Fatalf("bucket counts: %+v", buckets)
	}
}

func TestMoodDistributionOmitsEmptyBuckets(t *testing.T) {
	now := time.Now()
	buckets := MoodDistribution([]model.SurveyResponse{
		resp("G-checkin", 80, "TI", now),
		resp("G-checkin", 45, "TI", now),
		resp("G-checkin", 20, "TI", now),
	})
	if len(buckets) != 3 {
		t.Fatalf("one per band: got %d", len(buckets))
	}
	empty := MoodDistribution(nil)
	if len(empty) != 0 {
		t.Fatalf("no check-ins should yield no buckets, got %+v", empty)
	}
}

func TestCategoryScores(t *testing.T) {
	now := time.Now()
	rs := []model.SurveyResponse{
		resp("A-mental-wellbeing", 60, "TI", now),
		resp("A-mental-wellbeing", 80, "TI", now),
	}
	all := CategoryScores(rs, false)
	if len(all) != 8 {
		t.Fatalf("supervisor view keeps every category, got %d", len(all))
	}
	scoped := CategoryScores(rs, true)
	if len(scoped) != 1 || scoped[0].Name != "Mental" || scoped[0].Score != 70 {
		t.Fatalf("scoped view: %+v", scoped)
	}
}
