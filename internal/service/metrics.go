package service

import (
	"sort"
	"time"

	"workacare/internal/model"
)

// The aggregation functions in this file are pure: they never mutate their
// input and never fail; empty input produces empty (or zeroed) output.

// monthLabels are pt-BR short month names, capitalized for display.
var monthLabels = [...]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

func monthLabel(t time.Time) string { return monthLabels[int(t.Month())-1] }

// KPIMetrics derives the dashboard indicator cards. When ownerScoped, zero
// valued indicators are dropped; the total-responses sentinel is always kept.
func KPIMetrics(rs []model.SurveyResponse, ownerScoped bool) []model.KPIMetric {
	avgWhere := func(keep func(model.SurveyResponse) bool) int {
		return avgScore(filterResponses(rs, keep))
	}

	mental := avgWhere(func(r model.SurveyResponse) bool {
		return r.SurveyCategory == "mental" || r.SurveyID == "A-mental-wellbeing"
	})
	physical := avgWhere(func(r model.SurveyResponse) bool {
		return r.SurveyCategory == "physical" || r.SurveyID == "B-physical-wellbeing"
	})
	financial := avgWhere(func(r model.SurveyResponse) bool { return r.SurveyID == "H-financial" })
	pulse := avgWhere(func(r model.SurveyResponse) bool { return r.SurveyID == "G-checkin" })
	social := avgWhere(func(r model.SurveyResponse) bool { return r.SurveyCategory == "social" })

	trendFor := func(v int) string {
		if v > 60 {
			return "up"
		}
		return "down"
	}

	metrics := []model.KPIMetric{
		{ID: "1", Label: "Saúde Mental", Value: mental, Unit: "/100", Trend: trendFor(mental)},
		{ID: "2", Label: "Saúde Física", Value: physical, Unit: "/100", Trend: "neutral"},
		{ID: "3", Label: "Bem-Estar Material", Value: financial, Unit: "/100", Trend: "neutral"},
		{ID: "4", Label: "Clima Social", Value: social, Unit: "/100", Trend: "neutral"},
		{ID: "5", Label: "Engajamento", Value: pulse, Unit: "/100", Trend: trendFor(pulse)},
		{ID: "6", Label: "Total Respostas", Value: len(rs), Unit: "", Trend: "neutral"},
	}

	if !ownerScoped {
		return metrics
	}
	out := make([]model.KPIMetric, 0, len(metrics))
	for _, m := range metrics {
		if m.Value > 0 || m.ID == "6" {
			out = append(out, m)
		}
	}
	return out
}

type categoryDef struct {
	id    string
	label string
	color string
}

var categoryDefs = []categoryDef{
	{"F-leadership", "Liderança", "#8884d8"},
	{"D-org-practices", "Práticas Org.", "#82ca9d"},
	{"B-physical-wellbeing", "Físico", "#ffc658"},
	{"C-social-wellbeing", "Social", "#ff8042"},
	{"A-mental-wellbeing", "Mental", "#a4de6c"},
	{"I-dei", "DEI", "#d0ed57"},
	{"H-financial", "Material/Fin.", "#83a6ed"},
	{"G-checkin", "Pulse/Humor", "#14b8a6"},
}

// CategoryScores yields one mean score per catalog survey. Zero-score
// entries are dropped for owner-scoped views.
func CategoryScores(rs []model.SurveyResponse, ownerScoped bool) []model.CategoryScore {
	if len(rs) == 0 {
		return []model.CategoryScore{}
	}
	out := make([]model.CategoryScore, 0, len(categoryDefs))
	for _, cat := range categoryDefs {
		avg := avgScore(filterResponses(rs, func(r model.SurveyResponse) bool {
			return r.SurveyID == cat.id
		}))
		if ownerScoped && avg == 0 {
			continue
		}
		out = append(out, model.CategoryScore{Name: cat.label, Score: avg, Color: cat.color})
	}
	return out
}

type monthBucket struct {
	mental   []int
	fisico   []int
	social   []int
	material []int
	count    int
}

func bucketScores(b *monthBucket, r model.SurveyResponse) {
	switch {
	case r.SurveyCategory == "mental":
		b.mental = append(b.mental, r.Score)
	case r.SurveyCategory == "physical":
		b.fisico = append(b.fisico, r.Score)
	case r.SurveyCategory == "social":
		b.social = append(b.social, r.Score)
	}
	if r.SurveyID == "H-financial" {
		b.material = append(b.material, r.Score)
	}
	b.count++
}

// ChartData buckets submissions by month of creation and averages scores per
// wellbeing dimension. Buckets keep the order in which each month is first
// seen in the input.
func ChartData(rs []model.SurveyResponse) []model.ChartPoint {
	if len(rs) == 0 {
		return []model.ChartPoint{}
	}
	buckets := map[string]*monthBucket{}
	order := []string{}
	for _, r := range rs {
		key := monthLabel(r.CreatedAt)
		b, ok := buckets[key]
		if !ok {
			b = &monthBucket{}
			buckets[key] = b
			order = append(order, key)
		}
		bucketScores(b, r)
	}
	out := make([]model.ChartPoint, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		out = append(out, model.ChartPoint{
			Name:         key,
			Mental:       avgInts(b.mental),
			Fisico:       avgInts(b.fisico),
			Social:       avgInts(b.social),
			Material:     avgInts(b.material),
			Participacao: b.count,
		})
	}
	return out
}

// DepartmentData buckets by participant department (default "Geral") and is
// returned alphabetically sorted.
func DepartmentData(rs []model.SurveyResponse) []model.DepartmentData {
	if len(rs) == 0 {
		return []model.DepartmentData{}
	}
	type deptBucket struct {
		mental, fisico, social, material, pulse []int
	}
	buckets := map[string]*deptBucket{}
	for _, r := range rs {
		dept := r.Participant.Department
		if dept == "" {
			dept = "Geral"
		}
		b, ok := buckets[dept]
		if !ok {
			b = &deptBucket{}
			buckets[dept] = b
		}
		switch {
		case r.SurveyCategory == "mental":
			b.mental = append(b.mental, r.Score)
		case r.SurveyCategory == "physical":
			b.fisico = append(b.fisico, r.Score)
		case r.SurveyCategory == "social":
			b.social = append(b.social, r.Score)
		}
		if r.SurveyID == "H-financial" {
			b.material = append(b.material, r.Score)
		}
		if r.SurveyID == "G-checkin" {
			b.pulse = append(b.pulse, r.Score)
		}
	}
	out := make([]model.DepartmentData, 0, len(buckets))
	for dept, b := range buckets {
		out = append(out, model.DepartmentData{
			Name:     dept,
			Mental:   avgInts(b.mental),
			Fisico:   avgInts(b.fisico),
			Social:   avgInts(b.social),
			Material: avgInts(b.material),
			Stress:   avgInts(b.pulse),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// MoodDistribution buckets pulse check-in scores into three fixed bands:
// >=70 high, 40-69 medium, below 40 low. Empty buckets are omitted.
func MoodDistribution(rs []model.SurveyResponse) []model.MoodBucket {
	var high, medium, low int
	for _, r := range rs {
		if r.SurveyID != "G-checkin" {
			continue
		}
		switch {
		case r.Score >= 70:
			high++
		case r.Score >= 40:
			medium++
		default:
			low++
		}
	}
	buckets := []model.MoodBucket{
		{Name: "Energizado/Feliz", Value: high, Color: "#10b981"},
		{Name: "Estável/Neutro", Value: medium, Color: "#f59e0b"},
		{Name: "Baixo Ânimo", Value: low, Color: "#ef4444"},
	}
	out := make([]model.MoodBucket, 0, 3)
	for _, b := range buckets {
		if b.Value > 0 {
			out = append(out, b)
		}
	}
	return out
}
