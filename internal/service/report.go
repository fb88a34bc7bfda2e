package service

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"workacare/internal/catalog"
	"workacare/internal/model"
)

// Report modes. Each mode re-derives its table from the full response set;
// nothing is persisted, so regenerating with the same inputs is idempotent.
const (
	ReportGeneral        = "general"
	ReportDepartment     = "department"
	ReportCategory       = "category"
	ReportKPI            = "kpi"
	ReportSpecificSurvey = "specific_survey"
)

// kpiSurveyLabels maps survey ids to the strategic indicator they feed.
var kpiSurveyLabels = map[string]string{
	"A-mental-wellbeing":   "Saúde Mental",
	"B-physical-wellbeing": "Saúde Física",
	"C-social-wellbeing":   "Bem-Estar Social",
	"H-financial":          "Bem-Estar Financeiro",
	"G-burnout":            "Risco de Burnout",
	"F-leadership":         "Liderança",
	"I-dei":                "Diversidade & Inclusão",
}

// GenerateReport filters the response set by date window, department and
// (for specific_survey mode) survey id, then groups it according to the
// selected mode.
func GenerateReport(rs []model.SurveyResponse, req model.ReportRequest, now time.Time) ([]model.ReportRow, error) {
	days := req.RangeDays
	if days <= 0 {
		days = 30
	}
	cutoff := now.AddDate(0, 0, -days)
	filtered := filterResponses(rs, func(r model.SurveyResponse) bool {
		if r.CreatedAt.Before(cutoff) {
			return false
		}
		if req.Department != "" && req.Department != "all" && r.Participant.Department != req.Department {
			return false
		}
		return true
	})

	switch req.Type {
	case ReportGeneral:
		return groupReport(filtered, "Média de Score", func(r model.SurveyResponse) (string, bool) {
			return r.SurveyTitle, true
		}), nil
	case ReportDepartment:
		return groupReport(filtered, "Bem-Estar Geral", func(r model.SurveyResponse) (string, bool) {
			if r.Participant.Department == "" {
				return "N/A", true
			}
			return r.Participant.Department, true
		}), nil
	case ReportCategory:
		return groupReport(filtered, "Score Médio", func(r model.SurveyResponse) (string, bool) {
			cat := r.SurveyCategory
			if cat == "" {
				cat = "Geral"
			}
			return strings.ToUpper(cat), true
		}), nil
	case ReportKPI:
		rows := groupReport(filtered, "Índice de Saúde", func(r model.SurveyResponse) (string, bool) {
			if label, ok := kpiSurveyLabels[r.SurveyID]; ok {
				return label, true
			}
			if r.SurveyCategory == "social" {
				return "Bem-Estar Social", true
			}
			return "", false
		})
		for i := range rows {
			if rows[i].Item == "Risco de Burnout" {
				rows[i].Metric = "Índice de Risco"
			}
		}
		return rows, nil
	case ReportSpecificSurvey:
		if req.SurveyID == "" {
			return nil, fmt.Errorf("survey_id required for specific_survey report")
		}
		return questionReport(filtered, req.SurveyID), nil
	default:
		return nil, fmt.Errorf("unknown report type %q", req.Type)
	}
}

// groupReport buckets submissions by key and averages their scores. The key
// function may exclude a submission by returning false.
func groupReport(rs []model.SurveyResponse, metric string, key func(model.SurveyResponse) (string, bool)) []model.ReportRow {
	type agg struct {
		sum, count int
	}
	groups := map[string]*agg{}
	order := []string{}
	for _, r := range rs {
		k, ok := key(r)
		if !ok {
			continue
		}
		g, seen := groups[k]
		if !seen {
			g = &agg{}
			groups[k] = g
			order = append(order, k)
		}
		g.sum += r.Score
		g.count++
	}
	out := make([]model.ReportRow, 0, len(order))
	for _, k := range order {
		g := groups[k]
		out = append(out, model.ReportRow{
			Item:   k,
			Metric: metric,
			Value:  int(math.Round(float64(g.sum) / float64(g.count))),
			Count:  g.count,
		})
	}
	return out
}

// questionReport averages the numeric answers of one survey per question,
// scaled to the 0-100 range used everywhere else.
func questionReport(rs []model.SurveyResponse, surveyID string) []model.ReportRow {
	survey := catalog.SurveyByID(surveyID)
	if survey == nil {
		return []model.ReportRow{}
	}
	type agg struct {
		sum   float64
		count int
	}
	stats := map[string]*agg{}
	for _, r := range rs {
		if r.SurveyID != surveyID {
			continue
		}
		for qID, val := range r.Answers {
			f, ok := likertValue(val)
			if !ok {
				continue
			}
			g, seen := stats[qID]
			if !seen {
				g = &agg{}
				stats[qID] = g
			}
			g.sum += f
			g.count++
		}
	}
	// Catalog question order keeps the table stable across runs.
	out := make([]model.ReportRow, 0, len(stats))
	for _, q := range survey.Questions {
		g, ok := stats[q.ID]
		if !ok {
			continue
		}
		out = append(out, model.ReportRow{
			Item:   truncate(q.Text, 50),
			Metric: "Média da Resposta",
			Value:  int(math.Round(g.sum / float64(g.count) * 20)),
			Count:  g.count,
		})
		delete(stats, q.ID)
	}
	// Answers referencing unknown question ids still show up, keyed by id.
	rest := make([]string, 0, len(stats))
	for qID := range stats {
		rest = append(rest, qID)
	}
	sort.Strings(rest)
	for _, qID := range rest {
		g := stats[qID]
		out = append(out, model.ReportRow{
			Item:   qID,
			Metric: "Média da Resposta",
			Value:  int(math.Round(g.sum / float64(g.count) * 20)),
			Count:  g.count,
		})
	}
	return out
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
