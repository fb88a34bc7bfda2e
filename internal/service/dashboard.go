package service

import (
	"context"

	"workacare/internal/logger"
	"workacare/internal/model"
)

type DashboardService struct {
	responses *ResponseService
}

func NewDashboardService(responses *ResponseService) *DashboardService {
	return &DashboardService{responses: responses}
}

// Overview assembles every dashboard section in one call. Sections fail
// independently: a failing read leaves its slots empty and records the
// failure under the section keys so the client renders whatever arrived.
func (s *DashboardService) Overview(ctx context.Context, ownerFilter string, ownerScoped bool) model.DashboardOverview {
	out := model.DashboardOverview{
		Metrics:     []model.KPIMetric{},
		Chart:       []model.ChartPoint{},
		Departments: []model.DepartmentData{},
		Categories:  []model.CategoryScore{},
		Mood:        []model.MoodBucket{},
		Responses:   []model.SurveyResponse{},
		Errors:      map[string]string{},
	}

	rs, err := s.responses.Fetch(ctx, ownerFilter)
	if err != nil {
		logger.Error("dashboard fetch failed", "err", err)
		for _, section := range []string{"metrics", "chart", "departments", "categories", "responses"} {
			out.Errors[section] = err.Error()
		}
	} else {
		out.Metrics = KPIMetrics(rs, ownerScoped)
		out.Chart = ChartData(rs)
		out.Departments = DepartmentData(rs)
		out.Categories = CategoryScores(rs, ownerScoped)
		out.Responses = rs
	}

	checkins, err := s.responses.FetchSurvey(ctx, ownerFilter, "G-checkin")
	if err != nil {
		logger.Error("dashboard mood fetch failed", "err", err)
		out.Errors["mood"] = err.Error()
	} else {
		out.Mood = MoodDistribution(checkins)
	}

	if len(out.Errors) == 0 {
		out.Errors = nil
	}
	return out
}
