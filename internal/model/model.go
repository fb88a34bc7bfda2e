package model

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// KPIMetric is one dashboard indicator on the 0-100 scale.
type KPIMetric struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value int    `json:"value"`
	Unit  string `json:"unit"`
	Trend string `json:"trend"` // up | down | neutral
}

// ChartPoint is one month bucket of the wellbeing time series.
type ChartPoint struct {
	Name         string `json:"name"`
	Mental       int    `json:"mental"`
	Fisico       int    `json:"fisico"`
	Social       int    `json:"social"`
	Material     int    `json:"material"`
	Participacao int    `json:"participacao"`
}

// DepartmentData mirrors ChartPoint keyed by department instead of month.
type DepartmentData struct {
	Name     string `json:"name"`
	Mental   int    `json:"mental"`
	Fisico   int    `json:"fisico"`
	Social   int    `json:"social"`
	Material int    `json:"material"`
	Stress   int    `json:"stress"`
}

type CategoryScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Color string `json:"color"`
}

type MoodBucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// DashboardOverview joins the independent dashboard queries. A failing
// section leaves its slot empty and records the failure in Errors, so the
// client can render partial data.
type DashboardOverview struct {
	Metrics     []KPIMetric       `json:"metrics"`
	Chart       []ChartPoint      `json:"chart"`
	Departments []DepartmentData  `json:"departments"`
	Categories  []CategoryScore   `json:"categories"`
	Mood        []MoodBucket      `json:"mood"`
	Responses   []SurveyResponse  `json:"responses"`
	Errors      map[string]string `json:"errors,omitempty"`
}

type ReportRequest struct {
	Type       string `json:"type" binding:"required"` // general | department | category | kpi | specific_survey
	Department string `json:"department"`              // department name or "all"
	RangeDays  int    `json:"range_days"`
	SurveyID   string `json:"survey_id"` // specific_survey mode only
}

// ReportRow is one line of a generated report table.
type ReportRow struct {
	Item   string `json:"item"`
	Metric string `json:"metric"`
	Value  int    `json:"value"`
	Count  int    `json:"count"`
}

type AnalysisReport struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
	RiskLevel       string   `json:"riskLevel"` // low | medium | high
}
