package model

import "time"

type Profile struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:191" json:"email"`
	Password  string    `json:"-"`
	FullName  string    `json:"full_name"`
	Role      string    `gorm:"default:operator" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Participant is the respondent block stored inside a survey response.
// Name is blanked by handlers when Anonymous is set.
type Participant struct {
	Name       string `json:"name"`
	Age        string `json:"age"`
	Gender     string `json:"gender"`
	Department string `json:"department"`
	Tenure     string `json:"tenure"`
	Anonymous  bool   `json:"is_anonymous"`
}

// AnswerMap maps question id to the given answer: a number for scale
// questions, a string for text/choice, or a string list for multi-choice.
type AnswerMap map[string]any

type SurveyResponse struct {
	ID          string      `gorm:"primaryKey;size:36" json:"id"`
	UserID      string      `gorm:"index;size:36" json:"user_id"`
	SurveyID    string      `gorm:"index;size:40" json:"survey_id"`
	Participant Participant `gorm:"serializer:json" json:"participant"`
	Answers     AnswerMap   `gorm:"serializer:json" json:"answers"`
	Score       int         `json:"score"`
	CreatedAt   time.Time   `json:"timestamp"`

	// Denormalized from the static survey catalog, never persisted.
	SurveyTitle    string `gorm:"-" json:"survey_title"`
	SurveyCategory string `gorm:"-" json:"survey_category"`
}

// SurveySubmission is the legacy one-row-per-completed-survey tracker. The
// completed set shown to participants is the union of this table and the
// responses table; both writes are kept for compatibility.
type SurveySubmission struct {
	UserID    string    `gorm:"primaryKey;size:36" json:"user_id"`
	SurveyID  string    `gorm:"primaryKey;size:40" json:"survey_id"`
	CreatedAt time.Time `json:"created_at"`
}

type AppSettings struct {
	UserID               string    `gorm:"primaryKey;size:36" json:"-"`
	Departments          []string  `gorm:"serializer:json" json:"departments"`
	ReportCategories     []string  `gorm:"serializer:json" json:"report_categories"`
	CustomGuideQuestions []string  `gorm:"serializer:json" json:"custom_guide_questions"`
	UpdatedAt            time.Time `json:"-"`
}

type ActionPlanItem struct {
	ID       string `json:"id"`
	Goal     string `json:"goal"`
	Deadline string `json:"deadline"`
	Status   string `json:"status"` // pending | in_progress | done
}

type CoachSession struct {
	ID                 string            `gorm:"primaryKey;size:36" json:"id"`
	UserID             string            `gorm:"index;size:36" json:"user_id"`
	Type               string            `json:"type"` // individual | focus_group
	Date               string            `gorm:"type:date" json:"date"`
	ParticipantOrGroup string            `json:"participant_or_group"`
	Status             string            `gorm:"default:scheduled" json:"status"` // scheduled | completed
	PrivateNotes       string            `gorm:"type:text" json:"private_notes"`
	GuideAnswers       map[string]string `gorm:"serializer:json" json:"guide_answers"`
	ActionPlan         []ActionPlanItem  `gorm:"serializer:json" json:"action_plan"`
	CreatedAt          time.Time         `json:"created_at"`
}

type Observation struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;size:36" json:"user_id"`
	Date      string    `gorm:"type:date" json:"date"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	Content   string    `gorm:"type:text" json:"content"`
	Sentiment string    `json:"sentiment"` // positive | neutral | negative
	CreatedAt time.Time `json:"created_at"`
}

type Resource struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;size:36" json:"user_id,omitempty"`
	Title     string    `json:"title"`
	Type      string    `json:"type"` // article | video | guide
	Category  string    `json:"category"`
	Duration  string    `json:"duration"`
	Thumbnail string    `json:"thumbnail"`
	Content   string    `gorm:"type:text" json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SwotItem struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;size:36" json:"-"`
	Text      string    `json:"text"`
	Type      string    `json:"type"` // strength | weakness | opportunity | threat
	CreatedAt time.Time `json:"created_at"`
}

type StrategicGoal struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;size:36" json:"-"`
	Text      string    `json:"text"`
	Status    string    `gorm:"default:planned" json:"status"` // planned | in-progress | completed
	Deadline  string    `gorm:"type:date" json:"deadline"`
	KPITarget string    `json:"kpi_target"`
	CreatedAt time.Time `json:"created_at"`
}

type StrategicResource struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;size:36" json:"-"`
	Item      string    `json:"item"`
	Cost      float64   `json:"cost"`
	Allocated bool      `json:"allocated"`
	CreatedAt time.Time `json:"created_at"`
}

func (Profile) TableName() string           { return "profiles" }
func (SurveyResponse) TableName() string    { return "survey_responses" }
func (SurveySubmission) TableName() string  { return "survey_submissions" }
func (AppSettings) TableName() string       { return "app_settings" }
func (CoachSession) TableName() string      { return "sessions" }
func (Observation) TableName() string       { return "observations" }
func (Resource) TableName() string          { return "custom_resources" }
func (SwotItem) TableName() string          { return "swot" }
func (StrategicGoal) TableName() string     { return "strategic_goals" }
func (StrategicResource) TableName() string { return "strategic_resources" }
