package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"workacare/internal/catalog"
	"workacare/internal/logger"
	"workacare/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ObservationService records structured field-visit checklists. Observations
// are immutable once saved.
type ObservationService struct {
	db *gorm.DB
}

func NewObservationService(db *gorm.DB) *ObservationService { return &ObservationService{db: db} }

func (s *ObservationService) List(ctx context.Context, ownerID string) []model.Observation {
	var out []model.Observation
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("date DESC").
		Find(&out).Error
	if err != nil {
		logger.Error("fetch observations failed", "err", err)
		return []model.Observation{}
	}
	return out
}

// Create renders the checklist answers into the observation content text and
// persists the record.
func (s *ObservationService) Create(ctx context.Context, ownerID string, date, author, summary string, checklist map[string]string) (*model.Observation, error) {
	if strings.TrimSpace(author) == "" {
		return nil, fmt.Errorf("author required")
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	obs := model.Observation{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		Date:      date,
		Author:    author,
		Category:  "psicossocial",
		Content:   renderChecklist(summary, checklist),
		Sentiment: "neutral",
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&obs).Error; err != nil {
		return nil, fmt.Errorf("insert observation: %w", err)
	}
	return &obs, nil
}

// renderChecklist flattens the checklist answers to the free-text content
// column, one line per answered item, followed by the visit summary.
func renderChecklist(summary string, answers map[string]string) string {
	var sb strings.Builder
	sb.WriteString("CHECKLIST REALIZADO.")
	for _, section := range catalog.ChecklistSections() {
		for _, item := range section.Items {
			if v, ok := answers[item.ID]; ok && v != "" {
				sb.WriteString(fmt.Sprintf("\n[%s] %s: %s", item.ID, item.Question, v))
			}
		}
	}
	if summary == "" {
		summary = "Sem resumo adicional."
	}
	sb.WriteString("\nResumo: " + summary)
	return sb.String()
}
