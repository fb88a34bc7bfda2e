package service

import (
	"context"
	"fmt"
	"time"

	"workacare/internal/logger"
	"workacare/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionService manages one-on-one and focus-group check-in sessions.
type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService { return &SessionService{db: db} }

func (s *SessionService) List(ctx context.Context, ownerID string) []model.CoachSession {
	var out []model.CoachSession
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("date DESC").
		Find(&out).Error
	if err != nil {
		logger.Error("fetch sessions failed", "err", err)
		return []model.CoachSession{}
	}
	return out
}

func (s *SessionService) Create(ctx context.Context, ownerID string, sess model.CoachSession) (*model.CoachSession, error) {
	sess.ID = uuid.NewString()
	sess.UserID = ownerID
	if sess.Status == "" {
		sess.Status = "scheduled"
	}
	if sess.Date == "" {
		sess.Date = time.Now().Format("2006-01-02")
	}
	if sess.GuideAnswers == nil {
		sess.GuideAnswers = map[string]string{}
	}
	if sess.ActionPlan == nil {
		sess.ActionPlan = []model.ActionPlanItem{}
	}
	sess.CreatedAt = time.Now().UTC()
	if err := s.db.WithContext(ctx).Create(&sess).Error; err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return &sess, nil
}

// Save updates notes, guide answers and the action plan of an existing
// session owned by ownerID.
func (s *SessionService) Save(ctx context.Context, ownerID, id string, sess model.CoachSession) error {
	res := s.db.WithContext(ctx).Model(&model.CoachSession{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(map[string]any{
			"type":                 sess.Type,
			"date":                 sess.Date,
			"participant_or_group": sess.ParticipantOrGroup,
			"private_notes":        sess.PrivateNotes,
			"guide_answers":        sess.GuideAnswers,
			"action_plan":          sess.ActionPlan,
		})
	if res.Error != nil {
		return fmt.Errorf("update session: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("session %s not found", id)
	}
	return nil
}

// Complete transitions a scheduled session to completed. Completing an
// already-completed session is a no-op error.
func (s *SessionService) Complete(ctx context.Context, ownerID, id string) error {
	res := s.db.WithContext(ctx).Model(&model.CoachSession{}).
		Where("id = ? AND user_id = ? AND status = ?", id, ownerID, "scheduled").
		Update("status", "completed")
	if res.Error != nil {
		return fmt.Errorf("complete session: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("session %s is not scheduled", id)
	}
	return nil
}

func (s *SessionService) Delete(ctx context.Context, ownerID, id string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.CoachSession{})
	if res.Error != nil {
		return fmt.Errorf("delete session: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("session %s not found", id)
	}
	return nil
}
