package service

import (
	"context"
	"fmt"
	"time"

	"workacare/internal/catalog"
	"workacare/internal/logger"
	"workacare/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResponseService struct {
	db *gorm.DB
}

func NewResponseService(db *gorm.DB) *ResponseService { return &ResponseService{db: db} }

// Save computes the normalized score, persists the immutable submission and
// returns it with the catalog title/category attached. It also upserts the
// legacy submission-tracker row; the tracker is redundant with the responses
// table but both writes are kept for compatibility with existing data.
func (s *ResponseService) Save(ctx context.Context, surveyID string, participant model.Participant, answers model.AnswerMap, ownerID string) (*model.SurveyResponse, error) {
	resp := model.SurveyResponse{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		SurveyID:    surveyID,
		Participant: participant,
		Answers:     answers,
		Score:       ComputeScore(answers),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&resp).Error; err != nil {
		return nil, fmt.Errorf("insert response: %w", err)
	}

	if ownerID != "" {
		track := model.SurveySubmission{UserID: ownerID, SurveyID: surveyID, CreatedAt: time.Now().UTC()}
		if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&track).Error; err != nil {
			logger.Warn("submission tracker upsert failed", "survey_id", surveyID, "err", err)
		}
	}

	denormalize(&resp)
	return &resp, nil
}

// Fetch returns submissions newest first, optionally restricted to one owner.
func (s *ResponseService) Fetch(ctx context.Context, ownerFilter string) ([]model.SurveyResponse, error) {
	q := s.db.WithContext(ctx).Order("created_at DESC")
	if ownerFilter != "" {
		q = q.Where("user_id = ?", ownerFilter)
	}
	var out []model.SurveyResponse
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("fetch responses: %w", err)
	}
	for i := range out {
		denormalize(&out[i])
	}
	return out, nil
}

// FetchSurvey mirrors Fetch scoped to a single questionnaire.
func (s *ResponseService) FetchSurvey(ctx context.Context, ownerFilter, surveyID string) ([]model.SurveyResponse, error) {
	q := s.db.WithContext(ctx).Order("created_at DESC").Where("survey_id = ?", surveyID)
	if ownerFilter != "" {
		q = q.Where("user_id = ?", ownerFilter)
	}
	var out []model.SurveyResponse
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("fetch responses: %w", err)
	}
	for i := range out {
		denormalize(&out[i])
	}
	return out, nil
}

// GetAll is the degrading read used by listing endpoints: a backend failure
// yields an empty list and a log entry rather than an error page.
func (s *ResponseService) GetAll(ctx context.Context, ownerFilter string) []model.SurveyResponse {
	out, err := s.Fetch(ctx, ownerFilter)
	if err != nil {
		logger.Error("fetch responses failed", "err", err)
		return []model.SurveyResponse{}
	}
	return out
}

// Delete removes one submission and fails loudly on backend error.
func (s *ResponseService) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&model.SurveyResponse{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete response: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("response %s not found", id)
	}
	return nil
}

// CompletedSurveys returns the survey ids a user already answered: the union
// of the legacy tracker table and the responses table.
func (s *ResponseService) CompletedSurveys(ctx context.Context, userID string) ([]string, error) {
	var tracked []string
	if err := s.db.WithContext(ctx).Model(&model.SurveySubmission{}).
		Where("user_id = ?", userID).Pluck("survey_id", &tracked).Error; err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	var answered []string
	if err := s.db.WithContext(ctx).Model(&model.SurveyResponse{}).
		Where("user_id = ?", userID).Distinct().Pluck("survey_id", &answered).Error; err != nil {
		return nil, fmt.Errorf("query responses: %w", err)
	}
	seen := map[string]bool{}
	out := make([]string, 0, len(tracked)+len(answered))
	for _, id := range append(tracked, answered...) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out, nil
}

func denormalize(r *model.SurveyResponse) {
	r.SurveyTitle = catalog.SurveyTitle(r.SurveyID)
	r.SurveyCategory = catalog.SurveyCategory(r.SurveyID)
}
