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

// StrategyService covers the strategic-planning records: SWOT items,
// strategic goals and budgeted resources. All are flat create/delete rows;
// goals additionally move through a status and resources toggle allocation.
type StrategyService struct {
	db *gorm.DB
}

func NewStrategyService(db *gorm.DB) *StrategyService { return &StrategyService{db: db} }

// --- SWOT ---

func (s *StrategyService) ListSwot(ctx context.Context, ownerID string) []model.SwotItem {
	var out []model.SwotItem
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		logger.Error("fetch swot failed", "err", err)
		return []model.SwotItem{}
	}
	return out
}

func (s *StrategyService) AddSwot(ctx context.Context, ownerID, text, kind string) (*model.SwotItem, error) {
	switch kind {
	case "strength", "weakness", "opportunity", "threat":
	default:
		return nil, fmt.Errorf("invalid swot type %q", kind)
	}
	item := model.SwotItem{ID: uuid.NewString(), UserID: ownerID, Text: text, Type: kind, CreatedAt: time.Now().UTC()}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, fmt.Errorf("insert swot item: %w", err)
	}
	return &item, nil
}

func (s *StrategyService) DeleteSwot(ctx context.Context, ownerID, id string) error {
	res := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&model.SwotItem{})
	if res.Error != nil {
		return fmt.Errorf("delete swot item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("swot item %s not found", id)
	}
	return nil
}

// --- Goals ---

func (s *StrategyService) ListGoals(ctx context.Context, ownerID string) []model.StrategicGoal {
	var out []model.StrategicGoal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("deadline ASC").
		Find(&out).Error
	if err != nil {
		logger.Error("fetch goals failed", "err", err)
		return []model.StrategicGoal{}
	}
	return out
}

func (s *StrategyService) AddGoal(ctx context.Context, ownerID string, goal model.StrategicGoal) (*model.StrategicGoal, error) {
	goal.ID = uuid.NewString()
	goal.UserID = ownerID
	if goal.Status == "" {
		goal.Status = "planned"
	}
	goal.CreatedAt = time.Now().UTC()
	if err := s.db.WithContext(ctx).Create(&goal).Error; err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}
	return &goal, nil
}

func (s *StrategyService) UpdateGoalStatus(ctx context.Context, ownerID, id, status string) error {
	switch status {
	case "planned", "in-progress", "completed":
	default:
		return fmt.Errorf("invalid goal status %q", status)
	}
	res := s.db.WithContext(ctx).Model(&model.StrategicGoal{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update goal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("goal %s not found", id)
	}
	return nil
}

func (s *StrategyService) DeleteGoal(ctx context.Context, ownerID, id string) error {
	res := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&model.StrategicGoal{})
	if res.Error != nil {
		return fmt.Errorf("delete goal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("goal %s not found", id)
	}
	return nil
}

// --- Strategic resources ---

func (s *StrategyService) ListResources(ctx context.Context, ownerID string) []model.StrategicResource {
	var out []model.StrategicResource
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		logger.Error("fetch strategic resources failed", "err", err)
		return []model.StrategicResource{}
	}
	return out
}

func (s *StrategyService) AddResource(ctx context.Context, ownerID, item string, cost float64) (*model.StrategicResource, error) {
	res := model.StrategicResource{ID: uuid.NewString(), UserID: ownerID, Item: item, Cost: cost, CreatedAt: time.Now().UTC()}
	if err := s.db.WithContext(ctx).Create(&res).Error; err != nil {
		return nil, fmt.Errorf("insert strategic resource: %w", err)
	}
	return &res, nil
}

func (s *StrategyService) SetResourceAllocated(ctx context.Context, ownerID, id string, allocated bool) error {
	res := s.db.WithContext(ctx).Model(&model.StrategicResource{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Update("allocated", allocated)
	if res.Error != nil {
		return fmt.Errorf("update strategic resource: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("strategic resource %s not found", id)
	}
	return nil
}

func (s *StrategyService) DeleteResource(ctx context.Context, ownerID, id string) error {
	res := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&model.StrategicResource{})
	if res.Error != nil {
		return fmt.Errorf("delete strategic resource: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("strategic resource %s not found", id)
	}
	return nil
}
