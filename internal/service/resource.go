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
)

// ResourceService merges the static built-in library with owner-created
// entries. Only custom entries hit the database.
type ResourceService struct {
	db *gorm.DB
}

func NewResourceService(db *gorm.DB) *ResourceService { return &ResourceService{db: db} }

// ListAll returns custom resources (newest first) followed by the built-in
// catalog. A failing read degrades to the built-ins alone.
func (s *ResourceService) ListAll(ctx context.Context, ownerID string) []model.Resource {
	custom := s.listCustom(ctx, ownerID)
	return append(custom, catalog.BuiltinResources()...)
}

func (s *ResourceService) listCustom(ctx context.Context, ownerID string) []model.Resource {
	if ownerID == "" {
		return []model.Resource{}
	}
	var out []model.Resource
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		logger.Error("fetch custom resources failed", "err", err)
		return []model.Resource{}
	}
	return out
}

func (s *ResourceService) Create(ctx context.Context, ownerID string, res model.Resource) (*model.Resource, error) {
	res.ID = uuid.NewString()
	res.UserID = ownerID
	res.CreatedAt = time.Now().UTC()
	if err := s.db.WithContext(ctx).Create(&res).Error; err != nil {
		return nil, fmt.Errorf("insert resource: %w", err)
	}
	return &res, nil
}

// Delete removes a custom resource; built-ins cannot be deleted.
func (s *ResourceService) Delete(ctx context.Context, ownerID, id string) error {
	res := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&model.Resource{})
	if res.Error != nil {
		return fmt.Errorf("delete resource: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("resource %s not found", id)
	}
	return nil
}
