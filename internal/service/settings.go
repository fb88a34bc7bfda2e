package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"workacare/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var defaultSettings = model.AppSettings{
	Departments:          []string{"TI", "RH", "Vendas", "Marketing", "Financeiro", "Operacoes"},
	ReportCategories:     []string{"Mental", "Físico", "Social", "Organizacional", "Financeiro"},
	CustomGuideQuestions: []string{},
}

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService { return &SettingsService{db: db} }

// Get returns the owner's settings, falling back to defaults when the row is
// missing or unreadable. Departments come back sorted.
func (s *SettingsService) Get(ctx context.Context, ownerID string) model.AppSettings {
	out := cloneDefaults()
	if ownerID == "" {
		sort.Strings(out.Departments)
		return out
	}
	var row model.AppSettings
	if err := s.db.WithContext(ctx).First(&row, "user_id = ?", ownerID).Error; err != nil {
		sort.Strings(out.Departments)
		return out
	}
	if row.Departments == nil {
		row.Departments = []string{}
	}
	if row.ReportCategories == nil {
		row.ReportCategories = []string{}
	}
	if row.CustomGuideQuestions == nil {
		row.CustomGuideQuestions = []string{}
	}
	sort.Strings(row.Departments)
	return row
}

// List kinds accepted by AddItem/RemoveItem.
const (
	SettingsDepartments    = "departments"
	SettingsCategories     = "report_categories"
	SettingsGuideQuestions = "custom_guide_questions"
)

// AddItem appends a value to one of the settings lists with a server-side
// upsert, so concurrent editors cannot silently overwrite each other's full
// settings document.
func (s *SettingsService) AddItem(ctx context.Context, ownerID, kind, value string) (model.AppSettings, error) {
	return s.mutate(ctx, ownerID, kind, func(list []string) []string {
		for _, v := range list {
			if v == value {
				return list
			}
		}
		return append(list, value)
	})
}

// RemoveItem drops every occurrence of a value from one of the lists.
func (s *SettingsService) RemoveItem(ctx context.Context, ownerID, kind, value string) (model.AppSettings, error) {
	return s.mutate(ctx, ownerID, kind, func(list []string) []string {
		out := make([]string, 0, len(list))
		for _, v := range list {
			if v != value {
				out = append(out, v)
			}
		}
		return out
	})
}

func (s *SettingsService) mutate(ctx context.Context, ownerID, kind string, apply func([]string) []string) (model.AppSettings, error) {
	if ownerID == "" {
		return model.AppSettings{}, fmt.Errorf("owner required")
	}
	var row model.AppSettings
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&row, "user_id = ?", ownerID).Error; err != nil {
			if err != gorm.ErrRecordNotFound {
				return fmt.Errorf("load settings: %w", err)
			}
			row = cloneDefaults()
			row.UserID = ownerID
		}
		switch kind {
		case SettingsDepartments:
			row.Departments = apply(row.Departments)
		case SettingsCategories:
			row.ReportCategories = apply(row.ReportCategories)
		case SettingsGuideQuestions:
			row.CustomGuideQuestions = apply(row.CustomGuideQuestions)
		default:
			return fmt.Errorf("unknown settings list %q", kind)
		}
		row.UpdatedAt = time.Now().UTC()
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	})
	if err != nil {
		return model.AppSettings{}, err
	}
	sort.Strings(row.Departments)
	return row, nil
}

func cloneDefaults() model.AppSettings {
	out := model.AppSettings{
		Departments:          make([]string, len(defaultSettings.Departments)),
		ReportCategories:     make([]string, len(defaultSettings.ReportCategories)),
		CustomGuideQuestions: []string{},
	}
	copy(out.Departments, defaultSettings.Departments)
	copy(out.ReportCategories, defaultSettings.ReportCategories)
	return out
}
