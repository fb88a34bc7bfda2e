package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"workacare/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.Profile, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(req.Password) < 6 {
		return nil, fmt.Errorf("password must have at least 6 characters")
	}
	role := req.Role
	switch role {
	case "":
		role = "operator"
	case "operator", "supervisor":
	default:
		return nil, fmt.Errorf("invalid role %q", role)
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Profile{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	p := model.Profile{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  string(hash),
		FullName:  strings.TrimSpace(req.FullName),
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return &p, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Profile, error) {
	var p model.Profile
	if err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&p).Error; err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(password)) != nil {
		return nil, fmt.Errorf("wrong password")
	}
	return &p, nil
}

func (s *AuthService) GetProfile(ctx context.Context, id string) (*model.Profile, error) {
	var p model.Profile
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("profile not found: %w", err)
	}
	return &p, nil
}
