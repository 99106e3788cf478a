package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"exam-seating/internal/data/entity"
	"exam-seating/internal/data/repository"
	"exam-seating/internal/dto/request"
	"exam-seating/internal/dto/response"
	"exam-seating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	email := strings.ToLower(req.Email)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	admin := &entity.Admin{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Email:        email,
		PasswordHash: hash,
		Active:       true,
	}

	// Insert is a no-op when the email already exists, matching the
	// register-or-ignore behaviour of the admin bootstrap flow.
	if err := s.repo.Admin.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}

	token, err := utils.NewAdminToken(s.config.JWT.Secret, email, s.config.JWT.ExpiryHours)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("failed to issue token")
	}

	s.log.Info("Admin registered", zap.String("email", email))

	return &response.AuthResponse{Email: email, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	email := strings.ToLower(req.Email)

	admin, err := s.repo.Admin.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if admin == nil || !utils.CheckPassword(admin.PasswordHash, req.Password) {
		s.log.Warn("Invalid login attempt", zap.String("email", email))
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := utils.NewAdminToken(s.config.JWT.Secret, admin.Email, s.config.JWT.ExpiryHours)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("failed to issue token")
	}

	s.log.Info("Admin logged in", zap.String("email", email))

	return &response.AuthResponse{Email: admin.Email, Token: token}, nil
}
