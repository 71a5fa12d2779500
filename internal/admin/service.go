package admin

import (
	"context"
	"fmt"

	"github.com/ktmtfamily/family-tree-api/internal/config"
	"github.com/ktmtfamily/family-tree-api/internal/shared/logger"
)

// AdminService checks the single admin credential pair. The username is
// fixed by configuration; the password comes from the settings record when
// one exists, otherwise from the configured default.
type AdminService struct {
	settingsRepository Repository
	username           string
	defaultPassword    string
}

func NewAdminService(settingsRepository Repository, cfg config.AdminConfig) *AdminService {
	return &AdminService{
		settingsRepository: settingsRepository,
		username:           cfg.Username,
		defaultPassword:    cfg.DefaultPassword,
	}
}

// Login reads the settings record on every call so a password change takes
// effect immediately.
func (s *AdminService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	password, err := s.currentPassword(ctx)
	if err != nil {
		log.Error("Admin login failed - settings lookup", "error", err)
		return nil, fmt.Errorf("admin login: %w", err)
	}

	if request.Username != s.username || request.Password != password {
		log.Warn("Admin login failed - invalid credentials")
		return nil, fmt.Errorf("admin login: %w", ErrInvalidAdminCredentials)
	}

	log.Info("Admin login successful")
	return &LoginResponse{
		Message: "Login successful",
		IsAdmin: true,
		Name:    "Admin",
	}, nil
}

// ChangePassword overwrites the admin password. It neither verifies the
// current password nor authenticates the caller.
func (s *AdminService) ChangePassword(ctx context.Context, request *ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := s.settingsRepository.UpsertAdminPassword(ctx, request.NewPassword); err != nil {
		log.Error("Failed to update admin password", "error", err)
		return fmt.Errorf("update admin password: %w", err)
	}

	log.Info("Admin password updated")
	return nil
}

func (s *AdminService) currentPassword(ctx context.Context) (string, error) {
	stored, found, err := s.settingsRepository.FindAdminPassword(ctx)
	if err != nil {
		return "", err
	}
	if !found {
		return s.defaultPassword, nil
	}
	return stored, nil
}
