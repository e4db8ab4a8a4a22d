package service

import (
	"github.com/rs/zerolog/log"

	"github.com/naebak/banner-backend/internal/domain"
	"github.com/naebak/banner-backend/internal/repository"
)

// SettingService exposes the database-backed policy settings
type SettingService interface {
	Get(key string) (*domain.BannerSetting, error)
	List(actor Actor) ([]*domain.BannerSetting, error)
	Update(actor Actor, key, value string) error

	// Typed lookups with fallbacks for absent or malformed rows
	BoolSetting(key string, fallback bool) bool
	IntSetting(key string, fallback int) int
	StringSetting(key, fallback string) string
}

type settingService struct {
	repo        repository.SettingRepository
	permissions PermissionService
}

// NewSettingService creates a new SettingService
func NewSettingService(repo repository.SettingRepository, permissions PermissionService) SettingService {
	return &settingService{repo: repo, permissions: permissions}
}

// Get returns one setting row
func (s *settingService) Get(key string) (*domain.BannerSetting, error) {
	return s.repo.FindByKey(key)
}

// List returns every setting, restricted to settings managers
func (s *settingService) List(actor Actor) ([]*domain.BannerSetting, error) {
	if err := s.permissions.Check(actor.UserID, actor.UserType, domain.ActionManageSettings); err != nil {
		return nil, err
	}
	return s.repo.List()
}

// Update changes a setting value, restricted to settings managers
func (s *settingService) Update(actor Actor, key, value string) error {
	if err := s.permissions.Check(actor.UserID, actor.UserType, domain.ActionManageSettings); err != nil {
		return err
	}
	if err := s.repo.UpdateValue(key, value); err != nil {
		return err
	}
	log.Info().Str("key", key).Int64("admin_id", actor.UserID).Msg("banner setting updated")
	return nil
}

// BoolSetting reads a boolean setting with a fallback
func (s *settingService) BoolSetting(key string, fallback bool) bool {
	row, err := s.repo.FindByKey(key)
	if err != nil {
		return fallback
	}
	return row.BoolValue(fallback)
}

// IntSetting reads an integer setting with a fallback
func (s *settingService) IntSetting(key string, fallback int) int {
	row, err := s.repo.FindByKey(key)
	if err != nil {
		return fallback
	}
	return row.IntValue(fallback)
}

// StringSetting reads a string setting with a fallback
func (s *settingService) StringSetting(key, fallback string) string {
	row, err := s.repo.FindByKey(key)
	if err != nil || row.Value == "" {
		return fallback
	}
	return row.Value
}
