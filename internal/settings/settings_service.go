package settings

import (
	"context"
	"errors"
	"net/http"

	"go-checkin/internal/shared/apperror"
	"go-checkin/internal/shared/clock"

	"gorm.io/gorm"
)

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context) (SettingsResponse, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context) (SettingsResponse, error) {
	row, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SettingsResponse{}, apperror.New(
				apperror.CodeConfigurationMissing,
				"System settings have not been configured",
				http.StatusInternalServerError,
			)
		}
		return SettingsResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error) {
	row, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return SettingsResponse{}, err
		}
		row = &SystemSettings{ExpectedEntry: "09:00:00", ToleranceMinutes: 15}
	}

	if req.ExpectedEntry != nil {
		if _, err := clock.ParseTimeOfDay(*req.ExpectedEntry); err != nil {
			return SettingsResponse{}, apperror.New(apperror.CodeInvalidInput, "expected_entry is not a valid time of day", http.StatusBadRequest)
		}
		row.ExpectedEntry = *req.ExpectedEntry
	}
	if req.ToleranceMinutes != nil {
		if *req.ToleranceMinutes < 0 {
			return SettingsResponse{}, apperror.New(apperror.CodeInvalidInput, "tolerance_minutes must not be negative", http.StatusBadRequest)
		}
		row.ToleranceMinutes = *req.ToleranceMinutes
	}
	if req.ManagerEmail != nil {
		row.ManagerEmail = *req.ManagerEmail
	}
	if req.ReportArchiveDir != nil {
		row.ReportArchiveDir = *req.ReportArchiveDir
	}

	if err := s.repo.Save(ctx, row); err != nil {
		return SettingsResponse{}, err
	}
	return mapToResponse(*row), nil
}

func mapToResponse(s SystemSettings) SettingsResponse {
	return SettingsResponse{
		ExpectedEntry:    s.ExpectedEntry,
		ToleranceMinutes: s.ToleranceMinutes,
		ManagerEmail:     s.ManagerEmail,
		ReportArchiveDir: s.ReportArchiveDir,
	}
}
