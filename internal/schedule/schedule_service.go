package schedule

import (
	"context"
	"errors"
	"net/http"

	"go-checkin/internal/shared/apperror"
	"go-checkin/internal/shared/clock"

	"gorm.io/gorm"
)

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateScheduleTypeRequest) (ScheduleTypeResponse, error)
	GetAll(ctx context.Context) ([]ScheduleTypeResponse, error)
	GetByID(ctx context.Context, id string) (ScheduleTypeResponse, error)
	Update(ctx context.Context, id string, req UpdateScheduleTypeRequest) (ScheduleTypeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateScheduleTypeRequest) (ScheduleTypeResponse, error) {
	row := &ScheduleType{
		Name:             req.Name,
		Is24HourShift:    req.Is24HourShift,
		ExpectedEntry:    req.ExpectedEntry,
		ToleranceMinutes: req.ToleranceMinutes,
		HasMealBreak:     req.HasMealBreak,
		MealWindowStart:  req.MealWindowStart,
		MealWindowEnd:    req.MealWindowEnd,
		Active:           true,
	}

	if err := validate(row); err != nil {
		return ScheduleTypeResponse{}, err
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return ScheduleTypeResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]ScheduleTypeResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]ScheduleTypeResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ScheduleTypeResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ScheduleTypeResponse{}, apperror.ErrNotFound
		}
		return ScheduleTypeResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateScheduleTypeRequest) (ScheduleTypeResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ScheduleTypeResponse{}, apperror.ErrNotFound
		}
		return ScheduleTypeResponse{}, err
	}

	if req.Name != nil {
		row.Name = *req.Name
	}
	if req.Is24HourShift != nil {
		row.Is24HourShift = *req.Is24HourShift
	}
	if req.ExpectedEntry != nil {
		row.ExpectedEntry = req.ExpectedEntry
	}
	if req.ToleranceMinutes != nil {
		row.ToleranceMinutes = *req.ToleranceMinutes
	}
	if req.HasMealBreak != nil {
		row.HasMealBreak = *req.HasMealBreak
	}
	if req.MealWindowStart != nil {
		row.MealWindowStart = req.MealWindowStart
	}
	if req.MealWindowEnd != nil {
		row.MealWindowEnd = req.MealWindowEnd
	}
	if req.Active != nil {
		row.Active = *req.Active
	}

	if err := validate(row); err != nil {
		return ScheduleTypeResponse{}, err
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return ScheduleTypeResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

// validate enforces the schedule invariants: a meal break needs both window
// bounds in order, a standard shift needs an expected entry time, and the
// 24-hour variant uses neither.
func validate(s *ScheduleType) error {
	if s.ToleranceMinutes < 0 {
		return apperror.New(apperror.CodeInvalidInput, "tolerance_minutes must not be negative", http.StatusBadRequest)
	}

	if s.Is24HourShift {
		return nil
	}

	if s.ExpectedEntry == nil {
		return apperror.New(apperror.CodeInvalidInput, "expected_entry is required for non 24-hour schedules", http.StatusBadRequest)
	}
	if _, err := clock.ParseTimeOfDay(*s.ExpectedEntry); err != nil {
		return apperror.New(apperror.CodeInvalidInput, "expected_entry is not a valid time of day", http.StatusBadRequest)
	}

	if !s.HasMealBreak {
		return nil
	}

	if s.MealWindowStart == nil || s.MealWindowEnd == nil {
		return apperror.New(apperror.CodeInvalidInput, "meal_window_start and meal_window_end are required when has_meal_break is set", http.StatusBadRequest)
	}
	start, err := clock.ParseTimeOfDay(*s.MealWindowStart)
	if err != nil {
		return apperror.New(apperror.CodeInvalidInput, "meal_window_start is not a valid time of day", http.StatusBadRequest)
	}
	end, err := clock.ParseTimeOfDay(*s.MealWindowEnd)
	if err != nil {
		return apperror.New(apperror.CodeInvalidInput, "meal_window_end is not a valid time of day", http.StatusBadRequest)
	}
	if start >= end {
		return apperror.New(apperror.CodeInvalidInput, "meal_window_start must be before meal_window_end", http.StatusBadRequest)
	}

	return nil
}

func mapToResponse(s ScheduleType) ScheduleTypeResponse {
	return ScheduleTypeResponse{
		ID:               s.ID.String(),
		Name:             s.Name,
		Is24HourShift:    s.Is24HourShift,
		ExpectedEntry:    s.ExpectedEntry,
		ToleranceMinutes: s.ToleranceMinutes,
		HasMealBreak:     s.HasMealBreak,
		MealWindowStart:  s.MealWindowStart,
		MealWindowEnd:    s.MealWindowEnd,
		Active:           s.Active,
	}
}
