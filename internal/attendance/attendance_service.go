package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	atterrors "go-checkin/internal/attendance/errors"
	"go-checkin/internal/employee"
	"go-checkin/internal/events"
	"go-checkin/internal/messaging/kafka"
	"go-checkin/internal/settings"
	"go-checkin/internal/shared/clock"
	"go-checkin/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	RecordScan(ctx context.Context, emp *employee.Employee, now time.Time) (MovementResponse, error)
	GetByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]MovementResponse, error)
}

type service struct {
	db           *gorm.DB
	repo         Repository
	settingsRepo settings.Repository
	outbox       kafka.OutboxRepository
	logger       *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, settingsRepo settings.Repository, outboxRepo kafka.OutboxRepository) Service {
	return &service{
		db:           db,
		repo:         repo,
		settingsRepo: settingsRepo,
		outbox:       outboxRepo,
		logger:       zap.L().Named("attendance.service"),
	}
}

// RecordScan turns one kiosk scan into one ledger row. The sequencer decides
// the movement kind from the last movement of the day; entries additionally
// get their lateness computed, once, before the row is written. A rejection
// (meal window, unknown schedule state) writes nothing.
func (s *service) RecordScan(ctx context.Context, emp *employee.Employee, now time.Time) (MovementResponse, error) {
	lastToday, err := s.repo.LastOnDate(ctx, emp.ID.String(), now)
	if err != nil {
		return MovementResponse{}, err
	}

	kind, err := NextMovement(emp.ScheduleType, lastToday, now)
	if err != nil {
		return MovementResponse{}, err
	}

	row := &Movement{
		ID:         uuid.New(),
		EmployeeID: emp.ID,
		Date:       now,
		TimeOfDay:  clock.FormatHHMMSS(clock.SecondOfDay(now)),
		Kind:       kind,
		RecordedAt: now,
	}

	if kind == KindEntry {
		row.Late, row.LateMinutes, err = s.evaluateLateness(ctx, emp, now)
		if err != nil {
			return MovementResponse{}, err
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
			return err
		}
		return s.enqueueRecordedEvent(ctx, tx, row)
	})
	if err != nil {
		return MovementResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) evaluateLateness(ctx context.Context, emp *employee.Employee, now time.Time) (bool, int, error) {
	if emp.ScheduleType != nil && emp.ScheduleType.Is24HourShift {
		prior, err := s.repo.LastEntryBefore(ctx, emp.ID.String(), now)
		if err != nil {
			return false, 0, err
		}
		var priorAt *time.Time
		if prior != nil {
			priorAt = &prior.RecordedAt
		}
		late, minutes := EvaluateCycleEntry(priorAt, now)
		return late, minutes, nil
	}

	defaults, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, err
		}
		defaults = nil
	}

	policy, err := ResolveEntryPolicy(emp.ScheduleType, defaults)
	if err != nil {
		if errors.Is(err, atterrors.ErrConfigurationMissing) {
			// Configuration defect, not a user error: fail closed to
			// on-time and make the gap visible to operators instead of
			// baking a guess into business data.
			contextutil.GetLogger(ctx, s.logger).Error("no entry policy resolvable, recording entry as on time",
				zap.String("employee_id", emp.ID.String()),
			)
			return false, 0, nil
		}
		return false, 0, err
	}

	late, minutes := EvaluateEntry(now, policy)
	return late, minutes, nil
}

func (s *service) enqueueRecordedEvent(ctx context.Context, tx *gorm.DB, row *Movement) error {
	event := events.MovementRecordedEvent{
		EventType:   "movement.recorded",
		MovementID:  row.ID.String(),
		EmployeeID:  row.EmployeeID.String(),
		Date:        row.Date.Format("2006-01-02"),
		Kind:        row.Kind,
		Late:        row.Late,
		LateMinutes: row.LateMinutes,
		OccurredAt:  row.RecordedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "movement",
		AggregateID:   row.ID.String(),
		EventType:     event.EventType,
		Topic:         events.MovementRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]MovementResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, errors.New("invalid employee id")
	}
	rows, err := s.repo.ListByEmployeeBetween(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	res := make([]MovementResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func mapToResponse(m Movement) MovementResponse {
	return MovementResponse{
		ID:          m.ID.String(),
		EmployeeID:  m.EmployeeID.String(),
		Date:        m.Date.Format("2006-01-02"),
		Time:        m.TimeOfDay,
		Kind:        m.Kind,
		Late:        m.Late,
		LateMinutes: m.LateMinutes,
	}
}
