package attendance

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-checkin/internal/employee"
	"go-checkin/internal/events"
	"go-checkin/internal/messaging/kafka"
	"go-checkin/internal/schedule"
	"go-checkin/internal/settings"
	"go-checkin/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeRepo struct {
	Repository
	created         []Movement
	lastOnDateFn    func(ctx context.Context, employeeID string, date time.Time) (*Movement, error)
	lastEntryFn     func(ctx context.Context, employeeID string, before time.Time) (*Movement, error)
	listByBetweenFn func(ctx context.Context, employeeID string, from, to time.Time) ([]Movement, error)
}

func (f *fakeRepo) WithTx(tx *gorm.DB) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, m *Movement) error {
	f.created = append(f.created, *m)
	return nil
}
func (f *fakeRepo) LastOnDate(ctx context.Context, employeeID string, date time.Time) (*Movement, error) {
	return f.lastOnDateFn(ctx, employeeID, date)
}
func (f *fakeRepo) LastEntryBefore(ctx context.Context, employeeID string, before time.Time) (*Movement, error) {
	return f.lastEntryFn(ctx, employeeID, before)
}
func (f *fakeRepo) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Movement, error) {
	return f.listByBetweenFn(ctx, employeeID, from, to)
}

type fakeSettingsRepo struct {
	settings *settings.SystemSettings
	err      error
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*settings.SystemSettings, error) {
	return f.settings, f.err
}
func (f *fakeSettingsRepo) Save(ctx context.Context, s *settings.SystemSettings) error { return nil }

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error                  { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gdb, mock
}

func testEmployee(sched *schedule.ScheduleType) *employee.Employee {
	return &employee.Employee{
		ID:           uuid.New(),
		FullName:     "Ana Torres",
		Code:         "EMP-001",
		ScheduleType: sched,
		Active:       true,
	}
}

func TestService_RecordScan_FirstEntryOnTime(t *testing.T) {
	gdb, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeRepo{
		lastOnDateFn: func(ctx context.Context, employeeID string, date time.Time) (*Movement, error) {
			return nil, nil
		},
	}
	outbox := &fakeOutbox{}
	svc := NewService(gdb, repo, &fakeSettingsRepo{}, outbox)

	emp := testEmployee(mealSchedule())
	resp, err := svc.RecordScan(context.Background(), emp, at("09:10"))
	assert.NoError(t, err)
	assert.Equal(t, KindEntry, resp.Kind)
	assert.False(t, resp.Late)
	assert.Zero(t, resp.LateMinutes)
	assert.Equal(t, "09:10:00", resp.Time)

	assert.Len(t, repo.created, 1)
	assert.Len(t, outbox.created, 1)
	assert.Equal(t, events.MovementRecordedTopic, outbox.created[0].Topic)

	var event events.MovementRecordedEvent
	assert.NoError(t, json.Unmarshal(outbox.created[0].Payload, &event))
	assert.Equal(t, "movement.recorded", event.EventType)
	assert.Equal(t, KindEntry, event.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_RecordScan_LateEntry(t *testing.T) {
	gdb, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeRepo{
		lastOnDateFn: func(ctx context.Context, employeeID string, date time.Time) (*Movement, error) {
			return nil, nil
		},
	}
	svc := NewService(gdb, repo, &fakeSettingsRepo{}, &fakeOutbox{})

	resp, err := svc.RecordScan(context.Background(), testEmployee(mealSchedule()), at("09:20"))
	assert.NoError(t, err)
	assert.True(t, resp.Late)
	assert.Equal(t, 20, resp.LateMinutes)
}

func TestService_RecordScan_FallsBackToSystemDefault(t *testing.T) {
	gdb, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeRepo{
		lastOnDateFn: func(ctx context.Context, employeeID string, date time.Time) (*Movement, error) {
			return nil, nil
		},
	}
	settingsRepo := &fakeSettingsRepo{settings: &settings.SystemSettings{ExpectedEntry: "08:00:00", ToleranceMinutes: 5}}
	svc := NewService(gdb, repo, settingsRepo, &fakeOutbox{})

	resp, err := svc.RecordScan(context.Background(), testEmployee(nil), at("08:30"))
	assert.NoError(t, err)
	assert.True(t, resp.Late)
	assert.Equal(t, 30, resp.LateMinutes)
}

func TestService_RecordScan_NoPolicyRecordsOnTime(t *testing.T) {
	gdb, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeRepo{
		lastOnDateFn: func(ctx context.Context, employeeID string, date time.Time) (*Movement, error) {
			return nil, nil
		},
	}
	settingsRepo := &fakeSettingsRepo{err: gorm.ErrRecordNotFound}
	svc := NewService(gdb, repo, settingsRepo, &fakeOutbox{})

	resp, err := svc.RecordScan(context.Background(), testEmployee(nil), at("11:00"))
	assert.NoError(t, err)
	assert.Equal(t, KindEntry, resp.Kind)
	assert.False(t, resp.Late)
}

func TestService_RecordScan_ExitSkipsLatenessEvaluation(t *testing.T) {
	gdb, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeRepo{
		lastOnDateFn: func(ctx context.Context, employeeID string, date time.Time) (*Movement, error) {
			return movement(KindEntry), nil
		},
	}
	svc := NewService(gdb, repo, &fakeSettingsRepo{err: gorm.ErrRecordNotFound}, &fakeOutbox{})

	resp, err := svc.RecordScan(context.Background(), testEmployee(noMealSchedule()), at("17:00"))
	assert.NoError(t, err)
	assert.Equal(t, KindExit, resp.Kind)
	assert.False(t, resp.Late)
}

func TestService_RecordScan_MealExitOutsideWindowWritesNothing(t *testing.T) {
	gdb, mock := newTestDB(t)

	repo := &fakeRepo{
		lastOnDateFn: func(ctx context.Context, employeeID string, date time.Time) (*Movement, error) {
			return movement(KindEntry), nil
		},
	}
	outbox := &fakeOutbox{}
	svc := NewService(gdb, repo, &fakeSettingsRepo{}, outbox)

	_, err := svc.RecordScan(context.Background(), testEmployee(mealSchedule()), at("16:00"))
	assert.Error(t, err)
	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, apperror.CodeOutsideMealWindow, httpErr.Code)

	assert.Empty(t, repo.created)
	assert.Empty(t, outbox.created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_RecordScan_24HourCycle(t *testing.T) {
	priorAt := at("08:00").Add(-51 * time.Hour)

	cases := []struct {
		name        string
		prior       *Movement
		late        bool
		lateMinutes int
	}{
		{"first ever entry", nil, false, 0},
		{"late re-entry", &Movement{Kind: KindEntry, RecordedAt: priorAt}, true, 180},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gdb, mock := newTestDB(t)
			mock.ExpectBegin()
			mock.ExpectCommit()

			repo := &fakeRepo{
				lastOnDateFn: func(ctx context.Context, employeeID string, date time.Time) (*Movement, error) {
					return nil, nil
				},
				lastEntryFn: func(ctx context.Context, employeeID string, before time.Time) (*Movement, error) {
					return tc.prior, nil
				},
			}
			svc := NewService(gdb, repo, &fakeSettingsRepo{}, &fakeOutbox{})

			resp, err := svc.RecordScan(context.Background(), testEmployee(shift24Schedule()), at("08:00"))
			assert.NoError(t, err)
			assert.Equal(t, KindEntry, resp.Kind)
			assert.Equal(t, tc.late, resp.Late)
			assert.Equal(t, tc.lateMinutes, resp.LateMinutes)
		})
	}
}

func TestService_GetByEmployee(t *testing.T) {
	gdb, _ := newTestDB(t)
	empID := uuid.New()

	repo := &fakeRepo{
		listByBetweenFn: func(ctx context.Context, employeeID string, from, to time.Time) ([]Movement, error) {
			return []Movement{{
				ID:         uuid.New(),
				EmployeeID: empID,
				Date:       at("09:10"),
				TimeOfDay:  "09:10:00",
				Kind:       KindEntry,
				RecordedAt: at("09:10"),
			}}, nil
		},
	}
	svc := NewService(gdb, repo, &fakeSettingsRepo{}, &fakeOutbox{})

	rows, err := svc.GetByEmployee(context.Background(), empID.String(), at("00:00"), at("23:59"))
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "2026-03-02", rows[0].Date)
	assert.Equal(t, KindEntry, rows[0].Kind)
}

func TestService_GetByEmployee_InvalidID(t *testing.T) {
	gdb, _ := newTestDB(t)
	svc := NewService(gdb, &fakeRepo{}, &fakeSettingsRepo{}, &fakeOutbox{})

	_, err := svc.GetByEmployee(context.Background(), "not-a-uuid", at("00:00"), at("23:59"))
	assert.Error(t, err)
}
