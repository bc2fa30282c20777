package report

import (
	"context"
	"testing"
	"time"

	"go-checkin/internal/attendance"
	"go-checkin/internal/employee"
	"go-checkin/internal/messaging/kafka/consumer"
	"go-checkin/internal/visitor"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

type fakeVisitorRepo struct {
	visitor.Repository
	visitors []visitor.Visitor
	sessions []visitor.VisitSession
}

func (f *fakeVisitorRepo) SessionsBetween(ctx context.Context, from, to time.Time) ([]visitor.VisitSession, error) {
	return f.sessions, nil
}
func (f *fakeVisitorRepo) FindAll(ctx context.Context) ([]visitor.Visitor, error) {
	return f.visitors, nil
}

func newDashboardRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestDashboard_Today_FromCache(t *testing.T) {
	mr, rdb := newDashboardRedis(t)
	now := day("2026-03-06")

	key := consumer.DashboardCounterKey("2026-03-06")
	mr.HSet(key, "present", "12", "late", "3", "late_minutes", "75")

	svc := NewDashboardService(&fakeAttendanceRepo{}, &fakeEmployeeRepo{}, &fakeVisitorRepo{}, rdb)

	resp, err := svc.Today(context.Background(), now)
	assert.NoError(t, err)
	assert.Equal(t, "cache", resp.Source)
	assert.Equal(t, 12, resp.Present)
	assert.Equal(t, 3, resp.Late)
	assert.Equal(t, 75, resp.TotalLateMinutes)
}

func TestDashboard_Today_LedgerFallback(t *testing.T) {
	_, rdb := newDashboardRedis(t)
	now := day("2026-03-06")

	ana := employee.Employee{ID: uuid.New(), FullName: "Ana Torres", Code: "EMP-001", Active: true}
	attRepo := &fakeAttendanceRepo{
		onDate: []attendance.Movement{
			lateEntry(ana, "2026-03-06", 0),
			lateEntry(ana, "2026-03-06", 30),
		},
	}

	svc := NewDashboardService(attRepo, &fakeEmployeeRepo{employees: []employee.Employee{ana}}, &fakeVisitorRepo{}, rdb)

	resp, err := svc.Today(context.Background(), now)
	assert.NoError(t, err)
	assert.Equal(t, "ledger", resp.Source)
	assert.Equal(t, 2, resp.Present)
	assert.Equal(t, 1, resp.Late)
	assert.Equal(t, 30, resp.TotalLateMinutes)
}

func TestDashboard_Today_IncludesVisits(t *testing.T) {
	_, rdb := newDashboardRedis(t)
	now := day("2026-03-06")

	v := visitor.Visitor{ID: uuid.New(), Name: "Carlos Ruiz", Company: "Acme"}
	entered := time.Date(2026, 3, 6, 10, 30, 0, 0, time.UTC)
	left := entered.Add(time.Hour)

	visitorRepo := &fakeVisitorRepo{
		visitors: []visitor.Visitor{v},
		sessions: []visitor.VisitSession{
			{ID: uuid.New(), VisitorID: v.ID, EnteredAt: entered, LeftAt: &left},
			{ID: uuid.New(), VisitorID: v.ID, EnteredAt: left.Add(time.Hour)},
		},
	}

	svc := NewDashboardService(&fakeAttendanceRepo{}, &fakeEmployeeRepo{}, visitorRepo, rdb)

	resp, err := svc.Today(context.Background(), now)
	assert.NoError(t, err)
	assert.Len(t, resp.Visits, 2)
	assert.Equal(t, "Carlos Ruiz", resp.Visits[0].VisitorName)
	assert.NotNil(t, resp.Visits[0].LeftAt)
	assert.Nil(t, resp.Visits[1].LeftAt, "open session has no departure")
}
