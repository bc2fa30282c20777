package report

import (
	"context"
	"strconv"
	"time"

	"go-checkin/internal/attendance"
	"go-checkin/internal/employee"
	"go-checkin/internal/messaging/kafka/consumer"
	"go-checkin/internal/visitor"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type DashboardService interface {
	Today(ctx context.Context, now time.Time) (DashboardResponse, error)
}

type dashboardService struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	visitorRepo    visitor.Repository
	redis          *redis.Client
	logger         *zap.Logger
}

func NewDashboardService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	visitorRepo visitor.Repository,
	redisClient *redis.Client,
) DashboardService {
	return &dashboardService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		visitorRepo:    visitorRepo,
		redis:          redisClient,
		logger:         zap.L().Named("report.dashboard"),
	}
}

// Today assembles the live back-office view: today's entry totals, employees
// on a late streak, and today's visitor sessions. Totals come from the
// counters the movement consumer keeps in Redis; when those are missing or
// Redis is down the ledger is recounted directly.
func (s *dashboardService) Today(ctx context.Context, now time.Time) (DashboardResponse, error) {
	date := now.Format("2006-01-02")
	resp := DashboardResponse{Date: date}

	resp.Present, resp.Late, resp.TotalLateMinutes, resp.Source = s.todayTotals(ctx, now, date)

	employees := map[string]employee.Employee{}
	if all, err := s.employeeRepo.FindAllActive(ctx); err == nil {
		for _, e := range all {
			employees[e.ID.String()] = e
		}
	} else {
		return DashboardResponse{}, err
	}

	repeat, err := repeatLateOffenders(ctx, s.attendanceRepo, employees, now)
	if err != nil {
		return DashboardResponse{}, err
	}
	for _, r := range repeat {
		resp.RepeatLate = append(resp.RepeatLate, RepeatLateItem{
			Name:             r.Name,
			Code:             r.Code,
			LateCount:        r.LateCount,
			TotalLateMinutes: r.TotalLateMinutes,
		})
	}

	visits, err := s.todayVisits(ctx, now)
	if err != nil {
		return DashboardResponse{}, err
	}
	resp.Visits = visits

	return resp, nil
}

func (s *dashboardService) todayTotals(ctx context.Context, now time.Time, date string) (present, late, lateMinutes int, source string) {
	counters, err := s.redis.HGetAll(ctx, consumer.DashboardCounterKey(date)).Result()
	if err == nil && len(counters) > 0 {
		present, _ = strconv.Atoi(counters["present"])
		late, _ = strconv.Atoi(counters["late"])
		lateMinutes, _ = strconv.Atoi(counters["late_minutes"])
		return present, late, lateMinutes, "cache"
	}
	if err != nil {
		s.logger.Warn("dashboard counters unavailable, falling back to ledger", zap.Error(err))
	}

	entries, err := s.attendanceRepo.ListEntriesOnDate(ctx, now)
	if err != nil {
		s.logger.Error("ledger fallback failed", zap.Error(err))
		return 0, 0, 0, "ledger"
	}
	for _, m := range entries {
		present++
		if m.Late {
			late++
			lateMinutes += m.LateMinutes
		}
	}
	return present, late, lateMinutes, "ledger"
}

func (s *dashboardService) todayVisits(ctx context.Context, now time.Time) ([]VisitItem, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1).Add(-time.Nanosecond)

	sessions, err := s.visitorRepo.SessionsBetween(ctx, startOfDay, endOfDay)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, nil
	}

	visitors, err := s.visitorRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]visitor.Visitor, len(visitors))
	for _, v := range visitors {
		byID[v.ID.String()] = v
	}

	items := make([]VisitItem, 0, len(sessions))
	for _, sess := range sessions {
		v := byID[sess.VisitorID.String()]
		item := VisitItem{
			VisitorName: v.Name,
			Company:     v.Company,
			EnteredAt:   sess.EnteredAt.Format(time.RFC3339),
		}
		if sess.LeftAt != nil {
			left := sess.LeftAt.Format(time.RFC3339)
			item.LeftAt = &left
		}
		items = append(items, item)
	}
	return items, nil
}
