package checkin

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-checkin/internal/attendance"
	checkinerrors "go-checkin/internal/checkin/errors"
	"go-checkin/internal/employee"
	"go-checkin/internal/visitor"
	visitorerrors "go-checkin/internal/visitor/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// scanLockTTL bounds how long a badge stays locked if a scan crashes
// mid-flight. Kiosk double-reads arrive within a second or two.
const scanLockTTL = 5 * time.Second

//go:generate mockgen -source=checkin_service.go -destination=mock/checkin_service_mock.go -package=mock
type Service interface {
	Scan(ctx context.Context, code string) (ScanResponse, error)
}

type service struct {
	employeeRepo employee.Repository
	attendance   attendance.Service
	visitors     visitor.Service
	redis        *redis.Client
	logger       *zap.Logger
}

func NewService(employeeRepo employee.Repository, attendanceSvc attendance.Service, visitorSvc visitor.Service, redisClient *redis.Client) Service {
	return &service{
		employeeRepo: employeeRepo,
		attendance:   attendanceSvc,
		visitors:     visitorSvc,
		redis:        redisClient,
		logger:       zap.L().Named("checkin.service"),
	}
}

// Scan resolves a scanned code to a badge holder and applies the matching
// movement. Visitor badges carry the VISITOR: prefix in the QR payload;
// anything else is tried as an employee token.
func (s *service) Scan(ctx context.Context, code string) (ScanResponse, error) {
	now := time.Now()
	code = strings.TrimSpace(code)

	if token, ok := strings.CutPrefix(code, visitor.VisitorTokenPrefix); ok {
		return s.scanVisitor(ctx, token, now)
	}
	return s.scanEmployee(ctx, code, now)
}

func (s *service) scanEmployee(ctx context.Context, token string, now time.Time) (ScanResponse, error) {
	// qr_token is a uuid column. A kiosk scanner reads whatever is put in
	// front of it (URLs, wifi codes), so reject malformed tokens here
	// instead of letting Postgres bounce the cast.
	if _, err := uuid.Parse(token); err != nil {
		return ScanResponse{}, checkinerrors.ErrUnknownCode
	}

	emp, err := s.employeeRepo.FindActiveByQRToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ScanResponse{}, checkinerrors.ErrUnknownCode
		}
		return ScanResponse{}, err
	}

	// Kiosk scanners fire twice per badge more often than not. The lock
	// serializes scans per employee so the second read sees the first
	// movement instead of racing it.
	unlock, err := s.acquireScanLock(ctx, emp.ID.String())
	if err != nil {
		return ScanResponse{}, err
	}
	defer unlock()

	movement, err := s.attendance.RecordScan(ctx, emp, now)
	if err != nil {
		return ScanResponse{}, err
	}
	return ScanResponse{Type: "EMPLOYEE", Movement: &movement}, nil
}

func (s *service) scanVisitor(ctx context.Context, token string, now time.Time) (ScanResponse, error) {
	if _, err := uuid.Parse(token); err != nil {
		return ScanResponse{}, checkinerrors.ErrUnknownCode
	}

	v, err := s.visitors.ResolveByQRToken(ctx, token)
	if err != nil {
		if errors.Is(err, visitorerrors.ErrVisitorNotFound) {
			return ScanResponse{}, checkinerrors.ErrUnknownCode
		}
		return ScanResponse{}, err
	}

	visit, err := s.visitors.Toggle(ctx, v, now)
	if err != nil {
		return ScanResponse{}, err
	}
	return ScanResponse{Type: "VISITOR", Visit: &visit}, nil
}

func (s *service) acquireScanLock(ctx context.Context, employeeID string) (func(), error) {
	key := "checkin:scan_lock:" + employeeID

	ok, err := s.redis.SetNX(ctx, key, "1", scanLockTTL).Result()
	if err != nil {
		// Redis being down must not take the kiosk down with it; the race
		// window reopens but scans keep working.
		s.logger.Warn("scan lock unavailable", zap.Error(err))
		return func() {}, nil
	}
	if !ok {
		return nil, checkinerrors.ErrScanInProgress
	}

	return func() {
		if err := s.redis.Del(context.WithoutCancel(ctx), key).Err(); err != nil {
			s.logger.Warn("release scan lock", zap.Error(err), zap.String("employee_id", employeeID))
		}
	}, nil
}
