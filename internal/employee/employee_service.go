package employee

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	emperrors "go-checkin/internal/employee/errors"
	"go-checkin/internal/events"
	"go-checkin/internal/messaging/kafka"
	"go-checkin/internal/shared/apperror"
	"go-checkin/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const OptionsCacheKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, outboxRepo kafka.OutboxRepository, rdb *redis.Client) Service {
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: zap.L().Named("employee.service"),
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	exists, err := s.repo.CodeExists(ctx, req.Code)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if exists {
		return EmployeeResponse{}, emperrors.ErrDuplicateCode
	}

	row := &Employee{
		FullName:        req.FullName,
		Email:           req.Email,
		Code:            req.Code,
		QRToken:         uuid.New(),
		OvertimeEnabled: req.OvertimeEnabled,
		Active:          true,
	}

	if req.DepartmentID != nil {
		id, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			return EmployeeResponse{}, apperror.New(apperror.CodeInvalidInput, "department_id is not a valid id", 400)
		}
		row.DepartmentID = &id
	}
	if req.ScheduleTypeID != nil {
		id, err := uuid.Parse(*req.ScheduleTypeID)
		if err != nil {
			return EmployeeResponse{}, apperror.New(apperror.CodeInvalidInput, "schedule_type_id is not a valid id", 400)
		}
		row.ScheduleTypeID = &id
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
			return err
		}

		event := events.EmployeeCreatedEvent{
			EventType:  "employee.created",
			EmployeeID: row.ID.String(),
			Code:       row.Code,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     contextutil.GetRequestID(ctx),
			AggregateType: "employee",
			AggregateID:   row.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("employee created",
		zap.String("employee_id", row.ID.String()),
		zap.String("code", row.Code),
		zap.String("request_id", contextutil.GetRequestID(ctx)),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(rows), nil
}

// GetOptions serves the lightweight employee listing used by back-office
// dropdowns. It is read often and changes rarely, so it is cached in Redis
// with singleflight guarding the rebuild.
func (s *service) GetOptions(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var res []EmployeeResponse
			if err := json.Unmarshal([]byte(cached), &res); err == nil {
				return res, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindAllActive(ctx)
		if err != nil {
			return nil, err
		}
		res := mapAll(rows)

		if s.rdb != nil {
			if payload, err := json.Marshal(res); err == nil {
				if err := s.rdb.Set(ctx, OptionsCacheKey, payload, 5*time.Minute).Err(); err != nil {
					s.logger.Warn("cache employee options failed", zap.Error(err))
				}
			}
		}
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, emperrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, emperrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	if req.FullName != nil {
		row.FullName = *req.FullName
	}
	if req.Email != nil {
		row.Email = *req.Email
	}
	if req.DepartmentID != nil {
		depID, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			return EmployeeResponse{}, apperror.New(apperror.CodeInvalidInput, "department_id is not a valid id", 400)
		}
		row.DepartmentID = &depID
	}
	if req.ScheduleTypeID != nil {
		schedID, err := uuid.Parse(*req.ScheduleTypeID)
		if err != nil {
			return EmployeeResponse{}, apperror.New(apperror.CodeInvalidInput, "schedule_type_id is not a valid id", 400)
		}
		row.ScheduleTypeID = &schedID
	}
	if req.OvertimeEnabled != nil {
		row.OvertimeEnabled = *req.OvertimeEnabled
	}
	if req.Active != nil {
		row.Active = *req.Active
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return emperrors.ErrEmployeeNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateOptionsCache(ctx)
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Warn("invalidate employee options cache failed", zap.Error(err))
	}
}

func mapAll(rows []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:              e.ID.String(),
		FullName:        e.FullName,
		Email:           e.Email,
		Code:            e.Code,
		QRToken:         e.QRToken.String(),
		OvertimeEnabled: e.OvertimeEnabled,
		Active:          e.Active,
	}
	if e.DepartmentID != nil {
		v := e.DepartmentID.String()
		resp.DepartmentID = &v
	}
	if e.ScheduleTypeID != nil {
		v := e.ScheduleTypeID.String()
		resp.ScheduleTypeID = &v
	}
	return resp
}
