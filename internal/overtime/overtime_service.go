package overtime

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go-checkin/internal/employee"
	overtimeerrors "go-checkin/internal/overtime/errors"
	"go-checkin/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Hours per entry are bounded: a single day cannot credibly contain more.
var maxHoursPerEntry = decimal.NewFromInt(12)

//go:generate mockgen -source=overtime_service.go -destination=mock/overtime_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateOvertimeRequest) (OvertimeResponse, error)
	Approve(ctx context.Context, id, approvedBy string) (OvertimeResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]OvertimeResponse, error)
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
}

func NewService(repo Repository, employeeRepo employee.Repository) Service {
	return &service{repo: repo, employeeRepo: employeeRepo}
}

func (s *service) Create(ctx context.Context, req CreateOvertimeRequest) (OvertimeResponse, error) {
	emp, err := s.employeeRepo.FindByID(ctx, req.EmployeeID)
	if err != nil {
		return OvertimeResponse{}, err
	}
	if !emp.OvertimeEnabled {
		return OvertimeResponse{}, overtimeerrors.ErrOvertimeNotEnabled
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return OvertimeResponse{}, apperror.New(apperror.CodeInvalidInput, "date must be YYYY-MM-DD", http.StatusUnprocessableEntity)
	}

	hours, err := decimal.NewFromString(req.Hours)
	if err != nil {
		return OvertimeResponse{}, apperror.New(apperror.CodeInvalidInput, "hours must be a decimal number", http.StatusUnprocessableEntity)
	}
	if hours.LessThanOrEqual(decimal.Zero) || hours.GreaterThan(maxHoursPerEntry) {
		return OvertimeResponse{}, apperror.New(apperror.CodeInvalidInput, "hours must be between 0 and 12", http.StatusUnprocessableEntity)
	}

	o := &Overtime{
		ID:          uuid.New(),
		EmployeeID:  emp.ID,
		Date:        date,
		Hours:       hours,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return OvertimeResponse{}, err
	}
	return mapToResponse(*o), nil
}

func (s *service) Approve(ctx context.Context, id, approvedBy string) (OvertimeResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OvertimeResponse{}, overtimeerrors.ErrOvertimeNotFound
		}
		return OvertimeResponse{}, err
	}
	if o.Approved {
		return OvertimeResponse{}, overtimeerrors.ErrAlreadyApproved
	}

	o.Approved = true
	o.ApprovedBy = &approvedBy
	if err := s.repo.Update(ctx, o); err != nil {
		return OvertimeResponse{}, err
	}
	return mapToResponse(*o), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]OvertimeResponse, error) {
	rows, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	res := make([]OvertimeResponse, len(rows))
	for i, o := range rows {
		res[i] = mapToResponse(o)
	}
	return res, nil
}

func mapToResponse(o Overtime) OvertimeResponse {
	return OvertimeResponse{
		ID:          o.ID.String(),
		EmployeeID:  o.EmployeeID.String(),
		Date:        o.Date.Format("2006-01-02"),
		Hours:       o.Hours.StringFixed(2),
		Description: o.Description,
		Approved:    o.Approved,
		ApprovedBy:  o.ApprovedBy,
	}
}
