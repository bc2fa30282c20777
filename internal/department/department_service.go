package department

import (
	"context"
	"errors"

	"go-checkin/internal/shared/apperror"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	row := &Department{Name: req.Name, Email: req.Email}
	if err := s.repo.Create(ctx, row); err != nil {
		return DepartmentResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]DepartmentResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentResponse{}, apperror.ErrNotFound
		}
		return DepartmentResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentResponse{}, apperror.ErrNotFound
		}
		return DepartmentResponse{}, err
	}

	if req.Name != nil {
		row.Name = *req.Name
	}
	if req.Email != nil {
		row.Email = *req.Email
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return DepartmentResponse{}, err
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

func mapToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:    d.ID.String(),
		Name:  d.Name,
		Email: d.Email,
	}
}
