package overtime

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=overtime_repo.go -destination=mock/overtime_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, o *Overtime) error
	FindByID(ctx context.Context, id string) (*Overtime, error)
	Update(ctx context.Context, o *Overtime) error
	FindByEmployee(ctx context.Context, employeeID string) ([]Overtime, error)
	FindApprovedBetween(ctx context.Context, from, to time.Time) ([]Overtime, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, o *Overtime) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Overtime, error) {
	var o Overtime
	err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) Update(ctx context.Context, o *Overtime) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]Overtime, error) {
	var rows []Overtime
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindApprovedBetween(ctx context.Context, from, to time.Time) ([]Overtime, error) {
	var rows []Overtime
	err := r.db.WithContext(ctx).
		Where("approved = TRUE AND date >= ? AND date <= ?", from, to).
		Order("employee_id, date ASC").
		Find(&rows).Error
	return rows, err
}
