package schedule

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, s *ScheduleType) error
	FindAll(ctx context.Context) ([]ScheduleType, error)
	FindByID(ctx context.Context, id string) (*ScheduleType, error)
	Update(ctx context.Context, s *ScheduleType) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *ScheduleType) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAll(ctx context.Context) ([]ScheduleType, error) {
	var rows []ScheduleType
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*ScheduleType, error) {
	var s ScheduleType
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) Update(ctx context.Context, s *ScheduleType) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&ScheduleType{}, "id = ?", id).Error
}
