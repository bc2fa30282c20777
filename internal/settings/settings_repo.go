package settings

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	Get(ctx context.Context) (*SystemSettings, error)
	Save(ctx context.Context, s *SystemSettings) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context) (*SystemSettings, error) {
	var s SystemSettings
	err := r.db.WithContext(ctx).First(&s).Error
	return &s, err
}

func (r *repository) Save(ctx context.Context, s *SystemSettings) error {
	s.ID = 1
	return r.db.WithContext(ctx).Save(s).Error
}
