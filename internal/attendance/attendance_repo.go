package attendance

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, m *Movement) error
	LastOnDate(ctx context.Context, employeeID string, date time.Time) (*Movement, error)
	LastEntryBefore(ctx context.Context, employeeID string, before time.Time) (*Movement, error)
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Movement, error)
	ListEntriesOnDate(ctx context.Context, date time.Time) ([]Movement, error)
	ListEntriesBetween(ctx context.Context, from, to time.Time) ([]Movement, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, m *Movement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// LastOnDate is the sequencer's cursor: the (employee_id, movement_date)
// index makes it a point lookup rather than a day rescan.
func (r *repository) LastOnDate(ctx context.Context, employeeID string, date time.Time) (*Movement, error) {
	var m Movement
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("movement_date = ?", date.Format("2006-01-02")).
		Order("recorded_at DESC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// LastEntryBefore is the 24-hour-cycle lookback: the most recent ENTRY
// strictly before the given instant, any date.
func (r *repository) LastEntryBefore(ctx context.Context, employeeID string, before time.Time) (*Movement, error) {
	var m Movement
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("kind = ?", KindEntry).
		Where("recorded_at < ?", before).
		Order("recorded_at DESC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Movement, error) {
	var rows []Movement
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("movement_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("recorded_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListEntriesOnDate(ctx context.Context, date time.Time) ([]Movement, error) {
	var rows []Movement
	err := r.db.WithContext(ctx).
		Where("kind = ?", KindEntry).
		Where("movement_date = ?", date.Format("2006-01-02")).
		Order("recorded_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListEntriesBetween(ctx context.Context, from, to time.Time) ([]Movement, error) {
	var rows []Movement
	err := r.db.WithContext(ctx).
		Where("kind = ?", KindEntry).
		Where("movement_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("recorded_at ASC").
		Find(&rows).Error
	return rows, err
}
