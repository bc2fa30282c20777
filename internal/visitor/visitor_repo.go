package visitor

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=visitor_repo.go -destination=mock/visitor_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, v *Visitor) error
	Update(ctx context.Context, v *Visitor) error
	FindByID(ctx context.Context, id string) (*Visitor, error)
	FindByQRToken(ctx context.Context, token string) (*Visitor, error)
	FindAll(ctx context.Context) ([]Visitor, error)

	OpenSession(ctx context.Context, visitorID string) (*VisitSession, error)
	CreateSession(ctx context.Context, s *VisitSession) error
	UpdateSession(ctx context.Context, s *VisitSession) error
	SessionsBetween(ctx context.Context, from, to time.Time) ([]VisitSession, error)
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

func (r *repository) Create(ctx context.Context, v *Visitor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *repository) Update(ctx context.Context, v *Visitor) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Visitor, error) {
	var v Visitor
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) FindByQRToken(ctx context.Context, token string) (*Visitor, error) {
	var v Visitor
	err := r.db.WithContext(ctx).First(&v, "qr_token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Visitor, error) {
	var rows []Visitor
	err := r.db.WithContext(ctx).Order("visit_date DESC, created_at DESC").Find(&rows).Error
	return rows, err
}

// OpenSession returns the visitor's current open session, or nil when there
// is none.
func (r *repository) OpenSession(ctx context.Context, visitorID string) (*VisitSession, error) {
	var s VisitSession
	err := r.db.WithContext(ctx).
		Where("visitor_id = ? AND left_at IS NULL", visitorID).
		Order("entered_at DESC").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) CreateSession(ctx context.Context, s *VisitSession) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) UpdateSession(ctx context.Context, s *VisitSession) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) SessionsBetween(ctx context.Context, from, to time.Time) ([]VisitSession, error) {
	var rows []VisitSession
	err := r.db.WithContext(ctx).
		Where("entered_at >= ? AND entered_at <= ?", from, to).
		Order("entered_at ASC").
		Find(&rows).Error
	return rows, err
}
