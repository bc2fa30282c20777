package visitor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-checkin/internal/department"
	"go-checkin/internal/notify"
	"go-checkin/internal/qr"
	"go-checkin/internal/shared/apperror"
	"go-checkin/internal/shared/clock"
	visitorerrors "go-checkin/internal/visitor/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=visitor_service.go -destination=mock/visitor_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterVisitorRequest) (VisitorResponse, error)
	Toggle(ctx context.Context, v *Visitor, now time.Time) (ToggleResponse, error)
	ResolveByQRToken(ctx context.Context, token string) (*Visitor, error)
	GetAll(ctx context.Context) ([]VisitorResponse, error)
}

type service struct {
	repo           Repository
	departmentRepo department.Repository
	notifier       notify.Notifier
	qrGen          qr.Generator
	logger         *zap.Logger
}

func NewService(repo Repository, departmentRepo department.Repository, notifier notify.Notifier, qrGen qr.Generator) Service {
	return &service{
		repo:           repo,
		departmentRepo: departmentRepo,
		notifier:       notifier,
		qrGen:          qrGen,
		logger:         zap.L().Named("visitor.service"),
	}
}

// Register persists a visitor and mails their QR badge. Email delivery is
// best effort: a failed send is logged, the registration stands but the
// visitor only turns confirmed once the badge mail went out.
func (s *service) Register(ctx context.Context, req RegisterVisitorRequest) (VisitorResponse, error) {
	visitDate, err := time.Parse("2006-01-02", req.VisitDate)
	if err != nil {
		return VisitorResponse{}, apperror.New(apperror.CodeInvalidInput, "visit_date must be YYYY-MM-DD", http.StatusUnprocessableEntity)
	}

	visitTime := ""
	if req.VisitTime != "" {
		sec, err := clock.ParseTimeOfDay(req.VisitTime)
		if err != nil {
			return VisitorResponse{}, apperror.New(apperror.CodeInvalidInput, "visit_time must be HH:MM", http.StatusUnprocessableEntity)
		}
		visitTime = clock.FormatHHMMSS(sec)
	}

	var dept *department.Department
	var departmentID *uuid.UUID
	if req.DepartmentID != nil && *req.DepartmentID != "" {
		d, err := s.departmentRepo.FindByID(ctx, *req.DepartmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return VisitorResponse{}, visitorerrors.ErrDepartmentNotFound
			}
			return VisitorResponse{}, err
		}
		dept = d
		departmentID = &d.ID
	}

	v := &Visitor{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		Company:      req.Company,
		Phone:        req.Phone,
		DepartmentID: departmentID,
		Reason:       req.Reason,
		VisitDate:    visitDate,
		VisitTime:    visitTime,
		QRToken:      uuid.New(),
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return VisitorResponse{}, err
	}

	// Snapshot before the mail goroutine flips Confirmed.
	resp := mapToResponse(*v)
	s.sendRegistrationMail(v, dept)

	return resp, nil
}

func (s *service) sendRegistrationMail(v *Visitor, dept *department.Department) {
	png, err := s.qrGen.Encode(VisitorTokenPrefix + v.QRToken.String())
	if err != nil {
		s.logger.Error("encode visitor qr", zap.Error(err), zap.String("visitor_id", v.ID.String()))
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		body := fmt.Sprintf(
			"<p>Hello %s,</p><p>Your visit on %s is confirmed. Present the attached QR code at reception.</p>",
			v.Name, v.VisitDate.Format("2006-01-02"),
		)
		err := s.notifier.Send(ctx, []string{v.Email}, "Your visit QR code", body, notify.Attachment{
			Filename: "visit_qr.png",
			MIME:     "image/png",
			Data:     png,
		})
		if err != nil {
			s.logger.Error("send visitor email", zap.Error(err), zap.String("visitor_id", v.ID.String()))
		} else {
			v.Confirmed = true
			if err := s.repo.Update(ctx, v); err != nil {
				s.logger.Error("confirm visitor", zap.Error(err), zap.String("visitor_id", v.ID.String()))
			}
		}

		if dept != nil && dept.Email != "" {
			notice := fmt.Sprintf(
				"<p>%s (%s) has registered a visit to %s on %s.</p><p>Reason: %s</p>",
				v.Name, v.Company, dept.Name, v.VisitDate.Format("2006-01-02"), v.Reason,
			)
			if err := s.notifier.Send(ctx, []string{dept.Email}, "Upcoming visit: "+v.Name, notice); err != nil {
				s.logger.Error("send department notice", zap.Error(err), zap.String("visitor_id", v.ID.String()))
			}
		}
	}()
}

// Toggle flips the visitor's presence: an open session is closed, otherwise
// a new one is opened. The one-open-session invariant lives here.
func (s *service) Toggle(ctx context.Context, v *Visitor, now time.Time) (ToggleResponse, error) {
	open, err := s.repo.OpenSession(ctx, v.ID.String())
	if err != nil {
		return ToggleResponse{}, err
	}

	if open != nil {
		open.LeftAt = &now
		if err := s.repo.UpdateSession(ctx, open); err != nil {
			return ToggleResponse{}, err
		}
		left := now.Format(time.RFC3339)
		return ToggleResponse{
			VisitorID: v.ID.String(),
			Name:      v.Name,
			Action:    "LEFT",
			EnteredAt: open.EnteredAt.Format(time.RFC3339),
			LeftAt:    &left,
		}, nil
	}

	session := &VisitSession{ID: uuid.New(), VisitorID: v.ID, EnteredAt: now}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return ToggleResponse{}, err
	}
	return ToggleResponse{
		VisitorID: v.ID.String(),
		Name:      v.Name,
		Action:    "ENTERED",
		EnteredAt: now.Format(time.RFC3339),
	}, nil
}

func (s *service) ResolveByQRToken(ctx context.Context, token string) (*Visitor, error) {
	v, err := s.repo.FindByQRToken(ctx, token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, visitorerrors.ErrVisitorNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) GetAll(ctx context.Context) ([]VisitorResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]VisitorResponse, len(rows))
	for i, v := range rows {
		res[i] = mapToResponse(v)
	}
	return res, nil
}

func mapToResponse(v Visitor) VisitorResponse {
	var deptID *string
	if v.DepartmentID != nil {
		id := v.DepartmentID.String()
		deptID = &id
	}
	return VisitorResponse{
		ID:           v.ID.String(),
		Name:         v.Name,
		Email:        v.Email,
		Company:      v.Company,
		Phone:        v.Phone,
		DepartmentID: deptID,
		Reason:       v.Reason,
		VisitDate:    v.VisitDate.Format("2006-01-02"),
		VisitTime:    v.VisitTime,
		Confirmed:    v.Confirmed,
	}
}
