package visitor

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"go-checkin/internal/department"
	"go-checkin/internal/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	Repository
	mu       sync.Mutex
	visitors map[string]*Visitor
	sessions []*VisitSession
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{visitors: make(map[string]*Visitor)}
}

func (f *fakeRepo) Create(ctx context.Context, v *Visitor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *v
	f.visitors[v.ID.String()] = &stored
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, v *Visitor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *v
	f.visitors[v.ID.String()] = &stored
	return nil
}

func (f *fakeRepo) confirmed(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.visitors[id]
	return ok && v.Confirmed
}

func (f *fakeRepo) FindByQRToken(ctx context.Context, token string) (*Visitor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range f.visitors {
		if v.QRToken.String() == token {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) OpenSession(ctx context.Context, visitorID string) (*VisitSession, error) {
	for _, s := range f.sessions {
		if s.VisitorID.String() == visitorID && s.LeftAt == nil {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) CreateSession(ctx context.Context, s *VisitSession) error {
	f.sessions = append(f.sessions, s)
	return nil
}

func (f *fakeRepo) UpdateSession(ctx context.Context, s *VisitSession) error {
	for i, existing := range f.sessions {
		if existing.ID == s.ID {
			f.sessions[i] = s
		}
	}
	return nil
}

type fakeDepartmentRepo struct {
	department.Repository
	dept *department.Department
}

func (f *fakeDepartmentRepo) FindByID(ctx context.Context, id string) (*department.Department, error) {
	if f.dept == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.dept, nil
}

type recordingNotifier struct {
	mu    sync.Mutex
	err   error
	sends []struct {
		to          []string
		subject     string
		attachments int
	}
	done chan struct{}
}

func newRecordingNotifier(expected int) *recordingNotifier {
	n := &recordingNotifier{done: make(chan struct{}, expected)}
	return n
}

func (f *recordingNotifier) Send(ctx context.Context, to []string, subject, htmlBody string, attachments ...notify.Attachment) error {
	f.mu.Lock()
	f.sends = append(f.sends, struct {
		to          []string
		subject     string
		attachments int
	}{to, subject, len(attachments)})
	err := f.err
	f.mu.Unlock()
	f.done <- struct{}{}
	return err
}

type fakeQR struct{ encoded []string }

func (f *fakeQR) Encode(token string) ([]byte, error) {
	f.encoded = append(f.encoded, token)
	return []byte("png"), nil
}

func waitForSends(t *testing.T, n *recordingNotifier, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		select {
		case <-n.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("expected %d emails, got %d", count, i)
		}
	}
}

func TestService_Register_EmailsVisitorAndDepartment(t *testing.T) {
	repo := newFakeRepo()
	dept := &department.Department{ID: uuid.New(), Name: "Engineering", Email: "eng@example.com"}
	notifier := newRecordingNotifier(2)
	qrGen := &fakeQR{}
	svc := NewService(repo, &fakeDepartmentRepo{dept: dept}, notifier, qrGen)

	deptID := dept.ID.String()
	resp, err := svc.Register(context.Background(), RegisterVisitorRequest{
		Name:         "Carlos Ruiz",
		Email:        "carlos@example.com",
		Company:      "Acme",
		DepartmentID: &deptID,
		Reason:       "Vendor meeting",
		VisitDate:    "2026-04-10",
		VisitTime:    "10:30",
	})
	assert.NoError(t, err)
	assert.False(t, resp.Confirmed, "confirmation waits for the badge mail")
	assert.Equal(t, "2026-04-10", resp.VisitDate)
	assert.Equal(t, "10:30:00", resp.VisitTime)

	// The QR payload carries the visitor prefix; the stored token does not.
	assert.Len(t, qrGen.encoded, 1)
	assert.True(t, strings.HasPrefix(qrGen.encoded[0], VisitorTokenPrefix))
	repo.mu.Lock()
	stored := repo.visitors[resp.ID]
	repo.mu.Unlock()
	assert.Equal(t, VisitorTokenPrefix+stored.QRToken.String(), qrGen.encoded[0])

	waitForSends(t, notifier, 2)
	assert.Eventually(t, func() bool { return repo.confirmed(resp.ID) },
		2*time.Second, 10*time.Millisecond, "badge mail sent, visitor should be confirmed")
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	assert.Equal(t, []string{"carlos@example.com"}, notifier.sends[0].to)
	assert.Equal(t, 1, notifier.sends[0].attachments)
	assert.Equal(t, []string{"eng@example.com"}, notifier.sends[1].to)
	assert.Zero(t, notifier.sends[1].attachments)
}

func TestService_Register_FailedMailLeavesUnconfirmed(t *testing.T) {
	repo := newFakeRepo()
	notifier := newRecordingNotifier(1)
	notifier.err = errors.New("smtp unreachable")
	svc := NewService(repo, &fakeDepartmentRepo{}, notifier, &fakeQR{})

	resp, err := svc.Register(context.Background(), RegisterVisitorRequest{
		Name:      "Carlos Ruiz",
		Email:     "carlos@example.com",
		Reason:    "Vendor meeting",
		VisitDate: "2026-04-10",
	})
	assert.NoError(t, err, "registration stands even when the mail fails")

	waitForSends(t, notifier, 1)
	assert.False(t, repo.confirmed(resp.ID))
}

func TestService_Register_UnknownDepartment(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeDepartmentRepo{}, newRecordingNotifier(0), &fakeQR{})

	deptID := uuid.New().String()
	_, err := svc.Register(context.Background(), RegisterVisitorRequest{
		Name:         "Carlos Ruiz",
		Email:        "carlos@example.com",
		DepartmentID: &deptID,
		Reason:       "Vendor meeting",
		VisitDate:    "2026-04-10",
	})
	assert.Error(t, err)
}

func TestService_Register_BadVisitDate(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeDepartmentRepo{}, newRecordingNotifier(0), &fakeQR{})

	_, err := svc.Register(context.Background(), RegisterVisitorRequest{
		Name:      "Carlos Ruiz",
		Email:     "carlos@example.com",
		Reason:    "Vendor meeting",
		VisitDate: "April 10",
	})
	assert.Error(t, err)
}

func TestService_Toggle_OpensThenClosesOneSession(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeDepartmentRepo{}, newRecordingNotifier(0), &fakeQR{})

	v := &Visitor{ID: uuid.New(), Name: "Carlos Ruiz"}
	entered := time.Date(2026, 4, 10, 10, 30, 0, 0, time.UTC)

	first, err := svc.Toggle(context.Background(), v, entered)
	assert.NoError(t, err)
	assert.Equal(t, "ENTERED", first.Action)
	assert.Len(t, repo.sessions, 1)
	assert.Nil(t, repo.sessions[0].LeftAt)

	left := entered.Add(45 * time.Minute)
	second, err := svc.Toggle(context.Background(), v, left)
	assert.NoError(t, err)
	assert.Equal(t, "LEFT", second.Action)
	assert.Len(t, repo.sessions, 1, "closing must not create another session")
	assert.NotNil(t, repo.sessions[0].LeftAt)
	assert.Equal(t, left, *repo.sessions[0].LeftAt)

	// A third scan opens a fresh session.
	third, err := svc.Toggle(context.Background(), v, left.Add(time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, "ENTERED", third.Action)
	assert.Len(t, repo.sessions, 2)
}

func TestService_ResolveByQRToken_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeDepartmentRepo{}, newRecordingNotifier(0), &fakeQR{})

	_, err := svc.ResolveByQRToken(context.Background(), uuid.New().String())
	assert.Error(t, err)
}
