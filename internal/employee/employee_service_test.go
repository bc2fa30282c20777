package employee

import (
	"context"
	"testing"

	"go-checkin/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeRepo struct {
	Repository
	createFn        func(ctx context.Context, e *Employee) error
	findAllActiveFn func(ctx context.Context) ([]Employee, error)
	codeExistsFn    func(ctx context.Context, code string) (bool, error)
}

func (f *fakeRepo) WithTx(tx *gorm.DB) Repository              { return f }
func (f *fakeRepo) Create(ctx context.Context, e *Employee) error { return f.createFn(ctx, e) }
func (f *fakeRepo) FindAllActive(ctx context.Context) ([]Employee, error) {
	return f.findAllActiveFn(ctx)
}
func (f *fakeRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	return f.codeExistsFn(ctx, code)
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error                { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gdb, mock
}

func TestService_Create_AssignsTokenAndEmitsEvent(t *testing.T) {
	gdb, mock := newTestDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	var saved Employee
	repo := &fakeRepo{
		createFn: func(ctx context.Context, e *Employee) error {
			e.ID = uuid.New()
			saved = *e
			return nil
		},
		codeExistsFn: func(ctx context.Context, code string) (bool, error) { return false, nil },
	}
	outbox := &fakeOutbox{}
	svc := NewService(gdb, repo, outbox, nil)

	resp, err := svc.Create(context.Background(), CreateEmployeeRequest{
		FullName: "Ana Torres",
		Email:    "ana@example.com",
		Code:     "EMP-001",
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.QRToken)
	assert.Equal(t, saved.QRToken.String(), resp.QRToken)
	assert.True(t, saved.Active)

	assert.Len(t, outbox.created, 1)
	assert.Equal(t, "employee.created", outbox.created[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_DuplicateCode(t *testing.T) {
	gdb, _ := newTestDB(t)
	repo := &fakeRepo{
		codeExistsFn: func(ctx context.Context, code string) (bool, error) { return true, nil },
	}
	svc := NewService(gdb, repo, &fakeOutbox{}, nil)

	_, err := svc.Create(context.Background(), CreateEmployeeRequest{
		FullName: "Ana Torres",
		Email:    "ana@example.com",
		Code:     "EMP-001",
	})
	assert.Error(t, err)
}

func TestService_GetOptions_CachesInRedis(t *testing.T) {
	gdb, _ := newTestDB(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	calls := 0
	repo := &fakeRepo{
		findAllActiveFn: func(ctx context.Context) ([]Employee, error) {
			calls++
			return []Employee{{ID: uuid.New(), FullName: "Ana Torres", Code: "EMP-001", QRToken: uuid.New(), Active: true}}, nil
		},
	}
	svc := NewService(gdb, repo, &fakeOutbox{}, rdb)

	first, err := svc.GetOptions(context.Background())
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := svc.GetOptions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls, "second call should be served from cache")
}
