package schedule

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	createFn   func(ctx context.Context, s *ScheduleType) error
	findAllFn  func(ctx context.Context) ([]ScheduleType, error)
	findByIDFn func(ctx context.Context, id string) (*ScheduleType, error)
	updateFn   func(ctx context.Context, s *ScheduleType) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeRepo) Create(ctx context.Context, s *ScheduleType) error { return f.createFn(ctx, s) }
func (f *fakeRepo) FindAll(ctx context.Context) ([]ScheduleType, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*ScheduleType, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, s *ScheduleType) error { return f.updateFn(ctx, s) }
func (f *fakeRepo) Delete(ctx context.Context, id string) error       { return f.deleteFn(ctx, id) }

func strPtr(s string) *string { return &s }

func TestService_Create_StandardSchedule(t *testing.T) {
	var saved ScheduleType
	repo := &fakeRepo{
		createFn: func(ctx context.Context, s *ScheduleType) error {
			s.ID = uuid.New()
			saved = *s
			return nil
		},
	}
	svc := NewService(repo)

	resp, err := svc.Create(context.Background(), CreateScheduleTypeRequest{
		Name:             "Office",
		ExpectedEntry:    strPtr("09:00"),
		ToleranceMinutes: 15,
		HasMealBreak:     true,
		MealWindowStart:  strPtr("13:00"),
		MealWindowEnd:    strPtr("15:00"),
	})
	assert.NoError(t, err)
	assert.True(t, resp.Active)
	assert.True(t, saved.HasMealBreak)
}

func TestService_Create_MealWindowValidation(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, s *ScheduleType) error { return nil },
	}
	svc := NewService(repo)

	// missing bounds
	_, err := svc.Create(context.Background(), CreateScheduleTypeRequest{
		Name:          "Broken",
		ExpectedEntry: strPtr("09:00"),
		HasMealBreak:  true,
	})
	assert.Error(t, err)

	// inverted bounds
	_, err = svc.Create(context.Background(), CreateScheduleTypeRequest{
		Name:            "Inverted",
		ExpectedEntry:   strPtr("09:00"),
		HasMealBreak:    true,
		MealWindowStart: strPtr("15:00"),
		MealWindowEnd:   strPtr("13:00"),
	})
	assert.Error(t, err)
}

func TestService_Create_EntryTimeRequiredUnless24h(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, s *ScheduleType) error { return nil },
	}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateScheduleTypeRequest{Name: "NoEntry"})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), CreateScheduleTypeRequest{
		Name:          "Rotating",
		Is24HourShift: true,
	})
	assert.NoError(t, err)
}
