package report

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-checkin/internal/attendance"
	"go-checkin/internal/employee"
	"go-checkin/internal/notify"
	"go-checkin/internal/overtime"
	"go-checkin/internal/settings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeAttendanceRepo struct {
	attendance.Repository
	onDate    []attendance.Movement
	between   []attendance.Movement
	byEmp     map[string][]attendance.Movement
}

func (f *fakeAttendanceRepo) ListEntriesOnDate(ctx context.Context, date time.Time) ([]attendance.Movement, error) {
	return f.onDate, nil
}
func (f *fakeAttendanceRepo) ListEntriesBetween(ctx context.Context, from, to time.Time) ([]attendance.Movement, error) {
	return f.between, nil
}
func (f *fakeAttendanceRepo) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Movement, error) {
	return f.byEmp[employeeID], nil
}

type fakeEmployeeRepo struct {
	employee.Repository
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) FindAllActive(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

type fakeOvertimeRepo struct {
	overtime.Repository
	approved []overtime.Overtime
}

func (f *fakeOvertimeRepo) FindApprovedBetween(ctx context.Context, from, to time.Time) ([]overtime.Overtime, error) {
	return f.approved, nil
}

type fakeSettingsRepo struct {
	cfg *settings.SystemSettings
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*settings.SystemSettings, error) {
	return f.cfg, nil
}
func (f *fakeSettingsRepo) Save(ctx context.Context, s *settings.SystemSettings) error { return nil }

type recordedMail struct {
	to      []string
	subject string
	body    string
}

type fakeNotifier struct {
	mails []recordedMail
}

func (f *fakeNotifier) Send(ctx context.Context, to []string, subject, htmlBody string, attachments ...notify.Attachment) error {
	f.mails = append(f.mails, recordedMail{to: to, subject: subject, body: htmlBody})
	return nil
}

func lateEntry(emp employee.Employee, date string, minutes int) attendance.Movement {
	return attendance.Movement{
		ID:          uuid.New(),
		EmployeeID:  emp.ID,
		Date:        day(date),
		TimeOfDay:   "09:40:00",
		Kind:        attendance.KindEntry,
		Late:        minutes > 0,
		LateMinutes: minutes,
	}
}

func TestJobs_RunDaily(t *testing.T) {
	ana := employee.Employee{ID: uuid.New(), FullName: "Ana Torres", Code: "EMP-001", Active: true}
	luis := employee.Employee{ID: uuid.New(), FullName: "Luis Vega", Code: "EMP-002", Active: true}

	attRepo := &fakeAttendanceRepo{
		onDate: []attendance.Movement{
			lateEntry(ana, "2026-03-06", 0),
			lateEntry(luis, "2026-03-06", 25),
		},
		between: []attendance.Movement{
			lateEntry(luis, "2026-03-02", 10),
			lateEntry(luis, "2026-03-04", 15),
			lateEntry(luis, "2026-03-06", 25),
		},
	}
	notifier := &fakeNotifier{}
	jobs := NewJobs(
		attRepo,
		&fakeEmployeeRepo{employees: []employee.Employee{ana, luis}},
		&fakeOvertimeRepo{},
		&fakeSettingsRepo{cfg: &settings.SystemSettings{ManagerEmail: "boss@example.com"}},
		notifier,
	)

	err := jobs.RunDaily(context.Background(), day("2026-03-06"))
	assert.NoError(t, err)

	assert.Len(t, notifier.mails, 1)
	mail := notifier.mails[0]
	assert.Equal(t, []string{"boss@example.com"}, mail.to)
	assert.Contains(t, mail.subject, "2026-03-06")
	assert.Contains(t, mail.body, "Luis Vega")
	assert.Contains(t, mail.body, "Repeat lateness")
	assert.NotContains(t, mail.body, "Ana Torres", "on-time employees are not listed")
}

func TestJobs_RunDaily_NoManagerEmail(t *testing.T) {
	notifier := &fakeNotifier{}
	jobs := NewJobs(
		&fakeAttendanceRepo{},
		&fakeEmployeeRepo{},
		&fakeOvertimeRepo{},
		&fakeSettingsRepo{cfg: &settings.SystemSettings{}},
		notifier,
	)

	err := jobs.RunDaily(context.Background(), day("2026-03-06"))
	assert.NoError(t, err)
	assert.Empty(t, notifier.mails, "nothing to send without a recipient")
}

func TestJobs_RunFortnightly(t *testing.T) {
	ana := employee.Employee{ID: uuid.New(), FullName: "Ana Torres", Code: "EMP-001", Active: true}

	attRepo := &fakeAttendanceRepo{
		byEmp: map[string][]attendance.Movement{
			ana.ID.String(): {
				lateEntry(ana, "2026-03-02", 0),
				lateEntry(ana, "2026-03-03", 20),
			},
		},
	}
	notifier := &fakeNotifier{}
	jobs := NewJobs(
		attRepo,
		&fakeEmployeeRepo{employees: []employee.Employee{ana}},
		&fakeOvertimeRepo{},
		&fakeSettingsRepo{cfg: &settings.SystemSettings{ManagerEmail: "boss@example.com"}},
		notifier,
	)

	err := jobs.RunFortnightly(context.Background(), day("2026-03-13"))
	assert.NoError(t, err)

	assert.Len(t, notifier.mails, 1)
	mail := notifier.mails[0]
	assert.Contains(t, mail.subject, "2026-03-01")
	assert.Contains(t, mail.subject, "2026-03-13")
	assert.Contains(t, mail.body, "Ana Torres")
	assert.Contains(t, mail.body, "EMP-001")
}

func TestJobs_RunMonthlyOvertime_WritesArchiveFile(t *testing.T) {
	ana := employee.Employee{ID: uuid.New(), FullName: "Ana Torres", Code: "EMP-001", Active: true}
	archiveDir := t.TempDir()

	jobs := NewJobs(
		&fakeAttendanceRepo{},
		&fakeEmployeeRepo{employees: []employee.Employee{ana}},
		&fakeOvertimeRepo{approved: []overtime.Overtime{
			{
				ID:          uuid.New(),
				EmployeeID:  ana.ID,
				Date:        day("2026-02-10"),
				Hours:       decimal.RequireFromString("2.5"),
				Description: "Inventory count",
				Approved:    true,
			},
			{
				ID:         uuid.New(),
				EmployeeID: ana.ID,
				Date:       day("2026-02-20"),
				Hours:      decimal.RequireFromString("1.5"),
				Approved:   true,
			},
		}},
		&fakeSettingsRepo{cfg: &settings.SystemSettings{ReportArchiveDir: archiveDir}},
		&fakeNotifier{},
	)

	// Runs on March 1st and reports on February.
	err := jobs.RunMonthlyOvertime(context.Background(), day("2026-03-01"))
	assert.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(archiveDir, "overtime_2026-02.html"))
	assert.NoError(t, err)
	assert.Contains(t, string(content), "Ana Torres")
	assert.Contains(t, string(content), "4.00", "total approved hours")
}
