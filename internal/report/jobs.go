package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-checkin/internal/attendance"
	"go-checkin/internal/employee"
	"go-checkin/internal/notify"
	"go-checkin/internal/overtime"
	"go-checkin/internal/settings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// repeatLateLookbackDays is the window the daily report scans for employees
// who keep arriving late.
const repeatLateLookbackDays = 5

// Jobs are the scheduled report runs. They only ever read the ledger;
// a failed run is logged by the scheduler and the next tick starts clean.
type Jobs struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	overtimeRepo   overtime.Repository
	settingsRepo   settings.Repository
	notifier       notify.Notifier
	logger         *zap.Logger
}

func NewJobs(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	overtimeRepo overtime.Repository,
	settingsRepo settings.Repository,
	notifier notify.Notifier,
) *Jobs {
	return &Jobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		overtimeRepo:   overtimeRepo,
		settingsRepo:   settingsRepo,
		notifier:       notifier,
		logger:         zap.L().Named("report.jobs"),
	}
}

// RunDaily mails the manager a snapshot of today's entries plus anyone who
// was late three or more times over the lookback window.
func (j *Jobs) RunDaily(ctx context.Context, date time.Time) error {
	cfg, err := j.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if cfg.ManagerEmail == "" {
		j.logger.Warn("daily report skipped, no manager email configured")
		return nil
	}

	employees, err := j.activeEmployees(ctx)
	if err != nil {
		return err
	}

	entries, err := j.attendanceRepo.ListEntriesOnDate(ctx, date)
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}

	data := dailyReportData{
		Date:         date.Format("2006-01-02"),
		LookbackDays: repeatLateLookbackDays,
	}
	for _, m := range entries {
		data.Present++
		if m.Late {
			data.Late++
			data.LateMinutes += m.LateMinutes
			emp := employees[m.EmployeeID.String()]
			data.LateEntries = append(data.LateEntries, lateEntryRow{
				Name:        emp.FullName,
				Code:        emp.Code,
				Time:        m.TimeOfDay,
				LateMinutes: m.LateMinutes,
			})
		}
	}

	repeat, err := j.repeatLateRows(ctx, employees, date)
	if err != nil {
		return err
	}
	data.RepeatLate = repeat

	body, err := renderTemplate("daily.html", data)
	if err != nil {
		return fmt.Errorf("render daily report: %w", err)
	}

	subject := "Daily attendance report " + data.Date
	if err := j.notifier.Send(ctx, []string{cfg.ManagerEmail}, subject, body); err != nil {
		return fmt.Errorf("send daily report: %w", err)
	}

	j.logger.Info("daily report sent",
		zap.String("date", data.Date),
		zap.Int("present", data.Present),
		zap.Int("late", data.Late),
	)
	return nil
}

func (j *Jobs) repeatLateRows(ctx context.Context, employees map[string]employee.Employee, date time.Time) ([]repeatLateRow, error) {
	return repeatLateOffenders(ctx, j.attendanceRepo, employees, date)
}

// repeatLateOffenders tallies late entries over the lookback window ending
// on date and keeps employees at or above the repeat threshold. Shared by
// the daily report and the live dashboard.
func repeatLateOffenders(ctx context.Context, repo attendance.Repository, employees map[string]employee.Employee, date time.Time) ([]repeatLateRow, error) {
	from := date.AddDate(0, 0, -(repeatLateLookbackDays - 1))
	entries, err := repo.ListEntriesBetween(ctx, from, date)
	if err != nil {
		return nil, fmt.Errorf("list lookback entries: %w", err)
	}

	type tally struct {
		lateCount   int
		lateMinutes int
	}
	perEmployee := make(map[string]*tally)
	for _, m := range entries {
		if !m.Late {
			continue
		}
		id := m.EmployeeID.String()
		if perEmployee[id] == nil {
			perEmployee[id] = &tally{}
		}
		perEmployee[id].lateCount++
		perEmployee[id].lateMinutes += m.LateMinutes
	}

	var rows []repeatLateRow
	for id, t := range perEmployee {
		if t.lateCount < repeatLateThreshold {
			continue
		}
		emp := employees[id]
		rows = append(rows, repeatLateRow{
			Name:             emp.FullName,
			Code:             emp.Code,
			LateCount:        t.lateCount,
			TotalLateMinutes: t.lateMinutes,
		})
	}
	return rows, nil
}

// RunFortnightly mails a per-employee summary for the current half of the
// month: days 1–13 when run mid-month, day 14 to end of month otherwise.
func (j *Jobs) RunFortnightly(ctx context.Context, ref time.Time) error {
	cfg, err := j.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if cfg.ManagerEmail == "" {
		j.logger.Warn("fortnightly report skipped, no manager email configured")
		return nil
	}

	from, to := fortnightRange(ref)

	employees, err := j.employeeRepo.FindAllActive(ctx)
	if err != nil {
		return fmt.Errorf("list employees: %w", err)
	}

	data := fortnightlyReportData{
		From: from.Format("2006-01-02"),
		To:   to.Format("2006-01-02"),
	}
	for _, emp := range employees {
		movements, err := j.attendanceRepo.ListByEmployeeBetween(ctx, emp.ID.String(), from, to)
		if err != nil {
			return fmt.Errorf("list movements for %s: %w", emp.Code, err)
		}
		is24h := emp.ScheduleType != nil && emp.ScheduleType.Is24HourShift
		data.Rows = append(data.Rows, fortnightlyRow{
			Name:    emp.FullName,
			Code:    emp.Code,
			Summary: Summarize(emp.ID.String(), movements, is24h, from, to),
		})
	}

	body, err := renderTemplate("fortnightly.html", data)
	if err != nil {
		return fmt.Errorf("render fortnightly report: %w", err)
	}

	subject := fmt.Sprintf("Attendance report %s to %s", data.From, data.To)
	if err := j.notifier.Send(ctx, []string{cfg.ManagerEmail}, subject, body); err != nil {
		return fmt.Errorf("send fortnightly report: %w", err)
	}

	j.logger.Info("fortnightly report sent",
		zap.String("from", data.From),
		zap.String("to", data.To),
		zap.Int("employees", len(data.Rows)),
	)
	return nil
}

// fortnightRange maps a run instant to the half of the month it reports on.
func fortnightRange(ref time.Time) (time.Time, time.Time) {
	year, month, _ := ref.Date()
	if ref.Day() <= 15 {
		from := time.Date(year, month, 1, 0, 0, 0, 0, ref.Location())
		return from, time.Date(year, month, 13, 0, 0, 0, 0, ref.Location())
	}
	from := time.Date(year, month, 14, 0, 0, 0, 0, ref.Location())
	endOfMonth := time.Date(year, month+1, 1, 0, 0, 0, 0, ref.Location()).AddDate(0, 0, -1)
	return from, endOfMonth
}

// RunMonthlyOvertime archives the previous month's approved overtime as an
// HTML file under the configured archive directory.
func (j *Jobs) RunMonthlyOvertime(ctx context.Context, ref time.Time) error {
	cfg, err := j.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if cfg.ReportArchiveDir == "" {
		j.logger.Warn("monthly overtime report skipped, no archive directory configured")
		return nil
	}

	firstOfThisMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	from := firstOfThisMonth.AddDate(0, -1, 0)
	to := firstOfThisMonth.AddDate(0, 0, -1)

	rows, err := j.overtimeRepo.FindApprovedBetween(ctx, from, to)
	if err != nil {
		return fmt.Errorf("list approved overtime: %w", err)
	}

	employees, err := j.activeEmployees(ctx)
	if err != nil {
		return err
	}

	data := overtimeReportData{Month: from.Format("2006-01")}
	total := decimal.Zero
	for _, o := range rows {
		emp := employees[o.EmployeeID.String()]
		total = total.Add(o.Hours)
		data.Rows = append(data.Rows, overtimeRow{
			Name:        emp.FullName,
			Code:        emp.Code,
			Date:        o.Date.Format("2006-01-02"),
			Hours:       o.Hours.StringFixed(2),
			Description: o.Description,
		})
	}
	data.TotalHours = total.StringFixed(2)

	body, err := renderTemplate("overtime.html", data)
	if err != nil {
		return fmt.Errorf("render overtime report: %w", err)
	}

	if err := os.MkdirAll(cfg.ReportArchiveDir, 0o755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}
	path := filepath.Join(cfg.ReportArchiveDir, "overtime_"+data.Month+".html")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write overtime report: %w", err)
	}

	j.logger.Info("monthly overtime report archived",
		zap.String("month", data.Month),
		zap.String("path", path),
		zap.Int("entries", len(data.Rows)),
	)
	return nil
}

func (j *Jobs) activeEmployees(ctx context.Context) (map[string]employee.Employee, error) {
	all, err := j.employeeRepo.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	byID := make(map[string]employee.Employee, len(all))
	for _, e := range all {
		byID[e.ID.String()] = e
	}
	return byID, nil
}
