package app

import (
	"os"
	"strconv"

	"go-checkin/internal/attendance"
	"go-checkin/internal/auth"
	"go-checkin/internal/checkin"
	"go-checkin/internal/department"
	"go-checkin/internal/employee"
	"go-checkin/internal/messaging/kafka"
	"go-checkin/internal/notify"
	"go-checkin/internal/overtime"
	"go-checkin/internal/qr"
	"go-checkin/internal/report"
	"go-checkin/internal/schedule"
	"go-checkin/internal/settings"
	"go-checkin/internal/visitor"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	overtimeRepo := overtime.NewRepository(gormDB)
	scheduleRepo := schedule.NewRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)
	visitorRepo := visitor.NewRepository(gormDB)

	// --- Collaborators ---
	notifier := buildNotifier()
	qrGen := qr.NewPNGGenerator(256)

	// --- Services ---
	attendanceService := attendance.NewService(gormDB, attendanceRepo, settingsRepo, outboxRepo)
	authService := auth.NewService(authRepo)
	departmentService := department.NewService(departmentRepo)
	employeeService := employee.NewService(gormDB, employeeRepo, outboxRepo, rdb)
	overtimeService := overtime.NewService(overtimeRepo, employeeRepo)
	scheduleService := schedule.NewService(scheduleRepo)
	settingsService := settings.NewService(settingsRepo)
	visitorService := visitor.NewService(visitorRepo, departmentRepo, notifier, qrGen)
	checkinService := checkin.NewService(employeeRepo, attendanceService, visitorService, rdb)
	dashboardService := report.NewDashboardService(attendanceRepo, employeeRepo, visitorRepo, rdb)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	authHandler := auth.NewHandler(authService)
	checkinHandler := checkin.NewHandler(checkinService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService, qrGen)
	overtimeHandler := overtime.NewHandler(overtimeService)
	reportHandler := report.NewHandler(dashboardService)
	scheduleHandler := schedule.NewHandler(scheduleService)
	settingsHandler := settings.NewHandler(settingsService)
	visitorHandler := visitor.NewHandler(visitorService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		attendance.RegisterRoutes(api, attendanceHandler)
		auth.RegisterRoutes(api, authHandler)
		checkin.RegisterRoutes(api, checkinHandler)
		department.RegisterRoutes(api, departmentHandler)
		employee.RegisterRoutes(api, employeeHandler)
		overtime.RegisterRoutes(api, overtimeHandler)
		report.RegisterRoutes(api, reportHandler)
		schedule.RegisterRoutes(api, scheduleHandler)
		settings.RegisterRoutes(api, settingsHandler)
		visitor.RegisterRoutes(api, visitorHandler)
	}

	return nil
}

// buildNotifier wires SMTP when configured and falls back to the logging
// noop so local environments work without a mail server.
func buildNotifier() notify.Notifier {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return notify.NoopNotifier{}
	}
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	return notify.NewSMTPNotifier(
		host,
		port,
		os.Getenv("SMTP_USERNAME"),
		os.Getenv("SMTP_PASSWORD"),
		os.Getenv("SMTP_FROM"),
	)
}
