package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/retailops/turnos-backend/internal/config"
	appHTTP "github.com/retailops/turnos-backend/internal/handler/http"
	"github.com/retailops/turnos-backend/internal/pkg/database"
	"github.com/retailops/turnos-backend/internal/pkg/jwt"
	"github.com/retailops/turnos-backend/internal/repository/postgresql"
	authService "github.com/retailops/turnos-backend/internal/service/auth"
	employeeService "github.com/retailops/turnos-backend/internal/service/employee"
	extrasService "github.com/retailops/turnos-backend/internal/service/extras"
	holidayService "github.com/retailops/turnos-backend/internal/service/holiday"
	receiptService "github.com/retailops/turnos-backend/internal/service/receipt"
	scheduleService "github.com/retailops/turnos-backend/internal/service/schedule"
	shiftService "github.com/retailops/turnos-backend/internal/service/shift"
	timeclockService "github.com/retailops/turnos-backend/internal/service/timeclock"
	vacationService "github.com/retailops/turnos-backend/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "turnos-backend"),
	)

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	totalRepo := postgresql.NewMonthlyTotalRepository(db)
	clockEventRepo := postgresql.NewClockEventRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	vacationRepo := postgresql.NewVacationRepository(db)
	extrasRepo := postgresql.NewExtrasRepository(db)
	receiptRepo := postgresql.NewReceiptRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	shiftSvc := shiftService.NewShiftService(shiftRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	scheduleSvc := scheduleService.NewScheduleService(
		db,
		scheduleRepo,
		totalRepo,
		shiftRepo,
		holidayRepo,
		employeeRepo,
		cfg.Payroll,
	)
	employeeSvc := employeeService.NewEmployeeService(
		db,
		employeeRepo,
		scheduleRepo,
		totalRepo,
		scheduleSvc,
		cfg.Payroll,
		logger,
	)
	timeclockSvc := timeclockService.NewTimeclockService(
		db,
		clockEventRepo,
		timesheetRepo,
		employeeRepo,
		holidayRepo,
		cfg.Payroll,
	)
	vacationSvc := vacationService.NewVacationService(
		db,
		vacationRepo,
		employeeRepo,
		scheduleRepo,
		totalRepo,
		cfg.Payroll,
	)
	extrasSvc := extrasService.NewExtrasService(extrasRepo, employeeRepo)
	receiptSvc := receiptService.NewReceiptService(
		receiptRepo,
		totalRepo,
		timesheetRepo,
		extrasRepo,
		employeeRepo,
		cfg.Payroll,
	)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(authSvc),
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc),
		Shift:     appHTTP.NewShiftHandler(shiftSvc),
		Holiday:   appHTTP.NewHolidayHandler(holidaySvc),
		Schedule:  appHTTP.NewScheduleHandler(scheduleSvc),
		Timeclock: appHTTP.NewTimeclockHandler(timeclockSvc),
		Vacation:  appHTTP.NewVacationHandler(vacationSvc),
		Extras:    appHTTP.NewExtrasHandler(extrasSvc),
		Receipt:   appHTTP.NewReceiptHandler(receiptSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
