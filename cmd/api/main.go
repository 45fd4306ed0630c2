package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/config"
	appHTTP "github.com/stafftrack/attendance-backend-go/internal/handler/http"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/cron"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
	"github.com/stafftrack/attendance-backend-go/internal/repository/postgresql"
	backfillService "github.com/stafftrack/attendance-backend-go/internal/service/backfill"
	employeeService "github.com/stafftrack/attendance-backend-go/internal/service/employee"
	entryService "github.com/stafftrack/attendance-backend-go/internal/service/entry"
	"github.com/stafftrack/attendance-backend-go/internal/service/master"
	"github.com/stafftrack/attendance-backend-go/internal/service/overlay"
	summaryService "github.com/stafftrack/attendance-backend-go/internal/service/summary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	entryRepo := postgresql.NewEntryRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	snapshotLoader := postgresql.NewSnapshotLoader(db)

	employeeSvc := employeeService.NewService(employeeRepo, departmentRepo, paymentRepo)
	masterSvc := master.NewService(departmentRepo, employeeRepo, holidayRepo)
	entrySvc := entryService.NewService(entryRepo, snapshotLoader)
	backfillSvc := backfillService.NewService(entryRepo)
	summarySvc := summaryService.NewService(snapshotLoader, time.Now)

	attendanceGrid := overlay.NewAttendanceGrid(entrySvc, nil)
	paymentTracker := overlay.NewPaymentTracker(employeeSvc, nil)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, summarySvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	entryHandler := appHTTP.NewEntryHandler(entrySvc, backfillSvc, snapshotLoader)
	summaryHandler := appHTTP.NewSummaryHandler(summarySvc)
	gridHandler := appHTTP.NewGridHandler(attendanceGrid, paymentTracker, snapshotLoader)

	router := appHTTP.NewRouter(
		cfg,
		employeeHandler,
		masterHandler,
		entryHandler,
		summaryHandler,
		gridHandler,
	)

	scheduler := cron.NewScheduler()
	if cfg.Backfill.Enabled {
		backfillJobs := cron.NewBackfillJobs(backfillSvc, snapshotLoader, cfg.Backfill.Interval)
		backfillJobs.RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
