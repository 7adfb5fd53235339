package main

import (
	"fmt"
	"net/http"

	"github.com/expedicaonl/workforce-backend-go/internal/config"
	appHTTP "github.com/expedicaonl/workforce-backend-go/internal/handler/http"
	"github.com/expedicaonl/workforce-backend-go/internal/pkg/cron"
	"github.com/expedicaonl/workforce-backend-go/internal/pkg/database"
	"github.com/expedicaonl/workforce-backend-go/internal/pkg/jwt"
	"github.com/expedicaonl/workforce-backend-go/internal/repository/postgresql"
	authService "github.com/expedicaonl/workforce-backend-go/internal/service/auth"
	employeeService "github.com/expedicaonl/workforce-backend-go/internal/service/employee"
	eventService "github.com/expedicaonl/workforce-backend-go/internal/service/event"
	operationService "github.com/expedicaonl/workforce-backend-go/internal/service/operation"
	reportService "github.com/expedicaonl/workforce-backend-go/internal/service/report"
	routeService "github.com/expedicaonl/workforce-backend-go/internal/service/route"
	settingsService "github.com/expedicaonl/workforce-backend-go/internal/service/settings"
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
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	operationRepo := postgresql.NewOperationRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	sectorRepo := postgresql.NewSectorRepository(db)
	routeRepo := postgresql.NewRouteRepository(db)
	txManager := postgresql.NewTxManager(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(cfg.Operator, JWTService)
	employeeSvc := employeeService.NewEmployeeService(txManager, employeeRepo, eventRepo, sectorRepo)
	routineSvc := operationService.NewRoutineService(txManager, operationRepo, employeeRepo, eventRepo, sectorRepo)
	reportSvc := reportService.NewReportService(routineSvc, sectorRepo, routeRepo)
	eventSvc := eventService.NewEventService(eventRepo, employeeRepo)
	settingsSvc := settingsService.NewSettingsService(sectorRepo)
	routeSvc := routeService.NewRouteService(routeRepo)

	scheduler := cron.NewScheduler()
	vacationJobs := cron.NewVacationJobs(employeeSvc, cfg.Cron.VacationSyncInterval)
	vacationJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.Handlers{
		Auth:     appHTTP.NewAuthHandler(authSvc),
		Employee: appHTTP.NewEmployeeHandler(employeeSvc),
		Routine:  appHTTP.NewRoutineHandler(routineSvc, reportSvc),
		Event:    appHTTP.NewEventHandler(eventSvc),
		Settings: appHTTP.NewSettingsHandler(settingsSvc),
		Route:    appHTTP.NewRouteHandler(routeSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
