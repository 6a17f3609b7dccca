package main

import (
	"fmt"
	"net/http"

	"github.com/stafftide/intranet-backend-go/internal/config"
	appHTTP "github.com/stafftide/intranet-backend-go/internal/handler/http"
	"github.com/stafftide/intranet-backend-go/internal/pkg/database"
	"github.com/stafftide/intranet-backend-go/internal/pkg/jwt"
	"github.com/stafftide/intranet-backend-go/internal/repository/postgresql"
	payrollService "github.com/stafftide/intranet-backend-go/internal/service/payroll"
	worktimeService "github.com/stafftide/intranet-backend-go/internal/service/worktime"
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

	periodRepo := postgresql.NewPeriodRepository(db)
	intervalRepo := postgresql.NewIntervalRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	calendar := payrollService.NewHolidayCalendar()
	periodService := payrollService.NewPeriodService(db, periodRepo, intervalRepo, calendar, cfg.Payroll.NormalDailyHours)
	sessionService := worktimeService.NewSessionService(db, intervalRepo)

	payrollHandler := appHTTP.NewPayrollHandler(periodService)
	worktimeHandler := appHTTP.NewWorktimeHandler(sessionService)

	router := appHTTP.NewRouter(jwtService, payrollHandler, worktimeHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
