package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/employee"
)

// VacationJobs moves employees onto and off vacation status as their
// configured windows open and close. The same sync is reachable on demand
// through the employees endpoint; reads never trigger it.
type VacationJobs struct {
	employeeService employee.EmployeeService
	interval        time.Duration
}

func NewVacationJobs(employeeService employee.EmployeeService, interval time.Duration) *VacationJobs {
	return &VacationJobs{
		employeeService: employeeService,
		interval:        interval,
	}
}

func (j *VacationJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("sync_vacation_statuses", j.interval, j.SyncVacationStatuses)
}

func (j *VacationJobs) SyncVacationStatuses(ctx context.Context) error {
	result, err := j.employeeService.SyncVacationStatuses(ctx, time.Now())
	if err != nil {
		return err
	}

	if result.Started > 0 || result.Returned > 0 {
		slog.Info("Cron: vacation statuses synchronized",
			"started", result.Started,
			"returned", result.Returned,
		)
	}
	return nil
}
