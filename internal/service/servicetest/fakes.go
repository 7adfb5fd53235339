// Package servicetest provides in-memory repository fakes for service tests.
// They honor the same sentinel-error contracts as the pgx implementations.
package servicetest

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/employee"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/event"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/operation"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/route"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/sector"
	"github.com/google/uuid"
)

// TxManager runs the function directly; fakes have no transactions.
type TxManager struct{}

func (TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// EmployeeRepo is an in-memory employee.EmployeeRepository.
type EmployeeRepo struct {
	Employees map[string]employee.Employee // keyed by id
}

func NewEmployeeRepo() *EmployeeRepo {
	return &EmployeeRepo{Employees: map[string]employee.Employee{}}
}

// Seed inserts an employee, filling in an id if missing.
func (r *EmployeeRepo) Seed(emp employee.Employee) employee.Employee {
	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	r.Employees[emp.ID] = emp
	return emp
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := r.Employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *EmployeeRepo) GetByRegistrationID(ctx context.Context, registrationID string) (employee.Employee, error) {
	for _, emp := range r.Employees {
		if emp.RegistrationID == registrationID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepo) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range r.Employees {
		if filter.Shift != nil && *filter.Shift != "" && emp.WorkShift != *filter.Shift {
			continue
		}
		if filter.Status != nil && *filter.Status != "" && string(emp.Status) != *filter.Status {
			continue
		}
		if filter.Search != nil && *filter.Search != "" &&
			!strings.Contains(strings.ToLower(emp.Name), strings.ToLower(*filter.Search)) &&
			!strings.Contains(emp.RegistrationID, *filter.Search) {
			continue
		}
		result = append(result, emp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *EmployeeRepo) ListNotFired(ctx context.Context) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range r.Employees {
		if emp.Status != employee.StatusFired {
			result = append(result, emp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *EmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	for _, emp := range r.Employees {
		if emp.RegistrationID == newEmployee.RegistrationID {
			return employee.Employee{}, employee.ErrRegistrationIDExists
		}
	}
	if newEmployee.ID == "" {
		newEmployee.ID = uuid.NewString()
	}
	if len(newEmployee.WorkDays) == 0 {
		newEmployee.WorkDays = employee.DefaultWorkDays
	}
	newEmployee.CreatedAt = time.Now()
	newEmployee.UpdatedAt = newEmployee.CreatedAt
	r.Employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (r *EmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	if _, ok := r.Employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.UpdatedAt = time.Now()
	r.Employees[emp.ID] = emp
	return nil
}

func (r *EmployeeRepo) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	emp, ok := r.Employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.Status = status
	if status == employee.StatusFired {
		now := time.Now()
		emp.TerminationDate = &now
	}
	emp.UpdatedAt = time.Now()
	r.Employees[id] = emp
	return nil
}

func (r *EmployeeRepo) SetVacationWindow(ctx context.Context, id string, start, end *string) error {
	emp, ok := r.Employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.VacationStart = parseDate(start)
	emp.VacationEnd = parseDate(end)
	emp.UpdatedAt = time.Now()
	r.Employees[id] = emp
	return nil
}

func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.Employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.Employees, id)
	return nil
}

func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

// EventRepo is an in-memory event.EventRepository.
type EventRepo struct {
	Events []event.Event
}

func NewEventRepo() *EventRepo {
	return &EventRepo{}
}

// ByType returns the stored events carrying the given type, oldest first.
func (r *EventRepo) ByType(eventType event.Type) []event.Event {
	var result []event.Event
	for _, evt := range r.Events {
		if evt.Type == eventType {
			result = append(result, evt)
		}
	}
	return result
}

func (r *EventRepo) Create(ctx context.Context, newEvent event.Event) (event.Event, error) {
	if newEvent.ID == "" {
		newEvent.ID = uuid.NewString()
	}
	if newEvent.Timestamp.IsZero() {
		newEvent.Timestamp = time.Now()
	}
	if newEvent.Impact == "" {
		newEvent.Impact = event.ImpactLow
	}
	newEvent.CreatedAt = time.Now()
	r.Events = append(r.Events, newEvent)
	return newEvent, nil
}

func (r *EventRepo) GetByID(ctx context.Context, id string) (event.Event, error) {
	for _, evt := range r.Events {
		if evt.ID == id {
			return evt, nil
		}
	}
	return event.Event{}, event.ErrEventNotFound
}

func (r *EventRepo) List(ctx context.Context, filter event.EventFilter) ([]event.Event, int64, error) {
	var matched []event.Event
	for _, evt := range r.Events {
		if filter.EmployeeID != nil && *filter.EmployeeID != "" &&
			(evt.EmployeeID == nil || *evt.EmployeeID != *filter.EmployeeID) {
			continue
		}
		if filter.Type != nil && *filter.Type != "" && string(evt.Type) != *filter.Type {
			continue
		}
		if filter.Category != nil && *filter.Category != "" && string(evt.Category) != *filter.Category {
			continue
		}
		if filter.StartDate != nil && *filter.StartDate != "" && evt.Timestamp.Format("2006-01-02") < *filter.StartDate {
			continue
		}
		if filter.EndDate != nil && *filter.EndDate != "" && evt.Timestamp.Format("2006-01-02") > *filter.EndDate {
			continue
		}
		matched = append(matched, evt)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Timestamp.After(matched[j].Timestamp) })

	total := int64(len(matched))
	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *EventRepo) ListByEmployee(ctx context.Context, employeeID string) ([]event.Event, error) {
	var result []event.Event
	for _, evt := range r.Events {
		if evt.EmployeeID != nil && *evt.EmployeeID == employeeID {
			result = append(result, evt)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Timestamp.After(result[j].Timestamp) })
	return result, nil
}

func (r *EventRepo) ExistsOnDay(ctx context.Context, employeeID string, eventType event.Type, day time.Time) (bool, error) {
	for _, evt := range r.Events {
		if evt.EmployeeID == nil || *evt.EmployeeID != employeeID || evt.Type != eventType {
			continue
		}
		y1, m1, d1 := evt.Timestamp.Date()
		y2, m2, d2 := day.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			return true, nil
		}
	}
	return false, nil
}

func (r *EventRepo) UnlinkEmployee(ctx context.Context, employeeID string) error {
	for i, evt := range r.Events {
		if evt.EmployeeID != nil && *evt.EmployeeID == employeeID {
			r.Events[i].EmployeeID = nil
		}
	}
	return nil
}

func (r *EventRepo) Delete(ctx context.Context, id string) error {
	for i, evt := range r.Events {
		if evt.ID == id {
			r.Events = append(r.Events[:i], r.Events[i+1:]...)
			return nil
		}
	}
	return event.ErrEventNotFound
}

// OperationRepo is an in-memory operation.OperationRepository.
type OperationRepo struct {
	Operations map[string]operation.DailyOperation // keyed by date|shift
}

func NewOperationRepo() *OperationRepo {
	return &OperationRepo{Operations: map[string]operation.DailyOperation{}}
}

func opKey(date, shift string) string {
	return fmt.Sprintf("%s|%s", date, shift)
}

// Seed inserts an operation, filling in an id if missing.
func (r *OperationRepo) Seed(op operation.DailyOperation) operation.DailyOperation {
	if op.ID == "" {
		op.ID = uuid.NewString()
	}
	r.Operations[opKey(op.Date, op.Shift)] = op
	return op
}

func (r *OperationRepo) GetByDateShift(ctx context.Context, date, shift string) (operation.DailyOperation, error) {
	op, ok := r.Operations[opKey(date, shift)]
	if !ok {
		return operation.DailyOperation{}, operation.ErrOperationNotFound
	}
	return op, nil
}

func (r *OperationRepo) GetLatestBefore(ctx context.Context, shift, date string) (operation.DailyOperation, error) {
	var best operation.DailyOperation
	found := false
	for _, op := range r.Operations {
		if op.Shift != shift || op.Date >= date {
			continue
		}
		if !found || op.Date > best.Date {
			best = op
			found = true
		}
	}
	if !found {
		return operation.DailyOperation{}, operation.ErrOperationNotFound
	}
	return best, nil
}

func (r *OperationRepo) Create(ctx context.Context, op operation.DailyOperation) (operation.DailyOperation, error) {
	if op.ID == "" {
		op.ID = uuid.NewString()
	}
	if op.Status == "" {
		op.Status = operation.OperationOpen
	}
	op.CreatedAt = time.Now()
	op.UpdatedAt = op.CreatedAt
	r.Operations[opKey(op.Date, op.Shift)] = op
	return op, nil
}

func (r *OperationRepo) Update(ctx context.Context, op operation.DailyOperation) error {
	for key, stored := range r.Operations {
		if stored.ID == op.ID {
			op.UpdatedAt = time.Now()
			r.Operations[key] = op
			return nil
		}
	}
	return operation.ErrOperationNotFound
}

// SectorRepo is an in-memory sector.SectorRepository.
type SectorRepo struct {
	Configs map[string]sector.SectorConfiguration
	Targets map[string]sector.HeadcountTarget
}

func NewSectorRepo() *SectorRepo {
	return &SectorRepo{
		Configs: map[string]sector.SectorConfiguration{},
		Targets: map[string]sector.HeadcountTarget{},
	}
}

func (r *SectorRepo) GetConfigByShift(ctx context.Context, shift string) (sector.SectorConfiguration, error) {
	cfg, ok := r.Configs[shift]
	if !ok {
		return sector.SectorConfiguration{}, sector.ErrConfigNotFound
	}
	return cfg, nil
}

func (r *SectorRepo) UpsertConfig(ctx context.Context, shift string, config json.RawMessage) (sector.SectorConfiguration, error) {
	cfg, ok := r.Configs[shift]
	if !ok {
		cfg = sector.SectorConfiguration{ID: uuid.NewString(), ShiftName: shift}
	}
	cfg.Config = config
	cfg.UpdatedAt = time.Now()
	r.Configs[shift] = cfg
	return cfg, nil
}

func (r *SectorRepo) GetTargetByShift(ctx context.Context, shift string) (sector.HeadcountTarget, error) {
	target, ok := r.Targets[shift]
	if !ok {
		return sector.HeadcountTarget{}, sector.ErrTargetNotFound
	}
	return target, nil
}

func (r *SectorRepo) ListTargets(ctx context.Context) ([]sector.HeadcountTarget, error) {
	var result []sector.HeadcountTarget
	for _, target := range r.Targets {
		result = append(result, target)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ShiftName < result[j].ShiftName })
	return result, nil
}

func (r *SectorRepo) UpsertTarget(ctx context.Context, shift string, value int) (sector.HeadcountTarget, error) {
	target, ok := r.Targets[shift]
	if !ok {
		target = sector.HeadcountTarget{ID: uuid.NewString(), ShiftName: shift}
	}
	target.TargetValue = value
	target.UpdatedAt = time.Now()
	r.Targets[shift] = target
	return target, nil
}

// RouteRepo is an in-memory route.RouteRepository.
type RouteRepo struct {
	Routes []route.Route
}

func NewRouteRepo() *RouteRepo {
	return &RouteRepo{}
}

func (r *RouteRepo) Create(ctx context.Context, newRoute route.Route) (route.Route, error) {
	if newRoute.ID == "" {
		newRoute.ID = uuid.NewString()
	}
	newRoute.CreatedAt = time.Now()
	r.Routes = append(r.Routes, newRoute)
	return newRoute, nil
}

func (r *RouteRepo) ListByDateShift(ctx context.Context, date, shift string) ([]route.Route, error) {
	var result []route.Route
	for _, rt := range r.Routes {
		if rt.Date == date && rt.Shift == shift {
			result = append(result, rt)
		}
	}
	return result, nil
}

func (r *RouteRepo) SumTonnage(ctx context.Context, date, shift string) (float64, error) {
	var total float64
	for _, rt := range r.Routes {
		if rt.Date == date && rt.Shift == shift {
			total += rt.Tonnage
		}
	}
	return total, nil
}

func (r *RouteRepo) Delete(ctx context.Context, id string) error {
	for i, rt := range r.Routes {
		if rt.ID == id {
			r.Routes = append(r.Routes[:i], r.Routes[i+1:]...)
			return nil
		}
	}
	return route.ErrRouteNotFound
}
