package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/employee"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/event"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/sector"
	"github.com/expedicaonl/workforce-backend-go/internal/pkg/database"
	"github.com/expedicaonl/workforce-backend-go/internal/pkg/validator"
)

// Import rows missing a field fall back to the site defaults.
const (
	defaultRole       = "Operador"
	defaultShift      = "Manhã"
	defaultCostCenter = "Geral"
)

type employeeService struct {
	txManager    database.TxManager
	employeeRepo employee.EmployeeRepository
	eventRepo    event.EventRepository
	sectorRepo   sector.SectorRepository
}

func NewEmployeeService(
	txManager database.TxManager,
	employeeRepo employee.EmployeeRepository,
	eventRepo event.EventRepository,
	sectorRepo sector.SectorRepository,
) employee.EmployeeService {
	return &employeeService{
		txManager:    txManager,
		employeeRepo: employeeRepo,
		eventRepo:    eventRepo,
		sectorRepo:   sectorRepo,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *employeeService) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	newEmployee := employee.Employee{
		RegistrationID: strings.TrimSpace(req.RegistrationID),
		Name:           strings.TrimSpace(req.Name),
		Role:           req.Role,
		CostCenter:     req.CostCenter,
		WorkShift:      req.WorkShift,
		WorkDays:       req.WorkDays,
		Status:         employee.StatusActive,
		AdmissionDate:  parseDatePtr(req.AdmissionDate),
		Birthday:       parseDatePtr(req.Birthday),
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *employeeService) ListEmployees(ctx context.Context, filter employee.ListFilter) (employee.ListEmployeesResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	stats, err := s.rosterStats(ctx)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	resp := employee.ListEmployeesResponse{
		Employees: make([]employee.EmployeeResponse, 0, len(employees)),
		Stats:     stats,
	}
	for _, emp := range employees {
		resp.Employees = append(resp.Employees, toEmployeeResponse(emp))
	}

	return resp, nil
}

// rosterStats counts active employees per shift against configured headcount
// targets. Shifts without a target fall back to the default.
func (s *employeeService) rosterStats(ctx context.Context) (employee.RosterStats, error) {
	all, err := s.employeeRepo.ListNotFired(ctx)
	if err != nil {
		return employee.RosterStats{}, err
	}

	targets, err := s.sectorRepo.ListTargets(ctx)
	if err != nil {
		return employee.RosterStats{}, err
	}
	targetByShift := map[string]int{}
	for _, t := range targets {
		targetByShift[t.ShiftName] = t.TargetValue
	}

	countByShift := map[string]int{}
	for _, emp := range all {
		if emp.Status == employee.StatusActive {
			countByShift[emp.WorkShift]++
		}
	}

	var stats employee.RosterStats
	for _, shift := range validator.Shifts {
		target, ok := targetByShift[shift]
		if !ok {
			target = sector.DefaultTargetValue
		}
		count := countByShift[shift]
		vacancies := target - count
		if vacancies < 0 {
			vacancies = 0
		}
		stats.Shifts = append(stats.Shifts, employee.ShiftHeadcount{
			Name:      shift,
			Count:     count,
			Target:    target,
			Vacancies: vacancies,
		})
		stats.TotalActive += count
		stats.TotalTarget += target
		stats.Vacancies += vacancies
	}

	return stats, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *employeeService) GetEmployee(ctx context.Context, id string) (employee.EmployeeDetailResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	events, err := s.eventRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	detail := employee.EmployeeDetailResponse{
		Employee: toEmployeeResponse(emp),
		Events:   make([]event.EventResponse, 0, len(events)),
	}
	for _, evt := range events {
		detail.Events = append(detail.Events, event.ToResponse(evt))
		switch evt.Type {
		case event.TypeFalta:
			detail.Stats.Faltas++
		case event.TypeAtestado:
			detail.Stats.Atestados++
		case event.TypeAdvertencia:
			detail.Stats.Advertencias++
		case event.TypeFeriasHist:
			detail.Stats.Ferias++
		}
	}

	return detail, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *employeeService) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		emp, err := s.employeeRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		if req.ReplacementID != nil && *req.ReplacementID != "" {
			if _, err := s.employeeRepo.GetByID(ctx, *req.ReplacementID); err != nil {
				if errors.Is(err, employee.ErrEmployeeNotFound) {
					return employee.ErrReplacementNotFound
				}
				return err
			}
		}

		identityChanged := emp.Name != strings.TrimSpace(req.Name) ||
			emp.RegistrationID != strings.TrimSpace(req.RegistrationID) ||
			emp.Role != req.Role ||
			emp.WorkShift != req.WorkShift

		emp.Name = strings.TrimSpace(req.Name)
		emp.RegistrationID = strings.TrimSpace(req.RegistrationID)
		emp.Role = req.Role
		emp.CostCenter = req.CostCenter
		emp.WorkShift = req.WorkShift
		if len(req.WorkDays) > 0 {
			emp.WorkDays = req.WorkDays
		}
		emp.AdmissionDate = parseDatePtr(req.AdmissionDate)
		emp.Birthday = parseDatePtr(req.Birthday)
		emp.ReplacementID = req.ReplacementID

		if err := s.employeeRepo.Update(ctx, emp); err != nil {
			return err
		}

		if identityChanged {
			employeeID := emp.ID
			_, err := s.eventRepo.Create(ctx, event.Event{
				Timestamp:  time.Now(),
				Text:       fmt.Sprintf("Cadastro alterado: %s", emp.Name),
				Type:       event.TypeAlteracaoCadastro,
				Category:   event.CategoryPessoas,
				Impact:     event.ImpactLow,
				EmployeeID: &employeeID,
			})
			if err != nil {
				return err
			}
		}

		updated = emp
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(updated), nil
}

// ApplyStatusAction implements employee.EmployeeService.
func (s *employeeService) ApplyStatusAction(ctx context.Context, req employee.StatusActionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		emp, err := s.employeeRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		if req.Action == "delete" {
			// Events outlive the employee: unlink before the hard delete.
			if err := s.eventRepo.UnlinkEmployee(ctx, emp.ID); err != nil {
				return err
			}
			return s.employeeRepo.Delete(ctx, emp.ID)
		}

		target := employee.Status(req.Action)
		if err := s.employeeRepo.UpdateStatus(ctx, emp.ID, target); err != nil {
			return err
		}

		eventType, text := statusActionEvent(target)
		employeeID := emp.ID
		_, err = s.eventRepo.Create(ctx, event.Event{
			Timestamp:  time.Now(),
			Text:       text,
			Type:       eventType,
			Category:   event.CategoryPessoas,
			Impact:     event.ImpactLow,
			EmployeeID: &employeeID,
		})
		return err
	})
}

// statusActionEvent maps a manual status change to its ledger entry.
func statusActionEvent(target employee.Status) (event.Type, string) {
	switch target {
	case employee.StatusVacation:
		return event.TypeFeriasHist, "Entrou em Férias"
	case employee.StatusFired:
		return event.TypeDemissao, "Colaborador Demitido"
	case employee.StatusAway:
		return event.TypeAfastamento, "Colaborador Afastado"
	default:
		return event.TypeOcorrencia, fmt.Sprintf("Status alterado para %s", target)
	}
}

// ScheduleVacation implements employee.EmployeeService.
func (s *employeeService) ScheduleVacation(ctx context.Context, req employee.ScheduleVacationRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	var start, end *string
	if req.VacationStart != "" && req.VacationEnd != "" {
		start = &req.VacationStart
		end = &req.VacationEnd
	}

	if err := s.employeeRepo.SetVacationWindow(ctx, emp.ID, start, end); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.GetByID(ctx, emp.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(updated), nil
}

// ImportEmployees implements employee.EmployeeService.
func (s *employeeService) ImportEmployees(ctx context.Context, req employee.ImportEmployeesRequest) (employee.ImportResult, error) {
	if err := req.Validate(); err != nil {
		return employee.ImportResult{}, err
	}

	var result employee.ImportResult

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, row := range req.Rows {
			regID := strings.TrimSpace(row.RegistrationID)
			if regID == "" || !validator.IsValidRegistrationID(regID) {
				result.Skipped++
				continue
			}

			if _, err := s.employeeRepo.GetByRegistrationID(ctx, regID); err == nil {
				result.Skipped++
				continue
			} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
				return err
			}

			newEmployee := employee.Employee{
				RegistrationID: regID,
				Name:           strings.TrimSpace(row.Name),
				Role:           row.Role,
				CostCenter:     row.CostCenter,
				WorkShift:      row.WorkShift,
				Status:         employee.StatusActive,
				AdmissionDate:  parseDatePtr(row.AdmissionDate),
				Birthday:       parseDatePtr(row.Birthday),
			}
			if newEmployee.Name == "" {
				newEmployee.Name = "Colaborador " + regID
			}
			if newEmployee.Role == "" {
				newEmployee.Role = defaultRole
			}
			if newEmployee.CostCenter == "" {
				newEmployee.CostCenter = defaultCostCenter
			}
			if !validator.IsValidShift(newEmployee.WorkShift) {
				newEmployee.WorkShift = defaultShift
			}

			if _, err := s.employeeRepo.Create(ctx, newEmployee); err != nil {
				if errors.Is(err, employee.ErrRegistrationIDExists) {
					result.Skipped++
					continue
				}
				return err
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return employee.ImportResult{}, err
	}

	return result, nil
}

// SyncVacationStatuses implements employee.EmployeeService. Employees inside
// their configured window are forced onto vacation; employees marked vacation
// outside any window revert to active. Runs from the scheduler or the manual
// endpoint, never from a read path.
func (s *employeeService) SyncVacationStatuses(ctx context.Context, ref time.Time) (employee.VacationSyncResult, error) {
	var result employee.VacationSyncResult

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		employees, err := s.employeeRepo.ListNotFired(ctx)
		if err != nil {
			return err
		}

		for _, emp := range employees {
			switch {
			case emp.OnVacationAt(ref):
				if emp.Status == employee.StatusVacation {
					continue
				}
				if err := s.employeeRepo.UpdateStatus(ctx, emp.ID, employee.StatusVacation); err != nil {
					return err
				}
				employeeID := emp.ID
				if _, err := s.eventRepo.Create(ctx, event.Event{
					Timestamp:  ref,
					Text:       "Entrou em Férias",
					Type:       event.TypeFeriasHist,
					Category:   event.CategoryPessoas,
					Impact:     event.ImpactLow,
					EmployeeID: &employeeID,
				}); err != nil {
					return err
				}
				result.Started++

			case emp.Status == employee.StatusVacation && emp.HasVacationWindow():
				if err := s.employeeRepo.UpdateStatus(ctx, emp.ID, employee.StatusActive); err != nil {
					return err
				}
				employeeID := emp.ID
				if _, err := s.eventRepo.Create(ctx, event.Event{
					Timestamp:  ref,
					Text:       "Retornou de Férias",
					Type:       event.TypeRetornoFerias,
					Category:   event.CategoryPessoas,
					Impact:     event.ImpactLow,
					EmployeeID: &employeeID,
				}); err != nil {
					return err
				}
				result.Returned++
			}
		}
		return nil
	})
	if err != nil {
		return employee.VacationSyncResult{}, err
	}

	return result, nil
}

func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:              emp.ID,
		RegistrationID:  emp.RegistrationID,
		Name:            emp.Name,
		Role:            emp.Role,
		CostCenter:      emp.CostCenter,
		WorkShift:       emp.WorkShift,
		WorkDays:        emp.WorkDays,
		Status:          string(emp.Status),
		VacationStart:   formatDatePtr(emp.VacationStart),
		VacationEnd:     formatDatePtr(emp.VacationEnd),
		TerminationDate: formatDatePtr(emp.TerminationDate),
		ReplacementID:   emp.ReplacementID,
		AdmissionDate:   formatDatePtr(emp.AdmissionDate),
		Birthday:        formatDatePtr(emp.Birthday),
		CreatedAt:       emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       emp.UpdatedAt.Format(time.RFC3339),
	}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
