package operation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/employee"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/event"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/operation"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/sector"
	"github.com/expedicaonl/workforce-backend-go/internal/pkg/database"
)

type routineService struct {
	txManager     database.TxManager
	operationRepo operation.OperationRepository
	employeeRepo  employee.EmployeeRepository
	eventRepo     event.EventRepository
	sectorRepo    sector.SectorRepository
}

func NewRoutineService(
	txManager database.TxManager,
	operationRepo operation.OperationRepository,
	employeeRepo employee.EmployeeRepository,
	eventRepo event.EventRepository,
	sectorRepo sector.SectorRepository,
) operation.RoutineService {
	return &routineService{
		txManager:     txManager,
		operationRepo: operationRepo,
		employeeRepo:  employeeRepo,
		eventRepo:     eventRepo,
		sectorRepo:    sectorRepo,
	}
}

// UpdateRoutine implements operation.RoutineService. The whole reconcile runs
// inside one transaction: sheet write, employee status sync, history events,
// and sector config all commit or roll back together.
func (s *routineService) UpdateRoutine(ctx context.Context, req operation.RoutineUpdateRequest) (operation.UpdateRoutineResult, error) {
	if err := req.Validate(); err != nil {
		return operation.UpdateRoutineResult{}, err
	}

	day, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return operation.UpdateRoutineResult{}, operation.ErrInvalidDate
	}

	var result operation.UpdateRoutineResult

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		op, err := s.operationRepo.GetByDateShift(ctx, req.Date, req.Shift)
		created := false
		if err != nil {
			if !errors.Is(err, operation.ErrOperationNotFound) {
				return err
			}
			op = operation.DailyOperation{
				Date:          req.Date,
				Shift:         req.Shift,
				AttendanceLog: operation.AttendanceLog{},
				Status:        operation.OperationOpen,
			}
			created = true
		}

		oldLog := op.AttendanceLog
		if oldLog == nil {
			oldLog = operation.AttendanceLog{}
		}
		newLog := req.AttendanceLog
		if newLog == nil {
			newLog = operation.AttendanceLog{}
		}

		op.AttendanceLog = newLog
		if req.Tonnage != nil {
			op.Tonnage = *req.Tonnage
		}
		if req.ArrivalTime != nil {
			op.ArrivalTime = req.ArrivalTime
		}
		if req.ExitTime != nil {
			op.ExitTime = req.ExitTime
		}
		if req.Report != nil {
			op.Report = req.Report
		}
		if req.Rating != nil {
			op.Rating = req.Rating
		}
		if req.Status != nil && *req.Status != "" {
			op.Status = *req.Status
		}
		if len(req.LogEntry) > 0 {
			op.Logs = append(op.Logs, req.LogEntry)
		}

		// Employees resolved once per registration id; the allocation pass
		// reuses the cache.
		known := map[string]employee.Employee{}
		lookup := func(regID string) (employee.Employee, bool, error) {
			if emp, ok := known[regID]; ok {
				return emp, true, nil
			}
			emp, err := s.employeeRepo.GetByRegistrationID(ctx, regID)
			if err != nil {
				if errors.Is(err, employee.ErrEmployeeNotFound) {
					return employee.Employee{}, false, nil
				}
				return employee.Employee{}, false, err
			}
			known[regID] = emp
			return emp, true, nil
		}

		eventsCreated, statusChanges, err := s.syncStatuses(ctx, newLog, day, lookup)
		if err != nil {
			return err
		}
		result.EventsCreated += eventsCreated
		result.StatusChanges += statusChanges

		allocEvents, err := s.diffAllocations(ctx, oldLog, newLog, day, lookup)
		if err != nil {
			return err
		}
		result.EventsCreated += allocEvents

		if len(req.SectorConfig) > 0 {
			if _, err := s.sectorRepo.UpsertConfig(ctx, req.Shift, req.SectorConfig); err != nil {
				return err
			}
		}

		if created {
			op, err = s.operationRepo.Create(ctx, op)
			if err != nil {
				return err
			}
		} else if err := s.operationRepo.Update(ctx, op); err != nil {
			return err
		}

		result.OperationID = op.ID
		return nil
	})
	if err != nil {
		return operation.UpdateRoutineResult{}, err
	}

	return result, nil
}

type employeeLookup func(regID string) (employee.Employee, bool, error)

// syncStatuses walks the submitted log and pushes each entry's daily status
// onto the employee's persistent status, recording one transition event per
// actual change. Unknown registration ids are skipped.
func (s *routineService) syncStatuses(ctx context.Context, newLog operation.AttendanceLog, day time.Time, lookup employeeLookup) (eventsCreated, statusChanges int, err error) {
	eventTime := eventTimestamp(day)

	for _, regID := range sortedKeys(newLog) {
		entry := newLog[regID]

		emp, found, err := lookup(regID)
		if err != nil {
			return 0, 0, err
		}
		if !found {
			continue
		}

		switch entry.Status {
		case operation.EntryAbsent:
			// Absence is a daily fact, not a lifecycle change. One falta per
			// employee per calendar day.
			exists, err := s.eventRepo.ExistsOnDay(ctx, emp.ID, event.TypeFalta, day)
			if err != nil {
				return 0, 0, err
			}
			if exists {
				continue
			}
			if err := s.appendEvent(ctx, emp, entry.Sector, event.TypeFalta, fmt.Sprintf("Falta registrada em %s", day.Format("2006-01-02")), event.ImpactMedium, eventTime); err != nil {
				return 0, 0, err
			}
			eventsCreated++

		case operation.EntrySick:
			if emp.Status == employee.StatusSick {
				continue
			}
			if err := s.transition(ctx, emp, employee.StatusSick, entry.Sector, event.TypeAtestado, fmt.Sprintf("Atestado registrado em %s", day.Format("2006-01-02")), eventTime); err != nil {
				return 0, 0, err
			}
			eventsCreated++
			statusChanges++

		case operation.EntryVacation:
			if emp.Status == employee.StatusVacation {
				continue
			}
			if err := s.transition(ctx, emp, employee.StatusVacation, entry.Sector, event.TypeFeriasHist, "Entrou em Férias", eventTime); err != nil {
				return 0, 0, err
			}
			eventsCreated++
			statusChanges++

		case operation.EntryAway:
			if emp.Status == employee.StatusAway {
				continue
			}
			if err := s.transition(ctx, emp, employee.StatusAway, entry.Sector, event.TypeAfastamento, "Colaborador Afastado", eventTime); err != nil {
				return 0, 0, err
			}
			eventsCreated++
			statusChanges++

		case operation.EntryPresent:
			if emp.Status == employee.StatusActive {
				continue
			}
			returnType, returnText := returnEvent(emp.Status)
			if err := s.transition(ctx, emp, employee.StatusActive, entry.Sector, returnType, returnText, eventTime); err != nil {
				return 0, 0, err
			}
			eventsCreated++
			statusChanges++
		}
	}

	return eventsCreated, statusChanges, nil
}

// diffAllocations compares the old and new logs over the union of their
// registration ids and records placement history: new sector → allocacao,
// changed sector/subsector → movimentacao, dropped → remocao.
func (s *routineService) diffAllocations(ctx context.Context, oldLog, newLog operation.AttendanceLog, day time.Time, lookup employeeLookup) (eventsCreated int, err error) {
	eventTime := eventTimestamp(day)

	union := map[string]struct{}{}
	for regID := range oldLog {
		union[regID] = struct{}{}
	}
	for regID := range newLog {
		union[regID] = struct{}{}
	}

	regIDs := make([]string, 0, len(union))
	for regID := range union {
		regIDs = append(regIDs, regID)
	}
	sort.Strings(regIDs)

	for _, regID := range regIDs {
		oldEntry, hadOld := oldLog[regID]
		newEntry, hasNew := newLog[regID]

		oldPlaced := hadOld && oldEntry.Sector != ""
		newPlaced := hasNew && newEntry.Sector != ""

		var eventType event.Type
		var text, sectorName string

		switch {
		case !oldPlaced && newPlaced:
			eventType = event.TypeAllocacao
			text = fmt.Sprintf("Alocado em %s", placementLabel(newEntry))
			sectorName = newEntry.Sector
		case oldPlaced && !newPlaced:
			eventType = event.TypeRemocao
			text = fmt.Sprintf("Removido de %s", placementLabel(oldEntry))
			sectorName = oldEntry.Sector
		case oldPlaced && newPlaced && !oldEntry.SamePlacement(newEntry):
			eventType = event.TypeMovimentacao
			text = fmt.Sprintf("Movido de %s para %s", placementLabel(oldEntry), placementLabel(newEntry))
			sectorName = newEntry.Sector
		default:
			continue
		}

		emp, found, err := lookup(regID)
		if err != nil {
			return 0, err
		}
		if !found {
			continue
		}

		if err := s.appendEvent(ctx, emp, sectorName, eventType, text, event.ImpactLow, eventTime); err != nil {
			return 0, err
		}
		eventsCreated++
	}

	return eventsCreated, nil
}

func (s *routineService) transition(ctx context.Context, emp employee.Employee, target employee.Status, sectorName string, eventType event.Type, text string, eventTime time.Time) error {
	if err := s.employeeRepo.UpdateStatus(ctx, emp.ID, target); err != nil {
		return err
	}
	return s.appendEvent(ctx, emp, sectorName, eventType, text, event.ImpactLow, eventTime)
}

func (s *routineService) appendEvent(ctx context.Context, emp employee.Employee, sectorName string, eventType event.Type, text string, impact event.Impact, eventTime time.Time) error {
	employeeID := emp.ID
	_, err := s.eventRepo.Create(ctx, event.Event{
		Timestamp:  eventTime,
		Text:       text,
		Type:       eventType,
		Category:   event.CategoryPessoas,
		Sector:     sectorName,
		Impact:     impact,
		EmployeeID: &employeeID,
	})
	return err
}

// GetRoutine implements operation.RoutineService.
func (s *routineService) GetRoutine(ctx context.Context, date, shift string) (operation.RoutineResponse, error) {
	op, err := s.operationRepo.GetByDateShift(ctx, date, shift)
	if err == nil {
		return toRoutineResponse(op, false), nil
	}
	if !errors.Is(err, operation.ErrOperationNotFound) {
		return operation.RoutineResponse{}, err
	}

	// Carry forward: copy the most recent prior sheet for the shift and
	// remap each carried entry from the employee's current status. Nothing
	// is persisted by a read.
	prior, err := s.operationRepo.GetLatestBefore(ctx, shift, date)
	if err != nil {
		if errors.Is(err, operation.ErrOperationNotFound) {
			return operation.RoutineResponse{
				Date:          date,
				Shift:         shift,
				AttendanceLog: operation.AttendanceLog{},
				Status:        operation.OperationOpen,
				Transient:     true,
			}, nil
		}
		return operation.RoutineResponse{}, err
	}

	carried := operation.AttendanceLog{}
	for _, regID := range sortedKeys(prior.AttendanceLog) {
		entry := prior.AttendanceLog[regID]

		emp, err := s.employeeRepo.GetByRegistrationID(ctx, regID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				continue
			}
			return operation.RoutineResponse{}, err
		}
		if emp.Status == employee.StatusFired {
			continue
		}

		entry.Status = entryStatusFor(emp.Status)
		carried[regID] = entry
	}

	return operation.RoutineResponse{
		Date:          date,
		Shift:         shift,
		AttendanceLog: carried,
		Status:        operation.OperationOpen,
		Transient:     true,
	}, nil
}

// returnEvent picks the return event flavor from the status being left.
func returnEvent(prior employee.Status) (event.Type, string) {
	switch prior {
	case employee.StatusVacation:
		return event.TypeRetornoFerias, "Retornou de Férias"
	case employee.StatusSick:
		return event.TypeRetornoAtestado, "Retornou de Atestado"
	default:
		return event.TypeRetorno, "Retornou ao trabalho"
	}
}

// entryStatusFor maps a persistent status onto the per-day vocabulary for
// carry-forward reads. Anyone not explicitly off work starts the day present.
func entryStatusFor(status employee.Status) operation.EntryStatus {
	switch status {
	case employee.StatusVacation:
		return operation.EntryVacation
	case employee.StatusSick:
		return operation.EntrySick
	case employee.StatusAway:
		return operation.EntryAway
	default:
		return operation.EntryPresent
	}
}

// eventTimestamp pins events to the operation's calendar day while keeping
// the wall-clock time of the submission, so backfilled days dedupe correctly.
func eventTimestamp(day time.Time) time.Time {
	now := time.Now()
	return time.Date(day.Year(), day.Month(), day.Day(), now.Hour(), now.Minute(), now.Second(), 0, day.Location())
}

func sortedKeys(log operation.AttendanceLog) []string {
	keys := make([]string, 0, len(log))
	for k := range log {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func toRoutineResponse(op operation.DailyOperation, transient bool) operation.RoutineResponse {
	resp := operation.RoutineResponse{
		ID:            op.ID,
		Date:          op.Date,
		Shift:         op.Shift,
		AttendanceLog: op.AttendanceLog,
		Tonnage:       op.Tonnage,
		ArrivalTime:   op.ArrivalTime,
		ExitTime:      op.ExitTime,
		Report:        op.Report,
		Rating:        op.Rating,
		Status:        op.Status,
		Logs:          op.Logs,
		Transient:     transient,
	}
	if !op.UpdatedAt.IsZero() {
		updatedAt := op.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &updatedAt
	}
	if resp.AttendanceLog == nil {
		resp.AttendanceLog = operation.AttendanceLog{}
	}
	return resp
}

// placementLabel renders "Setor" or "Setor/Subsetor" for event texts.
func placementLabel(entry operation.Entry) string {
	if entry.Subsector != "" {
		return entry.Sector + "/" + entry.Subsector
	}
	return entry.Sector
}
