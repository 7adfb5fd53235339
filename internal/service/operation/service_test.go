package operation

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/employee"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/event"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/operation"
	"github.com/expedicaonl/workforce-backend-go/internal/service/servicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	employees *servicetest.EmployeeRepo
	events    *servicetest.EventRepo
	ops       *servicetest.OperationRepo
	sectors   *servicetest.SectorRepo
	service   operation.RoutineService
}

func newFixture() *fixture {
	f := &fixture{
		employees: servicetest.NewEmployeeRepo(),
		events:    servicetest.NewEventRepo(),
		ops:       servicetest.NewOperationRepo(),
		sectors:   servicetest.NewSectorRepo(),
	}
	f.service = NewRoutineService(servicetest.TxManager{}, f.ops, f.employees, f.events, f.sectors)
	return f
}

func (f *fixture) seedWorker(regID string, status employee.Status) employee.Employee {
	return f.employees.Seed(employee.Employee{
		RegistrationID: regID,
		Name:           "Colaborador " + regID,
		Role:           "Operador",
		CostCenter:     "Geral",
		WorkShift:      "Manhã",
		Status:         status,
	})
}

func TestUpdateRoutineFirstSubmissionAllocates(t *testing.T) {
	f := newFixture()
	f.seedWorker("1001", employee.StatusActive)
	f.seedWorker("1002", employee.StatusActive)

	result, err := f.service.UpdateRoutine(context.Background(), operation.RoutineUpdateRequest{
		Date:  "2025-08-01",
		Shift: "Manhã",
		AttendanceLog: operation.AttendanceLog{
			"1001": {Status: operation.EntryPresent, Sector: "carga"},
			"1002": {Status: operation.EntryPresent, Sector: "separacao", Subsector: "doca-2"},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.OperationID)
	assert.Equal(t, 0, result.StatusChanges)
	assert.Equal(t, 2, result.EventsCreated)

	allocations := f.events.ByType(event.TypeAllocacao)
	require.Len(t, allocations, 2)
	assert.Equal(t, "Alocado em carga", allocations[0].Text)
	assert.Equal(t, "Alocado em separacao/doca-2", allocations[1].Text)

	op, err := f.ops.GetByDateShift(context.Background(), "2025-08-01", "Manhã")
	require.NoError(t, err)
	assert.Len(t, op.AttendanceLog, 2)
	assert.Equal(t, operation.OperationOpen, op.Status)
}

func TestUpdateRoutineIdenticalResubmitIsIdempotent(t *testing.T) {
	f := newFixture()
	f.seedWorker("1001", employee.StatusActive)

	req := operation.RoutineUpdateRequest{
		Date:  "2025-08-01",
		Shift: "Manhã",
		AttendanceLog: operation.AttendanceLog{
			"1001": {Status: operation.EntryPresent, Sector: "carga"},
		},
	}

	first, err := f.service.UpdateRoutine(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1, first.EventsCreated)

	second, err := f.service.UpdateRoutine(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, second.EventsCreated)
	assert.Equal(t, 0, second.StatusChanges)
	assert.Equal(t, first.OperationID, second.OperationID)
	assert.Len(t, f.events.Events, 1)
}

func TestUpdateRoutineAbsentEmitsFaltaOncePerDay(t *testing.T) {
	f := newFixture()
	emp := f.seedWorker("1001", employee.StatusActive)

	req := operation.RoutineUpdateRequest{
		Date:  "2025-08-01",
		Shift: "Manhã",
		AttendanceLog: operation.AttendanceLog{
			"1001": {Status: operation.EntryAbsent, Sector: "carga"},
		},
	}

	result, err := f.service.UpdateRoutine(context.Background(), req)
	require.NoError(t, err)
	// one falta plus one allocacao for the new placement
	assert.Equal(t, 2, result.EventsCreated)
	assert.Equal(t, 0, result.StatusChanges, "absence never touches persistent status")

	stored, err := f.employees.GetByID(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.StatusActive, stored.Status)

	// Same day again: no duplicate falta, no new allocation.
	result, err = f.service.UpdateRoutine(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, result.EventsCreated)
	assert.Len(t, f.events.ByType(event.TypeFalta), 1)
}

func TestUpdateRoutineSickRoundTrip(t *testing.T) {
	f := newFixture()
	emp := f.seedWorker("1001", employee.StatusActive)

	_, err := f.service.UpdateRoutine(context.Background(), operation.RoutineUpdateRequest{
		Date:  "2025-08-01",
		Shift: "Manhã",
		AttendanceLog: operation.AttendanceLog{
			"1001": {Status: operation.EntrySick, Sector: "carga"},
		},
	})
	require.NoError(t, err)

	stored, _ := f.employees.GetByID(context.Background(), emp.ID)
	assert.Equal(t, employee.StatusSick, stored.Status)
	require.Len(t, f.events.ByType(event.TypeAtestado), 1)

	_, err = f.service.UpdateRoutine(context.Background(), operation.RoutineUpdateRequest{
		Date:  "2025-08-02",
		Shift: "Manhã",
		AttendanceLog: operation.AttendanceLog{
			"1001": {Status: operation.EntryPresent, Sector: "carga"},
		},
	})
	require.NoError(t, err)

	stored, _ = f.employees.GetByID(context.Background(), emp.ID)
	assert.Equal(t, employee.StatusActive, stored.Status)
	returns := f.events.ByType(event.TypeRetornoAtestado)
	require.Len(t, returns, 1)
	assert.Equal(t, "Retornou de Atestado", returns[0].Text)
}

func TestUpdateRoutineVacationReturn(t *testing.T) {
	f := newFixture()
	emp := f.seedWorker("1001", employee.StatusVacation)

	_, err := f.service.UpdateRoutine(context.Background(), operation.RoutineUpdateRequest{
		Date:  "2025-08-01",
		Shift: "Manhã",
		AttendanceLog: operation.AttendanceLog{
			"1001": {Status: operation.EntryPresent, Sector: "carga"},
		},
	})
	require.NoError(t, err)

	stored, _ := f.employees.GetByID(context.Background(), emp.ID)
	assert.Equal(t, employee.StatusActive, stored.Status)
	assert.Len(t, f.events.ByType(event.TypeRetornoFerias), 1)
}

func TestUpdateRoutineSkipsUnknownWorkers(t *testing.T) {
	f := newFixture()

	result, err := f.service.UpdateRoutine(context.Background(), operation.RoutineUpdateRequest{
		Date:  "2025-08-01",
		Shift: "Manhã",
		AttendanceLog: operation.AttendanceLog{
			"9999": {Status: operation.EntrySick, Sector: "carga"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.EventsCreated)
	assert.Equal(t, 0, result.StatusChanges)
	assert.NotEmpty(t, result.OperationID, "sheet persists even when no worker matched")
}

func TestUpdateRoutineAllocationDiff(t *testing.T) {
	f := newFixture()
	f.seedWorker("1001", employee.StatusActive)
	f.seedWorker("1002", employee.StatusActive)

	_, err := f.service.UpdateRoutine(context.Background(), operation.RoutineUpdateRequest{
		Date:  "2025-08-01",
		Shift: "Manhã",
		AttendanceLog: operation.AttendanceLog{
			"1001": {Status: operation.EntryPresent, Sector: "carga"},
			"1002": {Status: operation.EntryPresent, Sector: "separacao"},
		},
	})
	require.NoError(t, err)

	// 1001 moves, 1002 drops off the sheet.
	result, err := f.service.UpdateRoutine(context.Background(), operation.RoutineUpdateRequest{
		Date:  "2025-08-01",
		Shift: "Manhã",
		AttendanceLog: operation.AttendanceLog{
			"1001": {Status: operation.EntryPresent, Sector: "expedicao"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.EventsCreated)

	moves := f.events.ByType(event.TypeMovimentacao)
	require.Len(t, moves, 1)
	assert.Equal(t, "Movido de carga para expedicao", moves[0].Text)

	removals := f.events.ByType(event.TypeRemocao)
	require.Len(t, removals, 1)
	assert.Equal(t, "Removido de separacao", removals[0].Text)
}

func TestUpdateRoutineUpsertsSectorConfig(t *testing.T) {
	f := newFixture()

	config := json.RawMessage(`{"sectors":[{"key":"carga","label":"Carga","target":12}]}`)
	_, err := f.service.UpdateRoutine(context.Background(), operation.RoutineUpdateRequest{
		Date:          "2025-08-01",
		Shift:         "Manhã",
		AttendanceLog: operation.AttendanceLog{},
		SectorConfig:  config,
	})
	require.NoError(t, err)

	stored, err := f.sectors.GetConfigByShift(context.Background(), "Manhã")
	require.NoError(t, err)
	assert.JSONEq(t, string(config), string(stored.Config))
}

func TestUpdateRoutineAppliesScalars(t *testing.T) {
	f := newFixture()

	tonnage := 42.5
	arrival := "06:30"
	rating := 4
	status := operation.OperationClosed
	_, err := f.service.UpdateRoutine(context.Background(), operation.RoutineUpdateRequest{
		Date:          "2025-08-01",
		Shift:         "Noite",
		AttendanceLog: operation.AttendanceLog{},
		Tonnage:       &tonnage,
		ArrivalTime:   &arrival,
		Rating:        &rating,
		Status:        &status,
	})
	require.NoError(t, err)

	op, err := f.ops.GetByDateShift(context.Background(), "2025-08-01", "Noite")
	require.NoError(t, err)
	assert.Equal(t, 42.5, op.Tonnage)
	assert.Equal(t, "06:30", *op.ArrivalTime)
	assert.Equal(t, 4, *op.Rating)
	assert.Equal(t, operation.OperationClosed, op.Status)
}

func TestUpdateRoutineRejectsInvalidRequest(t *testing.T) {
	f := newFixture()

	_, err := f.service.UpdateRoutine(context.Background(), operation.RoutineUpdateRequest{
		Date:  "not-a-date",
		Shift: "Manhã",
	})
	assert.Error(t, err)
}

func TestGetRoutineReturnsStoredSheet(t *testing.T) {
	f := newFixture()
	f.ops.Seed(operation.DailyOperation{
		Date:  "2025-08-01",
		Shift: "Manhã",
		AttendanceLog: operation.AttendanceLog{
			"1001": {Status: operation.EntryPresent, Sector: "carga"},
		},
		Tonnage: 10,
	})

	resp, err := f.service.GetRoutine(context.Background(), "2025-08-01", "Manhã")
	require.NoError(t, err)
	assert.False(t, resp.Transient)
	assert.Equal(t, 10.0, resp.Tonnage)
	assert.Len(t, resp.AttendanceLog, 1)
}

func TestGetRoutineCarriesForwardWithRemappedStatuses(t *testing.T) {
	f := newFixture()
	f.seedWorker("1001", employee.StatusActive)
	f.seedWorker("1002", employee.StatusVacation)
	f.seedWorker("1003", employee.StatusFired)

	f.ops.Seed(operation.DailyOperation{
		Date:  "2025-08-01",
		Shift: "Manhã",
		AttendanceLog: operation.AttendanceLog{
			"1001": {Status: operation.EntryAbsent, Sector: "carga"},
			"1002": {Status: operation.EntryPresent, Sector: "separacao"},
			"1003": {Status: operation.EntryPresent, Sector: "carga"},
		},
		Tonnage: 99,
	})

	resp, err := f.service.GetRoutine(context.Background(), "2025-08-04", "Manhã")
	require.NoError(t, err)
	assert.True(t, resp.Transient)
	assert.Empty(t, resp.ID)
	assert.Equal(t, "2025-08-04", resp.Date)
	assert.Zero(t, resp.Tonnage, "scalars do not carry forward")

	require.Len(t, resp.AttendanceLog, 2, "fired workers drop off")
	assert.Equal(t, operation.EntryPresent, resp.AttendanceLog["1001"].Status, "yesterday's absence resets")
	assert.Equal(t, "carga", resp.AttendanceLog["1001"].Sector, "placement carries forward")
	assert.Equal(t, operation.EntryVacation, resp.AttendanceLog["1002"].Status)

	// Nothing persisted by the read.
	_, err = f.ops.GetByDateShift(context.Background(), "2025-08-04", "Manhã")
	assert.ErrorIs(t, err, operation.ErrOperationNotFound)
}

func TestGetRoutineWithoutHistoryReturnsEmptyTransient(t *testing.T) {
	f := newFixture()

	resp, err := f.service.GetRoutine(context.Background(), "2025-08-01", "Tarde")
	require.NoError(t, err)
	assert.True(t, resp.Transient)
	assert.Empty(t, resp.AttendanceLog)
	assert.Equal(t, operation.OperationOpen, resp.Status)
}
