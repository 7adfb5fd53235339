package employee

import (
	"context"
	"testing"
	"time"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/employee"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/event"
	"github.com/expedicaonl/workforce-backend-go/internal/service/servicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	employees *servicetest.EmployeeRepo
	events    *servicetest.EventRepo
	sectors   *servicetest.SectorRepo
	service   employee.EmployeeService
}

func newFixture() *fixture {
	f := &fixture{
		employees: servicetest.NewEmployeeRepo(),
		events:    servicetest.NewEventRepo(),
		sectors:   servicetest.NewSectorRepo(),
	}
	f.service = NewEmployeeService(servicetest.TxManager{}, f.employees, f.events, f.sectors)
	return f
}

func TestCreateEmployeeDefaults(t *testing.T) {
	f := newFixture()

	resp, err := f.service.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Name:           "Maria Souza",
		RegistrationID: "1001",
		Role:           "Operador",
		WorkShift:      "Manhã",
		CostCenter:     "Geral",
	})
	require.NoError(t, err)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, employee.DefaultWorkDays, resp.WorkDays)
	assert.NotEmpty(t, resp.ID)
}

func TestCreateEmployeeDuplicateRegistration(t *testing.T) {
	f := newFixture()
	f.employees.Seed(employee.Employee{RegistrationID: "1001", Name: "Maria", Status: employee.StatusActive})

	_, err := f.service.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Name:           "Outra Maria",
		RegistrationID: "1001",
		Role:           "Operador",
		WorkShift:      "Manhã",
		CostCenter:     "Geral",
	})
	assert.ErrorIs(t, err, employee.ErrRegistrationIDExists)
}

func TestListEmployeesRosterStats(t *testing.T) {
	f := newFixture()
	for i, regID := range []string{"1", "2", "3"} {
		f.employees.Seed(employee.Employee{
			RegistrationID: regID,
			Name:           "Trabalhador " + regID,
			WorkShift:      "Manhã",
			Status:         employee.StatusActive,
			CreatedAt:      time.Now().Add(time.Duration(i) * time.Second),
		})
	}
	f.employees.Seed(employee.Employee{RegistrationID: "4", Name: "De Férias", WorkShift: "Manhã", Status: employee.StatusVacation})
	_, err := f.sectors.UpsertTarget(context.Background(), "Manhã", 10)
	require.NoError(t, err)

	resp, err := f.service.ListEmployees(context.Background(), employee.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, resp.Employees, 4)

	var morning *employee.ShiftHeadcount
	for i := range resp.Stats.Shifts {
		if resp.Stats.Shifts[i].Name == "Manhã" {
			morning = &resp.Stats.Shifts[i]
		}
	}
	require.NotNil(t, morning)
	assert.Equal(t, 3, morning.Count, "only actives count toward headcount")
	assert.Equal(t, 10, morning.Target)
	assert.Equal(t, 7, morning.Vacancies)
}

func TestGetEmployeeDetailCounters(t *testing.T) {
	f := newFixture()
	emp := f.employees.Seed(employee.Employee{RegistrationID: "1001", Name: "Maria", Status: employee.StatusActive})

	for _, eventType := range []event.Type{event.TypeFalta, event.TypeFalta, event.TypeAtestado, event.TypeAdvertencia, event.TypeFeriasHist} {
		_, err := f.events.Create(context.Background(), event.Event{
			Text:       "hist",
			Type:       eventType,
			Category:   event.CategoryPessoas,
			EmployeeID: &emp.ID,
		})
		require.NoError(t, err)
	}

	detail, err := f.service.GetEmployee(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Events, 5)
	assert.Equal(t, 2, detail.Stats.Faltas)
	assert.Equal(t, 1, detail.Stats.Atestados)
	assert.Equal(t, 1, detail.Stats.Advertencias)
	assert.Equal(t, 1, detail.Stats.Ferias)
}

func TestUpdateEmployeeEmitsChangeEvent(t *testing.T) {
	f := newFixture()
	emp := f.employees.Seed(employee.Employee{
		RegistrationID: "1001", Name: "Maria", Role: "Operador",
		CostCenter: "Geral", WorkShift: "Manhã", Status: employee.StatusActive,
	})

	_, err := f.service.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ID:             emp.ID,
		Name:           "Maria Silva",
		RegistrationID: "1001",
		Role:           "Operador",
		WorkShift:      "Manhã",
		CostCenter:     "Geral",
	})
	require.NoError(t, err)
	assert.Len(t, f.events.ByType(event.TypeAlteracaoCadastro), 1)

	// Re-saving the same data emits nothing new.
	_, err = f.service.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ID:             emp.ID,
		Name:           "Maria Silva",
		RegistrationID: "1001",
		Role:           "Operador",
		WorkShift:      "Manhã",
		CostCenter:     "Geral",
	})
	require.NoError(t, err)
	assert.Len(t, f.events.ByType(event.TypeAlteracaoCadastro), 1)
}

func TestApplyStatusActionFired(t *testing.T) {
	f := newFixture()
	emp := f.employees.Seed(employee.Employee{RegistrationID: "1001", Name: "Maria", Status: employee.StatusActive})

	err := f.service.ApplyStatusAction(context.Background(), employee.StatusActionRequest{ID: emp.ID, Action: "fired"})
	require.NoError(t, err)

	stored, _ := f.employees.GetByID(context.Background(), emp.ID)
	assert.Equal(t, employee.StatusFired, stored.Status)
	assert.NotNil(t, stored.TerminationDate)

	events := f.events.ByType(event.TypeDemissao)
	require.Len(t, events, 1)
	assert.Equal(t, "Colaborador Demitido", events[0].Text)
}

func TestApplyStatusActionDeleteUnlinksEvents(t *testing.T) {
	f := newFixture()
	emp := f.employees.Seed(employee.Employee{RegistrationID: "1001", Name: "Maria", Status: employee.StatusActive})
	_, err := f.events.Create(context.Background(), event.Event{
		Text: "hist", Type: event.TypeFalta, Category: event.CategoryPessoas, EmployeeID: &emp.ID,
	})
	require.NoError(t, err)

	err = f.service.ApplyStatusAction(context.Background(), employee.StatusActionRequest{ID: emp.ID, Action: "delete"})
	require.NoError(t, err)

	_, err = f.employees.GetByID(context.Background(), emp.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	require.Len(t, f.events.Events, 1, "events outlive the employee")
	assert.Nil(t, f.events.Events[0].EmployeeID)
}

func TestScheduleVacationSetAndClear(t *testing.T) {
	f := newFixture()
	emp := f.employees.Seed(employee.Employee{RegistrationID: "1001", Name: "Maria", Status: employee.StatusActive})

	resp, err := f.service.ScheduleVacation(context.Background(), employee.ScheduleVacationRequest{
		ID:            emp.ID,
		VacationStart: "2025-09-01",
		VacationEnd:   "2025-09-15",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.VacationStart)
	assert.Equal(t, "2025-09-01", *resp.VacationStart)

	resp, err = f.service.ScheduleVacation(context.Background(), employee.ScheduleVacationRequest{ID: emp.ID})
	require.NoError(t, err)
	assert.Nil(t, resp.VacationStart)
	assert.Nil(t, resp.VacationEnd)
}

func TestScheduleVacationRejectsInvertedWindow(t *testing.T) {
	f := newFixture()
	emp := f.employees.Seed(employee.Employee{RegistrationID: "1001", Name: "Maria", Status: employee.StatusActive})

	_, err := f.service.ScheduleVacation(context.Background(), employee.ScheduleVacationRequest{
		ID:            emp.ID,
		VacationStart: "2025-09-15",
		VacationEnd:   "2025-09-01",
	})
	assert.Error(t, err)
}

func TestImportEmployees(t *testing.T) {
	f := newFixture()
	f.employees.Seed(employee.Employee{RegistrationID: "1001", Name: "Existente", Status: employee.StatusActive})

	result, err := f.service.ImportEmployees(context.Background(), employee.ImportEmployeesRequest{
		Rows: []employee.ImportRow{
			{RegistrationID: "1001", Name: "Duplicada"},
			{RegistrationID: "2002", Name: "Nova"},
			{RegistrationID: "3003"}, // name and everything else defaulted
			{RegistrationID: "abc", Name: "Crachá inválido"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Skipped)

	imported, err := f.employees.GetByRegistrationID(context.Background(), "3003")
	require.NoError(t, err)
	assert.Equal(t, "Colaborador 3003", imported.Name)
	assert.Equal(t, "Operador", imported.Role)
	assert.Equal(t, "Geral", imported.CostCenter)
	assert.Equal(t, "Manhã", imported.WorkShift)
}

func TestSyncVacationStatuses(t *testing.T) {
	f := newFixture()

	start := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, time.September, 15, 0, 0, 0, 0, time.Local)

	inside := f.employees.Seed(employee.Employee{
		RegistrationID: "1001", Name: "Dentro", Status: employee.StatusActive,
		VacationStart: &start, VacationEnd: &end,
	})
	outside := f.employees.Seed(employee.Employee{
		RegistrationID: "1002", Name: "Fora", Status: employee.StatusVacation,
		VacationStart: &start, VacationEnd: &end,
	})
	manual := f.employees.Seed(employee.Employee{
		RegistrationID: "1003", Name: "Manual", Status: employee.StatusVacation,
	})

	// Inside the window.
	ref := time.Date(2025, time.September, 10, 12, 0, 0, 0, time.Local)
	result, err := f.service.SyncVacationStatuses(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Started)
	assert.Equal(t, 0, result.Returned)

	stored, _ := f.employees.GetByID(context.Background(), inside.ID)
	assert.Equal(t, employee.StatusVacation, stored.Status)

	// After the window closes both windowed employees return; the manual
	// vacation without a window is left alone.
	ref = time.Date(2025, time.September, 20, 12, 0, 0, 0, time.Local)
	result, err = f.service.SyncVacationStatuses(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Started)
	assert.Equal(t, 2, result.Returned)

	stored, _ = f.employees.GetByID(context.Background(), outside.ID)
	assert.Equal(t, employee.StatusActive, stored.Status)
	stored, _ = f.employees.GetByID(context.Background(), manual.ID)
	assert.Equal(t, employee.StatusVacation, stored.Status)
}
