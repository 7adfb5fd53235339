package event

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
	events    *servicetest.EventRepo
	employees *servicetest.EmployeeRepo
	service   event.EventService
}

func newFixture() *fixture {
	f := &fixture{
		events:    servicetest.NewEventRepo(),
		employees: servicetest.NewEmployeeRepo(),
	}
	f.service = NewEventService(f.events, f.employees)
	return f
}

func TestCreateEventResolvesRegistrationID(t *testing.T) {
	f := newFixture()
	emp := f.employees.Seed(employee.Employee{RegistrationID: "1001", Name: "Maria", Status: employee.StatusActive})

	regID := "1001"
	resp, err := f.service.CreateEvent(context.Background(), event.CreateEventRequest{
		Text:           "Advertência verbal aplicada",
		Type:           string(event.TypeAdvertencia),
		Category:       string(event.CategoryPessoas),
		Impact:         string(event.ImpactMedium),
		RegistrationID: &regID,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.EmployeeID)
	assert.Equal(t, emp.ID, *resp.EmployeeID)
	require.NotNil(t, resp.EmployeeName)
	assert.Equal(t, "Maria", *resp.EmployeeName)
}

func TestCreateEventUnknownRegistrationID(t *testing.T) {
	f := newFixture()

	regID := "9999"
	_, err := f.service.CreateEvent(context.Background(), event.CreateEventRequest{
		Text:           "texto",
		Type:           string(event.TypeOcorrencia),
		Category:       string(event.CategoryPessoas),
		RegistrationID: &regID,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateEventRejectsUnknownType(t *testing.T) {
	f := newFixture()

	_, err := f.service.CreateEvent(context.Background(), event.CreateEventRequest{
		Text:     "texto",
		Type:     "explosao",
		Category: string(event.CategoryPessoas),
	})
	assert.Error(t, err)
}

func TestListEventsPagination(t *testing.T) {
	f := newFixture()
	base := time.Date(2025, time.August, 1, 8, 0, 0, 0, time.Local)
	for i := 0; i < 5; i++ {
		_, err := f.events.Create(context.Background(), event.Event{
			Timestamp: base.Add(time.Duration(i) * time.Hour),
			Text:      "evento",
			Type:      event.TypeOcorrencia,
			Category:  event.CategoryProcesso,
		})
		require.NoError(t, err)
	}

	resp, err := f.service.ListEvents(context.Background(), event.EventFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.TotalCount)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Len(t, resp.Events, 2)
}

func TestListEventsFilters(t *testing.T) {
	f := newFixture()
	_, err := f.events.Create(context.Background(), event.Event{
		Timestamp: time.Date(2025, time.August, 1, 8, 0, 0, 0, time.Local),
		Text:      "falta", Type: event.TypeFalta, Category: event.CategoryPessoas,
	})
	require.NoError(t, err)
	_, err = f.events.Create(context.Background(), event.Event{
		Timestamp: time.Date(2025, time.August, 10, 8, 0, 0, 0, time.Local),
		Text:      "quebra", Type: event.TypeOcorrencia, Category: event.CategoryInfraestrutura,
	})
	require.NoError(t, err)

	eventType := string(event.TypeFalta)
	resp, err := f.service.ListEvents(context.Background(), event.EventFilter{Type: &eventType})
	require.NoError(t, err)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "falta", resp.Events[0].Text)

	start, end := "2025-08-05", "2025-08-15"
	resp, err = f.service.ListEvents(context.Background(), event.EventFilter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "quebra", resp.Events[0].Text)
}

func TestDeleteEvent(t *testing.T) {
	f := newFixture()
	created, err := f.events.Create(context.Background(), event.Event{
		Text: "apagar", Type: event.TypeOcorrencia, Category: event.CategoryProcesso,
	})
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteEvent(context.Background(), created.ID))
	assert.ErrorIs(t, f.service.DeleteEvent(context.Background(), created.ID), event.ErrEventNotFound)
}
