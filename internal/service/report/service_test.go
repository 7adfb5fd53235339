package report

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/operation"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/report"
	"github.com/expedicaonl/workforce-backend-go/internal/domain/route"
	operationsvc "github.com/expedicaonl/workforce-backend-go/internal/service/operation"
	"github.com/expedicaonl/workforce-backend-go/internal/service/servicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	operations *servicetest.OperationRepo
	sectors    *servicetest.SectorRepo
	routes     *servicetest.RouteRepo
	service    report.ReportService
}

func newFixture() *fixture {
	f := &fixture{
		operations: servicetest.NewOperationRepo(),
		sectors:    servicetest.NewSectorRepo(),
		routes:     servicetest.NewRouteRepo(),
	}
	routineService := operationsvc.NewRoutineService(
		servicetest.TxManager{},
		f.operations,
		servicetest.NewEmployeeRepo(),
		servicetest.NewEventRepo(),
		f.sectors,
	)
	f.service = NewReportService(routineService, f.sectors, f.routes)
	return f
}

func routeFixture(date, shift string, tonnage float64) route.Route {
	return route.Route{Date: date, Shift: shift, Code: "RT-01", Tonnage: tonnage}
}

func (f *fixture) seedConfig(t *testing.T, shift, config string) {
	t.Helper()
	_, err := f.sectors.UpsertConfig(context.Background(), shift, json.RawMessage(config))
	require.NoError(t, err)
}

func TestGetSnapshotSectorKPIs(t *testing.T) {
	f := newFixture()
	f.seedConfig(t, "Manhã", `{"sectors":[{"key":"carga","label":"Carga","target":10}]}`)
	_, err := f.sectors.UpsertTarget(context.Background(), "Manhã", 20)
	require.NoError(t, err)

	log := operation.AttendanceLog{}
	for _, regID := range []string{"1", "2", "3", "4", "5", "6"} {
		log[regID] = operation.Entry{Status: operation.EntryPresent, Sector: "carga"}
	}
	log["7"] = operation.Entry{Status: operation.EntryAbsent, Sector: "carga"}
	log["8"] = operation.Entry{Status: operation.EntrySick, Sector: "carga"}
	log["9"] = operation.Entry{Status: operation.EntryVacation, Sector: "misterio"}

	f.operations.Seed(operation.DailyOperation{
		Date:          "2025-08-01",
		Shift:         "Manhã",
		AttendanceLog: log,
		Tonnage:       120,
		Status:        operation.OperationOpen,
	})

	snapshot, err := f.service.GetSnapshot(context.Background(), "2025-08-01", "Manhã")
	require.NoError(t, err)

	require.Len(t, snapshot.Sectors, 2)

	carga := snapshot.Sectors[0]
	assert.Equal(t, "carga", carga.Key)
	assert.Equal(t, 8, carga.Allocated)
	assert.Equal(t, 6, carga.Present)
	assert.Equal(t, 2, carga.AbsentOrSick)
	assert.Equal(t, 2, carga.Vacancies, "target 10 minus 8 allocated")
	assert.Equal(t, 4, carga.Gap, "target 10 minus 6 present")

	outros := snapshot.Sectors[1]
	assert.Equal(t, report.UnassignedSectorKey, outros.Key)
	assert.Equal(t, report.UnassignedSectorLabel, outros.Label)
	assert.Equal(t, 1, outros.Allocated)
	assert.Equal(t, 1, outros.VacationOrAway)

	assert.Equal(t, 20, snapshot.Totals.Target)
	assert.Equal(t, 9, snapshot.Totals.Allocated)
	assert.Equal(t, 6, snapshot.Totals.Present)
	assert.Equal(t, 11, snapshot.Totals.Vacancies)
	assert.Equal(t, 14, snapshot.Totals.Gap)

	assert.InDelta(t, 30.0, snapshot.PresencePct, 0.001)
	assert.InDelta(t, 20.0, snapshot.Productivity, 0.001, "120 tons over 6 present")
}

func TestGetSnapshotRealizedTonnageFromRoutes(t *testing.T) {
	f := newFixture()
	f.operations.Seed(operation.DailyOperation{
		Date:    "2025-08-01",
		Shift:   "Manhã",
		Tonnage: 100,
		Status:  operation.OperationOpen,
	})
	for _, tonnage := range []float64{90, 30} {
		_, err := f.routes.Create(context.Background(), routeFixture("2025-08-01", "Manhã", tonnage))
		require.NoError(t, err)
	}
	_, err := f.routes.Create(context.Background(), routeFixture("2025-08-01", "Tarde", 500))
	require.NoError(t, err)

	snapshot, err := f.service.GetSnapshot(context.Background(), "2025-08-01", "Manhã")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, snapshot.PlannedTonnage, 0.001)
	assert.InDelta(t, 120.0, snapshot.RealizedTonnage, 0.001, "other shifts excluded")
}

func TestGetSnapshotZeroGuards(t *testing.T) {
	f := newFixture()
	_, err := f.sectors.UpsertTarget(context.Background(), "Manhã", 0)
	require.NoError(t, err)

	snapshot, err := f.service.GetSnapshot(context.Background(), "2025-08-01", "Manhã")
	require.NoError(t, err)

	assert.Empty(t, snapshot.Sectors)
	assert.Zero(t, snapshot.PresencePct)
	assert.Zero(t, snapshot.Productivity)
	assert.Zero(t, snapshot.Totals.Vacancies)
}

func TestGetSnapshotDefaultsTargetWhenUnset(t *testing.T) {
	f := newFixture()

	snapshot, err := f.service.GetSnapshot(context.Background(), "2025-08-01", "Manhã")
	require.NoError(t, err)
	assert.Equal(t, 50, snapshot.Totals.Target)
	assert.Equal(t, 50, snapshot.Totals.Vacancies)
}
