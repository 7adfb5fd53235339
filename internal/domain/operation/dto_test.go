package operation

import (
	"encoding/json"
	"testing"

	"github.com/expedicaonl/workforce-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutineUpdateRequestValidate(t *testing.T) {
	valid := RoutineUpdateRequest{
		Date:  "2025-08-01",
		Shift: "Manhã",
		AttendanceLog: AttendanceLog{
			"1001": {Status: EntryPresent, Sector: "carga"},
		},
	}
	assert.NoError(t, valid.Validate())
}

func TestRoutineUpdateRequestValidateErrors(t *testing.T) {
	rating := 9
	arrival := "25:00"
	tonnage := -1.0
	status := "paused"

	req := RoutineUpdateRequest{
		Date:  "01/08/2025",
		Shift: "Madrugada",
		AttendanceLog: AttendanceLog{
			"1001": {Status: EntryStatus("late"), Sector: "carga"},
		},
		Rating:      &rating,
		ArrivalTime: &arrival,
		Tonnage:     &tonnage,
		Status:      &status,
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)

	fields := errs.ToMap()
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "shift")
	assert.Contains(t, fields, "attendance_log.1001")
	assert.Contains(t, fields, "rating")
	assert.Contains(t, fields, "arrival_time")
	assert.Contains(t, fields, "tonnage")
	assert.Contains(t, fields, "status")
}

func TestValidateSectorConfig(t *testing.T) {
	assert.NoError(t, ValidateSectorConfig(json.RawMessage(`{"sectors":[]}`)))
	assert.NoError(t, ValidateSectorConfig(json.RawMessage(`{"sectors":[{"key":"carga","label":"Carga","target":10}]}`)))

	assert.Error(t, ValidateSectorConfig(json.RawMessage(`{}`)))
	assert.Error(t, ValidateSectorConfig(json.RawMessage(`{"sectors":null}`)))
	assert.Error(t, ValidateSectorConfig(json.RawMessage(`[]`)))
	assert.Error(t, ValidateSectorConfig(json.RawMessage(`not json`)))
}

func TestEntrySamePlacement(t *testing.T) {
	a := Entry{Status: EntryPresent, Sector: "carga", Subsector: "doca-1"}
	b := Entry{Status: EntryAbsent, Sector: "carga", Subsector: "doca-1"}
	c := Entry{Status: EntryPresent, Sector: "carga", Subsector: "doca-2"}

	assert.True(t, a.SamePlacement(b), "placement ignores status")
	assert.False(t, a.SamePlacement(c))
}

func TestTransient(t *testing.T) {
	assert.True(t, DailyOperation{}.Transient())
	assert.False(t, DailyOperation{ID: "some-id"}.Transient())
}
