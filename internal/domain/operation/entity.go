package operation

import (
	"encoding/json"
	"time"
)

// DailyOperation is the per-(date, shift) operation sheet: who was on the
// floor, where they were allocated, and how the shift went. At most one row
// exists per pair. The attendance log is authoritative for that day only;
// persistent employee status is synchronized from it by the reconciler.
type DailyOperation struct {
	ID            string
	Date          string // YYYY-MM-DD
	Shift         string
	AttendanceLog AttendanceLog
	Tonnage       float64
	ArrivalTime   *string
	ExitTime      *string
	Report        *string
	Rating        *int
	Status        string
	Logs          []json.RawMessage
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const (
	OperationOpen   = "open"
	OperationClosed = "closed"
)

// Transient reports whether the operation has been persisted yet. Reads for
// a missing (date, shift) pair synthesize an in-memory operation that only
// hits storage on an explicit update.
func (op DailyOperation) Transient() bool {
	return op.ID == ""
}

// AttendanceLog maps employee registration ids to their entry for the day.
type AttendanceLog map[string]Entry

// Entry is one worker's slot on the operation sheet.
type Entry struct {
	Status    EntryStatus `json:"status"`
	Sector    string      `json:"sector"`
	Subsector string      `json:"subsector,omitempty"`
}

// SamePlacement reports whether two entries put the worker in the same
// sector and subsector.
func (e Entry) SamePlacement(other Entry) bool {
	return e.Sector == other.Sector && e.Subsector == other.Subsector
}

// EntryStatus is the per-day status vocabulary, distinct from the persistent
// employee status: "absent" is a daily fact, not a lifecycle state.
type EntryStatus string

const (
	EntryPresent  EntryStatus = "present"
	EntryAbsent   EntryStatus = "absent"
	EntrySick     EntryStatus = "sick"
	EntryVacation EntryStatus = "vacation"
	EntryAway     EntryStatus = "away"
)

func (s EntryStatus) Valid() bool {
	switch s {
	case EntryPresent, EntryAbsent, EntrySick, EntryVacation, EntryAway:
		return true
	}
	return false
}
