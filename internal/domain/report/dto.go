package report

// Snapshot is the KPI view of one (date, shift) pair: per-sector headcounts
// against targets plus shift totals. Pure derived data, never persisted.
type Snapshot struct {
	Date            string      `json:"date"`
	Shift           string      `json:"shift"`
	Sectors         []SectorKPI `json:"sectors"`
	Totals          Totals      `json:"totals"`
	PresencePct     float64     `json:"presence_pct"`
	PlannedTonnage  float64     `json:"planned_tonnage"`
	RealizedTonnage float64     `json:"realized_tonnage"`
	Productivity    float64     `json:"productivity"` // tonnage per present worker
}

type SectorKPI struct {
	Key            string `json:"key"`
	Label          string `json:"label"`
	Target         int    `json:"target"`
	Allocated      int    `json:"allocated"`
	Present        int    `json:"present"`
	AbsentOrSick   int    `json:"absent_or_sick"`
	VacationOrAway int    `json:"vacation_or_away"`
	Vacancies      int    `json:"vacancies"` // max(0, target - allocated)
	Gap            int    `json:"gap"`       // max(0, target - present)
}

type Totals struct {
	Target         int `json:"target"`
	Allocated      int `json:"allocated"`
	Present        int `json:"present"`
	AbsentOrSick   int `json:"absent_or_sick"`
	VacationOrAway int `json:"vacation_or_away"`
	Vacancies      int `json:"vacancies"`
	Gap            int `json:"gap"`
}

// UnassignedSectorKey buckets log entries whose sector key matches no
// configured sector.
const UnassignedSectorKey = "outros"

// UnassignedSectorLabel is the display name of that bucket.
const UnassignedSectorLabel = "Outros"
