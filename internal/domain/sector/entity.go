package sector

import (
	"encoding/json"
	"time"
)

// SectorConfiguration stores the per-shift sector layout as opaque JSON.
// Only the outer shape (an object with a sectors array) is enforced; the
// dashboard owns the rest.
type SectorConfiguration struct {
	ID        string
	ShiftName string
	Config    json.RawMessage
	UpdatedAt time.Time
}

// Config is the parsed view of the configuration used by the report
// aggregator.
type Config struct {
	Sectors []Sector `json:"sectors"`
}

type Sector struct {
	Key        string   `json:"key"`
	Label      string   `json:"label"`
	Target     int      `json:"target"`
	Subsectors []string `json:"subsectors,omitempty"`
}

// Parse decodes the stored JSON into the typed view.
func (c SectorConfiguration) Parse() (Config, error) {
	var cfg Config
	if len(c.Config) == 0 {
		return cfg, nil
	}
	if err := json.Unmarshal(c.Config, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// HeadcountTarget is the HR headcount target for one shift, used to compute
// vacancy gaps on the roster page and in reports.
type HeadcountTarget struct {
	ID          string
	ShiftName   string
	TargetValue int
	UpdatedAt   time.Time
}

// DefaultTargetValue seeds targets for shifts that have none configured.
const DefaultTargetValue = 50
