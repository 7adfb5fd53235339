package route

import "time"

// Route is one outbound load dispatched during a shift. Summed tonnage per
// (date, shift) is the realized throughput shown next to the planned figure.
type Route struct {
	ID          string
	Date        string // YYYY-MM-DD
	Shift       string
	Code        string
	Destination *string
	Tonnage     float64
	CreatedAt   time.Time
}
