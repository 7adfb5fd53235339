package employee

import (
	"github.com/expedicaonl/workforce-backend-go/internal/domain/event"
)

// EmployeeDetailResponse is the employee card: the record itself plus the
// full event history and the absence counters derived from it.
type EmployeeDetailResponse struct {
	Employee EmployeeResponse      `json:"employee"`
	Events   []event.EventResponse `json:"events"`
	Stats    EventHistoryStats     `json:"stats"`
}
