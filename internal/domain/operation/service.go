package operation

import "context"

// RoutineService is the write and read side of the daily operation sheet.
type RoutineService interface {
	// UpdateRoutine reconciles a submitted attendance log against the stored
	// one: persists the sheet, synchronizes employee statuses, and appends
	// history events, all inside one transaction.
	UpdateRoutine(ctx context.Context, req RoutineUpdateRequest) (UpdateRoutineResult, error)

	// GetRoutine returns the sheet for a pair. When none exists the most
	// recent prior sheet for the shift is carried forward in memory, with
	// each entry's status remapped from the employee's current persistent
	// status. Nothing is persisted by a read.
	GetRoutine(ctx context.Context, date, shift string) (RoutineResponse, error)
}
