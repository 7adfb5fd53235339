package operation

import "context"

type OperationRepository interface {
	// GetByDateShift retrieves the operation sheet for a pair
	GetByDateShift(ctx context.Context, date, shift string) (DailyOperation, error)

	// GetLatestBefore retrieves the most recent operation for a shift with a
	// date strictly before the given one. Used for carry-forward reads.
	GetLatestBefore(ctx context.Context, shift, date string) (DailyOperation, error)

	Create(ctx context.Context, op DailyOperation) (DailyOperation, error)
	Update(ctx context.Context, op DailyOperation) error
}
