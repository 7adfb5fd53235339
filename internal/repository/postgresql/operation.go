package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/operation"
	"github.com/expedicaonl/workforce-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type operationRepository struct {
	db *database.DB
}

func NewOperationRepository(db *database.DB) operation.OperationRepository {
	return &operationRepository{db: db}
}

const operationColumns = `
	id, date, shift, attendance_log, tonnage, arrival_time, exit_time,
	report, rating, status, logs, created_at, updated_at
`

func scanOperation(row pgx.Row) (operation.DailyOperation, error) {
	var op operation.DailyOperation
	var attendanceLog, logs []byte

	err := row.Scan(
		&op.ID, &op.Date, &op.Shift, &attendanceLog, &op.Tonnage,
		&op.ArrivalTime, &op.ExitTime, &op.Report, &op.Rating, &op.Status,
		&logs, &op.CreatedAt, &op.UpdatedAt,
	)
	if err != nil {
		return operation.DailyOperation{}, err
	}

	if len(attendanceLog) > 0 {
		if err := json.Unmarshal(attendanceLog, &op.AttendanceLog); err != nil {
			return operation.DailyOperation{}, fmt.Errorf("failed to decode attendance_log: %w", err)
		}
	}
	if op.AttendanceLog == nil {
		op.AttendanceLog = operation.AttendanceLog{}
	}
	if len(logs) > 0 {
		if err := json.Unmarshal(logs, &op.Logs); err != nil {
			return operation.DailyOperation{}, fmt.Errorf("failed to decode logs: %w", err)
		}
	}
	return op, nil
}

// GetByDateShift implements operation.OperationRepository.
func (r *operationRepository) GetByDateShift(ctx context.Context, date, shift string) (operation.DailyOperation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + operationColumns + ` FROM daily_operations WHERE date = $1 AND shift = $2`

	op, err := scanOperation(q.QueryRow(ctx, query, date, shift))
	if err != nil {
		if err == pgx.ErrNoRows {
			return operation.DailyOperation{}, operation.ErrOperationNotFound
		}
		return operation.DailyOperation{}, fmt.Errorf("failed to get daily operation: %w", err)
	}

	return op, nil
}

// GetLatestBefore implements operation.OperationRepository.
func (r *operationRepository) GetLatestBefore(ctx context.Context, shift, date string) (operation.DailyOperation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + operationColumns + `
		FROM daily_operations
		WHERE shift = $1 AND date < $2
		ORDER BY date DESC
		LIMIT 1
	`

	op, err := scanOperation(q.QueryRow(ctx, query, shift, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return operation.DailyOperation{}, operation.ErrOperationNotFound
		}
		return operation.DailyOperation{}, fmt.Errorf("failed to get latest operation before date: %w", err)
	}

	return op, nil
}

// Create implements operation.OperationRepository.
func (r *operationRepository) Create(ctx context.Context, op operation.DailyOperation) (operation.DailyOperation, error) {
	q := GetQuerier(ctx, r.db)

	if op.ID == "" {
		op.ID = uuid.NewString()
	}
	if op.Status == "" {
		op.Status = operation.OperationOpen
	}
	if op.AttendanceLog == nil {
		op.AttendanceLog = operation.AttendanceLog{}
	}

	attendanceLog, err := json.Marshal(op.AttendanceLog)
	if err != nil {
		return operation.DailyOperation{}, fmt.Errorf("failed to encode attendance_log: %w", err)
	}
	logs, err := json.Marshal(op.Logs)
	if err != nil {
		return operation.DailyOperation{}, fmt.Errorf("failed to encode logs: %w", err)
	}

	query := `
		INSERT INTO daily_operations (
			id, date, shift, attendance_log, tonnage, arrival_time, exit_time,
			report, rating, status, logs
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		op.ID, op.Date, op.Shift, attendanceLog, op.Tonnage,
		op.ArrivalTime, op.ExitTime, op.Report, op.Rating, op.Status, logs,
	).Scan(&op.CreatedAt, &op.UpdatedAt)

	if err != nil {
		return operation.DailyOperation{}, fmt.Errorf("failed to create daily operation: %w", err)
	}

	return op, nil
}

// Update implements operation.OperationRepository.
func (r *operationRepository) Update(ctx context.Context, op operation.DailyOperation) error {
	q := GetQuerier(ctx, r.db)

	attendanceLog, err := json.Marshal(op.AttendanceLog)
	if err != nil {
		return fmt.Errorf("failed to encode attendance_log: %w", err)
	}
	logs, err := json.Marshal(op.Logs)
	if err != nil {
		return fmt.Errorf("failed to encode logs: %w", err)
	}

	query := `
		UPDATE daily_operations SET
			attendance_log = $1, tonnage = $2, arrival_time = $3, exit_time = $4,
			report = $5, rating = $6, status = $7, logs = $8, updated_at = $9
		WHERE id = $10
		RETURNING id
	`

	var updatedID string
	err = q.QueryRow(ctx, query,
		attendanceLog, op.Tonnage, op.ArrivalTime, op.ExitTime,
		op.Report, op.Rating, op.Status, logs, time.Now(),
		op.ID,
	).Scan(&updatedID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return operation.ErrOperationNotFound
		}
		return fmt.Errorf("failed to update daily operation: %w", err)
	}

	return nil
}
