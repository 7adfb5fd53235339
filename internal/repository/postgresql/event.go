package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/event"
	"github.com/expedicaonl/workforce-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type eventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) event.EventRepository {
	return &eventRepository{db: db}
}

// Create implements event.EventRepository.
func (r *eventRepository) Create(ctx context.Context, newEvent event.Event) (event.Event, error) {
	q := GetQuerier(ctx, r.db)

	if newEvent.ID == "" {
		newEvent.ID = uuid.NewString()
	}
	if newEvent.Timestamp.IsZero() {
		newEvent.Timestamp = time.Now()
	}
	if newEvent.Impact == "" {
		newEvent.Impact = event.ImpactLow
	}

	query := `
		INSERT INTO events (
			id, timestamp, text, type, category, sector, impact, employee_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		newEvent.ID,
		newEvent.Timestamp,
		newEvent.Text,
		string(newEvent.Type),
		string(newEvent.Category),
		newEvent.Sector,
		string(newEvent.Impact),
		newEvent.EmployeeID,
	).Scan(&newEvent.CreatedAt)

	if err != nil {
		return event.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	return newEvent, nil
}

// GetByID implements event.EventRepository.
func (r *eventRepository) GetByID(ctx context.Context, id string) (event.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.timestamp, e.text, e.type, e.category, e.sector,
		       e.impact, e.employee_id, e.created_at, emp.name AS employee_name
		FROM events e
		LEFT JOIN employees emp ON emp.id = e.employee_id
		WHERE e.id = $1
	`

	var evt event.Event
	var eventType, category, impact string
	err := q.QueryRow(ctx, query, id).Scan(
		&evt.ID, &evt.Timestamp, &evt.Text, &eventType, &category,
		&evt.Sector, &impact, &evt.EmployeeID, &evt.CreatedAt, &evt.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return event.Event{}, event.ErrEventNotFound
		}
		return event.Event{}, fmt.Errorf("failed to get event by id: %w", err)
	}

	evt.Type = event.Type(eventType)
	evt.Category = event.Category(category)
	evt.Impact = event.Impact(impact)
	return evt, nil
}

// List implements event.EventRepository.
func (r *eventRepository) List(ctx context.Context, filter event.EventFilter) ([]event.Event, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND e.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Type != nil && *filter.Type != "" {
		baseWhere += fmt.Sprintf(" AND e.type = $%d", argIdx)
		args = append(args, *filter.Type)
		argIdx++
	}

	if filter.Category != nil && *filter.Category != "" {
		baseWhere += fmt.Sprintf(" AND e.category = $%d", argIdx)
		args = append(args, *filter.Category)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND e.timestamp >= $%d::date", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND e.timestamp < ($%d::date + interval '1 day')", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM events e WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT e.id, e.timestamp, e.text, e.type, e.category, e.sector,
		       e.impact, e.employee_id, e.created_at, emp.name AS employee_name
		FROM events e
		LEFT JOIN employees emp ON emp.id = e.employee_id
		WHERE %s
		ORDER BY e.timestamp DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		var evt event.Event
		var eventType, category, impact string
		err := rows.Scan(
			&evt.ID, &evt.Timestamp, &evt.Text, &eventType, &category,
			&evt.Sector, &impact, &evt.EmployeeID, &evt.CreatedAt, &evt.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan event: %w", err)
		}
		evt.Type = event.Type(eventType)
		evt.Category = event.Category(category)
		evt.Impact = event.Impact(impact)
		events = append(events, evt)
	}

	return events, total, nil
}

// ListByEmployee implements event.EventRepository.
func (r *eventRepository) ListByEmployee(ctx context.Context, employeeID string) ([]event.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, timestamp, text, type, category, sector, impact,
		       employee_id, created_at
		FROM events
		WHERE employee_id = $1
		ORDER BY timestamp DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee events: %w", err)
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		var evt event.Event
		var eventType, category, impact string
		err := rows.Scan(
			&evt.ID, &evt.Timestamp, &evt.Text, &eventType, &category,
			&evt.Sector, &impact, &evt.EmployeeID, &evt.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		evt.Type = event.Type(eventType)
		evt.Category = event.Category(category)
		evt.Impact = event.Impact(impact)
		events = append(events, evt)
	}

	return events, nil
}

// ExistsOnDay implements event.EventRepository.
func (r *eventRepository) ExistsOnDay(ctx context.Context, employeeID string, eventType event.Type, day time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM events
			WHERE employee_id = $1
			  AND type = $2
			  AND timestamp >= $3
			  AND timestamp < $4
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, string(eventType), dayStart, dayEnd).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check event existence: %w", err)
	}

	return exists, nil
}

// UnlinkEmployee implements event.EventRepository.
func (r *eventRepository) UnlinkEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE events SET employee_id = NULL WHERE employee_id = $1`

	if _, err := q.Exec(ctx, query, employeeID); err != nil {
		return fmt.Errorf("failed to unlink employee events: %w", err)
	}

	return nil
}

// Delete implements event.EventRepository.
func (r *eventRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM events WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}

	return nil
}
