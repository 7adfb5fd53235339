package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/expedicaonl/workforce-backend-go/internal/domain/employee"
	"github.com/expedicaonl/workforce-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, registration_id, name, role, cost_center, work_shift, work_days,
	status, vacation_start, vacation_end, termination_date, replacement_id,
	admission_date, birthday, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var workDays []byte
	var status string

	err := row.Scan(
		&emp.ID, &emp.RegistrationID, &emp.Name, &emp.Role, &emp.CostCenter,
		&emp.WorkShift, &workDays, &status, &emp.VacationStart, &emp.VacationEnd,
		&emp.TerminationDate, &emp.ReplacementID, &emp.AdmissionDate,
		&emp.Birthday, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	emp.Status = employee.Status(status)
	if len(workDays) > 0 {
		if err := json.Unmarshal(workDays, &emp.WorkDays); err != nil {
			return employee.Employee{}, fmt.Errorf("failed to decode work_days: %w", err)
		}
	}
	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// GetByRegistrationID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByRegistrationID(ctx context.Context, registrationID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE registration_id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, registrationID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by registration id: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Shift != nil && *filter.Shift != "" {
		baseWhere += fmt.Sprintf(" AND work_shift = $%d", argIdx)
		args = append(args, *filter.Shift)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (name ILIKE $%d OR registration_id ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE ` + baseWhere + ` ORDER BY name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, nil
}

// ListNotFired implements employee.EmployeeRepository.
func (r *employeeRepository) ListNotFired(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE status != 'fired' ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if newEmployee.ID == "" {
		newEmployee.ID = uuid.NewString()
	}
	if len(newEmployee.WorkDays) == 0 {
		newEmployee.WorkDays = employee.DefaultWorkDays
	}

	workDays, err := json.Marshal(newEmployee.WorkDays)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to encode work_days: %w", err)
	}

	query := `
		INSERT INTO employees (
			id, registration_id, name, role, cost_center, work_shift, work_days,
			status, vacation_start, vacation_end, termination_date, replacement_id,
			admission_date, birthday
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		newEmployee.ID,
		newEmployee.RegistrationID,
		newEmployee.Name,
		newEmployee.Role,
		newEmployee.CostCenter,
		newEmployee.WorkShift,
		workDays,
		string(newEmployee.Status),
		newEmployee.VacationStart,
		newEmployee.VacationEnd,
		newEmployee.TerminationDate,
		newEmployee.ReplacementID,
		newEmployee.AdmissionDate,
		newEmployee.Birthday,
	).Scan(&newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return employee.Employee{}, employee.ErrRegistrationIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	workDays, err := json.Marshal(emp.WorkDays)
	if err != nil {
		return fmt.Errorf("failed to encode work_days: %w", err)
	}

	query := `
		UPDATE employees SET
			registration_id = $1, name = $2, role = $3, cost_center = $4,
			work_shift = $5, work_days = $6, status = $7, vacation_start = $8,
			vacation_end = $9, termination_date = $10, replacement_id = $11,
			admission_date = $12, birthday = $13, updated_at = $14
		WHERE id = $15
		RETURNING id
	`

	var updatedID string
	err = q.QueryRow(ctx, query,
		emp.RegistrationID, emp.Name, emp.Role, emp.CostCenter,
		emp.WorkShift, workDays, string(emp.Status), emp.VacationStart,
		emp.VacationEnd, emp.TerminationDate, emp.ReplacementID,
		emp.AdmissionDate, emp.Birthday, time.Now(),
		emp.ID,
	).Scan(&updatedID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		if strings.Contains(err.Error(), "duplicate key") {
			return employee.ErrRegistrationIDExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// UpdateStatus implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET status = $1, updated_at = $2 WHERE id = $3 RETURNING id`

	// Firing also stamps the termination date.
	if status == employee.StatusFired {
		query = `UPDATE employees SET status = $1, termination_date = $2, updated_at = $2 WHERE id = $3 RETURNING id`
	}

	var updatedID string
	if err := q.QueryRow(ctx, query, string(status), time.Now(), id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee status: %w", err)
	}

	return nil
}

// SetVacationWindow implements employee.EmployeeRepository.
func (r *employeeRepository) SetVacationWindow(ctx context.Context, id string, start, end *string) error {
	q := GetQuerier(ctx, r.db)

	var startTS, endTS *time.Time
	if start != nil && *start != "" {
		t, err := time.Parse("2006-01-02", *start)
		if err != nil {
			return fmt.Errorf("invalid vacation_start: %w", err)
		}
		startTS = &t
	}
	if end != nil && *end != "" {
		t, err := time.Parse("2006-01-02", *end)
		if err != nil {
			return fmt.Errorf("invalid vacation_end: %w", err)
		}
		endTS = &t
	}

	query := `UPDATE employees SET vacation_start = $1, vacation_end = $2, updated_at = $3 WHERE id = $4 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, startTS, endTS, time.Now(), id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to set vacation window: %w", err)
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employees WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
