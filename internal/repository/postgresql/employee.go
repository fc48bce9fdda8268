package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/sede"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `id, name, last_name, cedula, email, phone, is_admin, sede_id, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.LastName, &e.Cedula, &e.Email, &e.Phone,
		&e.IsAdmin, &e.SedeID, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgErrorCode(err) == pgInvalidTextRepr {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}
	return e, nil
}

// GetByCedula implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByCedula(ctx context.Context, cedula string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE cedula = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, cedula))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by cedula: %w", err)
	}
	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("(name ILIKE $%d OR last_name ILIKE $%d OR cedula ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, containsPattern(*filter.Search))
		argIdx++
	}
	if filter.SedeID != nil && *filter.SedeID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("sede_id = $%d", argIdx))
		args = append(args, *filter.SedeID)
		argIdx++
	}

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE %s ORDER BY name ASC, last_name ASC, id ASC`,
		employeeColumns, strings.Join(whereClauses, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return employees, nil
}

// Count implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// ExistsByCedula implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByCedula(ctx context.Context, cedula string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE cedula = $1)`, cedula).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check cedula: %w", err)
	}
	return exists, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (name, last_name, cedula, email, phone, is_admin, sede_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.Name, newEmployee.LastName, newEmployee.Cedula, newEmployee.Email,
		newEmployee.Phone, newEmployee.IsAdmin, newEmployee.SedeID,
	))
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return employee.Employee{}, employee.ErrCedulaExists
		case pgForeignKeyViolation:
			return employee.Employee{}, sede.ErrSedeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// Update implements employee.EmployeeRepository. Empty optional strings clear the column.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	i := 1

	set := func(col string, val interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}
	nullable := func(col string, val *string) {
		if val == nil {
			return
		}
		if *val == "" {
			set(col, nil)
			return
		}
		set(col, *val)
	}

	if req.Name != nil {
		set("name", strings.TrimSpace(*req.Name))
	}
	if req.LastName != nil {
		set("last_name", strings.TrimSpace(*req.LastName))
	}
	nullable("email", req.Email)
	nullable("phone", req.Phone)
	if req.IsAdmin != nil {
		set("is_admin", *req.IsAdmin)
	}
	nullable("sede_id", req.SedeID)

	if len(setClauses) == 0 {
		return r.GetByID(ctx, id)
	}
	set("updated_at", time.Now())

	query := fmt.Sprintf(`UPDATE employees SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setClauses, ", "), i, employeeColumns)
	args = append(args, id)

	updated, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgErrorCode(err) == pgInvalidTextRepr {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if pgErrorCode(err) == pgForeignKeyViolation {
			return employee.Employee{}, sede.ErrSedeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee with id %s: %w", id, err)
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository. An employee with time records cannot be deleted.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		switch pgErrorCode(err) {
		case pgInvalidTextRepr:
			return employee.ErrEmployeeNotFound
		case pgForeignKeyViolation:
			return employee.ErrEmployeeInUse
		}
		return fmt.Errorf("failed to delete employee with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
