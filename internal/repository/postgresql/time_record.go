package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/utils"
	"github.com/jackc/pgx/v5"
)

const timeRecordColumns = `id, employee_id, sede_id, record_type, coordinates, latitude, longitude, in_site, photo_url, "timestamp", overtime_min, created_at`

type timeRecordRepositoryImpl struct {
	db       *database.DB
	location *time.Location
}

// NewTimeRecordRepository builds the record store. Day windows are computed in location.
func NewTimeRecordRepository(db *database.DB, location *time.Location) timerecord.TimeRecordRepository {
	return &timeRecordRepositoryImpl{db: db, location: location}
}

func scanTimeRecord(row pgx.Row) (timerecord.TimeRecord, error) {
	var (
		r          timerecord.TimeRecord
		recordType string
	)
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.SedeID, &recordType, &r.Coordinates, &r.Latitude, &r.Longitude,
		&r.InSite, &r.PhotoURL, &r.Timestamp, &r.OvertimeMin, &r.CreatedAt,
	)
	r.RecordType = timerecord.RecordType(recordType)
	return r, err
}

// Create implements timerecord.TimeRecordRepository.
func (t *timeRecordRepositoryImpl) Create(ctx context.Context, record timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO time_records (
			employee_id, sede_id, record_type, coordinates, latitude, longitude,
			in_site, photo_url, "timestamp", overtime_min
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + timeRecordColumns

	created, err := scanTimeRecord(q.QueryRow(ctx, query,
		record.EmployeeID, record.SedeID, string(record.RecordType), record.Coordinates,
		record.Latitude, record.Longitude, record.InSite, record.PhotoURL,
		record.Timestamp, record.OvertimeMin,
	))
	if err != nil {
		return timerecord.TimeRecord{}, fmt.Errorf("failed to create time record: %w", err)
	}
	return created, nil
}

// GetByID implements timerecord.TimeRecordRepository.
func (t *timeRecordRepositoryImpl) GetByID(ctx context.Context, id string) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, t.db)

	r, err := scanTimeRecord(q.QueryRow(ctx, `SELECT `+timeRecordColumns+` FROM time_records WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgErrorCode(err) == pgInvalidTextRepr {
			return timerecord.TimeRecord{}, timerecord.ErrTimeRecordNotFound
		}
		return timerecord.TimeRecord{}, fmt.Errorf("failed to get time record with id %s: %w", id, err)
	}
	return r, nil
}

// FindByDateRange implements timerecord.TimeRecordRepository.
func (t *timeRecordRepositoryImpl) FindByDateRange(ctx context.Context, filter timerecord.RecordFilter) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, t.db)

	whereClauses := []string{`tr."timestamp" >= $1`, `tr."timestamp" <= $2`}
	args := []interface{}{filter.From, filter.To}
	argIdx := 3

	if filter.SedeID != nil && *filter.SedeID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("tr.sede_id::text = $%d", argIdx))
		args = append(args, *filter.SedeID)
		argIdx++
	}
	if filter.Search != nil && *filter.Search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("(e.name ILIKE $%d OR e.last_name ILIKE $%d OR e.cedula ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, containsPattern(*filter.Search))
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT
			tr.id, tr.employee_id, tr.sede_id, tr.record_type, tr.coordinates, tr.latitude, tr.longitude,
			tr.in_site, tr.photo_url, tr."timestamp", tr.overtime_min, tr.created_at,
			e.name, e.last_name, e.cedula,
			s.name, s.coordinates
		FROM time_records tr
		JOIN employees e ON e.id = tr.employee_id
		LEFT JOIN sedes s ON s.id = tr.sede_id
		WHERE %s
		ORDER BY tr."timestamp" DESC, tr.id DESC
	`, strings.Join(whereClauses, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find time records: %w", err)
	}
	defer rows.Close()

	records := make([]timerecord.TimeRecord, 0)
	for rows.Next() {
		var (
			r               timerecord.TimeRecord
			recordType      string
			emp             timerecord.EmployeeSummary
			sedeName        *string
			sedeCoordinates *string
		)
		err := rows.Scan(
			&r.ID, &r.EmployeeID, &r.SedeID, &recordType, &r.Coordinates, &r.Latitude, &r.Longitude,
			&r.InSite, &r.PhotoURL, &r.Timestamp, &r.OvertimeMin, &r.CreatedAt,
			&emp.Name, &emp.LastName, &emp.Cedula,
			&sedeName, &sedeCoordinates,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time record: %w", err)
		}

		r.RecordType = timerecord.RecordType(recordType)
		emp.ID = r.EmployeeID
		r.Employee = &emp
		if r.SedeID != nil && sedeName != nil {
			r.Sede = &timerecord.SedeSummary{ID: *r.SedeID, Name: *sedeName, Coordinates: sedeCoordinates}
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time records: %w", err)
	}
	return records, nil
}

// FindLastEntryForDay implements timerecord.TimeRecordRepository.
func (t *timeRecordRepositoryImpl) FindLastEntryForDay(ctx context.Context, employeeID string, day time.Time) (*timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, t.db)

	start, end := utils.DayBounds(day, t.location)

	query := `
		SELECT ` + timeRecordColumns + `
		FROM time_records
		WHERE employee_id = $1 AND record_type = $2 AND "timestamp" >= $3 AND "timestamp" <= $4
		ORDER BY "timestamp" DESC
		LIMIT 1
	`

	r, err := scanTimeRecord(q.QueryRow(ctx, query, employeeID, string(timerecord.RecordTypeEntrada), start, end))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find last entry for employee %s: %w", employeeID, err)
	}
	return &r, nil
}

// SetOvertime implements timerecord.TimeRecordRepository.
func (t *timeRecordRepositoryImpl) SetOvertime(ctx context.Context, id string, minutes int) error {
	q := GetQuerier(ctx, t.db)

	tag, err := q.Exec(ctx, `UPDATE time_records SET overtime_min = $1 WHERE id = $2`, minutes, id)
	if err != nil {
		return fmt.Errorf("failed to set overtime for time record %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return timerecord.ErrTimeRecordNotFound
	}
	return nil
}

// CountDistinctEmployees implements timerecord.TimeRecordRepository.
func (t *timeRecordRepositoryImpl) CountDistinctEmployees(ctx context.Context, from, to time.Time) (int64, error) {
	q := GetQuerier(ctx, t.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(DISTINCT employee_id) FROM time_records WHERE "timestamp" >= $1 AND "timestamp" <= $2`,
		from, to,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}
	return count, nil
}
