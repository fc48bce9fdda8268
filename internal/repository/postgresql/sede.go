package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/sede"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const sedeColumns = `id, name, address, coordinates, is_active, created_at, updated_at`

type sedeRepositoryImpl struct {
	db *database.DB
}

func NewSedeRepository(db *database.DB) sede.SedeRepository {
	return &sedeRepositoryImpl{db: db}
}

func scanSede(row pgx.Row) (sede.Sede, error) {
	var s sede.Sede
	err := row.Scan(&s.ID, &s.Name, &s.Address, &s.Coordinates, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// GetByID implements sede.SedeRepository.
func (r *sedeRepositoryImpl) GetByID(ctx context.Context, id string) (sede.Sede, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanSede(q.QueryRow(ctx, `SELECT `+sedeColumns+` FROM sedes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgErrorCode(err) == pgInvalidTextRepr {
			return sede.Sede{}, sede.ErrSedeNotFound
		}
		return sede.Sede{}, fmt.Errorf("failed to get sede with id %s: %w", id, err)
	}
	return s, nil
}

// List implements sede.SedeRepository.
func (r *sedeRepositoryImpl) List(ctx context.Context, filter sede.SedeFilter) ([]sede.Sede, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + sedeColumns + ` FROM sedes`
	if filter.ActiveOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name ASC, id ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sedes: %w", err)
	}
	defer rows.Close()

	sedes := make([]sede.Sede, 0)
	for rows.Next() {
		s, err := scanSede(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sede: %w", err)
		}
		sedes = append(sedes, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sedes: %w", err)
	}
	return sedes, nil
}

// Count implements sede.SedeRepository.
func (r *sedeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM sedes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sedes: %w", err)
	}
	return count, nil
}

// Create implements sede.SedeRepository.
func (r *sedeRepositoryImpl) Create(ctx context.Context, newSede sede.Sede) (sede.Sede, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sedes (name, address, coordinates, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + sedeColumns

	created, err := scanSede(q.QueryRow(ctx, query, newSede.Name, newSede.Address, newSede.Coordinates, newSede.IsActive))
	if err != nil {
		return sede.Sede{}, fmt.Errorf("failed to create sede: %w", err)
	}
	return created, nil
}

// Update implements sede.SedeRepository.
func (r *sedeRepositoryImpl) Update(ctx context.Context, id string, req sede.UpdateSedeRequest) (sede.Sede, error) {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	i := 1

	set := func(col string, val interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	if req.Name != nil {
		set("name", strings.TrimSpace(*req.Name))
	}
	if req.Address != nil {
		if *req.Address == "" {
			set("address", nil)
		} else {
			set("address", *req.Address)
		}
	}
	if req.Coordinates != nil {
		if strings.TrimSpace(*req.Coordinates) == "" {
			set("coordinates", nil)
		} else {
			set("coordinates", strings.TrimSpace(*req.Coordinates))
		}
	}
	if req.IsActive != nil {
		set("is_active", *req.IsActive)
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, id)
	}
	set("updated_at", time.Now())

	query := fmt.Sprintf(`UPDATE sedes SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setClauses, ", "), i, sedeColumns)
	args = append(args, id)

	updated, err := scanSede(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgErrorCode(err) == pgInvalidTextRepr {
			return sede.Sede{}, sede.ErrSedeNotFound
		}
		return sede.Sede{}, fmt.Errorf("failed to update sede with id %s: %w", id, err)
	}
	return updated, nil
}

// Delete implements sede.SedeRepository. Sedes referenced by employees or records cannot be removed.
func (r *sedeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM sedes WHERE id = $1`, id)
	if err != nil {
		switch pgErrorCode(err) {
		case pgInvalidTextRepr:
			return sede.ErrSedeNotFound
		case pgForeignKeyViolation:
			return sede.ErrSedeInUse
		}
		return fmt.Errorf("failed to delete sede with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return sede.ErrSedeNotFound
	}
	return nil
}
