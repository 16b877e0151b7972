package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-DoctorBooking/pkg/types"
)

const table = "booking_attempts"

const schema = `CREATE TABLE IF NOT EXISTS booking_attempts (
	id         BIGSERIAL PRIMARY KEY,
	doctor_id  TEXT        NOT NULL,
	slot_date  TEXT        NOT NULL,
	slot_time  TEXT        NOT NULL,
	outcome    TEXT        NOT NULL,
	message    TEXT        NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS booking_attempts_doctor_created_idx
	ON booking_attempts (doctor_id, created_at DESC);`

// Repository журнал попыток бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// EnsureSchema создает таблицу журнала, если ее нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}

// Create записывает попытку бронирования
func (r *Repository) Create(ctx context.Context, attempt *domain.BookingAttempt) (*domain.BookingAttempt, error) {
	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"doctor_id",
			"slot_date",
			"slot_time",
			"outcome",
			"message",
		).
		Values(
			attempt.DoctorID,
			attempt.DateKey.String(),
			attempt.Time.String(),
			attempt.Outcome,
			attempt.Message,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&attempt.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	attempt.CreatedAt = createdAt.Time

	return attempt, nil
}

// ListByDoctor получает последние попытки бронирования к врачу, новые первыми
func (r *Repository) ListByDoctor(ctx context.Context, doctorID string, limit uint64) ([]*domain.BookingAttempt, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"doctor_id",
		"slot_date",
		"slot_time",
		"outcome",
		"message",
		"created_at",
	).
		From(table).
		Where(squirrel.Eq{"doctor_id": doctorID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDoctor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDoctor - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	attempts := make([]*domain.BookingAttempt, 0)
	for rows.Next() {
		var (
			attempt  domain.BookingAttempt
			slotDate string
			slotTime string
		)

		if err := rows.Scan(
			&attempt.ID,
			&attempt.DoctorID,
			&slotDate,
			&slotTime,
			&attempt.Outcome,
			&attempt.Message,
			&attempt.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByDoctor - scan row: %v", ErrScanRow, err)
		}

		attempt.DateKey = types.DateKey(slotDate)
		attempt.Time = types.TimeLabel(slotTime)
		attempts = append(attempts, &attempt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDoctor - rows iteration: %v", ErrScanRow, err)
	}

	return attempts, nil
}

// DeleteOlderThan удаляет записи журнала старше before. Возвращает число удаленных строк.
func (r *Repository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Lt{"created_at": before}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}
