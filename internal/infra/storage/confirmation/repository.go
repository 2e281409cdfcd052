package confirmation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SkillSlot-BookingService/internal/domain"
	"github.com/m04kA/SkillSlot-BookingService/pkg/psqlbuilder"
)

const (
	tableName          = "booking_confirmations"
	uniqueViolationErr = "23505"
)

// Repository репозиторий подтверждений завершенных бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория подтверждений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает подтверждение. Одно подтверждение на сессию.
func (r *Repository) Create(ctx context.Context, c *domain.Confirmation) (*domain.Confirmation, error) {
	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"session_id",
			"talent_id",
			"booking_date",
			"start_time",
			"duration_label",
			"created_at",
		).
		Values(
			c.SessionID,
			c.TalentID,
			c.BookingDate,
			c.StartTime,
			c.DurationLabel,
			c.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&c.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationErr {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return c, nil
}

// GetBySessionID получает подтверждение по ID сессии бронирования
func (r *Repository) GetBySessionID(ctx context.Context, sessionID uuid.UUID) (*domain.Confirmation, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"session_id",
		"talent_id",
		"booking_date",
		"start_time",
		"duration_label",
		"created_at",
	).
		From(tableName).
		Where(squirrel.Eq{"session_id": sessionID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySessionID - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Confirmation
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.SessionID,
		&c.TalentID,
		&c.BookingDate,
		&c.StartTime,
		&c.DurationLabel,
		&c.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfirmationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySessionID - scan confirmation: %v", ErrScanRow, err)
	}

	return &c, nil
}

// ListByTalent получает подтверждения таланта, новые первыми
func (r *Repository) ListByTalent(ctx context.Context, talentID string, limit uint64) ([]*domain.Confirmation, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"session_id",
		"talent_id",
		"booking_date",
		"start_time",
		"duration_label",
		"created_at",
	).
		From(tableName).
		Where(squirrel.Eq{"talent_id": talentID}).
		OrderBy("booking_date DESC", "start_time DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByTalent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTalent - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Confirmation, 0)
	for rows.Next() {
		var c domain.Confirmation
		if err := rows.Scan(
			&c.ID,
			&c.SessionID,
			&c.TalentID,
			&c.BookingDate,
			&c.StartTime,
			&c.DurationLabel,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByTalent - scan confirmation: %v", ErrScanRow, err)
		}
		result = append(result, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByTalent - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}
