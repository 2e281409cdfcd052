package confirmation

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SkillSlot-BookingService/internal/domain"
	"github.com/m04kA/SkillSlot-BookingService/pkg/types"
)

var columns = []string{"id", "session_id", "talent_id", "booking_date", "start_time", "duration_label", "created_at"}

func newConfirmation() *domain.Confirmation {
	return &domain.Confirmation{
		SessionID:     uuid.New(),
		TalentID:      "T1",
		BookingDate:   time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     types.MustParseTimeLabel("10:00 AM"),
		DurationLabel: domain.Duration1Hour,
		CreatedAt:     time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	c := newConfirmation()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO booking_confirmations")).
		WithArgs(c.SessionID, "T1", c.BookingDate, "10:00", domain.Duration1Hour, c.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	created, err := repo.Create(context.Background(), c)

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_Duplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("INSERT INTO booking_confirmations").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err = repo.Create(context.Background(), newConfirmation())

	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("INSERT INTO booking_confirmations").
		WillReturnError(errors.New("connection reset"))

	_, err = repo.Create(context.Background(), newConfirmation())

	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetBySessionID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	sessionID := uuid.New()
	bookingDate := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, session_id, talent_id, booking_date, start_time, duration_label, created_at FROM booking_confirmations WHERE session_id = $1")).
		WithArgs(sessionID).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(3, sessionID.String(), "T1", bookingDate, "14:00:00", domain.Duration2Hours, createdAt))

	got, err := repo.GetBySessionID(context.Background(), sessionID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, sessionID, got.SessionID)
	assert.Equal(t, "2:00 PM", got.StartTime.String())
	assert.Equal(t, domain.Duration2Hours, got.DurationLabel)
	assert.Equal(t, bookingDate, got.BookingDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetBySessionID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM booking_confirmations").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetBySessionID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrConfirmationNotFound)
}

func TestRepository_ListByTalent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM booking_confirmations WHERE talent_id = $1 ORDER BY booking_date DESC, start_time DESC LIMIT 20")).
		WithArgs("T1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(2, uuid.NewString(), "T1", date, "15:00", domain.Duration30Mins, date).
			AddRow(1, uuid.NewString(), "T1", date, "09:00", domain.Duration1Hour, date))

	got, err := repo.ListByTalent(context.Background(), "T1", 20)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "3:00 PM", got[0].StartTime.String())
	assert.Equal(t, "9:00 AM", got[1].StartTime.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
