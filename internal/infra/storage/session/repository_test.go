package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SkillSlot-BookingService/internal/domain"
)

var now = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

func newSession() *domain.BookingSession {
	return domain.NewBookingSession(uuid.New(), "T1", domain.SessionContext{Token: "t"}, now)
}

func TestRepository_CreateGet(t *testing.T) {
	repo := NewRepository()
	s := newSession()

	require.NoError(t, repo.Create(context.Background(), s))
	assert.ErrorIs(t, repo.Create(context.Background(), s), ErrSessionExists)

	got, err := repo.Get(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	// изменение копии не влияет на хранилище
	got.TalentID = "changed"
	again, _ := repo.Get(context.Background(), s.ID)
	assert.Equal(t, "T1", again.TalentID)
}

func TestRepository_GetMissing(t *testing.T) {
	repo := NewRepository()

	_, err := repo.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRepository_Update(t *testing.T) {
	repo := NewRepository()
	s := newSession()
	require.NoError(t, repo.Create(context.Background(), s))

	updated, err := repo.Update(context.Background(), s.ID, func(bs *domain.BookingSession) error {
		bs.ChangeMonth(1, now)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, time.April, updated.Month.Month)

	stored, _ := repo.Get(context.Background(), s.ID)
	assert.Equal(t, time.April, stored.Month.Month)
}

func TestRepository_UpdateErrorRollsBack(t *testing.T) {
	repo := NewRepository()
	s := newSession()
	require.NoError(t, repo.Create(context.Background(), s))

	boom := errors.New("boom")
	_, err := repo.Update(context.Background(), s.ID, func(bs *domain.BookingSession) error {
		bs.ChangeMonth(5, now)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	stored, _ := repo.Get(context.Background(), s.ID)
	assert.Equal(t, time.March, stored.Month.Month)
}

func TestRepository_UpdateSerialized(t *testing.T) {
	repo := NewRepository()
	s := newSession()
	require.NoError(t, repo.Create(context.Background(), s))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Update(context.Background(), s.ID, func(bs *domain.BookingSession) error {
				bs.Generation++
				return nil
			})
		}()
	}
	wg.Wait()

	stored, _ := repo.Get(context.Background(), s.ID)
	assert.Equal(t, uint64(50), stored.Generation)
}

func TestRepository_DeleteAndExpire(t *testing.T) {
	repo := NewRepository()
	old := newSession()
	fresh := domain.NewBookingSession(uuid.New(), "T2", domain.SessionContext{Token: "t"}, now.Add(time.Hour))

	require.NoError(t, repo.Create(context.Background(), old))
	require.NoError(t, repo.Create(context.Background(), fresh))
	assert.Equal(t, 2, repo.Count())

	expired := repo.DeleteExpired(context.Background(), now.Add(30*time.Minute))
	assert.Equal(t, []uuid.UUID{old.ID}, expired)
	assert.Equal(t, 1, repo.Count())

	require.NoError(t, repo.Delete(context.Background(), fresh.ID))
	assert.ErrorIs(t, repo.Delete(context.Background(), fresh.ID), ErrSessionNotFound)
}
