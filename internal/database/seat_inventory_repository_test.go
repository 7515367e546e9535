package database

import (
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatInventoryGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSeatInventoryRepository(&mockDatabase{db: db})

	t.Run("Existing Key", func(t *testing.T) {
		mock.ExpectQuery(`SELECT booked_seats, version FROM seat_inventory`).
			WithArgs("sched-1", "2026-10-01").
			WillReturnRows(sqlmock.NewRows([]string{"booked_seats", "version"}).
				AddRow([]byte(`{01,02,07}`), int64(3)))

		seats, version, err := repo.Get("sched-1", "2026-10-01")
		require.NoError(t, err)
		assert.Equal(t, []string{"01", "02", "07"}, seats)
		assert.Equal(t, int64(3), version)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Key Yields Empty Set At Version Zero", func(t *testing.T) {
		mock.ExpectQuery(`SELECT booked_seats, version FROM seat_inventory`).
			WithArgs("sched-1", "2026-10-01").
			WillReturnRows(sqlmock.NewRows([]string{"booked_seats", "version"}))

		seats, version, err := repo.Get("sched-1", "2026-10-01")
		require.NoError(t, err)
		assert.Equal(t, []string{}, seats)
		assert.Equal(t, int64(0), version)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT booked_seats, version FROM seat_inventory`).
			WithArgs("sched-1", "2026-10-01").
			WillReturnError(fmt.Errorf("database error"))

		_, _, err := repo.Get("sched-1", "2026-10-01")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch seat inventory")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSeatInventoryCompareAndSwap(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSeatInventoryRepository(&mockDatabase{db: db})

	t.Run("Version Zero Inserts", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO seat_inventory`).
			WithArgs("sched-1", "2026-10-01", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.CompareAndSwap("sched-1", "2026-10-01", []string{"01"}, 0)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Version Zero Loses Insert Race", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO seat_inventory`).
			WithArgs("sched-1", "2026-10-01", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.CompareAndSwap("sched-1", "2026-10-01", []string{"01"}, 0)
		assert.ErrorIs(t, err, ErrVersionMismatch)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Matching Version Updates", func(t *testing.T) {
		mock.ExpectExec(`UPDATE seat_inventory`).
			WithArgs("sched-1", "2026-10-01", sqlmock.AnyArg(), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.CompareAndSwap("sched-1", "2026-10-01", []string{"01", "02"}, 3)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Stale Version Loses Update Race", func(t *testing.T) {
		mock.ExpectExec(`UPDATE seat_inventory`).
			WithArgs("sched-1", "2026-10-01", sqlmock.AnyArg(), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.CompareAndSwap("sched-1", "2026-10-01", []string{"01", "02"}, 3)
		assert.ErrorIs(t, err, ErrVersionMismatch)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
