package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorRepository_FindByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDoctorRepository()

	mock.ExpectQuery(`SELECT \* FROM "doctors" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "timezone"}).
			AddRow(1, "John", "Doe", "Europe/Helsinki"))

	doctor, err := repo.FindByID(context.Background(), db, 1)
	require.NoError(t, err)
	require.NotNil(t, doctor)
	assert.Equal(t, int64(1), doctor.ID)
	assert.Equal(t, "Europe/Helsinki", doctor.Timezone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorRepository_FindByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDoctorRepository()

	mock.ExpectQuery(`SELECT \* FROM "doctors"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "timezone"}))

	doctor, err := repo.FindByID(context.Background(), db, 99)
	assert.NoError(t, err)
	assert.Nil(t, doctor)
}

func TestDoctorRepository_FindByID_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDoctorRepository()

	mock.ExpectQuery(`SELECT \* FROM "doctors"`).WillReturnError(errors.New("connection reset"))

	doctor, err := repo.FindByID(context.Background(), db, 1)
	assert.EqualError(t, err, "connection reset")
	assert.Nil(t, doctor)
}
