package repository

import (
	"database/sql"
	"testing"
	"time"
	"worktrack-api/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "employee_code", "name", "id_number", "grade", "position",
		"username", "role", "is_active", "created_at", "updated_at", "password_hash",
	})
}

func TestUserRepository_GetActiveByUsername(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)
	now := time.Now()

	t.Run("found with password hash", func(t *testing.T) {
		dbMock.ExpectQuery("SELECT (.+) FROM users WHERE username").
			WithArgs("admin").
			WillReturnRows(userRows().AddRow(
				1, "EMP-ADMIN001", "Admin", "ADMIN001", "IV/a", "Administrator",
				"admin", "Admin", true, now, now, "$2a$10$somethinghashed",
			))

		user, err := repo.GetActiveByUsername("admin")
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "Admin", user.Role)
		assert.Equal(t, "$2a$10$somethinghashed", user.PasswordHash)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("not found is a distinct condition", func(t *testing.T) {
		dbMock.ExpectQuery("SELECT (.+) FROM users WHERE username").
			WithArgs("ghost").
			WillReturnRows(userRows())

		_, err := repo.GetActiveByUsername("ghost")
		assert.Equal(t, sql.ErrNoRows, err)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)

	dbMock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505"})

	user := &model.User{Username: "admin", Name: "Admin", IDNumber: "ADMIN001"}
	err = repo.Create(user)
	assert.Equal(t, ErrDuplicate, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
