// file: repository/workload_repository_test.go

package repository

import (
	"errors"
	"testing"
	"time"
	"worktrack-api/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var workloadColumns = []string{"id", "user_id", "name", "category", "description", "status", "received_date", "division", "created_at"}

func workloadRow(id, userID int, name, category, description, status string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(workloadColumns).
		AddRow(id, userID, name, category, description, status, now, "Finance", now)
}

func TestWorkloadRepository_Create(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWorkloadRepository(db)
	entry := &model.WorkloadEntry{
		UserID:       7,
		Category:     "Report",
		Description:  "Quarterly numbers",
		Status:       "In Progress",
		ReceivedDate: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Division:     "Finance",
	}

	t.Run("success", func(t *testing.T) {
		dbMock.ExpectQuery("INSERT INTO workload_entries").
			WithArgs(entry.UserID, entry.Category, entry.Description, entry.Status, entry.ReceivedDate, entry.Division).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, time.Now()))

		assert.NoError(t, repo.Create(entry))
		assert.Equal(t, 42, entry.ID)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		dbMock.ExpectQuery("INSERT INTO workload_entries").
			WillReturnError(errors.New("db down"))

		assert.Error(t, repo.Create(entry))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestWorkloadRepository_List(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWorkloadRepository(db)

	t.Run("no filters pages the whole table", func(t *testing.T) {
		dbMock.ExpectQuery(`SELECT COUNT\(\*\) FROM workload_entries`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
		dbMock.ExpectQuery("SELECT (.+) FROM workload_entries w JOIN users u").
			WithArgs(10, 0).
			WillReturnRows(workloadRow(1, 7, "Jane", "Report", "Quarterly numbers", "In Progress"))

		entries, total, err := repo.List(model.WorkloadFilter{Page: 1, Limit: 10})
		assert.NoError(t, err)
		assert.Equal(t, 12, total)
		assert.Len(t, entries, 1)
		assert.Equal(t, "Jane", entries[0].EmployeeName)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("filters compose in order with numbered args", func(t *testing.T) {
		filter := model.WorkloadFilter{
			Search:   "numbers",
			Category: "Report",
			Status:   "In Progress",
			Name:     "Jane",
			Page:     2,
			Limit:    5,
		}

		dbMock.ExpectQuery(`SELECT COUNT\(\*\) FROM workload_entries`).
			WithArgs("%numbers%", "Report", "In Progress", "Jane").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))
		dbMock.ExpectQuery("SELECT (.+) FROM workload_entries w JOIN users u").
			WithArgs("%numbers%", "Report", "In Progress", "Jane", 5, 5).
			WillReturnRows(workloadRow(2, 7, "Jane", "Report", "Annual numbers", "In Progress"))

		entries, total, err := repo.List(filter)
		assert.NoError(t, err)
		assert.Equal(t, 6, total)
		assert.Len(t, entries, 1)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("the all sentinel is ignored like an empty filter", func(t *testing.T) {
		filter := model.WorkloadFilter{Category: "all", Status: "all", Name: "all", Page: 1, Limit: 10}

		dbMock.ExpectQuery(`SELECT COUNT\(\*\) FROM workload_entries`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		dbMock.ExpectQuery("SELECT (.+) FROM workload_entries w JOIN users u").
			WithArgs(10, 0).
			WillReturnRows(sqlmock.NewRows(workloadColumns))

		entries, total, err := repo.List(filter)
		assert.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, entries)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("count error aborts before the data query", func(t *testing.T) {
		dbMock.ExpectQuery(`SELECT COUNT\(\*\) FROM workload_entries`).
			WillReturnError(errors.New("db down"))

		_, _, err := repo.List(model.WorkloadFilter{Page: 1, Limit: 10})
		assert.Error(t, err)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestWorkloadRepository_ListOpen(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWorkloadRepository(db)

	t.Run("without a name filter", func(t *testing.T) {
		dbMock.ExpectQuery("SELECT (.+) FROM workload_entries w JOIN users u (.+) w.status <> 'Done'").
			WillReturnRows(workloadRow(1, 7, "Jane", "Report", "Quarterly numbers", "In Progress"))

		entries, err := repo.ListOpen("")
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("with a name filter", func(t *testing.T) {
		dbMock.ExpectQuery("SELECT (.+) FROM workload_entries w JOIN users u (.+) w.status <> 'Done' AND u.name").
			WithArgs("Jane").
			WillReturnRows(sqlmock.NewRows(workloadColumns))

		entries, err := repo.ListOpen("Jane")
		assert.NoError(t, err)
		assert.Empty(t, entries)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestWorkloadRepository_DistinctOptions(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWorkloadRepository(db)

	dbMock.ExpectQuery("SELECT DISTINCT category FROM workload_entries").
		WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("Audit").AddRow("Report"))
	dbMock.ExpectQuery("SELECT DISTINCT status FROM workload_entries").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("Done").AddRow("In Progress"))
	dbMock.ExpectQuery("SELECT DISTINCT division FROM workload_entries").
		WillReturnRows(sqlmock.NewRows([]string{"division"}).AddRow("Finance"))

	opts, err := repo.DistinctOptions()
	assert.NoError(t, err)
	assert.Equal(t, []string{"Audit", "Report"}, opts.Categories)
	assert.Equal(t, []string{"Done", "In Progress"}, opts.Statuses)
	assert.Equal(t, []string{"Finance"}, opts.Divisions)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestWorkloadRepository_UpdateAndDelete(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWorkloadRepository(db)

	t.Run("update", func(t *testing.T) {
		entry := &model.WorkloadEntry{
			ID:           42,
			Category:     "Report",
			Description:  "Quarterly numbers, revised",
			Status:       "Done",
			ReceivedDate: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
			Division:     "Finance",
		}
		dbMock.ExpectExec("UPDATE workload_entries SET").
			WithArgs(entry.Category, entry.Description, entry.Status, entry.ReceivedDate, entry.Division, entry.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(entry))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("delete", func(t *testing.T) {
		dbMock.ExpectExec("DELETE FROM workload_entries").
			WithArgs(42).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(42))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}
