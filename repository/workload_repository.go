package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"worktrack-api/logger"
	"worktrack-api/model"

	"github.com/sirupsen/logrus"
)

// IWorkloadRepository defines the contract for workload entry persistence.
type IWorkloadRepository interface {
	Create(entry *model.WorkloadEntry) error
	GetByID(id int) (*model.WorkloadEntry, error)
	List(filter model.WorkloadFilter) ([]*model.WorkloadEntry, int, error)
	ListOpen(name string) ([]*model.WorkloadEntry, error)
	DistinctOptions() (*model.WorkloadOptions, error)
	Update(entry *model.WorkloadEntry) error
	Delete(id int) error
}

// WorkloadRepository implements IWorkloadRepository on postgres.
type WorkloadRepository struct {
	DB *sql.DB
}

func NewWorkloadRepository(db *sql.DB) *WorkloadRepository {
	return &WorkloadRepository{DB: db}
}

const workloadSelect = `SELECT w.id, w.user_id, u.name, w.category, w.description, w.status, w.received_date, w.division, w.created_at
	FROM workload_entries w JOIN users u ON u.id = w.user_id`

func scanWorkload(rows *sql.Rows) (*model.WorkloadEntry, error) {
	var e model.WorkloadEntry
	err := rows.Scan(&e.ID, &e.UserID, &e.EmployeeName, &e.Category, &e.Description,
		&e.Status, &e.ReceivedDate, &e.Division, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a new workload entry.
func (r *WorkloadRepository) Create(entry *model.WorkloadEntry) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":  entry.UserID,
		"category": entry.Category,
		"status":   entry.Status,
	})
	log.Info("Executing query to create a workload entry")

	query := `INSERT INTO workload_entries (user_id, category, description, status, received_date, division)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.DB.QueryRow(query, entry.UserID, entry.Category, entry.Description,
		entry.Status, entry.ReceivedDate, entry.Division).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create workload entry query")
		return err
	}
	return nil
}

func (r *WorkloadRepository) GetByID(id int) (*model.WorkloadEntry, error) {
	var e model.WorkloadEntry
	query := workloadSelect + ` WHERE w.id = $1`
	err := r.DB.QueryRow(query, id).Scan(&e.ID, &e.UserID, &e.EmployeeName, &e.Category,
		&e.Description, &e.Status, &e.ReceivedDate, &e.Division, &e.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("entry_id", id).Error("Failed to fetch workload entry")
		}
		return nil, err
	}
	return &e, nil
}

// buildWorkloadWhere composes the WHERE clause shared by List's data and count
// queries. The filter's "all" sentinel is treated the same as empty.
func buildWorkloadWhere(filter model.WorkloadFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	add := func(cond string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.Search != "" {
		add("w.description ILIKE $%d", "%"+filter.Search+"%")
	}
	if filter.Category != "" && filter.Category != "all" {
		add("w.category = $%d", filter.Category)
	}
	if filter.Status != "" && filter.Status != "all" {
		add("w.status = $%d", filter.Status)
	}
	if filter.Name != "" && filter.Name != "all" {
		add("u.name = $%d", filter.Name)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List returns one page of workload entries matching the filter, newest first,
// along with the total match count for pagination.
func (r *WorkloadRepository) List(filter model.WorkloadFilter) ([]*model.WorkloadEntry, int, error) {
	where, args := buildWorkloadWhere(filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM workload_entries w JOIN users u ON u.id = w.user_id` + where
	if err := r.DB.QueryRow(countQuery, args...).Scan(&total); err != nil {
		logger.Log.WithError(err).Error("Failed to count workload entries")
		return nil, 0, err
	}

	query := fmt.Sprintf("%s%s ORDER BY w.created_at DESC LIMIT $%d OFFSET $%d",
		workloadSelect, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute workload list query")
		return nil, 0, err
	}
	defer rows.Close()

	var entries []*model.WorkloadEntry
	for rows.Next() {
		e, err := scanWorkload(rows)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to scan workload entry row")
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}

// ListOpen returns entries that are not yet done, newest first. This feeds the
// dashboard; an optional employee name narrows the result.
func (r *WorkloadRepository) ListOpen(name string) ([]*model.WorkloadEntry, error) {
	query := workloadSelect + ` WHERE w.status <> 'Done'`
	var args []interface{}
	if name != "" && name != "all" {
		query += ` AND u.name = $1`
		args = append(args, name)
	}
	query += ` ORDER BY w.created_at DESC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute open workload query")
		return nil, err
	}
	defer rows.Close()

	var entries []*model.WorkloadEntry
	for rows.Next() {
		e, err := scanWorkload(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DistinctOptions collects the category/status/division values currently in
// use, for form dropdowns.
func (r *WorkloadRepository) DistinctOptions() (*model.WorkloadOptions, error) {
	opts := &model.WorkloadOptions{}

	collect := func(column string, dest *[]string) error {
		query := fmt.Sprintf(`SELECT DISTINCT %s FROM workload_entries WHERE %s <> '' ORDER BY %s`, column, column, column)
		rows, err := r.DB.Query(query)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				return err
			}
			*dest = append(*dest, v)
		}
		return rows.Err()
	}

	if err := collect("category", &opts.Categories); err != nil {
		logger.Log.WithError(err).Error("Failed to collect workload categories")
		return nil, err
	}
	if err := collect("status", &opts.Statuses); err != nil {
		logger.Log.WithError(err).Error("Failed to collect workload statuses")
		return nil, err
	}
	if err := collect("division", &opts.Divisions); err != nil {
		logger.Log.WithError(err).Error("Failed to collect workload divisions")
		return nil, err
	}
	return opts, nil
}

// Update rewrites the mutable fields of a workload entry.
func (r *WorkloadRepository) Update(entry *model.WorkloadEntry) error {
	log := logger.Log.WithField("entry_id", entry.ID)
	log.Info("Executing query to update a workload entry")

	query := `UPDATE workload_entries SET category = $1, description = $2, status = $3, received_date = $4, division = $5 WHERE id = $6`
	_, err := r.DB.Exec(query, entry.Category, entry.Description, entry.Status,
		entry.ReceivedDate, entry.Division, entry.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update workload entry query")
		return err
	}
	return nil
}

func (r *WorkloadRepository) Delete(id int) error {
	log := logger.Log.WithField("entry_id", id)
	log.Info("Executing query to delete a workload entry")

	_, err := r.DB.Exec(`DELETE FROM workload_entries WHERE id = $1`, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete workload entry query")
		return err
	}
	return nil
}
