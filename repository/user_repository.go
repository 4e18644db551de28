package repository

import (
	"database/sql"
	"errors"
	"worktrack-api/logger"
	"worktrack-api/model"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// ErrDuplicate signals a unique constraint violation (username or ID number).
var ErrDuplicate = errors.New("username or ID number already in use")

const userColumns = `id, employee_code, name, id_number, grade, position, username, role, is_active, created_at, updated_at`

// IUserRepository defines the contract for employee record persistence.
type IUserRepository interface {
	Create(user *model.User) error
	GetActiveByUsername(username string) (*model.User, error)
	GetByID(id int) (*model.User, error)
	GetByName(name string) (*model.User, error)
	GetAll() ([]*model.User, error)
	GetNames() ([]model.EmployeeRef, error)
	Update(user *model.User) error
	UpdatePassword(id int, passwordHash string) error
	Deactivate(id int) error
}

// UserRepository implements IUserRepository on postgres.
type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func scanUser(row interface{ Scan(...interface{}) error }, u *model.User) error {
	return row.Scan(&u.ID, &u.EmployeeCode, &u.Name, &u.IDNumber, &u.Grade, &u.Position,
		&u.Username, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
}

// Create inserts a new employee record. The unique violation case is mapped
// to ErrDuplicate so callers can answer with a client error.
func (r *UserRepository) Create(user *model.User) error {
	log := logger.Log.WithFields(logrus.Fields{
		"username":      user.Username,
		"employee_code": user.EmployeeCode,
	})
	log.Info("Executing query to create a new employee")

	query := `INSERT INTO users (employee_code, name, id_number, grade, position, username, password_hash, role, is_active)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at, updated_at`
	err := r.DB.QueryRow(query, user.EmployeeCode, user.Name, user.IDNumber, user.Grade, user.Position,
		user.Username, user.PasswordHash, user.Role, user.IsActive).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicate
		}
		log.WithError(err).Error("Failed to execute create employee query")
		return err
	}
	return nil
}

// GetActiveByUsername fetches an active user with the password hash included.
// This is the only accessor that returns the hash; it exists for the login path.
func (r *UserRepository) GetActiveByUsername(username string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT ` + userColumns + `, password_hash FROM users WHERE username = $1 AND is_active = TRUE`
	err := scanUserWithHash(r.DB.QueryRow(query, username), user)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("username", username).Error("Failed to fetch user by username")
		}
		return nil, err
	}
	return user, nil
}

func scanUserWithHash(row *sql.Row, u *model.User) error {
	return row.Scan(&u.ID, &u.EmployeeCode, &u.Name, &u.IDNumber, &u.Grade, &u.Position,
		&u.Username, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt, &u.PasswordHash)
}

func (r *UserRepository) GetByID(id int) (*model.User, error) {
	user := &model.User{}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	err := scanUser(r.DB.QueryRow(query, id), user)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("user_id", id).Error("Failed to fetch user by ID")
		}
		return nil, err
	}
	return user, nil
}

// GetByName resolves an employee by display name. Used when an admin records
// work or travel on someone else's behalf.
func (r *UserRepository) GetByName(name string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT ` + userColumns + ` FROM users WHERE name = $1`
	err := scanUser(r.DB.QueryRow(query, name), user)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("name", name).Error("Failed to fetch user by name")
		}
		return nil, err
	}
	return user, nil
}

// GetAll returns the full roster ordered by name. Admin use only.
func (r *UserRepository) GetAll() ([]*model.User, error) {
	logger.Log.Info("Executing query to get all employees")

	query := `SELECT ` + userColumns + ` FROM users ORDER BY name ASC`
	rows, err := r.DB.Query(query)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for all employees")
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			logger.Log.WithError(err).Error("Failed to scan employee row")
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

// GetNames returns id/name pairs for dropdown lists.
func (r *UserRepository) GetNames() ([]model.EmployeeRef, error) {
	query := `SELECT id, name FROM users WHERE is_active = TRUE ORDER BY name ASC`
	rows, err := r.DB.Query(query)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for employee names")
		return nil, err
	}
	defer rows.Close()

	var refs []model.EmployeeRef
	for rows.Next() {
		var ref model.EmployeeRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// Update rewrites the mutable profile fields of an employee record.
func (r *UserRepository) Update(user *model.User) error {
	log := logger.Log.WithField("user_id", user.ID)
	log.Info("Executing query to update an employee")

	query := `UPDATE users SET name = $1, id_number = $2, grade = $3, position = $4, username = $5,
	          role = $6, is_active = $7, updated_at = now() WHERE id = $8`
	_, err := r.DB.Exec(query, user.Name, user.IDNumber, user.Grade, user.Position,
		user.Username, user.Role, user.IsActive, user.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicate
		}
		log.WithError(err).Error("Failed to execute update employee query")
		return err
	}
	return nil
}

func (r *UserRepository) UpdatePassword(id int, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`
	_, err := r.DB.Exec(query, passwordHash, id)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", id).Error("Failed to update password hash")
		return err
	}
	return nil
}

// Deactivate is the soft-delete path: the record stays, logins stop.
func (r *UserRepository) Deactivate(id int) error {
	log := logger.Log.WithField("user_id", id)
	log.Info("Executing query to deactivate an employee")

	query := `UPDATE users SET is_active = FALSE, updated_at = now() WHERE id = $1`
	_, err := r.DB.Exec(query, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute deactivate employee query")
		return err
	}
	return nil
}
