package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"worktrack-api/logger"
	"worktrack-api/model"

	"github.com/sirupsen/logrus"
)

// ITripRepository defines the contract for business trip persistence.
type ITripRepository interface {
	Create(trip *model.BusinessTrip) error
	GetByID(id int) (*model.BusinessTrip, error)
	List(filter model.TripFilter) ([]*model.BusinessTrip, int, error)
	Update(trip *model.BusinessTrip) error
	Delete(id int) error
}

// TripRepository implements ITripRepository on postgres.
type TripRepository struct {
	DB *sql.DB
}

func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{DB: db}
}

const tripSelect = `SELECT t.id, t.user_id, t.employee_name, t.destination, t.departure_date, t.return_date,
	t.status, t.transport_mode, t.cost, t.notes, t.created_at
	FROM business_trips t JOIN users u ON u.id = t.user_id`

func scanTrip(rows *sql.Rows) (*model.BusinessTrip, error) {
	var t model.BusinessTrip
	err := rows.Scan(&t.ID, &t.UserID, &t.EmployeeName, &t.Destination, &t.DepartureDate,
		&t.ReturnDate, &t.Status, &t.TransportMode, &t.Cost, &t.Notes, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a new business trip record.
func (r *TripRepository) Create(trip *model.BusinessTrip) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":     trip.UserID,
		"destination": trip.Destination,
	})
	log.Info("Executing query to create a business trip")

	query := `INSERT INTO business_trips (user_id, employee_name, destination, departure_date, return_date, status, transport_mode, cost, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at`
	err := r.DB.QueryRow(query, trip.UserID, trip.EmployeeName, trip.Destination, trip.DepartureDate,
		trip.ReturnDate, trip.Status, trip.TransportMode, trip.Cost, trip.Notes).
		Scan(&trip.ID, &trip.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create business trip query")
		return err
	}
	return nil
}

func (r *TripRepository) GetByID(id int) (*model.BusinessTrip, error) {
	var t model.BusinessTrip
	query := tripSelect + ` WHERE t.id = $1`
	err := r.DB.QueryRow(query, id).Scan(&t.ID, &t.UserID, &t.EmployeeName, &t.Destination,
		&t.DepartureDate, &t.ReturnDate, &t.Status, &t.TransportMode, &t.Cost, &t.Notes, &t.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("trip_id", id).Error("Failed to fetch business trip")
		}
		return nil, err
	}
	return &t, nil
}

func buildTripWhere(filter model.TripFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	add := func(cond string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(t.destination ILIKE $%d OR t.notes ILIKE $%d)", len(args), len(args)))
	}
	if filter.Status != "" && filter.Status != "all" {
		add("t.status = $%d", filter.Status)
	}
	if filter.Transport != "" && filter.Transport != "all" {
		add("t.transport_mode = $%d", filter.Transport)
	}
	if filter.Name != "" && filter.Name != "all" {
		add("u.name = $%d", filter.Name)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List returns one page of trips matching the filter, newest first, plus the
// total match count.
func (r *TripRepository) List(filter model.TripFilter) ([]*model.BusinessTrip, int, error) {
	where, args := buildTripWhere(filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM business_trips t JOIN users u ON u.id = t.user_id` + where
	if err := r.DB.QueryRow(countQuery, args...).Scan(&total); err != nil {
		logger.Log.WithError(err).Error("Failed to count business trips")
		return nil, 0, err
	}

	query := fmt.Sprintf("%s%s ORDER BY t.created_at DESC LIMIT $%d OFFSET $%d",
		tripSelect, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute business trip list query")
		return nil, 0, err
	}
	defer rows.Close()

	var trips []*model.BusinessTrip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to scan business trip row")
			return nil, 0, err
		}
		trips = append(trips, t)
	}
	return trips, total, rows.Err()
}

// Update rewrites the mutable fields of a business trip.
func (r *TripRepository) Update(trip *model.BusinessTrip) error {
	log := logger.Log.WithField("trip_id", trip.ID)
	log.Info("Executing query to update a business trip")

	query := `UPDATE business_trips SET destination = $1, departure_date = $2, return_date = $3,
	          status = $4, transport_mode = $5, cost = $6, notes = $7 WHERE id = $8`
	_, err := r.DB.Exec(query, trip.Destination, trip.DepartureDate, trip.ReturnDate,
		trip.Status, trip.TransportMode, trip.Cost, trip.Notes, trip.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update business trip query")
		return err
	}
	return nil
}

func (r *TripRepository) Delete(id int) error {
	log := logger.Log.WithField("trip_id", id)
	log.Info("Executing query to delete a business trip")

	_, err := r.DB.Exec(`DELETE FROM business_trips WHERE id = $1`, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete business trip query")
		return err
	}
	return nil
}
