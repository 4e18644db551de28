package service

import (
	"database/sql"
	"errors"
	"time"
	"worktrack-api/logger"
	"worktrack-api/model"
	"worktrack-api/repository"

	"github.com/sirupsen/logrus"
)

var ErrTripNotFound = errors.New("business trip not found")

// TripService handles business travel records. It shares the attribution and
// admin-or-owner rules with the workload service.
type TripService struct {
	repo     repository.ITripRepository
	userRepo repository.IUserRepository
}

func NewTripService(repo repository.ITripRepository, userRepo repository.IUserRepository) *TripService {
	return &TripService{repo: repo, userRepo: userRepo}
}

// ListTable returns one page of trips plus pagination metadata.
func (s *TripService) ListTable(filter model.TripFilter) ([]*model.BusinessTrip, *model.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	trips, total, err := s.repo.List(filter)
	if err != nil {
		return nil, nil, err
	}

	return trips, &model.Pagination{
		Page:       filter.Page,
		Limit:      filter.Limit,
		Total:      total,
		TotalPages: (total + filter.Limit - 1) / filter.Limit,
	}, nil
}

// Create records a new business trip.
func (s *TripService) Create(callerID int, callerRole string, req model.CreateTripRequest) (*model.BusinessTrip, error) {
	owner, err := resolveOwner(s.userRepo, callerID, callerRole, req.EmployeeName)
	if err != nil {
		return nil, err
	}

	departure, returnDate, err := parseTripDates(req.DepartureDate, req.ReturnDate)
	if err != nil {
		return nil, err
	}

	trip := &model.BusinessTrip{
		UserID:        owner.ID,
		EmployeeName:  owner.Name,
		Destination:   req.Destination,
		DepartureDate: departure,
		ReturnDate:    returnDate,
		Status:        req.Status,
		TransportMode: req.TransportMode,
		Cost:          req.Cost,
		Notes:         req.Notes,
	}

	if err := s.repo.Create(trip); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"trip_id": trip.ID,
		"user_id": trip.UserID,
	}).Info("Business trip created")
	return trip, nil
}

// ErrInvalidDateRange flags a return date earlier than the departure date.
var ErrInvalidDateRange = errors.New("return date must not precede the departure date")

func parseTripDates(departure, returnDate string) (time.Time, time.Time, error) {
	dep, err := time.Parse("2006-01-02", departure)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	ret, err := time.Parse("2006-01-02", returnDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if ret.Before(dep) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return dep, ret, nil
}

// Update edits a trip under the admin-or-owner rule.
func (s *TripService) Update(callerID int, callerRole string, id int, req model.UpdateTripRequest) (*model.BusinessTrip, error) {
	trip, err := s.repo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	if !IsAdminOrOwner(callerID, callerRole, trip.UserID) {
		return nil, ErrPermissionDenied
	}

	departure, returnDate, err := parseTripDates(req.DepartureDate, req.ReturnDate)
	if err != nil {
		return nil, err
	}

	trip.Destination = req.Destination
	trip.DepartureDate = departure
	trip.ReturnDate = returnDate
	trip.Status = req.Status
	trip.TransportMode = req.TransportMode
	trip.Cost = req.Cost
	trip.Notes = req.Notes

	if err := s.repo.Update(trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// Delete removes a trip under the admin-or-owner rule.
func (s *TripService) Delete(callerID int, callerRole string, id int) error {
	trip, err := s.repo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrTripNotFound
		}
		return err
	}

	if !IsAdminOrOwner(callerID, callerRole, trip.UserID) {
		return ErrPermissionDenied
	}

	return s.repo.Delete(id)
}

// EmployeeNames lists active employees for the trip form dropdown.
func (s *TripService) EmployeeNames() ([]model.EmployeeRef, error) {
	return s.userRepo.GetNames()
}
