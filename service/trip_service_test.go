package service

import (
	"database/sql"
	"testing"
	"worktrack-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockTripRepo is a mock implementation of ITripRepository.
type mockTripRepo struct{ mock.Mock }

func (m *mockTripRepo) Create(trip *model.BusinessTrip) error {
	args := m.Called(trip)
	return args.Error(0)
}
func (m *mockTripRepo) GetByID(id int) (*model.BusinessTrip, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BusinessTrip), args.Error(1)
}
func (m *mockTripRepo) List(filter model.TripFilter) ([]*model.BusinessTrip, int, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*model.BusinessTrip), args.Int(1), args.Error(2)
}
func (m *mockTripRepo) Update(trip *model.BusinessTrip) error {
	args := m.Called(trip)
	return args.Error(0)
}
func (m *mockTripRepo) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func validTripRequest() model.CreateTripRequest {
	return model.CreateTripRequest{
		Destination:   "Jakarta",
		DepartureDate: "2026-09-10",
		ReturnDate:    "2026-09-12",
		Status:        "Planned",
		TransportMode: "Plane",
	}
}

func TestTripService_Create(t *testing.T) {
	caller := &model.User{ID: 3, Name: "John Doe", Role: string(model.RoleUser)}

	t.Run("success", func(t *testing.T) {
		mockRepo := new(mockTripRepo)
		mockUsers := new(mockUserRepo)
		svc := NewTripService(mockRepo, mockUsers)

		mockUsers.On("GetByID", 3).Return(caller, nil).Once()
		mockRepo.On("Create", mock.MatchedBy(func(tr *model.BusinessTrip) bool {
			return tr.UserID == 3 && tr.EmployeeName == "John Doe" && tr.Destination == "Jakarta"
		})).Return(nil).Once()

		trip, err := svc.Create(3, string(model.RoleUser), validTripRequest())
		assert.NoError(t, err)
		assert.Equal(t, "Jakarta", trip.Destination)
		mockRepo.AssertExpectations(t)
	})

	t.Run("return before departure is rejected", func(t *testing.T) {
		mockRepo := new(mockTripRepo)
		mockUsers := new(mockUserRepo)
		svc := NewTripService(mockRepo, mockUsers)

		mockUsers.On("GetByID", 3).Return(caller, nil).Once()

		req := validTripRequest()
		req.ReturnDate = "2026-09-01"

		_, err := svc.Create(3, string(model.RoleUser), req)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestTripService_UpdateAndDelete_Authorization(t *testing.T) {
	stored := &model.BusinessTrip{ID: 4, UserID: 3, Destination: "Jakarta"}

	updateReq := model.UpdateTripRequest{
		Destination:   "Bandung",
		DepartureDate: "2026-09-10",
		ReturnDate:    "2026-09-12",
		Status:        "Planned",
	}

	t.Run("owner may update", func(t *testing.T) {
		mockRepo := new(mockTripRepo)
		svc := NewTripService(mockRepo, nil)

		mockRepo.On("GetByID", 4).Return(stored, nil).Once()
		mockRepo.On("Update", mock.MatchedBy(func(tr *model.BusinessTrip) bool {
			return tr.Destination == "Bandung"
		})).Return(nil).Once()

		_, err := svc.Update(3, string(model.RoleUser), 4, updateReq)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("another user is denied", func(t *testing.T) {
		mockRepo := new(mockTripRepo)
		svc := NewTripService(mockRepo, nil)

		mockRepo.On("GetByID", 4).Return(stored, nil).Once()

		_, err := svc.Update(8, string(model.RoleUser), 4, updateReq)
		assert.Equal(t, ErrPermissionDenied, err)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("admin may delete any trip", func(t *testing.T) {
		mockRepo := new(mockTripRepo)
		svc := NewTripService(mockRepo, nil)

		mockRepo.On("GetByID", 4).Return(stored, nil).Once()
		mockRepo.On("Delete", 4).Return(nil).Once()

		assert.NoError(t, svc.Delete(1, string(model.RoleAdmin), 4))
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing trip", func(t *testing.T) {
		mockRepo := new(mockTripRepo)
		svc := NewTripService(mockRepo, nil)

		mockRepo.On("GetByID", 99).Return(nil, sql.ErrNoRows).Once()

		assert.Equal(t, ErrTripNotFound, svc.Delete(1, string(model.RoleAdmin), 99))
	})
}
