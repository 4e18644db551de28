package service

import (
	"database/sql"
	"strings"
	"testing"
	"worktrack-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockEmployeeRepo is a mock implementation of IUserRepository for testing the
// employee service.
type mockEmployeeRepo struct{ mock.Mock }

func (m *mockEmployeeRepo) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}
func (m *mockEmployeeRepo) GetByID(id int) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockEmployeeRepo) Update(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}
func (m *mockEmployeeRepo) UpdatePassword(id int, hash string) error {
	args := m.Called(id, hash)
	return args.Error(0)
}
func (m *mockEmployeeRepo) Deactivate(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// Unused methods needed to satisfy the interface.
func (m *mockEmployeeRepo) GetActiveByUsername(string) (*model.User, error) { return nil, nil }
func (m *mockEmployeeRepo) GetByName(string) (*model.User, error)           { return nil, nil }
func (m *mockEmployeeRepo) GetAll() ([]*model.User, error)                  { return nil, nil }
func (m *mockEmployeeRepo) GetNames() ([]model.EmployeeRef, error)          { return nil, nil }

func newEmployeeServiceForTest(repo *mockEmployeeRepo) *EmployeeService {
	return NewEmployeeService(repo, NewAuthService(nil, nil), nil)
}

func TestEmployeeService_Create(t *testing.T) {
	mockRepo := new(mockEmployeeRepo)
	svc := newEmployeeServiceForTest(mockRepo)

	req := model.CreateEmployeeRequest{
		Name:     "Jane Roe",
		IDNumber: "987654321",
		Username: "janeroe",
		Password: "secret123",
	}

	mockRepo.On("Create", mock.MatchedBy(func(u *model.User) bool {
		return strings.HasPrefix(u.EmployeeCode, "EMP-") &&
			u.Role == string(model.RoleUser) &&
			u.IsActive &&
			u.PasswordHash != "" &&
			u.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := svc.Create(req)
	assert.NoError(t, err)
	assert.Equal(t, "Jane Roe", user.Name)
	mockRepo.AssertExpectations(t)
}

func TestEmployeeService_Get(t *testing.T) {
	stored := &model.User{ID: 2, Name: "Jane Roe", Role: string(model.RoleUser)}

	t.Run("owner may read their own record", func(t *testing.T) {
		mockRepo := new(mockEmployeeRepo)
		svc := newEmployeeServiceForTest(mockRepo)
		mockRepo.On("GetByID", 2).Return(stored, nil).Once()

		user, err := svc.Get(2, string(model.RoleUser), 2)
		assert.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("another user is denied", func(t *testing.T) {
		mockRepo := new(mockEmployeeRepo)
		svc := newEmployeeServiceForTest(mockRepo)

		_, err := svc.Get(1, string(model.RoleUser), 2)
		assert.Equal(t, ErrPermissionDenied, err)
		mockRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("admin may read anyone", func(t *testing.T) {
		mockRepo := new(mockEmployeeRepo)
		svc := newEmployeeServiceForTest(mockRepo)
		mockRepo.On("GetByID", 2).Return(stored, nil).Once()

		_, err := svc.Get(1, string(model.RoleAdmin), 2)
		assert.NoError(t, err)
	})

	t.Run("missing record", func(t *testing.T) {
		mockRepo := new(mockEmployeeRepo)
		svc := newEmployeeServiceForTest(mockRepo)
		mockRepo.On("GetByID", 99).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.Get(99, string(model.RoleUser), 99)
		assert.Equal(t, ErrEmployeeNotFound, err)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	t.Run("non-admin owner may only change name and password", func(t *testing.T) {
		mockRepo := new(mockEmployeeRepo)
		svc := newEmployeeServiceForTest(mockRepo)

		stored := &model.User{ID: 2, Name: "Jane Roe", Username: "janeroe", Role: string(model.RoleUser), IsActive: true}
		mockRepo.On("GetByID", 2).Return(stored, nil).Once()
		mockRepo.On("Update", mock.MatchedBy(func(u *model.User) bool {
			// The role and username stay untouched even though the request
			// tries to escalate.
			return u.Name == "Jane R. Roe" && u.Role == string(model.RoleUser) && u.Username == "janeroe"
		})).Return(nil).Once()
		mockRepo.On("UpdatePassword", 2, mock.AnythingOfType("string")).Return(nil).Once()

		req := model.UpdateEmployeeRequest{
			Name:     "Jane R. Roe",
			Username: "superjane",
			Role:     string(model.RoleAdmin),
			Password: "newsecret",
		}
		_, err := svc.Update(2, string(model.RoleUser), 2, req)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("admin may change every field", func(t *testing.T) {
		mockRepo := new(mockEmployeeRepo)
		svc := newEmployeeServiceForTest(mockRepo)

		inactive := false
		stored := &model.User{ID: 2, Name: "Jane Roe", Username: "janeroe", Role: string(model.RoleUser), IsActive: true}
		mockRepo.On("GetByID", 2).Return(stored, nil).Once()
		mockRepo.On("Update", mock.MatchedBy(func(u *model.User) bool {
			return u.Role == string(model.RoleAdmin) && !u.IsActive
		})).Return(nil).Once()

		req := model.UpdateEmployeeRequest{
			Name:     "Jane Roe",
			Role:     string(model.RoleAdmin),
			IsActive: &inactive,
		}
		_, err := svc.Update(1, string(model.RoleAdmin), 2, req)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unrelated user is denied", func(t *testing.T) {
		mockRepo := new(mockEmployeeRepo)
		svc := newEmployeeServiceForTest(mockRepo)

		_, err := svc.Update(1, string(model.RoleUser), 2, model.UpdateEmployeeRequest{Name: "X"})
		assert.Equal(t, ErrPermissionDenied, err)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("blank password keeps the current hash", func(t *testing.T) {
		mockRepo := new(mockEmployeeRepo)
		svc := newEmployeeServiceForTest(mockRepo)

		stored := &model.User{ID: 2, Name: "Jane Roe", Role: string(model.RoleUser), IsActive: true}
		mockRepo.On("GetByID", 2).Return(stored, nil).Once()
		mockRepo.On("Update", mock.Anything).Return(nil).Once()

		_, err := svc.Update(2, string(model.RoleUser), 2, model.UpdateEmployeeRequest{Name: "Jane"})
		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "UpdatePassword")
	})
}

func TestEmployeeService_Deactivate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockRepo := new(mockEmployeeRepo)
		svc := newEmployeeServiceForTest(mockRepo)

		mockRepo.On("GetByID", 2).Return(&model.User{ID: 2}, nil).Once()
		mockRepo.On("Deactivate", 2).Return(nil).Once()

		assert.NoError(t, svc.Deactivate(1, 2))
		mockRepo.AssertExpectations(t)
	})

	t.Run("self deactivation is refused", func(t *testing.T) {
		mockRepo := new(mockEmployeeRepo)
		svc := newEmployeeServiceForTest(mockRepo)

		assert.Equal(t, ErrSelfDeactivation, svc.Deactivate(1, 1))
		mockRepo.AssertNotCalled(t, "Deactivate")
	})
}
