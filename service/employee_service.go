package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"worktrack-api/logger"
	"worktrack-api/model"
	"worktrack-api/repository"

	"github.com/google/uuid"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrPermissionDenied = errors.New("access denied")
	ErrSelfDeactivation = errors.New("administrators cannot deactivate themselves")
)

const employeeNamesCacheKey = "employees:names"

// EmployeeService handles the employee roster and profile rules.
type EmployeeService struct {
	repo  repository.IUserRepository
	auth  *AuthService
	cache ICacheClient
}

func NewEmployeeService(repo repository.IUserRepository, auth *AuthService, cache ICacheClient) *EmployeeService {
	return &EmployeeService{repo: repo, auth: auth, cache: cache}
}

// List returns the full roster. The handler restricts this to admins.
func (s *EmployeeService) List() ([]*model.User, error) {
	return s.repo.GetAll()
}

// Names lists active employees for dropdowns, via a cache-aside strategy.
func (s *EmployeeService) Names() ([]model.EmployeeRef, error) {
	ctx := context.Background()

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, employeeNamesCacheKey).Result(); err == nil {
			var refs []model.EmployeeRef
			if err := json.Unmarshal([]byte(cached), &refs); err == nil {
				return refs, nil
			}
		}
	}

	refs, err := s.repo.GetNames()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(refs); err == nil {
			s.cache.Set(ctx, employeeNamesCacheKey, data, 10*time.Minute)
		}
	}
	return refs, nil
}

func (s *EmployeeService) invalidateNames() {
	if s.cache != nil {
		s.cache.Del(context.Background(), employeeNamesCacheKey)
	}
}

// Get returns a single employee, enforcing the admin-or-owner rule.
func (s *EmployeeService) Get(callerID int, callerRole string, id int) (*model.User, error) {
	if !IsAdminOrOwner(callerID, callerRole, id) {
		return nil, ErrPermissionDenied
	}
	user, err := s.repo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return user, nil
}

// Create provisions a new employee with a hashed password and a generated
// employee code. Role defaults to User and accounts start active.
func (s *EmployeeService) Create(req model.CreateEmployeeRequest) (*model.User, error) {
	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = string(model.RoleUser)
	}

	user := &model.User{
		EmployeeCode: "EMP-" + strings.ToUpper(uuid.NewString()[:8]),
		Name:         req.Name,
		IDNumber:     req.IDNumber,
		Grade:        req.Grade,
		Position:     req.Position,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	s.invalidateNames()
	logger.Log.WithField("user_id", user.ID).Info("Employee created")
	return user, nil
}

// Update applies profile changes under the admin-or-owner rule. Admins may
// change every field; a non-admin owner may only change their display name
// and password. A blank password means "keep the current one".
func (s *EmployeeService) Update(callerID int, callerRole string, id int, req model.UpdateEmployeeRequest) (*model.User, error) {
	if !IsAdminOrOwner(callerID, callerRole, id) {
		return nil, ErrPermissionDenied
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	if callerRole == string(model.RoleAdmin) {
		user.Name = req.Name
		user.IDNumber = req.IDNumber
		user.Grade = req.Grade
		user.Position = req.Position
		if req.Username != "" {
			user.Username = req.Username
		}
		if req.Role != "" {
			user.Role = req.Role
		}
		if req.IsActive != nil {
			user.IsActive = *req.IsActive
		}
	} else {
		user.Name = req.Name
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Password) != "" {
		hash, err := s.auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		if err := s.repo.UpdatePassword(user.ID, hash); err != nil {
			return nil, err
		}
	}

	s.invalidateNames()
	return user, nil
}

// Deactivate is the soft-delete path: the record is kept, the active flag is
// cleared. Admins cannot deactivate their own account.
func (s *EmployeeService) Deactivate(callerID, id int) error {
	if callerID == id {
		return ErrSelfDeactivation
	}
	if _, err := s.repo.GetByID(id); err != nil {
		if err == sql.ErrNoRows {
			return ErrEmployeeNotFound
		}
		return err
	}
	if err := s.repo.Deactivate(id); err != nil {
		return err
	}
	s.invalidateNames()
	return nil
}
