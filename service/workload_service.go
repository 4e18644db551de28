package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
	"worktrack-api/logger"
	"worktrack-api/model"
	"worktrack-api/repository"

	"github.com/sirupsen/logrus"
)

var ErrEntryNotFound = errors.New("entry not found")

const workloadOptionsCacheKey = "workloads:options"

// FormOptions bundles everything the workload entry form needs.
type FormOptions struct {
	Users   []model.EmployeeRef    `json:"users"`
	Options *model.WorkloadOptions `json:"options"`
}

// WorkloadService handles workload entry rules: attribution, the
// admin-or-owner policy on edits, and dropdown option caching.
type WorkloadService struct {
	repo     repository.IWorkloadRepository
	userRepo repository.IUserRepository
	cache    ICacheClient
}

func NewWorkloadService(repo repository.IWorkloadRepository, userRepo repository.IUserRepository, cache ICacheClient) *WorkloadService {
	return &WorkloadService{repo: repo, userRepo: userRepo, cache: cache}
}

// Options returns the employee list and the distinct dropdown values,
// utilizing a cache-aside strategy.
func (s *WorkloadService) Options() (*FormOptions, error) {
	ctx := context.Background()

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, workloadOptionsCacheKey).Result(); err == nil {
			var opts FormOptions
			if err := json.Unmarshal([]byte(cached), &opts); err == nil {
				return &opts, nil
			}
		}
	}

	users, err := s.userRepo.GetNames()
	if err != nil {
		return nil, err
	}
	dropdowns, err := s.repo.DistinctOptions()
	if err != nil {
		return nil, err
	}

	opts := &FormOptions{Users: users, Options: dropdowns}
	if s.cache != nil {
		if data, err := json.Marshal(opts); err == nil {
			s.cache.Set(ctx, workloadOptionsCacheKey, data, 10*time.Minute)
		}
	}
	return opts, nil
}

func (s *WorkloadService) invalidateOptions() {
	if s.cache != nil {
		s.cache.Del(context.Background(), workloadOptionsCacheKey)
	}
}

// ListTable returns one page of entries plus pagination metadata.
func (s *WorkloadService) ListTable(filter model.WorkloadFilter) ([]*model.WorkloadEntry, *model.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	entries, total, err := s.repo.List(filter)
	if err != nil {
		return nil, nil, err
	}

	return entries, &model.Pagination{
		Page:       filter.Page,
		Limit:      filter.Limit,
		Total:      total,
		TotalPages: (total + filter.Limit - 1) / filter.Limit,
	}, nil
}

// Dashboard returns the open (not Done) entries, optionally narrowed to one
// employee.
func (s *WorkloadService) Dashboard(name string) ([]*model.WorkloadEntry, error) {
	return s.repo.ListOpen(name)
}

// resolveOwner decides which employee a new record belongs to. Admins may
// attribute it to any employee by name; everyone else always creates records
// for themselves.
func resolveOwner(userRepo repository.IUserRepository, callerID int, callerRole, name string) (*model.User, error) {
	if callerRole == string(model.RoleAdmin) && name != "" {
		owner, err := userRepo.GetByName(name)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, ErrEmployeeNotFound
			}
			return nil, err
		}
		return owner, nil
	}
	return userRepo.GetByID(callerID)
}

// Create records a new workload entry.
func (s *WorkloadService) Create(callerID int, callerRole string, req model.CreateWorkloadRequest) (*model.WorkloadEntry, error) {
	owner, err := resolveOwner(s.userRepo, callerID, callerRole, req.EmployeeName)
	if err != nil {
		return nil, err
	}

	received, err := time.Parse("2006-01-02", req.ReceivedDate)
	if err != nil {
		return nil, err
	}

	entry := &model.WorkloadEntry{
		UserID:       owner.ID,
		EmployeeName: owner.Name,
		Category:     req.Category,
		Description:  req.Description,
		Status:       req.Status,
		ReceivedDate: received,
		Division:     req.Division,
	}

	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}

	s.invalidateOptions()
	logger.Log.WithFields(logrus.Fields{
		"entry_id": entry.ID,
		"user_id":  entry.UserID,
	}).Info("Workload entry created")
	return entry, nil
}

// Update edits an entry under the admin-or-owner rule.
func (s *WorkloadService) Update(callerID int, callerRole string, id int, req model.UpdateWorkloadRequest) (*model.WorkloadEntry, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	if !IsAdminOrOwner(callerID, callerRole, entry.UserID) {
		return nil, ErrPermissionDenied
	}

	received, err := time.Parse("2006-01-02", req.ReceivedDate)
	if err != nil {
		return nil, err
	}

	entry.Category = req.Category
	entry.Description = req.Description
	entry.Status = req.Status
	entry.ReceivedDate = received
	entry.Division = req.Division

	if err := s.repo.Update(entry); err != nil {
		return nil, err
	}

	s.invalidateOptions()
	return entry, nil
}

// Delete removes an entry under the admin-or-owner rule.
func (s *WorkloadService) Delete(callerID int, callerRole string, id int) error {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrEntryNotFound
		}
		return err
	}

	if !IsAdminOrOwner(callerID, callerRole, entry.UserID) {
		return ErrPermissionDenied
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.invalidateOptions()
	return nil
}
