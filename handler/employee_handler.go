package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"worktrack-api/common"
	"worktrack-api/model"
	"worktrack-api/repository"
	"worktrack-api/service"
)

type EmployeeHandler struct {
	service *service.EmployeeService
}

func NewEmployeeHandler(svc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: svc}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func pathID(r *http.Request) (int, *common.AppError) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, common.NewAppError(http.StatusBadRequest, "Invalid ID in URL", err)
	}
	return id, nil
}

// List godoc
// @Summary      List all employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]model.User
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	users, err := h.service.List()
	if err != nil {
		return common.NewInternalError(err)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": users})
	return nil
}

// Profile returns the caller's own employee record.
func (h *EmployeeHandler) Profile(w http.ResponseWriter, r *http.Request) *common.AppError {
	callerID, callerRole := CallerFromContext(r.Context())

	user, err := h.service.Get(callerID, callerRole, callerID)
	if err != nil {
		return employeeError(err)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": user})
	return nil
}

// Get returns one employee record under the admin-or-owner rule.
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r)
	if appErr != nil {
		return appErr
	}
	callerID, callerRole := CallerFromContext(r.Context())

	user, err := h.service.Get(callerID, callerRole, id)
	if err != nil {
		return employeeError(err)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": user})
	return nil
}

// Create godoc
// @Summary      Add a new employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        employee  body      model.CreateEmployeeRequest  true  "New employee"
// @Success      200       {object}  map[string]interface{}
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateEmployeeRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	user, err := h.service.Create(req)
	if err != nil {
		return employeeError(err)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Employee added successfully",
		"data":    user,
	})
	return nil
}

// Update edits an employee record under the admin-or-owner rule.
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r)
	if appErr != nil {
		return appErr
	}
	callerID, callerRole := CallerFromContext(r.Context())

	var req model.UpdateEmployeeRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	user, err := h.service.Update(callerID, callerRole, id, req)
	if err != nil {
		return employeeError(err)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Employee updated successfully",
		"data":    user,
	})
	return nil
}

// Deactivate soft-deletes an employee by clearing the active flag.
func (h *EmployeeHandler) Deactivate(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r)
	if appErr != nil {
		return appErr
	}
	callerID, _ := CallerFromContext(r.Context())

	if err := h.service.Deactivate(callerID, id); err != nil {
		return employeeError(err)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Employee deactivated successfully",
	})
	return nil
}

// employeeError maps service errors onto the client-facing taxonomy. The
// duplicate message is only ever shown to admins; creation is admin-only.
func employeeError(err error) *common.AppError {
	switch err {
	case service.ErrPermissionDenied:
		return common.NewAppError(http.StatusForbidden, "Access denied", nil)
	case service.ErrEmployeeNotFound:
		return common.NewAppError(http.StatusNotFound, "Employee not found", nil)
	case service.ErrSelfDeactivation:
		return common.NewAppError(http.StatusBadRequest, "Administrators cannot deactivate themselves", nil)
	case repository.ErrDuplicate:
		return common.NewAppError(http.StatusBadRequest, "Username or ID number already in use", nil)
	default:
		return common.NewInternalError(err)
	}
}
