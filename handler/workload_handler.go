package handler

import (
	"net/http"
	"strconv"
	"worktrack-api/common"
	"worktrack-api/model"
	"worktrack-api/service"
)

type WorkloadHandler struct {
	service *service.WorkloadService
}

func NewWorkloadHandler(svc *service.WorkloadService) *WorkloadHandler {
	return &WorkloadHandler{service: svc}
}

func queryInt(r *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// Options returns the employee list and dropdown values for the entry form.
func (h *WorkloadHandler) Options(w http.ResponseWriter, r *http.Request) *common.AppError {
	opts, err := h.service.Options()
	if err != nil {
		return common.NewInternalError(err)
	}
	writeJSON(w, http.StatusOK, opts)
	return nil
}

// Table godoc
// @Summary      Paginated workload table
// @Tags         workloads
// @Produce      json
// @Security     BearerAuth
// @Param        page      query  int     false  "Page number"
// @Param        limit     query  int     false  "Page size"
// @Param        search    query  string  false  "Description search"
// @Param        category  query  string  false  "Category filter"
// @Param        status    query  string  false  "Status filter"
// @Param        name      query  string  false  "Employee name filter"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/workloads [get]
func (h *WorkloadHandler) Table(w http.ResponseWriter, r *http.Request) *common.AppError {
	q := r.URL.Query()
	filter := model.WorkloadFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Status:   q.Get("status"),
		Name:     q.Get("name"),
		Page:     queryInt(r, "page", 1),
		Limit:    queryInt(r, "limit", 10),
	}

	entries, pagination, err := h.service.ListTable(filter)
	if err != nil {
		return common.NewInternalError(err)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":       entries,
		"pagination": pagination,
	})
	return nil
}

// Dashboard returns open entries, newest first.
func (h *WorkloadHandler) Dashboard(w http.ResponseWriter, r *http.Request) *common.AppError {
	entries, err := h.service.Dashboard(r.URL.Query().Get("name"))
	if err != nil {
		return common.NewInternalError(err)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": entries})
	return nil
}

// Create records a new workload entry.
func (h *WorkloadHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	callerID, callerRole := CallerFromContext(r.Context())

	var req model.CreateWorkloadRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	entry, err := h.service.Create(callerID, callerRole, req)
	if err != nil {
		return workloadError(err)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Workload entry added successfully",
		"data":    entry,
	})
	return nil
}

// Update edits an entry under the admin-or-owner rule.
func (h *WorkloadHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r)
	if appErr != nil {
		return appErr
	}
	callerID, callerRole := CallerFromContext(r.Context())

	var req model.UpdateWorkloadRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	entry, err := h.service.Update(callerID, callerRole, id, req)
	if err != nil {
		return workloadError(err)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Workload entry updated successfully",
		"data":    entry,
	})
	return nil
}

// Delete removes an entry under the admin-or-owner rule.
func (h *WorkloadHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r)
	if appErr != nil {
		return appErr
	}
	callerID, callerRole := CallerFromContext(r.Context())

	if err := h.service.Delete(callerID, callerRole, id); err != nil {
		return workloadError(err)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Workload entry deleted successfully",
	})
	return nil
}

func workloadError(err error) *common.AppError {
	switch err {
	case service.ErrPermissionDenied:
		return common.NewAppError(http.StatusForbidden, "Access denied", nil)
	case service.ErrEntryNotFound:
		return common.NewAppError(http.StatusNotFound, "Workload entry not found", nil)
	case service.ErrEmployeeNotFound:
		return common.NewAppError(http.StatusBadRequest, "Employee not found", nil)
	default:
		return common.NewInternalError(err)
	}
}
