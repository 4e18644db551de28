package handler

import (
	"net/http"
	"worktrack-api/common"
	"worktrack-api/model"
	"worktrack-api/service"
)

type TripHandler struct {
	service *service.TripService
}

func NewTripHandler(svc *service.TripService) *TripHandler {
	return &TripHandler{service: svc}
}

// Table godoc
// @Summary      Paginated business trip table
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Param        page       query  int     false  "Page number"
// @Param        limit      query  int     false  "Page size"
// @Param        search     query  string  false  "Destination or notes search"
// @Param        status     query  string  false  "Status filter"
// @Param        transport  query  string  false  "Transport mode filter"
// @Param        name       query  string  false  "Employee name filter"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/trips [get]
func (h *TripHandler) Table(w http.ResponseWriter, r *http.Request) *common.AppError {
	q := r.URL.Query()
	filter := model.TripFilter{
		Search:    q.Get("search"),
		Status:    q.Get("status"),
		Transport: q.Get("transport"),
		Name:      q.Get("name"),
		Page:      queryInt(r, "page", 1),
		Limit:     queryInt(r, "limit", 10),
	}

	trips, pagination, err := h.service.ListTable(filter)
	if err != nil {
		return common.NewInternalError(err)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"data":       trips,
		"pagination": pagination,
	})
	return nil
}

// Create records a new business trip.
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	callerID, callerRole := CallerFromContext(r.Context())

	var req model.CreateTripRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	trip, err := h.service.Create(callerID, callerRole, req)
	if err != nil {
		return tripError(err)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Business trip added successfully",
		"data":    trip,
	})
	return nil
}

// Update edits a trip under the admin-or-owner rule.
func (h *TripHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r)
	if appErr != nil {
		return appErr
	}
	callerID, callerRole := CallerFromContext(r.Context())

	var req model.UpdateTripRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	trip, err := h.service.Update(callerID, callerRole, id, req)
	if err != nil {
		return tripError(err)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Business trip updated successfully",
		"data":    trip,
	})
	return nil
}

// Delete removes a trip under the admin-or-owner rule.
func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r)
	if appErr != nil {
		return appErr
	}
	callerID, callerRole := CallerFromContext(r.Context())

	if err := h.service.Delete(callerID, callerRole, id); err != nil {
		return tripError(err)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Business trip deleted successfully",
	})
	return nil
}

func tripError(err error) *common.AppError {
	switch err {
	case service.ErrPermissionDenied:
		return common.NewAppError(http.StatusForbidden, "Access denied", nil)
	case service.ErrTripNotFound:
		return common.NewAppError(http.StatusNotFound, "Business trip not found", nil)
	case service.ErrEmployeeNotFound:
		return common.NewAppError(http.StatusBadRequest, "Employee not found", nil)
	case service.ErrInvalidDateRange:
		return common.NewAppError(http.StatusBadRequest, "Return date must not precede the departure date", nil)
	default:
		return common.NewInternalError(err)
	}
}

// Options returns the employee list for the trip form dropdown.
func (h *TripHandler) Options(w http.ResponseWriter, r *http.Request) *common.AppError {
	users, err := h.service.EmployeeNames()
	if err != nil {
		return common.NewInternalError(err)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"users":   users,
	})
	return nil
}
