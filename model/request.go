// file: model/request.go

package model

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateEmployeeRequest defines the payload for adding a new employee.
// Only administrators may use it.
type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	IDNumber string `json:"id_number" validate:"required,max=30"`
	Grade    string `json:"grade" validate:"max=20"`
	Position string `json:"position" validate:"max=100"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=Admin User"`
}

// UpdateEmployeeRequest defines the payload for editing an employee.
// Non-admin callers may only change their own name and password; the
// remaining fields are ignored for them.
type UpdateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	IDNumber string `json:"id_number" validate:"max=30"`
	Grade    string `json:"grade" validate:"max=20"`
	Position string `json:"position" validate:"max=100"`
	Username string `json:"username" validate:"omitempty,min=3,max=50"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=Admin User"`
	IsActive *bool  `json:"is_active"`
}

// CreateWorkloadRequest defines the payload for recording a workload entry.
// EmployeeName is only honored for admin callers; everyone else creates
// entries for themselves.
type CreateWorkloadRequest struct {
	EmployeeName string `json:"name"`
	Category     string `json:"category" validate:"required,max=50"`
	Description  string `json:"description" validate:"required"`
	Status       string `json:"status" validate:"required,max=30"`
	ReceivedDate string `json:"received_date" validate:"required,datetime=2006-01-02"`
	Division     string `json:"division" validate:"max=50"`
}

// UpdateWorkloadRequest defines the payload for editing a workload entry.
type UpdateWorkloadRequest struct {
	Category     string `json:"category" validate:"required,max=50"`
	Description  string `json:"description" validate:"required"`
	Status       string `json:"status" validate:"required,max=30"`
	ReceivedDate string `json:"received_date" validate:"required,datetime=2006-01-02"`
	Division     string `json:"division" validate:"max=50"`
}

// CreateTripRequest defines the payload for recording a business trip.
type CreateTripRequest struct {
	EmployeeName  string   `json:"name"`
	Destination   string   `json:"destination" validate:"required,max=200"`
	DepartureDate string   `json:"departure_date" validate:"required,datetime=2006-01-02"`
	ReturnDate    string   `json:"return_date" validate:"required,datetime=2006-01-02"`
	Status        string   `json:"status" validate:"required,max=30"`
	TransportMode string   `json:"transport_mode" validate:"max=50"`
	Cost          *float64 `json:"cost" validate:"omitempty,gte=0"`
	Notes         string   `json:"notes"`
}

// UpdateTripRequest defines the payload for editing a business trip.
type UpdateTripRequest struct {
	Destination   string   `json:"destination" validate:"required,max=200"`
	DepartureDate string   `json:"departure_date" validate:"required,datetime=2006-01-02"`
	ReturnDate    string   `json:"return_date" validate:"required,datetime=2006-01-02"`
	Status        string   `json:"status" validate:"required,max=30"`
	TransportMode string   `json:"transport_mode" validate:"max=50"`
	Cost          *float64 `json:"cost" validate:"omitempty,gte=0"`
	Notes         string   `json:"notes"`
}
