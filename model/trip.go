package model

import "time"

// BusinessTrip records an official travel assignment for an employee.
type BusinessTrip struct {
	ID            int       `json:"id"`
	UserID        int       `json:"user_id"`
	EmployeeName  string    `json:"employee_name"`
	Destination   string    `json:"destination"`
	DepartureDate time.Time `json:"departure_date"`
	ReturnDate    time.Time `json:"return_date"`
	Status        string    `json:"status"`
	TransportMode string    `json:"transport_mode"`
	Cost          *float64  `json:"cost"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// TripFilter narrows and pages the business trip table.
type TripFilter struct {
	Search    string
	Status    string
	Transport string
	Name      string
	Page      int
	Limit     int
}
