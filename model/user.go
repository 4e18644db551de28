package model

import "time"

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// User is an employee record. The password hash never leaves the server.
type User struct {
	ID           int       `json:"id"`
	EmployeeCode string    `json:"employee_code"`
	Name         string    `json:"name"`
	IDNumber     string    `json:"id_number"`
	Grade        string    `json:"grade"`
	Position     string    `json:"position"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is the safe summary returned to clients on login.
type PublicUser struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// EmployeeRef is the minimal identity used for dropdown lists.
type EmployeeRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{ID: u.ID, Name: u.Name, Role: u.Role}
}
