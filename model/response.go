// file: model/response.go

package model

// LoginResponse is the contract of POST /api/auth/login. On credential
// mismatch Success is false with a generic Message; Token and User are only
// set on success.
type LoginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token,omitempty"`
	User    *PublicUser `json:"user,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Pagination describes one page of a table response.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}
