package common

import (
	"encoding/json"
	"net/http"
	"worktrack-api/logger"

	"github.com/sirupsen/logrus"
)

// AppError is the uniform error envelope written to clients. Code picks the
// HTTP status, Message is the public text, Err carries the internal cause and
// is only ever logged.
type AppError struct {
	Code    int    `json:"-"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Success: false,
		Message: message,
		Err:     err,
	}
}

// NewInternalError hides the underlying cause behind a generic message.
func NewInternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "Internal server error", err)
}

func (e *AppError) Send(w http.ResponseWriter) {
	if e.Err != nil {
		logger.Log.WithFields(logrus.Fields{
			"status_code":    e.Code,
			"internal_error": e.Err.Error(),
		}).Error(e.Message)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Code)
	json.NewEncoder(w).Encode(e)
}
