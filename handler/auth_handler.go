package handler

import (
	"encoding/json"
	"net/http"
	"worktrack-api/common"
	"worktrack-api/model"
	"worktrack-api/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// @Summary      Authenticate and receive a bearer token
// @Description  Issues a signed token valid for 24 hours. Unknown usernames and wrong passwords produce the same generic failure.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      model.LoginRequest  true  "Login credentials"
// @Success      200          {object}  model.LoginResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	token, user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			// Deliberately a 200 with success=false; the status code must not
			// reveal whether the username exists.
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			json.NewEncoder(w).Encode(model.LoginResponse{
				Success: false,
				Message: "Invalid username or password",
			})
			return nil
		}
		return common.NewInternalError(err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(model.LoginResponse{
		Success: true,
		Token:   token,
		User:    user,
	})
	return nil
}

// Logout godoc
// @Summary      Revoke the presented bearer token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]bool
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	token, ok := r.Context().Value(TokenKey).(string)
	if !ok || token == "" {
		return common.NewAppError(http.StatusUnauthorized, "Access token required", nil)
	}

	if err := h.authService.RevokeToken(token); err != nil {
		return common.NewInternalError(err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
	return nil
}
