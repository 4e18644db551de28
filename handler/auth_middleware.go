package handler

import (
	"context"
	"net/http"
	"strings"
	"worktrack-api/common"
	"worktrack-api/model"
	"worktrack-api/service"
)

type contextKey string

const (
	UserIDKey   contextKey = "userID"
	UsernameKey contextKey = "username"
	UserRoleKey contextKey = "userRole"
	TokenKey    contextKey = "token"
)

// AuthMiddleware is the token verifier that guards every protected route.
// The revocation ledger is consulted before the signature is checked, so a
// logged-out token is reported as revoked rather than merely invalid.
func AuthMiddleware(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				common.NewAppError(http.StatusUnauthorized, "Access token required", nil).Send(w)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				common.NewAppError(http.StatusUnauthorized, "Access token required", nil).Send(w)
				return
			}
			tokenString := headerParts[1]

			revoked, err := authService.IsRevoked(tokenString)
			if err != nil {
				common.NewInternalError(err).Send(w)
				return
			}
			if revoked {
				common.NewAppError(http.StatusUnauthorized, "Token has been revoked", nil).Send(w)
				return
			}

			claims, err := authService.VerifyToken(tokenString)
			if err != nil {
				common.NewAppError(http.StatusForbidden, "Invalid or expired token", err).Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, UsernameKey, claims.Username)
			ctx = context.WithValue(ctx, UserRoleKey, claims.Role)
			ctx = context.WithValue(ctx, TokenKey, tokenString)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware restricts a route to administrators. It must run after
// AuthMiddleware.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := r.Context().Value(UserRoleKey).(string)

		if !ok || role != string(model.RoleAdmin) {
			common.NewAppError(http.StatusForbidden, "Access denied. Admin privileges required.", nil).Send(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// CallerFromContext extracts the verified identity placed by AuthMiddleware.
func CallerFromContext(ctx context.Context) (userID int, role string) {
	userID, _ = ctx.Value(UserIDKey).(int)
	role, _ = ctx.Value(UserRoleKey).(string)
	return userID, role
}
