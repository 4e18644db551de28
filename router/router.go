package router

import (
	"net/http"
	"worktrack-api/common"
	"worktrack-api/handler"
	"worktrack-api/service"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "worktrack-api/docs"
)

// NewRouter wires every route behind the shared verifier and authorizer
// middleware. Admin-only routes carry AdminMiddleware; routes whose ownership
// is only known after a fetch enforce admin-or-owner inside the service.
func NewRouter(
	authService *service.AuthService,
	authHandler *handler.AuthHandler,
	employeeHandler *handler.EmployeeHandler,
	workloadHandler *handler.WorkloadHandler,
	tripHandler *handler.TripHandler,
) http.Handler {
	mux := http.NewServeMux()

	auth := handler.AuthMiddleware(authService)
	protected := func(h func(http.ResponseWriter, *http.Request) *common.AppError) http.Handler {
		return auth(handler.ErrorHandlingMiddleware(h))
	}
	adminOnly := func(h func(http.ResponseWriter, *http.Request) *common.AppError) http.Handler {
		return auth(handler.AdminMiddleware(handler.ErrorHandlingMiddleware(h)))
	}

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	mux.Handle("POST /api/auth/login", handler.ErrorHandlingMiddleware(authHandler.Login))
	mux.Handle("POST /api/auth/logout", protected(authHandler.Logout))

	mux.Handle("GET /api/employees", adminOnly(employeeHandler.List))
	mux.Handle("POST /api/employees", adminOnly(employeeHandler.Create))
	mux.Handle("GET /api/employees/profile", protected(employeeHandler.Profile))
	mux.Handle("GET /api/employees/{id}", protected(employeeHandler.Get))
	mux.Handle("PUT /api/employees/{id}", protected(employeeHandler.Update))
	mux.Handle("DELETE /api/employees/{id}", adminOnly(employeeHandler.Deactivate))

	mux.Handle("GET /api/dashboard", protected(workloadHandler.Dashboard))

	mux.Handle("GET /api/workloads/options", protected(workloadHandler.Options))
	mux.Handle("GET /api/workloads", protected(workloadHandler.Table))
	mux.Handle("POST /api/workloads", protected(workloadHandler.Create))
	mux.Handle("PUT /api/workloads/{id}", protected(workloadHandler.Update))
	mux.Handle("DELETE /api/workloads/{id}", protected(workloadHandler.Delete))

	mux.Handle("GET /api/trips/options", protected(tripHandler.Options))
	mux.Handle("GET /api/trips", protected(tripHandler.Table))
	mux.Handle("POST /api/trips", protected(tripHandler.Create))
	mux.Handle("PUT /api/trips/{id}", protected(tripHandler.Update))
	mux.Handle("DELETE /api/trips/{id}", protected(tripHandler.Delete))

	return mux
}
