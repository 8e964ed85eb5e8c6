package http

import (
	"net/http"

	"clinic-records-api/internal/delivery/http/handler"
	"clinic-records-api/internal/delivery/http/middleware"
	"clinic-records-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	userHandler        *handler.UserHandler
	labTestHandler     *handler.LabTestHandler
	healthHandler      *handler.HealthHandler
	corsMiddleware     *middleware.CORSMiddleware
	recoveryMiddleware *middleware.RecoveryMiddleware
}

func NewRouter(
	userHandler *handler.UserHandler,
	labTestHandler *handler.LabTestHandler,
	healthHandler *handler.HealthHandler,
	corsMiddleware *middleware.CORSMiddleware,
	recoveryMiddleware *middleware.RecoveryMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		userHandler:        userHandler,
		labTestHandler:     labTestHandler,
		healthHandler:      healthHandler,
		corsMiddleware:     corsMiddleware,
		recoveryMiddleware: recoveryMiddleware,
	}
}

// Setup registers every route and returns the router wrapped in the
// request id, recovery and CORS middleware.
func (r *Router) Setup() http.Handler {
	// Full paths on the root router; on a subrouter a method mismatch
	// ends up in NotFoundHandler.
	const api = "/api/v1"

	// Health check
	r.router.HandleFunc(api+"/health", r.healthHandler.Check).Methods(http.MethodGet)

	// Users; PATCH and DELETE carry the id in the body
	r.router.HandleFunc(api+"/users", r.userHandler.ListUsers).Methods(http.MethodGet)
	r.router.HandleFunc(api+"/users", r.userHandler.CreateUser).Methods(http.MethodPost)
	r.router.HandleFunc(api+"/users", r.userHandler.ReplaceUser).Methods(http.MethodPatch)
	r.router.HandleFunc(api+"/users", r.userHandler.DeleteUser).Methods(http.MethodDelete)

	// Tests
	r.router.HandleFunc(api+"/tests", r.labTestHandler.ListLabTests).Methods(http.MethodGet)
	r.router.HandleFunc(api+"/tests", r.labTestHandler.CreateLabTest).Methods(http.MethodPost)
	r.router.HandleFunc(api+"/tests", r.labTestHandler.ReplaceLabTest).Methods(http.MethodPatch)
	r.router.HandleFunc(api+"/tests", r.labTestHandler.DeleteLabTest).Methods(http.MethodDelete)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.Error(w, http.StatusNotFound, http.StatusText(http.StatusNotFound), nil)
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed), nil)
	})

	// CORS wraps the whole router so preflight requests never reach route matching
	var h http.Handler = r.router
	h = r.corsMiddleware.Handle(h)
	h = r.recoveryMiddleware.Handle(h)
	h = middleware.RequestID(h)
	return h
}
