package http

import (
	"net/http"

	"medical-visit-scheduler/internal/delivery/http/handler"
	"medical-visit-scheduler/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	patientHandler    *handler.PatientHandler
	visitHandler      *handler.VisitHandler
	requestMiddleware *middleware.RequestMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	visitHandler *handler.VisitHandler,
	requestMiddleware *middleware.RequestMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		patientHandler:    patientHandler,
		visitHandler:      visitHandler,
		requestMiddleware: requestMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Patients
	api.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet, http.MethodOptions)

	// Visits
	api.HandleFunc("/visits", r.visitHandler.CreateVisit).Methods(http.MethodPost, http.MethodOptions)

	r.router.Use(r.requestMiddleware.Handle)
	r.router.Use(r.requestMiddleware.Recover)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
