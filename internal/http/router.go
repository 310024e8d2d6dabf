package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"outpass-backend/internal/handlers"
	"outpass-backend/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	studentHandler *handlers.StudentHandler,
	homeVisitHandler *handlers.HomeVisitHandler,
	outingHandler *handlers.OutingHandler,
	notificationLogHandler *handlers.NotificationLogHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - Authentication
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	// Public API routes - Home visits. The submission form and the warden
	// dashboard hit these without a token, matching the deployed frontend.
	r.HandleFunc("/api/home-visits", homeVisitHandler.CreateHomeVisit).Methods("POST")
	r.HandleFunc("/api/home-visits", homeVisitHandler.ListHomeVisits).Methods("GET")
	r.HandleFunc("/api/home-visits/{id}", homeVisitHandler.DeleteHomeVisit).Methods("DELETE")
	r.HandleFunc("/api/home-visits/{id}/mark-entered", homeVisitHandler.MarkEntered).Methods("PUT")
	r.HandleFunc("/api/home-visits/{id}/slip", homeVisitHandler.DownloadSlip).Methods("GET")

	// Public API routes - Outings. No delete route for this variant.
	r.HandleFunc("/api/outings", outingHandler.CreateOuting).Methods("POST")
	r.HandleFunc("/api/outings", outingHandler.ListOutings).Methods("GET")
	r.HandleFunc("/api/outings/{id}/mark-entered", outingHandler.MarkEntered).Methods("PUT")
	r.HandleFunc("/api/outings/{id}/slip", outingHandler.DownloadSlip).Methods("GET")

	// Protected API routes - Student directory (admin only)
	studentsAPI := r.PathPrefix("/api/students").Subrouter()
	studentsAPI.Use(authMiddleware.Authenticate)
	studentsAPI.HandleFunc("", studentHandler.RegisterStudent).Methods("POST")
	studentsAPI.HandleFunc("", studentHandler.ListStudents).Methods("GET")

	// Protected API routes - Notification log (admin only)
	notificationsAPI := r.PathPrefix("/api/notifications").Subrouter()
	notificationsAPI.Use(authMiddleware.Authenticate)
	notificationsAPI.HandleFunc("", notificationLogHandler.ListNotifications).Methods("GET")

	// Health endpoints (no auth required - for probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
