package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Command interpreter
	r.HandleFunc("/api/command", deps.CommandHandler.Execute).Methods("POST")

	// Calendars and events (read-only views over the server session)
	r.HandleFunc("/api/calendar", deps.CommandHandler.ListCalendars).Methods("GET")
	r.HandleFunc("/api/event", deps.CommandHandler.ListEvents).Methods("GET")
}
