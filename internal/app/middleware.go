package app

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/kalendu/kalendu/internal/utils"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, clock utils.Clock) {

	// Tag every request with an id and log its duration.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			requestId := uuid.NewString()
			start := clock.Now()

			entry := log.WithFields(log.Fields{
				"request": requestId,
				"method":  req.Method,
				"path":    req.URL.Path,
			})
			entry.Debug("request started")

			w.Header().Set("X-Request-Id", requestId)
			next.ServeHTTP(w, req)

			entry.WithField("duration", clock.Now().Sub(start)).Debug("request finished")
		})
	})
}
