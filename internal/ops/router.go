// Package ops — служебный HTTP: проверка живости и метрики Prometheus.
package ops

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const pingTimeout = 2 * time.Second

// Pinger проверяется на /health (обычно *sql.DB).
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewRouter регистрирует /health и /metrics.
func NewRouter(db Pinger, metrics http.Handler, log logrus.FieldLogger) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", healthHandler(db, log)).Methods(http.MethodGet)
	r.Handle("/metrics", metrics).Methods(http.MethodGet)
	return r
}

func healthHandler(db Pinger, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		body := map[string]string{"status": "ok", "database": "ok"}
		code := http.StatusOK
		if err := db.PingContext(ctx); err != nil {
			log.WithError(err).Warn("health: database ping failed")
			body["status"] = "degraded"
			body["database"] = "unavailable"
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(body)
	}
}
