// Package metrics exposes the server's prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "authgate_registrations_total",
		Help: "Number of successfully registered users.",
	})

	LoginsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "authgate_logins_total",
		Help: "Number of successful logins.",
	})

	RevocationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "authgate_revocations_total",
		Help: "Number of access tokens revoked by logout.",
	})
)

// Handler returns the HTTP handler serving the prometheus text exposition.
func Handler() http.Handler {
	return promhttp.Handler()
}
