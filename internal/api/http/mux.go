package http

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// NewMux creates router for app's http server.
func NewMux(service Service, timeout time.Duration, l logrus.FieldLogger) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)

	rosterHandler := NewRosterHandler(service, l)
	rosterHandler = timeoutMiddleware(rosterHandler)

	m := http.NewServeMux()
	m.HandleFunc("/roster", rosterHandler)

	return m
}
