package middleware

import (
	"net/http"
	"runtime/debug"

	"clinic-records-api/pkg/messages"
	"clinic-records-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type RecoveryMiddleware struct {
	log      *logrus.Logger
	messages *messages.Catalog
}

func NewRecoveryMiddleware(log *logrus.Logger, catalog *messages.Catalog) *RecoveryMiddleware {
	return &RecoveryMiddleware{log: log, messages: catalog}
}

// Handle turns a panic in next into a JSON 500 response.
func (m *RecoveryMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				requestID, _ := GetRequestIDFromContext(r.Context())
				m.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"method":     r.Method,
					"path":       r.URL.Path,
					"panic":      rec,
				}).Errorf("Recovered from panic: %s", debug.Stack())
				response.InternalServerError(w, m.messages.Get(messages.InternalError))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
