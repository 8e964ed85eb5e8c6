package middleware

import (
	"io"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/sirupsen/logrus"
)

// AccessLog writes one Apache combined log line per request into log at info
// level. The returned closer releases the pipe feeding log and must be
// called on shutdown.
func AccessLog(log *logrus.Logger, next http.Handler) (http.Handler, io.Closer) {
	w := log.WriterLevel(logrus.InfoLevel)
	return handlers.CombinedLoggingHandler(w, next), w
}
