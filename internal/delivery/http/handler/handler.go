package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"clinic-records-api/pkg/apperror"
	"clinic-records-api/pkg/messages"
	"clinic-records-api/pkg/response"

	"github.com/sirupsen/logrus"
)

// decodeJSON decodes the request body into dst. An empty body leaves dst at
// its zero value so that validation reports the missing fields.
func decodeJSON(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// statusFor maps a client-visible error kind to its HTTP status.
func statusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.Conflict:
		return http.StatusConflict
	case apperror.Validation, apperror.NotFound, apperror.ReferentialIntegrity:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the catalog message of a usecase error, or a
// generic 500 for anything else.
func writeError(w http.ResponseWriter, r *http.Request, log *logrus.Logger, catalog *messages.Catalog, err error) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		status := statusFor(appErr.Kind)
		if status == http.StatusConflict {
			response.Conflict(w, catalog.Get(appErr.Key))
			return
		}
		response.Error(w, status, catalog.Get(appErr.Key), nil)
		return
	}

	log.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}).Errorf("Unhandled error: %+v", err)
	response.InternalServerError(w, catalog.Get(messages.InternalError))
}
