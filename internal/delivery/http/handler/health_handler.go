package handler

import (
	"context"
	"net/http"
	"time"

	"clinic-records-api/pkg/messages"
	"clinic-records-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type HealthHandler struct {
	log      *logrus.Logger
	ping     func(ctx context.Context) error
	messages *messages.Catalog
}

func NewHealthHandler(log *logrus.Logger, ping func(ctx context.Context) error, catalog *messages.Catalog) *HealthHandler {
	return &HealthHandler{log: log, ping: ping, messages: catalog}
}

// Check reports whether the store answers a ping within two seconds.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.log.Warnf("Health check failed: %+v", err)
		response.ServiceUnavailable(w, h.messages.Get(messages.HealthStoreDown))
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
