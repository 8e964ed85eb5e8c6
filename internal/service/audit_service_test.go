package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"clinic-records-api/internal/delivery/http/middleware"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONLogger(buf *bytes.Buffer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	return log
}

func TestAuditService_LogUpdate(t *testing.T) {
	var buf bytes.Buffer
	svc := NewAuditService(newJSONLogger(&buf))

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-1")
	svc.LogUpdate(ctx, AuditActionUserUpdate, "user", "u1",
		map[string]string{"name": "Ana"},
		map[string]string{"name": "Ana María"},
	)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "audit", entry["msg"])
	assert.Equal(t, AuditActionUserUpdate, entry["action"])
	assert.Equal(t, "user", entry["entity"])
	assert.Equal(t, "u1", entry["entity_id"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, map[string]interface{}{"name": "Ana"}, entry["old_value"])
	assert.Equal(t, map[string]interface{}{"name": "Ana María"}, entry["new_value"])
}

func TestAuditService_LogDeleteWithoutRequestID(t *testing.T) {
	var buf bytes.Buffer
	svc := NewAuditService(newJSONLogger(&buf))

	svc.LogDelete(context.Background(), AuditActionLabTestDelete, "lab_test", "t1", map[string]string{"reference": "R1"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, AuditActionLabTestDelete, entry["action"])
	assert.Nil(t, entry["new_value"])
	assert.NotContains(t, entry, "request_id")
}
