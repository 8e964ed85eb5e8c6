package service

import (
	"context"

	"clinic-records-api/internal/delivery/http/middleware"

	"github.com/sirupsen/logrus"
)

const (
	AuditActionUserCreate    = "USER_CREATE"
	AuditActionUserUpdate    = "USER_UPDATE"
	AuditActionUserDelete    = "USER_DELETE"
	AuditActionLabTestCreate = "LAB_TEST_CREATE"
	AuditActionLabTestUpdate = "LAB_TEST_UPDATE"
	AuditActionLabTestDelete = "LAB_TEST_DELETE"
)

// AuditService records every write as a structured log entry. Values passed
// in must already be public views; password hashes never belong here.
type AuditService interface {
	LogCreate(ctx context.Context, action string, entityName string, entityID string, newValue interface{})
	LogUpdate(ctx context.Context, action string, entityName string, entityID string, oldValue, newValue interface{})
	LogDelete(ctx context.Context, action string, entityName string, entityID string, oldValue interface{})
}

type auditService struct {
	log *logrus.Logger
}

func NewAuditService(log *logrus.Logger) AuditService {
	return &auditService{log: log}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, action string, entityName string, entityID string, newValue interface{}) {
	s.entry(ctx, action, entityName, entityID, nil, newValue)
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, action string, entityName string, entityID string, oldValue, newValue interface{}) {
	s.entry(ctx, action, entityName, entityID, oldValue, newValue)
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, action string, entityName string, entityID string, oldValue interface{}) {
	s.entry(ctx, action, entityName, entityID, oldValue, nil)
}

func (s *auditService) entry(ctx context.Context, action, entityName, entityID string, oldValue, newValue interface{}) {
	fields := logrus.Fields{
		"audit":     true,
		"action":    action,
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	}
	if requestID, ok := middleware.GetRequestIDFromContext(ctx); ok {
		fields["request_id"] = requestID
	}
	s.log.WithContext(ctx).WithFields(fields).Info("audit")
}
