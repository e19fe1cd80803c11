// Package audit records who did what during a session.
package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/mrlokans/lending-library/internal/entities"
	"github.com/mrlokans/lending-library/internal/logger"
)

// Store is the persistence the service writes through.
type Store interface {
	LogEvent(ctx context.Context, event *entities.AuditEvent) error
	GetEvents(ctx context.Context, username string, limit, offset int) ([]entities.AuditEvent, int64, error)
	GetEventsByType(ctx context.Context, eventType entities.AuditEventType, limit int) ([]entities.AuditEvent, error)
	DeleteOldEvents(ctx context.Context, olderThan time.Time) (int64, error)
}

// Service provides high-level audit logging functionality. Recording never
// fails the caller's operation: write errors are logged and dropped.
type Service struct {
	repo      Store
	log       *slog.Logger
	enabled   bool
	sessionID string
}

// NewService creates a new audit service. Every event it records carries the
// same session id.
func NewService(repo Store, log *slog.Logger, enabled bool) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		repo:      repo,
		log:       logger.WithComponent(log, "audit"),
		enabled:   enabled,
		sessionID: uuid.NewString(),
	}
}

func (s *Service) SessionID() string {
	if s == nil {
		return ""
	}
	return s.sessionID
}

func (s *Service) Enabled() bool {
	return s != nil && s.enabled
}

// Log records a generic audit event.
func (s *Service) Log(ctx context.Context, event *entities.AuditEvent) error {
	if !s.Enabled() {
		return nil
	}
	if event.SessionID == "" {
		event.SessionID = s.sessionID
	}
	return s.repo.LogEvent(ctx, event)
}

func (s *Service) record(ctx context.Context, event *entities.AuditEvent) {
	if err := s.Log(ctx, event); err != nil {
		s.log.Warn("failed to log audit event",
			slog.String("action", event.Action),
			logger.Err(err))
	}
}

// LogAuth records a login or logout.
func (s *Service) LogAuth(ctx context.Context, username, action string, success bool) {
	event := &entities.AuditEvent{
		Username:   username,
		EventType:  entities.AuditEventAuth,
		Action:     action,
		EntityType: "account",
		Status:     entities.AuditStatusSuccess,
	}
	if !success {
		event.Status = entities.AuditStatusFailed
	}
	s.record(ctx, event)
}

// LogRegistration records an account being created by actor. The actor is
// the new user for self registration.
func (s *Service) LogRegistration(ctx context.Context, actor, username string, role entities.Role, err error) {
	event := &entities.AuditEvent{
		Username:    actor,
		EventType:   entities.AuditEventRegistration,
		Action:      string(role) + "_register",
		Description: "Registered " + string(role) + ": " + username,
		EntityType:  "account",
		Status:      entities.AuditStatusSuccess,
	}
	withError(event, err)
	s.record(ctx, event)
}

// LogCatalog records a change to the book catalog.
func (s *Service) LogCatalog(ctx context.Context, username, action, description string, bookID uint, err error) {
	event := &entities.AuditEvent{
		Username:    username,
		EventType:   entities.AuditEventCatalog,
		Action:      action,
		Description: truncate(description, 500),
		EntityType:  "book",
		Status:      entities.AuditStatusSuccess,
	}
	if bookID != 0 {
		event.EntityID = &bookID
	}
	withError(event, err)
	s.record(ctx, event)
}

// LogCheckout records a rental or a subscription attempt. Metadata holds
// the amounts and payment method.
func (s *Service) LogCheckout(ctx context.Context, username, action, description string, entityType string, entityID uint, metadata map[string]any, status entities.AuditStatus, err error) {
	event := &entities.AuditEvent{
		Username:    username,
		EventType:   entities.AuditEventCheckout,
		Action:      action,
		Description: truncate(description, 500),
		EntityType:  entityType,
		Status:      status,
	}
	if entityID != 0 {
		event.EntityID = &entityID
	}
	if len(metadata) > 0 {
		if md, e := json.Marshal(metadata); e == nil {
			event.Metadata = datatypes.JSON(md)
		}
	}
	withError(event, err)
	s.record(ctx, event)
}

// GetEvents retrieves the latest events, most recent first.
func (s *Service) GetEvents(ctx context.Context, username string, limit int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(ctx, username, limit, 0)
}

// GetEventsByType retrieves the latest events of one type.
func (s *Service) GetEventsByType(ctx context.Context, eventType entities.AuditEventType, limit int) ([]entities.AuditEvent, error) {
	return s.repo.GetEventsByType(ctx, eventType, limit)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(ctx, cutoff)
}

func withError(event *entities.AuditEvent, err error) {
	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
