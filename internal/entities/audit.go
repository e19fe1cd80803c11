package entities

import (
	"time"

	"gorm.io/datatypes"
)

type AuditEventType string

const (
	AuditEventAuth         AuditEventType = "auth"
	AuditEventRegistration AuditEventType = "registration"
	AuditEventCatalog      AuditEventType = "catalog"
	AuditEventCheckout     AuditEventType = "checkout"
)

type AuditStatus string

const (
	AuditStatusSuccess   AuditStatus = "success"
	AuditStatusFailed    AuditStatus = "failed"
	AuditStatusCancelled AuditStatus = "cancelled"
)

// AuditEvent is one line of the activity trail. It has no foreign keys so
// failed logins for unknown usernames can be recorded too.
type AuditEvent struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Username    string         `gorm:"size:50" json:"username"`
	EventType   AuditEventType `gorm:"size:50" json:"event_type"`
	Action      string         `gorm:"size:100" json:"action"`      // e.g. "login", "book_delete"
	Description string         `gorm:"size:500" json:"description"` // Human-readable summary
	EntityType  string         `gorm:"size:50" json:"entity_type"`  // "book", "plan", "account"
	EntityID    *uint          `json:"entity_id,omitempty"`
	SessionID   string         `gorm:"size:36" json:"session_id"`
	Metadata    datatypes.JSON `json:"metadata,omitempty"`
	Status      AuditStatus    `gorm:"size:20" json:"status"`
	ErrorMsg    string         `gorm:"size:500" json:"error_msg,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (AuditEvent) TableName() string {
	return "audit_events"
}
