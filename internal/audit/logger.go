package audit

import (
	"context"
	"encoding/json"
	"log"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-orders/internal/models"
)

// Sink persists audit events.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	return l.db.WithContext(ctx).Create(toRecord(ev)).Error
}

func toRecord(ev Event) *models.AuditLog {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	return &models.AuditLog{
		UserID:    ev.UserID,
		UserRole:  ev.UserRole,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		RequestID: ev.RequestID,
		Metadata:  metaJSON,
	}
}

// LogSink writes events to the standard logger. Used when no database is
// configured.
type LogSink struct{}

func (LogSink) Log(_ context.Context, ev Event) error {
	rec := toRecord(ev)
	log.Printf("audit: action=%s entity=%s entity_id=%v user_id=%v role=%s request_id=%s metadata=%s",
		rec.Action, rec.Entity, derefID(rec.EntityID), derefID(rec.UserID), rec.UserRole, rec.RequestID, rec.Metadata)
	return nil
}

func derefID(id *uint) any {
	if id == nil {
		return nil
	}
	return *id
}
