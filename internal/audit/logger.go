package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dommestudio/lash-studio-api/internal/models"
	"github.com/dommestudio/lash-studio-api/internal/recordstore"
)

type Logger struct {
	logs *recordstore.Collection[models.AuditLog, *models.AuditLog]
}

func New(store recordstore.Store) *Logger {
	return &Logger{
		logs: recordstore.NewCollection[models.AuditLog](store, recordstore.AuditLogs),
	}
}

func (l *Logger) Log(
	userID string,
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := &models.AuditLog{
		UserID:    userID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
		CreatedAt: time.Now(),
	}

	_, err := l.logs.Save(context.Background(), entry)
	return err
}

func (l *Logger) List(ctx context.Context) ([]*models.AuditLog, error) {
	return l.logs.List(ctx)
}
