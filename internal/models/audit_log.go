package models

import "time"

type AuditLog struct {
	ID string `json:"id"`

	UserID   string `json:"user_id,omitempty"`
	Action   string `json:"action"`
	Entity   string `json:"entity"`
	EntityID string `json:"entity_id,omitempty"`
	Metadata string `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *AuditLog) GetID() string     { return l.ID }
func (l *AuditLog) SetID(id string)   { l.ID = id }
func (l *AuditLog) Touch(t time.Time) { l.UpdatedAt = t }
