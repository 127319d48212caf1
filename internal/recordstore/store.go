// Package recordstore é a camada de persistência genérica do estúdio:
// coleções nomeadas de documentos JSON, com backend plugável
// (postgres, redis ou memória). Trocar de backend é decisão de wiring,
// nunca reescrita de chamadas.
package recordstore

import (
	"context"
	"time"
)

// Coleções usadas pela aplicação.
const (
	Appointments = "appointments"
	Clients      = "clients"
	Users        = "users"
	AuditLogs    = "audit_logs"
)

type Document struct {
	ID        string
	Data      []byte
	UpdatedAt time.Time
}

type Store interface {
	// List devolve todos os documentos da coleção; vazia => slice vazio, nunca nil.
	List(ctx context.Context, collection string) ([]Document, error)

	// Get devolve nil (sem erro) quando o documento não existe.
	Get(ctx context.Context, collection, id string) (*Document, error)

	// Put faz upsert pelo ID.
	Put(ctx context.Context, collection string, doc Document) error

	// Delete é idempotente: remover ID inexistente não é erro.
	Delete(ctx context.Context, collection, id string) error
}
