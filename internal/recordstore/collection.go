package recordstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Entity é o contrato mínimo de um documento tipado.
type Entity interface {
	GetID() string
	SetID(id string)
	Touch(t time.Time)
}

// Collection é a fachada tipada sobre o Store.
// Usa-se com o tipo valor: NewCollection[models.Client](store, recordstore.Clients).
type Collection[T any, PT interface {
	Entity
	*T
}] struct {
	store Store
	name  string
}

func NewCollection[T any, PT interface {
	Entity
	*T
}](store Store, name string) *Collection[T, PT] {
	return &Collection[T, PT]{store: store, name: name}
}

func (c *Collection[T, PT]) List(ctx context.Context) ([]PT, error) {
	docs, err := c.store.List(ctx, c.name)
	if err != nil {
		return nil, err
	}

	items := make([]PT, 0, len(docs))
	for _, doc := range docs {
		item := PT(new(T))
		if err := json.Unmarshal(doc.Data, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Get devolve nil (sem erro) quando o documento não existe.
func (c *Collection[T, PT]) Get(ctx context.Context, id string) (PT, error) {
	doc, err := c.store.Get(ctx, c.name, id)
	if err != nil || doc == nil {
		return nil, err
	}

	item := PT(new(T))
	if err := json.Unmarshal(doc.Data, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Save faz upsert. ID vazio ganha um uuid novo; updated_at é carimbado.
// Devolve o item persistido, já com os campos atribuídos pelo store.
func (c *Collection[T, PT]) Save(ctx context.Context, item PT) (PT, error) {
	if item.GetID() == "" {
		item.SetID(uuid.NewString())
	}
	now := time.Now()
	item.Touch(now)

	data, err := json.Marshal(item)
	if err != nil {
		return nil, err
	}

	if err := c.store.Put(ctx, c.name, Document{
		ID:        item.GetID(),
		Data:      data,
		UpdatedAt: now,
	}); err != nil {
		return nil, err
	}

	return item, nil
}

func (c *Collection[T, PT]) Delete(ctx context.Context, id string) error {
	return c.store.Delete(ctx, c.name, id)
}
