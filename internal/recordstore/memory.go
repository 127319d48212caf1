package recordstore

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore é o backend em memória: usado nos testes e válido em runtime
// para rodar o estúdio sem infraestrutura.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string]Document)}
}

func (s *MemoryStore) List(_ context.Context, collection string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]Document, 0, len(s.data[collection]))
	for _, doc := range s.data[collection] {
		docs = append(docs, cloneDoc(doc))
	}
	sort.Slice(docs, func(i, j int) bool {
		if docs[i].UpdatedAt.Equal(docs[j].UpdatedAt) {
			return docs[i].ID < docs[j].ID
		}
		return docs[i].UpdatedAt.Before(docs[j].UpdatedAt)
	})
	return docs, nil
}

func (s *MemoryStore) Get(_ context.Context, collection, id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.data[collection][id]
	if !ok {
		return nil, nil
	}
	out := cloneDoc(doc)
	return &out, nil
}

func (s *MemoryStore) Put(_ context.Context, collection string, doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data[collection] == nil {
		s.data[collection] = make(map[string]Document)
	}
	s.data[collection][doc.ID] = cloneDoc(doc)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data[collection], id)
	return nil
}

func cloneDoc(doc Document) Document {
	data := make([]byte, len(doc.Data))
	copy(data, doc.Data)
	doc.Data = data
	return doc
}
