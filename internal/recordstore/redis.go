package recordstore

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore guarda cada coleção em um hash: campo = id, valor = envelope JSON.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

type redisEnvelope struct {
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: "lash:records:"}
}

func (s *RedisStore) key(collection string) string {
	return s.prefix + collection
}

func (s *RedisStore) List(ctx context.Context, collection string) ([]Document, error) {
	values, err := s.rdb.HGetAll(ctx, s.key(collection)).Result()
	if err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(values))
	for id, raw := range values {
		var env redisEnvelope
		if err := json.Unmarshal([]byte(raw), &env); err != nil {
			return nil, err
		}
		docs = append(docs, Document{ID: id, Data: env.Data, UpdatedAt: env.UpdatedAt})
	}

	// HGetAll não tem ordem estável; alinhamos com o backend postgres.
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].UpdatedAt.Before(docs[j].UpdatedAt)
	})
	return docs, nil
}

func (s *RedisStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	raw, err := s.rdb.HGet(ctx, s.key(collection), id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var env redisEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, err
	}
	return &Document{ID: id, Data: env.Data, UpdatedAt: env.UpdatedAt}, nil
}

func (s *RedisStore) Put(ctx context.Context, collection string, doc Document) error {
	raw, err := json.Marshal(redisEnvelope{
		Data:      doc.Data,
		UpdatedAt: doc.UpdatedAt,
	})
	if err != nil {
		return err
	}
	return s.rdb.HSet(ctx, s.key(collection), doc.ID, raw).Err()
}

func (s *RedisStore) Delete(ctx context.Context, collection, id string) error {
	return s.rdb.HDel(ctx, s.key(collection), id).Err()
}
