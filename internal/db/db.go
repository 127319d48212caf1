// Package db monta o store de registros conforme o backend configurado.
package db

import (
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dommestudio/lash-studio-api/internal/config"
	"github.com/dommestudio/lash-studio-api/internal/recordstore"
)

// NewStore resolve o backend do record store. Trocar de persistência é
// só uma variável de ambiente; nenhum call site muda.
func NewStore(cfg *config.Config) recordstore.Store {
	switch cfg.StoreBackend {
	case "memory":
		log.Println("record store: memory backend (dados voláteis)")
		return recordstore.NewMemoryStore()

	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		log.Printf("record store: redis backend em %s", cfg.RedisAddr)
		return recordstore.NewRedisStore(rdb)

	default:
		return newGormStore(cfg)
	}
}

func newGormStore(cfg *config.Config) recordstore.Store {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	store := recordstore.NewGormStore(db)
	if err := store.Migrate(); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return store
}
