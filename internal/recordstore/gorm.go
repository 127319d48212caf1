package recordstore

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Row é a linha física: um documento JSONB por registro, chaveado por
// (coleção, id). O formato interno é detalhe deste backend.
type Row struct {
	Collection string    `gorm:"primaryKey;size:64"`
	RecordID   string    `gorm:"primaryKey;size:64"`
	Data       string    `gorm:"type:jsonb;not null"`
	UpdatedAt  time.Time `gorm:"index"`
}

func (Row) TableName() string { return "records" }

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&Row{})
}

func (s *GormStore) List(ctx context.Context, collection string) ([]Document, error) {
	var rows []Row
	if err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("updated_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(rows))
	for _, r := range rows {
		docs = append(docs, Document{
			ID:        r.RecordID,
			Data:      []byte(r.Data),
			UpdatedAt: r.UpdatedAt,
		})
	}
	return docs, nil
}

func (s *GormStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	var row Row
	err := s.db.WithContext(ctx).
		Where("collection = ? AND record_id = ?", collection, id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &Document{
		ID:        row.RecordID,
		Data:      []byte(row.Data),
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (s *GormStore) Put(ctx context.Context, collection string, doc Document) error {
	row := Row{
		Collection: collection,
		RecordID:   doc.ID,
		Data:       string(doc.Data),
		UpdatedAt:  doc.UpdatedAt,
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}, {Name: "record_id"}},
			UpdateAll: true,
		}).
		Create(&row).Error
}

func (s *GormStore) Delete(ctx context.Context, collection, id string) error {
	return s.db.WithContext(ctx).
		Where("collection = ? AND record_id = ?", collection, id).
		Delete(&Row{}).Error
}
