package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// document is how a Document is stored in Postgres.
type document struct {
	Collection string `gorm:"primaryKey"`
	ID         string `gorm:"primaryKey"`
	Data       string `gorm:"type:jsonb;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli"`
}

func (document) TableName() string { return "documents" }

func (d document) toDocument() (Document, error) {
	doc := Document{Collection: d.Collection, ID: d.ID, UpdatedAt: fromMillis(d.UpdatedAt)}
	if err := json.Unmarshal([]byte(d.Data), &doc.Data); err != nil {
		return Document{}, fmt.Errorf("decode document %s: %w", d.ID, err)
	}

	return doc, nil
}

// Postgres is a Store backed by a Postgres database through GORM.
type Postgres struct {
	db *gorm.DB
}

// OpenPostgres connects to the Postgres database at dsn,
// a URL or key-value connection string, and migrates the documents table.
func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	// https://gorm.io/docs/logger.html
	c := logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), c),
		NowFunc: func() time.Time {
			return time.Now().Truncate(time.Microsecond)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres db: %w", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&document{}); err != nil {
		return nil, fmt.Errorf("migrate documents table: %w", err)
	}

	return &Postgres{db: db}, nil
}

// Close closes the underlying connection pool.
func (p *Postgres) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Get returns one Document, or ErrNotFound.
func (p *Postgres) Get(ctx context.Context, collection, id string) (Document, error) {
	if err := check(collection, id); err != nil {
		return Document{}, err
	}

	var d document
	err := p.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		First(&d).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Document{}, fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
	}

	if err != nil {
		return Document{}, fmt.Errorf("get document: %w", err)
	}

	return d.toDocument()
}

// List returns the Documents in the collection ordered by ID.
func (p *Postgres) List(ctx context.Context, collection string) ([]Document, error) {
	if err := check(collection, "*"); err != nil {
		return nil, err
	}

	var rows []document
	err := p.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("id").
		Find(&rows).
		Error
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	docs := make([]Document, 0, len(rows))
	for _, d := range rows {
		doc, err := d.toDocument()
		if err != nil {
			return nil, err
		}

		docs = append(docs, doc)
	}

	return docs, nil
}

// Put inserts or replaces a Document.
func (p *Postgres) Put(ctx context.Context, doc Document) error {
	if err := check(doc.Collection, doc.ID); err != nil {
		return err
	}

	data, err := json.Marshal(doc.Data)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	d := document{Collection: doc.Collection, ID: doc.ID, Data: string(data)}
	if !doc.UpdatedAt.IsZero() {
		d.UpdatedAt = toMillis(doc.UpdatedAt)
	}

	err = p.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&d).
		Error
	if err != nil {
		return fmt.Errorf("put document: %w", err)
	}

	return nil
}

// Delete removes a Document, or returns ErrNotFound.
func (p *Postgres) Delete(ctx context.Context, collection, id string) error {
	if err := check(collection, id); err != nil {
		return err
	}

	res := p.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Delete(&document{})
	if res.Error != nil {
		return fmt.Errorf("delete document: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
	}

	return nil
}
