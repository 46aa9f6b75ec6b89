// Package docstore persists the JSON documents resources serve, grouped by collection.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xy-planning-network/rest"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var ErrNotFound = fmt.Errorf("document %w", rest.ErrNotExist)

// A Document is a JSON object stored under a collection and ID.
type Document struct {
	Collection string         `json:"-"`
	ID         string         `json:"id"`
	Data       map[string]any `json:"data"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// A Store reads and writes Documents.
type Store interface {
	Get(ctx context.Context, collection, id string) (Document, error)
	List(ctx context.Context, collection string) ([]Document, error)
	Put(ctx context.Context, doc Document) error
	Delete(ctx context.Context, collection, id string) error
	Close() error
}

// Open connects to the Store driver names, creating the documents table if needed.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverSQLite, "":
		s, err := OpenSQLite(ctx, dsn)
		if err != nil {
			return nil, err
		}

		return s, nil
	case DriverPostgres:
		p, err := OpenPostgres(ctx, dsn)
		if err != nil {
			return nil, err
		}

		return p, nil
	default:
		return nil, fmt.Errorf("%w: unknown docstore driver %q", rest.ErrBadConfig, driver)
	}
}

// check validates the keys shared by every Store method.
func check(collection, id string) error {
	var errs []error
	if strings.TrimSpace(collection) == "" {
		errs = append(errs, errors.New("collection is required"))
	}

	if strings.TrimSpace(id) == "" {
		errs = append(errs, errors.New("id is required"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", rest.ErrMissingData, errors.Join(errs...))
	}

	return nil
}

func toMillis(value time.Time) int64 { return value.UTC().UnixMilli() }

func fromMillis(value int64) time.Time { return time.UnixMilli(value).UTC() }
