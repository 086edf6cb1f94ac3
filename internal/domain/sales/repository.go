package sales

import "context"

type Repository interface {
	// List returns all records, newest sale date first. Same-date records are
	// ordered by creation time, newest first.
	List(ctx context.Context) ([]Record, error)
	Insert(ctx context.Context, record *Record) error
	Delete(ctx context.Context, id string) (bool, error)
}
