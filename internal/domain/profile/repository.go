package profile

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (*Profile, error)
	// Insert creates the profile if it does not exist yet and leaves an
	// existing row untouched (the role must never be overwritten).
	Insert(ctx context.Context, profile *Profile) error
}
