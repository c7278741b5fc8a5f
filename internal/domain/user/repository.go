package user

import "context"

// Repository defines data access for admin accounts.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (*Admin, error)
	List(ctx context.Context) ([]Admin, error)
}
