package localdb

import (
	"context"

	"github.com/piket-xe8/piket-backend-go/internal/domain/user"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

// NewUserRepository creates a new admin account repository
func NewUserRepository(db *database.DB) user.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*user.Admin, error) {
	var found *user.Admin
	err := r.db.View(func(doc *database.Document) error {
		for i := range doc.Admins {
			if doc.Admins[i].Username == username {
				a := doc.Admins[i]
				found = &a
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, user.ErrAdminNotFound
	}
	return found, nil
}

func (r *userRepository) List(ctx context.Context) ([]user.Admin, error) {
	var admins []user.Admin
	err := r.db.View(func(doc *database.Document) error {
		admins = append([]user.Admin{}, doc.Admins...)
		return nil
	})
	return admins, err
}
