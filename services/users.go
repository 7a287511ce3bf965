package services

import (
	"context"

	"go-laundry/models"
)

// UserStore is the persistence gateway for accounts. The identity provider
// (JWT issuing, password hashing) lives in the HTTP layer; this interface
// only covers the account records backing it.
type UserStore interface {
	Insert(ctx context.Context, user *models.User) (string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListAll(ctx context.Context) ([]models.User, error)
	SearchByEmailPrefix(ctx context.Context, prefix string) ([]models.User, error)
	Update(ctx context.Context, id string, upd models.UserUpdate) error
}
