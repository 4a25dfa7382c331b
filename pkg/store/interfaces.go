package store

import (
	"context"

	"github.com/walavie/walavie-site/pkg/types"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks github.com/walavie/walavie-site/pkg/store Storage

// Storage is the record store used by the HTTP handlers.
// Lookups that find nothing return a nil record and a nil error; an error
// always means the backing cache failed.
type Storage interface {
	GetUser(ctx context.Context, id int) (*types.User, error)
	// GetUserByUsername returns the lowest-id user with an exact username match.
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	// CreateUser does not enforce username uniqueness.
	CreateUser(ctx context.Context, user types.InsertUser) (*types.User, error)

	GetContactSubmission(ctx context.Context, id int) (*types.ContactSubmission, error)
	// GetAllContactSubmissions returns every submission in creation order.
	GetAllContactSubmissions(ctx context.Context) ([]types.ContactSubmission, error)
	CreateContactSubmission(ctx context.Context, submission types.InsertContactSubmission) (*types.ContactSubmission, error)
}

// UserStoreInterface defines the user record operations backed by "user:" keys
type UserStoreInterface interface {
	Get(ctx context.Context, id int) (*types.User, error)
	GetByUsername(ctx context.Context, username string) (*types.User, error)
	Create(ctx context.Context, user types.InsertUser) (*types.User, error)
}

// ContactStoreInterface defines the contact submission operations backed by "contact:" keys
type ContactStoreInterface interface {
	Get(ctx context.Context, id int) (*types.ContactSubmission, error)
	GetAll(ctx context.Context) ([]types.ContactSubmission, error)
	Create(ctx context.Context, submission types.InsertContactSubmission) (*types.ContactSubmission, error)
}
