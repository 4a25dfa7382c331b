package store

import (
	"context"
	"fmt"
	"time"

	"github.com/walavie/walavie-site/pkg/cache"
	"github.com/walavie/walavie-site/pkg/types"
)

// MemStorage keeps users and contact submissions in a cache.Cache.
// Each record kind has its own id sequence starting at 1. Id assignment is
// serialized inside the sub-stores, so MemStorage is safe for concurrent use.
type MemStorage struct {
	User    UserStoreInterface
	Contact ContactStoreInterface
}

// New creates a MemStorage on top of c. Id sequences resume after the
// highest id already present in the cache, which only matters for a
// persistent driver such as redis.
func New(ctx context.Context, c cache.Cache) (*MemStorage, error) {
	users := newUserStore(c)
	if err := users.seq.resume(ctx, c, userKeyPrefix); err != nil {
		return nil, fmt.Errorf("failed to resume user id sequence: %w", err)
	}

	contacts := newContactStore(c, time.Now)
	if err := contacts.seq.resume(ctx, c, contactKeyPrefix); err != nil {
		return nil, fmt.Errorf("failed to resume contact id sequence: %w", err)
	}

	return &MemStorage{
		User:    users,
		Contact: contacts,
	}, nil
}

func (s *MemStorage) GetUser(ctx context.Context, id int) (*types.User, error) {
	return s.User.Get(ctx, id)
}

func (s *MemStorage) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	return s.User.GetByUsername(ctx, username)
}

func (s *MemStorage) CreateUser(ctx context.Context, user types.InsertUser) (*types.User, error) {
	return s.User.Create(ctx, user)
}

func (s *MemStorage) GetContactSubmission(ctx context.Context, id int) (*types.ContactSubmission, error) {
	return s.Contact.Get(ctx, id)
}

func (s *MemStorage) GetAllContactSubmissions(ctx context.Context) ([]types.ContactSubmission, error) {
	return s.Contact.GetAll(ctx)
}

func (s *MemStorage) CreateContactSubmission(
	ctx context.Context, submission types.InsertContactSubmission,
) (*types.ContactSubmission, error) {
	return s.Contact.Create(ctx, submission)
}

// Compile-time interface compliance checks
var (
	_ Storage               = (*MemStorage)(nil)
	_ UserStoreInterface    = (*UserStore)(nil)
	_ ContactStoreInterface = (*ContactStore)(nil)
)
