package store

import (
	"context"

	"github.com/walavie/walavie-site/pkg/cache"
	"github.com/walavie/walavie-site/pkg/types"
)

const userKeyPrefix = "user:"

// UserStore handles user records stored under the "user:" prefix
type UserStore struct {
	cache cache.Cache
	seq   sequence
}

// newUserStore creates a new UserStore instance
func newUserStore(c cache.Cache) *UserStore {
	return &UserStore{
		cache: c,
	}
}

// Get returns the user with the given id, or nil if there is none
func (s *UserStore) Get(ctx context.Context, id int) (*types.User, error) {
	return getRecord[types.User](ctx, s.cache, recordKey(userKeyPrefix, id), "user")
}

// GetByUsername scans users in id order and returns the first exact match
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*types.User, error) {
	users, err := listRecords(ctx, s.cache, userKeyPrefix, "user", func(u types.User) int { return u.ID })
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Create stores a user under the next id. Usernames are not required to be unique.
func (s *UserStore) Create(ctx context.Context, insert types.InsertUser) (*types.User, error) {
	var user types.User
	_, err := s.seq.next(func(id int) error {
		user = types.User{
			ID:       id,
			Username: insert.Username,
			Password: insert.Password,
		}
		return putRecord(ctx, s.cache, recordKey(userKeyPrefix, id), user, "user")
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
