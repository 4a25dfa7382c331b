package store

import (
	"context"
	"time"

	"github.com/walavie/walavie-site/pkg/cache"
	"github.com/walavie/walavie-site/pkg/types"
)

const contactKeyPrefix = "contact:"

// ContactStore handles contact form submissions stored under the "contact:" prefix
type ContactStore struct {
	cache cache.Cache
	seq   sequence
	now   func() time.Time
}

func newContactStore(c cache.Cache, now func() time.Time) *ContactStore {
	return &ContactStore{
		cache: c,
		now:   now,
	}
}

func (s *ContactStore) Get(ctx context.Context, id int) (*types.ContactSubmission, error) {
	return getRecord[types.ContactSubmission](ctx, s.cache, recordKey(contactKeyPrefix, id), "contact submission")
}

// GetAll returns all submissions ordered by id, which is creation order.
// The result is never nil.
func (s *ContactStore) GetAll(ctx context.Context) ([]types.ContactSubmission, error) {
	return listRecords(ctx, s.cache, contactKeyPrefix, "contact submission",
		func(c types.ContactSubmission) int { return c.ID })
}

func (s *ContactStore) Create(
	ctx context.Context, insert types.InsertContactSubmission,
) (*types.ContactSubmission, error) {
	var submission types.ContactSubmission
	_, err := s.seq.next(func(id int) error {
		submission = types.ContactSubmission{
			ID:        id,
			Name:      insert.Name,
			Email:     insert.Email,
			Message:   insert.Message,
			CreatedAt: s.now().UTC(),
		}
		return putRecord(ctx, s.cache, recordKey(contactKeyPrefix, id), submission, "contact submission")
	})
	if err != nil {
		return nil, err
	}
	return &submission, nil
}
