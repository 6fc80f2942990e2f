package memory

import (
	"context"
	"time"

	"techmart-be/internal/repository/contract"
	"techmart-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps sessions in process memory. Entries expire after
// ttl without a Save; expired items are purged every 10 minutes.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) contract.SessionRepository {
	return &SessionRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

// Save stores a copy so later mutations by the caller are not visible to
// other requests until the next Save.
func (r *SessionRepository) Save(ctx context.Context, session *store.Session) error {
	r.cache.Set(session.ID, session.Clone(), cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*store.Session, bool, error) {
	if x, found := r.cache.Get(id); found {
		return x.(*store.Session).Clone(), true, nil
	}
	return nil, false, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	r.cache.Delete(id)
	return nil
}

// Count skips items that expired but were not purged yet.
func (r *SessionRepository) Count(ctx context.Context) (int, error) {
	return len(r.cache.Items()), nil
}
