package contract

import (
	"context"

	"techmart-be/pkg/store"
)

type SessionRepository interface {
	Save(ctx context.Context, session *store.Session) error
	Get(ctx context.Context, id string) (*store.Session, bool, error)
	Delete(ctx context.Context, id string) error
	// Count reports sessions that have not expired.
	Count(ctx context.Context) (int, error)
}
