package review

import (
	"context"
	"time"

	"github.com/example/lingodrill/internal/models"
	"github.com/example/lingodrill/internal/repository"
)

// DefaultDueLimit caps how many due words one practice session reviews.
const DefaultDueLimit = 5

// DueSelector picks the words whose scheduled review time has passed. It
// adds no policy of its own beyond "due now, registration order".
type DueSelector struct {
	store repository.WordProgressRepository
	now   func() time.Time
}

// NewDueSelector creates a DueSelector backed by store. now may be nil, in
// which case time.Now is used.
func NewDueSelector(store repository.WordProgressRepository, now func() time.Time) *DueSelector {
	if now == nil {
		now = time.Now
	}
	return &DueSelector{store: store, now: now}
}

// GetDue returns up to limit words due for review in language. limit <= 0
// falls back to DefaultDueLimit.
func (s *DueSelector) GetDue(ctx context.Context, language string, limit int) ([]models.WordProgress, error) {
	if limit <= 0 {
		limit = DefaultDueLimit
	}
	return s.store.ListDue(ctx, language, s.now(), limit)
}
