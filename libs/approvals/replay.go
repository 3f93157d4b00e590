package approvals

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	errorutils "github.com/nofrixion/moneymoov-go/libs/errors"
)

// ReplayRegistry remembers consumed approval claims for their validity window
// so a claim can only be consumed once
type ReplayRegistry struct {
	cache *gocache.Cache
}

// NewReplayRegistry creates a registry whose entries expire after ttl
func NewReplayRegistry(ttl time.Duration) *ReplayRegistry {
	return &ReplayRegistry{
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Consume marks the key as consumed, a second consumption is a replay
func (rr *ReplayRegistry) Consume(key string) error {
	if err := rr.cache.Add(key, struct{}{}, gocache.DefaultExpiration); err != nil {
		return errorutils.ErrReplayedApprovalClaim
	}
	return nil
}
