// Package campaign serves read-heavy campaign aggregates through the
// process-local cache, falling back to PostgreSQL on a miss.
package campaign

import (
	"context"
	"time"
)

// Stats aggregates a campaign's lobbies, pledges and comments.
type Stats struct {
	CampaignID       int64     `json:"campaign_id"`
	Title            string    `json:"title"`
	LobbyCount       int64     `json:"lobby_count"`
	PledgeCount      int64     `json:"pledge_count"`
	PledgeTotalCents int64     `json:"pledge_total_cents"`
	CommentCount     int64     `json:"comment_count"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Comment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository reads campaign data from the source of truth.
type Repository interface {
	CampaignStats(ctx context.Context, id int64) (Stats, error)
	RecentComments(ctx context.Context, id int64, limit int) ([]Comment, error)
}

// Cache is the subset of *cache.Store[any] the service relies on.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
	InvalidatePrefix(prefix string) int
}
