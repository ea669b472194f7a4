package campaign

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/CategoryLeaders/productlobby-sub011/pkg/cache"
	"github.com/CategoryLeaders/productlobby-sub011/pkg/logger"
)

const (
	entity = "campaign"

	DefaultStatsTTL    = 30 * time.Second
	DefaultCommentsTTL = 10 * time.Second
	MaxCommentsLimit   = 100
)

// Service reads campaign aggregates cache-aside. Concurrent misses on one key
// may both hit the repository; the last Set wins.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger

	statsTTL    time.Duration
	commentsTTL time.Duration
}

type ServiceOption func(*Service)

func WithStatsTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) {
		if ttl > 0 {
			s.statsTTL = ttl
		}
	}
}

func WithCommentsTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) {
		if ttl > 0 {
			s.commentsTTL = ttl
		}
	}
}

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func NewService(repo Repository, c Cache, opts ...ServiceOption) *Service {
	s := &Service{
		repo:        repo,
		cache:       c,
		log:         logger.Discard(),
		statsTTL:    DefaultStatsTTL,
		commentsTTL: DefaultCommentsTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("campaign"))
	return s
}

// StatsKey is the cache key of a campaign's aggregate stats.
func StatsKey(id int64) string {
	return cache.Key(entity, id, "stats")
}

// CommentsKey is the cache key of a campaign's recent comments page.
func CommentsKey(id int64, limit int) string {
	return cache.Key(entity, id, "comments", limit)
}

// Stats returns the campaign's aggregates, from cache when possible.
// Missing campaigns are not cached.
func (s *Service) Stats(ctx context.Context, id int64) (Stats, error) {
	if id <= 0 {
		return Stats{}, ErrInvalidID
	}

	key := StatsKey(id)
	if v, ok := s.cache.Get(key); ok {
		if stats, ok := v.(Stats); ok {
			s.log.DebugContext(ctx, "campaign stats served", logger.CampaignID(id), logger.CacheKey(key), logger.Hit(true))
			return stats, nil
		}
	}

	stats, err := s.repo.CampaignStats(ctx, id)
	if err != nil {
		return Stats{}, err
	}
	s.cache.Set(key, stats, s.statsTTL)
	s.log.DebugContext(ctx, "campaign stats served", logger.CampaignID(id), logger.CacheKey(key), logger.Hit(false))
	return stats, nil
}

// RecentComments returns up to limit of the newest comments, from cache when
// possible. limit is clamped to [1, MaxCommentsLimit].
func (s *Service) RecentComments(ctx context.Context, id int64, limit int) ([]Comment, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	limit = min(max(limit, 1), MaxCommentsLimit)

	key := CommentsKey(id, limit)
	if v, ok := s.cache.Get(key); ok {
		if comments, ok := v.([]Comment); ok {
			s.log.DebugContext(ctx, "campaign comments served", logger.CampaignID(id), logger.CacheKey(key), logger.Hit(true))
			return slices.Clone(comments), nil
		}
	}

	comments, err := s.repo.RecentComments(ctx, id, limit)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, comments, s.commentsTTL)
	s.log.DebugContext(ctx, "campaign comments served", logger.CampaignID(id), logger.CacheKey(key), logger.Hit(false))
	return slices.Clone(comments), nil
}

// Invalidate drops every cached value derived from the campaign and returns
// how many entries were removed. Call it after the campaign or any of its
// lobbies, pledges or comments change.
func (s *Service) Invalidate(ctx context.Context, id int64) (int, error) {
	if id <= 0 {
		return 0, ErrInvalidID
	}
	prefix := cache.Prefix(entity, id)
	n := s.cache.InvalidatePrefix(prefix)
	s.log.InfoContext(ctx, "campaign cache invalidated", logger.CampaignID(id), logger.Prefix(prefix), logger.Count(n))
	return n, nil
}
