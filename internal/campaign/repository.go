package campaign

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CategoryLeaders/productlobby-sub011/pkg/pg"
)

const statsQuery = `
SELECT c.id, c.title, c.updated_at,
       (SELECT count(*) FROM lobbies l WHERE l.campaign_id = c.id),
       (SELECT count(*) FROM pledges p WHERE p.campaign_id = c.id),
       (SELECT coalesce(sum(p.amount_cents), 0)::bigint FROM pledges p WHERE p.campaign_id = c.id),
       (SELECT count(*) FROM comments m WHERE m.campaign_id = c.id)
FROM campaigns c
WHERE c.id = $1`

const commentsQuery = `
SELECT id, user_id, body, created_at
FROM comments
WHERE campaign_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

// PGRepository implements Repository on a pgx pool.
type PGRepository struct {
	pool *pgxpool.Pool
}

func NewPGRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

func (r *PGRepository) CampaignStats(ctx context.Context, id int64) (Stats, error) {
	var s Stats
	err := r.pool.QueryRow(ctx, statsQuery, id).Scan(
		&s.CampaignID, &s.Title, &s.UpdatedAt,
		&s.LobbyCount, &s.PledgeCount, &s.PledgeTotalCents, &s.CommentCount,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return Stats{}, ErrNotFound
		}
		return Stats{}, fmt.Errorf("query campaign stats: %w", err)
	}
	return s, nil
}

// RecentComments returns ErrNotFound only when the campaign itself is missing;
// a campaign without comments yields an empty slice.
func (r *PGRepository) RecentComments(ctx context.Context, id int64, limit int) ([]Comment, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check campaign: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	rows, err := r.pool.Query(ctx, commentsQuery, id, limit)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	comments, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Comment])
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("scan comments: %w", err)
	}
	if comments == nil {
		comments = []Comment{}
	}
	return comments, nil
}
