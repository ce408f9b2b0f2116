// Package cache provides the read-through post cache backed by Redis.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"blog/config"
	"blog/internal/domain/constants"
	"blog/internal/domain/entity"
	"blog/internal/domain/lifecycle"
	"blog/internal/domain/service"
	"blog/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultTTL = 30 * time.Second

// invalidated marks a key dropped by a committed mutation. It is never valid JSON.
const invalidated = "!"

// cachedUser is the public part of the author. Credentials and email are never cached.
type cachedUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type cachedMedia struct {
	URL  string           `json:"url"`
	Kind entity.MediaKind `json:"kind"`
}

type cachedPost struct {
	ID        uuid.UUID     `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	AuthorID  uuid.UUID     `json:"author_id"`
	Author    *cachedUser   `json:"author,omitempty"`
	Media     []cachedMedia `json:"media"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type redisPostCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisPostCache wraps an existing client.
func NewRedisPostCache(client redis.UniversalClient, ttl time.Duration) service.PostCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisPostCache{client: client, ttl: ttl}
}

func postKey(id uuid.UUID) string {
	return fmt.Sprintf(constants.CacheKeyPost, id)
}

func (c *redisPostCache) GetPost(ctx context.Context, id uuid.UUID) (*entity.Post, bool, error) {
	raw, err := c.client.Get(ctx, postKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "redis get post")
	}
	if string(raw) == invalidated {
		return nil, false, nil
	}

	var cp cachedPost
	if err := json.Unmarshal(raw, &cp); err != nil {
		return nil, false, errors.Wrap(err, "decode cached post")
	}

	return cp.toEntity(), true, nil
}

func (c *redisPostCache) SetPost(ctx context.Context, post *entity.Post) error {
	raw, err := json.Marshal(fromEntity(post))
	if err != nil {
		return errors.WithStack(err)
	}

	// NX keeps a read that started before a mutation from writing its stale copy over the marker.
	return errors.Wrap(c.client.SetNX(ctx, postKey(post.ID), raw, c.ttl).Err(), "redis set post")
}

func (c *redisPostCache) GetPostList(ctx context.Context) ([]*entity.Post, bool, error) {
	raw, err := c.client.Get(ctx, constants.CacheKeyPostList).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "redis get post list")
	}
	if string(raw) == invalidated {
		return nil, false, nil
	}

	var cps []cachedPost
	if err := json.Unmarshal(raw, &cps); err != nil {
		return nil, false, errors.Wrap(err, "decode cached post list")
	}

	posts := make([]*entity.Post, 0, len(cps))
	for i := range cps {
		posts = append(posts, cps[i].toEntity())
	}

	return posts, true, nil
}

func (c *redisPostCache) SetPostList(ctx context.Context, posts []*entity.Post) error {
	cps := make([]cachedPost, 0, len(posts))
	for _, p := range posts {
		cps = append(cps, fromEntity(p))
	}

	raw, err := json.Marshal(cps)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(c.client.SetNX(ctx, constants.CacheKeyPostList, raw, c.ttl).Err(), "redis set post list")
}

// Invalidate replaces the post and list entries with a marker that lives for one TTL.
// Reads treat the marker as a miss and cannot repopulate the keys until it expires.
func (c *redisPostCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, postKey(id), invalidated, c.ttl)
		pipe.Set(ctx, constants.CacheKeyPostList, invalidated, c.ttl)

		return nil
	})

	return errors.Wrap(err, "redis invalidate post")
}

func fromEntity(p *entity.Post) cachedPost {
	cp := cachedPost{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		AuthorID:  p.AuthorID,
		Media:     make([]cachedMedia, 0, len(p.Media)),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Author != nil {
		cp.Author = &cachedUser{ID: p.Author.ID, Username: p.Author.Username}
	}
	for _, m := range p.Media {
		cp.Media = append(cp.Media, cachedMedia{URL: m.URL, Kind: m.Kind})
	}

	return cp
}

func (cp *cachedPost) toEntity() *entity.Post {
	p := &entity.Post{
		ID:        cp.ID,
		Title:     cp.Title,
		Content:   cp.Content,
		AuthorID:  cp.AuthorID,
		Media:     make([]entity.MediaAttachment, 0, len(cp.Media)),
		CreatedAt: cp.CreatedAt,
		UpdatedAt: cp.UpdatedAt,
	}
	if cp.Author != nil {
		p.Author = &entity.User{ID: cp.Author.ID, Username: cp.Author.Username}
	}
	for _, m := range cp.Media {
		p.Media = append(p.Media, entity.MediaAttachment{URL: m.URL, Kind: m.Kind})
	}

	return p
}

// noopPostCache always misses. Used when redis.addr is empty.
type noopPostCache struct{}

func (noopPostCache) GetPost(context.Context, uuid.UUID) (*entity.Post, bool, error) {
	return nil, false, nil
}

func (noopPostCache) SetPost(context.Context, *entity.Post) error {
	return nil
}

func (noopPostCache) GetPostList(context.Context) ([]*entity.Post, bool, error) {
	return nil, false, nil
}

func (noopPostCache) SetPostList(context.Context, []*entity.Post) error {
	return nil
}

func (noopPostCache) Invalidate(context.Context, uuid.UUID) error {
	return nil
}

// NewNoopPostCache returns a cache that never stores anything.
func NewNoopPostCache() service.PostCache {
	return noopPostCache{}
}

// Params holds dependencies for the post cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New creates the post cache from configuration. Without an address caching is disabled.
func New(params Params) service.PostCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, post cache disabled")

		return NewNoopPostCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The cache is optional; an unreachable Redis degrades to database reads.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, post reads will fall back to the database",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Using redis post cache", slog.String("addr", cfg.Addr), slog.String("ttl", util.FormatDuration(cfg.TTL)))

	return NewRedisPostCache(client, cfg.TTL)
}
