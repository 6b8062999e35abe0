package pagecache

import (
	"context"
	"errors"
	"raidchampions/lib/telemetry"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("raidchampions.lib.pagecache")

var ErrPageNotFound = errors.New("page not cached")

// Cache stores rendered champion pages by key.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, page string) error
}

// Memory is an in-process cache, entries expire after their lifetime.
type Memory struct {
	cache *gocache.Cache
}

func NewMemory(lifetime time.Duration) Memory {
	return Memory{cache: gocache.New(lifetime, lifetime*2)}
}

func (m Memory) Get(ctx context.Context, key string) (string, error) {
	value, ok := m.cache.Get(key)
	if !ok {
		return "", ErrPageNotFound
	}
	return value.(string), nil
}

func (m Memory) Set(ctx context.Context, key, page string) error {
	m.cache.SetDefault(key, page)
	return nil
}

const keyPrefix = "raidchampions:page:"

// Redis keeps pages in a redis instance so repeated runs can share them.
type Redis struct {
	client   *redis.Client
	lifetime time.Duration
}

func NewRedis(ctx context.Context, url string, lifetime time.Duration) (Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return Redis{}, err
	}
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)
	err = client.Ping(ctx).Err()
	if err != nil {
		client.Close()
		return Redis{}, err
	}
	return Redis{client: client, lifetime: lifetime}, nil
}

func (r Redis) Get(ctx context.Context, key string) (string, error) {
	ctx, span := tracer.Start(ctx, "redis:get")
	defer span.End()
	span.SetAttributes(attribute.String("cache.key", key))

	value, err := r.client.Get(ctx, keyPrefix+key).Result()
	if err == redis.Nil {
		return "", ErrPageNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read page from redis")
		return "", err
	}
	return value, nil
}

func (r Redis) Set(ctx context.Context, key, page string) error {
	ctx, span := tracer.Start(ctx, "redis:set")
	defer span.End()
	span.SetAttributes(attribute.String("cache.key", key))

	err := r.client.Set(ctx, keyPrefix+key, page, r.lifetime).Err()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to write page to redis")
	}
	return err
}

func (r Redis) Close() error {
	return r.client.Close()
}
