package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dataforge-server/internal/infra/cache"
)

var _ Model = &CachedModel{}

// AcceptFunc reports why a reply must not be reused. A nil result lets it be cached.
type AcceptFunc func(reply string) error

// CachedModel reuses replies to identical prompts for ttl. Failed calls and replies
// refused by accept are handed back to the caller without being stored.
type CachedModel struct {
	next   Model
	cache  cache.Cache
	ttl    time.Duration
	accept AcceptFunc
}

// NewCachedModel wraps next. A nil store disables caching and returns next unchanged. A nil
// accept caches every successful reply.
func NewCachedModel(next Model, store cache.Cache, ttl time.Duration, accept AcceptFunc) Model {
	if store == nil || ttl <= 0 {
		return next
	}
	if accept == nil {
		accept = func(string) error { return nil }
	}
	return &CachedModel{next: next, cache: store, ttl: ttl, accept: accept}
}

// refusedReply carries a reply out of the cache loader so it is returned but not stored.
type refusedReply struct {
	reply  string
	reason error
}

func (e *refusedReply) Error() string {
	return "reply not cached: " + e.reason.Error()
}

func (m *CachedModel) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	key := cacheKey(prompt)

	value, err := m.cache.GetOrSet(ctx, key, m.ttl, func() (any, error) {
		reply, err := m.next.GenerateJSON(ctx, prompt)
		if err != nil {
			return nil, err
		}
		if reason := m.accept(reply); reason != nil {
			return nil, &refusedReply{reply: reply, reason: reason}
		}
		return reply, nil
	})

	var refused *refusedReply
	if errors.As(err, &refused) {
		slog.Warn("schema reply not cached", slog.String("key", key), slog.String("reason", refused.reason.Error()))
		return refused.reply, nil
	}
	if err != nil {
		return "", err
	}

	reply, ok := value.(string)
	if !ok {
		slog.Warn("discarding cached reply", slog.String("key", key), slog.String("type", fmt.Sprintf("%T", value)))
		m.cache.Delete(ctx, key)
		return m.next.GenerateJSON(ctx, prompt)
	}
	return reply, nil
}

func cacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "schema-reply:" + hex.EncodeToString(sum[:])
}
