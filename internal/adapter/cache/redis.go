// Package cache stores content API responses in Redis as gzip-compressed
// JSON so repeated searches and detail views skip the upstream call.
package cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/traveleats-backend/internal/config"
	"github.com/heartmarshall/traveleats-backend/internal/domain"
)

const keyPrefix = "traveleats:content"

// ContentCache is a Redis-backed cache of content records.
type ContentCache struct {
	client *redis.Client
}

// NewContentCache creates a cache client from cfg. It does not dial;
// use Ping to check connectivity.
func NewContentCache(cfg config.CacheConfig) *ContentCache {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	if cfg.UseTLS {
		opts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	return &ContentCache{client: redis.NewClient(opts)}
}

// Ping checks that Redis is reachable.
func (c *ContentCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the client's connections.
func (c *ContentCache) Close() error {
	return c.client.Close()
}

// GetItem returns the cached detail record, or nil, nil on a miss.
func (c *ContentCache) GetItem(ctx context.Context, kind domain.ContentKind, id string) (*domain.ContentItem, error) {
	var item domain.ContentItem
	ok, err := c.get(ctx, itemKey(kind, id), &item)
	if err != nil || !ok {
		return nil, err
	}
	return &item, nil
}

// SetItem stores item for ttl.
func (c *ContentCache) SetItem(ctx context.Context, item *domain.ContentItem, ttl time.Duration) error {
	return c.set(ctx, itemKey(item.Kind, item.ID), item, ttl)
}

// GetSearch returns the cached search results. found is false on a miss;
// a cached empty result is reported as found with an empty slice.
func (c *ContentCache) GetSearch(ctx context.Context, kind domain.ContentKind, keyword string) (results []domain.ContentSummary, found bool, err error) {
	ok, err := c.get(ctx, searchKey(kind, keyword), &results)
	if err != nil || !ok {
		return nil, false, err
	}
	if results == nil {
		results = []domain.ContentSummary{}
	}
	return results, true, nil
}

// SetSearch stores the results of a keyword search for ttl.
func (c *ContentCache) SetSearch(ctx context.Context, kind domain.ContentKind, keyword string, results []domain.ContentSummary, ttl time.Duration) error {
	return c.set(ctx, searchKey(kind, keyword), results, ttl)
}

func (c *ContentCache) get(ctx context.Context, key string, dst any) (bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	decompressed, err := decompress(val)
	if err != nil {
		return false, fmt.Errorf("cache get %s: decompress: %w", key, err)
	}
	if decompressed == nil {
		return false, nil
	}

	if err := json.Unmarshal(decompressed, dst); err != nil {
		return false, fmt.Errorf("cache get %s: decode: %w", key, err)
	}
	return true, nil
}

func (c *ContentCache) set(ctx context.Context, key string, v any, ttl time.Duration) error {
	val, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache set %s: encode: %w", key, err)
	}

	compressed, err := compress(val)
	if err != nil {
		return fmt.Errorf("cache set %s: compress: %w", key, err)
	}

	if err := c.client.Set(ctx, key, compressed, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

func itemKey(kind domain.ContentKind, id string) string {
	return fmt.Sprintf("%s:item:%s:%s", keyPrefix, kind, id)
}

// searchKey folds case and surrounding space so "Pasta " and "pasta" share
// an entry; the upstream search is case-insensitive too.
func searchKey(kind domain.ContentKind, keyword string) string {
	return fmt.Sprintf("%s:search:%s:%s", keyPrefix, kind, strings.ToLower(strings.TrimSpace(keyword)))
}

func compress(data []byte) ([]byte, error) {
	var b bytes.Buffer
	w := gzip.NewWriter(&b)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
