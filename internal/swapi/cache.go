package swapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/Khan/genqlient/graphql"
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru"
	"github.com/tidwall/gjson"
)

// Cache is a graphql.Doer that answers repeated operations from memory.
// Entries are keyed by endpoint and request body, so the same operation with
// different variables is cached separately. Only successful responses without
// GraphQL errors are stored. It is safe for concurrent use.
type Cache struct {
	next    graphql.Doer
	entries *lru.Cache
	metrics *Metrics
}

type cachedResponse struct {
	header http.Header
	body   []byte
}

type refreshKey struct{}

// Refresh returns a context whose operations skip cached responses. The fresh
// response replaces the cached one.
func Refresh(ctx context.Context) context.Context {
	return context.WithValue(ctx, refreshKey{}, true)
}

func refreshing(ctx context.Context) bool {
	v, _ := ctx.Value(refreshKey{}).(bool)
	return v
}

// NewCache wraps next with an LRU of at most size responses.
func NewCache(next graphql.Doer, size int, metrics *Metrics) (*Cache, error) {
	entries, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("create response cache: %w", err)
	}
	return &Cache{next: next, entries: entries, metrics: metrics}, nil
}

// Do implements graphql.Doer.
func (c *Cache) Do(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodPost || req.Body == nil {
		return c.next.Do(req)
	}

	body, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}
	req.Body = io.NopCloser(bytes.NewReader(body))

	key := cacheKey(req.URL.String(), body)
	if refreshing(req.Context()) {
		c.metrics.cacheResult("refresh")
	} else if v, ok := c.entries.Get(key); ok {
		c.metrics.cacheResult("hit")
		return v.(*cachedResponse).response(req), nil
	} else {
		c.metrics.cacheResult("miss")
	}

	resp, err := c.next.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	data, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(data))

	if cacheable(data) {
		c.entries.Add(key, &cachedResponse{header: resp.Header.Clone(), body: data})
	}
	return resp, nil
}

// Len reports the number of cached responses.
func (c *Cache) Len() int { return c.entries.Len() }

// Purge drops every cached response.
func (c *Cache) Purge() { c.entries.Purge() }

func cacheKey(endpoint string, body []byte) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(endpoint)
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(body)
	return h.Sum64()
}

func cacheable(body []byte) bool {
	if !gjson.ValidBytes(body) {
		return false
	}
	return gjson.GetBytes(body, "data").Exists() && !gjson.GetBytes(body, "errors").Exists()
}

func (r *cachedResponse) response(req *http.Request) *http.Response {
	return &http.Response{
		Status:        "200 OK",
		StatusCode:    http.StatusOK,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        r.header.Clone(),
		Body:          io.NopCloser(bytes.NewReader(r.body)),
		ContentLength: int64(len(r.body)),
		Request:       req,
	}
}
