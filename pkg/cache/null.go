package cache

import (
	"context"
	"time"
)

// NullCache keeps nothing: every Get misses and every Set is dropped, so each
// run renders its artifacts afresh. Runners built without a cache and the
// --no-cache flag use it.
type NullCache struct{}

// NewNullCache returns a Cache that stores nothing.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)       { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }
