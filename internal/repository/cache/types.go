package cache

import "time"

// Envelope wraps cached data with a logical expiry timestamp. The physical
// redis TTL outlives ExpireAt so readers can keep serving stale data while
// one goroutine rebuilds.
type Envelope[T any] struct {
	Data      T         `json:"data"`
	ExpireAt  time.Time `json:"expire_at"`
	CreatedAt time.Time `json:"created_at"` // kept for debugging
}

// Expired reports whether the data is logically expired.
func (e *Envelope[T]) Expired() bool {
	return time.Now().After(e.ExpireAt)
}

// NewEnvelope wraps data with a logical TTL.
func NewEnvelope[T any](data T, ttl time.Duration) *Envelope[T] {
	now := time.Now()
	return &Envelope[T]{
		Data:      data,
		ExpireAt:  now.Add(ttl),
		CreatedAt: now,
	}
}
