package profile

import (
	"context"
	"errors"

	"github.com/securebank/fraudscore/internal/circuitbreaker"
)

// ErrUnavailable signals that the profile backend is unreachable or the
// circuit guarding it is open. Scoring treats this as a degraded-store
// condition and fails closed.
var ErrUnavailable = errors.New("profile store unavailable")

const breakerKey = "profiles"

// GuardedStore wraps a Store with a circuit breaker. When the backing
// store keeps failing, the circuit opens and lookups short-circuit to
// ErrUnavailable instead of hammering a dead backend. ErrNotFound counts
// as a healthy response: the backend answered, the profile just does not
// exist.
type GuardedStore struct {
	inner   Store
	breaker *circuitbreaker.Breaker
}

// NewGuardedStore wraps inner with the given breaker.
func NewGuardedStore(inner Store, breaker *circuitbreaker.Breaker) *GuardedStore {
	return &GuardedStore{inner: inner, breaker: breaker}
}

func (s *GuardedStore) Lookup(ctx context.Context, id string) (*Profile, error) {
	if !s.breaker.Allow(breakerKey) {
		return nil, ErrUnavailable
	}
	p, err := s.inner.Lookup(ctx, id)
	s.observe(err)
	return p, err
}

func (s *GuardedStore) List(ctx context.Context, fraudOnly bool) ([]*Profile, error) {
	if !s.breaker.Allow(breakerKey) {
		return nil, ErrUnavailable
	}
	profiles, err := s.inner.List(ctx, fraudOnly)
	s.observe(err)
	return profiles, err
}

func (s *GuardedStore) Count(ctx context.Context) (int, error) {
	if !s.breaker.Allow(breakerKey) {
		return 0, ErrUnavailable
	}
	n, err := s.inner.Count(ctx)
	s.observe(err)
	return n, err
}

func (s *GuardedStore) observe(err error) {
	if err == nil || errors.Is(err, ErrNotFound) {
		s.breaker.RecordSuccess(breakerKey)
		return
	}
	s.breaker.RecordFailure(breakerKey)
}
