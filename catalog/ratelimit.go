package catalog

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/pokedex"
	"golang.org/x/time/rate"
)

var _ pokedex.DomainLimiter = (*HostLimiter)(nil)

// HostLimiter spaces out API requests with one token bucket per host.
// Every resource under the same host shares a bucket, whether Wait is
// given the bare host or a full resource URL.
type HostLimiter struct {
	limit   rate.Limit
	burst   int
	buckets sync.Map // host -> *rate.Limiter
}

// NewHostLimiter creates a HostLimiter allowing rps requests per second
// to each host. A burst below 1 is treated as 1.
func NewHostLimiter(rps float64, burst int) *HostLimiter {
	return &HostLimiter{
		limit: rate.Limit(rps),
		burst: max(burst, 1),
	}
}

// Wait blocks until a request to ref's host is allowed, or ctx is done.
func (l *HostLimiter) Wait(ctx context.Context, ref string) error {
	return l.bucket(hostOf(ref)).Wait(ctx)
}

func (l *HostLimiter) bucket(host string) *rate.Limiter {
	if b, ok := l.buckets.Load(host); ok {
		return b.(*rate.Limiter)
	}
	b, _ := l.buckets.LoadOrStore(host, rate.NewLimiter(l.limit, l.burst))
	return b.(*rate.Limiter)
}

// hostOf returns the lower-cased host of a resource locator, or the
// locator itself when it is not an absolute URL.
func hostOf(ref string) string {
	u, err := url.Parse(ref)
	if err != nil || u.Host == "" {
		return strings.ToLower(ref)
	}
	return strings.ToLower(u.Host)
}
