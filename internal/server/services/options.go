package services

import (
	"time"

	"github.com/dmitrijs2005/gophclip/internal/server/cache"
	"github.com/dmitrijs2005/gophclip/internal/server/metrics"
)

type options struct {
	now     func() time.Time
	newCode CodeGenerator
	cache   cache.Cache
	metrics *metrics.Metrics
}

// Option customizes an Issuer, Resolver or Janitor.
type Option func(*options)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithCodeGenerator replaces NewCode. Only the Issuer uses it.
func WithCodeGenerator(g CodeGenerator) Option {
	return func(o *options) { o.newCode = g }
}

// WithCache sets the resolve cache; the default is cache.Nop.
func WithCache(c cache.Cache) Option {
	return func(o *options) { o.cache = c }
}

// WithMetrics sets the collectors to report to. Without it each component
// reports to a private registry of its own.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func buildOptions(opts []Option) options {
	o := options{
		now:     time.Now,
		newCode: NewCode,
		cache:   cache.Nop{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.metrics == nil {
		o.metrics = metrics.New()
	}
	return o
}
