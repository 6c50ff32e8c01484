package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/fortify/bulkhead"
	"github.com/felixgeelhaar/fortify/circuitbreaker"
	"github.com/felixgeelhaar/fortify/ratelimit"
	"github.com/vytor/vocabflash/internal/logger"
)

// ResilientProvider wraps a provider with a circuit breaker, a concurrency
// limit and a rate limit. Calls are never retried: a suggestion request is
// answered once or reported as failed.
type ResilientProvider struct {
	provider       Provider
	circuitBreaker circuitbreaker.CircuitBreaker[*Response]
	bulkhead       bulkhead.Bulkhead[*Response]
	rateLimit      ratelimit.RateLimiter
	log            *logger.Logger
	name           string
}

// ResilientConfig holds configuration for resilient provider wrapper
type ResilientConfig struct {
	// FailureThreshold is the number of consecutive failures that opens the breaker (default: 3)
	FailureThreshold int

	// OpenTimeout is how long the breaker stays open before probing again (default: 60s)
	OpenTimeout time.Duration

	// MaxConcurrent for bulkhead (default: 4)
	MaxConcurrent int

	// RatePerSecond for rate limiting (default: 2)
	RatePerSecond int
}

func DefaultResilientConfig() ResilientConfig {
	return ResilientConfig{
		FailureThreshold: 3,
		OpenTimeout:      60 * time.Second,
		MaxConcurrent:    4,
		RatePerSecond:    2,
	}
}

func NewResilientProvider(provider Provider, cfg ResilientConfig) *ResilientProvider {
	defaults := DefaultResilientConfig()
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = defaults.MaxConcurrent
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = defaults.RatePerSecond
	}

	rp := &ResilientProvider{
		provider: provider,
		log:      logger.Default().WithPrefix("llm").WithField("provider", provider.Name()),
		name:     provider.Name(),
	}

	threshold := cfg.FailureThreshold
	rp.circuitBreaker = circuitbreaker.New[*Response](circuitbreaker.Config{
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= threshold
		},
		OnStateChange: func(from, to circuitbreaker.State) {
			rp.log.Warn("circuit breaker state change: %s -> %s", from.String(), to.String())
		},
	})

	rp.bulkhead = bulkhead.New[*Response](bulkhead.Config{
		MaxConcurrent: cfg.MaxConcurrent,
		MaxQueue:      cfg.MaxConcurrent * 2,
		QueueTimeout:  10 * time.Second,
	})

	rp.rateLimit = ratelimit.New(&ratelimit.Config{
		Rate:     cfg.RatePerSecond,
		Burst:    cfg.RatePerSecond * 3,
		Interval: time.Second,
	})

	return rp
}

func (p *ResilientProvider) Name() string {
	return p.name
}

func (p *ResilientProvider) Generate(ctx context.Context, req *Request) (*Response, error) {
	if !p.rateLimit.Allow(ctx, p.name) {
		p.log.Warn("rate limit exceeded")
		return nil, fmt.Errorf("%w for provider %s", ErrRateLimited, p.name)
	}

	start := time.Now()
	resp, err := p.circuitBreaker.Execute(ctx, func(ctx context.Context) (*Response, error) {
		return p.bulkhead.Execute(ctx, func(ctx context.Context) (*Response, error) {
			return p.provider.Generate(ctx, req)
		})
	})
	if err != nil {
		p.log.WithError(err).Warn("generate failed after %v", time.Since(start))
		return nil, err
	}
	p.log.Debug("generate completed in %v: input_tokens=%d output_tokens=%d",
		time.Since(start), resp.Usage.InputTokens, resp.Usage.OutputTokens)
	return resp, nil
}

// Close releases resources held by the resilient provider
func (p *ResilientProvider) Close() error {
	return p.rateLimit.Close()
}
