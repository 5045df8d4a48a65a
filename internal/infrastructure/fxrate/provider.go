package fxrate

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apppricing "github.com/resale/backend/internal/application/pricing"
)

// Rate sources reported to callers
const (
	SourceLive     = "live"
	SourceCache    = "cache"
	SourceFallback = "fallback"
)

// Provider supplies the JPY/USD rate with caching and a fixed fallback.
// Lookup order: cache, upstream API, fallback rate.
type Provider struct {
	fetcher  Fetcher
	cache    RateCache
	ttl      time.Duration
	fallback decimal.Decimal
	logger   *zap.Logger
	now      func() time.Time
}

// NewProvider creates a rate provider. A nil cache disables caching and a
// non-positive fallback leaves Current failing when the upstream is down.
func NewProvider(fetcher Fetcher, cache RateCache, ttl time.Duration, fallback decimal.Decimal, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Provider{
		fetcher:  fetcher,
		cache:    cache,
		ttl:      ttl,
		fallback: fallback,
		logger:   logger.Named("fxrate"),
		now:      time.Now,
	}
}

// Current implements the profit service's RateProvider
func (p *Provider) Current(ctx context.Context) (apppricing.RateInfo, error) {
	if p.cache != nil {
		cached, ok, err := p.cache.Get(ctx)
		if err != nil {
			p.logger.Warn("rate cache read failed", zap.Error(err))
		} else if ok {
			return apppricing.RateInfo{
				JPYPerUSD: cached.JPYPerUSD,
				Source:    SourceCache,
				FetchedAt: cached.FetchedAt,
			}, nil
		}
	}

	rate, err := p.fetcher.Fetch(ctx)
	if err == nil {
		fetchedAt := p.now()
		if p.cache != nil {
			if cacheErr := p.cache.Set(ctx, cachedRate{JPYPerUSD: rate, FetchedAt: fetchedAt}, p.ttl); cacheErr != nil {
				p.logger.Warn("rate cache write failed", zap.Error(cacheErr))
			}
		}
		return apppricing.RateInfo{
			JPYPerUSD: rate,
			Source:    SourceLive,
			FetchedAt: fetchedAt,
		}, nil
	}

	if p.fallback.GreaterThan(decimal.Zero) {
		p.logger.Warn("rate fetch failed, using fallback rate",
			zap.Error(err),
			zap.String("fallback", p.fallback.String()),
		)
		return apppricing.RateInfo{
			JPYPerUSD: p.fallback,
			Source:    SourceFallback,
			FetchedAt: p.now(),
		}, nil
	}

	return apppricing.RateInfo{}, err
}
