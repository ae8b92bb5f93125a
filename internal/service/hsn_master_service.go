package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	goCache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"taxengine/internal/domain"
	"taxengine/internal/gst"
	"taxengine/internal/port"
)

const (
	hsnMasterKey          = "hsn_master"
	defaultHSNCacheTTL    = time.Hour
	hsnCacheCleanupPeriod = 10 * time.Minute
)

// HSNMasterService serves the HSN/SAC master as an immutable lookup, reloading
// it from the repository once the cached copy expires.
type HSNMasterService interface {
	Lookup(ctx context.Context) (*gst.HSNLookup, error)
	Refresh(ctx context.Context) (*gst.HSNLookup, error)
	Enabled() bool
}

type hsnMasterService struct {
	repo  port.HSNRepository
	cache *goCache.Cache
	ttl   time.Duration
	log   *zap.Logger

	// loadMu serialises reloads so an expired entry triggers one query.
	loadMu sync.Mutex
}

// NewHSNMasterService creates an HSNMasterService. A nil repo serves an empty
// master, which turns HSN rate checks off.
func NewHSNMasterService(repo port.HSNRepository, ttl time.Duration, log *zap.Logger) HSNMasterService {
	if ttl <= 0 {
		ttl = defaultHSNCacheTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &hsnMasterService{
		repo:  repo,
		cache: goCache.New(ttl, hsnCacheCleanupPeriod),
		ttl:   ttl,
		log:   log,
	}
}

func (s *hsnMasterService) Enabled() bool {
	return s.repo != nil
}

func (s *hsnMasterService) Lookup(ctx context.Context) (*gst.HSNLookup, error) {
	if lookup, ok := s.cached(); ok {
		return lookup, nil
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	if lookup, ok := s.cached(); ok {
		return lookup, nil
	}
	return s.load(ctx)
}

func (s *hsnMasterService) Refresh(ctx context.Context) (*gst.HSNLookup, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	return s.load(ctx)
}

func (s *hsnMasterService) cached() (*gst.HSNLookup, bool) {
	v, ok := s.cache.Get(hsnMasterKey)
	if !ok {
		return nil, false
	}
	lookup, ok := v.(*gst.HSNLookup)
	return lookup, ok
}

func (s *hsnMasterService) load(ctx context.Context) (*gst.HSNLookup, error) {
	if s.repo == nil {
		lookup := gst.NewHSNLookup(nil)
		s.cache.Set(hsnMasterKey, lookup, goCache.NoExpiration)
		return lookup, nil
	}

	start := time.Now()
	entries, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.log.Warn("hsnMasterService.load: repository failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrHSNMasterUnavailable, err)
	}

	lookup := gst.NewHSNLookup(entries)
	s.cache.Set(hsnMasterKey, lookup, s.ttl)
	s.log.Info("hsnMasterService.load: HSN master loaded",
		zap.Int("entries", len(entries)),
		zap.Int("codes", lookup.Len()),
		zap.Duration("took", time.Since(start)),
	)
	return lookup, nil
}
