// Package transport exposes the indexer's HTTP handlers.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ReneKroon/ttlcache/v2"
	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"go.uber.org/zap"
)

const (
	defaultStatusTTL     = time.Second
	defaultStatusTimeout = time.Minute
	statusCacheKey       = "status"
)

// Status is the body of GET /status.
type Status struct {
	State     string  `json:"state"`
	LocalTip  *uint64 `json:"localTip"`
	ChainBest uint64  `json:"chainBest"`
	Synced    bool    `json:"synced"`
}

// StatusHandler serves GET /status. Each uncached request runs one synchronous sync
// before answering; the answer is memoized for the cache TTL. The sync is detached from
// the request so a client hanging up does not abort a block half way through.
type StatusHandler struct {
	syncer  Syncer
	tips    TipReader
	chain   ChainClient
	cache   *ttlcache.Cache
	timeout time.Duration
	metrics Metrics
	logger  *zap.Logger
}

// NewStatusHandler builds a StatusHandler. ttl <= 0 selects a one second cache and
// timeout <= 0 a one minute deadline for the sync.
func NewStatusHandler(
	syncer Syncer,
	tips TipReader,
	chain ChainClient,
	ttl time.Duration,
	timeout time.Duration,
	metrics Metrics,
	logger *zap.Logger,
) (*StatusHandler, error) {
	if syncer == nil || tips == nil || chain == nil {
		return nil, errors.New("status handler dependencies are required")
	}
	if metrics == nil {
		return nil, errors.New("status handler metrics is required")
	}
	if ttl <= 0 {
		ttl = defaultStatusTTL
	}
	if timeout <= 0 {
		timeout = defaultStatusTimeout
	}
	cache := ttlcache.NewCache()
	if err := cache.SetTTL(ttl); err != nil {
		return nil, fmt.Errorf("set status cache ttl: %w", err)
	}
	cache.SkipTTLExtensionOnHit(true)

	return &StatusHandler{
		syncer:  syncer,
		tips:    tips,
		chain:   chain,
		cache:   cache,
		timeout: timeout,
		metrics: metrics,
		logger:  logger.Named("status_handler"),
	}, nil
}

// Close stops the cache janitor.
func (h *StatusHandler) Close() error {
	return h.cache.Close()
}

func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	code := http.StatusOK
	defer func() {
		h.metrics.ObserveRequest("status", code, started)
	}()

	if r.Method != http.MethodGet {
		code = http.StatusMethodNotAllowed
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, http.StatusText(code), code)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), h.timeout)
	defer cancel()
	value, err := h.cache.GetByLoader(statusCacheKey, func(string) (interface{}, time.Duration, error) {
		status, err := h.status(ctx)
		if err != nil {
			return nil, 0, err
		}
		return status, ttlcache.ItemExpireWithGlobalTTL, nil
	})
	if err != nil {
		code = http.StatusInternalServerError
		if errors.Is(err, model.ErrChainUnavailable) {
			code = http.StatusServiceUnavailable
		}
		h.logger.Warn("status request failed", zap.Int("code", code), zap.Error(err))
		http.Error(w, http.StatusText(code), code)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(value); err != nil {
		h.logger.Debug("write status response", zap.Error(err))
	}
}

func (h *StatusHandler) status(ctx context.Context) (*Status, error) {
	if err := h.syncer.Sync(ctx); err != nil && !errors.Is(err, model.ErrSyncInProgress) {
		return nil, fmt.Errorf("sync: %w", err)
	}
	tip, err := h.tips.LatestBlock(ctx)
	if err != nil {
		return nil, fmt.Errorf("local tip: %w", err)
	}
	best, err := h.chain.BestBlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain best block: %w", err)
	}

	status := &Status{State: string(h.syncer.State()), ChainBest: best}
	if tip != nil {
		number := tip.Number
		status.LocalTip = &number
		status.Synced = number >= best
	}
	return status, nil
}
