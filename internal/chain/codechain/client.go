// Package codechain implements chain.Client and chain.StakeOracle over the node's JSON-RPC API.
package codechain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"go.uber.org/atomic"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Config tunes the RPC transport.
type Config struct {
	URL       string
	Timeout   time.Duration
	RPS       int
	NetworkID string
}

// Client talks JSON-RPC 2.0 to a node.
type Client struct {
	http      *resty.Client
	limiter   ratelimit.Limiter
	networkID string
	metrics   RPCMetrics
	logger    *zap.Logger
	nextID    *atomic.Uint64
}

// NewClient builds a Client. A non-positive RPS disables rate limiting.
func NewClient(cfg Config, metrics RPCMetrics, logger *zap.Logger) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("rpc url is required")
	}
	if cfg.NetworkID == "" {
		return nil, errors.New("network id is required")
	}
	if metrics == nil {
		return nil, errors.New("rpc metrics is required")
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}
	httpClient := resty.New().
		SetBaseURL(cfg.URL).
		SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}
	return &Client{
		http:      httpClient,
		limiter:   limiter,
		networkID: cfg.NetworkID,
		metrics:   metrics,
		logger:    logger.Named("codechain_rpc"),
		nextID:    atomic.NewUint64(0),
	}, nil
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	ID     uint64          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// RPCError is an error object returned by the node.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// call invokes method and decodes the result into out. It reports false when the
// result is null.
func (c *Client) call(ctx context.Context, method string, out any, params ...any) (found bool, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(method, err, started)
	}()
	if params == nil {
		params = []any{}
	}

	c.limiter.Take()
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(rpcRequest{JSONRPC: "2.0", ID: c.nextID.Inc(), Method: method, Params: params}).
		Post("")
	if err != nil {
		return false, c.classify(ctx, method, err)
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return false, fmt.Errorf("%s: http status %d: %w", method, resp.StatusCode(), model.ErrChainUnavailable)
	}
	if resp.IsError() {
		return false, fmt.Errorf("%s: http status %d", method, resp.StatusCode())
	}
	var res rpcResponse
	if err := json.Unmarshal(resp.Body(), &res); err != nil {
		return false, fmt.Errorf("%s: decode response: %w", method, err)
	}
	if res.Error != nil {
		return false, fmt.Errorf("%s: %w", method, res.Error)
	}
	if len(res.Result) == 0 || string(res.Result) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(res.Result, out); err != nil {
		return false, fmt.Errorf("%s: decode result: %w", method, err)
	}
	return true, nil
}

// classify marks transport failures as model.ErrChainUnavailable. Cancellation by the
// caller is passed through.
func (c *Client) classify(ctx context.Context, method string, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%s: %w", method, ctx.Err())
	}
	var netErr net.Error
	if errors.As(err, &netErr) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, context.DeadlineExceeded) {
		c.logger.Warn("chain unavailable", zap.String("method", method), zap.Error(err))
		return fmt.Errorf("%s: %v: %w", method, err, model.ErrChainUnavailable)
	}
	return fmt.Errorf("%s: %w", method, err)
}
