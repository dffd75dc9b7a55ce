package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
)

// Client calls the bridge REST API on behalf of one account.
type Client struct {
	base  *url.URL
	token string
	http  *http.Client
}

// NewClient returns a Client for the API at baseURL authenticating with token.
func NewClient(baseURL, token string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse bridge url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("bridge url %q must be absolute", baseURL)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{base: u, token: token, http: &http.Client{Timeout: timeout}}, nil
}

// APIError is a non-2xx reply. It unwraps to the sentinel of its class.
type APIError struct {
	Status  int
	Class   string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bridge api %d (%s): %s", e.Status, e.Class, e.Message)
}

func (e *APIError) Unwrap() error {
	return classError(e.Class)
}

func blockPath(height uint64, hash chainhash.Hash, suffix string) string {
	return fmt.Sprintf("/v1/blocks/%d/%s/%s", height, hash, suffix)
}

func (c *Client) AnnounceBlock(ctx context.Context, height uint64, hash chainhash.Hash, size uint32, chunks uint8) (*model.UploadBuffer, error) {
	var b model.UploadBuffer
	err := c.doJSON(ctx, http.MethodPost, blockPath(height, hash, "buffer"), AnnounceRequest{Size: size, Chunks: chunks}, &b)
	return &b, err
}

func (c *Client) PushChunk(ctx context.Context, height uint64, hash chainhash.Hash, chunkID uint8, data []byte) (*model.UploadBuffer, error) {
	var b model.UploadBuffer
	path := blockPath(height, hash, "chunks/"+strconv.Itoa(int(chunkID)))
	err := c.do(ctx, http.MethodPut, path, "application/octet-stream", bytes.NewReader(data), &b)
	return &b, err
}

func (c *Client) Buffer(ctx context.Context, height uint64, hash chainhash.Hash) (*model.UploadBuffer, error) {
	var b model.UploadBuffer
	err := c.doJSON(ctx, http.MethodGet, blockPath(height, hash, "buffer"), nil, &b)
	return &b, err
}

func (c *Client) DeleteBuffer(ctx context.Context, height uint64, hash chainhash.Hash) error {
	return c.doJSON(ctx, http.MethodDelete, blockPath(height, hash, "buffer"), nil, nil)
}

func (c *Client) Verify(ctx context.Context, height uint64, hash chainhash.Hash, budget uint64) (model.VerifyResult, error) {
	var res model.VerifyResult
	err := c.doJSON(ctx, http.MethodPost, blockPath(height, hash, "verify"), BudgetRequest{Budget: budget}, &res)
	return res, err
}

func (c *Client) Endorse(ctx context.Context, height uint64, hash chainhash.Hash) (*model.EndorsementRecord, error) {
	var r model.EndorsementRecord
	err := c.doJSON(ctx, http.MethodPost, blockPath(height, hash, "endorse"), nil, &r)
	return &r, err
}

func (c *Client) Endorsement(ctx context.Context, height uint64, hash chainhash.Hash) (*model.EndorsementRecord, error) {
	var r model.EndorsementRecord
	err := c.doJSON(ctx, http.MethodGet, blockPath(height, hash, "endorsement"), nil, &r)
	return &r, err
}

func (c *Client) ConsensusBlocks(ctx context.Context, height uint64) ([]model.ConsensusBlock, error) {
	var blocks []model.ConsensusBlock
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/v1/consensus/%d", height), nil, &blocks)
	return blocks, err
}

func (c *Client) AdvanceChainState(ctx context.Context, budget uint64) (model.AdvanceResult, error) {
	var res model.AdvanceResult
	err := c.doJSON(ctx, http.MethodPost, "/v1/chain/advance", BudgetRequest{Budget: budget}, &res)
	return res, err
}

func (c *Client) ChainState(ctx context.Context) (*model.ChainState, error) {
	var st model.ChainState
	err := c.doJSON(ctx, http.MethodGet, "/v1/chain", nil, &st)
	return &st, err
}

// Bootstrap needs a client built with the admin token.
func (c *Client) Bootstrap(ctx context.Context, checkpoint model.IrreversibleBlock) (*model.ChainState, error) {
	var st model.ChainState
	err := c.doJSON(ctx, http.MethodPost, "/v1/admin/bootstrap", checkpoint, &st)
	return &st, err
}

func (c *Client) Deposit(ctx context.Context, amount uint64) (*model.FeeAccount, error) {
	var a model.FeeAccount
	err := c.doJSON(ctx, http.MethodPost, "/v1/fees/deposit", AmountRequest{Amount: amount}, &a)
	return &a, err
}

func (c *Client) FeeBalance(ctx context.Context) (*model.FeeAccount, error) {
	var a model.FeeAccount
	err := c.doJSON(ctx, http.MethodGet, "/v1/fees", nil, &a)
	return &a, err
}

func (c *Client) RegisterSynchronizer(ctx context.Context, addresses []string) (*model.Synchronizer, error) {
	var s model.Synchronizer
	err := c.doJSON(ctx, http.MethodPost, "/v1/synchronizers", RegisterRequest{PayoutAddresses: addresses}, &s)
	return &s, err
}

func (c *Client) ClaimReward(ctx context.Context) (uint64, error) {
	var resp AmountRequest
	err := c.doJSON(ctx, http.MethodPost, "/v1/rewards/claim", nil, &resp)
	return resp.Amount, err
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	return c.do(ctx, method, path, "application/json", body, out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	u := *c.base
	u.Path += path
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode/100 != 2 {
		apiErr := &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
		var e ErrorResponse
		if json.Unmarshal(raw, &e) == nil && e.Error != "" {
			apiErr.Class, apiErr.Message = e.Class, e.Error
		}
		return apiErr
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// IsRetryable reports whether err is a stall or a transport failure worth retrying.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, model.ErrStalled) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError && apiErr.Class != "invariant"
	}
	return !errors.Is(err, context.Canceled)
}
